package app

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"

	"gridlife/internal/core"
)

// Config holds the startup parameters. The core has no runtime resize or
// retune API; everything here is fixed once the world is constructed.
type Config struct {
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	Scale    int           `json:"scale"`
	Interval time.Duration `json:"tick_interval"`
	Pattern  string        `json:"pattern"`
	Seed     int64         `json:"seed"`
	Density  float64       `json:"random_density"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:    64,
		Height:   48,
		Scale:    10,
		Interval: core.DefaultTickInterval,
		Pattern:  "checkerboard",
		Seed:     42,
		Density:  0.25,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "board height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "cadence between generations")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "initial seed pattern")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random patterns")
	fs.Float64Var(&c.Density, "density", c.Density, "live-cell density for the random pattern")
}

// LoadFile overlays values from a JSON config file onto c.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read config %s", path)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "parse config %s", path)
	}
	return nil
}

// Validate rejects values the core cannot be constructed with.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("board size %dx%d must be positive", c.Width, c.Height)
	}
	if c.Scale <= 0 {
		return errors.Errorf("scale %d must be positive", c.Scale)
	}
	if _, ok := core.Patterns()[c.Pattern]; !ok {
		return errors.Errorf("unknown pattern %q", c.Pattern)
	}
	if c.Density < 0 || c.Density > 1 {
		return errors.Errorf("density %v must be in [0,1]", c.Density)
	}
	return nil
}
