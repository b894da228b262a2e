//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"gridlife/internal/app"
	"gridlife/internal/core"
	"gridlife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	configPath := flag.String("config", "", "optional JSON config file")
	flag.Parse()

	if *configPath != "" {
		if err := cfg.LoadFile(*configPath); err != nil {
			log.Fatalf("config: %v", err)
		}
		// Flags win over the file: re-apply anything set explicitly.
		flag.Parse()
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	core.RandomDensity = cfg.Density
	seeder := core.Patterns()[cfg.Pattern]
	world := core.NewWorld(cfg.Width, cfg.Height, seeder, cfg.Seed, cfg.Interval)

	game := app.New(world, cfg.Scale, cfg.Seed)

	ebiten.SetWindowTitle(fmt.Sprintf("gridlife — %s %dx%d", cfg.Pattern, cfg.Width, cfg.Height))
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale+ui.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
