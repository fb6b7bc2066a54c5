//go:build ebiten

package main

import (
	"errors"
	"flag"

	"forest-ca/internal/app"
	"forest-ca/internal/core"
	"forest-ca/internal/logs"
	_ "forest-ca/internal/sims/forest"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	log := logs.Init("ca", logs.Config{Level: "info"})
	defer logs.Sync()

	factory, err := core.Lookup(cfg.Sim)
	if err != nil {
		log.Fatal("unknown sim", zap.Error(err))
	}

	sim := factory(nil)
	game := app.New(sim, cfg, log)
	game.Reset(cfg.Seed)
	size := sim.Size()

	ebiten.SetWindowTitle("forest-ca — " + sim.Name())
	ebiten.SetWindowSize(size.W*cfg.Scale+max(0, cfg.HUDWidth), size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal("run game", zap.Error(err))
	}
}
