//go:build ebiten

package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"life-engine/internal/app"
	"life-engine/internal/engine"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	initial, err := cfg.InitialGrid(cfg.Seed)
	if err != nil {
		log.Fatal(err)
	}

	logOut := io.Discard
	if cfg.Verbose {
		logOut = os.Stderr
	}
	eng, err := engine.New(initial, cfg.EngineConfig(log.New(logOut, "life: ", log.LstdFlags)))
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(cfg, eng)

	ebiten.SetWindowTitle("life-engine")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(initial.Cols()*cfg.Scale+cfg.Panel, initial.Rows()*cfg.Scale)

	runErr := ebiten.RunGame(game)
	if err := eng.Close(); err != nil {
		log.Printf("engine shutdown: %v", err)
	}
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		log.Fatal(runErr)
	}
}
