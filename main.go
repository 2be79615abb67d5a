package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/sablewing/timerift/config"
	"github.com/sablewing/timerift/director"
)

func main() {
	debug := flag.Bool("debug", false, "enable the debug overlay and config hot reload")
	configPath := flag.String("config", "", "config file overriding the embedded default")
	startScene := flag.String("scene", "", "jump straight into a Story scene by name")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	game, err := NewGame(cfg, *configPath, *debug)
	if err != nil {
		log.Fatal(err)
	}

	if *startScene != "" {
		if err := game.director.StartGameAt(director.ModeStory, *startScene); err != nil {
			log.Fatal(err)
		}
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
