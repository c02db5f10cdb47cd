package main

import (
	"flag"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/wargear/assets"
	"github.com/milk9111/wargear/logger"
	"github.com/milk9111/wargear/prefabs"
	"golang.design/x/clipboard"
)

const (
	screenWidth  = 1024
	screenHeight = 640
)

func main() {
	prefabDir := flag.String("prefabs", "prefabs", "Directory with the world map spec and scripts; overrides the embedded copies")
	assetsDir := flag.String("assets", "assets", "Directory whose images/ override the embedded textures")
	mapFile := flag.String("map", prefabs.WorldMapFile, "World map spec to open")
	watch := flag.Bool("watch", true, "Reload the click script when it changes on disk")
	flag.Parse()

	logger.Init()
	log := logger.Log.WithField("app", "worldmap")
	prefabs.Dir = *prefabDir

	spec, err := prefabs.LoadSpec[prefabs.WorldMapSpec](*mapFile)
	if err != nil {
		log.WithError(err).Fatal("load world map")
	}
	if err := spec.Validate(); err != nil {
		log.WithError(err).Fatal("invalid world map")
	}

	game, err := NewGame(spec, assets.Default(*assetsDir))
	if err != nil {
		log.WithError(err).Fatal("build viewer")
	}

	if err := clipboard.Init(); err != nil {
		log.WithError(err).Warn("clipboard unavailable; copy disabled")
	} else {
		game.clipboard = true
	}

	if *watch {
		w, err := prefabs.NewWatcher(*prefabDir, filepath.Join(*prefabDir, "scripts"))
		if err != nil {
			log.WithError(err).Warn("script hot reload disabled")
		} else {
			defer w.Close()
			game.watcher = w
		}
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("World Map - " + spec.Name)

	if err := ebiten.RunGame(game); err != nil {
		log.WithError(err).Fatal("run")
	}
}
