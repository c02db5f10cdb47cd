package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/wargear/assets"
	"github.com/milk9111/wargear/logger"
	"github.com/milk9111/wargear/prefabs"
)

func main() {
	prefabDir := flag.String("prefabs", "prefabs", "Directory with hull and palette specs; overrides the embedded copies")
	assetsDir := flag.String("assets", "assets", "Directory whose images/ override the embedded textures")
	hullFile := flag.String("hull", prefabs.HullFile, "Hull spec to edit")
	markers := flag.Bool("markers", true, "Draw attachment point markers")
	watch := flag.Bool("watch", true, "Reload the palette when its spec changes on disk")
	flag.Parse()

	logger.Init()
	log := logger.Log.WithField("app", "shipbuilder")
	prefabs.Dir = *prefabDir

	hull, err := prefabs.LoadSpec[prefabs.HullSpec](*hullFile)
	if err != nil {
		log.WithError(err).Fatal("load hull")
	}
	if err := hull.Validate(); err != nil {
		log.WithError(err).Fatal("invalid hull")
	}
	palette, err := loadPalette()
	if err != nil {
		log.WithError(err).Fatal("load palette")
	}

	game, err := NewGame(hull, palette, assets.Default(*assetsDir), *markers)
	if err != nil {
		log.WithError(err).Fatal("build editor")
	}

	if *watch {
		w, err := prefabs.NewWatcher(*prefabDir)
		if err != nil {
			log.WithError(err).Warn("palette hot reload disabled")
		} else {
			defer w.Close()
			game.watcher = w
		}
	}

	w, h := game.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Ship Builder - " + hull.Name)

	if err := ebiten.RunGame(game); err != nil {
		log.WithError(err).Fatal("run")
	}
}

func loadPalette() (prefabs.PaletteSpec, error) {
	palette, err := prefabs.LoadSpec[prefabs.PaletteSpec](prefabs.PaletteFile)
	if err != nil {
		return palette, err
	}
	return palette, palette.Validate()
}
