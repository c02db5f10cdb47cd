package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/wargear/logger"
	"github.com/milk9111/wargear/prefabs"
	"github.com/milk9111/wargear/unitform"
	"github.com/sirupsen/logrus"
)

const (
	screenWidth  = 760
	screenHeight = 560
)

func main() {
	prefabDir := flag.String("prefabs", "prefabs", "Directory with units.yaml; overrides the embedded copy")
	endpoint := flag.String("endpoint", "", "Unit creation URL; defaults to the endpoint in units.yaml")
	flag.Parse()

	logger.Init()
	log := logger.Log.WithField("app", "unitform")
	prefabs.Dir = *prefabDir

	catalog, err := unitform.LoadCatalog()
	if err != nil {
		log.WithError(err).Fatal("load unit catalog")
	}
	url := catalog.Endpoint()
	if *endpoint != "" {
		url = *endpoint
	}
	log.WithFields(logrus.Fields{"units": len(catalog.Types()), "endpoint": url}).Info("catalog loaded")

	game, err := NewGame(catalog, unitform.NewSubmitter(unitform.NewClient(url)))
	if err != nil {
		log.WithError(err).Fatal("build form")
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Create Unit")

	if err := ebiten.RunGame(game); err != nil {
		log.WithError(err).Fatal("run")
	}
}
