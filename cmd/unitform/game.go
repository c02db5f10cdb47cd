package main

import (
	"context"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/wargear/logger"
	"github.com/milk9111/wargear/unitform"
	"github.com/sirupsen/logrus"
)

type Game struct {
	catalog   *unitform.Catalog
	submitter *unitform.Submitter
	ui        *ebitenui.UI
	form      *FormView
	log       *logrus.Entry

	unitType string
}

func NewGame(catalog *unitform.Catalog, submitter *unitform.Submitter) (*Game, error) {
	g := &Game{
		catalog:   catalog,
		submitter: submitter,
		log:       logger.Log.WithField("app", "unitform"),
	}
	ui, form, err := buildFormUI(catalog.Types(), formHandlers{
		onSelect: g.selectType,
		onSubmit: g.submit,
	})
	if err != nil {
		return nil, err
	}
	g.ui = ui
	g.form = form
	return g, nil
}

func (g *Game) selectType(category string) {
	form := g.catalog.Fill(category)
	g.unitType = form.UnitType
	g.form.Show(form)
	if _, ok := g.catalog.Lookup(category); !ok {
		g.log.WithField("unit_type", category).Warn("no template for unit type")
	}
	g.form.SetStatus("")
}

func (g *Game) submit() {
	if g.unitType == "" {
		g.form.SetStatus("Pick a unit type first.")
		return
	}
	g.submitter.Submit(context.Background(), g.form.Read(g.unitType))
	g.form.SetStatus("Submitting...")
}

func (g *Game) Update() error {
	g.ui.Update()
	for {
		res, ok := g.submitter.Poll()
		if !ok {
			break
		}
		g.form.SetStatus(res.Message)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.ui.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
