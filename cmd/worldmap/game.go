package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/ebitenui/ebitenui"
	ebuiinput "github.com/ebitenui/ebitenui/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/wargear/assets"
	"github.com/milk9111/wargear/hexgrid"
	"github.com/milk9111/wargear/logger"
	"github.com/milk9111/wargear/prefabs"
	"github.com/milk9111/wargear/render"
	"github.com/milk9111/wargear/ui"
	"github.com/sirupsen/logrus"
	"golang.design/x/clipboard"
)

// clickSlop is how far (screen pixels) the pointer may move before a press
// becomes a drag instead of a click.
const clickSlop = 4

var selectedFill = color.NRGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0x60}

type Game struct {
	spec     prefabs.WorldMapSpec
	textures *assets.Registry
	view     hexgrid.Viewport
	grid     *hexgrid.Grid
	painter  *render.HexPainter
	logHook  hexgrid.LogHook
	script   *hexgrid.ScriptHook
	ui       *ebitenui.UI
	panel    *Inspector
	watcher  *prefabs.Watcher
	log      *logrus.Entry

	background *ebiten.Image
	pan        hexgrid.DragPan
	pressAt    cp.Vector
	moved      bool
	selected   *hexgrid.Coord
	clipboard  bool
}

func NewGame(spec prefabs.WorldMapSpec, textures *assets.Registry) (*Game, error) {
	g := &Game{
		spec:     spec,
		textures: textures,
		view:     hexgrid.NewViewport(spec),
		painter:  render.NewHexPainter(),
		log:      logger.Log.WithField("app", "worldmap"),
	}
	g.logHook = hexgrid.LogHook{Log: g.log}

	store := hexgrid.NewMetaStore()
	store.Seed(spec.Cells)
	g.grid = hexgrid.NewGrid(store)

	if spec.Script != "" {
		hook, err := hexgrid.LoadScriptHook(spec.Script)
		if err != nil {
			return nil, err
		}
		g.script = hook
	}

	root, panel, err := buildInspectorUI(g.copySelected)
	if err != nil {
		return nil, err
	}
	g.ui = root
	g.panel = panel

	g.view.SetViewSize(screenWidth, screenHeight)
	g.grid.Regrid(g.view)
	g.log.WithFields(logrus.Fields{
		"radius": g.view.Radius,
		"cells":  len(g.grid.Cells()),
	}).Info("grid ready")
	return g, nil
}

func (g *Game) hook() hexgrid.ClickHook {
	if g.script == nil {
		return g.logHook
	}
	return hexgrid.ChainHooks(g.logHook, g.script)
}

func orDefault(v, fallback float64) float64 {
	if v > 0 {
		return v
	}
	return fallback
}

func (g *Game) Update() error {
	g.reloadScript()
	g.ui.Update()

	regrid := false

	panStep := orDefault(g.spec.PanStep, 1)
	if ui.KeyRepeated(ebiten.KeyArrowLeft) {
		g.view.Pan(-panStep, 0)
		regrid = true
	}
	if ui.KeyRepeated(ebiten.KeyArrowRight) {
		g.view.Pan(panStep, 0)
		regrid = true
	}
	if ui.KeyRepeated(ebiten.KeyArrowUp) {
		g.view.Pan(0, -panStep)
		regrid = true
	}
	if ui.KeyRepeated(ebiten.KeyArrowDown) {
		g.view.Pan(0, panStep)
		regrid = true
	}

	resizeStep := orDefault(g.spec.ResizeStep, 0.1)
	if ui.KeyRepeated(ebiten.KeyZ) {
		g.view.Resize(resizeStep)
		regrid = true
	}
	if ui.KeyRepeated(ebiten.KeyX) {
		g.view.Resize(-resizeStep)
		regrid = true
	}

	zoomStep := orDefault(g.spec.ZoomStep, 0.1)
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		g.view.ZoomBy(zoomStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		g.view.ZoomBy(-zoomStep)
	}

	if regrid {
		g.grid.Regrid(g.view)
	}

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copySelected()
	}

	x, y := ebiten.CursorPosition()
	cursor := cp.Vector{X: float64(x), Y: float64(y)}

	if !ebuiinput.UIHovered {
		if _, wy := ebiten.Wheel(); wy != 0 {
			g.view.ZoomAt(wy*zoomStep, cursor.X, cursor.Y)
		}
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			g.pan.Down(cursor)
			g.pressAt = cursor
			g.moved = false
		}
	}

	if g.pan.Active() {
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			if cursor.DistanceSq(g.pressAt) > clickSlop*clickSlop {
				g.moved = true
			}
			if g.moved {
				hexgrid.ApplyDrag(&g.view, g.pan.Move(cursor))
			}
		}
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
			g.pan.Up()
			if !g.moved {
				g.click(cursor)
			}
		}
	}
	return nil
}

func (g *Game) click(screen cp.Vector) {
	wx, wy := g.view.ToWorld(screen.X, screen.Y)
	cell, err := g.grid.Click(cp.Vector{X: wx, Y: wy}, g.hook())
	if err != nil {
		g.log.WithError(err).Error("click hook failed")
		g.panel.SetStatus("Script error, see log.")
	}
	if cell == nil {
		g.selected = nil
		g.panel.Show("Outside the grid.")
		return
	}
	coord := cell.Coord
	g.selected = &coord
	g.showSelected()
}

func (g *Game) selectedCell() *hexgrid.Cell {
	if g.selected == nil {
		return nil
	}
	cell, ok := g.grid.Cell(*g.selected)
	if !ok {
		return nil
	}
	return cell
}

func (g *Game) showSelected() {
	cell := g.selectedCell()
	if cell == nil {
		g.panel.Show("Click a hex.")
		return
	}
	out, err := hexgrid.MarshalCell(cell)
	if err != nil {
		g.log.WithError(err).Error("marshal cell")
		return
	}
	g.panel.Show(string(out))
}

func (g *Game) copySelected() {
	cell := g.selectedCell()
	if cell == nil {
		g.panel.SetStatus("Nothing selected.")
		return
	}
	if !g.clipboard {
		g.panel.SetStatus("Clipboard unavailable.")
		return
	}
	out, err := hexgrid.MarshalCell(cell)
	if err != nil {
		g.log.WithError(err).Error("marshal cell")
		return
	}
	clipboard.Write(clipboard.FmtText, out)
	g.panel.SetStatus(fmt.Sprintf("Copied hex %d,%d.", cell.Col, cell.Row))
}

// reloadScript recompiles the click script when it changes on disk. A broken
// script leaves the previous one active.
func (g *Game) reloadScript() {
	changed, errs := g.watcher.Poll()
	for _, err := range errs {
		g.log.WithError(err).Warn("watcher")
	}
	if g.script == nil {
		return
	}
	for _, name := range changed {
		if strings.TrimSuffix(name, ".tengo") != strings.TrimSuffix(g.script.Name(), ".tengo") {
			continue
		}
		hook, err := hexgrid.LoadScriptHook(g.script.Name())
		if err != nil {
			g.log.WithError(err).Error("reload script")
			g.panel.SetStatus("Script reload failed.")
			continue
		}
		g.script = hook
		g.log.Info("script reloaded")
		g.panel.SetStatus("Script reloaded.")
	}
}

func (g *Game) renderView() render.View {
	return render.View{ScrollX: g.view.ScrollX, ScrollY: g.view.ScrollY, Zoom: g.view.Zoom}
}

func (g *Game) Draw(screen *ebiten.Image) {
	view := g.renderView()

	if g.background == nil && g.spec.Background != "" {
		g.background = g.textures.Scaled(g.spec.Background, int(g.spec.Width), int(g.spec.Height))
	}
	render.DrawImage(screen, g.background, view)

	x0, y0 := g.view.ToWorld(0, 0)
	x1, y1 := g.view.ToWorld(screenWidth, screenHeight)
	visible := cp.BB{L: x0, B: y0, R: x1, T: y1}

	width := g.spec.LineWidth
	if width <= 0 {
		width = 1
	}
	line := g.spec.LineColor.Or(color.White)
	g.grid.EachVisible(visible, func(cell *hexgrid.Cell) {
		g.painter.StrokeHexagon(screen, cell.Corners(), view, width, line)
	})
	if cell := g.selectedCell(); cell != nil {
		g.painter.FillHexagon(screen, cell.Corners(), view, selectedFill)
	}

	g.ui.Draw(screen)

	cols, rows := g.grid.Dims()
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"zoom %.1f  radius %.1f  grid %dx%d\narrows pan  Z/X size  +/- zoom  Ctrl+C copy",
		g.view.Zoom, g.view.Radius, cols, rows))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
