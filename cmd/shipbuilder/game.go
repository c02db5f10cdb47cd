package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	ebuiinput "github.com/ebitenui/ebitenui/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/wargear/assets"
	"github.com/milk9111/wargear/logger"
	"github.com/milk9111/wargear/prefabs"
	"github.com/milk9111/wargear/render"
	"github.com/milk9111/wargear/shipyard"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/colornames"
)

type Game struct {
	hull     prefabs.HullSpec
	editor   *shipyard.Editor
	textures *assets.Registry
	ui       *ebitenui.UI
	palette  *PalettePanel
	watcher  *prefabs.Watcher
	view     render.View
	log      *logrus.Entry

	grabbed  *shipyard.PlacedComponent
	hovered  *shipyard.PlacedComponent
	outlines map[string]*ebiten.Image
}

const outlineThickness = 2

func NewGame(hull prefabs.HullSpec, palette prefabs.PaletteSpec, textures *assets.Registry, markers bool) (*Game, error) {
	g := &Game{
		hull:     hull,
		textures: textures,
		view:     render.View{OriginX: paletteWidth, Zoom: 1},
		log:      logger.Log.WithField("app", "shipbuilder"),
		outlines: make(map[string]*ebiten.Image),
	}

	g.editor = shipyard.NewFromHull(hull,
		shipyard.WithMarkers(markers),
		shipyard.WithLogger(logger.Log),
		shipyard.WithSizer(func(kind shipyard.ComponentKind) cp.Vector {
			b := textures.Image(kind.Texture).Bounds()
			return cp.Vector{X: float64(b.Dx()), Y: float64(b.Dy())}
		}),
	)
	kinds := shipyard.KindsFromPalette(palette)
	g.editor.LoadPalette(kinds)

	ui, panel, err := buildPaletteUI(kinds, g.beginPaletteDrag)
	if err != nil {
		return nil, err
	}
	g.ui = ui
	g.palette = panel
	return g, nil
}

func (g *Game) beginPaletteDrag(kind shipyard.ComponentKind) {
	x, y := ebiten.CursorPosition()
	if err := g.editor.BeginExternalDrag(kind, cp.Vector{X: float64(x), Y: float64(y)}); err != nil {
		g.log.WithError(err).Warn("palette drag rejected")
	}
}

func (g *Game) cursor() (screen cp.Vector, canvas cp.Vector, overCanvas bool) {
	x, y := ebiten.CursorPosition()
	screen = cp.Vector{X: float64(x), Y: float64(y)}
	wx, wy := g.view.ToWorld(screen.X, screen.Y)
	canvas = cp.Vector{X: wx, Y: wy}
	overCanvas = x >= paletteWidth && wx >= 0 && wy >= 0 &&
		wx < float64(g.hull.Canvas.Width) && wy < float64(g.hull.Canvas.Height)
	return screen, canvas, overCanvas
}

func (g *Game) Update() error {
	g.reloadSpecs()
	g.ui.Update()

	screen, canvas, overCanvas := g.cursor()
	g.hovered = nil
	if overCanvas && g.grabbed == nil {
		g.hovered = g.editor.ComponentAt(canvas)
	}

	if ext := g.editor.ExternalDrag(); ext != nil {
		g.editor.MoveExternalDrag(screen)
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.editor.CancelExternalDrag()
			return nil
		}
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
			if c := g.editor.EndExternalDrag(canvas, overCanvas); c != nil {
				g.palette.SetStatus(fmt.Sprintf("Placed %s.", c.Kind.Name))
			}
		}
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.editor.ShowMarkers = !g.editor.ShowMarkers
	}

	if g.grabbed == nil && (inpututil.IsKeyJustPressed(ebiten.KeyDelete) || inpututil.IsKeyJustPressed(ebiten.KeyBackspace)) {
		if c := g.editor.ComponentAt(canvas); c != nil {
			if err := g.editor.Delete(c); err != nil {
				g.log.WithError(err).Error("delete component")
			}
		}
	}

	if !ebuiinput.UIHovered && overCanvas && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if c := g.editor.ComponentAt(canvas); c != nil {
			if err := g.editor.PointerDown(c); err != nil {
				g.log.WithError(err).Error("pointer down")
			} else {
				g.grabbed = c
			}
		}
	}

	if g.grabbed != nil && inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if err := g.editor.Revert(g.grabbed); err != nil {
			g.log.WithError(err).Error("revert drag")
		}
		g.grabbed = nil
	}

	if g.grabbed != nil {
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			g.editor.PointerMove(g.grabbed, canvas)
		}
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
			c := g.grabbed
			g.grabbed = nil
			out, err := g.editor.PointerUp(c)
			if err != nil {
				g.palette.SetStatus("Drag lost its origin.")
				return nil
			}
			g.palette.SetStatus(statusFor(c, out))
		}
	}
	return nil
}

func statusFor(c *shipyard.PlacedComponent, out shipyard.Outcome) string {
	switch out {
	case shipyard.OutcomeSnapped:
		return fmt.Sprintf("%s mounted at %.0f,%.0f.", c.Kind.Name, c.Pos.X, c.Pos.Y)
	case shipyard.OutcomeRevertedOccupied:
		return "That mount is taken."
	default:
		return "No mount points on this hull."
	}
}

// reloadSpecs applies palette changes picked up by the watcher.
func (g *Game) reloadSpecs() {
	changed, errs := g.watcher.Poll()
	for _, err := range errs {
		g.log.WithError(err).Warn("watcher")
	}
	for _, name := range changed {
		switch name {
		case prefabs.PaletteFile:
			palette, err := loadPalette()
			if err != nil {
				g.log.WithError(err).Error("reload palette")
				g.palette.SetStatus("Palette spec is invalid.")
				continue
			}
			kinds := shipyard.KindsFromPalette(palette)
			g.editor.LoadPalette(kinds)
			g.palette.SetKinds(kinds)
			g.textures.Invalidate()
			g.outlines = make(map[string]*ebiten.Image)
			g.log.WithField("kinds", len(kinds)).Info("palette reloaded")
		case prefabs.HullFile:
			g.log.Warn("hull spec changed; restart to apply new mounts")
		}
	}
}

// outline returns the cached highlight ring for a texture.
func (g *Game) outline(texture string) *ebiten.Image {
	if img, ok := g.outlines[texture]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(render.Outline(g.textures.Source(texture), outlineThickness, color.White))
	g.outlines[texture] = img
	return img
}

func (g *Game) Draw(screen *ebiten.Image) {
	bg := g.hull.Canvas.Background.Or(color.RGBA{0x10, 0x99, 0xbb, 0xff})
	canvas := screen.SubImage(screenRect(g.view, g.hull.Canvas.Width, g.hull.Canvas.Height)).(*ebiten.Image)
	canvas.Fill(bg)

	unit := cp.Vector{X: 1, Y: 1}
	render.DrawSprite(screen, g.textures.Image(g.hull.Texture), g.editor.Base, unit, 1, g.view)

	if g.editor.ShowMarkers {
		for _, p := range g.editor.Points() {
			clr := color.Color(colornames.Yellow)
			if !p.Free() {
				clr = colornames.Limegreen
			}
			render.Marker(screen, p.Pos, p.MountOffset, clr, g.view)
		}
	}

	for _, c := range g.editor.Components() {
		if c == g.hovered || c.Dragging() {
			render.DrawSprite(screen, g.outline(c.Kind.Texture), c.Pos, c.Scale, c.Alpha, g.view)
		}
		render.DrawSprite(screen, g.textures.Image(c.Kind.Texture), c.Pos, c.Scale, c.Alpha, g.view)
	}

	if line := g.editor.GuideLine(); line.Visible {
		width := g.hull.GuideLine.Width
		if width <= 0 {
			width = 2
		}
		render.GuideLine(screen, line.From, line.To, width, g.hull.GuideLine.Color.Or(colornames.Red), g.view)
	}

	g.ui.Draw(screen)

	if ext := g.editor.ExternalDrag(); ext != nil {
		render.DrawSprite(screen, g.textures.Image(ext.Kind.Texture), ext.Pointer, unit, 0.5, render.View{})
	}

	ebitenutil.DebugPrintAt(screen, "drag to mount  M markers  Del remove  Esc cancel", paletteWidth+8, g.hull.Canvas.Height-20)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return paletteWidth + g.hull.Canvas.Width, g.hull.Canvas.Height
}
