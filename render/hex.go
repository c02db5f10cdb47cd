package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
)

// HexPainter strokes and fills hexagons, reusing its vertex buffers between
// calls. The zero value is not usable; call NewHexPainter.
type HexPainter struct {
	white *ebiten.Image
	vs    []ebiten.Vertex
	is    []uint16
}

func NewHexPainter() *HexPainter {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &HexPainter{
		white: white.SubImage(white.Bounds().Inset(1)).(*ebiten.Image),
		vs:    make([]ebiten.Vertex, 0, 36),
		is:    make([]uint16, 0, 36),
	}
}

func hexPath(corners [6]cp.Vector, view View) *vector.Path {
	path := &vector.Path{}
	for i, c := range corners {
		x, y := view.ToScreen(c.X, c.Y)
		if i == 0 {
			path.MoveTo(float32(x), float32(y))
		} else {
			path.LineTo(float32(x), float32(y))
		}
	}
	path.Close()
	return path
}

// StrokeHexagon draws the closed outline through corners.
func (p *HexPainter) StrokeHexagon(dst *ebiten.Image, corners [6]cp.Vector, view View, width float32, clr color.Color) {
	path := hexPath(corners, view)
	p.vs, p.is = path.AppendVerticesAndIndicesForStroke(p.vs[:0], p.is[:0], &vector.StrokeOptions{
		Width:    width,
		LineJoin: vector.LineJoinMiter,
	})
	p.draw(dst, clr)
}

// FillHexagon fills the area enclosed by corners.
func (p *HexPainter) FillHexagon(dst *ebiten.Image, corners [6]cp.Vector, view View, clr color.Color) {
	path := hexPath(corners, view)
	p.vs, p.is = path.AppendVerticesAndIndicesForFilling(p.vs[:0], p.is[:0])
	p.draw(dst, clr)
}

func (p *HexPainter) draw(dst *ebiten.Image, clr color.Color) {
	r, g, b, a := clr.RGBA()
	for i := range p.vs {
		p.vs[i].SrcX = 1
		p.vs[i].SrcY = 1
		p.vs[i].ColorR = float32(r) / 0xffff
		p.vs[i].ColorG = float32(g) / 0xffff
		p.vs[i].ColorB = float32(b) / 0xffff
		p.vs[i].ColorA = float32(a) / 0xffff
	}
	dst.DrawTriangles(p.vs, p.is, p.white, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
