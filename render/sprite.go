package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
)

// DrawSprite draws img centred on pos. A negative scale component mirrors the
// sprite on that axis.
func DrawSprite(dst, img *ebiten.Image, pos, scale cp.Vector, alpha float64, view View) {
	if img == nil {
		return
	}
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	op.GeoM.Scale(scale.X, scale.Y)
	op.GeoM.Translate(pos.X, pos.Y)
	view.Apply(&op.GeoM)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}

// DrawImage draws img with its top-left corner at the world origin.
func DrawImage(dst, img *ebiten.Image, view View) {
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	view.Apply(&op.GeoM)
	dst.DrawImage(img, op)
}

// GuideLine draws a straight line between two world positions.
func GuideLine(dst *ebiten.Image, from, to cp.Vector, width float32, clr color.Color, view View) {
	x0, y0 := view.ToScreen(from.X, from.Y)
	x1, y1 := view.ToScreen(to.X, to.Y)
	vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), width, clr, true)
}

// Marker draws a small ring at pos, with a tick towards pos+offset when the
// offset is non-zero.
func Marker(dst *ebiten.Image, pos, offset cp.Vector, clr color.Color, view View) {
	x, y := view.ToScreen(pos.X, pos.Y)
	vector.StrokeCircle(dst, float32(x), float32(y), 6, 1.5, clr, true)
	if offset.X != 0 || offset.Y != 0 {
		tx, ty := view.ToScreen(pos.X+offset.X, pos.Y+offset.Y)
		vector.StrokeLine(dst, float32(x), float32(y), float32(tx), float32(ty), 1.5, clr, true)
	}
}
