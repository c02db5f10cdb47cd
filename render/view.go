package render

import "github.com/hajimehoshi/ebiten/v2"

// View maps world coordinates onto a screen region:
// screen = (world - Scroll) * Zoom + Origin.
type View struct {
	OriginX, OriginY float64
	ScrollX, ScrollY float64
	Zoom             float64
}

func (v View) zoom() float64 {
	if v.Zoom == 0 {
		return 1
	}
	return v.Zoom
}

func (v View) ToScreen(wx, wy float64) (float64, float64) {
	z := v.zoom()
	return (wx-v.ScrollX)*z + v.OriginX, (wy-v.ScrollY)*z + v.OriginY
}

// ToWorld is the inverse of ToScreen.
func (v View) ToWorld(sx, sy float64) (float64, float64) {
	z := v.zoom()
	return (sx-v.OriginX)/z + v.ScrollX, (sy-v.OriginY)/z + v.ScrollY
}

// Apply appends the world-to-screen transform to geo.
func (v View) Apply(geo *ebiten.GeoM) {
	geo.Translate(-v.ScrollX, -v.ScrollY)
	geo.Scale(v.zoom(), v.zoom())
	geo.Translate(v.OriginX, v.OriginY)
}
