package hexgrid

import (
	"math"

	"github.com/milk9111/wargear/common"
	"github.com/milk9111/wargear/prefabs"
)

const (
	// ZoomFloor and RadiusFloor are hard lower limits regardless of config.
	ZoomFloor   = 0.1
	RadiusFloor = 1.0

	defaultMaxZoom = 8.0
)

// Viewport is the viewer state: the grid placement (offset, radius) and the
// camera looking at the world (scroll, zoom).
type Viewport struct {
	OffsetX, OffsetY float64
	Radius           float64

	ScrollX, ScrollY float64
	Zoom             float64

	// GridWidth and GridHeight are the area the grid covers.
	GridWidth, GridHeight float64
	// BoundsWidth and BoundsHeight limit camera scrolling.
	BoundsWidth, BoundsHeight float64
	// ViewWidth and ViewHeight are the screen size in pixels; zero means unknown.
	ViewWidth, ViewHeight float64

	MinRadius float64
	MinZoom   float64
	MaxZoom   float64
}

func NewViewport(spec prefabs.WorldMapSpec) Viewport {
	gw, gh := spec.GridWidth, spec.GridHeight
	if gw <= 0 {
		gw = spec.Width
	}
	if gh <= 0 {
		gh = spec.Height
	}
	return Viewport{
		Radius:       spec.HexRadius,
		Zoom:         1,
		GridWidth:    gw,
		GridHeight:   gh,
		BoundsWidth:  spec.Width,
		BoundsHeight: spec.Height,
		MinRadius:    spec.MinRadius,
		MinZoom:      spec.MinZoom,
		MaxZoom:      spec.MaxZoom,
	}
}

func (v *Viewport) zoomRange() (float64, float64) {
	lo := math.Max(ZoomFloor, v.MinZoom)
	hi := v.MaxZoom
	if hi <= 0 {
		hi = defaultMaxZoom
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// Pan moves the grid (not the camera) by dx, dy world units.
func (v *Viewport) Pan(dx, dy float64) {
	v.OffsetX += dx
	v.OffsetY += dy
}

// Scroll moves the camera by dx, dy world units, staying inside the bounds.
func (v *Viewport) Scroll(dx, dy float64) {
	v.ScrollX += dx
	v.ScrollY += dy
	v.clampScroll()
}

// ZoomBy changes the zoom factor by delta, clamped to the zoom range.
func (v *Viewport) ZoomBy(delta float64) {
	lo, hi := v.zoomRange()
	v.Zoom = common.Clamp(v.Zoom+delta, lo, hi)
	v.clampScroll()
}

// ZoomAt zooms by delta keeping the world point under screen position
// (sx, sy) fixed.
func (v *Viewport) ZoomAt(delta, sx, sy float64) {
	wx, wy := v.ToWorld(sx, sy)
	lo, hi := v.zoomRange()
	v.Zoom = common.Clamp(v.Zoom+delta, lo, hi)
	v.ScrollX = wx - sx/v.Zoom
	v.ScrollY = wy - sy/v.Zoom
	v.clampScroll()
}

// Resize grows or shrinks the hex radius, never below RadiusFloor.
func (v *Viewport) Resize(delta float64) {
	v.Radius = math.Max(math.Max(RadiusFloor, v.MinRadius), v.Radius+delta)
}

// SetViewSize records the screen size used for scroll clamping.
func (v *Viewport) SetViewSize(w, h float64) {
	v.ViewWidth, v.ViewHeight = w, h
	v.clampScroll()
}

func (v *Viewport) ToWorld(sx, sy float64) (float64, float64) {
	z := v.zoomOrOne()
	return sx/z + v.ScrollX, sy/z + v.ScrollY
}

func (v *Viewport) ToScreen(wx, wy float64) (float64, float64) {
	z := v.zoomOrOne()
	return (wx - v.ScrollX) * z, (wy - v.ScrollY) * z
}

func (v *Viewport) zoomOrOne() float64 {
	if v.Zoom <= 0 {
		return 1
	}
	return v.Zoom
}

func (v *Viewport) clampScroll() {
	v.ScrollX = clampAxis(v.ScrollX, v.BoundsWidth, v.ViewWidth/v.zoomOrOne())
	v.ScrollY = clampAxis(v.ScrollY, v.BoundsHeight, v.ViewHeight/v.zoomOrOne())
}

// clampAxis keeps [pos, pos+visible] inside [0, bound]; when the visible
// span is wider than the bound it is centred.
func clampAxis(pos, bound, visible float64) float64 {
	if bound <= 0 {
		return pos
	}
	if visible >= bound {
		return (bound - visible) / 2
	}
	return common.Clamp(pos, 0, bound-visible)
}
