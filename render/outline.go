package render

import (
	"image"
	"image/color"
	"image/draw"
)

// Outline returns an image of src grown by thickness on every side, holding
// only the outline: transparent pixels of src within thickness of an opaque
// one, painted clr. The result's origin is (0,0); src's pixel (x,y) maps to
// (x+thickness, y+thickness).
func Outline(src image.Image, thickness int, clr color.Color) *image.RGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(rgba, rgba.Bounds(), src, b.Min, draw.Src)

	opaque := func(x, y int) bool {
		if x < 0 || y < 0 || x >= w || y >= h {
			return false
		}
		return rgba.Pix[y*rgba.Stride+x*4+3] != 0
	}
	near := func(x, y int) bool {
		for yy := y - thickness; yy <= y+thickness; yy++ {
			for xx := x - thickness; xx <= x+thickness; xx++ {
				if opaque(xx, yy) {
					return true
				}
			}
		}
		return false
	}

	out := image.NewRGBA(image.Rect(0, 0, w+2*thickness, h+2*thickness))
	for y := -thickness; y < h+thickness; y++ {
		for x := -thickness; x < w+thickness; x++ {
			if opaque(x, y) || !near(x, y) {
				continue
			}
			out.Set(x+thickness, y+thickness, clr)
		}
	}
	return out
}
