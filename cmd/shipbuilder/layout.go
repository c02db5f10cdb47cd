package main

import (
	"image"

	"github.com/milk9111/wargear/render"
)

// screenRect is the screen area covered by a w x h canvas.
func screenRect(view render.View, w, h int) image.Rectangle {
	x0, y0 := view.ToScreen(0, 0)
	x1, y1 := view.ToScreen(float64(w), float64(h))
	return image.Rect(int(x0), int(y0), int(x1), int(y1))
}
