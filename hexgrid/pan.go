package hexgrid

import "github.com/jakecoffman/cp"

// DragPan tracks a pointer drag used to scroll the camera.
type DragPan struct {
	active bool
	last   cp.Vector
}

func (d *DragPan) Active() bool {
	return d.active
}

// Down starts a drag at p (screen coordinates).
func (d *DragPan) Down(p cp.Vector) {
	d.active = true
	d.last = p
}

// Move returns the pointer delta since the last recorded point and records
// p. Outside a drag it returns the zero vector.
func (d *DragPan) Move(p cp.Vector) cp.Vector {
	if !d.active {
		return cp.Vector{}
	}
	delta := p.Sub(d.last)
	d.last = p
	return delta
}

func (d *DragPan) Up() {
	d.active = false
}

// ApplyDrag scrolls v opposite to a screen-space pointer delta, so the world
// follows the pointer.
func ApplyDrag(v *Viewport, delta cp.Vector) {
	if delta.X == 0 && delta.Y == 0 {
		return
	}
	z := v.zoomOrOne()
	v.Scroll(-delta.X/z, -delta.Y/z)
}
