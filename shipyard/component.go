package shipyard

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/wargear/prefabs"
)

// ComponentKind is a palette entry: what the user can drop on the hull.
type ComponentKind struct {
	Name    string
	Texture string
}

func KindsFromPalette(palette prefabs.PaletteSpec) []ComponentKind {
	kinds := make([]ComponentKind, 0, len(palette.Components))
	for _, c := range palette.Components {
		kinds = append(kinds, ComponentKind{Name: c.Name, Texture: c.Texture})
	}
	return kinds
}

// PlacedComponent is a component instance on the canvas.
type PlacedComponent struct {
	Kind ComponentKind
	// Pos is the sprite centre in canvas coordinates.
	Pos cp.Vector
	// Origin is where the component was when the current (or last) drag began.
	Origin cp.Vector
	Scale  cp.Vector
	Alpha  float64
	// Size is the hit box, centred on Pos.
	Size cp.Vector

	point    *AttachmentPoint
	dragging bool
}

// Point returns the attachment point c occupies, or nil.
func (c *PlacedComponent) Point() *AttachmentPoint {
	return c.point
}

func (c *PlacedComponent) Dragging() bool {
	return c.dragging
}

func (c *PlacedComponent) Bounds() cp.BB {
	return cp.NewBBForExtents(c.Pos, c.Size.X/2, c.Size.Y/2)
}

func (c *PlacedComponent) Contains(pos cp.Vector) bool {
	return c.Bounds().ContainsVect(pos)
}
