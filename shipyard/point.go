package shipyard

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/wargear/common"
	"github.com/milk9111/wargear/prefabs"
)

// AttachmentPoint is a fixed mount location on the hull.
type AttachmentPoint struct {
	Pos         cp.Vector
	FlipX       bool
	FlipY       bool
	MountOffset cp.Vector

	occupant *PlacedComponent
}

// Occupant returns the component snapped to p, or nil.
func (p *AttachmentPoint) Occupant() *PlacedComponent {
	return p.occupant
}

func (p *AttachmentPoint) Free() bool {
	return p.occupant == nil
}

// Scale is the visual scale a component takes when snapped to p.
func (p *AttachmentPoint) Scale() cp.Vector {
	return cp.Vector{X: common.Sign(p.FlipX), Y: common.Sign(p.FlipY)}
}

// PointsFromHull converts hull mounts into attachment points in spec order.
func PointsFromHull(hull prefabs.HullSpec) []AttachmentPoint {
	points := make([]AttachmentPoint, 0, len(hull.Mounts))
	for _, m := range hull.Mounts {
		points = append(points, AttachmentPoint{
			Pos:         cp.Vector{X: m.X, Y: m.Y},
			FlipX:       m.FlipX,
			FlipY:       m.FlipY,
			MountOffset: cp.Vector{X: m.MountOffset.X, Y: m.MountOffset.Y},
		})
	}
	return points
}
