package shipyard

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/wargear/logger"
	"github.com/milk9111/wargear/prefabs"
	"github.com/sirupsen/logrus"
)

const (
	dragAlpha  = 0.5
	restAlpha  = 1.0
	defaultBox = 32
)

// GuideLine is the hint drawn from a dragged component to its nearest point.
type GuideLine struct {
	Visible  bool
	From, To cp.Vector
}

type dragContext struct {
	component   *PlacedComponent
	origin      cp.Vector
	originPoint *AttachmentPoint
	originScale cp.Vector
}

// Editor owns the hull, its attachment points and every placed component.
// It is not safe for concurrent use; drive it from the game loop.
type Editor struct {
	Base        cp.Vector
	ShowMarkers bool

	points     []*AttachmentPoint
	components []*PlacedComponent
	palette    []ComponentKind

	drag     *dragContext
	external *ExternalDrag
	guide    GuideLine

	sizeOf func(ComponentKind) cp.Vector
	log    *logrus.Entry
}

type Option func(*Editor)

func WithMarkers(show bool) Option {
	return func(e *Editor) { e.ShowMarkers = show }
}

// WithSizer sets how hit boxes are sized for new components, usually from
// the texture bounds.
func WithSizer(fn func(ComponentKind) cp.Vector) Option {
	return func(e *Editor) { e.sizeOf = fn }
}

func WithLogger(l *logrus.Logger) Option {
	return func(e *Editor) { e.log = l.WithField("component", "shipyard") }
}

func New(base cp.Vector, points []AttachmentPoint, opts ...Option) *Editor {
	e := &Editor{
		Base:        base,
		ShowMarkers: true,
		points:      make([]*AttachmentPoint, 0, len(points)),
		sizeOf: func(ComponentKind) cp.Vector {
			return cp.Vector{X: defaultBox, Y: defaultBox}
		},
		log: logger.Log.WithField("component", "shipyard"),
	}
	for i := range points {
		p := points[i]
		p.occupant = nil
		e.points = append(e.points, &p)
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewFromHull places the base sprite at the canvas centre and builds the
// points from the hull mounts.
func NewFromHull(hull prefabs.HullSpec, opts ...Option) *Editor {
	cx, cy := hull.Center()
	return New(cp.Vector{X: cx, Y: cy}, PointsFromHull(hull), opts...)
}

func (e *Editor) Points() []*AttachmentPoint {
	return e.points
}

// Components returns placed components in draw order (last is topmost).
func (e *Editor) Components() []*PlacedComponent {
	return e.components
}

func (e *Editor) Palette() []ComponentKind {
	return e.palette
}

func (e *Editor) GuideLine() GuideLine {
	return e.guide
}

// Occupant returns the component snapped to p, or nil.
func (e *Editor) Occupant(p *AttachmentPoint) *PlacedComponent {
	if p == nil {
		return nil
	}
	return p.occupant
}

// LoadPalette replaces the palette. Components already on the canvas keep
// their kind even if it is no longer listed.
func (e *Editor) LoadPalette(kinds []ComponentKind) {
	e.palette = append(e.palette[:0:0], kinds...)
	if e.external != nil && !e.hasKind(e.external.Kind) {
		e.external = nil
	}
	e.log.WithField("kinds", len(kinds)).Debug("palette loaded")
}

func (e *Editor) hasKind(kind ComponentKind) bool {
	for _, k := range e.palette {
		if k == kind {
			return true
		}
	}
	return false
}

// Nearest returns the attachment point closest to pos by squared distance.
// Ties go to the earliest point.
func (e *Editor) Nearest(pos cp.Vector) (*AttachmentPoint, bool) {
	var best *AttachmentPoint
	bestDist := 0.0
	for _, p := range e.points {
		d := pos.DistanceSq(p.Pos)
		if best == nil || d < bestDist {
			best = p
			bestDist = d
		}
	}
	return best, best != nil
}

// DropComponent creates a component at pos and puts it on top of the
// render order.
func (e *Editor) DropComponent(kind ComponentKind, pos cp.Vector) *PlacedComponent {
	c := &PlacedComponent{
		Kind:   kind,
		Pos:    pos,
		Origin: pos,
		Scale:  cp.Vector{X: 1, Y: 1},
		Alpha:  restAlpha,
		Size:   e.sizeOf(kind),
	}
	e.components = append(e.components, c)
	e.log.WithFields(logrus.Fields{"kind": kind.Name, "x": pos.X, "y": pos.Y}).Debug("component dropped")
	return c
}

// ComponentAt returns the topmost component whose box contains pos.
func (e *Editor) ComponentAt(pos cp.Vector) *PlacedComponent {
	for i := len(e.components) - 1; i >= 0; i-- {
		if e.components[i].Contains(pos) {
			return e.components[i]
		}
	}
	return nil
}

func (e *Editor) indexOf(c *PlacedComponent) int {
	for i, pc := range e.components {
		if pc == c {
			return i
		}
	}
	return -1
}

// Delete removes c from the canvas and frees its point.
func (e *Editor) Delete(c *PlacedComponent) error {
	i := e.indexOf(c)
	if i < 0 {
		return fmt.Errorf("shipyard: delete: %w", ErrUnknownComponent)
	}
	if e.drag != nil && e.drag.component == c {
		e.endDrag()
	}
	e.release(c)
	e.components = append(e.components[:i], e.components[i+1:]...)
	return nil
}

func (e *Editor) occupy(c *PlacedComponent, p *AttachmentPoint) {
	p.occupant = c
	c.point = p
}

func (e *Editor) release(c *PlacedComponent) {
	if c.point != nil && c.point.occupant == c {
		c.point.occupant = nil
	}
	c.point = nil
}

func (e *Editor) raise(c *PlacedComponent) {
	i := e.indexOf(c)
	if i < 0 || i == len(e.components)-1 {
		return
	}
	e.components = append(e.components[:i], e.components[i+1:]...)
	e.components = append(e.components, c)
}
