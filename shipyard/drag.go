package shipyard

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/sirupsen/logrus"
)

// Outcome reports what a release did with the dragged component.
type Outcome int

const (
	OutcomeSnapped Outcome = iota
	OutcomeRevertedOccupied
	OutcomeRevertedNoPoint
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSnapped:
		return "snapped"
	case OutcomeRevertedOccupied:
		return "reverted_occupied"
	case OutcomeRevertedNoPoint:
		return "reverted_no_point"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Drag returns the component currently being dragged, or nil.
func (e *Editor) Drag() *PlacedComponent {
	if e.drag == nil {
		return nil
	}
	return e.drag.component
}

// PointerDown starts dragging c. The point it occupied is released for the
// duration of the drag.
func (e *Editor) PointerDown(c *PlacedComponent) error {
	if e.indexOf(c) < 0 {
		return fmt.Errorf("shipyard: pointer down: %w", ErrUnknownComponent)
	}
	if e.drag != nil && e.drag.component == c {
		return nil
	}
	if e.drag != nil {
		if err := e.Revert(e.drag.component); err != nil {
			return err
		}
	}

	e.drag = &dragContext{
		component:   c,
		origin:      c.Pos,
		originPoint: c.point,
		originScale: c.Scale,
	}
	c.Origin = c.Pos
	c.dragging = true
	c.Alpha = dragAlpha
	e.release(c)
	e.raise(c)
	e.updateGuide(c)
	return nil
}

// PointerMove moves a dragged component to pos (canvas-local). It is a
// no-op for a component that is not being dragged.
func (e *Editor) PointerMove(c *PlacedComponent, pos cp.Vector) {
	if e.drag == nil || e.drag.component != c {
		return
	}
	c.Pos = pos
	e.updateGuide(c)
}

// PointerUp ends the drag on c and either snaps it to the nearest free
// point or returns it to where the drag began.
func (e *Editor) PointerUp(c *PlacedComponent) (Outcome, error) {
	if e.drag == nil || e.drag.component != c {
		err := fmt.Errorf("shipyard: pointer up: %w", ErrMissingOrigin)
		e.log.WithError(err).Error("release without drag context")
		return OutcomeRevertedNoPoint, err
	}

	p, ok := e.Nearest(c.Pos)
	switch {
	case !ok:
		e.restore(c)
		e.log.WithField("kind", c.Kind.Name).Debug("no attachment points, reverted")
		return OutcomeRevertedNoPoint, nil
	case !p.Free():
		e.restore(c)
		e.log.WithFields(logrus.Fields{"kind": c.Kind.Name, "x": p.Pos.X, "y": p.Pos.Y}).Debug("point occupied, reverted")
		return OutcomeRevertedOccupied, nil
	}

	c.Pos = p.Pos
	c.Scale = p.Scale()
	e.occupy(c, p)
	e.endDrag()
	e.log.WithFields(logrus.Fields{"kind": c.Kind.Name, "x": p.Pos.X, "y": p.Pos.Y}).Info("component snapped")
	return OutcomeSnapped, nil
}

// Revert abandons the drag on c and puts it back where the drag began.
func (e *Editor) Revert(c *PlacedComponent) error {
	if e.drag == nil || e.drag.component != c {
		err := fmt.Errorf("shipyard: revert: %w", ErrMissingOrigin)
		e.log.WithError(err).Error("revert without drag context")
		return err
	}
	e.restore(c)
	return nil
}

func (e *Editor) restore(c *PlacedComponent) {
	d := e.drag
	c.Pos = d.origin
	c.Scale = d.originScale
	if d.originPoint != nil && d.originPoint.Free() {
		e.occupy(c, d.originPoint)
	}
	e.endDrag()
}

func (e *Editor) endDrag() {
	if e.drag != nil {
		e.drag.component.dragging = false
		e.drag.component.Alpha = restAlpha
	}
	e.drag = nil
	e.guide = GuideLine{}
}

func (e *Editor) updateGuide(c *PlacedComponent) {
	p, ok := e.Nearest(c.Pos)
	if !ok {
		e.guide = GuideLine{}
		return
	}
	e.guide = GuideLine{Visible: true, From: c.Pos, To: p.Pos}
}
