package shipyard

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

// ExternalDrag is a palette entry being carried towards the canvas.
type ExternalDrag struct {
	Kind    ComponentKind
	Pointer cp.Vector
}

// ExternalDrag returns the in-flight palette drag, or nil.
func (e *Editor) ExternalDrag() *ExternalDrag {
	return e.external
}

// BeginExternalDrag starts carrying kind from the palette. pointer is in
// screen coordinates; it is only used to draw the ghost icon.
func (e *Editor) BeginExternalDrag(kind ComponentKind, pointer cp.Vector) error {
	if !e.hasKind(kind) {
		return fmt.Errorf("shipyard: begin drag %q: %w", kind.Name, ErrUnknownComponent)
	}
	e.external = &ExternalDrag{Kind: kind, Pointer: pointer}
	return nil
}

func (e *Editor) MoveExternalDrag(pointer cp.Vector) {
	if e.external != nil {
		e.external.Pointer = pointer
	}
}

// EndExternalDrag finishes a palette drag. When the release is over the
// canvas the component is dropped at canvasPos.
func (e *Editor) EndExternalDrag(canvasPos cp.Vector, overCanvas bool) *PlacedComponent {
	if e.external == nil {
		return nil
	}
	kind := e.external.Kind
	e.external = nil
	if !overCanvas {
		return nil
	}
	return e.DropComponent(kind, canvasPos)
}

func (e *Editor) CancelExternalDrag() {
	e.external = nil
}
