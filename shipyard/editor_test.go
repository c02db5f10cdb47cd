package shipyard

import (
	"errors"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/wargear/prefabs"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

var turret = ComponentKind{Name: "Turret", Texture: "turret"}

func corvette() []AttachmentPoint {
	return []AttachmentPoint{
		{Pos: cp.Vector{X: 400, Y: 280}, MountOffset: cp.Vector{Y: -10}},
		{Pos: cp.Vector{X: 400, Y: 320}, FlipY: true, MountOffset: cp.Vector{Y: 10}},
	}
}

func newEditor(t *testing.T, points []AttachmentPoint) (*Editor, *logtest.Hook) {
	t.Helper()
	l, hook := logtest.NewNullLogger()
	l.SetLevel(logrus.DebugLevel)
	e := New(cp.Vector{X: 400, Y: 300}, points, WithLogger(l))
	e.LoadPalette([]ComponentKind{turret})
	return e, hook
}

// dropAndRelease drops a component and releases it without moving.
func dropAndRelease(t *testing.T, e *Editor, pos cp.Vector) (*PlacedComponent, Outcome) {
	t.Helper()
	c := e.DropComponent(turret, pos)
	if err := e.PointerDown(c); err != nil {
		t.Fatalf("pointer down: %v", err)
	}
	out, err := e.PointerUp(c)
	if err != nil {
		t.Fatalf("pointer up: %v", err)
	}
	return c, out
}

func assertSingleOccupancy(t *testing.T, e *Editor) {
	t.Helper()
	seen := make(map[*AttachmentPoint]*PlacedComponent)
	for _, c := range e.Components() {
		p := c.Point()
		if p == nil {
			continue
		}
		if other, ok := seen[p]; ok {
			t.Fatalf("point %v held by %p and %p", p.Pos, other, c)
		}
		seen[p] = c
		if p.Occupant() != c {
			t.Fatalf("point %v occupant mismatch", p.Pos)
		}
	}
	for _, p := range e.Points() {
		if p.Occupant() != nil && seen[p] != p.Occupant() {
			t.Fatalf("point %v has stale occupant", p.Pos)
		}
	}
}

func TestCorvetteScenario(t *testing.T) {
	e, _ := newEditor(t, corvette())

	first, out := dropAndRelease(t, e, cp.Vector{X: 400, Y: 282})
	if out != OutcomeSnapped {
		t.Fatalf("first: outcome %v", out)
	}
	if first.Pos != (cp.Vector{X: 400, Y: 280}) || first.Scale != (cp.Vector{X: 1, Y: 1}) {
		t.Fatalf("first: pos %v scale %v", first.Pos, first.Scale)
	}

	second, out := dropAndRelease(t, e, cp.Vector{X: 400, Y: 318})
	if out != OutcomeSnapped {
		t.Fatalf("second: outcome %v", out)
	}
	if second.Pos != (cp.Vector{X: 400, Y: 320}) || second.Scale != (cp.Vector{X: 1, Y: -1}) {
		t.Fatalf("second: pos %v scale %v", second.Pos, second.Scale)
	}

	drop := cp.Vector{X: 403, Y: 277}
	third, out := dropAndRelease(t, e, drop)
	if out != OutcomeRevertedOccupied {
		t.Fatalf("third: outcome %v", out)
	}
	if third.Pos != drop || third.Point() != nil {
		t.Fatalf("third: pos %v point %v", third.Pos, third.Point())
	}
	if e.Points()[0].Occupant() != first {
		t.Fatal("occupied point changed hands")
	}
	assertSingleOccupancy(t, e)
}

func TestImmediateReleaseSnapsToNearest(t *testing.T) {
	cases := []struct {
		name string
		drop cp.Vector
		want cp.Vector
	}{
		{"far_above", cp.Vector{X: 10, Y: 10}, cp.Vector{X: 400, Y: 280}},
		{"far_below", cp.Vector{X: 700, Y: 590}, cp.Vector{X: 400, Y: 320}},
		// equidistant resolves to the first point
		{"midpoint", cp.Vector{X: 400, Y: 300}, cp.Vector{X: 400, Y: 280}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, _ := newEditor(t, corvette())
			comp, out := dropAndRelease(t, e, c.drop)
			if out != OutcomeSnapped || comp.Pos != c.want {
				t.Fatalf("outcome %v pos %v, want snapped to %v", out, comp.Pos, c.want)
			}
		})
	}
}

func TestReleaseOverOccupiedRevertsExactly(t *testing.T) {
	e, _ := newEditor(t, corvette())
	holder, _ := dropAndRelease(t, e, cp.Vector{X: 400, Y: 280})

	origin := cp.Vector{X: 123.25, Y: 456.5}
	c := e.DropComponent(turret, origin)
	if err := e.PointerDown(c); err != nil {
		t.Fatal(err)
	}
	e.PointerMove(c, cp.Vector{X: 250, Y: 250})
	e.PointerMove(c, cp.Vector{X: 399, Y: 281})
	out, err := e.PointerUp(c)
	if err != nil {
		t.Fatal(err)
	}
	if out != OutcomeRevertedOccupied {
		t.Fatalf("outcome %v", out)
	}
	if c.Pos.X != origin.X || c.Pos.Y != origin.Y {
		t.Fatalf("pos %v, want %v", c.Pos, origin)
	}
	if e.Points()[0].Occupant() != holder {
		t.Fatal("occupant replaced")
	}
	assertSingleOccupancy(t, e)
}

func TestReleaseWithoutPointsReverts(t *testing.T) {
	e, _ := newEditor(t, nil)
	c := e.DropComponent(turret, cp.Vector{X: 50, Y: 60})
	if err := e.PointerDown(c); err != nil {
		t.Fatal(err)
	}
	if g := e.GuideLine(); g.Visible {
		t.Fatal("guide line shown with no points")
	}
	e.PointerMove(c, cp.Vector{X: 300, Y: 300})
	out, err := e.PointerUp(c)
	if err != nil {
		t.Fatal(err)
	}
	if out != OutcomeRevertedNoPoint || c.Pos != (cp.Vector{X: 50, Y: 60}) {
		t.Fatalf("outcome %v pos %v", out, c.Pos)
	}
}

func TestDragFromPointFreesAndRestores(t *testing.T) {
	e, _ := newEditor(t, corvette())
	a, _ := dropAndRelease(t, e, cp.Vector{X: 400, Y: 318})
	bottom := e.Points()[1]

	if err := e.PointerDown(a); err != nil {
		t.Fatal(err)
	}
	if !bottom.Free() || a.Point() != nil {
		t.Fatal("dragged component still occupies its point")
	}
	if a.Alpha != dragAlpha || !a.Dragging() {
		t.Fatalf("alpha %v dragging %v", a.Alpha, a.Dragging())
	}

	// move onto the free top point
	e.PointerMove(a, cp.Vector{X: 405, Y: 285})
	g := e.GuideLine()
	if !g.Visible || g.From != a.Pos || g.To != e.Points()[0].Pos {
		t.Fatalf("guide line %+v", g)
	}
	if out, _ := e.PointerUp(a); out != OutcomeSnapped {
		t.Fatalf("outcome %v", out)
	}
	if a.Scale != (cp.Vector{X: 1, Y: 1}) || !bottom.Free() {
		t.Fatalf("scale %v, bottom free %v", a.Scale, bottom.Free())
	}
	if a.Alpha != restAlpha || e.GuideLine().Visible {
		t.Fatal("drag visuals not restored")
	}

	// a second component takes the bottom point, then a is dragged onto it
	b, _ := dropAndRelease(t, e, cp.Vector{X: 400, Y: 330})
	if err := e.PointerDown(a); err != nil {
		t.Fatal(err)
	}
	e.PointerMove(a, cp.Vector{X: 400, Y: 330})
	if out, _ := e.PointerUp(a); out != OutcomeRevertedOccupied {
		t.Fatalf("outcome %v", out)
	}
	if a.Point() != e.Points()[0] || a.Pos != e.Points()[0].Pos {
		t.Fatal("reverted component did not return to its point")
	}
	if b.Point() != bottom || b.Scale != (cp.Vector{X: 1, Y: -1}) {
		t.Fatal("occupant of bottom point disturbed")
	}
	assertSingleOccupancy(t, e)
}

func TestPointerDownTwiceKeepsOrigin(t *testing.T) {
	e, _ := newEditor(t, corvette())
	a, _ := dropAndRelease(t, e, cp.Vector{X: 400, Y: 282})
	top := e.Points()[0]
	b, _ := dropAndRelease(t, e, cp.Vector{X: 400, Y: 318})

	if err := e.PointerDown(a); err != nil {
		t.Fatal(err)
	}
	e.PointerMove(a, cp.Vector{X: 400, Y: 325})
	if err := e.PointerDown(a); err != nil {
		t.Fatal(err)
	}
	if a.Origin != top.Pos {
		t.Fatalf("origin = %v, want %v", a.Origin, top.Pos)
	}

	if out, _ := e.PointerUp(a); out != OutcomeRevertedOccupied {
		t.Fatalf("outcome %v", out)
	}
	if a.Pos != top.Pos || a.Point() != top {
		t.Fatalf("component at %v on %v, want back on the top point", a.Pos, a.Point())
	}
	if b.Point() != e.Points()[1] {
		t.Fatal("occupant of bottom point disturbed")
	}
	assertSingleOccupancy(t, e)
}

func TestPointerUpWithoutDragIsError(t *testing.T) {
	e, hook := newEditor(t, corvette())
	c := e.DropComponent(turret, cp.Vector{X: 1, Y: 1})

	if _, err := e.PointerUp(c); !errors.Is(err, ErrMissingOrigin) {
		t.Fatalf("expected ErrMissingOrigin, got %v", err)
	}
	if err := e.Revert(c); !errors.Is(err, ErrMissingOrigin) {
		t.Fatalf("expected ErrMissingOrigin, got %v", err)
	}
	entry := hook.LastEntry()
	if entry == nil || entry.Level != logrus.ErrorLevel {
		t.Fatalf("expected error log, got %+v", entry)
	}
	if c.Pos != (cp.Vector{X: 1, Y: 1}) {
		t.Fatal("component moved by failed release")
	}
}

func TestPointerMoveIgnoredWhenNotDragging(t *testing.T) {
	e, _ := newEditor(t, corvette())
	c := e.DropComponent(turret, cp.Vector{X: 10, Y: 10})
	e.PointerMove(c, cp.Vector{X: 99, Y: 99})
	if c.Pos != (cp.Vector{X: 10, Y: 10}) {
		t.Fatalf("moved to %v", c.Pos)
	}
}

func TestComponentAtPicksTopmost(t *testing.T) {
	e, _ := newEditor(t, nil)
	bottom := e.DropComponent(turret, cp.Vector{X: 100, Y: 100})
	top := e.DropComponent(turret, cp.Vector{X: 110, Y: 100})

	if got := e.ComponentAt(cp.Vector{X: 105, Y: 100}); got != top {
		t.Fatal("overlap should resolve to the last dropped component")
	}
	if got := e.ComponentAt(cp.Vector{X: 86, Y: 100}); got != bottom {
		t.Fatal("expected bottom component")
	}
	if got := e.ComponentAt(cp.Vector{X: 500, Y: 500}); got != nil {
		t.Fatal("expected no hit")
	}

	// grabbing raises to the top
	if err := e.PointerDown(bottom); err != nil {
		t.Fatal(err)
	}
	if _, err := e.PointerUp(bottom); err != nil {
		t.Fatal(err)
	}
	if got := e.ComponentAt(cp.Vector{X: 105, Y: 100}); got != bottom {
		t.Fatal("dragged component should be on top")
	}
}

func TestExternalDrag(t *testing.T) {
	e, _ := newEditor(t, corvette())

	unknown := ComponentKind{Name: "Warp Core", Texture: "warp"}
	if err := e.BeginExternalDrag(unknown, cp.Vector{}); !errors.Is(err, ErrUnknownComponent) {
		t.Fatalf("expected ErrUnknownComponent, got %v", err)
	}

	if err := e.BeginExternalDrag(turret, cp.Vector{X: 5, Y: 5}); err != nil {
		t.Fatal(err)
	}
	e.MoveExternalDrag(cp.Vector{X: 300, Y: 200})
	if d := e.ExternalDrag(); d == nil || d.Pointer != (cp.Vector{X: 300, Y: 200}) {
		t.Fatalf("external drag %+v", d)
	}
	if c := e.EndExternalDrag(cp.Vector{X: 80, Y: 200}, false); c != nil || len(e.Components()) != 0 {
		t.Fatal("release off canvas must not drop")
	}

	if err := e.BeginExternalDrag(turret, cp.Vector{}); err != nil {
		t.Fatal(err)
	}
	c := e.EndExternalDrag(cp.Vector{X: 80, Y: 200}, true)
	if c == nil || c.Origin != (cp.Vector{X: 80, Y: 200}) || e.ExternalDrag() != nil {
		t.Fatalf("drop over canvas gave %+v", c)
	}
	if e.ComponentAt(c.Pos) != c {
		t.Fatal("dropped component is not hit-testable")
	}

	if err := e.BeginExternalDrag(turret, cp.Vector{}); err != nil {
		t.Fatal(err)
	}
	e.CancelExternalDrag()
	if e.EndExternalDrag(cp.Vector{}, true) != nil {
		t.Fatal("cancelled drag still dropped")
	}
}

func TestDeleteFreesPoint(t *testing.T) {
	e, _ := newEditor(t, corvette())
	c, _ := dropAndRelease(t, e, cp.Vector{X: 400, Y: 280})
	if err := e.Delete(c); err != nil {
		t.Fatal(err)
	}
	if !e.Points()[0].Free() || len(e.Components()) != 0 {
		t.Fatal("delete left state behind")
	}
	if err := e.Delete(c); !errors.Is(err, ErrUnknownComponent) {
		t.Fatalf("expected ErrUnknownComponent, got %v", err)
	}
}

func TestNewFromHull(t *testing.T) {
	prev := prefabs.Dir
	prefabs.Dir = t.TempDir()
	t.Cleanup(func() { prefabs.Dir = prev })

	hull, err := prefabs.LoadSpec[prefabs.HullSpec](prefabs.HullFile)
	if err != nil {
		t.Fatal(err)
	}
	palette, err := prefabs.LoadSpec[prefabs.PaletteSpec](prefabs.PaletteFile)
	if err != nil {
		t.Fatal(err)
	}
	e := NewFromHull(hull)
	e.LoadPalette(KindsFromPalette(palette))

	if e.Base != (cp.Vector{X: 400, Y: 300}) {
		t.Fatalf("base %v", e.Base)
	}
	if len(e.Points()) != 2 || !e.Points()[1].FlipY || e.Points()[1].MountOffset != (cp.Vector{Y: 10}) {
		t.Fatalf("points %+v", e.Points())
	}
	if len(e.Palette()) != 4 || e.Palette()[3].Name != "Railgun" {
		t.Fatalf("palette %+v", e.Palette())
	}
}
