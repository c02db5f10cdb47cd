package hexgrid

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/wargear/prefabs"
)

func TestPanRightFiveTimes(t *testing.T) {
	v := testViewport()
	before := ComputeGrid(v)
	for i := 0; i < 5; i++ {
		v.Pan(1, 0)
	}
	after := ComputeGrid(v)

	if v.OffsetX != 5 || v.OffsetY != 0 {
		t.Fatalf("offset (%v,%v), want (5,0)", v.OffsetX, v.OffsetY)
	}
	if len(before) != len(after) {
		t.Fatalf("cell count %d -> %d", len(before), len(after))
	}
	for i := range before {
		if after[i].Center.X != before[i].Center.X+5 || after[i].Center.Y != before[i].Center.Y {
			t.Fatalf("cell %v moved from %v to %v", before[i].Coord, before[i].Center, after[i].Center)
		}
	}
}

func TestZoomFloor(t *testing.T) {
	v := testViewport()
	for i := 0; i < 50; i++ {
		v.ZoomBy(-0.1)
		if v.Zoom < ZoomFloor {
			t.Fatalf("zoom %v below floor after %d steps", v.Zoom, i+1)
		}
	}
	v.ZoomBy(-100)
	if v.Zoom != ZoomFloor {
		t.Fatalf("zoom %v, want %v", v.Zoom, ZoomFloor)
	}
	v.ZoomBy(100)
	if v.Zoom != defaultMaxZoom {
		t.Fatalf("zoom %v, want max %v", v.Zoom, defaultMaxZoom)
	}

	// a configured minimum below the floor does not lower it
	v.MinZoom = 0.01
	v.ZoomBy(-100)
	if v.Zoom != ZoomFloor {
		t.Fatalf("zoom %v, want %v", v.Zoom, ZoomFloor)
	}
}

func TestResizeFloor(t *testing.T) {
	v := testViewport()
	for i := 0; i < 200; i++ {
		v.Resize(-0.1)
		if v.Radius < RadiusFloor {
			t.Fatalf("radius %v below floor", v.Radius)
		}
	}
	if v.Radius != RadiusFloor {
		t.Fatalf("radius %v, want %v", v.Radius, RadiusFloor)
	}
	v.Resize(0.1)
	if math.Abs(v.Radius-1.1) > 1e-9 {
		t.Fatalf("radius %v after grow", v.Radius)
	}
}

func TestScrollClampsToBounds(t *testing.T) {
	v := testViewport()
	v.SetViewSize(800, 600)

	v.Scroll(-50, -50)
	if v.ScrollX != 0 || v.ScrollY != 0 {
		t.Fatalf("scroll (%v,%v), want (0,0)", v.ScrollX, v.ScrollY)
	}
	v.Scroll(5000, 5000)
	if v.ScrollX != 2265-800 || v.ScrollY != 1317-600 {
		t.Fatalf("scroll (%v,%v), want (1465,717)", v.ScrollX, v.ScrollY)
	}

	// zoomed far out the whole world fits and is centred
	v.ZoomBy(-100)
	if want := (2265 - 8000) / 2.0; math.Abs(v.ScrollX-want) > 1e-9 {
		t.Fatalf("scroll x %v, want %v", v.ScrollX, want)
	}
}

func TestZoomAtKeepsPointUnderCursor(t *testing.T) {
	v := Viewport{Zoom: 1, ScrollX: 100, ScrollY: 40}
	wx, wy := v.ToWorld(400, 300)
	v.ZoomAt(1.5, 400, 300)
	gx, gy := v.ToWorld(400, 300)
	if math.Abs(gx-wx) > 1e-9 || math.Abs(gy-wy) > 1e-9 {
		t.Fatalf("world point moved from (%v,%v) to (%v,%v)", wx, wy, gx, gy)
	}
	if v.Zoom != 2.5 {
		t.Fatalf("zoom %v", v.Zoom)
	}
}

func TestDragPan(t *testing.T) {
	var d DragPan
	if d.Active() {
		t.Fatal("zero value should be idle")
	}
	if got := d.Move(cp.Vector{X: 10, Y: 10}); got != (cp.Vector{}) {
		t.Fatalf("idle move returned %v", got)
	}

	d.Down(cp.Vector{X: 100, Y: 100})
	if !d.Active() {
		t.Fatal("expected dragging")
	}
	steps := []struct {
		p, want cp.Vector
	}{
		{cp.Vector{X: 110, Y: 95}, cp.Vector{X: 10, Y: -5}},
		{cp.Vector{X: 110, Y: 95}, cp.Vector{}},
		{cp.Vector{X: 90, Y: 100}, cp.Vector{X: -20, Y: 5}},
	}
	for i, s := range steps {
		if got := d.Move(s.p); got != s.want {
			t.Fatalf("step %d delta %v, want %v", i, got, s.want)
		}
	}
	d.Up()
	if d.Active() || d.Move(cp.Vector{X: 500}) != (cp.Vector{}) {
		t.Fatal("expected idle after Up")
	}
}

func TestApplyDragScalesByZoom(t *testing.T) {
	v := Viewport{Zoom: 2, ScrollX: 100, ScrollY: 100}
	ApplyDrag(&v, cp.Vector{X: 20, Y: -10})
	if v.ScrollX != 90 || v.ScrollY != 105 {
		t.Fatalf("scroll (%v,%v), want (90,105)", v.ScrollX, v.ScrollY)
	}
}

func TestNewViewportFromSpec(t *testing.T) {
	prev := prefabs.Dir
	prefabs.Dir = t.TempDir()
	t.Cleanup(func() { prefabs.Dir = prev })

	spec, err := prefabs.LoadSpec[prefabs.WorldMapSpec](prefabs.WorldMapFile)
	if err != nil {
		t.Fatal(err)
	}
	v := NewViewport(spec)
	if v.Radius != 16 || v.GridWidth != 2265 || v.GridHeight != 1300 || v.BoundsHeight != 1317 || v.Zoom != 1 {
		t.Fatalf("viewport %+v", v)
	}
}
