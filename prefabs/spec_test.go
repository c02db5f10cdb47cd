package prefabs

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

// useDiskDir points the disk override at dir for the duration of the test.
func useDiskDir(t *testing.T, dir string) {
	t.Helper()
	prev := Dir
	Dir = dir
	t.Cleanup(func() { Dir = prev })
}

func TestEmbeddedSpecsLoad(t *testing.T) {
	useDiskDir(t, t.TempDir())

	hull, err := LoadSpec[HullSpec](HullFile)
	if err != nil {
		t.Fatalf("load hull: %v", err)
	}
	if err := hull.Validate(); err != nil {
		t.Fatalf("hull invalid: %v", err)
	}
	if len(hull.Mounts) != 2 {
		t.Fatalf("expected 2 mounts, got %d", len(hull.Mounts))
	}
	if cx, cy := hull.Center(); cx != 400 || cy != 300 {
		t.Fatalf("center = (%v,%v), want (400,300)", cx, cy)
	}
	bottom := hull.Mounts[1]
	if !bottom.FlipY || bottom.FlipX || bottom.MountOffset.Y != 10 {
		t.Fatalf("unexpected bottom mount %+v", bottom)
	}

	palette, err := LoadSpec[PaletteSpec](PaletteFile)
	if err != nil {
		t.Fatalf("load palette: %v", err)
	}
	if err := palette.Validate(); err != nil {
		t.Fatalf("palette invalid: %v", err)
	}
	if len(palette.Components) != 4 || palette.Components[1].Texture != "heavy_turret" {
		t.Fatalf("unexpected palette %+v", palette.Components)
	}

	world, err := LoadSpec[WorldMapSpec](WorldMapFile)
	if err != nil {
		t.Fatalf("load world map: %v", err)
	}
	if err := world.Validate(); err != nil {
		t.Fatalf("world map invalid: %v", err)
	}
	if world.HexRadius != 16 || world.MinZoom != 0.1 {
		t.Fatalf("unexpected world map %+v", world)
	}

	units, err := LoadSpec[UnitsSpec](UnitsFile)
	if err != nil {
		t.Fatalf("load units: %v", err)
	}
	if len(units.Units) == 0 || units.Endpoint == "" {
		t.Fatalf("units spec incomplete: %d units, endpoint %q", len(units.Units), units.Endpoint)
	}
}

func TestDiskOverride(t *testing.T) {
	dir := t.TempDir()
	useDiskDir(t, dir)

	spec := "components:\n  - name: Point Defense\n    texture: pd\n"
	if err := os.WriteFile(filepath.Join(dir, PaletteFile), []byte(spec), 0o644); err != nil {
		t.Fatal(err)
	}
	palette, err := LoadSpec[PaletteSpec](PaletteFile)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(palette.Components) != 1 || palette.Components[0].Name != "Point Defense" {
		t.Fatalf("disk copy not preferred: %+v", palette.Components)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"hull_without_texture", HullSpec{Name: "x", Canvas: CanvasSpec{Width: 1, Height: 1}}.Validate()},
		{"hull_without_canvas", HullSpec{Name: "x", Texture: "t"}.Validate()},
		{"palette_duplicate", PaletteSpec{Components: []ComponentSpec{{"A", "a"}, {"A", "b"}}}.Validate()},
		{"palette_missing_texture", PaletteSpec{Components: []ComponentSpec{{Name: "A"}}}.Validate()},
		{"world_zero_radius", WorldMapSpec{Width: 10, Height: 10}.Validate()},
		{"world_inverted_zoom", WorldMapSpec{Width: 10, Height: 10, HexRadius: 4, MinZoom: 2, MaxZoom: 1}.Validate()},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if !errors.Is(c.err, ErrInvalidSpec) {
				t.Fatalf("expected ErrInvalidSpec, got %v", c.err)
			}
		})
	}
}

func TestStatValueKeepsText(t *testing.T) {
	var u UnitTemplateSpec
	if err := yaml.Unmarshal([]byte("type: Bomber\nfs: 6\nrange: Fly Over\n"), &u); err != nil {
		t.Fatal(err)
	}
	if u.FS != "6" || u.Range != "Fly Over" {
		t.Fatalf("got fs=%q range=%q", u.FS, u.Range)
	}
	if err := yaml.Unmarshal([]byte("range: [1, 2]\n"), &u); err == nil {
		t.Fatal("expected error for sequence stat")
	}
}

func TestYAMLColor(t *testing.T) {
	var spec GuideLineSpec
	if err := yaml.Unmarshal([]byte("color: \"#ff000080\"\n"), &spec); err != nil {
		t.Fatal(err)
	}
	want := color.NRGBA{R: 0xff, A: 0x80}
	if spec.Color.Or(color.White) != want {
		t.Fatalf("color = %v, want %v", spec.Color.Color, want)
	}
	var empty GuideLineSpec
	if empty.Color.Or(color.White) != color.White {
		t.Fatal("nil color should fall back")
	}
}

func TestCleanScriptPath(t *testing.T) {
	cases := map[string]string{
		"inspect":                       "scripts/inspect.tengo",
		"inspect.tengo":                 "scripts/inspect.tengo",
		"scripts/inspect.tengo":         "scripts/inspect.tengo",
		"prefabs/scripts/inspect.tengo": "scripts/inspect.tengo",
		"prefabs/terrain":               "scripts/terrain.tengo",
	}
	for in, want := range cases {
		if got := cleanScriptPath(in); got != want {
			t.Fatalf("cleanScriptPath(%q) = %q, want %q", in, got, want)
		}
	}
	if _, err := LoadScript("inspect"); err != nil {
		t.Fatalf("embedded script missing: %v", err)
	}
}

func TestWatcherReportsSpecChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("watcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, PaletteFile), []byte("components: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(3 * time.Second)
	for {
		select {
		case name := <-w.Events:
			if name != PaletteFile {
				t.Fatalf("unexpected event for %q", name)
			}
			return
		case <-deadline:
			t.Fatal("no event for changed spec file")
		}
	}
}
