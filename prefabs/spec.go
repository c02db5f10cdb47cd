package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidSpec is wrapped by every Validate failure.
var ErrInvalidSpec = errors.New("invalid spec")

// Spec files shipped with the tools.
const (
	HullFile     = "corvette.yaml"
	PaletteFile  = "components.yaml"
	WorldMapFile = "worldmap.yaml"
	UnitsFile    = "units.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type Vec2Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type CanvasSpec struct {
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Background *YAMLColor `yaml:"background"`
}

// MountSpec is one attachment point on a hull, in canvas coordinates.
type MountSpec struct {
	X           float64  `yaml:"x"`
	Y           float64  `yaml:"y"`
	FlipX       bool     `yaml:"flip_x"`
	FlipY       bool     `yaml:"flip_y"`
	MountOffset Vec2Spec `yaml:"mount_offset"`
}

type GuideLineSpec struct {
	Width float32    `yaml:"width"`
	Color *YAMLColor `yaml:"color"`
}

type HullSpec struct {
	Name      string        `yaml:"name"`
	Texture   string        `yaml:"texture"`
	Canvas    CanvasSpec    `yaml:"canvas"`
	Mounts    []MountSpec   `yaml:"mounts"`
	GuideLine GuideLineSpec `yaml:"guide_line"`
}

func (h HullSpec) Validate() error {
	if strings.TrimSpace(h.Texture) == "" {
		return fmt.Errorf("prefabs: hull %q: texture is required: %w", h.Name, ErrInvalidSpec)
	}
	if h.Canvas.Width <= 0 || h.Canvas.Height <= 0 {
		return fmt.Errorf("prefabs: hull %q: canvas %dx%d: %w", h.Name, h.Canvas.Width, h.Canvas.Height, ErrInvalidSpec)
	}
	return nil
}

// Center is where the base sprite is drawn (the canvas centre).
func (h HullSpec) Center() (float64, float64) {
	return float64(h.Canvas.Width) / 2, float64(h.Canvas.Height) / 2
}

type ComponentSpec struct {
	Name    string `yaml:"name"`
	Texture string `yaml:"texture"`
}

type PaletteSpec struct {
	Components []ComponentSpec `yaml:"components"`
}

func (p PaletteSpec) Validate() error {
	seen := make(map[string]bool, len(p.Components))
	for i, c := range p.Components {
		if c.Name == "" || c.Texture == "" {
			return fmt.Errorf("prefabs: palette entry %d needs name and texture: %w", i, ErrInvalidSpec)
		}
		if seen[c.Name] {
			return fmt.Errorf("prefabs: palette entry %q is duplicated: %w", c.Name, ErrInvalidSpec)
		}
		seen[c.Name] = true
	}
	return nil
}

// CellSeedSpec attaches initial metadata to a grid cell.
type CellSeedSpec struct {
	Col  int            `yaml:"col"`
	Row  int            `yaml:"row"`
	Data map[string]any `yaml:"data"`
}

type WorldMapSpec struct {
	Name       string         `yaml:"name"`
	Background string         `yaml:"background"`
	Width      float64        `yaml:"width"`
	Height     float64        `yaml:"height"`
	GridWidth  float64        `yaml:"grid_width"`
	GridHeight float64        `yaml:"grid_height"`
	HexRadius  float64        `yaml:"hex_radius"`
	MinRadius  float64        `yaml:"min_radius"`
	MinZoom    float64        `yaml:"min_zoom"`
	MaxZoom    float64        `yaml:"max_zoom"`
	ZoomStep   float64        `yaml:"zoom_step"`
	PanStep    float64        `yaml:"pan_step"`
	ResizeStep float64        `yaml:"resize_step"`
	LineWidth  float32        `yaml:"line_width"`
	LineColor  *YAMLColor     `yaml:"line_color"`
	Script     string         `yaml:"script"`
	Cells      []CellSeedSpec `yaml:"cells"`
}

func (w WorldMapSpec) Validate() error {
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("prefabs: world map %q: size %vx%v: %w", w.Name, w.Width, w.Height, ErrInvalidSpec)
	}
	if w.HexRadius <= 0 {
		return fmt.Errorf("prefabs: world map %q: hex_radius must be positive: %w", w.Name, ErrInvalidSpec)
	}
	if w.MinZoom < 0 || (w.MaxZoom > 0 && w.MaxZoom < w.MinZoom) {
		return fmt.Errorf("prefabs: world map %q: zoom range [%v, %v]: %w", w.Name, w.MinZoom, w.MaxZoom, ErrInvalidSpec)
	}
	return nil
}

// StatValue is a unit stat that is usually a number but may be free text
// ("Fly Over"). It keeps the scalar exactly as written.
type StatValue string

func (s *StatValue) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("stat must be a scalar, got kind %d", value.Kind)
	}
	*s = StatValue(value.Value)
	return nil
}

type UnitTemplateSpec struct {
	Type         string    `yaml:"type"`
	Description  string    `yaml:"description"`
	FS           StatValue `yaml:"fs"`
	Armor        StatValue `yaml:"armor"`
	Speed        StatValue `yaml:"speed"`
	Range        StatValue `yaml:"range"`
	SpecialRules string    `yaml:"special_rules"`
	Upgrades     string    `yaml:"upgrades"`
}

type UnitsSpec struct {
	Endpoint string             `yaml:"endpoint"`
	Units    []UnitTemplateSpec `yaml:"units"`
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// Or returns the parsed color, or fallback when the field was absent.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}
