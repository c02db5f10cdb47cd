package hexgrid

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type cellExport struct {
	Col    int            `yaml:"col"`
	Row    int            `yaml:"row"`
	X      float64        `yaml:"x"`
	Y      float64        `yaml:"y"`
	Radius float64        `yaml:"radius"`
	Data   map[string]any `yaml:"data"`
}

// MarshalCell renders a cell and its metadata as YAML, in the same shape
// as the seed cells of a world map spec.
func MarshalCell(cell *Cell) ([]byte, error) {
	data := cell.Data
	if data == nil {
		data = map[string]any{}
	}
	out, err := yaml.Marshal(cellExport{
		Col:    cell.Col,
		Row:    cell.Row,
		X:      cell.Center.X,
		Y:      cell.Center.Y,
		Radius: cell.Radius,
		Data:   data,
	})
	if err != nil {
		return nil, fmt.Errorf("hexgrid: marshal cell %d,%d: %w", cell.Col, cell.Row, err)
	}
	return out, nil
}
