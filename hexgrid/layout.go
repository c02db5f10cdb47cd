package hexgrid

import (
	"math"

	"github.com/jakecoffman/cp"
)

const sqrt3 = 1.7320508075688772

// Coord addresses a cell by column and row in odd-q offset layout: odd
// columns sit half a row lower than even ones.
type Coord struct {
	Col, Row int
}

// Cell is a flat-top hexagon of the grid.
type Cell struct {
	Coord
	Center cp.Vector
	Radius float64
	// Data is the cell's metadata map, nil until something is stored.
	Data map[string]any
}

func (c *Cell) Corners() [6]cp.Vector {
	return Corners(c.Center, c.Radius)
}

// Contains reports whether p lies inside the hexagon.
func (c *Cell) Contains(p cp.Vector) bool {
	dx := math.Abs(p.X - c.Center.X)
	dy := math.Abs(p.Y - c.Center.Y)
	h := sqrt3 / 2 * c.Radius
	if dx > c.Radius || dy > h {
		return false
	}
	return h*c.Radius-h*dx-c.Radius*dy/2 >= -1e-9
}

// Corners returns the vertices of a flat-top hexagon, vertex i at
// 60°·i + 60° measured from +X towards +Y (screen down).
func Corners(center cp.Vector, radius float64) [6]cp.Vector {
	var out [6]cp.Vector
	for i := range out {
		a := math.Pi/3 + math.Pi/3*float64(i)
		out[i] = cp.Vector{X: center.X + radius*math.Cos(a), Y: center.Y + radius*math.Sin(a)}
	}
	return out
}

// Dims is the number of columns and rows needed to cover the grid area.
func Dims(v Viewport) (cols, rows int) {
	if v.Radius <= 0 || v.GridWidth <= 0 || v.GridHeight <= 0 {
		return 0, 0
	}
	return int(math.Ceil(v.GridWidth / (1.5 * v.Radius))), int(math.Ceil(v.GridHeight / (sqrt3 * v.Radius)))
}

// CenterOf is the centre of the cell at c.
func CenterOf(v Viewport, c Coord) cp.Vector {
	w := 1.5 * v.Radius
	h := sqrt3 * v.Radius
	y := h*float64(c.Row) + v.OffsetY
	if c.Col&1 == 1 {
		y += h / 2
	}
	return cp.Vector{X: w*float64(c.Col) + v.OffsetX, Y: y}
}

// ComputeGrid lays out every cell for v in row-major order. Cells carry no
// metadata; see Grid for that.
func ComputeGrid(v Viewport) []Cell {
	cols, rows := Dims(v)
	if cols == 0 || rows == 0 {
		return nil
	}
	cells := make([]Cell, 0, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			c := Coord{Col: col, Row: row}
			cells = append(cells, Cell{Coord: c, Center: CenterOf(v, c), Radius: v.Radius})
		}
	}
	return cells
}

// CoordAt returns the coordinate of the hexagon containing p, whether or
// not it lies inside the grid area.
func CoordAt(v Viewport, p cp.Vector) Coord {
	x := p.X - v.OffsetX
	y := p.Y - v.OffsetY
	q := (2.0 / 3 * x) / v.Radius
	r := (-1.0/3*x + sqrt3/3*y) / v.Radius
	aq, ar := axialRound(q, r)
	return Coord{Col: aq, Row: ar + (aq-(aq&1))/2}
}

func axialRound(q, r float64) (int, int) {
	x, _, z := cubeRound(q, -q-r, r)
	return x, z
}

func cubeRound(x, y, z float64) (rx, ry, rz int) {
	xf := math.Round(x)
	yf := math.Round(y)
	zf := math.Round(z)
	xd := math.Abs(xf - x)
	yd := math.Abs(yf - y)
	zd := math.Abs(zf - z)
	if xd > yd && xd > zd {
		xf = -yf - zf
	} else if yd > zd {
		yf = -xf - zf
	} else {
		zf = -xf - yf
	}
	return int(xf), int(yf), int(zf)
}
