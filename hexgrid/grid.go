package hexgrid

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
)

// Grid is the computed cell set for a viewport with metadata attached.
type Grid struct {
	view       Viewport
	cells      []Cell
	cols, rows int
	store      *MetaStore
}

func NewGrid(store *MetaStore) *Grid {
	if store == nil {
		store = NewMetaStore()
	}
	return &Grid{store: store}
}

func (g *Grid) Store() *MetaStore {
	return g.store
}

// Regrid recomputes the cells for v and re-attaches stored metadata.
func (g *Grid) Regrid(v Viewport) {
	g.view = v
	g.cols, g.rows = Dims(v)
	g.cells = ComputeGrid(v)
	for i := range g.cells {
		g.cells[i].Data = g.store.Get(g.cells[i].Coord)
	}
}

func (g *Grid) Cells() []Cell {
	return g.cells
}

func (g *Grid) Dims() (cols, rows int) {
	return g.cols, g.rows
}

func (g *Grid) inside(c Coord) bool {
	return c.Col >= 0 && c.Row >= 0 && c.Col < g.cols && c.Row < g.rows
}

// Cell returns the cell at c if it is part of the grid.
func (g *Grid) Cell(c Coord) (*Cell, bool) {
	if !g.inside(c) {
		return nil, false
	}
	return &g.cells[c.Row*g.cols+c.Col], true
}

// CellAt returns the cell containing the world position p.
func (g *Grid) CellAt(p cp.Vector) (*Cell, bool) {
	if g.view.Radius <= 0 {
		return nil, false
	}
	return g.Cell(CoordAt(g.view, p))
}

// EachVisible calls fn for every cell that may intersect bb.
func (g *Grid) EachVisible(bb cp.BB, fn func(*Cell)) {
	r := g.view.Radius
	if r <= 0 || g.cols == 0 {
		return
	}
	w, h := 1.5*r, sqrt3*r
	c0 := clampIndex(int(math.Floor((bb.L-g.view.OffsetX-r)/w)), g.cols)
	c1 := clampIndex(int(math.Ceil((bb.R-g.view.OffsetX+r)/w)), g.cols)
	r0 := clampIndex(int(math.Floor((bb.B-g.view.OffsetY-h)/h)), g.rows)
	r1 := clampIndex(int(math.Ceil((bb.T-g.view.OffsetY+h)/h)), g.rows)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			fn(&g.cells[row*g.cols+col])
		}
	}
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// Click hands the cell under p to hook. It returns the clicked cell, or nil
// when p is outside the grid.
func (g *Grid) Click(p cp.Vector, hook ClickHook) (*Cell, error) {
	cell, ok := g.CellAt(p)
	if !ok {
		return nil, nil
	}
	cell.Data = g.store.Ensure(cell.Coord)
	if hook == nil {
		return cell, nil
	}
	if err := hook.OnCellClick(cell); err != nil {
		return cell, fmt.Errorf("hexgrid: click %d,%d: %w", cell.Col, cell.Row, err)
	}
	// hooks may replace the map
	g.store.Set(cell.Coord, cell.Data)
	return cell, nil
}
