package hexgrid

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// ClickHook receives clicked cells. It may read or modify cell.Data.
type ClickHook interface {
	OnCellClick(cell *Cell) error
}

type HookFunc func(cell *Cell) error

func (f HookFunc) OnCellClick(cell *Cell) error {
	return f(cell)
}

// LogHook logs every click with the cell's metadata.
type LogHook struct {
	Log *logrus.Entry
}

func (h LogHook) OnCellClick(cell *Cell) error {
	h.Log.WithFields(logrus.Fields{
		"col":  cell.Col,
		"row":  cell.Row,
		"x":    cell.Center.X,
		"y":    cell.Center.Y,
		"data": cell.Data,
	}).Info("hexagon clicked")
	return nil
}

type chain []ClickHook

func (c chain) OnCellClick(cell *Cell) error {
	var errs []error
	for _, h := range c {
		if err := h.OnCellClick(cell); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ChainHooks runs hooks in order. Every hook runs even if an earlier one fails.
func ChainHooks(hooks ...ClickHook) ClickHook {
	out := make(chain, 0, len(hooks))
	for _, h := range hooks {
		if h != nil {
			out = append(out, h)
		}
	}
	return out
}
