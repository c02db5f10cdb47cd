package hexgrid

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/wargear/logger"
	"github.com/milk9111/wargear/prefabs"
	"github.com/sirupsen/logrus"
)

// ScriptHook runs a tengo script for each clicked cell. The script sees a
// global `cell` map (col, row, x, y, radius, data) and may change
// cell.data; the result is written back to the cell.
type ScriptHook struct {
	name     string
	compiled *tengo.Compiled
	log      *logrus.Entry
}

// LoadScriptHook compiles prefabs/scripts/<name>.tengo.
func LoadScriptHook(name string) (*ScriptHook, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("hexgrid: load script %q: %w", name, err)
	}
	return NewScriptHook(name, src)
}

func NewScriptHook(name string, src []byte) (*ScriptHook, error) {
	h := &ScriptHook{
		name: name,
		log:  logger.Log.WithField("script", name),
	}

	script := tengo.NewScript(src)
	_ = script.Add("cell", map[string]any{})
	_ = script.Add("log", &tengo.UserFunction{Name: "log", Value: h.scriptLog})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("hexgrid: compile script %q: %w", name, err)
	}
	h.compiled = compiled
	return h, nil
}

func (h *ScriptHook) Name() string {
	return h.name
}

func (h *ScriptHook) OnCellClick(cell *Cell) error {
	data := cell.Data
	if data == nil {
		data = map[string]any{}
	}
	in := map[string]any{
		"col":    cell.Col,
		"row":    cell.Row,
		"x":      cell.Center.X,
		"y":      cell.Center.Y,
		"radius": cell.Radius,
		"data":   data,
	}
	if err := h.compiled.Set("cell", in); err != nil {
		return fmt.Errorf("set cell: %w", err)
	}
	if err := h.compiled.Run(); err != nil {
		return fmt.Errorf("run script %q: %w", h.name, err)
	}

	out := h.compiled.Get("cell").Map()
	if out == nil {
		return fmt.Errorf("script %q replaced cell with a non-map", h.name)
	}
	switch d := out["data"].(type) {
	case map[string]any:
		cell.Data = d
	case nil:
		cell.Data = map[string]any{}
	default:
		return fmt.Errorf("script %q set cell.data to %T", h.name, d)
	}
	return nil
}

func (h *ScriptHook) scriptLog(args ...tengo.Object) (tengo.Object, error) {
	parts := make([]string, 0, len(args))
	for _, a := range args {
		if s, ok := a.(*tengo.String); ok {
			parts = append(parts, s.Value)
			continue
		}
		parts = append(parts, a.String())
	}
	h.log.Info(strings.Join(parts, " "))
	return tengo.UndefinedValue, nil
}
