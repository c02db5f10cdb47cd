package unitform

import (
	"fmt"
	"strings"

	"github.com/milk9111/wargear/prefabs"
)

// Template is the fixed record for one unit category.
type Template struct {
	Type         string
	Description  string
	FS           string
	Armor        string
	Speed        string
	Range        string
	SpecialRules string
	Upgrades     string
}

// Catalog looks up unit templates by category name.
type Catalog struct {
	endpoint  string
	templates []Template
	byType    map[string]int
}

func NewCatalog(spec prefabs.UnitsSpec) (*Catalog, error) {
	c := &Catalog{
		endpoint:  spec.Endpoint,
		templates: make([]Template, 0, len(spec.Units)),
		byType:    make(map[string]int, len(spec.Units)),
	}
	for _, u := range spec.Units {
		name := strings.TrimSpace(u.Type)
		if name == "" {
			return nil, fmt.Errorf("unitform: unit without type: %w", prefabs.ErrInvalidSpec)
		}
		if _, dup := c.byType[name]; dup {
			return nil, fmt.Errorf("unitform: unit %q listed twice: %w", name, prefabs.ErrInvalidSpec)
		}
		c.byType[name] = len(c.templates)
		c.templates = append(c.templates, Template{
			Type:         name,
			Description:  u.Description,
			FS:           string(u.FS),
			Armor:        string(u.Armor),
			Speed:        string(u.Speed),
			Range:        string(u.Range),
			SpecialRules: u.SpecialRules,
			Upgrades:     u.Upgrades,
		})
	}
	return c, nil
}

// LoadCatalog reads the unit templates from prefabs.
func LoadCatalog() (*Catalog, error) {
	spec, err := prefabs.LoadSpec[prefabs.UnitsSpec](prefabs.UnitsFile)
	if err != nil {
		return nil, err
	}
	return NewCatalog(spec)
}

// Endpoint is the creation URL configured alongside the templates.
func (c *Catalog) Endpoint() string {
	return c.endpoint
}

// Types lists the category names in file order.
func (c *Catalog) Types() []string {
	out := make([]string, len(c.templates))
	for i, t := range c.templates {
		out[i] = t.Type
	}
	return out
}

func (c *Catalog) Lookup(category string) (Template, bool) {
	i, ok := c.byType[strings.TrimSpace(category)]
	if !ok {
		return Template{}, false
	}
	return c.templates[i], true
}

// Fill returns the form for category. An unknown category keeps the chosen
// name but leaves every other field empty.
func (c *Catalog) Fill(category string) Form {
	t, ok := c.Lookup(category)
	if !ok {
		return Form{UnitType: category}
	}
	return Form{
		UnitType:     t.Type,
		Description:  t.Description,
		FS:           t.FS,
		Armor:        t.Armor,
		Speed:        t.Speed,
		Range:        t.Range,
		SpecialRules: t.SpecialRules,
		Upgrades:     t.Upgrades,
	}
}
