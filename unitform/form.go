package unitform

import "strings"

// Form is the editable unit record. Fields hold text as typed.
type Form struct {
	UnitType     string `json:"unit_type"`
	Description  string `json:"description"`
	FS           string `json:"fs"`
	Armor        string `json:"armor"`
	Speed        string `json:"speed"`
	Range        string `json:"range"`
	SpecialRules string `json:"special_rules"`
	Upgrades     string `json:"upgrades"`
}

// Field names in display order.
const (
	FieldDescription  = "description"
	FieldFS           = "fs"
	FieldArmor        = "armor"
	FieldSpeed        = "speed"
	FieldRange        = "range"
	FieldSpecialRules = "special_rules"
	FieldUpgrades     = "upgrades"
)

var Fields = []string{
	FieldDescription,
	FieldFS,
	FieldArmor,
	FieldSpeed,
	FieldRange,
	FieldSpecialRules,
	FieldUpgrades,
}

func (f *Form) field(name string) *string {
	switch name {
	case FieldDescription:
		return &f.Description
	case FieldFS:
		return &f.FS
	case FieldArmor:
		return &f.Armor
	case FieldSpeed:
		return &f.Speed
	case FieldRange:
		return &f.Range
	case FieldSpecialRules:
		return &f.SpecialRules
	case FieldUpgrades:
		return &f.Upgrades
	}
	return nil
}

// Get returns the value of a named field, or "" for an unknown name.
func (f *Form) Get(name string) string {
	if p := f.field(name); p != nil {
		return *p
	}
	return ""
}

// Set updates a named field. It reports false for an unknown name.
func (f *Form) Set(name, value string) bool {
	p := f.field(name)
	if p == nil {
		return false
	}
	*p = value
	return true
}

// Payload is the record sent to the creation endpoint, trimmed of
// surrounding whitespace.
func (f Form) Payload() Form {
	return Form{
		UnitType:     strings.TrimSpace(f.UnitType),
		Description:  strings.TrimSpace(f.Description),
		FS:           strings.TrimSpace(f.FS),
		Armor:        strings.TrimSpace(f.Armor),
		Speed:        strings.TrimSpace(f.Speed),
		Range:        strings.TrimSpace(f.Range),
		SpecialRules: strings.TrimSpace(f.SpecialRules),
		Upgrades:     strings.TrimSpace(f.Upgrades),
	}
}
