package main

import (
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/wargear/ui"
	"github.com/milk9111/wargear/unitform"
)

const (
	listWidth  = 220
	inputWidth = 420
)

var fieldLabels = map[string]string{
	unitform.FieldDescription:  "Description",
	unitform.FieldFS:           "FS",
	unitform.FieldArmor:        "Armor",
	unitform.FieldSpeed:        "Speed",
	unitform.FieldRange:        "Range",
	unitform.FieldSpecialRules: "Special Rules",
	unitform.FieldUpgrades:     "Upgrades",
}

// FormView holds the widgets that mirror a unitform.Form.
type FormView struct {
	unitType *widget.Text
	inputs   map[string]*widget.TextInput
	status   *widget.Text
	submit   *widget.Button
}

type formHandlers struct {
	onSelect func(category string)
	onSubmit func()
}

func buildFormUI(types []string, h formHandlers) (*ebitenui.UI, *FormView, error) {
	face, err := ui.NewFace(14)
	if err != nil {
		return nil, nil, err
	}
	theme := ui.NewTheme(face)

	root := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(ui.SolidNineSlice(ui.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(16),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 16, Bottom: 16, Left: 16, Right: 16}),
		)),
	)

	left := column()
	left.AddChild(ui.Heading("Unit Type", face))
	left.AddChild(ui.Input(face, listWidth, h.onSelect))
	left.AddChild(typeList(types, h.onSelect))
	root.AddChild(left)

	view := &FormView{inputs: make(map[string]*widget.TextInput, len(unitform.Fields))}
	right := column()
	view.unitType = ui.Text("Pick a unit type.", face, ui.LabelIdle, inputWidth)
	right.AddChild(view.unitType)
	for _, name := range unitform.Fields {
		addField(right, view, name, face)
	}
	view.submit = ui.Button(theme, "Create Unit", face, h.onSubmit)
	right.AddChild(view.submit)
	view.status = ui.Text("", face, ui.LabelDimmed, inputWidth)
	right.AddChild(view.status)
	root.AddChild(right)

	return &ebitenui.UI{Container: root, PrimaryTheme: theme}, view, nil
}

func column() *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)
}

func typeList(types []string, onSelect func(string)) *widget.List {
	entries := make([]any, 0, len(types))
	for _, t := range types {
		entries = append(entries, t)
	}
	list := widget.NewList(
		widget.ListOpts.Entries(entries),
		widget.ListOpts.EntryLabelFunc(func(e any) string {
			if s, ok := e.(string); ok {
				return s
			}
			return ""
		}),
		widget.ListOpts.EntrySelectedHandler(func(args *widget.ListEntrySelectedEventArgs) {
			if onSelect == nil {
				return
			}
			if s, ok := args.Entry.(string); ok {
				onSelect(s)
			}
		}),
	)
	list.GetWidget().MinWidth = listWidth
	list.GetWidget().MinHeight = 440
	return list
}

func addField(parent *widget.Container, view *FormView, name string, face *text.Face) {
	parent.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(fieldLabels[name], face, &widget.LabelColor{Idle: ui.LabelDimmed}),
	))
	input := ui.Input(face, inputWidth, nil)
	view.inputs[name] = input
	parent.AddChild(input)
}

// Show copies form into the widgets.
func (v *FormView) Show(form unitform.Form) {
	v.unitType.Label = "Unit Type: " + form.UnitType
	for _, name := range unitform.Fields {
		v.inputs[name].SetText(form.Get(name))
	}
}

// Read returns the form as currently edited, keeping unitType.
func (v *FormView) Read(unitType string) unitform.Form {
	form := unitform.Form{UnitType: unitType}
	for _, name := range unitform.Fields {
		form.Set(name, v.inputs[name].GetText())
	}
	return form
}

func (v *FormView) SetStatus(msg string) {
	v.status.Label = strings.TrimSpace(msg)
}
