package main

import (
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/milk9111/wargear/ui"
)

const inspectorWidth = 240

// Inspector is the right-hand panel showing the selected hex.
type Inspector struct {
	body   *widget.Text
	status *widget.Text
}

func buildInspectorUI(onCopy func()) (*ebitenui.UI, *Inspector, error) {
	face, err := ui.NewFace(14)
	if err != nil {
		return nil, nil, err
	}
	theme := ui.NewTheme(face)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	panel := ui.Panel(inspectorWidth, widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionEnd,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
		StretchVertical:    true,
	})

	insp := &Inspector{
		body:   ui.Text("Click a hex.", face, ui.LabelIdle, inspectorWidth-20),
		status: ui.Text("", face, ui.LabelDimmed, inspectorWidth-20),
	}
	panel.AddChild(ui.Heading("Hex", face))
	panel.AddChild(insp.body)
	panel.AddChild(ui.Button(theme, "Copy YAML", face, onCopy))
	panel.AddChild(insp.status)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root, PrimaryTheme: theme}, insp, nil
}

func (i *Inspector) Show(body string) {
	i.body.Label = body
}

func (i *Inspector) SetStatus(msg string) {
	i.status.Label = msg
}
