package main

import (
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/wargear/shipyard"
	"github.com/milk9111/wargear/ui"
)

const paletteWidth = 180

// PalettePanel is the left column with one button per component kind.
type PalettePanel struct {
	theme   *widget.Theme
	face    *text.Face
	buttons *widget.Container
	status  *widget.Text
	onPress func(kind shipyard.ComponentKind)
}

func buildPaletteUI(kinds []shipyard.ComponentKind, onPress func(kind shipyard.ComponentKind)) (*ebitenui.UI, *PalettePanel, error) {
	face, err := ui.NewFace(14)
	if err != nil {
		return nil, nil, err
	}
	theme := ui.NewTheme(face)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	panel := ui.Panel(paletteWidth, widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionStart,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
		StretchVertical:    true,
	})
	panel.AddChild(ui.Heading("Components", face))

	buttons := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)
	panel.AddChild(buttons)

	status := ui.Text("Drag a component onto the hull.", face, ui.LabelDimmed, paletteWidth-20)
	panel.AddChild(status)
	root.AddChild(panel)

	p := &PalettePanel{
		theme:   theme,
		face:    face,
		buttons: buttons,
		status:  status,
		onPress: onPress,
	}
	p.SetKinds(kinds)

	return &ebitenui.UI{Container: root, PrimaryTheme: theme}, p, nil
}

// SetKinds rebuilds the buttons, e.g. after the palette spec changed.
func (p *PalettePanel) SetKinds(kinds []shipyard.ComponentKind) {
	p.buttons.RemoveChildren()
	for _, kind := range kinds {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(p.theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(kind.Name, p.face, p.theme.ButtonTheme.TextColor),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(paletteWidth-20, 32)),
			widget.ButtonOpts.PressedHandler(func(args *widget.ButtonPressedEventArgs) {
				if p.onPress != nil {
					p.onPress(kind)
				}
			}),
		)
		p.buttons.AddChild(btn)
	}
	p.buttons.RequestRelayout()
}

func (p *PalettePanel) SetStatus(msg string) {
	p.status.Label = msg
}
