package ui

import (
	"image/color"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Panel is a vertical column with the panel background.
func Panel(width int, layoutData any) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(SolidNineSlice(PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Bottom: 10, Left: 10, Right: 10}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(width, 1),
			widget.WidgetOpts.LayoutData(layoutData),
		),
	)
}

// Heading is a white label.
func Heading(label string, fontFace *text.Face) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(label, fontFace, &widget.LabelColor{Idle: LabelIdle, Disabled: LabelDimmed}),
	)
}

// Text is a multi-line text block whose Label can be replaced at runtime.
func Text(label string, fontFace *text.Face, c color.Color, maxWidth float64) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(label, fontFace, c),
		widget.TextOpts.MaxWidth(maxWidth),
	)
}

// Input is a single-line text input in the editor style.
func Input(fontFace *text.Face, width int, onSubmit func(string)) *widget.TextInput {
	opts := []widget.TextInputOpt{
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(width, 28)),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     SolidNineSlice(InputIdle),
			Disabled: SolidNineSlice(InputLocked),
		}),
		widget.TextInputOpts.Color(&widget.TextInputColor{Idle: color.Black, Disabled: color.Gray{Y: 120}, Caret: color.Black}),
		widget.TextInputOpts.Face(fontFace),
	}
	if onSubmit != nil {
		opts = append(opts, widget.TextInputOpts.SubmitHandler(func(args *widget.TextInputChangedEventArgs) {
			onSubmit(args.InputText)
		}))
	}
	return widget.NewTextInput(opts...)
}

// Button is a theme-styled push button.
func Button(theme *widget.Theme, label string, fontFace *text.Face, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text(label, fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 30)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	)
}

// SetVisible shows or hides w and asks parent to lay out again.
func SetVisible(w widget.PreferredSizeLocateableWidget, parent *widget.Container, visible bool) {
	if visible {
		w.GetWidget().Visibility = widget.Visibility_Show
	} else {
		w.GetWidget().Visibility = widget.Visibility_Hide
	}
	if parent != nil {
		parent.RequestRelayout()
	}
}
