package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	PanelColor   = color.RGBA{40, 40, 40, 230}
	LabelIdle    = color.White
	LabelDimmed  = color.Gray{Y: 140}
	InputIdle    = color.RGBA{245, 245, 245, 255}
	InputLocked  = color.RGBA{200, 200, 200, 255}
	StatusOK     = color.RGBA{120, 220, 120, 255}
	StatusFailed = color.RGBA{240, 110, 110, 255}
)

// SolidNineSlice returns a solid color nine-slice for widget backgrounds.
func SolidNineSlice(c color.Color) *image.NineSlice {
	return image.NewNineSliceColor(c)
}

// NewFace loads the Go Regular font at size.
func NewFace(size float64) (*text.Face, error) {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("ui: load font: %w", err)
	}
	var face text.Face = &text.GoTextFace{Source: s, Size: size}
	return &face, nil
}

func NewTheme(fontFace *text.Face) *widget.Theme {
	return &widget.Theme{
		ListTheme: &widget.ListParams{
			EntryFace: fontFace,
			EntryColor: &widget.ListEntryColor{
				Unselected:          color.Black,
				Selected:            color.RGBA{0, 0, 128, 255},
				DisabledUnselected:  color.Gray{Y: 128},
				DisabledSelected:    color.Gray{Y: 64},
				SelectingBackground: color.RGBA{200, 220, 255, 255},
				SelectedBackground:  color.RGBA{180, 200, 255, 255},
			},
			ScrollContainerImage: &widget.ScrollContainerImage{
				Idle: SolidNineSlice(color.RGBA{220, 220, 220, 255}),
				Mask: SolidNineSlice(color.RGBA{220, 220, 220, 255}),
			},
		},
		PanelTheme: &widget.PanelParams{
			BackgroundImage: SolidNineSlice(PanelColor),
		},
		ButtonTheme: &widget.ButtonParams{
			Image: &widget.ButtonImage{
				Idle:    SolidNineSlice(color.RGBA{180, 180, 180, 255}),
				Hover:   SolidNineSlice(color.RGBA{200, 200, 200, 255}),
				Pressed: SolidNineSlice(color.RGBA{160, 160, 160, 255}),
			},
			TextFace: fontFace,
			TextColor: &widget.ButtonTextColor{
				Idle: color.Black,
			},
		},
		SliderTheme: &widget.SliderParams{
			TrackImage: &widget.SliderTrackImage{
				Idle:  SolidNineSlice(color.RGBA{180, 180, 180, 255}),
				Hover: SolidNineSlice(color.RGBA{200, 200, 200, 255}),
			},
			HandleImage: &widget.ButtonImage{
				Idle:    SolidNineSlice(color.RGBA{120, 120, 120, 255}),
				Hover:   SolidNineSlice(color.RGBA{160, 160, 160, 255}),
				Pressed: SolidNineSlice(color.RGBA{100, 100, 100, 255}),
			},
		},
	}
}
