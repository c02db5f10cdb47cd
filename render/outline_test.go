package render

import (
	"image"
	"image/color"
	"testing"
)

func TestOutline(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 3))
	src.Set(1, 1, color.White)

	out := Outline(src, 1, color.RGBA{R: 255, A: 255})
	if got := out.Bounds(); got != image.Rect(0, 0, 5, 5) {
		t.Fatalf("bounds = %v, want 5x5", got)
	}

	cases := []struct {
		x, y int
		want bool
	}{
		{2, 2, false}, // the opaque pixel itself
		{1, 1, true},
		{3, 3, true},
		{1, 2, true},
		{0, 0, false},
		{4, 2, false},
	}
	for _, c := range cases {
		_, _, _, a := out.At(c.x, c.y).RGBA()
		if (a != 0) != c.want {
			t.Fatalf("pixel (%d,%d) outlined=%v, want %v", c.x, c.y, a != 0, c.want)
		}
	}
}

func TestOutlineEmptySource(t *testing.T) {
	out := Outline(image.NewRGBA(image.Rect(0, 0, 4, 2)), 2, color.White)
	for i := 3; i < len(out.Pix); i += 4 {
		if out.Pix[i] != 0 {
			t.Fatal("transparent source should have no outline")
		}
	}
}
