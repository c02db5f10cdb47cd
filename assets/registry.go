package assets

import (
	"bytes"
	"errors"
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	_ "image/png"
	"io/fs"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/wargear/logger"
)

const placeholderSize = 32

// Registry maps logical texture names to images. Sources are searched in
// order; a name found in none of them gets a generated placeholder.
type Registry struct {
	sources []fs.FS

	mu     sync.Mutex
	images map[string]*ebiten.Image
}

func NewRegistry(sources ...fs.FS) *Registry {
	return &Registry{
		sources: sources,
		images:  make(map[string]*ebiten.Image),
	}
}

// Default searches dir on disk (when it exists) before the embedded textures.
func Default(dir string) *Registry {
	var sources []fs.FS
	if dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			sources = append(sources, os.DirFS(dir))
		}
	}
	return NewRegistry(append(sources, Embedded())...)
}

// Image returns the texture for name, loading and caching it on first use.
func (r *Registry) Image(name string) *ebiten.Image {
	r.mu.Lock()
	defer r.mu.Unlock()

	if img, ok := r.images[name]; ok {
		return img
	}

	img := ebiten.NewImageFromImage(r.Source(name))
	r.images[name] = img
	return img
}

// Source returns the decoded pixels for name, or the placeholder when no
// source has it.
func (r *Registry) Source(name string) image.Image {
	decoded, err := r.decode(name)
	if err != nil {
		logger.Log.WithError(err).WithField("texture", name).Warn("assets: using placeholder")
		return placeholder(name, placeholderSize)
	}
	return decoded
}

// Scaled returns the texture for name resized to w x h.
func (r *Registry) Scaled(name string, w, h int) *ebiten.Image {
	src := r.Image(name)
	sw, sh := src.Bounds().Dx(), src.Bounds().Dy()
	if w <= 0 || h <= 0 || (sw == w && sh == h) {
		return src
	}
	dst := ebiten.NewImage(w, h)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w)/float64(sw), float64(h)/float64(sh))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(src, op)
	return dst
}

// Invalidate drops cached textures so the next Image call reloads them.
func (r *Registry) Invalidate() {
	r.mu.Lock()
	r.images = make(map[string]*ebiten.Image)
	r.mu.Unlock()
}

func (r *Registry) decode(name string) (image.Image, error) {
	clean := cleanAssetPath(name)
	if clean == "" {
		return nil, errors.New("empty texture name")
	}
	return decodeFrom(r.sources, clean)
}

func decodeFrom(sources []fs.FS, clean string) (image.Image, error) {
	for _, src := range sources {
		b, err := fs.ReadFile(src, clean)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("read %s: %w", clean, err)
		}
		img, _, err := image.Decode(bytes.NewReader(b))
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", clean, err)
		}
		return img, nil
	}
	return nil, fmt.Errorf("%s: %w", clean, fs.ErrNotExist)
}

// placeholder builds a filled circle whose color is derived from name, so
// distinct missing textures stay distinguishable on screen.
func placeholder(name string, size int) *image.RGBA {
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	sum := h.Sum32()
	col := color.RGBA{R: uint8(sum>>16) | 0x40, G: uint8(sum>>8) | 0x40, B: uint8(sum) | 0x40, A: 0xff}

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	cx := float64(size) / 2
	cy := float64(size) / 2
	rad := float64(size)/2 - 2
	rr := rad * rad
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			if dx*dx+dy*dy <= rr {
				rgba.Set(x, y, col)
			}
		}
	}
	return rgba
}
