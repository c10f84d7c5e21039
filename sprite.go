package sable

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// Asset is a loadable resource accepted by the preload stage. Sprite and
// Audio implement it; the interface is sealed so the preload partition is
// exhaustive.
type Asset interface {
	AssetName() string

	// load blocks until the asset is ready or fails. Called concurrently
	// with other assets during preload.
	load(ctx context.Context) error
}

// Sprite describes a drawable image with its visual transform. The name is
// the sprite's registry identity and never changes; transform fields are
// freely mutable between frames.
type Sprite struct {
	Name   string
	Source string // image file path, ignored when Image is preset

	Position Vec2
	Size     Vec2
	Rotation float64 // degrees
	Skew     Vec2    // degrees per axis
	FlipX    bool
	FlipY    bool

	Image *ebiten.Image
}

// NewSprite creates a sprite that will load its image from the given file
// during preload.
func NewSprite(name, source string, width, height float64) *Sprite {
	return &Sprite{
		Name:   name,
		Source: source,
		Size:   Vec2{X: width, Y: height},
	}
}

// EmptySprite returns the harmless placeholder handed out on lookup misses.
// It carries the requested name and a zero size so that drawing it is a no-op.
func EmptySprite(name string) *Sprite {
	return &Sprite{Name: name}
}

// AssetName implements Asset.
func (s *Sprite) AssetName() string {
	return s.Name
}

// Clone returns a copy of the sprite sharing the underlying image. Transform
// fields are independent: mutating the clone does not affect the original.
func (s *Sprite) Clone() *Sprite {
	c := *s
	return &c
}

// load decodes the source image. A sprite with a preset Image is already
// ready and loads as a no-op, which lets tests and procedural sprites skip
// file IO.
func (s *Sprite) load(ctx context.Context) error {
	if s.Image != nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	f, err := os.Open(s.Source)
	if err != nil {
		return err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", s.Source, err)
	}
	s.Image = ebiten.NewImageFromImage(img)
	if s.Size == (Vec2{}) {
		b := img.Bounds()
		s.Size = Vec2{X: float64(b.Dx()), Y: float64(b.Dy())}
	}
	return nil
}
