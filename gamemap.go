package sable

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Map is a named full-scene image that cameras read from. The image is
// usually taken from a preloaded sprite in the load stage.
type Map struct {
	Name  string
	Image *ebiten.Image
}

// NewMap creates a map backed by the given image.
func NewMap(name string, img *ebiten.Image) *Map {
	return &Map{Name: name, Image: img}
}

// EmptyMap returns the placeholder handed out on lookup misses.
func EmptyMap(name string) *Map {
	return &Map{Name: name}
}

// panAnim holds active pan tweens for camera viewport X and Y.
type panAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera reads the viewport region of its map's image and renders it
// stretch-fit onto the engine surface each tick. MapName is a relation, not
// ownership: the map is resolved through the registry at render time, so a
// removed map simply stops rendering.
type Camera struct {
	Name    string
	MapName string

	// Viewport is the source rectangle read from the map's image.
	Viewport Rect

	pan *panAnim
}

// NewCamera creates a camera over the named map with the given viewport.
func NewCamera(name, mapName string, viewport Rect) *Camera {
	return &Camera{Name: name, MapName: mapName, Viewport: viewport}
}

// PanTo animates the camera viewport origin to (x, y) over duration seconds.
// A pan already in progress is replaced.
func (c *Camera) PanTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.pan = &panAnim{
		tweenX: gween.New(float32(c.Viewport.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Viewport.Y), float32(y), duration, easeFn),
	}
}

// update advances an active pan tween. Called once per tick.
func (c *Camera) update(dt float32) {
	if c.pan == nil {
		return
	}
	if !c.pan.doneX {
		val, done := c.pan.tweenX.Update(dt)
		c.Viewport.X = float64(val)
		c.pan.doneX = done
	}
	if !c.pan.doneY {
		val, done := c.pan.tweenY.Update(dt)
		c.Viewport.Y = float64(val)
		c.pan.doneY = done
	}
	if c.pan.doneX && c.pan.doneY {
		c.pan = nil
	}
}
