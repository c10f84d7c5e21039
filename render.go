package sable

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// drawObject renders an object's sprite onto the surface.
//
// Transform composition, outermost first:
//
//	Translate(position*scale + flip offset) -> Scale(±scale) ->
//	Translate(center) -> Rotate -> Skew -> Translate(-center)
//
// The center translations happen only when rotation or skew is non-zero, so
// both pivot on the object's visual center. Ebitengine applies GeoM calls
// innermost-first, so the calls below appear in reverse of the order above.
// Each draw carries its own GeoM, so no transform state leaks between
// objects.
func (e *Engine) drawObject(o *GameObject) {
	if o == nil || o.Sprite == nil || o.Sprite.Image == nil {
		return
	}
	sp := o.Sprite
	w, h := o.Size.X, o.Size.Y
	if w <= 0 || h <= 0 {
		return
	}

	var geo ebiten.GeoM

	// Normalize the image to the object's size in local units.
	b := sp.Image.Bounds()
	geo.Scale(w/float64(b.Dx()), h/float64(b.Dy()))

	rotated := sp.Rotation != 0
	skewed := sp.Skew.X != 0 || sp.Skew.Y != 0
	if rotated || skewed {
		geo.Translate(-w/2, -h/2)
		if skewed {
			geo.Skew(degToRad(sp.Skew.X), degToRad(sp.Skew.Y))
		}
		if rotated {
			geo.Rotate(degToRad(sp.Rotation))
		}
		geo.Translate(w/2, h/2)
	}

	sx, sy := e.scale, e.scale
	tx := o.Position.X * e.scale
	ty := o.Position.Y * e.scale
	if sp.FlipX {
		sx = -sx
		tx += w * e.scale
	}
	if sp.FlipY {
		sy = -sy
		ty += h * e.scale
	}
	geo.Scale(sx, sy)
	geo.Translate(tx, ty)

	opts := &ebiten.DrawImageOptions{
		GeoM:   geo,
		Filter: ebitenFilter(e.mode, e.quality),
	}
	e.surface.DrawImage(sp.Image, opts)
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// draw copies the persistent surface onto the given screen. Called by the
// Run adapter every frame.
func (e *Engine) draw(screen *ebiten.Image) {
	screen.DrawImage(e.surface, &ebiten.DrawImageOptions{})
}
