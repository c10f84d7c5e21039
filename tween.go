package sable

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields simultaneously. Create one via
// the convenience constructors and call Update(dt) each tick, typically from
// the per-frame callback. There is no global animation manager; callers
// drive their own tweens.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenPosition animates an object's position to the target coordinates over
// the given duration using the easing function.
func TweenPosition(o *GameObject, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(float32(o.Position.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(o.Position.Y), float32(toY), duration, fn)
	g.fields[0] = &o.Position.X
	g.fields[1] = &o.Position.Y
	return g
}

// TweenSize animates an object's size to the target dimensions.
func TweenSize(o *GameObject, toW, toH float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(float32(o.Size.X), float32(toW), duration, fn)
	g.tweens[1] = gween.New(float32(o.Size.Y), float32(toH), duration, fn)
	g.fields[0] = &o.Size.X
	g.fields[1] = &o.Size.Y
	return g
}

// TweenRotation animates a sprite's rotation (degrees) to the target angle.
func TweenRotation(s *Sprite, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(s.Rotation), float32(to), duration, fn)
	g.fields[0] = &s.Rotation
	return g
}

// TweenSkew animates a sprite's skew angles to the target values.
func TweenSkew(s *Sprite, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(float32(s.Skew.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(s.Skew.Y), float32(toY), duration, fn)
	g.fields[0] = &s.Skew.X
	g.fields[1] = &s.Skew.Y
	return g
}
