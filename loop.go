package sable

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Tick runs one iteration of the engine: pending lifecycle stages are pumped
// first, then, while the loop is running, cameras are rendered, stale
// object regions are cleared, and the per-frame callback is invoked with the
// elapsed time since the previous tick.
//
// The tick source decides when Tick is called: the Run adapter calls it once
// per Ebitengine update, a ManualTicker calls it explicitly in tests. A tick
// that has started always runs to completion; Pause and End only suppress
// subsequent ticks.
func (e *Engine) Tick(now time.Time) {
	e.Start()

	if !e.running || e.state != StateUpdating {
		return
	}

	var dt float64
	if e.hasTicked {
		dt = now.Sub(e.lastTick).Seconds()
	}

	e.cameras.each(func(_ string, cam *Camera) {
		cam.update(float32(dt))
		e.renderCamera(cam)
	})

	e.objects.each(func(_ string, o *GameObject) {
		e.clearRegion(o.bounds(e.scale))
	})

	if e.keyboard != nil && e.keyboard.attached {
		e.keyboard.poll()
	}

	e.updateFn(&Frame{e: e}, dt)

	e.lastTick = now
	e.hasTicked = true

	e.flushScreenshots()
}

// IsRunning reports whether the frame loop is active.
func (e *Engine) IsRunning() bool {
	return e.running
}

// Pause suppresses further ticks without clearing any registries. The
// lifecycle state leaves StateUpdating so stage sequencing treats the loop
// as parked. No-op when already paused.
func (e *Engine) Pause() {
	if !e.running {
		return
	}
	e.running = false
	if e.state == StateUpdating {
		e.state = StateUnset
	}
}

// Resume restarts the frame loop after Pause. No-op when the loop is already
// running, when no update callback has been registered yet, or after a
// lifecycle error.
func (e *Engine) Resume() {
	if e.running || e.updateFn == nil || e.state == StateErrored {
		return
	}
	e.state = StateUpdating
	e.running = true
}

// renderCamera blits the camera's viewport region of its map image onto the
// full surface, stretch-fit to the surface dimensions.
func (e *Engine) renderCamera(cam *Camera) {
	m, ok := e.maps.get(cam.MapName)
	if !ok || m.Image == nil {
		e.log.warnOnce(WarnCameraWithoutMap, cam.Name)
		return
	}
	vp := cam.Viewport
	if vp.Width <= 0 || vp.Height <= 0 {
		return
	}
	src := m.Image.SubImage(image.Rect(
		int(vp.X), int(vp.Y),
		int(vp.X+vp.Width), int(vp.Y+vp.Height),
	)).(*ebiten.Image)

	opts := &ebiten.DrawImageOptions{Filter: ebitenFilter(e.mode, e.quality)}
	opts.GeoM.Scale(float64(e.width)/vp.Width, float64(e.height)/vp.Height)
	e.surface.DrawImage(src, opts)
}

// clearRegion erases a rectangle of the surface, clamped to the surface
// bounds.
func (e *Engine) clearRegion(r Rect) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	area := image.Rect(int(r.X), int(r.Y), int(r.X+r.Width), int(r.Y+r.Height))
	area = area.Intersect(image.Rect(0, 0, e.width, e.height))
	if area.Empty() {
		return
	}
	e.surface.SubImage(area).(*ebiten.Image).Clear()
}

// ManualTicker drives an engine deterministically for tests: each Step
// advances a synthetic clock and delivers exactly one tick. The first Step
// delivers the zero-dt tick.
type ManualTicker struct {
	e   *Engine
	now time.Time
}

// NewManualTicker creates a manual tick source starting at an arbitrary
// fixed epoch.
func NewManualTicker(e *Engine) *ManualTicker {
	return &ManualTicker{e: e, now: time.Unix(0, 0)}
}

// Step advances the synthetic clock by d and ticks the engine once.
func (t *ManualTicker) Step(d time.Duration) {
	t.now = t.now.Add(d)
	t.e.Tick(t.now)
}

// StepN delivers n ticks of d each.
func (t *ManualTicker) StepN(n int, d time.Duration) {
	for i := 0; i < n; i++ {
		t.Step(d)
	}
}
