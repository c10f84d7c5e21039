package sable

import (
	"fmt"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"go.uber.org/zap"
)

// Engine owns the resource registries, the lifecycle sequencer, and the frame
// loop. Create one with NewEngine, register lifecycle stages with
// Preload/Load/Update, and drive it either through Run (windowed) or by
// calling Tick from your own loop.
//
// All methods must be called from a single goroutine; the engine performs no
// internal locking. This mirrors the cooperative single-threaded model the
// frame loop runs under.
type Engine struct {
	width, height int
	surface       *ebiten.Image
	log           *logger

	scale   float64
	mode    RenderingMode
	quality SmoothingQuality

	state State

	sprites *registry[*Sprite]
	audios  *registry[*Audio]
	objects *registry[*GameObject]
	maps    *registry[*Map]
	cameras *registry[*Camera]

	stages   []stageTask
	updateFn UpdateFunc

	running   bool
	hasTicked bool
	lastTick  time.Time

	keyboard *Keyboard

	runOnceKeys map[string]struct{}

	screenshotQueue []string
	screenshotDir   string
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithLogger injects the structured log sink. Defaults to a no-op logger.
func WithLogger(zl *zap.Logger) Option {
	return func(e *Engine) { e.log = newLogger(zl) }
}

// WithScale sets the global scale factor applied to every position and size
// at render time. Defaults to 1.
func WithScale(scale float64) Option {
	return func(e *Engine) { e.scale = scale }
}

// WithRenderingMode sets the initial rendering mode. Defaults to
// RenderingSmooth.
func WithRenderingMode(mode RenderingMode) Option {
	return func(e *Engine) { e.mode = mode }
}

// WithScreenshotDir sets the directory Screenshot writes PNG files to.
// Defaults to "screenshots".
func WithScreenshotDir(dir string) Option {
	return func(e *Engine) { e.screenshotDir = dir }
}

// NewEngine creates an engine with a width x height drawing surface.
// Returns ErrInvalidSurface if either dimension is not positive.
func NewEngine(width, height int, opts ...Option) (*Engine, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSurface, width, height)
	}
	e := &Engine{
		width:         width,
		height:        height,
		scale:         1,
		mode:          RenderingSmooth,
		quality:       SmoothingMedium,
		sprites:       newRegistry[*Sprite](),
		audios:        newRegistry[*Audio](),
		objects:       newRegistry[*GameObject](),
		maps:          newRegistry[*Map](),
		cameras:       newRegistry[*Camera](),
		runOnceKeys:   make(map[string]struct{}),
		screenshotDir: "screenshots",
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = newLogger(nil)
	}
	e.surface = ebiten.NewImage(width, height)
	return e, nil
}

// Size returns the surface dimensions.
func (e *Engine) Size() (width, height int) {
	return e.width, e.height
}

// Surface returns the engine's drawing surface. The surface persists across
// frames; Tick clears only the regions occupied by registered objects.
func (e *Engine) Surface() *ebiten.Image {
	return e.surface
}

// State returns the current lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// --- Settings ---

// Scale returns the global scale factor.
func (e *Engine) Scale() float64 {
	return e.scale
}

// SetScale changes the global scale factor.
func (e *Engine) SetScale(scale float64) {
	e.scale = scale
}

// RenderingMode returns the current rendering mode.
func (e *Engine) RenderingMode() RenderingMode {
	return e.mode
}

// SetRenderingMode switches between smooth and pixelated sampling.
func (e *Engine) SetRenderingMode(mode RenderingMode) {
	e.mode = mode
}

// SmoothingQuality returns the current smoothing quality.
func (e *Engine) SmoothingQuality() SmoothingQuality {
	return e.quality
}

// SetSmoothingQuality sets the filter quality. Returns ErrInvalidMode unless
// the rendering mode is RenderingSmooth.
func (e *Engine) SetSmoothingQuality(q SmoothingQuality) error {
	if e.mode != RenderingSmooth {
		return ErrInvalidMode
	}
	e.quality = q
	return nil
}

// --- Keyboard ---

// UseKeyboard attaches the keyboard input source. Idempotent.
func (e *Engine) UseKeyboard() *Keyboard {
	if e.keyboard == nil {
		e.keyboard = newKeyboard()
	}
	e.keyboard.attach()
	return e.keyboard
}

// Keyboard returns the attached keyboard, or ErrKeyboardNotInitialized if
// UseKeyboard has not been called.
func (e *Engine) Keyboard() (*Keyboard, error) {
	if e.keyboard == nil || !e.keyboard.attached {
		return nil, ErrKeyboardNotInitialized
	}
	return e.keyboard, nil
}

// --- Registry lookups ---

// Sprite looks up a preloaded sprite by name.
func (e *Engine) Sprite(name string) (*Sprite, bool) {
	return e.sprites.get(name)
}

// Audio looks up a preloaded audio asset by name.
func (e *Engine) Audio(name string) (*Audio, bool) {
	return e.audios.get(name)
}

// Object looks up a registered game object by name.
func (e *Engine) Object(name string) (*GameObject, bool) {
	return e.objects.get(name)
}

// Map looks up a registered map by name.
func (e *Engine) Map(name string) (*Map, bool) {
	return e.maps.get(name)
}

// Camera looks up a registered camera by name.
func (e *Engine) Camera(name string) (*Camera, bool) {
	return e.cameras.get(name)
}

// ObjectCount returns the number of registered game objects.
func (e *Engine) ObjectCount() int {
	return e.objects.len()
}

// sentinel-returning lookups shared by the load-stage accessor and Frame.

func (e *Engine) spriteOrEmpty(name string) *Sprite {
	if s, ok := e.sprites.get(name); ok {
		return s
	}
	e.log.warnOnce(WarnSpriteNotFound, name)
	return EmptySprite(name)
}

func (e *Engine) audioOrEmpty(name string) *Audio {
	if a, ok := e.audios.get(name); ok {
		return a
	}
	e.log.warnOnce(WarnAudioNotFound, name)
	return EmptyAudio(name)
}

func (e *Engine) objectOrEmpty(name string) *GameObject {
	if o, ok := e.objects.get(name); ok {
		return o
	}
	e.log.warnOnce(WarnObjectNotFound, name)
	return EmptyGameObject(name)
}

func (e *Engine) mapOrEmpty(name string) *Map {
	if m, ok := e.maps.get(name); ok {
		return m
	}
	e.log.warnOnce(WarnMapNotFound, name)
	return EmptyMap(name)
}

// --- Utilities ---

// RemoveObject deletes the object from the registry and clears the region it
// last occupied on the surface. No-op if the object is not registered.
func (e *Engine) RemoveObject(o *GameObject) {
	if o == nil {
		return
	}
	if !e.objects.remove(o.Name) {
		return
	}
	e.clearRegion(o.bounds(e.scale))
	e.log.info(warnMessages[WarnObjectRemoved], o.Name)
}

// Instantiate clones the template's sprite into count new objects named
// "<template>-1" through "<template>-<count>". Instances whose derived name
// is already registered are skipped with a warning rather than an error.
// Returns the objects actually registered.
func (e *Engine) Instantiate(template *GameObject, count int) []*GameObject {
	if template == nil || count <= 0 {
		return nil
	}
	out := make([]*GameObject, 0, count)
	for i := 1; i <= count; i++ {
		name := fmt.Sprintf("%s-%d", template.Name, i)
		if e.objects.has(name) {
			e.log.warnOnce(WarnInstanceNameTaken, name)
			continue
		}
		inst := &GameObject{
			Name:     name,
			Sprite:   template.Sprite.Clone(),
			Position: template.Position,
			Size:     template.Size,
			Layer:    template.Layer,
			instance: i,
		}
		if template.Collision != nil {
			box := *template.Collision
			inst.Collision = &box
		}
		e.objects.put(name, inst)
		out = append(out, inst)
	}
	return out
}

// Colliding reports whether the two objects' collision rectangles overlap.
// Objects without a collision box never collide. Boundary contact counts as
// a collision.
func (e *Engine) Colliding(a, b *GameObject) bool {
	if a == nil || b == nil || a.Collision == nil || b.Collision == nil {
		return false
	}
	return a.collisionRect().Intersects(b.collisionRect())
}

// Outbound reports whether the object's scaled bounding box lies entirely
// outside the threshold-scaled surface rectangle. When it does, onOutbound
// is invoked; with no callback the loop is paused. The lower bound of the
// test rectangle is always zero regardless of threshold.
func (e *Engine) Outbound(o *GameObject, threshold float64, onOutbound ...func()) bool {
	if o == nil {
		return false
	}
	area := Rect{
		Width:  threshold * float64(e.width),
		Height: threshold * float64(e.height),
	}
	if area.Intersects(o.bounds(e.scale)) {
		return false
	}
	if len(onOutbound) > 0 && onOutbound[0] != nil {
		onOutbound[0]()
	} else {
		e.Pause()
	}
	return true
}

// End returns the engine to a quiescent state: logging is disabled, the loop
// is paused, input listeners are detached, and every registry and dedupe set
// is cleared. The engine itself stays usable; a fresh lifecycle can be
// registered afterwards.
func (e *Engine) End() {
	e.log.disable()
	e.Pause()
	if e.keyboard != nil {
		e.keyboard.detach()
		e.keyboard = nil
	}
	e.sprites.clear()
	e.audios.clear()
	e.objects.clear()
	e.maps.clear()
	e.cameras.clear()
	e.runOnceKeys = make(map[string]struct{})
	e.log.reset()
	e.stages = nil
	e.updateFn = nil
	e.state = StateUnset
	e.hasTicked = false
	e.screenshotQueue = e.screenshotQueue[:0]
}

// --- Audio context ---

// The process-wide audio device. Ebitengine allows exactly one audio context
// per process, so it is shared across engines and created on first use.
var (
	audioCtxOnce sync.Once
	audioCtx     *audio.Context
)

// AudioContext returns the shared audio context, creating it on first call.
func AudioContext() *audio.Context {
	audioCtxOnce.Do(func() {
		audioCtx = audio.NewContext(audioSampleRate)
	})
	return audioCtx
}
