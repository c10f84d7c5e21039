package sable

import (
	"errors"
	"fmt"
	"testing"
)

// --- Construction ---

func TestNewEngineInvalidDimensions(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 240},
		{"zero height", 320, 0},
		{"negative width", -1, 240},
		{"negative height", 320, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewEngine(tt.w, tt.h); !errors.Is(err, ErrInvalidSurface) {
				t.Errorf("NewEngine(%d, %d) error = %v, want ErrInvalidSurface", tt.w, tt.h, err)
			}
		})
	}
}

func TestNewEngineDefaults(t *testing.T) {
	e := newTestEngine(t)
	if e.Scale() != 1 {
		t.Errorf("Scale = %v, want 1", e.Scale())
	}
	if e.RenderingMode() != RenderingSmooth {
		t.Errorf("RenderingMode = %v, want RenderingSmooth", e.RenderingMode())
	}
	if e.State() != StateUnset {
		t.Errorf("State = %v, want Unset", e.State())
	}
	if w, h := e.Size(); w != 320 || h != 240 {
		t.Errorf("Size = %dx%d, want 320x240", w, h)
	}
}

// --- Settings ---

func TestSmoothingQualityRequiresSmoothMode(t *testing.T) {
	e := newTestEngine(t)
	e.SetRenderingMode(RenderingPixelated)
	if err := e.SetSmoothingQuality(SmoothingHigh); !errors.Is(err, ErrInvalidMode) {
		t.Errorf("SetSmoothingQuality error = %v, want ErrInvalidMode", err)
	}

	e.SetRenderingMode(RenderingSmooth)
	if err := e.SetSmoothingQuality(SmoothingHigh); err != nil {
		t.Errorf("SetSmoothingQuality in smooth mode: %v", err)
	}
	if e.SmoothingQuality() != SmoothingHigh {
		t.Errorf("SmoothingQuality = %v, want SmoothingHigh", e.SmoothingQuality())
	}
}

// --- Instantiate ---

func TestInstantiateNamesAndCount(t *testing.T) {
	e := newTestEngine(t)
	tmpl := NewGameObject("enemy", readySprite("enemy", 8, 8))
	got := e.Instantiate(tmpl, 3)

	if len(got) != 3 {
		t.Fatalf("instantiated %d objects, want 3", len(got))
	}
	for i, o := range got {
		want := fmt.Sprintf("enemy-%d", i+1)
		if o.Name != want {
			t.Errorf("instance %d name = %q, want %q", i, o.Name, want)
		}
		if o.Instance() != i+1 {
			t.Errorf("instance %d index = %d, want %d", i, o.Instance(), i+1)
		}
		if _, ok := e.Object(want); !ok {
			t.Errorf("instance %q not registered", want)
		}
	}
}

func TestInstantiateClonesAreIndependent(t *testing.T) {
	e := newTestEngine(t)
	tmpl := NewGameObject("enemy", readySprite("enemy", 8, 8))
	got := e.Instantiate(tmpl, 2)

	got[0].Sprite.Rotation = 45
	got[0].Sprite.FlipX = true
	if got[1].Sprite.Rotation != 0 || got[1].Sprite.FlipX {
		t.Error("mutating one instance's sprite affected another")
	}
	if tmpl.Sprite.Rotation != 0 {
		t.Error("mutating an instance's sprite affected the template")
	}
	if got[0].Sprite.Image != got[1].Sprite.Image {
		t.Error("clones should share the underlying image")
	}
}

func TestInstantiateSkipsTakenNames(t *testing.T) {
	e := newTestEngine(t)
	sp := readySprite("enemy", 8, 8)
	e.objects.put("enemy-2", NewGameObject("enemy-2", sp))

	got := e.Instantiate(NewGameObject("enemy", sp), 3)
	if len(got) != 2 {
		t.Fatalf("instantiated %d objects, want 2 (enemy-2 taken)", len(got))
	}
	if got[0].Name != "enemy-1" || got[1].Name != "enemy-3" {
		t.Errorf("names = %q, %q, want enemy-1, enemy-3", got[0].Name, got[1].Name)
	}
}

func TestInstantiateBadInput(t *testing.T) {
	e := newTestEngine(t)
	if got := e.Instantiate(nil, 3); got != nil {
		t.Errorf("Instantiate(nil, 3) = %v, want nil", got)
	}
	tmpl := NewGameObject("x", readySprite("x", 4, 4))
	if got := e.Instantiate(tmpl, 0); got != nil {
		t.Errorf("Instantiate(tmpl, 0) = %v, want nil", got)
	}
}

// --- Colliding ---

func withBox(name string, x, y, w, h float64) *GameObject {
	o := NewGameObject(name, EmptySprite(name))
	o.Position = Vec2{X: x, Y: y}
	o.Collision = &CollisionBox{Width: w, Height: h}
	return o
}

func TestColliding(t *testing.T) {
	tests := []struct {
		name   string
		a, b   *GameObject
		expect bool
	}{
		{"overlapping", withBox("a", 0, 0, 10, 10), withBox("b", 5, 5, 10, 10), true},
		{"edge touch", withBox("a", 0, 0, 10, 10), withBox("b", 10, 0, 10, 10), true},
		{"corner touch", withBox("a", 0, 0, 10, 10), withBox("b", 10, 10, 10, 10), true},
		{"disjoint", withBox("a", 0, 0, 10, 10), withBox("b", 20, 20, 10, 10), false},
		{"no box on a", NewGameObject("a", EmptySprite("a")), withBox("b", 0, 0, 10, 10), false},
		{"no box on b", withBox("a", 0, 0, 10, 10), NewGameObject("b", EmptySprite("b")), false},
	}
	e := newTestEngine(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.Colliding(tt.a, tt.b); got != tt.expect {
				t.Errorf("Colliding = %v, want %v", got, tt.expect)
			}
			if got := e.Colliding(tt.b, tt.a); got != tt.expect {
				t.Errorf("Colliding is not symmetric: reversed = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestCollidingUsesOffsets(t *testing.T) {
	e := newTestEngine(t)
	a := withBox("a", 0, 0, 10, 10)
	b := withBox("b", 100, 0, 10, 10)
	if e.Colliding(a, b) {
		t.Fatal("objects should start apart")
	}
	b.Collision.OffsetX = -90 // box now at x=10, touching a's right edge
	if !e.Colliding(a, b) {
		t.Error("offset collision box not honored")
	}
}

// --- Outbound ---

func TestOutbound(t *testing.T) {
	tests := []struct {
		name      string
		pos       Vec2
		threshold float64
		expect    bool
	}{
		{"inside", Vec2{100, 100}, 1, false},
		{"straddling right edge", Vec2{315, 100}, 1, false},
		{"touching right edge stays inbound", Vec2{320, 100}, 1, false},
		{"past right edge", Vec2{400, 100}, 1, true},
		{"past bottom edge", Vec2{100, 300}, 1, true},
		{"fully left of zero", Vec2{-20, 100}, 1, true},
		{"straddling zero", Vec2{-5, 100}, 1, false},
		{"inside enlarged area", Vec2{400, 100}, 2, false},
		{"past enlarged area", Vec2{650, 100}, 2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t) // 320x240
			o := NewGameObject("o", EmptySprite("o"))
			o.Position = tt.pos
			o.Size = Vec2{X: 10, Y: 10}

			fired := false
			got := e.Outbound(o, tt.threshold, func() { fired = true })
			if got != tt.expect {
				t.Errorf("Outbound = %v, want %v", got, tt.expect)
			}
			if fired != tt.expect {
				t.Errorf("callback fired = %v, want %v", fired, tt.expect)
			}
		})
	}
}

func TestOutboundDefaultCallbackPauses(t *testing.T) {
	e := newTestEngine(t)
	startRunning(t, e)
	e.Start()
	if !e.IsRunning() {
		t.Fatal("engine should be running")
	}

	o := NewGameObject("runaway", EmptySprite("runaway"))
	o.Position = Vec2{X: 1000, Y: 1000}
	o.Size = Vec2{X: 10, Y: 10}
	if !e.Outbound(o, 1) {
		t.Fatal("object should be outbound")
	}
	if e.IsRunning() {
		t.Error("default outbound callback did not pause the loop")
	}
}

func TestOutboundHonorsScale(t *testing.T) {
	e := newTestEngine(t)
	e.SetScale(2)
	o := NewGameObject("o", EmptySprite("o"))
	o.Position = Vec2{X: 170, Y: 100} // 340 scaled, past the 320 wide surface
	o.Size = Vec2{X: 10, Y: 10}
	if !e.Outbound(o, 1, func() {}) {
		t.Error("scaled position should be outbound")
	}
}

// --- RemoveObject ---

func TestRemoveObjectRoundTrip(t *testing.T) {
	e := newTestEngine(t)
	o := NewGameObject("hero", readySprite("hero", 8, 8))
	e.objects.put(o.Name, o)

	e.RemoveObject(o)
	if _, ok := e.Object("hero"); ok {
		t.Error("object still registered after RemoveObject")
	}

	// Removing again is a no-op, not an error.
	e.RemoveObject(o)
	e.RemoveObject(nil)
}

// --- End ---

func TestEndClearsEverything(t *testing.T) {
	e := newTestEngine(t)
	e.UseKeyboard()
	startRunning(t, e)
	mt := NewManualTicker(e)
	mt.Step(1)

	e.End()

	if e.IsRunning() {
		t.Error("loop running after End")
	}
	if e.State() != StateUnset {
		t.Errorf("state = %v, want Unset", e.State())
	}
	if e.ObjectCount() != 0 {
		t.Errorf("objects = %d, want 0", e.ObjectCount())
	}
	if e.sprites.len() != 0 || e.maps.len() != 0 || e.cameras.len() != 0 || e.audios.len() != 0 {
		t.Error("registries not cleared by End")
	}
	if _, err := e.Keyboard(); !errors.Is(err, ErrKeyboardNotInitialized) {
		t.Error("keyboard still attached after End")
	}
	if len(e.runOnceKeys) != 0 {
		t.Error("run-once keys not cleared by End")
	}

	// Ticks after End are suppressed.
	mt.Step(1)
	if e.IsRunning() {
		t.Error("tick restarted the loop after End")
	}
}

// --- Keyboard accessor ---

func TestKeyboardBeforeUseKeyboard(t *testing.T) {
	e := newTestEngine(t)
	if _, err := e.Keyboard(); !errors.Is(err, ErrKeyboardNotInitialized) {
		t.Errorf("Keyboard() error = %v, want ErrKeyboardNotInitialized", err)
	}
	kb := e.UseKeyboard()
	got, err := e.Keyboard()
	if err != nil {
		t.Fatalf("Keyboard() after UseKeyboard: %v", err)
	}
	if got != kb {
		t.Error("Keyboard() returned a different instance")
	}
}
