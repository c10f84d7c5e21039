package sable

// Frame is the control surface passed to the per-frame callback. It exposes
// resource lookups, drawing, run-once helpers, and loop control. A Frame is
// only valid for the duration of the tick that produced it.
type Frame struct {
	e *Engine
}

// Sprite returns the named sprite, or an empty placeholder. A miss is logged
// at most once per name per session.
func (f *Frame) Sprite(name string) *Sprite {
	return f.e.spriteOrEmpty(name)
}

// Audio returns the named audio asset, or an empty placeholder.
func (f *Frame) Audio(name string) *Audio {
	return f.e.audioOrEmpty(name)
}

// Object returns the named game object, or an empty placeholder.
func (f *Frame) Object(name string) *GameObject {
	return f.e.objectOrEmpty(name)
}

// Map returns the named map, or an empty placeholder.
func (f *Frame) Map(name string) *Map {
	return f.e.mapOrEmpty(name)
}

// Animate draws the object onto the surface through the transform pipeline.
func (f *Frame) Animate(o *GameObject) {
	f.e.drawObject(o)
}

// AnimateMany draws each object in order.
func (f *Frame) AnimateMany(objects []*GameObject) {
	for _, o := range objects {
		f.e.drawObject(o)
	}
}

// AnimateByName looks the object up and draws it. Drawing an unregistered
// name is a no-op beyond the logged miss.
func (f *Frame) AnimateByName(name string) {
	f.e.drawObject(f.e.objectOrEmpty(name))
}

// Play starts one-shot playback of the named audio asset through the shared
// audio context. A miss is a no-op beyond the logged warning.
func (f *Frame) Play(name string) {
	a := f.e.audioOrEmpty(name)
	if len(a.PCM) == 0 {
		return
	}
	if p := a.Player(AudioContext()); p != nil {
		p.Play()
	}
}

// RunOnce executes fn the first time key is seen in this session and never
// again. End clears the seen set.
func (f *Frame) RunOnce(key string, fn func()) {
	if _, ok := f.e.runOnceKeys[key]; ok {
		return
	}
	f.e.runOnceKeys[key] = struct{}{}
	fn()
}

// Pause stops the loop after the current tick completes.
func (f *Frame) Pause() {
	f.e.Pause()
}

// Resume restarts a paused loop.
func (f *Frame) Resume() {
	f.e.Resume()
}

// IsRunning reports whether the loop is active.
func (f *Frame) IsRunning() bool {
	return f.e.IsRunning()
}

// Keyboard returns the attached keyboard, or ErrKeyboardNotInitialized.
func (f *Frame) Keyboard() (*Keyboard, error) {
	return f.e.Keyboard()
}
