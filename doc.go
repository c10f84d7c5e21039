// Package sable is a small lifecycle-driven 2D sprite engine for
// [Ebitengine].
//
// An engine moves through three staged lifecycle phases: preload fetches
// assets (sprites and audio), load builds game objects, maps, and cameras
// from them, and update enters a per-frame render loop. Each stage starts
// only after the previous one has fully settled; any failure anywhere in the
// chain parks the engine in an error state and is reported through the
// injected logger.
//
// # Quick start
//
//	engine, err := sable.NewEngine(320, 240)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	engine.Preload(func() []sable.Asset {
//		return []sable.Asset{sable.NewSprite("hero", "hero.png", 16, 16)}
//	}).Load(func(assets *sable.Assets) []any {
//		return []any{sable.NewGameObject("hero", assets.Sprite("hero"))}
//	}).Update(func(frame *sable.Frame, dt float64) {
//		hero := frame.Object("hero")
//		hero.Position.X += 40 * dt
//		frame.Animate(hero)
//	})
//
//	if err := sable.Run(engine, sable.RunConfig{Title: "Hero"}); err != nil {
//		log.Fatal(err)
//	}
//
// The stage registration calls return immediately for fluent chaining; the
// chain executes when the frame loop starts ticking.
//
// # Tick sources
//
// [Run] drives the engine from Ebitengine's frame loop. For deterministic
// control (tests, headless simulation, custom hosts) call [Engine.Tick]
// directly or use a [ManualTicker]:
//
//	ticker := sable.NewManualTicker(engine)
//	ticker.Step(16 * time.Millisecond)
//
// # Utilities
//
// The engine façade offers collision testing ([Engine.Colliding], inclusive
// AABB overlap), bounds checking ([Engine.Outbound]), cloning
// ([Engine.Instantiate]), keyboard polling ([Engine.UseKeyboard]), tween
// helpers over [gween], and PNG screenshots ([Engine.Screenshot]).
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package sable
