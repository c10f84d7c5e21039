package sable

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// PreloadFunc produces the assets to load. Returning an empty list fails the
// lifecycle with ErrEmptyAssetList.
type PreloadFunc func() []Asset

// LoadFunc produces the game objects, maps, and cameras to register. The
// accessor resolves preloaded sprites and audio by name.
type LoadFunc func(assets *Assets) []any

// UpdateFunc is the per-frame callback. dt is the elapsed time in seconds
// since the previous tick (0 on the first tick).
type UpdateFunc func(frame *Frame, dt float64)

// stageTask is one link of the lifecycle chain. Returning an error moves the
// whole lifecycle to StateErrored and skips every later link.
type stageTask func(e *Engine) error

// Assets resolves preloaded resources by name for the load stage. Lookups
// never fail: a miss logs a warning once per name and returns an empty
// placeholder.
type Assets struct {
	e *Engine
}

// Sprite returns the preloaded sprite, or an empty placeholder.
func (a *Assets) Sprite(name string) *Sprite {
	return a.e.spriteOrEmpty(name)
}

// Audio returns the preloaded audio asset, or an empty placeholder.
func (a *Assets) Audio(name string) *Audio {
	return a.e.audioOrEmpty(name)
}

// Preload appends the asset-loading stage to the lifecycle chain and returns
// the engine for fluent chaining. The producer runs when the chain reaches
// this stage; registration itself never fails.
func (e *Engine) Preload(fn PreloadFunc) *Engine {
	e.stages = append(e.stages, func(e *Engine) error {
		e.state = StatePreloading
		return e.runPreload(fn)
	})
	return e
}

// Load appends the entity-creation stage to the lifecycle chain.
func (e *Engine) Load(fn LoadFunc) *Engine {
	e.stages = append(e.stages, func(e *Engine) error {
		e.state = StateLoading
		return e.runLoad(fn)
	})
	return e
}

// Update appends the final stage: fn becomes the per-frame callback and the
// frame loop starts on the next tick.
func (e *Engine) Update(fn UpdateFunc) *Engine {
	e.stages = append(e.stages, func(e *Engine) error {
		e.updateFn = fn
		e.state = StateUpdating
		e.running = true
		e.hasTicked = false
		return nil
	})
	return e
}

// Start executes every pending lifecycle stage in registration order. Each
// stage runs to completion (success or failure) before the next begins; the
// first failure is logged, moves the engine to StateErrored, and permanently
// halts the chain. Tick calls Start automatically, so an explicit call is
// only needed when driving the engine without a tick source.
func (e *Engine) Start() {
	for len(e.stages) > 0 {
		if e.state == StateErrored {
			e.stages = nil
			return
		}
		stage := e.stages[0]
		e.stages = e.stages[1:]
		if err := stage(e); err != nil {
			e.log.error("lifecycle stage failed", err)
			e.state = StateErrored
			e.running = false
			e.stages = nil
			return
		}
	}
}

// runPreload loads every produced asset concurrently and registers each on
// success. The stage fails as soon as any single asset fails; the error
// names the asset. There is no load timeout: a stalled source blocks the
// chain.
func (e *Engine) runPreload(fn PreloadFunc) error {
	assets := fn()
	if len(assets) == 0 {
		return ErrEmptyAssetList
	}

	g, ctx := errgroup.WithContext(context.Background())
	for _, a := range assets {
		g.Go(func() error {
			if err := a.load(ctx); err != nil {
				return &AssetLoadError{Name: a.AssetName(), Err: err}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, a := range assets {
		switch v := a.(type) {
		case *Sprite:
			e.sprites.put(v.Name, v)
		case *Audio:
			e.audios.put(v.Name, v)
		default:
			return fmt.Errorf("sable: unknown asset kind %T", a)
		}
	}
	return nil
}

// runLoad invokes the producer and partitions its results by kind into the
// registries. A duplicate name within a kind is skipped with a warning.
func (e *Engine) runLoad(fn LoadFunc) error {
	for _, item := range fn(&Assets{e: e}) {
		switch v := item.(type) {
		case *GameObject:
			if e.objects.has(v.Name) {
				e.log.warnOnce(WarnInstanceNameTaken, v.Name)
				continue
			}
			e.objects.put(v.Name, v)
		case *Map:
			e.maps.put(v.Name, v)
		case *Camera:
			e.cameras.put(v.Name, v)
		case nil:
			// Producers may return nil slots; ignore them.
		default:
			return fmt.Errorf("sable: load producer returned unsupported kind %T", item)
		}
	}
	return nil
}
