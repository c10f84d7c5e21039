package sable

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title  string
	Width  int // window width; defaults to the surface width
	Height int // window height; defaults to the surface height

	// ShowFPS overlays the current FPS/TPS in the top-left corner.
	ShowFPS bool
}

// Run opens a window and drives the engine with Ebitengine's frame loop: one
// Tick per update, one surface blit per draw. It blocks until the window
// closes and returns any error from the host loop.
//
// Run is the production tick source. For deterministic control (tests,
// custom loops) drive Engine.Tick yourself or through a ManualTicker.
func Run(e *Engine, cfg RunConfig) error {
	w, h := cfg.Width, cfg.Height
	if w <= 0 || h <= 0 {
		w, h = e.Size()
	}
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(cfg.Title)
	return ebiten.RunGame(&game{e: e, showFPS: cfg.ShowFPS})
}

// game adapts an Engine to the ebiten.Game interface.
type game struct {
	e       *Engine
	showFPS bool
}

func (g *game) Update() error {
	g.e.Tick(time.Now())
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.e.draw(screen)
	if g.showFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f",
			ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.e.Size()
}
