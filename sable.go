package sable

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Vec2 is a 2D vector used for positions, sizes, and skew angles
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// RenderingMode selects how sprite images are sampled when scaled.
type RenderingMode uint8

const (
	RenderingSmooth    RenderingMode = iota // linear filtering (anti-aliased)
	RenderingPixelated                      // nearest filtering (crisp pixels)
)

// SmoothingQuality is the filter quality used when the rendering mode is
// RenderingSmooth. It has no effect in RenderingPixelated mode.
type SmoothingQuality uint8

const (
	SmoothingLow SmoothingQuality = iota
	SmoothingMedium
	SmoothingHigh
)

// ebitenFilter maps the mode/quality pair to an ebiten filter. Ebitengine
// exposes nearest and linear sampling; all smooth qualities share linear.
func ebitenFilter(mode RenderingMode, _ SmoothingQuality) ebiten.Filter {
	if mode == RenderingPixelated {
		return ebiten.FilterNearest
	}
	return ebiten.FilterLinear
}

// State is the engine lifecycle state. It advances strictly forward except
// for the pause toggle, which moves StateUpdating back to StateUnset without
// clearing any registries.
type State uint8

const (
	StateUnset State = iota
	StatePreloading
	StateLoading
	StateUpdating
	StateErrored
)

func (s State) String() string {
	switch s {
	case StateUnset:
		return "Unset"
	case StatePreloading:
		return "Preloading"
	case StateLoading:
		return "Loading"
	case StateUpdating:
		return "Updating"
	case StateErrored:
		return "Errored"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}
