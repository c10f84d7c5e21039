package sable

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the public API.
var (
	// ErrEmptyAssetList is the lifecycle failure when a preload producer
	// returns no assets.
	ErrEmptyAssetList = errors.New("sable: preload producer returned an empty asset list")

	// ErrKeyboardNotInitialized is returned by Engine.Keyboard when
	// UseKeyboard has not been called.
	ErrKeyboardNotInitialized = errors.New("sable: keyboard accessed before UseKeyboard")

	// ErrInvalidMode is returned when a smoothing quality is set while the
	// rendering mode is not RenderingSmooth.
	ErrInvalidMode = errors.New("sable: smoothing quality requires RenderingSmooth mode")

	// ErrInvalidSurface is the construction failure for non-positive surface
	// dimensions.
	ErrInvalidSurface = errors.New("sable: surface dimensions must be positive")
)

// AssetLoadError reports that a named asset failed its ready signal during
// preload. The first failing asset aborts the whole stage.
type AssetLoadError struct {
	Name string
	Err  error
}

func (e *AssetLoadError) Error() string {
	return fmt.Sprintf("sable: asset %q failed to load: %v", e.Name, e.Err)
}

func (e *AssetLoadError) Unwrap() error {
	return e.Err
}
