package sable

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// audioSampleRate is the shared sample rate of the engine's audio context.
const audioSampleRate = 48000

// Audio describes a sound resource. Preload decodes the whole stream into
// memory, which is the "can play through" guarantee: a registered Audio can
// always play to the end without buffering.
type Audio struct {
	Name   string
	Source string // .wav or .ogg file path, ignored when PCM is preset

	// PCM is the decoded 32-bit float little-endian stereo stream. Tests
	// and procedural audio may preset it to skip file IO.
	PCM []byte
}

// NewAudio creates an audio asset that will decode the given file during
// preload.
func NewAudio(name, source string) *Audio {
	return &Audio{Name: name, Source: source}
}

// EmptyAudio returns the placeholder handed out on lookup misses. Playing it
// is a no-op.
func EmptyAudio(name string) *Audio {
	return &Audio{Name: name}
}

// AssetName implements Asset.
func (a *Audio) AssetName() string {
	return a.Name
}

// load opens and fully decodes the source stream.
func (a *Audio) load(ctx context.Context) error {
	if a.PCM != nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	f, err := os.Open(a.Source)
	if err != nil {
		return err
	}
	defer f.Close()

	var stream io.Reader
	switch ext := strings.ToLower(filepath.Ext(a.Source)); ext {
	case ".wav":
		stream, err = wav.DecodeF32(f)
	case ".ogg":
		stream, err = vorbis.DecodeF32(f)
	default:
		return fmt.Errorf("unsupported audio format %q", ext)
	}
	if err != nil {
		return fmt.Errorf("decode %s: %w", a.Source, err)
	}
	a.PCM, err = io.ReadAll(stream)
	if err != nil {
		return fmt.Errorf("buffer %s: %w", a.Source, err)
	}
	return nil
}

// Player creates a playable handle over the decoded stream using the given
// audio context. Returns nil for an empty (placeholder) audio.
func (a *Audio) Player(ctx *audio.Context) *audio.Player {
	if len(a.PCM) == 0 || ctx == nil {
		return nil
	}
	p, err := ctx.NewPlayerF32(bytes.NewReader(a.PCM))
	if err != nil {
		return nil
	}
	return p
}
