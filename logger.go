package sable

import (
	"go.uber.org/zap"
)

// WarnCode identifies a coded engine warning. Codes exist so that repeated
// occurrences of the same condition for the same subject are logged once per
// engine session rather than every frame.
type WarnCode uint8

const (
	WarnSpriteNotFound WarnCode = iota
	WarnAudioNotFound
	WarnObjectNotFound
	WarnMapNotFound
	WarnCameraWithoutMap
	WarnObjectRemoved
	WarnInstanceNameTaken
)

// warnMessages is the lookup table from code to human-readable message.
var warnMessages = map[WarnCode]string{
	WarnSpriteNotFound:    "sprite not found, returning empty sprite",
	WarnAudioNotFound:     "audio not found, returning empty audio",
	WarnObjectNotFound:    "game object not found",
	WarnMapNotFound:       "map not found",
	WarnCameraWithoutMap:  "camera references no registered map, skipping render",
	WarnObjectRemoved:     "game object removed",
	WarnInstanceNameTaken: "instance name already registered, skipping",
}

// logger wraps the injected zap sink with per-engine dedupe state. A warning
// code/subject pair is emitted at most once until the dedupe set is cleared
// (End does this). The zero subject dedupes on the code alone.
type logger struct {
	zl      *zap.Logger
	enabled bool
	seen    map[warnKey]struct{}
}

type warnKey struct {
	code    WarnCode
	subject string
}

func newLogger(zl *zap.Logger) *logger {
	if zl == nil {
		zl = zap.NewNop()
	}
	return &logger{
		zl:      zl,
		enabled: true,
		seen:    make(map[warnKey]struct{}),
	}
}

// warnOnce logs the coded warning for subject if this code/subject pair has
// not been logged before.
func (l *logger) warnOnce(code WarnCode, subject string) {
	if !l.enabled {
		return
	}
	key := warnKey{code: code, subject: subject}
	if _, ok := l.seen[key]; ok {
		return
	}
	l.seen[key] = struct{}{}
	l.zl.Warn(warnMessages[code], zap.String("name", subject))
}

// info logs an informational message with the given subject.
func (l *logger) info(msg, subject string) {
	if !l.enabled {
		return
	}
	l.zl.Info(msg, zap.String("name", subject))
}

// error logs a lifecycle-fatal error.
func (l *logger) error(msg string, err error) {
	if !l.enabled {
		return
	}
	l.zl.Error(msg, zap.Error(err))
}

// reset clears the dedupe set.
func (l *logger) reset() {
	l.seen = make(map[warnKey]struct{})
}

// disable silences the sink for the rest of the engine's lifetime.
func (l *logger) disable() {
	l.enabled = false
}
