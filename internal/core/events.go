package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// EventEmitter defines the interface for emitting events to the UI.
type EventEmitter interface {
	Emit(eventName string, data interface{})
}

// WailsEventEmitter emits events using the Wails runtime.
type WailsEventEmitter struct {
	Ctx context.Context
}

// Emit sends an event to the frontend via Wails runtime.
func (e *WailsEventEmitter) Emit(eventName string, data interface{}) {
	if e.Ctx != nil {
		runtime.EventsEmit(e.Ctx, eventName, data)
	}
}

// NoopEventEmitter is a no-op event emitter for testing.
type NoopEventEmitter struct{}

// Emit does nothing (used for tests).
func (e *NoopEventEmitter) Emit(eventName string, data interface{}) {}

// RecordingEventEmitter keeps every emitted event in order.
type RecordingEventEmitter struct {
	Events []RecordedEvent
}

// RecordedEvent is a single event captured by RecordingEventEmitter.
type RecordedEvent struct {
	Name string
	Data interface{}
}

// Emit records the event.
func (e *RecordingEventEmitter) Emit(eventName string, data interface{}) {
	e.Events = append(e.Events, RecordedEvent{Name: eventName, Data: data})
}

// Named returns the recorded events with the given name.
func (e *RecordingEventEmitter) Named(eventName string) []RecordedEvent {
	var out []RecordedEvent
	for _, ev := range e.Events {
		if ev.Name == eventName {
			out = append(out, ev)
		}
	}
	return out
}

// =============================================================================
// Custom Error Types
// =============================================================================

// ErrThemeChangeInProgress is returned when a theme change is requested
// while another one has not finished yet.
var ErrThemeChangeInProgress = errors.New("theme change already in progress")

// ThemeNotFoundError indicates a theme name or ID is not in the catalog.
type ThemeNotFoundError struct {
	Name string
}

func (e *ThemeNotFoundError) Error() string {
	return fmt.Sprintf("theme not found: %s", e.Name)
}

// OptionNotFoundError indicates a settings option has no value.
type OptionNotFoundError struct {
	Section string
	Key     string
}

func (e *OptionNotFoundError) Error() string {
	return fmt.Sprintf("option not found: %s.%s", e.Section, e.Key)
}

// AppearanceApplyError indicates a theme could not be applied.
type AppearanceApplyError struct {
	Theme string
	Err   error
}

func (e *AppearanceApplyError) Error() string {
	return fmt.Sprintf("failed to apply theme %q: %v", e.Theme, e.Err)
}

func (e *AppearanceApplyError) Unwrap() error {
	return e.Err
}
