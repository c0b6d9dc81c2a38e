// Package core provides shared application state and event handling.
package core

import (
	"context"
	"sync"
)

// AppState holds the shared application state.
type AppState struct {
	Ctx           context.Context // Wails context
	ConfigDir     string          // Config directory path
	DisableEvents bool            // Disable event emission (for tests)
	Emitter       EventEmitter    // Event emitter for UI notifications

	mu sync.Mutex
}

// NewAppState creates a new AppState.
func NewAppState() *AppState {
	return &AppState{}
}

// NewTestState returns a state that records events instead of sending them.
func NewTestState() (*AppState, *RecordingEventEmitter) {
	rec := &RecordingEventEmitter{}
	return &AppState{Ctx: context.Background(), Emitter: rec}, rec
}

// EmitEvent safely emits an event through the emitter.
func (s *AppState) EmitEvent(eventName string, data interface{}) {
	if s == nil || s.DisableEvents || s.Emitter == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Emitter.Emit(eventName, data)
}
