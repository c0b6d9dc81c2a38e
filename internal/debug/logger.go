// Package debug provides category-based debug logging for the frontend and the CLI.
package debug

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// Categories for debug logging (must match frontend DEBUG_CATEGORIES)
const (
	CategoryTheme      = "theme"
	CategoryAppearance = "appearance"
	CategorySettings   = "settings"
	CategoryDialog     = "dialog"
	CategoryUI         = "ui"
)

// Logger provides debug logging that emits events to the frontend and,
// optionally, writes lines to an io.Writer. Disabled by default.
type Logger struct {
	mu      sync.RWMutex
	ctx     context.Context
	out     io.Writer
	enabled bool
}

var globalLogger = &Logger{}

// Init attaches the Wails context. Calling it again replaces the context
// (e.g. after a window reload).
func Init(ctx context.Context) {
	globalLogger.mu.Lock()
	globalLogger.ctx = ctx
	globalLogger.mu.Unlock()
}

// SetOutput mirrors log lines to w. A nil writer disables the mirror.
func SetOutput(w io.Writer) {
	globalLogger.mu.Lock()
	globalLogger.out = w
	globalLogger.mu.Unlock()
}

// SetEnabled enables or disables debug logging
func SetEnabled(enabled bool) {
	globalLogger.mu.Lock()
	globalLogger.enabled = enabled
	globalLogger.mu.Unlock()
}

// IsEnabled returns whether debug logging is enabled
func IsEnabled() bool {
	globalLogger.mu.RLock()
	defer globalLogger.mu.RUnlock()
	return globalLogger.enabled
}

// Log emits a debug log event
// category: one of the Category* constants
// message: short one-liner summary
// details: optional map with additional context (can be nil)
func Log(category, message string, details map[string]interface{}) {
	globalLogger.mu.RLock()
	enabled := globalLogger.enabled
	ctx := globalLogger.ctx
	out := globalLogger.out
	globalLogger.mu.RUnlock()

	if !enabled {
		return
	}
	if ctx != nil {
		runtime.EventsEmit(ctx, "debug:log", category, message, details)
	}
	if out != nil {
		fmt.Fprintln(out, FormatLine(category, message, details))
	}
}

// FormatLine renders a log entry as "[category] message k=v ..." with keys sorted.
func FormatLine(category, message string, details map[string]interface{}) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", category, message)

	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, details[k])
	}
	return b.String()
}

// LogTheme logs a theme-selection debug message
func LogTheme(message string, details map[string]interface{}) {
	Log(CategoryTheme, message, details)
}

// LogAppearance logs a debug message about applying a theme
func LogAppearance(message string, details map[string]interface{}) {
	Log(CategoryAppearance, message, details)
}

// LogSettings logs a settings-related debug message
func LogSettings(message string, details map[string]interface{}) {
	Log(CategorySettings, message, details)
}

// LogDialog logs a file-dialog debug message
func LogDialog(message string, details map[string]interface{}) {
	Log(CategoryDialog, message, details)
}
