// Package performance collects runtime statistics for the debug panel.
package performance

import (
	"runtime"
	"sync"
	"time"

	"github.com/peternagy/pdfbinder/internal/theme"
)

// Metrics holds performance and runtime statistics
type Metrics struct {
	// Go runtime
	HeapAlloc     uint64 `json:"heapAlloc"`     // Bytes allocated and in use
	HeapInuse     uint64 `json:"heapInuse"`     // Bytes in non-idle spans
	Goroutines    int    `json:"goroutines"`    // Number of goroutines
	NumGC         uint32 `json:"numGC"`         // Number of completed GC cycles
	LastGCPauseNs uint64 `json:"lastGCPauseNs"` // Duration of last GC pause in nanoseconds
	Sys           uint64 `json:"sys"`           // Total bytes obtained from system

	// Theme changes
	ThemesAvailable  int   `json:"themesAvailable"`
	ThemeChanges     int   `json:"themeChanges"`     // Completed ApplyTheme calls, failed ones included
	LastThemeApplyMs int64 `json:"lastThemeApplyMs"` // Wall time of the most recent change

	UptimeSeconds int64  `json:"uptimeSeconds"`
	Timestamp     string `json:"timestamp"`
}

// Service provides performance metrics collection
type Service struct {
	selector  *theme.Selector
	startTime time.Time
	now       func() time.Time

	mu          sync.Mutex
	applyStart  time.Time
	changes     int
	lastApplyMs int64
}

// NewService creates a metrics service that times theme changes on selector.
func NewService(selector *theme.Selector) *Service {
	s := &Service{
		selector:  selector,
		startTime: time.Now(),
		now:       time.Now,
	}
	selector.Subscribe(theme.PropertyIsEnabled, s.onEnabledChanged)
	return s
}

func (s *Service) onEnabledChanged(change theme.PropertyChange) {
	enabled, _ := change.Value.(bool)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !enabled {
		s.applyStart = s.now()
		return
	}
	if s.applyStart.IsZero() {
		return
	}
	s.lastApplyMs = s.now().Sub(s.applyStart).Milliseconds()
	s.applyStart = time.Time{}
	s.changes++
}

// GetMetrics returns current performance metrics
func (s *Service) GetMetrics() *Metrics {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	var lastGCPause uint64
	if memStats.NumGC > 0 {
		// PauseNs is a circular buffer of recent GC pause times
		lastGCPause = memStats.PauseNs[(memStats.NumGC+255)%256]
	}

	s.mu.Lock()
	changes, lastApplyMs := s.changes, s.lastApplyMs
	s.mu.Unlock()

	return &Metrics{
		HeapAlloc:        memStats.HeapAlloc,
		HeapInuse:        memStats.HeapInuse,
		Goroutines:       runtime.NumGoroutine(),
		NumGC:            memStats.NumGC,
		LastGCPauseNs:    lastGCPause,
		Sys:              memStats.Sys,
		ThemesAvailable:  len(s.selector.ListOfThemes()),
		ThemeChanges:     changes,
		LastThemeApplyMs: lastApplyMs,
		UptimeSeconds:    int64(time.Since(s.startTime).Seconds()),
		Timestamp:        s.now().Format(time.RFC3339),
	}
}
