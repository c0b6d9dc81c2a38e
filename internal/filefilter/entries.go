// Package filefilter builds the file-type filters shown by open dialogs.
package filefilter

import (
	"strings"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/peternagy/pdfbinder/internal/types"
)

// Separator joins filter patterns in a filter string.
const Separator = "|"

// Entries is an immutable, ordered set of filter entries.
type Entries struct {
	entries []types.FileFilterEntry
}

// NewEntries snapshots entries. Later changes to the slice are not seen.
func NewEntries(entries []types.FileFilterEntry) *Entries {
	snapshot := make([]types.FileFilterEntry, len(entries))
	copy(snapshot, entries)
	return &Entries{entries: snapshot}
}

// DocumentEntries returns the filters offered when adding documents to a binder.
func DocumentEntries() *Entries {
	return NewEntries([]types.FileFilterEntry{
		{DisplayName: "PDF Documents (*.pdf)", Pattern: "*.pdf"},
		{DisplayName: "All Files (*.*)", Pattern: "*.*"},
	})
}

// GetFilterString joins every entry's pattern with Separator, in order.
func (e *Entries) GetFilterString() string {
	patterns := make([]string, len(e.entries))
	for i, entry := range e.entries {
		patterns[i] = entry.Pattern
	}
	return strings.Join(patterns, Separator)
}

// Len returns the number of entries.
func (e *Entries) Len() int {
	return len(e.entries)
}

// List returns a copy of the entries.
func (e *Entries) List() []types.FileFilterEntry {
	out := make([]types.FileFilterEntry, len(e.entries))
	copy(out, e.entries)
	return out
}

// DialogFilters converts the entries for runtime.OpenFileDialog.
func (e *Entries) DialogFilters() []runtime.FileFilter {
	filters := make([]runtime.FileFilter, 0, len(e.entries))
	for _, entry := range e.entries {
		name := entry.DisplayName
		if name == "" {
			name = entry.Pattern
		}
		filters = append(filters, runtime.FileFilter{DisplayName: name, Pattern: entry.Pattern})
	}
	return filters
}
