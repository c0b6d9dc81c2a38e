package filefilter

import (
	"strings"
	"testing"

	"github.com/peternagy/pdfbinder/internal/types"
)

func entriesFor(patterns ...string) []types.FileFilterEntry {
	out := make([]types.FileFilterEntry, len(patterns))
	for i, p := range patterns {
		out[i] = types.FileFilterEntry{DisplayName: strings.ToUpper(p), Pattern: p}
	}
	return out
}

func TestGetFilterString(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		want     string
	}{
		{name: "empty", patterns: nil, want: ""},
		{name: "single entry unchanged", patterns: []string{"*.pdf"}, want: "*.pdf"},
		{name: "two entries", patterns: []string{"*.pdf", "*.txt"}, want: "*.pdf|*.txt"},
		{name: "order preserved", patterns: []string{"*.txt", "*.pdf", "*.*"}, want: "*.txt|*.pdf|*.*"},
		{name: "empty pattern kept verbatim", patterns: []string{"*.pdf", "", "*.txt"}, want: "*.pdf||*.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewEntries(entriesFor(tt.patterns...)).GetFilterString()
			if got != tt.want {
				t.Errorf("GetFilterString() = %q, want %q", got, tt.want)
			}
			if n := len(tt.patterns); n > 0 {
				if seps := strings.Count(got, Separator); seps != n-1 {
					t.Errorf("expected %d separators, got %d", n-1, seps)
				}
			}
		})
	}
}

func TestNewEntriesCopiesInput(t *testing.T) {
	in := entriesFor("*.pdf", "*.txt")
	e := NewEntries(in)

	in[0].Pattern = "*.exe"

	if got := e.GetFilterString(); got != "*.pdf|*.txt" {
		t.Errorf("entries changed after mutating input: %q", got)
	}
	if e.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", e.Len())
	}
}

func TestListReturnsCopy(t *testing.T) {
	e := NewEntries(entriesFor("*.pdf"))
	list := e.List()
	list[0].Pattern = "*.doc"

	if e.GetFilterString() != "*.pdf" {
		t.Error("List() exposed internal storage")
	}
}

func TestDialogFilters(t *testing.T) {
	e := NewEntries([]types.FileFilterEntry{
		{DisplayName: "PDF Documents (*.pdf)", Pattern: "*.pdf"},
		{Pattern: "*.txt"},
	})

	filters := e.DialogFilters()
	if len(filters) != 2 {
		t.Fatalf("expected 2 filters, got %d", len(filters))
	}
	if filters[0].DisplayName != "PDF Documents (*.pdf)" || filters[0].Pattern != "*.pdf" {
		t.Errorf("unexpected first filter: %+v", filters[0])
	}
	if filters[1].DisplayName != "*.txt" {
		t.Errorf("expected pattern as fallback display name, got %q", filters[1].DisplayName)
	}
}

func TestDocumentEntries(t *testing.T) {
	if got := DocumentEntries().GetFilterString(); got != "*.pdf|*.*" {
		t.Errorf("unexpected document filter string %q", got)
	}
}
