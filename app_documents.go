package main

import (
	"fmt"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/peternagy/pdfbinder/internal/debug"
	"github.com/peternagy/pdfbinder/internal/types"
)

// =============================================================================
// Document Dialog Methods
// =============================================================================

// GetDocumentFilters returns the filters offered when adding documents.
func (a *App) GetDocumentFilters() []types.FileFilterEntry {
	return a.documents.List()
}

// GetDocumentFilterString returns the document filter patterns joined by "|".
func (a *App) GetDocumentFilterString() string {
	return a.documents.GetFilterString()
}

// OpenDocuments lets the user pick documents to add to the binder.
// Returns nil when the dialog is cancelled.
func (a *App) OpenDocuments() ([]string, error) {
	paths, err := runtime.OpenMultipleFilesDialog(a.state.Ctx, runtime.OpenDialogOptions{
		Title:   "Add Documents to Binder",
		Filters: a.documents.DialogFilters(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open file dialog: %w", err)
	}
	if len(paths) == 0 {
		return nil, nil // User cancelled
	}

	debug.LogDialog("Documents selected", map[string]interface{}{
		"count":  len(paths),
		"filter": a.documents.GetFilterString(),
	})
	return paths, nil
}
