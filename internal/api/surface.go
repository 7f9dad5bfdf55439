package api

import (
	"github.com/google/uuid"

	"github.com/standardbeagle/smart-diff/internal/store"
	"github.com/standardbeagle/smart-diff/internal/types"
)

// Summary returns the stored comparison's counts-by-kind view (§6).
func Summary(id uuid.UUID) (types.Summary, error) {
	return defaultStore.Summary(id)
}

// ListOptions re-exports the store's filter/sort knobs so callers only need
// to import this package.
type ListOptions = store.ListOptions

// SortField re-exports the store's sort-key enum.
type SortField = store.SortField

const (
	SortByMagnitude  = store.SortByMagnitude
	SortBySimilarity = store.SortBySimilarity
	SortByName       = store.SortByName
)

// ListChanges returns the stored comparison's function matches, filtered and
// sorted per opts (§6).
func ListChanges(id uuid.UUID, opts ListOptions) ([]*types.FunctionMatch, error) {
	return defaultStore.List(id, opts)
}

// GetFunctionDiff returns a single function's match, including its edit
// script and unified diff, by simple or qualified name (§6).
func GetFunctionDiff(id uuid.UUID, functionName string) (*types.FunctionMatch, error) {
	return defaultStore.Get(id, functionName)
}

// Evict frees a stored comparison (§4.7).
func Evict(id uuid.UUID) {
	defaultStore.Evict(id)
}
