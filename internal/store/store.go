// Package store is the Comparison Store (§4.7): a read-optimized, in-process
// registry of completed Comparisons, keyed by UUID and also reachable by
// function name for the CLI's `show` subcommand.
package store

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/standardbeagle/smart-diff/internal/errors"
	"github.com/standardbeagle/smart-diff/internal/types"
)

// Store holds Comparisons in memory for the lifetime of the process (§4.7:
// "no persistence across process restarts is in scope").
type Store struct {
	mu           sync.RWMutex
	comparisons  map[uuid.UUID]*types.Comparison
}

// New creates an empty Store.
func New() *Store {
	return &Store{comparisons: make(map[uuid.UUID]*types.Comparison)}
}

// Create assigns a fresh UUID to c, records it, and returns the id.
func (s *Store) Create(c *types.Comparison) uuid.UUID {
	id := uuid.New()
	c.ID = id

	s.mu.Lock()
	defer s.mu.Unlock()
	s.comparisons[id] = c
	return id
}

// Summary returns the stored Comparison's Summary, or a BadInput error if id
// is unknown (§7).
func (s *Store) Summary(id uuid.UUID) (types.Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.comparisons[id]
	if !ok {
		return types.Summary{}, errors.NewBadInput("comparison_id", id.String(), nil)
	}
	return c.Summary, nil
}

// ListOptions filters and orders the List operation's output (§4.7).
type ListOptions struct {
	Kinds        map[types.MatchKind]struct{} // nil/empty means no kind filter
	MinMagnitude float64
	SortBy       SortField
	Descending   bool
	Limit        int // 0 means unlimited
}

// SortField is the closed set of List's sort keys.
type SortField uint8

const (
	SortByMagnitude SortField = iota
	SortBySimilarity
	SortByName
)

// List returns the stored Comparison's FunctionMatches filtered and sorted
// per opts. The tie-break is always the match's qualified name (§4.7,
// consistent with the matcher's own deterministic ordering).
func (s *Store) List(id uuid.UUID, opts ListOptions) ([]*types.FunctionMatch, error) {
	s.mu.RLock()
	c, ok := s.comparisons[id]
	s.mu.RUnlock()
	if !ok {
		return nil, errors.NewBadInput("comparison_id", id.String(), nil)
	}

	out := make([]*types.FunctionMatch, 0, len(c.FunctionMatches))
	for _, m := range c.FunctionMatches {
		if len(opts.Kinds) > 0 {
			if _, ok := opts.Kinds[m.Kind]; !ok {
				continue
			}
		}
		if m.ChangeMagnitude < opts.MinMagnitude {
			continue
		}
		out = append(out, m)
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		var primaryLess, tied bool
		switch opts.SortBy {
		case SortBySimilarity:
			primaryLess = a.Similarity.Overall < b.Similarity.Overall
			tied = a.Similarity.Overall == b.Similarity.Overall
		case SortByName:
			return a.SortKey() < b.SortKey()
		default:
			primaryLess = a.ChangeMagnitude < b.ChangeMagnitude
			tied = a.ChangeMagnitude == b.ChangeMagnitude
		}
		if tied {
			return a.SortKey() < b.SortKey()
		}
		if opts.Descending {
			return !primaryLess
		}
		return primaryLess
	})

	if opts.Limit > 0 && len(out) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out, nil
}

// Get finds a single function's match by simple name first, falling back to
// qualified name; when several matches share that name, the one with the
// greatest change magnitude wins (§4.7: "ambiguity resolved by highest
// magnitude").
func (s *Store) Get(id uuid.UUID, name string) (*types.FunctionMatch, error) {
	s.mu.RLock()
	c, ok := s.comparisons[id]
	s.mu.RUnlock()
	if !ok {
		return nil, errors.NewBadInput("comparison_id", id.String(), nil)
	}

	var bySimple, byQualified []*types.FunctionMatch
	for _, m := range c.FunctionMatches {
		fn := m.TargetFn
		if fn == nil {
			fn = m.SourceFn
		}
		if fn == nil {
			continue
		}
		if fn.SimpleName == name {
			bySimple = append(bySimple, m)
		}
		if fn.QualifiedName == name {
			byQualified = append(byQualified, m)
		}
	}

	pool := bySimple
	if len(pool) == 0 {
		pool = byQualified
	}
	if len(pool) == 0 {
		return nil, errors.NewBadInput("function_name", name, nil)
	}

	best := pool[0]
	for _, m := range pool[1:] {
		if m.ChangeMagnitude > best.ChangeMagnitude {
			best = m
		}
	}
	return best, nil
}

// Evict removes a Comparison from the store, freeing its memory.
func (s *Store) Evict(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.comparisons, id)
}
