package requirements

import (
	"sync"

	"github.com/mklnz/stashkeep/pkg/catalog"
	"github.com/mklnz/stashkeep/pkg/progress"
)

// Store caches the last computed requirement maps and serves point and bulk
// reads. It holds no business logic: all computation lives in the pure
// functions of this package, and Recompute simply replaces the cached result.
//
// One writer (Recompute), many readers. Readers always see either the old or
// the new complete result, never a partial one.
type Store struct {
	mu           sync.RWMutex
	totals       ItemRequirements
	completed    ItemRequirements
	remaining    ItemRequirements
	hasValueReqs bool

	subMu sync.Mutex
	subs  []func()
}

// NewStore returns an empty store; QuantityNeeded reports 0 for everything
// until the first Recompute.
func NewStore() *Store {
	return &Store{
		totals:    ItemRequirements{},
		completed: ItemRequirements{},
		remaining: ItemRequirements{},
	}
}

// Recompute runs the full extraction/aggregation/subtraction pipeline over
// the given catalog and progress snapshot and replaces the cached maps.
// Recomputation is always full and synchronous; catalog sizes are bounded, so
// there is no incremental path. A nil catalog clears the cache rather than
// serving stale data. Subscribers are notified after the swap.
func (s *Store) Recompute(cat *catalog.Catalog, snap *progress.Snapshot) {
	var totals, completed, remaining ItemRequirements
	var hasValueReqs bool

	if cat == nil {
		totals, completed, remaining = ItemRequirements{}, ItemRequirements{}, ItemRequirements{}
	} else {
		totals = CalculateItemRequirements(cat.Quests, cat.Modules, cat.Projects)
		completed = CompletedRequirements(snap, cat.Quests, cat.Modules, cat.Projects)
		remaining = RemainingRequirements(totals, completed)
		hasValueReqs = HasValueRequirements(cat.Projects)
	}

	s.mu.Lock()
	s.totals = totals
	s.completed = completed
	s.remaining = remaining
	s.hasValueReqs = hasValueReqs
	s.mu.Unlock()

	s.notify()
}

// QuantityNeeded returns the cached remaining quantity for an item, or 0 when
// the item is unknown, fully satisfied, or nothing has been computed yet.
func (s *Store) QuantityNeeded(itemID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.remaining[itemID]
}

// Remaining returns a copy of the cached remaining-requirement map.
func (s *Store) Remaining() ItemRequirements {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyMap(s.remaining)
}

// Totals returns a copy of the cached total-requirement map.
func (s *Store) Totals() ItemRequirements {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyMap(s.totals)
}

// Completed returns a copy of the cached completed-requirement map.
func (s *Store) Completed() ItemRequirements {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyMap(s.completed)
}

// HasValueRequirements reports whether the last computed catalog contained
// category-value project requirements that are not reflected in the maps.
func (s *Store) HasValueRequirements() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hasValueReqs
}

// Subscribe registers a callback invoked after every Recompute. The store
// pushes no deltas; subscribers re-read whichever maps they care about.
func (s *Store) Subscribe(fn func()) {
	s.subMu.Lock()
	s.subs = append(s.subs, fn)
	s.subMu.Unlock()
}

func (s *Store) notify() {
	s.subMu.Lock()
	subs := make([]func(), len(s.subs))
	copy(subs, s.subs)
	s.subMu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

func copyMap(m ItemRequirements) ItemRequirements {
	out := make(ItemRequirements, len(m))
	for id, qty := range m {
		out[id] = qty
	}
	return out
}
