// Package session keeps recently produced analyses in memory so the
// export and re-fetch endpoints can serve what the client is rendering.
// Nothing here touches disk; results die with their TTL or the process.
package session

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/paperlens/backend/internal/models"
)

// DefaultMaxResults limits stored analyses to prevent memory exhaustion.
const DefaultMaxResults = 20

// DefaultMaxAge is how long an untouched analysis survives.
const DefaultMaxAge = 30 * time.Minute

// Store holds completed analyses keyed by ID.
type Store struct {
	mu         sync.RWMutex
	results    map[string]*entry
	maxAge     time.Duration
	maxResults int
}

type entry struct {
	analysis     *models.Analysis
	lastAccessed time.Time
}

// NewStore creates a result store. Zero arguments fall back to defaults.
func NewStore(maxAge time.Duration, maxResults int) *Store {
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	return &Store{
		results:    make(map[string]*entry),
		maxAge:     maxAge,
		maxResults: maxResults,
	}
}

// Put stores an analysis, evicting the least recently accessed one if the
// store is at capacity. ExpiresAt is stamped from the store's TTL.
func (s *Store) Put(a *models.Analysis) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictOldestLocked()

	now := time.Now()
	a.ExpiresAt = now.Add(s.maxAge)
	s.results[a.ID] = &entry{analysis: a, lastAccessed: now}
}

// Get returns an analysis by ID.
func (s *Store) Get(id string) (*models.Analysis, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.results[id]
	if !ok {
		return nil, false
	}
	return e.analysis, true
}

// Touch refreshes the last-accessed timestamp so an analysis the user is
// still reading does not expire under them.
func (s *Store) Touch(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.results[id]
	if !ok {
		return false
	}
	now := time.Now()
	e.lastAccessed = now
	e.analysis.ExpiresAt = now.Add(s.maxAge)
	return true
}

// Delete discards a stored analysis.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.results[id]; !ok {
		return false
	}
	delete(s.results, id)
	return true
}

// List returns summaries of all stored analyses, most recent first.
func (s *Store) List() []models.AnalysisSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]models.AnalysisSummary, 0, len(s.results))
	for _, e := range s.results {
		list = append(list, e.analysis.Summary())
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})

	return list
}

// Len returns the number of stored analyses.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.results)
}

// CleanupExpired removes analyses whose TTL has lapsed since their last
// access. Returns the number removed. Called periodically from main.
func (s *Store) CleanupExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-s.maxAge)
	removed := 0

	for id, e := range s.results {
		if e.lastAccessed.Before(cutoff) {
			delete(s.results, id)
			removed++
			fmt.Printf("[Results] Cleaned up aged analysis %s (last accessed %s ago)\n",
				shortID(id), time.Since(e.lastAccessed).Round(time.Second))
		}
	}

	return removed
}

// evictOldestLocked removes least recently accessed entries until there is
// room for one more. Caller must hold the write lock.
func (s *Store) evictOldestLocked() {
	for len(s.results) >= s.maxResults {
		oldestID := ""
		var oldest time.Time
		for id, e := range s.results {
			if oldestID == "" || e.lastAccessed.Before(oldest) {
				oldestID = id
				oldest = e.lastAccessed
			}
		}
		if oldestID == "" {
			return
		}
		delete(s.results, oldestID)
		fmt.Printf("[Results] Evicted analysis %s to free memory\n", shortID(oldestID))
	}
}

// shortID safely truncates an ID for logging (handles short IDs gracefully)
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
