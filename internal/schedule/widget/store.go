package widget

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"schedule-calendar/pkg/metrics"
)

const (
	defaultMaxSessions = 10000
	defaultSessionTTL  = 30 * time.Minute
)

// Store holds one Widget per session id. Idle sessions expire after ttl; the least recently
// used session is evicted when the store is full.
type Store struct {
	mu    sync.Mutex
	cache *expirable.LRU[string, *Widget]
}

// NewStore creates a session store. Non-positive arguments fall back to defaults.
func NewStore(maxSessions int, ttl time.Duration) *Store {
	if maxSessions <= 0 {
		maxSessions = defaultMaxSessions
	}
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &Store{
		cache: expirable.NewLRU[string, *Widget](
			maxSessions,
			func(string, *Widget) { metrics.ActiveSessions.Dec() },
			ttl,
		),
	}
}

// Get returns the widget of id and extends its lifetime.
func (s *Store) Get(id string) (*Widget, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.cache.Get(id)
	if ok {
		s.cache.Add(id, w)
	}
	return w, ok
}

// GetOrCreate returns the widget of id, creating an idle one when none is held.
func (s *Store) GetOrCreate(id string) *Widget {
	s.mu.Lock()
	defer s.mu.Unlock()

	if w, ok := s.cache.Get(id); ok {
		s.cache.Add(id, w)
		return w
	}

	w := New()
	s.cache.Add(id, w)
	metrics.ActiveSessions.Inc()
	return w
}

// Remove discards the widget of id.
func (s *Store) Remove(id string) {
	s.cache.Remove(id)
}

// Len is the number of live sessions.
func (s *Store) Len() int {
	return s.cache.Len()
}
