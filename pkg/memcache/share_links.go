// pkg/memcache/share_links.go
package memcache

import (
	"sync"
	"time"
)

type ShareLinkStore interface {
	Set(token string, itineraryID string, ttl time.Duration)

	// Resolve returns the itinerary id for token if not expired.
	// Returns "" if missing/expired. Tokens stay valid until expiry so
	// a link can be opened more than once.
	Resolve(token string) string
}

type entry struct {
	itineraryID string
	expiresAt   time.Time
}

type ShareLinks struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewShareLinks() *ShareLinks {
	return &ShareLinks{
		data: make(map[string]entry),
	}
}

func (s *ShareLinks) Set(token string, itineraryID string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[token] = entry{
		itineraryID: itineraryID,
		expiresAt:   time.Now().Add(ttl),
	}
}

func (s *ShareLinks) Resolve(token string) string {
	s.mu.RLock()
	e, ok := s.data[token]
	s.mu.RUnlock()

	if !ok {
		return ""
	}
	if time.Now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.data, token)
		s.mu.Unlock()
		return ""
	}
	return e.itineraryID
}
