package services

import "sync"

// RequestSequencer implements last-request-wins per resource key: only the most
// recently started request for a key may publish its result to shared state.
type RequestSequencer struct {
	mu     sync.Mutex
	latest map[string]uint64
}

func NewRequestSequencer() *RequestSequencer {
	return &RequestSequencer{latest: make(map[string]uint64)}
}

// Begin registers a new request for key and returns its ticket.
func (s *RequestSequencer) Begin(key string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest[key]++
	return s.latest[key]
}

// IsLatest reports whether ticket is still the newest request for key.
func (s *RequestSequencer) IsLatest(key string, ticket uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest[key] == ticket
}
