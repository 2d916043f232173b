package quotes

import (
	"sync"

	"quotehub/pkg/models"
)

// Store is the in-memory collection of quotes accumulated by the current
// scraping run. The scraper is the only writer; API handlers read it
// concurrently, so reads hand out snapshot copies.
type Store struct {
	mu     sync.RWMutex
	quotes []models.Quote
}

func NewStore() *Store {
	return &Store{}
}

// Reset clears the store. A new run always starts from an empty store;
// nothing is merged across runs.
func (s *Store) Reset() {
	s.mu.Lock()
	s.quotes = nil
	s.mu.Unlock()
}

// Append adds extractor output in order.
func (s *Store) Append(quotes ...models.Quote) {
	if len(quotes) == 0 {
		return
	}
	s.mu.Lock()
	s.quotes = append(s.quotes, quotes...)
	s.mu.Unlock()
}

// NextID returns the ID the next stored quote should receive.
func (s *Store) NextID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.quotes) + 1
}

// All returns a copy of the stored quotes in insertion order.
func (s *Store) All() []models.Quote {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Quote, len(s.quotes))
	copy(out, s.quotes)
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.quotes)
}
