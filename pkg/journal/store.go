package journal

import "sync"

// Store is an append-only, insertion-ordered collection of records.
// It is safe for concurrent use and must not be copied after first use.
type Store struct {
	mu      sync.RWMutex
	records []Record
}

var (
	sharedOnce  sync.Once
	sharedStore *Store
)

// Shared returns the process-wide store, creating it on first use.
// Every call returns the same instance.
func Shared() *Store {
	sharedOnce.Do(func() {
		sharedStore = NewStore()
	})
	return sharedStore
}

// NewStore creates an empty store independent of Shared.
func NewStore() *Store {
	return &Store{
		records: make([]Record, 0, 64),
	}
}

// Append adds a record at the end of the store.
func (s *Store) Append(r Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, r)
}

// Add creates a record from a type label and appends it. The boolean mirrors
// Create: when it is false nothing was stored.
func (s *Store) Add(typeLabel, message string) (Record, bool) {
	r, ok := Create(typeLabel, message)
	if !ok {
		return Record{}, false
	}
	s.Append(r)
	return r, true
}

// All returns a copy of every record in insertion order.
func (s *Store) All() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
