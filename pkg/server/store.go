package server

import (
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ja7ad/distill/pkg/distill"
)

// ErrNotFound indicates an unknown design id.
var ErrNotFound = errors.New("server: design not found")

// Entry is a stored design run.
type Entry struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Created time.Time       `json:"created"`
	Project distill.Project `json:"project"`
}

// Store keeps design runs in memory.
type Store struct {
	entries map[string]*Entry
	mu      sync.RWMutex
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{entries: make(map[string]*Entry)}
}

// Put stores p under a new id and returns the entry.
func (s *Store) Put(name string, p distill.Project) *Entry {
	e := &Entry{
		ID:      uuid.NewString(),
		Name:    name,
		Created: time.Now().UTC(),
		Project: p,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[e.ID] = e
	return e
}

// Get returns the entry with the given id.
func (s *Store) Get(id string) (*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[id]
	if !ok {
		return nil, ErrNotFound
	}
	return e, nil
}

// List returns all entries, oldest first.
func (s *Store) List() []*Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Entry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b *Entry) int {
		if c := a.Created.Compare(b.Created); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return out
}
