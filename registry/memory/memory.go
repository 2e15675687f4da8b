// Package memory provides an in-process Registry. It is the default choice
// for tests and single-process embedders.
package memory

import (
	"context"
	"sync"

	reg "github.com/hob-tools/cacheagent/registry"
)

type store struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func newStore() *store { return &store{entries: make(map[string][]byte)} }

func (s *store) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	v, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	return v, true, nil
}

func (s *store) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	s.entries[key] = value
	s.mu.Unlock()
	return nil
}

func (s *store) Del(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
	return nil
}

// Len reports the number of entries (not part of registry.Store).
func (s *store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Registry keeps all stores in process memory.
type Registry struct {
	mu     sync.RWMutex
	stores map[string]*store
}

var _ reg.Registry = (*Registry)(nil)

func New() *Registry {
	return &Registry{stores: make(map[string]*store)}
}

func (r *Registry) Open(_ context.Context, name string) (reg.Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.stores[name]
	if !ok {
		s = newStore()
		r.stores[name] = s
	}
	return s, nil
}

func (r *Registry) Names(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.stores))
	for n := range r.stores {
		names = append(names, n)
	}
	return names, nil
}

func (r *Registry) Delete(_ context.Context, name string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.stores[name]; !ok {
		return false, nil
	}
	delete(r.stores, name)
	return true, nil
}

func (r *Registry) Close(_ context.Context) error {
	r.mu.Lock()
	r.stores = make(map[string]*store)
	r.mu.Unlock()
	return nil
}

// Len reports the number of entries in a named store; 0 when the store is
// absent. Test helper, not part of registry.Registry.
func (r *Registry) Len(name string) int {
	r.mu.RLock()
	s, ok := r.stores[name]
	r.mu.RUnlock()
	if !ok {
		return 0
	}
	return s.Len()
}
