// Package ristretto adapts dgraph-io/ristretto as a cacheagent registry.
// Each named store maps to its own ristretto cache. Ristretto admission may
// reject writes under memory pressure, which surfaces as a Set error so the
// all-or-nothing precache contract holds.
package ristretto

import (
	"context"
	"errors"
	"sync"

	rc "github.com/dgraph-io/ristretto"

	reg "github.com/hob-tools/cacheagent/registry"
)

// ErrRejected is returned when ristretto refuses to admit a value.
var ErrRejected = errors.New("ristretto: set rejected under pressure")

type Config struct {
	NumCounters int64
	MaxCost     int64
	BufferItems int64
	Metrics     bool
}

type store struct {
	c *rc.Cache
}

func (s *store) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := s.c.Get(key)
	if !ok {
		return nil, false, nil
	}
	b, _ := v.([]byte)
	if b == nil {
		// self-heal: drop unexpected entry shape
		s.c.Del(key)
		return nil, false, nil
	}
	return b, true, nil
}

func (s *store) Set(_ context.Context, key string, value []byte) error {
	if !s.c.Set(key, value, int64(len(value))) {
		return ErrRejected
	}
	// flush the admission buffer so the entry is readable immediately
	s.c.Wait()
	return nil
}

func (s *store) Del(_ context.Context, key string) error {
	s.c.Del(key)
	return nil
}

// Registry creates one ristretto cache per opened name.
type Registry struct {
	cfg    Config
	mu     sync.Mutex
	stores map[string]*store
}

var _ reg.Registry = (*Registry)(nil)

func New(cfg Config) (*Registry, error) {
	if cfg.NumCounters <= 0 || cfg.MaxCost <= 0 || cfg.BufferItems <= 0 {
		return nil, errors.New("ristretto: invalid config")
	}
	return &Registry{cfg: cfg, stores: make(map[string]*store)}, nil
}

func (r *Registry) Open(_ context.Context, name string) (reg.Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.stores[name]; ok {
		return s, nil
	}
	c, err := rc.NewCache(&rc.Config{
		NumCounters: r.cfg.NumCounters,
		MaxCost:     r.cfg.MaxCost,
		BufferItems: r.cfg.BufferItems,
		Metrics:     r.cfg.Metrics,
	})
	if err != nil {
		return nil, err
	}
	s := &store{c: c}
	r.stores[name] = s
	return s, nil
}

func (r *Registry) Names(_ context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.stores))
	for n := range r.stores {
		names = append(names, n)
	}
	return names, nil
}

func (r *Registry) Delete(_ context.Context, name string) (bool, error) {
	r.mu.Lock()
	s, ok := r.stores[name]
	if ok {
		delete(r.stores, name)
	}
	r.mu.Unlock()
	if !ok {
		return false, nil
	}
	s.c.Wait()
	s.c.Close()
	return true, nil
}

func (r *Registry) Close(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for n, s := range r.stores {
		s.c.Wait()
		s.c.Close()
		delete(r.stores, n)
	}
	return nil
}
