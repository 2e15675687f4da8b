// Package bigcache adapts allegro/bigcache as a cacheagent registry. Each
// named store maps to its own BigCache instance so deleting a generation
// releases its memory wholesale.
package bigcache

import (
	"context"
	"sync"
	"time"

	bc "github.com/allegro/bigcache/v3"

	reg "github.com/hob-tools/cacheagent/registry"
)

type Config struct {
	LifeWindow         time.Duration // required by BigCache; entries older than this may be dropped
	CleanWindow        time.Duration
	MaxEntriesInWindow int
	MaxEntrySize       int
	HardMaxCacheSizeMB int // ~ memory limit per store; 0 = unlimited
}

type store struct {
	c *bc.BigCache
}

func (s *store) Get(_ context.Context, key string) ([]byte, bool, error) {
	b, err := s.c.Get(key)
	if err == bc.ErrEntryNotFound {
		return nil, false, nil
	}
	return b, err == nil, err
}

func (s *store) Set(_ context.Context, key string, value []byte) error {
	return s.c.Set(key, value)
}

func (s *store) Del(_ context.Context, key string) error {
	err := s.c.Delete(key)
	if err == bc.ErrEntryNotFound {
		return nil
	}
	return err
}

// Registry creates one BigCache per opened name.
type Registry struct {
	cfg    Config
	mu     sync.Mutex
	stores map[string]*store
}

var _ reg.Registry = (*Registry)(nil)

func New(cfg Config) *Registry {
	return &Registry{cfg: cfg, stores: make(map[string]*store)}
}

func (r *Registry) Open(ctx context.Context, name string) (reg.Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.stores[name]; ok {
		return s, nil
	}
	conf := bc.DefaultConfig(r.cfg.LifeWindow)
	if r.cfg.CleanWindow > 0 {
		conf.CleanWindow = r.cfg.CleanWindow
	}
	if r.cfg.MaxEntriesInWindow > 0 {
		conf.MaxEntriesInWindow = r.cfg.MaxEntriesInWindow
	}
	if r.cfg.MaxEntrySize > 0 {
		conf.MaxEntrySize = r.cfg.MaxEntrySize
	}
	if r.cfg.HardMaxCacheSizeMB > 0 {
		conf.HardMaxCacheSize = r.cfg.HardMaxCacheSizeMB
	}
	c, err := bc.New(ctx, conf)
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
	return true, s.c.Close()
}

func (r *Registry) Close(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var first error
	for n, s := range r.stores {
		if err := s.c.Close(); err != nil && first == nil {
			first = err
		}
		delete(r.stores, n)
	}
	return first
}
