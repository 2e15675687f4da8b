// Package redis adapts a redis backend as a cacheagent registry, sharing
// store generations across processes and restarts. Store membership lives
// in a set under <prefix>:stores; each store keeps an index of its keys so
// deletion does not need SCAN.
package redis

import (
	"context"
	"errors"

	goredis "github.com/redis/go-redis/v9"

	reg "github.com/hob-tools/cacheagent/registry"
)

var ErrNilClient = errors.New("redis registry: nil client")

const defaultPrefix = "cacheagent"

type Config struct {
	Client      goredis.UniversalClient
	CloseClient bool   // set true only if this registry exclusively owns the client
	Prefix      string // key prefix; "" => "cacheagent"
}

// Registry stores entries as <prefix>:store:<name>:<key> with a per-store
// key index at <prefix>:keys:<name>.
type Registry struct {
	rdb         goredis.UniversalClient
	prefix      string
	closeClient bool
}

var _ reg.Registry = (*Registry)(nil)

func New(cfg Config) (*Registry, error) {
	if cfg.Client == nil {
		return nil, ErrNilClient
	}
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &Registry{rdb: cfg.Client, prefix: prefix, closeClient: cfg.CloseClient}, nil
}

func (r *Registry) namesKey() string            { return r.prefix + ":stores" }
func (r *Registry) indexKey(name string) string { return r.prefix + ":keys:" + name }
func (r *Registry) entryKey(name, key string) string {
	return r.prefix + ":store:" + name + ":" + key
}

func (r *Registry) Open(ctx context.Context, name string) (reg.Store, error) {
	if err := r.rdb.SAdd(ctx, r.namesKey(), name).Err(); err != nil {
		return nil, err
	}
	return &store{r: r, name: name}, nil
}

func (r *Registry) Names(ctx context.Context) ([]string, error) {
	return r.rdb.SMembers(ctx, r.namesKey()).Result()
}

func (r *Registry) Delete(ctx context.Context, name string) (bool, error) {
	member, err := r.rdb.SIsMember(ctx, r.namesKey(), name).Result()
	if err != nil {
		return false, err
	}
	if !member {
		return false, nil
	}
	keys, err := r.rdb.SMembers(ctx, r.indexKey(name)).Result()
	if err != nil {
		return false, err
	}
	entryKeys := make([]string, 0, len(keys)+1)
	for _, k := range keys {
		entryKeys = append(entryKeys, r.entryKey(name, k))
	}
	entryKeys = append(entryKeys, r.indexKey(name))
	if err := r.rdb.Del(ctx, entryKeys...).Err(); err != nil {
		return false, err
	}
	if err := r.rdb.SRem(ctx, r.namesKey(), name).Err(); err != nil {
		return false, err
	}
	return true, nil
}

// Close releases the underlying redis client only when this registry owns
// it. Safe to call multiple times; repeated calls become no-ops.
func (r *Registry) Close(context.Context) error {
	if r.closeClient {
		if err := r.rdb.Close(); err != nil && !errors.Is(err, goredis.ErrClosed) {
			return err
		}
	}
	return nil
}

type store struct {
	r    *Registry
	name string
}

func (s *store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := s.r.rdb.Get(ctx, s.r.entryKey(s.name, key)).Bytes()
	if err == goredis.Nil {
		return nil, false, nil // miss
	}
	if err != nil {
		return nil, false, err // transport/server error
	}
	return b, true, nil
}

func (s *store) Set(ctx context.Context, key string, value []byte) error {
	// entries never expire within a generation; TTL 0
	if err := s.r.rdb.Set(ctx, s.r.entryKey(s.name, key), value, 0).Err(); err != nil {
		return err
	}
	return s.r.rdb.SAdd(ctx, s.r.indexKey(s.name), key).Err()
}

func (s *store) Del(ctx context.Context, key string) error {
	if err := s.r.rdb.Del(ctx, s.r.entryKey(s.name, key)).Err(); err != nil {
		return err
	}
	return s.r.rdb.SRem(ctx, s.r.indexKey(s.name), key).Err()
}
