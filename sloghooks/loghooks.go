package sloghooks

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync/atomic"

	"github.com/hob-tools/cacheagent"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	SelfHealEvery     uint64
	RuntimeCacheEvery uint64
	// Optional key redactor. Defaults to SHA-256 prefix.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	selfHealCtr atomic.Uint64
	runtimeCtr  atomic.Uint64
}

var _ cacheagent.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(k string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(k)
	}
	sum := sha256.Sum256([]byte(k))
	return hex.EncodeToString(sum[:8])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) ManifestFallback(url, reason string, err error) {
	if h.l == nil {
		return
	}
	h.l.Warn("cacheagent.manifest_fallback",
		"url", url,
		"reason", reason,
		"err", err)
}

func (h *Hooks) PrecacheComplete(store string, assets int) {
	if h.l == nil {
		return
	}
	h.l.Info("cacheagent.precache_complete",
		"store", store,
		"assets", assets)
}

func (h *Hooks) TakeoverRequested(store string) {
	if h.l == nil {
		return
	}
	h.l.Info("cacheagent.takeover_requested",
		"store", store)
}

func (h *Hooks) StaleStoreDropped(name string) {
	if h.l == nil {
		return
	}
	h.l.Info("cacheagent.stale_store_dropped",
		"name", name)
}

func (h *Hooks) SelfHealEntry(key, reason string) {
	if h.l == nil || !sample(h.opts.SelfHealEvery, &h.selfHealCtr) {
		return
	}
	h.l.Debug("cacheagent.self_heal_entry",
		"key", h.redact(key),
		"reason", reason)
}

func (h *Hooks) RuntimeCached(key string) {
	if h.l == nil || !sample(h.opts.RuntimeCacheEvery, &h.runtimeCtr) {
		return
	}
	h.l.Debug("cacheagent.runtime_cached",
		"key", h.redact(key))
}

func (h *Hooks) FallbackServed(key string) {
	if h.l == nil {
		return
	}
	h.l.Info("cacheagent.fallback_served",
		"key", h.redact(key))
}

func (h *Hooks) FetchNetworkError(key string, navigation bool) {
	if h.l == nil {
		return
	}
	h.l.Warn("cacheagent.fetch_network_error",
		"key", h.redact(key),
		"navigation", navigation)
}
