// Package asynchook decouples hook delivery from the agent's hot path: every
// event is queued to a bounded channel and replayed on worker goroutines.
// When the queue is full the event is dropped rather than blocking a fetch.
//
// usage:
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{
//	    SelfHealEvery:     10, // sample logs: ~every 10th self-heal
//	    RuntimeCacheEvery: 50,
//	})
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	agent, _ := cacheagent.New(cacheagent.Options{
//	    StoreName: "hob-tools-v2",
//	    Registry:  registry,
//	    Hooks:     hooks, // or `raw` if you don't want async
//	})
package asynchook

import (
	"sync"

	"github.com/hob-tools/cacheagent"
)

type Hooks struct {
	inner cacheagent.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ cacheagent.Hooks = (*Hooks)(nil)

func New(inner cacheagent.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) PrecacheComplete(s string, n int) { h.try(func() { h.inner.PrecacheComplete(s, n) }) }
func (h *Hooks) TakeoverRequested(s string)       { h.try(func() { h.inner.TakeoverRequested(s) }) }
func (h *Hooks) StaleStoreDropped(n string)       { h.try(func() { h.inner.StaleStoreDropped(n) }) }
func (h *Hooks) SelfHealEntry(k, r string)        { h.try(func() { h.inner.SelfHealEntry(k, r) }) }
func (h *Hooks) RuntimeCached(k string)           { h.try(func() { h.inner.RuntimeCached(k) }) }
func (h *Hooks) FallbackServed(k string)          { h.try(func() { h.inner.FallbackServed(k) }) }
func (h *Hooks) ManifestFallback(u, r string, err error) {
	h.try(func() { h.inner.ManifestFallback(u, r, err) })
}
func (h *Hooks) FetchNetworkError(k string, nav bool) {
	h.try(func() { h.inner.FetchNetworkError(k, nav) })
}
