package cacheagent

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/hob-tools/cacheagent/internal/util"
	"github.com/hob-tools/cacheagent/internal/wire"
	"github.com/hob-tools/cacheagent/manifest"
	reg "github.com/hob-tools/cacheagent/registry"
)

// precache populates the generation's store with the shell asset set and
// returns the number of entries written. The asset list is the static core
// list merged with whatever the manifest declares; every manifest failure
// degrades to the core list alone so Install never leaves the store empty.
func (a *agent) precache(ctx context.Context, store reg.Store) (int, error) {
	urls := manifest.Merge(a.core, a.discover(ctx))

	// addAll semantics: fetch everything first, write only when every
	// fetch succeeded, so a partial batch never lands in the store.
	entries := make([]Entry, 0, len(urls))
	for _, u := range urls {
		resp, err := a.fetcher.Do(ctx, &Request{Method: http.MethodGet, URL: u})
		if err != nil {
			return 0, &PrecacheError{URL: u, FetchErr: err}
		}
		body, err := resp.Bytes()
		if err != nil {
			return 0, &PrecacheError{URL: u, FetchErr: err}
		}
		entries = append(entries, Entry{
			URL:      u,
			Status:   resp.Status,
			Header:   resp.Header,
			Body:     body,
			StoredAt: time.Now().UTC(),
		})
	}

	for _, e := range entries {
		if err := a.putEntry(ctx, store, e); err != nil {
			return 0, &PrecacheError{URL: e.URL, SetErr: err}
		}
	}
	return len(entries), nil
}

// discover fetches and parses the asset manifest, bypassing intermediary
// caches so a fresh deploy is always seen. Any failure is reported through
// the hook and answered with nil: the caller falls back to the core list.
func (a *agent) discover(ctx context.Context) []string {
	resp, err := a.fetcher.Do(ctx, &Request{
		Method:    http.MethodGet,
		URL:       a.manifestURL,
		CacheMode: CacheReload,
	})
	if err != nil {
		a.hooks.ManifestFallback(a.manifestURL, "fetch", err)
		a.log.Warn("manifest fetch failed; precaching core list only",
			Fields{"url": a.manifestURL, "err": err})
		return nil
	}
	if !resp.OK() {
		err := fmt.Errorf("manifest status %d", resp.Status)
		a.hooks.ManifestFallback(a.manifestURL, "status", err)
		a.log.Warn("manifest fetch failed; precaching core list only",
			Fields{"url": a.manifestURL, "status": resp.Status})
		return nil
	}
	body, err := resp.Bytes()
	if err != nil {
		a.hooks.ManifestFallback(a.manifestURL, "fetch", err)
		return nil
	}
	m, err := manifest.Parse(body)
	if err != nil {
		a.hooks.ManifestFallback(a.manifestURL, "parse", err)
		a.log.Warn("manifest parse failed; precaching core list only",
			Fields{"url": a.manifestURL, "err": err})
		return nil
	}
	return m.URLs()
}

// putEntry encodes and frames one entry under its request identity.
func (a *agent) putEntry(ctx context.Context, store reg.Store, e Entry) error {
	payload, err := a.codec.Encode(e)
	if err != nil {
		return err
	}
	return store.Set(ctx, util.RequestKey(http.MethodGet, e.URL), wire.EncodeEntry(payload))
}

// getEntry reads and decodes one entry. Corrupt or undecodable bytes are
// deleted (self-heal) and reported as a miss.
func (a *agent) getEntry(ctx context.Context, store reg.Store, key string) (Entry, bool, error) {
	raw, ok, err := store.Get(ctx, key)
	if err != nil || !ok {
		return Entry{}, false, err
	}
	payload, err := wire.DecodeEntry(raw)
	if err != nil {
		_ = store.Del(ctx, key) // self-heal corrupt
		a.hooks.SelfHealEntry(key, "corrupt")
		return Entry{}, false, nil
	}
	e, err := a.codec.Decode(payload)
	if err != nil {
		_ = store.Del(ctx, key) // self-heal
		a.hooks.SelfHealEntry(key, "entry_decode")
		return Entry{}, false, nil
	}
	return e, true, nil
}
