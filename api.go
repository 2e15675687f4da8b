package cacheagent

import (
	"context"
	"time"

	c "github.com/hob-tools/cacheagent/codec"
	reg "github.com/hob-tools/cacheagent/registry"
)

// Entry is a cached response as persisted in a store. Header and Body are
// stored verbatim. StoredAt records the write time for diagnostics only;
// entries never expire within a store generation.
type Entry struct {
	URL      string              `json:"url"`
	Status   int                 `json:"status"`
	Header   map[string][]string `json:"header,omitempty"`
	Body     []byte              `json:"body,omitempty"`
	StoredAt time.Time           `json:"stored_at"`
}

// Agent is the high-level offline cache agent API. One Agent corresponds to
// one store generation; a new generation means a new Agent with a bumped
// StoreName.
type Agent interface {
	// State reports the current lifecycle state.
	State() State

	// Install precaches the shell assets into the version-named store.
	// Valid only in StateNew; on success the agent is StateWaiting and has
	// requested takeover of the previous generation.
	Install(ctx context.Context) error

	// Activate deletes all stores whose name differs from StoreName and
	// claims open clients. Valid in StateWaiting; safe to re-run.
	Activate(ctx context.Context) error

	// Intercepts reports whether HandleFetch would apply a caching policy
	// to req (GET only; everything else passes through).
	Intercepts(req *Request) bool

	// HandleFetch resolves one intercepted request. Valid only while
	// StateActive. A failed network fetch yields a cached substitute or a
	// synthetic network-error Response, never a nil Response with nil error.
	// A non-nil error is reserved for store failures.
	HandleFetch(ctx context.Context, req *Request) (*Response, error)

	// Retire marks the agent redundant. All later calls fail with
	// ErrRedundant.
	Retire()

	// Close retires the agent and releases the registry.
	Close(ctx context.Context) error
}

// Options tune the agent. Only StoreName and Registry are required; others
// have sensible defaults.
type Options struct {
	// Required
	StoreName string       // version-tagged store name, e.g. "hob-tools-v2"
	Registry  reg.Registry // named-store registry (memory, bigcache, redis, ...)

	Fetcher  Fetcher        // nil => HTTPFetcher with http.DefaultClient
	Clients  ClientRegistry // nil => NopClients
	Codec    c.Codec[Entry] // nil => codec.JSONCodec[Entry]
	Logger   Logger         // nil => NopLogger
	Hooks    Hooks          // nil => NopHooks
	Manifest string         // manifest URL; "" => "/asset-manifest.json"
	Core     []string       // shell asset URLs; nil => DefaultCoreAssets
	Fallback string         // document fallback URL; "" => "/index.html"
}

// New validates opts and returns an Agent in StateNew.
func New(opts Options) (Agent, error) {
	return newAgent(opts)
}
