package cacheagent

// Hooks lightweight callbacks for high-signal events.
// Implementations MUST be cheap and non-blocking.
// The agent calls them on hot paths.
type Hooks interface {
	// Manifest discovery failed during Install; the core list alone was
	// precached. reason ∈ {"fetch", "status", "parse"}
	ManifestFallback(url, reason string, err error)

	// Install finished writing the store. assets is the number of entries.
	PrecacheComplete(store string, assets int)

	// Install requested immediate takeover of the running generation.
	TakeoverRequested(store string)

	// Activate deleted a stale store generation.
	StaleStoreDropped(name string)

	// A cached entry was deleted on read.
	// reason ∈ {"corrupt", "entry_decode"}
	SelfHealEntry(key, reason string)

	// A runtime response was persisted after a cache miss.
	RuntimeCached(key string)

	// A failed fetch was answered with the cached document fallback.
	FallbackServed(key string)

	// A failed fetch had no cached substitute; a synthetic network-error
	// response was returned.
	FetchNetworkError(key string, navigation bool)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) ManifestFallback(string, string, error) {}
func (NopHooks) PrecacheComplete(string, int)           {}
func (NopHooks) TakeoverRequested(string)               {}
func (NopHooks) StaleStoreDropped(string)               {}
func (NopHooks) SelfHealEntry(string, string)           {}
func (NopHooks) RuntimeCached(string)                   {}
func (NopHooks) FallbackServed(string)                  {}
func (NopHooks) FetchNetworkError(string, bool)         {}
