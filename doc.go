// Package cacheagent implements an offline-support cache agent for a
// single-page application. The agent owns one named, version-tagged store
// inside a pluggable registry of stores, precaches the application shell at
// install time, garbage-collects stale store generations at activate time, and
// then mediates GET fetches with a network-first policy for navigations and a
// cache-first policy for everything else.
//
// Components:
//   - registry.Registry: named byte stores (memory, BigCache, Ristretto, Redis).
//   - codec.Codec[Entry]: (de)serializes cached responses.
//   - Fetcher: performs network fetches (net/http by default, fake in tests).
//   - ClientRegistry: claims already-open clients after activation.
//
// Lifecycle:
//
//	agent, _ := cacheagent.New(cacheagent.Options{
//	    StoreName: "hob-tools-v2",
//	    Registry:  memory.New(),
//	})
//	_ = agent.Install(ctx)  // precache shell assets into hob-tools-v2
//	_ = agent.Activate(ctx) // drop hob-tools-v0/v1, claim open clients
//	resp, _ := agent.HandleFetch(ctx, req)
//
// Bumping StoreName and running a fresh Install/Activate cycle is the sole
// invalidation mechanism: Activate deletes every store whose name differs
// from the current one.
package cacheagent
