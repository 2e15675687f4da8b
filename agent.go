package cacheagent

import (
	"context"
	"fmt"
	"sync"

	c "github.com/hob-tools/cacheagent/codec"
	reg "github.com/hob-tools/cacheagent/registry"
)

type agent struct {
	storeName   string
	registry    reg.Registry
	fetcher     Fetcher
	clients     ClientRegistry
	codec       c.Codec[Entry]
	log         Logger
	hooks       Hooks
	manifestURL string
	core        []string
	fallbackURL string

	mu       sync.RWMutex
	state    State
	store    reg.Store // set by a successful Install
	takeover bool      // Install requested immediate takeover
}

func newAgent(opts Options) (*agent, error) {
	if opts.StoreName == "" {
		return nil, fmt.Errorf("cacheagent: store name is required")
	}
	if opts.Registry == nil {
		return nil, fmt.Errorf("cacheagent: registry is required")
	}

	a := &agent{
		storeName: opts.StoreName,
		registry:  opts.Registry,
		state:     StateNew,
		core:      opts.Core,
	}

	// defaults
	a.fetcher = coalesce[Fetcher](opts.Fetcher, &HTTPFetcher{})
	a.clients = coalesce[ClientRegistry](opts.Clients, NopClients{})
	a.codec = coalesce[c.Codec[Entry]](opts.Codec, c.JSONCodec[Entry]{})
	a.log = coalesce[Logger](opts.Logger, NopLogger{})
	a.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	a.manifestURL = coalesce[string](opts.Manifest, defaultManifestURL)
	a.fallbackURL = coalesce[string](opts.Fallback, defaultFallbackURL)
	if a.core == nil {
		a.core = DefaultCoreAssets
	}

	return a, nil
}

func (a *agent) State() State {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state
}

// begin validates that ev may run now and applies the transient state; the
// returned rollback restores the previous state for a failed event.
func (a *agent) begin(ev Event, transient State) (rollback func(), err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state == StateRedundant {
		return nil, ErrRedundant
	}
	if !ev.allowed(a.state) {
		return nil, &LifecycleError{Event: ev, State: a.state}
	}
	prev := a.state
	a.state = transient
	return func() {
		a.mu.Lock()
		a.state = prev
		a.mu.Unlock()
	}, nil
}

func (a *agent) Install(ctx context.Context) error {
	rollback, err := a.begin(EventInstall, StateInstalling)
	if err != nil {
		return err
	}

	store, err := a.registry.Open(ctx, a.storeName)
	if err != nil {
		rollback()
		return fmt.Errorf("cacheagent: open store %q: %w", a.storeName, err)
	}

	count, err := a.precache(ctx, store)
	if err != nil {
		rollback()
		return err
	}

	a.mu.Lock()
	a.store = store
	a.takeover = true
	a.state = StateWaiting
	a.mu.Unlock()

	a.hooks.PrecacheComplete(a.storeName, count)
	a.hooks.TakeoverRequested(a.storeName)
	a.log.Info("install complete", Fields{"store": a.storeName, "assets": count})
	return nil
}

func (a *agent) Activate(ctx context.Context) error {
	rollback, err := a.begin(EventActivate, StateWaiting)
	if err != nil {
		return err
	}

	names, err := a.registry.Names(ctx)
	if err != nil {
		rollback()
		return fmt.Errorf("cacheagent: list stores: %w", err)
	}

	var (
		failed  []string
		delErrs []error
		dropped int
	)
	for _, name := range names {
		if name == a.storeName {
			continue
		}
		deleted, err := a.registry.Delete(ctx, name)
		if err != nil {
			failed = append(failed, name)
			delErrs = append(delErrs, err)
			continue
		}
		if deleted {
			dropped++
			a.hooks.StaleStoreDropped(name)
			a.log.Debug("dropped stale store", Fields{"name": name})
		}
	}

	claimErr := a.clients.Claim(ctx)

	if len(delErrs) > 0 || claimErr != nil {
		rollback()
		return &ActivateError{Stores: failed, DelErrs: delErrs, ClaimErr: claimErr}
	}

	a.mu.Lock()
	a.state = StateActive
	a.mu.Unlock()

	a.log.Info("activate complete", Fields{"store": a.storeName, "dropped": dropped})
	return nil
}

func (a *agent) Retire() {
	a.mu.Lock()
	a.state = StateRedundant
	a.mu.Unlock()
}

func (a *agent) Close(ctx context.Context) error {
	a.Retire()
	if a.registry != nil {
		return a.registry.Close(ctx)
	}
	return nil
}

// currentStore returns the generation's store, opening it lazily for agents
// activated without a visible Install in this process.
func (a *agent) currentStore(ctx context.Context) (reg.Store, error) {
	a.mu.RLock()
	s := a.store
	a.mu.RUnlock()
	if s != nil {
		return s, nil
	}
	s, err := a.registry.Open(ctx, a.storeName)
	if err != nil {
		return nil, err
	}
	a.mu.Lock()
	if a.store == nil {
		a.store = s
	}
	s = a.store
	a.mu.Unlock()
	return s, nil
}
