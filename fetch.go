package cacheagent

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/hob-tools/cacheagent/internal/util"
	reg "github.com/hob-tools/cacheagent/registry"
)

func (a *agent) Intercepts(req *Request) bool {
	return req != nil && strings.EqualFold(req.Method, http.MethodGet)
}

// HandleFetch applies the runtime cache policy to one request:
// network-first for navigations, cache-first with runtime population for
// every other GET, straight pass-through for non-GET methods.
func (a *agent) HandleFetch(ctx context.Context, req *Request) (*Response, error) {
	switch s := a.State(); {
	case s == StateRedundant:
		return nil, ErrRedundant
	case !EventFetch.allowed(s):
		return nil, ErrNotActive
	}

	if !a.Intercepts(req) {
		return a.fetcher.Do(ctx, req)
	}

	store, err := a.currentStore(ctx)
	if err != nil {
		return nil, err
	}

	if req.Navigate {
		return a.fetchNavigation(ctx, store, req)
	}
	return a.fetchRuntime(ctx, store, req)
}

// fetchNavigation is network-first: any resolved response is returned
// unmodified; only a transport failure falls back to the cached document.
func (a *agent) fetchNavigation(ctx context.Context, store reg.Store, req *Request) (*Response, error) {
	resp, err := a.fetcher.Do(ctx, req)
	if err == nil {
		return resp, nil
	}
	a.log.Debug("navigation fetch failed; trying document fallback",
		Fields{"url": req.URL, "err": err})
	return a.documentFallback(ctx, store, req, err, true)
}

// fetchRuntime is cache-first: a hit never touches the network. A miss is
// fetched, and a same-origin 200 is persisted via an explicit clone so the
// caller still receives an unconsumed body.
func (a *agent) fetchRuntime(ctx context.Context, store reg.Store, req *Request) (*Response, error) {
	key := util.RequestKey(req.Method, req.URL)

	e, ok, err := a.getEntry(ctx, store, key)
	if err != nil {
		return nil, err
	}
	if ok {
		return cachedResponse(e), nil
	}

	resp, ferr := a.fetcher.Do(ctx, req)
	if ferr != nil {
		if req.Destination == DestDocument {
			return a.documentFallback(ctx, store, req, ferr, false)
		}
		a.hooks.FetchNetworkError(key, false)
		return NewNetworkError(ferr), nil
	}

	if resp.Status == http.StatusOK && resp.Type == TypeBasic {
		dup, err := resp.Clone()
		if err != nil {
			return nil, err
		}
		body, err := dup.Bytes()
		if err != nil {
			return nil, err
		}
		if err := a.putEntry(ctx, store, Entry{
			URL:      req.URL,
			Status:   dup.Status,
			Header:   dup.Header,
			Body:     body,
			StoredAt: time.Now().UTC(),
		}); err != nil {
			return nil, err
		}
		a.hooks.RuntimeCached(key)
		a.log.Debug("runtime cached", Fields{"key": key})
	}
	return resp, nil
}

// documentFallback substitutes the cached document for a failed fetch; when
// even that is absent the caller gets a synthetic network-error response.
func (a *agent) documentFallback(ctx context.Context, store reg.Store, req *Request, cause error, navigation bool) (*Response, error) {
	key := util.RequestKey(http.MethodGet, a.fallbackURL)
	e, ok, err := a.getEntry(ctx, store, key)
	if err != nil {
		return nil, err
	}
	if ok {
		a.hooks.FallbackServed(util.RequestKey(req.Method, req.URL))
		return cachedResponse(e), nil
	}
	a.hooks.FetchNetworkError(util.RequestKey(req.Method, req.URL), navigation)
	return NewNetworkError(cause), nil
}

func cachedResponse(e Entry) *Response {
	r := NewResponse(e.Status, http.Header(e.Header), e.Body, TypeBasic)
	r.Cached = true
	return r
}
