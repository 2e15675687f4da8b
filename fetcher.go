package cacheagent

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Fetcher performs one network fetch. A transport-level failure (offline,
// DNS, connection reset) is reported as a non-nil error; a resolved HTTP
// exchange of any status is a *Response with a nil error.
type Fetcher interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}

// HTTPFetcher is the default net/http-backed Fetcher. Relative request URLs
// are resolved against Origin; responses from the Origin host are classified
// TypeBasic, everything else TypeCORS.
type HTTPFetcher struct {
	Client *http.Client // nil => http.DefaultClient
	Origin string       // base URL for relative requests, e.g. "https://app.example.com"
}

var _ Fetcher = (*HTTPFetcher)(nil)

func (f *HTTPFetcher) Do(ctx context.Context, req *Request) (*Response, error) {
	target, sameOrigin, err := f.resolve(req.URL)
	if err != nil {
		return nil, err
	}

	hr, err := http.NewRequestWithContext(ctx, req.Method, target, nil)
	if err != nil {
		return nil, err
	}
	for k, vs := range req.Header {
		hr.Header[k] = vs
	}
	if req.CacheMode == CacheReload {
		hr.Header.Set("Cache-Control", "no-cache")
		hr.Header.Set("Pragma", "no-cache")
	}

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(hr)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	typ := TypeBasic
	if !sameOrigin {
		typ = TypeCORS
	}
	return NewResponse(resp.StatusCode, resp.Header.Clone(), body, typ), nil
}

func (f *HTTPFetcher) resolve(raw string) (string, bool, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", false, err
	}
	if f.Origin == "" {
		return raw, true, nil
	}
	base, err := url.Parse(f.Origin)
	if err != nil {
		return "", false, err
	}
	resolved := base.ResolveReference(u)
	sameOrigin := strings.EqualFold(resolved.Host, base.Host) &&
		strings.EqualFold(resolved.Scheme, base.Scheme)
	return resolved.String(), sameOrigin, nil
}
