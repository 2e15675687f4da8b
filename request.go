package cacheagent

import "net/http"

// Destination classifies what an intercepted request will be used for,
// mirroring the platform's destination taxonomy. Only DestDocument changes
// policy (it is eligible for the document fallback); the rest are carried
// for logging.
type Destination string

const (
	DestNone     Destination = ""
	DestDocument Destination = "document"
	DestScript   Destination = "script"
	DestStyle    Destination = "style"
	DestImage    Destination = "image"
	DestFont     Destination = "font"
)

// CacheMode controls how the Fetcher may use intermediary HTTP caches for
// one request.
type CacheMode int

const (
	// CacheDefault lets intermediaries answer from their own caches.
	CacheDefault CacheMode = iota
	// CacheReload forces a fresh end-to-end network read.
	CacheReload
)

// Request is one in-flight intercepted request. It is not persisted; its
// lifetime is a single HandleFetch call.
type Request struct {
	Method      string
	URL         string
	Header      http.Header
	Navigate    bool // top-level page load
	Destination Destination
	CacheMode   CacheMode
}

// NewRequest returns a plain GET request for url.
func NewRequest(url string) *Request {
	return &Request{Method: http.MethodGet, URL: url}
}

// NewNavigationRequest returns a top-level document load for url.
func NewNavigationRequest(url string) *Request {
	return &Request{
		Method:      http.MethodGet,
		URL:         url,
		Navigate:    true,
		Destination: DestDocument,
	}
}
