package cacheagent

import (
	"net/http"
	"sync"
)

// ResponseType mirrors the platform's response classification. Only
// TypeBasic responses are eligible for runtime caching: opaque and
// cross-origin payloads are never persisted.
type ResponseType int

const (
	TypeBasic ResponseType = iota
	TypeCORS
	TypeOpaque
	TypeError
)

func (t ResponseType) String() string {
	switch t {
	case TypeBasic:
		return "basic"
	case TypeCORS:
		return "cors"
	case TypeOpaque:
		return "opaque"
	case TypeError:
		return "error"
	default:
		return "unknown"
	}
}

// Response is the result of a fetch or a cache hit. The body is a
// single-consumption value: Bytes drains it exactly once and Clone must
// happen before that. This makes the duplicate-then-store step of runtime
// caching an explicit, checked operation instead of a silent double read.
type Response struct {
	Status int
	Header http.Header
	Type   ResponseType
	Cached bool // served from the store rather than the network

	mu       sync.Mutex
	body     []byte
	consumed bool
	err      error // non-nil only for synthetic network-error responses
}

// NewResponse builds a network response with an unconsumed body.
func NewResponse(status int, header http.Header, body []byte, typ ResponseType) *Response {
	if header == nil {
		header = make(http.Header)
	}
	return &Response{Status: status, Header: header, Type: typ, body: body}
}

// NewNetworkError builds the synthetic failure response handed to callers
// when the network is unreachable and no cached substitute exists: status 0,
// no header, no body.
func NewNetworkError(err error) *Response {
	return &Response{Type: TypeError, consumed: true, err: err}
}

// NetworkError reports whether the response represents a failed fetch.
func (r *Response) NetworkError() bool { return r.Type == TypeError }

// Err returns the underlying transport error for a network-error response,
// nil otherwise.
func (r *Response) Err() error { return r.err }

// OK reports whether the status is in the 2xx range.
func (r *Response) OK() bool { return r.Status >= 200 && r.Status < 300 }

// Bytes consumes and returns the body. A second call, or a call after the
// body was handed out by Clone's original, fails with ErrBodyConsumed.
func (r *Response) Bytes() ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.consumed {
		return nil, ErrBodyConsumed
	}
	r.consumed = true
	b := r.body
	r.body = nil
	return b, nil
}

// Clone returns an independent copy with its own unconsumed body, leaving
// the receiver unconsumed as well. Cloning after consumption fails.
func (r *Response) Clone() (*Response, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.consumed {
		return nil, ErrBodyConsumed
	}
	body := make([]byte, len(r.body))
	copy(body, r.body)
	return &Response{
		Status: r.Status,
		Header: r.Header.Clone(),
		Type:   r.Type,
		Cached: r.Cached,
		body:   body,
	}, nil
}
