package cacheagent

import (
	"errors"
	"fmt"
)

var (
	// ErrRedundant is returned once the agent has been retired.
	ErrRedundant = errors.New("cacheagent: agent is redundant")

	// ErrNotActive is returned by HandleFetch outside StateActive.
	ErrNotActive = errors.New("cacheagent: agent is not active")

	// ErrBodyConsumed is returned when a response body is read or cloned
	// after it has already been consumed.
	ErrBodyConsumed = errors.New("cacheagent: response body already consumed")
)

// LifecycleError reports an event dispatched in a state that does not
// permit it.
type LifecycleError struct {
	Event Event
	State State
}

func (e *LifecycleError) Error() string {
	return fmt.Sprintf("cacheagent: %s not allowed in state %s", e.Event, e.State)
}

// PrecacheError reports a failed all-or-nothing precache write. URL names
// the asset that broke the batch; FetchErr and SetErr carry the phase the
// failure happened in.
type PrecacheError struct {
	URL      string
	FetchErr error
	SetErr   error
}

func (e *PrecacheError) Error() string {
	switch {
	case e.FetchErr != nil:
		return fmt.Sprintf("precache %q: asset fetch failed: %v", e.URL, e.FetchErr)
	case e.SetErr != nil:
		return fmt.Sprintf("precache %q: store write failed: %v", e.URL, e.SetErr)
	default:
		return fmt.Sprintf("precache %q: unknown error", e.URL)
	}
}

func (e *PrecacheError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.FetchErr != nil {
		errs = append(errs, e.FetchErr)
	}
	if e.SetErr != nil {
		errs = append(errs, e.SetErr)
	}
	return errs
}

// ActivateError aggregates failures from the cutover phase: stale store
// deletions that errored and/or a failed client claim.
type ActivateError struct {
	Stores   []string // names whose deletion failed, aligned with DelErrs
	DelErrs  []error
	ClaimErr error
}

func (e *ActivateError) Error() string {
	switch {
	case len(e.DelErrs) > 0 && e.ClaimErr != nil:
		return fmt.Sprintf("activate: %d store deletion(s) failed and claim failed: claim=%v",
			len(e.DelErrs), e.ClaimErr)
	case len(e.DelErrs) > 0:
		return fmt.Sprintf("activate: deletion of %v failed: %v", e.Stores, e.DelErrs[0])
	case e.ClaimErr != nil:
		return fmt.Sprintf("activate: client claim failed: %v", e.ClaimErr)
	default:
		return "activate: unknown error"
	}
}

func (e *ActivateError) Unwrap() []error {
	errs := make([]error, 0, len(e.DelErrs)+1)
	errs = append(errs, e.DelErrs...)
	if e.ClaimErr != nil {
		errs = append(errs, e.ClaimErr)
	}
	return errs
}
