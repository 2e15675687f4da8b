package cacheagent

// State is the lifecycle phase of an agent generation. Transitions are
// driven only by the lifecycle events plus Retire/Close:
//
//	New -> Installing -> Waiting -> Active -> Redundant
//
// A failed Install returns the agent to New so the event can be retried.
type State int

const (
	StateNew State = iota
	StateInstalling
	StateWaiting
	StateActive
	StateRedundant
)

func (s State) String() string {
	switch s {
	case StateNew:
		return "new"
	case StateInstalling:
		return "installing"
	case StateWaiting:
		return "waiting"
	case StateActive:
		return "active"
	case StateRedundant:
		return "redundant"
	default:
		return "unknown"
	}
}

// Event is a lifecycle event dispatched to the agent. Fetch is only valid
// while the agent is active; Install and Activate each run at most once per
// generation (Activate is idempotent when re-dispatched in StateActive).
type Event int

const (
	EventInstall Event = iota
	EventActivate
	EventFetch
)

func (e Event) String() string {
	switch e {
	case EventInstall:
		return "install"
	case EventActivate:
		return "activate"
	case EventFetch:
		return "fetch"
	default:
		return "unknown"
	}
}

// allowed reports whether ev may be dispatched in state s.
func (e Event) allowed(s State) bool {
	switch e {
	case EventInstall:
		return s == StateNew
	case EventActivate:
		// re-activation while active is a safe no-op pass
		return s == StateWaiting || s == StateActive
	case EventFetch:
		return s == StateActive
	default:
		return false
	}
}
