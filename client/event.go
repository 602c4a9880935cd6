package client

// EventKind identifies which part of the client state changed.
type EventKind string

const (
	EventSnapshot EventKind = "snapshot"
	EventResult   EventKind = "result"
	EventForm     EventKind = "form"
	EventNavigate EventKind = "navigate"
)

// Event announces a state change; Section is set for result and form events, URL for navigation.
type Event struct {
	Kind    EventKind
	Section Section
	URL     string
}

// Listener is called synchronously after each state change, outside the client lock.
type Listener func(event Event)
