package model

// EventKind tags a topology-change or status event.
type EventKind string

const (
	EventSessionCreated EventKind = "session-created"
	EventSessionPhase   EventKind = "session-phase-changed"
	EventNodeAdded      EventKind = "node-added"
	EventNodeUpdated    EventKind = "node-updated"
	EventNodeRemoved    EventKind = "node-removed"
	EventNodeFailed     EventKind = "node-failed"
	EventLinkAdded      EventKind = "link-added"
	EventLinkUpdated    EventKind = "link-updated"
	EventLinkRemoved    EventKind = "link-removed"
	EventLinkUp         EventKind = "link-up"
	EventLinkDown       EventKind = "link-down"
)

// Event is a tagged record of a committed session mutation. Revision is the
// session revision at emission time; subscribers observe events in
// non-decreasing revision order.
type Event struct {
	Kind      EventKind
	SessionID string
	// EntityID names the node or link the event concerns; empty for
	// session-scoped events.
	EntityID string
	// Phase is set for session-phase-changed events.
	Phase    Phase
	Revision uint64
}
