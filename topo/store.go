package topo

import (
	"fmt"
	"sync"

	"github.com/packetforge/netemd/model"
)

// EventSink receives one Event per committed mutation. Publish is invoked
// while the Store lock is held so that events leave the Store in revision
// order; implementations must not block.
type EventSink interface {
	Publish(ev model.Event)
}

// Store is the in-memory authoritative topology state for one session.
// It exclusively owns the Node and Link records; the namespace and fabric
// managers hold only the opaque handles recorded here.
//
// All mutations are atomic with respect to Snapshot: a reader sees the state
// entirely before or entirely after a mutation, under a single revision.
type Store struct {
	mu sync.RWMutex

	sessionID string
	revision  uint64

	nodes map[string]model.Node
	links map[string]model.Link

	sink EventSink
}

// Snapshot is a consistent copy of a Store at one revision. The contained
// slices are owned by the caller.
type Snapshot struct {
	SessionID string
	Revision  uint64
	Nodes     []model.Node
	Links     []model.Link
}

// NewStore constructs an empty Store for the given session. sink may be nil.
func NewStore(sessionID string, sink EventSink) *Store {
	return &Store{
		sessionID: sessionID,
		nodes:     make(map[string]model.Node),
		links:     make(map[string]model.Link),
		sink:      sink,
	}
}

// SessionID returns the owning session's identifier.
func (s *Store) SessionID() string { return s.sessionID }

// Revision returns the current revision counter.
func (s *Store) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

// commitLocked bumps the revision and emits the corresponding event.
// Caller must hold s.mu.
func (s *Store) commitLocked(kind model.EventKind, entityID string, phase model.Phase) {
	s.revision++
	if s.sink == nil {
		return
	}
	s.sink.Publish(model.Event{
		Kind:      kind,
		SessionID: s.sessionID,
		EntityID:  entityID,
		Phase:     phase,
		Revision:  s.revision,
	})
}

// EmitCreated records session creation as the store's first committed
// mutation, so the event carries revision 1 and every later event in the
// session orders after it.
func (s *Store) EmitCreated(phase model.Phase) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commitLocked(model.EventSessionCreated, "", phase)
}

// EmitPhase records a session-phase change as a committed mutation so that
// phase events interleave with topology events in revision order.
func (s *Store) EmitPhase(phase model.Phase) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commitLocked(model.EventSessionPhase, "", phase)
}

// DefineNode inserts a new node in StatusDefined.
func (s *Store) DefineNode(n model.Node) error {
	if n.ID == "" {
		return fmt.Errorf("%w: empty node ID", ErrInvalid)
	}
	switch n.Type {
	case model.NodeTypeHost, model.NodeTypeRouter, model.NodeTypeSwitch:
	default:
		return fmt.Errorf("%w: unknown node type %q", ErrInvalid, n.Type)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.nodes[n.ID]; exists {
		return fmt.Errorf("%w: node %q", ErrExists, n.ID)
	}

	n.Status = model.StatusDefined
	n.NamespaceHandle = ""
	s.nodes[n.ID] = n
	s.commitLocked(model.EventNodeAdded, n.ID, 0)
	return nil
}

// DefineLink inserts a new link in StatusDefined. Both endpoints must name
// existing nodes and unbound interface slots.
func (s *Store) DefineLink(l model.Link) error {
	if l.ID == "" {
		return fmt.Errorf("%w: empty link ID", ErrInvalid)
	}
	if l.A.NodeID == l.B.NodeID && l.A.Slot == l.B.Slot {
		return fmt.Errorf("%w: link %q endpoints are identical", ErrInvalid, l.ID)
	}
	if err := validateShaping(l.Shaping); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.links[l.ID]; exists {
		return fmt.Errorf("%w: link %q", ErrExists, l.ID)
	}
	for _, ep := range []model.Endpoint{l.A, l.B} {
		if _, ok := s.nodes[ep.NodeID]; !ok {
			return fmt.Errorf("%w: endpoint node %q", ErrNotFound, ep.NodeID)
		}
	}
	for _, link := range s.links {
		for _, ep := range []model.Endpoint{l.A, l.B} {
			if slotTaken(link, ep) {
				return fmt.Errorf("%w: %s slot %d bound to link %q", ErrSlotInUse, ep.NodeID, ep.Slot, link.ID)
			}
		}
	}

	l.Status = model.StatusDefined
	l.FabricHandle = ""
	s.links[l.ID] = l
	s.commitLocked(model.EventLinkAdded, l.ID, 0)
	return nil
}

// slotTaken reports whether link occupies the endpoint's slot. Removed
// links are deleted from the map outright, so every stored link counts.
func slotTaken(link model.Link, ep model.Endpoint) bool {
	return (link.A.NodeID == ep.NodeID && link.A.Slot == ep.Slot) ||
		(link.B.NodeID == ep.NodeID && link.B.Slot == ep.Slot)
}

// UpdateNode replaces the desired configuration of an existing node.
// Handle and status are preserved; identity fields cannot change.
func (s *Store) UpdateNode(id string, cfg model.NodeConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.nodes[id]
	if !ok {
		return fmt.Errorf("%w: node %q", ErrNotFound, id)
	}
	n.Config = cfg
	s.nodes[id] = n
	s.commitLocked(model.EventNodeUpdated, id, 0)
	return nil
}

// UpdateLink replaces the shaping parameters of an existing link.
func (s *Store) UpdateLink(id string, shaping model.Shaping) error {
	if err := validateShaping(shaping); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.links[id]
	if !ok {
		return fmt.Errorf("%w: link %q", ErrNotFound, id)
	}
	l.Shaping = shaping
	s.links[id] = l
	s.commitLocked(model.EventLinkUpdated, id, 0)
	return nil
}

// RemoveNode deletes a node. It fails with ErrConflict while any link still
// references the node.
func (s *Store) RemoveNode(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.nodes[id]; !ok {
		return fmt.Errorf("%w: node %q", ErrNotFound, id)
	}
	for _, link := range s.links {
		if link.A.NodeID == id || link.B.NodeID == id {
			return fmt.Errorf("%w: node %q referenced by link %q", ErrConflict, id, link.ID)
		}
	}

	delete(s.nodes, id)
	s.commitLocked(model.EventNodeRemoved, id, 0)
	return nil
}

// RemoveLink deletes a link.
func (s *Store) RemoveLink(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.links[id]; !ok {
		return fmt.Errorf("%w: link %q", ErrNotFound, id)
	}
	delete(s.links, id)
	s.commitLocked(model.EventLinkRemoved, id, 0)
	return nil
}

// GetNode returns a copy of the node with the given ID.
func (s *Store) GetNode(id string) (model.Node, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.nodes[id]
	if !ok {
		return model.Node{}, fmt.Errorf("%w: node %q", ErrNotFound, id)
	}
	return n, nil
}

// GetLink returns a copy of the link with the given ID.
func (s *Store) GetLink(id string) (model.Link, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.links[id]
	if !ok {
		return model.Link{}, fmt.Errorf("%w: link %q", ErrNotFound, id)
	}
	return l, nil
}

// Counts returns the number of nodes and links currently defined.
func (s *Store) Counts() (nodes, links int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.nodes), len(s.links)
}

// Snapshot returns a consistent copy of the whole store at one revision.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		SessionID: s.sessionID,
		Revision:  s.revision,
		Nodes:     make([]model.Node, 0, len(s.nodes)),
		Links:     make([]model.Link, 0, len(s.links)),
	}
	for _, n := range s.nodes {
		snap.Nodes = append(snap.Nodes, n)
	}
	for _, l := range s.links {
		snap.Links = append(snap.Links, l)
	}
	return snap
}

// BindNode records the namespace handle for a provisioned node and marks it
// instantiated.
func (s *Store) BindNode(id, handle string) error {
	if handle == "" {
		return fmt.Errorf("%w: empty namespace handle for node %q", ErrInvalid, id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.nodes[id]
	if !ok {
		return fmt.Errorf("%w: node %q", ErrNotFound, id)
	}
	n.NamespaceHandle = handle
	n.Status = model.StatusInstantiated
	s.nodes[id] = n
	s.commitLocked(model.EventNodeUpdated, id, 0)
	return nil
}

// UnbindNode clears a node's namespace handle, returning it to defined state.
func (s *Store) UnbindNode(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.nodes[id]
	if !ok {
		return fmt.Errorf("%w: node %q", ErrNotFound, id)
	}
	n.NamespaceHandle = ""
	n.Status = model.StatusDefined
	s.nodes[id] = n
	s.commitLocked(model.EventNodeUpdated, id, 0)
	return nil
}

// MarkNodeFailed flags a node whose provisioning failed. The namespace
// handle is cleared to keep the handle/status invariant.
func (s *Store) MarkNodeFailed(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.nodes[id]
	if !ok {
		return fmt.Errorf("%w: node %q", ErrNotFound, id)
	}
	n.NamespaceHandle = ""
	n.Status = model.StatusFailed
	s.nodes[id] = n
	s.commitLocked(model.EventNodeFailed, id, 0)
	return nil
}

// BindLink records the fabric handle for a provisioned link and emits link-up.
func (s *Store) BindLink(id, handle string) error {
	if handle == "" {
		return fmt.Errorf("%w: empty fabric handle for link %q", ErrInvalid, id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.links[id]
	if !ok {
		return fmt.Errorf("%w: link %q", ErrNotFound, id)
	}
	l.FabricHandle = handle
	l.Status = model.StatusInstantiated
	s.links[id] = l
	s.commitLocked(model.EventLinkUp, id, 0)
	return nil
}

// UnbindLink clears a link's fabric handle and emits link-down.
func (s *Store) UnbindLink(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.links[id]
	if !ok {
		return fmt.Errorf("%w: link %q", ErrNotFound, id)
	}
	l.FabricHandle = ""
	l.Status = model.StatusDefined
	s.links[id] = l
	s.commitLocked(model.EventLinkDown, id, 0)
	return nil
}

// MarkLinkFailed flags a link whose provisioning failed.
func (s *Store) MarkLinkFailed(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.links[id]
	if !ok {
		return fmt.Errorf("%w: link %q", ErrNotFound, id)
	}
	l.FabricHandle = ""
	l.Status = model.StatusFailed
	s.links[id] = l
	s.commitLocked(model.EventLinkDown, id, 0)
	return nil
}

func validateShaping(sh model.Shaping) error {
	if sh.Delay < 0 {
		return fmt.Errorf("%w: negative delay", ErrInvalid)
	}
	if sh.Jitter < 0 {
		return fmt.Errorf("%w: negative jitter", ErrInvalid)
	}
	if sh.LossPercent < 0 || sh.LossPercent > 100 {
		return fmt.Errorf("%w: loss %.2f%% outside [0, 100]", ErrInvalid, sh.LossPercent)
	}
	return nil
}
