package topo

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/packetforge/netemd/model"
)

// captureSink records every published event in order.
type captureSink struct {
	mu     sync.Mutex
	events []model.Event
}

func (c *captureSink) Publish(ev model.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, ev)
}

func (c *captureSink) all() []model.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.Event, len(c.events))
	copy(out, c.events)
	return out
}

func newStoreForTest(t *testing.T) (*Store, *captureSink) {
	t.Helper()
	sink := &captureSink{}
	return NewStore("s1", sink), sink
}

func defineNode(t *testing.T, s *Store, id string, typ model.NodeType) {
	t.Helper()
	if err := s.DefineNode(model.Node{ID: id, Name: id, Type: typ}); err != nil {
		t.Fatalf("DefineNode(%q) error = %v", id, err)
	}
}

func TestEmitCreatedTakesFirstRevision(t *testing.T) {
	s, sink := newStoreForTest(t)

	s.EmitCreated(model.PhaseDefined)
	defineNode(t, s, "a", model.NodeTypeHost)

	events := sink.all()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Kind != model.EventSessionCreated {
		t.Errorf("first event kind = %q, want %q", events[0].Kind, model.EventSessionCreated)
	}
	if events[0].Revision != 1 {
		t.Errorf("creation event revision = %d, want 1", events[0].Revision)
	}
	if events[1].Revision != 2 {
		t.Errorf("first mutation revision = %d, want 2", events[1].Revision)
	}
}

func TestRevisionStrictlyIncreases(t *testing.T) {
	s, sink := newStoreForTest(t)

	defineNode(t, s, "a", model.NodeTypeHost)
	defineNode(t, s, "b", model.NodeTypeRouter)
	if err := s.DefineLink(model.Link{
		ID: "l1",
		A:  model.Endpoint{NodeID: "a", Slot: 0},
		B:  model.Endpoint{NodeID: "b", Slot: 0},
	}); err != nil {
		t.Fatalf("DefineLink() error = %v", err)
	}
	if err := s.UpdateLink("l1", model.Shaping{Delay: 50 * time.Millisecond}); err != nil {
		t.Fatalf("UpdateLink() error = %v", err)
	}

	events := sink.all()
	if len(events) != 4 {
		t.Fatalf("expected 4 events, got %d", len(events))
	}
	var last uint64
	for i, ev := range events {
		if ev.Revision <= last {
			t.Errorf("event %d revision %d not strictly greater than %d", i, ev.Revision, last)
		}
		last = ev.Revision
	}
	if got := s.Revision(); got != last {
		t.Errorf("store revision %d does not match last event revision %d", got, last)
	}
}

func TestDefineLinkUnknownEndpointNoMutation(t *testing.T) {
	s, _ := newStoreForTest(t)
	defineNode(t, s, "a", model.NodeTypeHost)

	before := s.Snapshot()
	err := s.DefineLink(model.Link{
		ID: "l1",
		A:  model.Endpoint{NodeID: "a", Slot: 0},
		B:  model.Endpoint{NodeID: "ghost", Slot: 0},
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("DefineLink() error = %v, want ErrNotFound", err)
	}

	after := s.Snapshot()
	if before.Revision != after.Revision {
		t.Errorf("revision moved from %d to %d on failed mutation", before.Revision, after.Revision)
	}
	if len(after.Links) != 0 {
		t.Errorf("expected 0 links after failed define, got %d", len(after.Links))
	}
}

func TestDefineLinkSlotInUse(t *testing.T) {
	s, _ := newStoreForTest(t)
	defineNode(t, s, "a", model.NodeTypeHost)
	defineNode(t, s, "b", model.NodeTypeHost)
	defineNode(t, s, "c", model.NodeTypeHost)

	if err := s.DefineLink(model.Link{
		ID: "l1",
		A:  model.Endpoint{NodeID: "a", Slot: 0},
		B:  model.Endpoint{NodeID: "b", Slot: 0},
	}); err != nil {
		t.Fatalf("DefineLink(l1) error = %v", err)
	}

	err := s.DefineLink(model.Link{
		ID: "l2",
		A:  model.Endpoint{NodeID: "a", Slot: 0},
		B:  model.Endpoint{NodeID: "c", Slot: 0},
	})
	if !errors.Is(err, ErrSlotInUse) {
		t.Fatalf("DefineLink(l2) error = %v, want ErrSlotInUse", err)
	}

	// A different slot on the same node is fine.
	if err := s.DefineLink(model.Link{
		ID: "l3",
		A:  model.Endpoint{NodeID: "a", Slot: 1},
		B:  model.Endpoint{NodeID: "c", Slot: 0},
	}); err != nil {
		t.Fatalf("DefineLink(l3) error = %v", err)
	}
}

func TestRemoveLinkFreesSlot(t *testing.T) {
	s, _ := newStoreForTest(t)
	defineNode(t, s, "a", model.NodeTypeHost)
	defineNode(t, s, "b", model.NodeTypeHost)

	link := model.Link{
		ID: "l1",
		A:  model.Endpoint{NodeID: "a", Slot: 0},
		B:  model.Endpoint{NodeID: "b", Slot: 0},
	}
	if err := s.DefineLink(link); err != nil {
		t.Fatalf("DefineLink(l1) error = %v", err)
	}
	if err := s.RemoveLink("l1"); err != nil {
		t.Fatalf("RemoveLink() error = %v", err)
	}

	// The removed link is gone outright, so its slots are reusable.
	link.ID = "l2"
	if err := s.DefineLink(link); err != nil {
		t.Fatalf("DefineLink(l2) after removal error = %v", err)
	}
	if _, err := s.GetLink("l1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetLink(l1) error = %v, want ErrNotFound", err)
	}
}

func TestRemoveNodeReferencedByLink(t *testing.T) {
	s, _ := newStoreForTest(t)
	defineNode(t, s, "a", model.NodeTypeHost)
	defineNode(t, s, "b", model.NodeTypeHost)
	if err := s.DefineLink(model.Link{
		ID: "l1",
		A:  model.Endpoint{NodeID: "a", Slot: 0},
		B:  model.Endpoint{NodeID: "b", Slot: 0},
	}); err != nil {
		t.Fatalf("DefineLink() error = %v", err)
	}

	if err := s.RemoveNode("a"); !errors.Is(err, ErrConflict) {
		t.Fatalf("RemoveNode(a) error = %v, want ErrConflict", err)
	}
	if err := s.RemoveLink("l1"); err != nil {
		t.Fatalf("RemoveLink() error = %v", err)
	}
	if err := s.RemoveNode("a"); err != nil {
		t.Fatalf("RemoveNode(a) after link removal error = %v", err)
	}
	if err := s.RemoveNode("a"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second RemoveNode(a) error = %v, want ErrNotFound", err)
	}
}

func TestBindKeepsHandleStatusInvariant(t *testing.T) {
	s, _ := newStoreForTest(t)
	defineNode(t, s, "a", model.NodeTypeHost)

	if err := s.BindNode("a", ""); !errors.Is(err, ErrInvalid) {
		t.Fatalf("BindNode with empty handle error = %v, want ErrInvalid", err)
	}
	if err := s.BindNode("a", "ns-1"); err != nil {
		t.Fatalf("BindNode() error = %v", err)
	}

	n, err := s.GetNode("a")
	if err != nil {
		t.Fatalf("GetNode() error = %v", err)
	}
	if n.Status != model.StatusInstantiated || n.NamespaceHandle != "ns-1" {
		t.Errorf("got status=%v handle=%q, want instantiated/ns-1", n.Status, n.NamespaceHandle)
	}

	if err := s.MarkNodeFailed("a"); err != nil {
		t.Fatalf("MarkNodeFailed() error = %v", err)
	}
	n, _ = s.GetNode("a")
	if n.NamespaceHandle != "" {
		t.Errorf("failed node still carries handle %q", n.NamespaceHandle)
	}
}

func TestShapingValidation(t *testing.T) {
	s, _ := newStoreForTest(t)
	defineNode(t, s, "a", model.NodeTypeHost)
	defineNode(t, s, "b", model.NodeTypeHost)

	err := s.DefineLink(model.Link{
		ID:      "l1",
		A:       model.Endpoint{NodeID: "a", Slot: 0},
		B:       model.Endpoint{NodeID: "b", Slot: 0},
		Shaping: model.Shaping{Delay: -time.Millisecond},
	})
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("negative delay error = %v, want ErrInvalid", err)
	}

	err = s.DefineLink(model.Link{
		ID:      "l1",
		A:       model.Endpoint{NodeID: "a", Slot: 0},
		B:       model.Endpoint{NodeID: "b", Slot: 0},
		Shaping: model.Shaping{LossPercent: 140},
	})
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("loss 140%% error = %v, want ErrInvalid", err)
	}
}

// TestSnapshotConsistentUnderMutation hammers the store with writers while a
// reader checks that every snapshot is internally coherent: a snapshot that
// contains a link also contains both endpoint nodes.
func TestSnapshotConsistentUnderMutation(t *testing.T) {
	s, _ := newStoreForTest(t)
	defineNode(t, s, "a", model.NodeTypeHost)
	defineNode(t, s, "b", model.NodeTypeHost)

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; ; i++ {
			select {
			case <-done:
				return
			default:
			}
			_ = s.DefineLink(model.Link{
				ID: "l",
				A:  model.Endpoint{NodeID: "a", Slot: 0},
				B:  model.Endpoint{NodeID: "b", Slot: 0},
			})
			_ = s.RemoveLink("l")
		}
	}()

	deadline := time.After(200 * time.Millisecond)
	var lastRev uint64
loop:
	for {
		select {
		case <-deadline:
			break loop
		default:
		}
		snap := s.Snapshot()
		if snap.Revision < lastRev {
			t.Fatalf("snapshot revision went backwards: %d -> %d", lastRev, snap.Revision)
		}
		lastRev = snap.Revision
		for _, l := range snap.Links {
			found := 0
			for _, n := range snap.Nodes {
				if n.ID == l.A.NodeID || n.ID == l.B.NodeID {
					found++
				}
			}
			if found < 2 {
				t.Fatalf("snapshot at revision %d contains link %q without both endpoints", snap.Revision, l.ID)
			}
		}
	}
	close(done)
	wg.Wait()
}
