package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/packetforge/netemd/internal/events"
	"github.com/packetforge/netemd/internal/fabric"
	"github.com/packetforge/netemd/internal/nsman"
	"github.com/packetforge/netemd/model"
)

// fakeOS backs both the namespace manager and the link fabric with one
// in-memory picture of host state, so tests can assert "zero resident
// resources" across both managers at once.
type fakeOS struct {
	mu         sync.Mutex
	namespaces map[string]bool
	interfaces map[string]*fakeIface // key ns + "/" + name

	nsCreates int
	nsFailAt  int // fail the Nth namespace create (1-based), 0 = never
	shapeFail error
}

type fakeIface struct {
	peer    string
	up      bool
	bridge  string
	addrs   []string
	shaping *model.Shaping
}

func newFakeOS() *fakeOS {
	return &fakeOS{
		namespaces: make(map[string]bool),
		interfaces: make(map[string]*fakeIface),
	}
}

func ifKey(ns, name string) string { return ns + "/" + name }

// nsman.Backend

func (f *fakeOS) Create(_ context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nsCreates++
	if f.nsFailAt > 0 && f.nsCreates == f.nsFailAt {
		return fmt.Errorf("injected namespace failure")
	}
	f.namespaces[name] = true
	return nil
}

func (f *fakeOS) Delete(_ context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.namespaces, name)
	return nil
}

// fabric.Backend

func (f *fakeOS) CreateVethPair(_ context.Context, a, b string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.interfaces[ifKey("", a)] = &fakeIface{peer: ifKey("", b)}
	f.interfaces[ifKey("", b)] = &fakeIface{peer: ifKey("", a)}
	return nil
}

func (f *fakeOS) MoveAndRename(_ context.Context, ifName, nsName, newName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	iface, ok := f.interfaces[ifKey("", ifName)]
	if !ok {
		return fmt.Errorf("no such interface %q", ifName)
	}
	delete(f.interfaces, ifKey("", ifName))
	f.interfaces[ifKey(nsName, newName)] = iface
	if peer, ok := f.interfaces[iface.peer]; ok {
		peer.peer = ifKey(nsName, newName)
	}
	return nil
}

func (f *fakeOS) SetUp(_ context.Context, nsName, ifName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	iface, ok := f.interfaces[ifKey(nsName, ifName)]
	if !ok {
		return fmt.Errorf("no such interface %q", ifName)
	}
	iface.up = true
	return nil
}

func (f *fakeOS) AddAddress(_ context.Context, nsName, ifName, cidr string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	iface, ok := f.interfaces[ifKey(nsName, ifName)]
	if !ok {
		return fmt.Errorf("no such interface %q", ifName)
	}
	iface.addrs = append(iface.addrs, cidr)
	return nil
}

func (f *fakeOS) ApplyShaping(_ context.Context, nsName, ifName string, sh model.Shaping) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.shapeFail != nil {
		return f.shapeFail
	}
	iface, ok := f.interfaces[ifKey(nsName, ifName)]
	if !ok {
		return fmt.Errorf("no such interface %q", ifName)
	}
	cp := sh
	iface.shaping = &cp
	return nil
}

func (f *fakeOS) ClearShaping(_ context.Context, nsName, ifName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if iface, ok := f.interfaces[ifKey(nsName, ifName)]; ok {
		iface.shaping = nil
	}
	return nil
}

func (f *fakeOS) CreateBridge(_ context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.interfaces[ifKey("", name)] = &fakeIface{}
	return nil
}

func (f *fakeOS) AttachToBridge(_ context.Context, ifName, bridge string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	iface, ok := f.interfaces[ifKey("", ifName)]
	if !ok {
		return fmt.Errorf("no such interface %q", ifName)
	}
	iface.bridge = bridge
	return nil
}

func (f *fakeOS) DeleteInterface(_ context.Context, nsName, ifName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	iface, ok := f.interfaces[ifKey(nsName, ifName)]
	if !ok {
		return nil
	}
	delete(f.interfaces, ifKey(nsName, ifName))
	if iface.peer != "" {
		delete(f.interfaces, iface.peer)
	}
	return nil
}

func (f *fakeOS) resident() (namespaces, interfaces int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.namespaces), len(f.interfaces)
}

func newManagerForTest(t *testing.T, osState *fakeOS) *Manager {
	t.Helper()
	ns := nsman.New(osState, nil)
	fab := fabric.New(osState, ns, nil)
	bc := events.New(nil)
	return NewManager(ns, fab, bc, nil)
}

func seedTopology(t *testing.T, s *Session, delay time.Duration) {
	t.Helper()
	ctx := context.Background()
	for _, id := range []string{"a", "b"} {
		err := s.AddNode(ctx, model.Node{ID: id, Name: id, Type: model.NodeTypeHost})
		if err != nil {
			t.Fatalf("AddNode(%s) error = %v", id, err)
		}
	}
	err := s.AddLink(ctx, model.Link{
		ID:      "l1",
		A:       model.Endpoint{NodeID: "a", Slot: 0, IPv4: "10.0.0.1/24"},
		B:       model.Endpoint{NodeID: "b", Slot: 0, IPv4: "10.0.0.2/24"},
		Shaping: model.Shaping{Delay: delay},
	})
	if err != nil {
		t.Fatalf("AddLink() error = %v", err)
	}
}

func createSession(t *testing.T, m *Manager, id string) *Session {
	t.Helper()
	if _, err := m.Create(context.Background(), id); err != nil {
		t.Fatalf("Create(%s) error = %v", id, err)
	}
	s, err := m.Get(id)
	if err != nil {
		t.Fatalf("Get(%s) error = %v", id, err)
	}
	return s
}

func TestStartReachesRunningWithDelay(t *testing.T) {
	osState := newFakeOS()
	m := newManagerForTest(t, osState)
	s := createSession(t, m, "s1")
	seedTopology(t, s, 50*time.Millisecond)

	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if got := s.Phase(); got != model.PhaseRunning {
		t.Fatalf("phase = %v, want running", got)
	}

	snap := s.Snapshot()
	for _, n := range snap.Nodes {
		if n.Status != model.StatusInstantiated || n.NamespaceHandle == "" {
			t.Errorf("node %s: status=%v handle=%q, want instantiated with handle", n.ID, n.Status, n.NamespaceHandle)
		}
	}
	if len(snap.Links) != 1 {
		t.Fatalf("len(links) = %d, want 1", len(snap.Links))
	}
	link := snap.Links[0]
	if link.Status != model.StatusInstantiated || link.FabricHandle == "" {
		t.Fatalf("link status=%v handle=%q, want instantiated with handle", link.Status, link.FabricHandle)
	}

	osState.mu.Lock()
	defer osState.mu.Unlock()
	shaped := 0
	for _, iface := range osState.interfaces {
		if iface.shaping != nil {
			if iface.shaping.Delay != 50*time.Millisecond {
				t.Errorf("installed delay = %v, want 50ms", iface.shaping.Delay)
			}
			shaped++
		}
	}
	if shaped != 2 {
		t.Errorf("%d shaped interfaces, want both veth ends", shaped)
	}
}

func TestInstantiationFailureRollsBack(t *testing.T) {
	osState := newFakeOS()
	osState.nsFailAt = 2
	m := newManagerForTest(t, osState)
	s := createSession(t, m, "s1")
	seedTopology(t, s, 0)

	sub, err := m.Subscribe("s1")
	if err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}
	defer m.Unsubscribe(sub)

	if err := s.Start(context.Background()); err == nil {
		t.Fatal("Start() succeeded, want provisioning failure")
	}
	if got := s.Phase(); got != model.PhaseErrored {
		t.Fatalf("phase = %v, want errored", got)
	}
	if ns, ifs := osState.resident(); ns != 0 || ifs != 0 {
		t.Fatalf("resident resources after rollback: %d namespaces, %d interfaces", ns, ifs)
	}

	sawErrored := false
	deadline := time.After(2 * time.Second)
	for !sawErrored {
		select {
		case ev := <-sub.Events():
			if ev.Kind == model.EventSessionPhase && ev.Phase == model.PhaseErrored {
				sawErrored = true
			}
		case <-deadline:
			t.Fatal("no errored phase event delivered")
		}
	}
}

func TestLinkFailureRollsBackNamespaces(t *testing.T) {
	osState := newFakeOS()
	osState.shapeFail = fmt.Errorf("injected qdisc failure")
	m := newManagerForTest(t, osState)
	s := createSession(t, m, "s1")
	seedTopology(t, s, 10*time.Millisecond)

	err := s.Start(context.Background())
	if !IsProvisionFailed(err) {
		t.Fatalf("Start() error = %v, want provision failure", err)
	}
	if got := s.Phase(); got != model.PhaseErrored {
		t.Fatalf("phase = %v, want errored", got)
	}
	if ns, ifs := osState.resident(); ns != 0 || ifs != 0 {
		t.Fatalf("resident resources after rollback: %d namespaces, %d interfaces", ns, ifs)
	}
}

func TestCommandsRejectedInAbsorbingPhases(t *testing.T) {
	osState := newFakeOS()
	osState.nsFailAt = 1
	m := newManagerForTest(t, osState)
	s := createSession(t, m, "s1")
	seedTopology(t, s, 0)

	if err := s.Start(context.Background()); err == nil {
		t.Fatal("Start() succeeded, want failure")
	}

	ctx := context.Background()
	if err := s.AddNode(ctx, model.Node{ID: "c", Type: model.NodeTypeHost}); !errors.Is(err, ErrInvalidState) {
		t.Errorf("AddNode in errored: error = %v, want ErrInvalidState", err)
	}
	if err := s.Start(ctx); !errors.Is(err, ErrInvalidState) {
		t.Errorf("Start in errored: error = %v, want ErrInvalidState", err)
	}
	if err := s.Stop(ctx); !errors.Is(err, ErrInvalidState) {
		t.Errorf("Stop in errored: error = %v, want ErrInvalidState", err)
	}

	// Destroy is the one way out of an absorbing phase.
	if err := m.Destroy(ctx, "s1"); err != nil {
		t.Fatalf("Destroy() error = %v", err)
	}
	if _, err := m.Get("s1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get after destroy: error = %v, want ErrNotFound", err)
	}
}

func TestStopReleasesResourcesKeepsDefinitions(t *testing.T) {
	osState := newFakeOS()
	m := newManagerForTest(t, osState)
	s := createSession(t, m, "s1")
	seedTopology(t, s, 0)

	ctx := context.Background()
	if err := s.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := s.Stop(ctx); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
	if got := s.Phase(); got != model.PhaseTerminated {
		t.Fatalf("phase = %v, want terminated", got)
	}
	if ns, ifs := osState.resident(); ns != 0 || ifs != 0 {
		t.Fatalf("resident resources after stop: %d namespaces, %d interfaces", ns, ifs)
	}

	snap := s.Snapshot()
	if len(snap.Nodes) != 2 || len(snap.Links) != 1 {
		t.Fatalf("definitions lost: %d nodes, %d links", len(snap.Nodes), len(snap.Links))
	}
	for _, n := range snap.Nodes {
		if n.NamespaceHandle != "" {
			t.Errorf("node %s still bound after stop", n.ID)
		}
	}
}

func TestLiveReshape(t *testing.T) {
	osState := newFakeOS()
	m := newManagerForTest(t, osState)
	s := createSession(t, m, "s1")
	seedTopology(t, s, 10*time.Millisecond)

	ctx := context.Background()
	if err := s.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	next := model.Shaping{Delay: 200 * time.Millisecond, LossPercent: 2}
	if err := s.UpdateLink(ctx, "l1", next); err != nil {
		t.Fatalf("UpdateLink() error = %v", err)
	}

	link, err := s.GetLink("l1")
	if err != nil {
		t.Fatalf("GetLink() error = %v", err)
	}
	if link.Shaping.Delay != 200*time.Millisecond || link.Shaping.LossPercent != 2 {
		t.Fatalf("stored shaping = %+v, want 200ms/2%%", link.Shaping)
	}

	osState.mu.Lock()
	defer osState.mu.Unlock()
	for key, iface := range osState.interfaces {
		if iface.shaping != nil && iface.shaping.Delay != 200*time.Millisecond {
			t.Errorf("interface %s delay = %v, want 200ms", key, iface.shaping.Delay)
		}
	}
}

func TestLiveReshapeRejectedLeavesStoreUntouched(t *testing.T) {
	osState := newFakeOS()
	m := newManagerForTest(t, osState)
	s := createSession(t, m, "s1")
	seedTopology(t, s, 10*time.Millisecond)

	ctx := context.Background()
	if err := s.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	bad := model.Shaping{Delay: -time.Millisecond}
	if err := s.UpdateLink(ctx, "l1", bad); !errors.Is(err, ErrShapingRejected) {
		t.Fatalf("UpdateLink() error = %v, want ErrShapingRejected", err)
	}
	link, err := s.GetLink("l1")
	if err != nil {
		t.Fatalf("GetLink() error = %v", err)
	}
	if link.Shaping.Delay != 10*time.Millisecond {
		t.Fatalf("stored delay = %v, want unchanged 10ms", link.Shaping.Delay)
	}
}

func TestConcurrentRemoveNodeSingleWinner(t *testing.T) {
	osState := newFakeOS()
	m := newManagerForTest(t, osState)
	s := createSession(t, m, "s1")
	if err := s.AddNode(context.Background(), model.Node{ID: "a", Type: model.NodeTypeHost}); err != nil {
		t.Fatalf("AddNode() error = %v", err)
	}

	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			results <- s.RemoveNode(context.Background(), "a")
		}()
	}

	var oks, notFounds int
	for i := 0; i < 2; i++ {
		err := <-results
		switch {
		case err == nil:
			oks++
		case errors.Is(err, ErrNotFound) || errors.Is(err, ErrConflict):
			notFounds++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if oks != 1 || notFounds != 1 {
		t.Fatalf("winners = %d, losers = %d, want exactly one of each", oks, notFounds)
	}
	if nodes, _ := s.store.Counts(); nodes != 0 {
		t.Fatalf("%d nodes left, want 0", nodes)
	}
}

func TestSwitchNodeBacksLinkWithBridge(t *testing.T) {
	osState := newFakeOS()
	m := newManagerForTest(t, osState)
	s := createSession(t, m, "s1")

	ctx := context.Background()
	if err := s.AddNode(ctx, model.Node{ID: "h1", Type: model.NodeTypeHost}); err != nil {
		t.Fatalf("AddNode(h1) error = %v", err)
	}
	if err := s.AddNode(ctx, model.Node{ID: "sw", Type: model.NodeTypeSwitch}); err != nil {
		t.Fatalf("AddNode(sw) error = %v", err)
	}
	if err := s.AddLink(ctx, model.Link{
		ID: "l1",
		A:  model.Endpoint{NodeID: "h1", Slot: 0, IPv4: "10.0.0.1/24"},
		B:  model.Endpoint{NodeID: "sw", Slot: 0},
	}); err != nil {
		t.Fatalf("AddLink() error = %v", err)
	}

	if err := s.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	// The switch gets a bridge, not a namespace.
	if ns, _ := osState.resident(); ns != 1 {
		t.Fatalf("%d namespaces, want 1 (host only)", ns)
	}
	attached := false
	osState.mu.Lock()
	for _, iface := range osState.interfaces {
		if iface.bridge != "" {
			attached = true
		}
	}
	osState.mu.Unlock()
	if !attached {
		t.Fatal("no interface attached to the switch bridge")
	}

	if err := m.Destroy(ctx, "s1"); err != nil {
		t.Fatalf("Destroy() error = %v", err)
	}
	if ns, ifs := osState.resident(); ns != 0 || ifs != 0 {
		t.Fatalf("resident resources after destroy: %d namespaces, %d interfaces", ns, ifs)
	}
}

func TestDestroyedSessionRejectsCommands(t *testing.T) {
	osState := newFakeOS()
	m := newManagerForTest(t, osState)
	s := createSession(t, m, "s1")

	if err := m.Destroy(context.Background(), "s1"); err != nil {
		t.Fatalf("Destroy() error = %v", err)
	}
	err := s.AddNode(context.Background(), model.Node{ID: "a", Type: model.NodeTypeHost})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("AddNode after destroy: error = %v, want ErrNotFound", err)
	}
}

func TestEventsDeliveredInRevisionOrder(t *testing.T) {
	osState := newFakeOS()
	m := newManagerForTest(t, osState)
	s := createSession(t, m, "s1")

	sub, err := m.Subscribe("s1")
	if err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}
	defer m.Unsubscribe(sub)

	seedTopology(t, s, 0)
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	var last uint64
	sawRunning := false
	deadline := time.After(2 * time.Second)
	for !sawRunning {
		select {
		case ev := <-sub.Events():
			if ev.Revision < last {
				t.Fatalf("revision went backwards: %d after %d", ev.Revision, last)
			}
			last = ev.Revision
			if ev.Kind == model.EventSessionPhase && ev.Phase == model.PhaseRunning {
				sawRunning = true
			}
		case <-deadline:
			t.Fatal("running phase event never delivered")
		}
	}
}

func TestCreateCommitsCreationEvent(t *testing.T) {
	m := newManagerForTest(t, newFakeOS())
	info, err := m.Create(context.Background(), "s1")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	// Creation is the session's first committed mutation, so a subscriber
	// reconciling against the snapshot revision can tell it already happened.
	if info.Revision != 1 {
		t.Fatalf("Revision after create = %d, want 1", info.Revision)
	}
}

func TestCreateDuplicateSession(t *testing.T) {
	m := newManagerForTest(t, newFakeOS())
	if _, err := m.Create(context.Background(), "s1"); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := m.Create(context.Background(), "s1"); !errors.Is(err, ErrExists) {
		t.Fatalf("duplicate Create() error = %v, want ErrExists", err)
	}
}

func TestShutdownDestroysAllSessions(t *testing.T) {
	osState := newFakeOS()
	m := newManagerForTest(t, osState)
	for _, id := range []string{"s1", "s2"} {
		s := createSession(t, m, id)
		seedTopology(t, s, 0)
		if err := s.Start(context.Background()); err != nil {
			t.Fatalf("Start(%s) error = %v", id, err)
		}
	}

	m.Shutdown(context.Background())
	if got := len(m.List()); got != 0 {
		t.Fatalf("%d sessions after shutdown, want 0", got)
	}
	if ns, ifs := osState.resident(); ns != 0 || ifs != 0 {
		t.Fatalf("resident resources after shutdown: %d namespaces, %d interfaces", ns, ifs)
	}
}
