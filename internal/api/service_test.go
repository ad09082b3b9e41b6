package api

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/packetforge/netemd/api/gen/netempb"
	"github.com/packetforge/netemd/internal/events"
	"github.com/packetforge/netemd/internal/fabric"
	"github.com/packetforge/netemd/internal/nsman"
	"github.com/packetforge/netemd/internal/session"
	"github.com/packetforge/netemd/model"
	"github.com/packetforge/netemd/topo"
)

// nopOS satisfies both provisioning backends with no real OS effects.
type nopOS struct{}

func (nopOS) Create(context.Context, string) error                              { return nil }
func (nopOS) Delete(context.Context, string) error                              { return nil }
func (nopOS) CreateVethPair(context.Context, string, string) error              { return nil }
func (nopOS) MoveAndRename(context.Context, string, string, string) error       { return nil }
func (nopOS) SetUp(context.Context, string, string) error                       { return nil }
func (nopOS) AddAddress(context.Context, string, string, string) error          { return nil }
func (nopOS) ApplyShaping(context.Context, string, string, model.Shaping) error { return nil }
func (nopOS) ClearShaping(context.Context, string, string) error                { return nil }
func (nopOS) CreateBridge(context.Context, string) error                        { return nil }
func (nopOS) AttachToBridge(context.Context, string, string) error              { return nil }
func (nopOS) DeleteInterface(context.Context, string, string) error             { return nil }

func newServiceForTest(t *testing.T) *NetemService {
	t.Helper()
	ns := nsman.New(nopOS{}, nil)
	fab := fabric.New(nopOS{}, ns, nil)
	mgr := session.NewManager(ns, fab, events.New(nil), nil)
	return NewNetemService(mgr, nil)
}

func wantCode(t *testing.T, err error, want codes.Code) {
	t.Helper()
	if status.Code(err) != want {
		t.Fatalf("status code = %v (err %v), want %v", status.Code(err), err, want)
	}
}

func seedSession(t *testing.T, svc *NetemService, id string) {
	t.Helper()
	ctx := context.Background()
	if _, err := svc.CreateSession(ctx, &netempb.CreateSessionRequest{Id: id}); err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}
	for _, nodeID := range []string{"a", "b"} {
		_, err := svc.AddNode(ctx, &netempb.AddNodeRequest{
			SessionId: id,
			Node: &netempb.Node{
				Id:   nodeID,
				Name: nodeID,
				Type: netempb.NodeType_NODE_TYPE_HOST,
			},
		})
		if err != nil {
			t.Fatalf("AddNode(%s) error = %v", nodeID, err)
		}
	}
	_, err := svc.AddLink(ctx, &netempb.AddLinkRequest{
		SessionId: id,
		Link: &netempb.Link{
			Id:      "l1",
			A:       &netempb.Endpoint{NodeId: "a", Slot: 0, Ipv4: "10.0.0.1/24"},
			B:       &netempb.Endpoint{NodeId: "b", Slot: 0, Ipv4: "10.0.0.2/24"},
			Shaping: &netempb.Shaping{DelayUs: 50_000},
		},
	})
	if err != nil {
		t.Fatalf("AddLink() error = %v", err)
	}
}

func TestSessionLifecycle(t *testing.T) {
	svc := newServiceForTest(t)
	ctx := context.Background()
	seedSession(t, svc, "s1")

	start, err := svc.StartSession(ctx, &netempb.StartSessionRequest{Id: "s1"})
	if err != nil {
		t.Fatalf("StartSession() error = %v", err)
	}
	if start.GetSession().GetPhase() != netempb.Phase_PHASE_RUNNING {
		t.Fatalf("phase = %v, want RUNNING", start.GetSession().GetPhase())
	}

	snap, err := svc.GetSnapshot(ctx, &netempb.GetSnapshotRequest{SessionId: "s1"})
	if err != nil {
		t.Fatalf("GetSnapshot() error = %v", err)
	}
	if len(snap.GetNodes()) != 2 || len(snap.GetLinks()) != 1 {
		t.Fatalf("snapshot has %d nodes, %d links", len(snap.GetNodes()), len(snap.GetLinks()))
	}
	if snap.GetLinks()[0].GetShaping().GetDelayUs() != 50_000 {
		t.Errorf("link delay_us = %d, want 50000", snap.GetLinks()[0].GetShaping().GetDelayUs())
	}
	for _, n := range snap.GetNodes() {
		if n.GetStatus() != netempb.EntityStatus_ENTITY_STATUS_INSTANTIATED {
			t.Errorf("node %s status = %v, want INSTANTIATED", n.GetId(), n.GetStatus())
		}
	}

	stop, err := svc.StopSession(ctx, &netempb.StopSessionRequest{Id: "s1"})
	if err != nil {
		t.Fatalf("StopSession() error = %v", err)
	}
	if stop.GetSession().GetPhase() != netempb.Phase_PHASE_TERMINATED {
		t.Fatalf("phase after stop = %v, want TERMINATED", stop.GetSession().GetPhase())
	}

	if _, err := svc.DeleteSession(ctx, &netempb.DeleteSessionRequest{Id: "s1"}); err != nil {
		t.Fatalf("DeleteSession() error = %v", err)
	}
	_, err = svc.GetSession(ctx, &netempb.GetSessionRequest{Id: "s1"})
	wantCode(t, err, codes.NotFound)
}

func TestUnknownSessionNotFound(t *testing.T) {
	svc := newServiceForTest(t)
	ctx := context.Background()

	_, err := svc.GetSession(ctx, &netempb.GetSessionRequest{Id: "nope"})
	wantCode(t, err, codes.NotFound)
	_, err = svc.StartSession(ctx, &netempb.StartSessionRequest{Id: "nope"})
	wantCode(t, err, codes.NotFound)
	_, err = svc.AddNode(ctx, &netempb.AddNodeRequest{
		SessionId: "nope",
		Node:      &netempb.Node{Id: "a"},
	})
	wantCode(t, err, codes.NotFound)
}

func TestValidationRejectsEmptyIdentifiers(t *testing.T) {
	svc := newServiceForTest(t)
	ctx := context.Background()

	_, err := svc.AddNode(ctx, &netempb.AddNodeRequest{SessionId: "s1"})
	wantCode(t, err, codes.InvalidArgument)
	_, err = svc.AddLink(ctx, &netempb.AddLinkRequest{
		SessionId: "s1",
		Link:      &netempb.Link{Id: "l1"},
	})
	wantCode(t, err, codes.InvalidArgument)
	_, err = svc.RemoveNode(ctx, &netempb.RemoveNodeRequest{SessionId: "s1"})
	wantCode(t, err, codes.InvalidArgument)
}

func TestSlotConflictMapsToFailedPrecondition(t *testing.T) {
	svc := newServiceForTest(t)
	ctx := context.Background()
	seedSession(t, svc, "s1")

	_, err := svc.AddLink(ctx, &netempb.AddLinkRequest{
		SessionId: "s1",
		Link: &netempb.Link{
			Id: "l2",
			A:  &netempb.Endpoint{NodeId: "a", Slot: 0},
			B:  &netempb.Endpoint{NodeId: "b", Slot: 1},
		},
	})
	wantCode(t, err, codes.FailedPrecondition)
}

func TestInvalidShapingMapsToInvalidArgument(t *testing.T) {
	svc := newServiceForTest(t)
	ctx := context.Background()
	seedSession(t, svc, "s1")

	_, err := svc.UpdateLink(ctx, &netempb.UpdateLinkRequest{
		SessionId: "s1",
		LinkId:    "l1",
		Shaping:   &netempb.Shaping{LossPercent: 150},
	})
	wantCode(t, err, codes.InvalidArgument)
}

func TestDuplicateSessionMapsToAlreadyExists(t *testing.T) {
	svc := newServiceForTest(t)
	ctx := context.Background()
	if _, err := svc.CreateSession(ctx, &netempb.CreateSessionRequest{Id: "s1"}); err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}
	_, err := svc.CreateSession(ctx, &netempb.CreateSessionRequest{Id: "s1"})
	wantCode(t, err, codes.AlreadyExists)
}

func TestToStatusError(t *testing.T) {
	cases := []struct {
		err  error
		want codes.Code
	}{
		{nil, codes.OK},
		{session.ErrNotFound, codes.NotFound},
		{session.ErrExists, codes.AlreadyExists},
		{session.ErrConflict, codes.FailedPrecondition},
		{session.ErrSlotInUse, codes.FailedPrecondition},
		{fmt.Errorf("%w: cannot start in phase %q", session.ErrInvalidState, "errored"), codes.FailedPrecondition},
		{session.ErrResourceExhausted, codes.ResourceExhausted},
		{session.ErrShapingRejected, codes.InvalidArgument},
		{session.ErrEndpointUnavailable, codes.FailedPrecondition},
		{topo.ErrInvalid, codes.InvalidArgument},
		{events.ErrSlowConsumer, codes.Unavailable},
		{nsman.ErrProvisionFailed, codes.Internal},
		{fabric.ErrProvisionFailed, codes.Internal},
		{fmt.Errorf("some opaque failure"), codes.Internal},
	}
	for _, tc := range cases {
		if got := status.Code(ToStatusError(tc.err)); got != tc.want {
			t.Errorf("ToStatusError(%v) code = %v, want %v", tc.err, got, tc.want)
		}
	}
}

// captureStream is a minimal grpc.ServerStreamingServer[netempb.Event].
type captureStream struct {
	ctx context.Context

	mu   sync.Mutex
	sent []*netempb.Event
}

func (s *captureStream) Send(ev *netempb.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, ev)
	return nil
}

func (s *captureStream) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

func (s *captureStream) Context() context.Context     { return s.ctx }
func (s *captureStream) SetHeader(metadata.MD) error  { return nil }
func (s *captureStream) SendHeader(metadata.MD) error { return nil }
func (s *captureStream) SetTrailer(metadata.MD)       {}
func (s *captureStream) SendMsg(any) error            { return nil }
func (s *captureStream) RecvMsg(any) error            { return nil }

func TestStreamEventsForwardsInOrder(t *testing.T) {
	svc := newServiceForTest(t)
	ctx := context.Background()
	if _, err := svc.CreateSession(ctx, &netempb.CreateSessionRequest{Id: "s1"}); err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}

	streamCtx, cancel := context.WithCancel(context.Background())
	stream := &captureStream{ctx: streamCtx}
	errCh := make(chan error, 1)
	go func() {
		errCh <- svc.StreamEvents(&netempb.StreamEventsRequest{SessionId: "s1"}, stream)
	}()

	// Let the subscription attach before mutating.
	time.Sleep(20 * time.Millisecond)
	seedSession(t, svc, "s2") // unrelated session, must not leak into s1's stream
	if _, err := svc.AddNode(ctx, &netempb.AddNodeRequest{
		SessionId: "s1",
		Node:      &netempb.Node{Id: "a", Type: netempb.NodeType_NODE_TYPE_HOST},
	}); err != nil {
		t.Fatalf("AddNode() error = %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for stream.count() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("no event forwarded to stream")
		}
		time.Sleep(5 * time.Millisecond)
	}
	cancel()

	select {
	case err := <-errCh:
		wantCode(t, err, codes.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("StreamEvents did not return after cancel")
	}

	stream.mu.Lock()
	defer stream.mu.Unlock()
	var last uint64
	for _, ev := range stream.sent {
		if ev.GetSessionId() != "s1" {
			t.Errorf("event for session %q leaked into s1 stream", ev.GetSessionId())
		}
		if ev.GetRevision() < last {
			t.Errorf("revision went backwards: %d after %d", ev.GetRevision(), last)
		}
		last = ev.GetRevision()
	}
}

func TestStreamEventsUnknownSession(t *testing.T) {
	svc := newServiceForTest(t)
	stream := &captureStream{ctx: context.Background()}
	err := svc.StreamEvents(&netempb.StreamEventsRequest{SessionId: "nope"}, stream)
	wantCode(t, err, codes.NotFound)
}
