package main

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/packetforge/netemd/api/gen/netempb"
	"github.com/packetforge/netemd/internal/api"
	"github.com/packetforge/netemd/internal/events"
	"github.com/packetforge/netemd/internal/fabric"
	"github.com/packetforge/netemd/internal/logging"
	"github.com/packetforge/netemd/internal/nsman"
	"github.com/packetforge/netemd/internal/observability"
	"github.com/packetforge/netemd/internal/session"
	"github.com/packetforge/netemd/internal/tlv"
)

// Startup smoke: the full front-end stack comes up and serves both
// protocols. Nothing here instantiates a session, so no OS resources are
// touched.
func TestDaemonStartupSmoke(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	log := logging.New(logging.Config{Level: "warn", Format: "text"})
	collector, err := observability.NewCollector(prometheus.NewRegistry())
	if err != nil {
		t.Fatalf("NewCollector: %v", err)
	}

	nodes := nsman.New(nsman.OSBackend(), log)
	fab := fabric.New(fabric.OSBackend(), nodes, log)
	broadcaster := events.New(log,
		events.WithDeliveryHooks(collector.EventDelivered, collector.EventDropped))
	sessions := session.NewManager(nodes, fab, broadcaster, log)
	defer sessions.Shutdown(context.Background())

	server := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			api.RequestIDUnaryServerInterceptor(log),
			collector.UnaryServerInterceptor(),
		),
	)
	netempb.RegisterNetemServiceServer(server, api.NewNetemService(sessions, log))

	grpcLis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen: %v", err)
	}
	go server.Serve(grpcLis)
	defer server.Stop()

	tlvSrv := tlv.NewServer(sessions, log)
	tlvLis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen: %v", err)
	}
	go tlvSrv.Serve(tlvLis)
	defer tlvSrv.Close()

	conn, err := grpc.NewClient(grpcLis.Addr().String(),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("grpc.NewClient: %v", err)
	}
	defer conn.Close()

	client := netempb.NewNetemServiceClient(conn)
	created, err := client.CreateSession(ctx, &netempb.CreateSessionRequest{Id: "smoke"})
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if created.GetSession().GetId() != "smoke" {
		t.Fatalf("CreateSession: got %q, want smoke", created.GetSession().GetId())
	}

	// The session created over gRPC is visible over the legacy protocol.
	tlvConn, err := net.Dial("tcp", tlvLis.Addr().String())
	if err != nil {
		t.Fatalf("dial tlv: %v", err)
	}
	defer tlvConn.Close()
	tlvConn.SetDeadline(time.Now().Add(5 * time.Second))
	body, _ := tlv.Fields{}.AddString(tlv.TagSessionID, "smoke").Encode()
	if err := tlv.WriteFrame(tlvConn, tlv.Frame{Type: tlv.MsgSessionGet, Value: body}); err != nil {
		t.Fatalf("write tlv frame: %v", err)
	}
	reply, err := tlv.ReadFrame(tlvConn)
	if err != nil {
		t.Fatalf("read tlv frame: %v", err)
	}
	if reply.Type != tlv.MsgSessionInfo {
		t.Fatalf("tlv reply type: got 0x%04x, want MsgSessionInfo", reply.Type)
	}

	if _, err := client.DeleteSession(ctx, &netempb.DeleteSessionRequest{Id: "smoke"}); err != nil {
		t.Fatalf("DeleteSession: %v", err)
	}
}

func TestSweepGaugesUpdatesCollector(t *testing.T) {
	log := logging.Noop()
	collector, err := observability.NewCollector(prometheus.NewRegistry())
	if err != nil {
		t.Fatalf("NewCollector: %v", err)
	}
	nodes := nsman.New(nsman.OSBackend(), log)
	fab := fabric.New(fabric.OSBackend(), nodes, log)
	broadcaster := events.New(log)
	sessions := session.NewManager(nodes, fab, broadcaster, log)
	defer sessions.Shutdown(context.Background())

	if _, err := sessions.Create(context.Background(), "s1"); err != nil {
		t.Fatalf("Create: %v", err)
	}

	infos := sessions.List()
	collector.SetTopologyCounts(infos)
	subs := 0
	for _, info := range infos {
		subs += broadcaster.SubscriberCount(info.ID)
	}
	collector.SetSubscriberCount(subs)
}
