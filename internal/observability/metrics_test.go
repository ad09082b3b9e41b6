package observability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/packetforge/netemd/model"
)

func TestUnaryInterceptorRecordsMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector, err := NewCollector(reg)
	if err != nil {
		t.Fatalf("NewCollector: %v", err)
	}

	interceptor := collector.UnaryServerInterceptor()
	info := &grpc.UnaryServerInfo{FullMethod: "/netem.v1.NetemService/CreateSession"}

	_, err = interceptor(context.Background(), struct{}{}, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		time.Sleep(10 * time.Millisecond)
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("interceptor handler returned error: %v", err)
	}

	if got := testutil.ToFloat64(collector.RPCRequests.WithLabelValues("NetemService", "CreateSession", "OK")); got != 1 {
		t.Fatalf("netemd_rpc_requests_total = %v, want 1", got)
	}

	if count := histogramSampleCount(t, reg, "netemd_rpc_duration_seconds", map[string]string{
		"service": "NetemService",
		"method":  "CreateSession",
	}); count != 1 {
		t.Fatalf("netemd_rpc_duration_seconds sample_count = %d, want 1", count)
	}
}

func TestUnaryInterceptorRecordsErrorCode(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector, err := NewCollector(reg)
	if err != nil {
		t.Fatalf("NewCollector: %v", err)
	}

	interceptor := collector.UnaryServerInterceptor()
	info := &grpc.UnaryServerInfo{FullMethod: "/netem.v1.NetemService/AddLink"}

	_, _ = interceptor(context.Background(), struct{}{}, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, status.Error(codes.FailedPrecondition, "slot in use")
	})

	if got := testutil.ToFloat64(collector.RPCRequests.WithLabelValues("NetemService", "AddLink", "FailedPrecondition")); got != 1 {
		t.Fatalf("netemd_rpc_requests_total error label = %v, want 1", got)
	}
}

func TestEventHooksCount(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector, err := NewCollector(reg)
	if err != nil {
		t.Fatalf("NewCollector: %v", err)
	}

	collector.EventDelivered(model.Event{Kind: model.EventNodeAdded, SessionID: "s1"})
	collector.EventDelivered(model.Event{Kind: model.EventLinkAdded, SessionID: "s1"})
	collector.EventDropped("s1")

	if got := testutil.ToFloat64(collector.EventsDelivered); got != 2 {
		t.Fatalf("netemd_events_delivered_total = %v, want 2", got)
	}
	if got := testutil.ToFloat64(collector.EventsDropped.WithLabelValues("s1")); got != 1 {
		t.Fatalf("netemd_event_subscribers_dropped_total = %v, want 1", got)
	}
}

func TestMetricsHandlerExposesTopologyGauges(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector, err := NewCollector(reg)
	if err != nil {
		t.Fatalf("NewCollector: %v", err)
	}
	collector.SetTopologyCounts([]model.SessionInfo{
		{ID: "s1", Nodes: 3, Links: 2},
		{ID: "s2", Nodes: 1, Links: 0},
	})
	collector.SetSubscriberCount(4)
	collector.RPCRequests.WithLabelValues("svc", "method", "OK").Inc()
	collector.RPCDurations.WithLabelValues("svc", "method").Observe(0.01)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	collector.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("/metrics status = %d, want 200", rr.Code)
	}
	body := rr.Body.String()
	for _, metric := range []string{
		"netemd_rpc_requests_total",
		"netemd_rpc_duration_seconds",
		"netemd_sessions",
		"netemd_nodes",
		"netemd_links",
		"netemd_event_subscribers",
	} {
		if !strings.Contains(body, metric) {
			t.Fatalf("expected %q in /metrics output", metric)
		}
	}
	if got := testutil.ToFloat64(collector.Sessions); got != 2 {
		t.Fatalf("netemd_sessions = %v, want 2", got)
	}
	if got := testutil.ToFloat64(collector.Nodes); got != 4 {
		t.Fatalf("netemd_nodes = %v, want 4", got)
	}
	if got := testutil.ToFloat64(collector.Links); got != 2 {
		t.Fatalf("netemd_links = %v, want 2", got)
	}
}

func TestSplitMethod(t *testing.T) {
	cases := []struct {
		in          string
		svc, method string
	}{
		{"/netem.v1.NetemService/StartSession", "NetemService", "StartSession"},
		{"", "unknown", "unknown"},
		{"garbage", "unknown", "unknown"},
	}
	for _, tc := range cases {
		svc, method := SplitMethod(tc.in)
		if svc != tc.svc || method != tc.method {
			t.Errorf("SplitMethod(%q) = %q, %q; want %q, %q", tc.in, svc, method, tc.svc, tc.method)
		}
	}
}

func histogramSampleCount(t *testing.T, gatherer prometheus.Gatherer, name string, labels map[string]string) uint64 {
	t.Helper()

	metrics, err := gatherer.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}
	for _, mf := range metrics {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.Metric {
			if matchLabels(m.GetLabel(), labels) && m.GetHistogram() != nil {
				return m.GetHistogram().GetSampleCount()
			}
		}
	}
	return 0
}

func matchLabels(got []*dto.LabelPair, want map[string]string) bool {
	if len(got) < len(want) {
		return false
	}
	matched := 0
	for _, lp := range got {
		if val, ok := want[lp.GetName()]; ok && val == lp.GetValue() {
			matched++
		}
	}
	return matched == len(want)
}
