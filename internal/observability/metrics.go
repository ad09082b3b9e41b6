// Package observability wires Prometheus metrics and OpenTelemetry tracing
// for the daemon's front-ends.
package observability

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/packetforge/netemd/model"
)

// Collector bundles the daemon's Prometheus metrics and provides helpers to
// wire them into the gRPC server, the event broadcaster, and an HTTP
// /metrics handler.
type Collector struct {
	gatherer prometheus.Gatherer

	RPCRequests  *prometheus.CounterVec
	RPCDurations *prometheus.HistogramVec

	Sessions    prometheus.Gauge
	Nodes       prometheus.Gauge
	Links       prometheus.Gauge
	Subscribers prometheus.Gauge

	EventsDelivered prometheus.Counter
	EventsDropped   *prometheus.CounterVec
}

// NewCollector registers the daemon metrics against the provided registerer,
// defaulting to the global Prometheus registry when nil.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "netemd_rpc_requests_total",
		Help: "Total number of handled RPCs, labeled by service, method, and gRPC status code.",
	}, []string{"service", "method", "code"})
	requests, err := registerCounterVec(reg, requests, "netemd_rpc_requests_total")
	if err != nil {
		return nil, err
	}

	durations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "netemd_rpc_duration_seconds",
		Help:    "RPC latency in seconds.",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
	}, []string{"service", "method"})
	durations, err = registerHistogramVec(reg, durations, "netemd_rpc_duration_seconds")
	if err != nil {
		return nil, err
	}

	sessions, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "netemd_sessions",
		Help: "Current number of live sessions.",
	}), "netemd_sessions")
	if err != nil {
		return nil, err
	}
	nodes, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "netemd_nodes",
		Help: "Current number of nodes across all sessions.",
	}), "netemd_nodes")
	if err != nil {
		return nil, err
	}
	links, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "netemd_links",
		Help: "Current number of links across all sessions.",
	}), "netemd_links")
	if err != nil {
		return nil, err
	}
	subscribers, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "netemd_event_subscribers",
		Help: "Current number of event subscribers across all sessions.",
	}), "netemd_event_subscribers")
	if err != nil {
		return nil, err
	}

	delivered := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "netemd_events_delivered_total",
		Help: "Total events delivered to subscriber queues.",
	})
	if err := reg.Register(delivered); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			delivered = are.ExistingCollector.(prometheus.Counter)
		} else {
			return nil, err
		}
	}
	dropped := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "netemd_event_subscribers_dropped_total",
		Help: "Subscribers disconnected because their event queue overflowed.",
	}, []string{"session"})
	dropped, err = registerCounterVec(reg, dropped, "netemd_event_subscribers_dropped_total")
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:        gatherer,
		RPCRequests:     requests,
		RPCDurations:    durations,
		Sessions:        sessions,
		Nodes:           nodes,
		Links:           links,
		Subscribers:     subscribers,
		EventsDelivered: delivered,
		EventsDropped:   dropped,
	}, nil
}

// UnaryServerInterceptor records request counts and durations for unary RPCs.
func (c *Collector) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		if c == nil {
			return resp, err
		}

		fullMethod := ""
		if info != nil {
			fullMethod = info.FullMethod
		}
		service, method := SplitMethod(fullMethod)
		code := status.Code(err).String()

		if c.RPCRequests != nil {
			c.RPCRequests.WithLabelValues(service, method, code).Inc()
		}
		if c.RPCDurations != nil {
			c.RPCDurations.WithLabelValues(service, method).Observe(time.Since(start).Seconds())
		}

		return resp, err
	}
}

// Handler exposes a ready-to-use /metrics handler.
func (c *Collector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// EventDelivered and EventDropped are shaped to plug into the broadcaster's
// delivery hooks.
func (c *Collector) EventDelivered(model.Event) {
	if c == nil || c.EventsDelivered == nil {
		return
	}
	c.EventsDelivered.Inc()
}

func (c *Collector) EventDropped(sessionID string) {
	if c == nil || c.EventsDropped == nil {
		return
	}
	c.EventsDropped.WithLabelValues(sessionID).Inc()
}

// SetTopologyCounts drives the session, node, and link gauges from a sweep
// over the session manager's listing.
func (c *Collector) SetTopologyCounts(infos []model.SessionInfo) {
	if c == nil {
		return
	}
	var nodes, links int
	for _, info := range infos {
		nodes += info.Nodes
		links += info.Links
	}
	if c.Sessions != nil {
		c.Sessions.Set(float64(len(infos)))
	}
	if c.Nodes != nil {
		c.Nodes.Set(float64(nodes))
	}
	if c.Links != nil {
		c.Links.Set(float64(links))
	}
}

// SetSubscriberCount drives the subscriber gauge.
func (c *Collector) SetSubscriberCount(n int) {
	if c == nil || c.Subscribers == nil {
		return
	}
	c.Subscribers.Set(float64(n))
}

// SplitMethod parses a fully-qualified gRPC method name into service and
// method components. It tolerates empty strings and partial paths, returning
// "unknown"/"unknown" when parsing fails.
func SplitMethod(fullMethod string) (string, string) {
	if fullMethod == "" {
		return "unknown", "unknown"
	}
	fullMethod = strings.TrimPrefix(fullMethod, "/")
	parts := strings.Split(fullMethod, "/")
	if len(parts) < 2 {
		return "unknown", "unknown"
	}
	service := parts[len(parts)-2]
	method := parts[len(parts)-1]
	if dot := strings.LastIndex(service, "."); dot >= 0 && dot+1 < len(service) {
		service = service[dot+1:]
	}
	if service == "" {
		service = "unknown"
	}
	if method == "" {
		method = "unknown"
	}
	return service, method
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogramVec(reg prometheus.Registerer, vec *prometheus.HistogramVec, name string) (*prometheus.HistogramVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}
