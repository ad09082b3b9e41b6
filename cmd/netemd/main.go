package main

import (
	"context"
	"errors"
	"flag"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"

	"github.com/packetforge/netemd/api/gen/netempb"
	"github.com/packetforge/netemd/internal/api"
	"github.com/packetforge/netemd/internal/config"
	"github.com/packetforge/netemd/internal/events"
	"github.com/packetforge/netemd/internal/fabric"
	"github.com/packetforge/netemd/internal/logging"
	"github.com/packetforge/netemd/internal/nsman"
	"github.com/packetforge/netemd/internal/observability"
	"github.com/packetforge/netemd/internal/session"
	"github.com/packetforge/netemd/internal/tlv"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, cfgPath, err := loadConfig()
	ctx := context.Background()
	if err != nil {
		logging.NewFromEnv().Error(ctx, "failed to load configuration",
			logging.String("path", cfgPath), logging.Err(err))
		return 1
	}

	log := logging.New(logging.Config{
		Level:     cfg.Log.Level,
		Format:    cfg.Log.Format,
		AddSource: cfg.Log.AddSource,
	})
	if cfgPath != "" {
		log.Info(ctx, "loaded configuration", logging.String("path", cfgPath))
	}

	shutdownTracing, err := observability.InitTracing(ctx, cfg.Tracing, log)
	if err != nil {
		log.Error(ctx, "failed to initialise tracing", logging.Err(err))
		return 1
	}
	defer observability.ShutdownWithTimeout(ctx, shutdownTracing, log)

	collector, err := observability.NewCollector(nil)
	if err != nil {
		log.Error(ctx, "failed to initialise metrics collector", logging.Err(err))
		return 1
	}

	var metricsSrv *http.Server
	if !cfg.Metrics.Disabled {
		metricsSrv = serveMetrics(cfg.Metrics.Listen, collector, log)
	}

	var nsOpts []nsman.Option
	if cfg.Limits.MaxNamespaces > 0 {
		nsOpts = append(nsOpts, nsman.WithLimit(cfg.Limits.MaxNamespaces))
	}
	nodes := nsman.New(nsman.OSBackend(), log, nsOpts...)
	fab := fabric.New(fabric.OSBackend(), nodes, log)

	broadcaster := events.New(log,
		events.WithQueueSize(cfg.Limits.EventQueue),
		events.WithDeliveryHooks(collector.EventDelivered, collector.EventDropped),
	)
	sessions := session.NewManager(nodes, fab, broadcaster, log)

	sweepStop := make(chan struct{})
	go sweepGauges(sessions, broadcaster, collector, sweepStop)

	server := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			api.RequestIDUnaryServerInterceptor(log),
			collector.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			api.RequestIDStreamServerInterceptor(log),
		),
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
	)
	netempb.RegisterNetemServiceServer(server, api.NewNetemService(sessions, log))

	grpcLis, err := net.Listen("tcp", cfg.GRPC.Listen)
	if err != nil {
		log.Error(ctx, "failed to listen for gRPC",
			logging.String("addr", cfg.GRPC.Listen), logging.Err(err))
		return 1
	}
	log.Info(ctx, "starting gRPC server", logging.String("addr", cfg.GRPC.Listen))
	go func() {
		if err := server.Serve(grpcLis); err != nil {
			log.Error(ctx, "gRPC server exited", logging.Err(err))
		}
	}()

	var tlvSrv *tlv.Server
	if !cfg.TLV.Disabled {
		tlvLis, err := net.Listen("tcp", cfg.TLV.Listen)
		if err != nil {
			log.Error(ctx, "failed to listen for legacy protocol",
				logging.String("addr", cfg.TLV.Listen), logging.Err(err))
			return 1
		}
		tlvSrv = tlv.NewServer(sessions, log)
		log.Info(ctx, "starting legacy protocol server", logging.String("addr", cfg.TLV.Listen))
		go func() {
			if err := tlvSrv.Serve(tlvLis); err != nil && !errors.Is(err, net.ErrClosed) {
				log.Error(ctx, "legacy protocol server exited", logging.Err(err))
			}
		}()
	}

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-stopCtx.Done()

	log.Info(ctx, "shutting down")
	close(sweepStop)
	server.GracefulStop()
	if tlvSrv != nil {
		tlvSrv.Close()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	sessions.Shutdown(shutdownCtx)
	if metricsSrv != nil {
		_ = metricsSrv.Shutdown(shutdownCtx)
	}
	return 0
}

func loadConfig() (*config.Config, string, error) {
	configPath := flag.String("config", "", "Path to the YAML configuration file")
	grpcAddr := flag.String("grpc-addr", "", "TCP address the gRPC server listens on (overrides config)")
	tlvAddr := flag.String("tlv-addr", "", "TCP address the legacy protocol server listens on (overrides config)")
	metricsAddr := flag.String("metrics-addr", "", "HTTP address for Prometheus /metrics (overrides config)")
	flag.Parse()

	var (
		cfg  *config.Config
		path string
		err  error
	)
	if *configPath != "" {
		cfg, err = config.LoadFromPath(*configPath)
		path = *configPath
	} else {
		cfg, path, err = config.Load()
	}
	if err != nil {
		return nil, path, err
	}
	if *grpcAddr != "" {
		cfg.GRPC.Listen = *grpcAddr
	}
	if *tlvAddr != "" {
		cfg.TLV.Listen = *tlvAddr
	}
	if *metricsAddr != "" {
		cfg.Metrics.Listen = *metricsAddr
	}
	return cfg, path, nil
}

func serveMetrics(addr string, collector *observability.Collector, log logging.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", collector.Handler())

	srv := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Warn(context.Background(), "metrics server exited", logging.Err(err))
		}
	}()

	log.Info(context.Background(), "serving Prometheus metrics", logging.String("addr", addr))
	return srv
}

// sweepGauges keeps the topology and subscriber gauges current. Polling is
// enough here; gauge staleness of a few seconds is acceptable.
func sweepGauges(sessions *session.Manager, bc *events.Broadcaster, collector *observability.Collector, stop <-chan struct{}) {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			infos := sessions.List()
			collector.SetTopologyCounts(infos)
			subs := 0
			for _, info := range infos {
				subs += bc.SubscriberCount(info.ID)
			}
			collector.SetSubscriberCount(subs)
		}
	}
}
