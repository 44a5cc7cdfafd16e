package main

import (
	"context"
	"errors"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/dense-identity/domainselection/internal/config"
	"github.com/dense-identity/domainselection/internal/httpapi"
	"github.com/dense-identity/domainselection/internal/looper"
	"github.com/dense-identity/domainselection/internal/metrics"
	"github.com/dense-identity/domainselection/internal/platform"
	"github.com/dense-identity/domainselection/internal/prefstore"
	"github.com/dense-identity/domainselection/internal/rpc"
	"github.com/dense-identity/domainselection/internal/service"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	pb "github.com/dense-identity/domainselection/api/go/domainselection/v1"
)

func main() {
	if err := config.LoadEnv(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Failed to load env file: %v", err)
	}

	cfg, err := config.New[config.DaemonConfig]()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Normalize(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	logger := log.New(os.Stderr, "", log.LstdFlags|log.Lmicroseconds)
	if !cfg.Verbose {
		logger.SetOutput(io.Discard)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("domainselectiond: %v", err)
	}
	log.Printf("domainselectiond stopped")
}

func run(ctx context.Context, cfg *config.DaemonConfig, logger *log.Logger) error {
	store, err := prefstore.Open(ctx, cfg.Prefs)
	if err != nil {
		return err
	}
	defer store.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	loader := platform.NewCarrierConfigLoader(cfg.CarrierConfigDir, logger)
	bridge := platform.NewBridge(cfg.ModemCount, loader, logger)

	l := looper.New("domainselection", clockwork.NewRealClock())
	svc := service.New(ctx, bridge.Platform(cfg.Resources), l, store, m, logger)

	grpcServer := grpc.NewServer()
	rpcServer := rpc.NewServer(svc, bridge, logger)
	pb.RegisterDomainSelectionServer(grpcServer, rpcServer)

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: httpapi.New(svc, rpcServer, reg, logger).Routes(),
	}

	lis, err := net.Listen("tcp", cfg.GrpcAddr)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// The looper outlives gctx so teardown can still run on it.
		return l.Loop(context.Background())
	})
	g.Go(func() error {
		log.Printf("gRPC server listening at %s", cfg.GrpcAddr)
		return grpcServer.Serve(lis)
	})
	g.Go(func() error {
		log.Printf("HTTP server listening at %s", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := svc.Do(shutdownCtx, svc.Destroy); err != nil {
			log.Printf("service teardown: %v", err)
		}
		select {
		case <-svc.Flushed():
		case <-shutdownCtx.Done():
			log.Printf("preference writes still pending at shutdown")
		}
		l.Quit()
		rpcServer.CloseSessions()

		stopped := make(chan struct{})
		go func() {
			grpcServer.GracefulStop()
			close(stopped)
		}()
		select {
		case <-stopped:
		case <-shutdownCtx.Done():
			grpcServer.Stop()
		}
		return httpServer.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
