package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-saga/internal/clients/narrator"
	"github.com/KirkDiggler/rpg-saga/internal/config"
	"github.com/KirkDiggler/rpg-saga/internal/errors"
	apiv1alpha1 "github.com/KirkDiggler/rpg-saga/internal/handlers/api/v1alpha1"
	journeyorch "github.com/KirkDiggler/rpg-saga/internal/orchestrators/journey"
	"github.com/KirkDiggler/rpg-saga/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-saga/internal/pkg/telemetry"
	"github.com/KirkDiggler/rpg-saga/internal/redis"
	characterrepo "github.com/KirkDiggler/rpg-saga/internal/repositories/character"
	contentrepo "github.com/KirkDiggler/rpg-saga/internal/repositories/content"
	historyrepo "github.com/KirkDiggler/rpg-saga/internal/repositories/history"
)

const shutdownTimeout = 30 * time.Second

var (
	httpAddr string
	grpcPort int
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the saga server",
	Long:  `Start the HTTP journey API and the gRPC health endpoint.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().StringVar(&httpAddr, "http-addr", "", "HTTP listen address (overrides SAGA_HTTP_ADDR)")
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides SAGA_GRPC_PORT)")
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("http-addr") {
		cfg.HTTPAddr = httpAddr
	}
	if cmd.Flags().Changed("port") {
		cfg.GRPCPort = grpcPort
	}

	setupLogging(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.OTelEndpoint)
	if err != nil {
		return errors.Wrap(err, "failed to set up tracing")
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			slog.Warn("failed to flush traces", "error", err)
		}
	}()

	redisClient, err := redis.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return err
	}
	defer func() { _ = redisClient.Close() }()

	if err := redis.Ping(ctx, redisClient); err != nil {
		return err
	}

	store, err := openContent(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	characterRepo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: redisClient})
	if err != nil {
		return err
	}
	historyRepo, err := historyrepo.NewRedis(&historyrepo.RedisConfig{Client: redisClient})
	if err != nil {
		return err
	}

	narratorClient, err := newNarrator(cfg)
	if err != nil {
		return err
	}

	bus := events.NewBus()
	journeyorch.SubscribeLogging(bus)

	orchestrator, err := journeyorch.New(&journeyorch.Config{
		CharacterRepo:   characterRepo,
		HistoryRepo:     historyRepo,
		ContentRepo:     store,
		Narrator:        narratorClient,
		EventBus:        bus,
		ProtagonistName: cfg.ProtagonistName,
		NarratorTimeout: cfg.NarratorTimeout,
	})
	if err != nil {
		return err
	}

	handler, err := apiv1alpha1.NewHandler(&apiv1alpha1.HandlerConfig{JourneyService: orchestrator})
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return errors.Wrapf(err, "failed to listen on grpc port %d", cfg.GRPCPort)
	}
	grpcServer, healthServer := newGRPCServer()

	go watchNarrator(ctx, narratorClient, healthServer)

	errChan := make(chan error, 2)
	go func() {
		slog.Info("http server starting", "addr", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			errChan <- errors.Wrap(err, "http server failed")
		}
	}()
	go func() {
		slog.Info("grpc server starting", "port", cfg.GRPCPort)
		if err := grpcServer.Serve(lis); err != nil {
			errChan <- errors.Wrap(err, "grpc server failed")
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("received shutdown signal, gracefully stopping")
	case err := <-errChan:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("http shutdown failed", "error", err)
	}

	stopped := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(stopped)
	}()

	select {
	case <-shutdownCtx.Done():
		slog.Warn("graceful shutdown timeout exceeded, forcing stop")
		grpcServer.Stop()
	case <-stopped:
		slog.Info("server stopped gracefully")
	}

	return nil
}

func setupLogging(cfg *config.Config) {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)
}

// openContent opens the SQLite content store and seeds it when it is
// empty or when CONTENT_PATH names an override file
func openContent(ctx context.Context, cfg *config.Config) (*contentrepo.Store, error) {
	store, err := contentrepo.Open(ctx, cfg.SQLitePath)
	if err != nil {
		return nil, err
	}

	existing, err := store.ListEvents(ctx, contentrepo.ListEventsInput{})
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	if len(existing.Events) > 0 && cfg.ContentPath == "" {
		slog.InfoContext(ctx, "content already seeded", "events", len(existing.Events))
		return store, nil
	}

	catalog, err := loadCatalog(cfg.ContentPath)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	if _, err := store.Seed(ctx, contentrepo.SeedInput{Catalog: catalog}); err != nil {
		_ = store.Close()
		return nil, err
	}
	return store, nil
}

func loadCatalog(path string) (*contentrepo.Catalog, error) {
	if path == "" {
		return contentrepo.DefaultCatalog()
	}
	return contentrepo.LoadCatalogFile(path)
}

func newNarrator(cfg *config.Config) (narrator.Client, error) {
	switch cfg.NarratorProvider {
	case config.NarratorOllama:
		slog.Info("using ollama narrator", "url", cfg.OllamaURL, "model", cfg.OllamaModel)
		return narrator.NewOllama(&narrator.OllamaConfig{
			BaseURL:  cfg.OllamaURL,
			Model:    cfg.OllamaModel,
			MaxTries: cfg.NarratorMaxTries,
		})
	default:
		slog.Info("using static narrator")
		return narrator.NewStatic(clock.New()), nil
	}
}
