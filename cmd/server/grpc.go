package main

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/rpg-saga/internal/clients/narrator"
	"github.com/KirkDiggler/rpg-saga/internal/errors"
)

// NarratorHealthService is the health check name that follows narrator availability
const NarratorHealthService = "saga.narrator"

const narratorProbeInterval = 30 * time.Second

// newGRPCServer builds the operational gRPC server: health and reflection
func newGRPCServer() (*grpc.Server, *health.Server) {
	logger := grpc_logging.LoggerFunc(logFunc)

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(logger),
			grpc_recovery.UnaryServerInterceptor(grpc_recovery.WithRecoveryHandler(recoverPanic)),
			errorUnaryInterceptor,
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(logger),
			grpc_recovery.StreamServerInterceptor(grpc_recovery.WithRecoveryHandler(recoverPanic)),
		),
	)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(NarratorHealthService, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	return srv, healthServer
}

// errorUnaryInterceptor converts internal errors into gRPC statuses
func errorUnaryInterceptor(
	ctx context.Context,
	req any,
	_ *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (any, error) {
	resp, err := handler(ctx, req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return resp, nil
}

func recoverPanic(p any) error {
	slog.Error("recovered from panic in grpc handler", "panic", p)
	return errors.ToGRPCError(errors.Internal("internal error"))
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}

// watchNarrator mirrors narrator availability into the health server
// until ctx is done
func watchNarrator(ctx context.Context, client narrator.Client, healthServer *health.Server) {
	ticker := time.NewTicker(narratorProbeInterval)
	defer ticker.Stop()

	for {
		reportNarrator(ctx, client, healthServer)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func reportNarrator(ctx context.Context, client narrator.Client, healthServer *health.Server) {
	status := grpc_health_v1.HealthCheckResponse_SERVING
	if !client.IsAvailable(ctx) {
		status = grpc_health_v1.HealthCheckResponse_NOT_SERVING
		slog.WarnContext(ctx, "narrator unavailable, decisions will use fallback narratives")
	}
	healthServer.SetServingStatus(NarratorHealthService, status)
}
