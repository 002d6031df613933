package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	narratormock "github.com/KirkDiggler/rpg-saga/internal/clients/narrator/mock"
	"github.com/KirkDiggler/rpg-saga/internal/errors"
)

func TestErrorUnaryInterceptorMapsCodes(t *testing.T) {
	handler := func(context.Context, any) (any, error) {
		return nil, errors.AlreadyCompleted("event the_calling already completed")
	}

	_, err := errorUnaryInterceptor(context.Background(), nil, &grpc.UnaryServerInfo{}, handler)
	require.Error(t, err)

	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.AlreadyExists, st.Code())

	back := errors.FromGRPCError(err)
	assert.True(t, errors.IsAlreadyCompleted(back))
}

func TestErrorUnaryInterceptorPassesResponse(t *testing.T) {
	handler := func(context.Context, any) (any, error) { return "ok", nil }

	resp, err := errorUnaryInterceptor(context.Background(), nil, &grpc.UnaryServerInfo{}, handler)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
}

func TestReportNarrator(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := narratormock.NewMockClient(ctrl)
	healthServer := health.NewServer()
	ctx := context.Background()

	check := func() grpc_health_v1.HealthCheckResponse_ServingStatus {
		resp, err := healthServer.Check(ctx, &grpc_health_v1.HealthCheckRequest{Service: NarratorHealthService})
		require.NoError(t, err)
		return resp.Status
	}

	client.EXPECT().IsAvailable(gomock.Any()).Return(false)
	reportNarrator(ctx, client, healthServer)
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_NOT_SERVING, check())

	client.EXPECT().IsAvailable(gomock.Any()).Return(true)
	reportNarrator(ctx, client, healthServer)
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, check())
}
