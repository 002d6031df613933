package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-saga/internal/pkg/telemetry"
)

type TelemetryTestSuite struct {
	suite.Suite
}

func TestTelemetrySuite(t *testing.T) {
	suite.Run(t, new(TelemetryTestSuite))
}

func (s *TelemetryTestSuite) TestNoopWhenEndpointEmpty() {
	shutdown, err := telemetry.Setup(context.Background(), "")
	s.Require().NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.NoError(shutdown(ctx))
}

func (s *TelemetryTestSuite) TestProviderWithUnreachableEndpoint() {
	// Non-routable address, nothing is exported
	shutdown, err := telemetry.Setup(context.Background(), "http://192.0.2.1:4318")
	s.Require().NoError(err)
	s.NoError(shutdown(context.Background()))
}
