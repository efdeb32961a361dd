package app

import (
	"github.com/facebookgo/clock"

	"github.com/ghuser/auctionhouse/pkg/logger"
	"github.com/ghuser/auctionhouse/pkg/telemetry"
)

// Application holds shared infrastructure dependencies for all services.
// Pass it to each service's constructor during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler. Use slog's context methods
// and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "auction created", "house", h, "auction", a)
//	app.Logger.ErrorContext(ctx, "failed to list houses", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Logger logger.Logger
	// Clock drives auction start/end times. Tests inject clock.NewMock().
	Clock clock.Clock
	// Metrics may be nil.
	Metrics *telemetry.Metrics
}
