package errorreport

import (
	"fmt"
	"log/slog"
	"time"

	"repairshop/internal/config"

	"github.com/getsentry/sentry-go"
)

// Reporter receives infrastructure failures before they are surfaced to
// the hosting framework. Capture is fire-and-forget.
type Reporter interface {
	CaptureException(err error)
}

type SentryReporter struct {
	logger *slog.Logger
}

var _ Reporter = (*SentryReporter)(nil)

func NewSentryReporter(cfg config.SentryConfig, logger *slog.Logger) (*SentryReporter, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("sentry DSN is empty in configuration")
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sentry: %w", err)
	}
	return &SentryReporter{
		logger: logger.With(slog.String("component", "SentryReporter")),
	}, nil
}

func (r *SentryReporter) CaptureException(err error) {
	if err == nil {
		return
	}
	sentry.CaptureException(err)
}

// Flush drains buffered events on shutdown.
func (r *SentryReporter) Flush(timeout time.Duration) {
	if !sentry.Flush(timeout) {
		r.logger.Warn("Sentry flush timed out, some events may be lost")
	}
}

// NoopReporter is used when no DSN is configured; failures are still
// logged by the callers.
type NoopReporter struct{}

var _ Reporter = (*NoopReporter)(nil)

func (NoopReporter) CaptureException(error) {}
