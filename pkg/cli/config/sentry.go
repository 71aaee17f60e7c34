package config

import (
	"context"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/chronocode/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

const sentryFlushTimeout = 2 * time.Second

type Sentry struct {
	dsn         string `masq:"secret"`
	environment string
	release     string
}

func (x *Sentry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN",
			Category:    "Sentry",
			Destination: &x.dsn,
			Sources:     cli.EnvVars("CHRONOCODE_SENTRY_DSN"),
		},
		&cli.StringFlag{
			Name:        "sentry-env",
			Usage:       "Sentry environment",
			Category:    "Sentry",
			Destination: &x.environment,
			Sources:     cli.EnvVars("CHRONOCODE_SENTRY_ENV"),
		},
		&cli.StringFlag{
			Name:        "sentry-release",
			Usage:       "Sentry release name",
			Category:    "Sentry",
			Destination: &x.release,
			Sources:     cli.EnvVars("CHRONOCODE_SENTRY_RELEASE"),
		},
	}
}

// Configure initializes the Sentry client. The returned function flushes
// buffered events and is safe to call when Sentry is disabled.
func (x *Sentry) Configure(ctx context.Context) (func(), error) {
	if x.dsn == "" {
		logging.From(ctx).Warn("sentry is not configured")
		return func() {}, nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         x.dsn,
		Environment: x.environment,
		Release:     x.release,
	}); err != nil {
		return func() {}, goerr.Wrap(err, "failed to initialize sentry")
	}

	return func() {
		sentry.Flush(sentryFlushTimeout)
	}, nil
}

func (x Sentry) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("Enabled", x.dsn != ""),
		slog.String("Environment", x.environment),
		slog.String("Release", x.release),
	)
}
