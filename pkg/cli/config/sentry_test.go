package config_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/chronocode/pkg/cli/config"
	"github.com/m-mizutani/gt"
	"github.com/urfave/cli/v3"
)

func flagNames(flags []cli.Flag) map[string]bool {
	names := make(map[string]bool)
	for _, flag := range flags {
		names[flag.Names()[0]] = true
	}
	return names
}

func TestSentryFlags(t *testing.T) {
	sentryConfig := &config.Sentry{}
	flags := sentryConfig.Flags()

	gt.V(t, len(flags)).Equal(3)

	names := flagNames(flags)
	gt.True(t, names["sentry-dsn"])
	gt.True(t, names["sentry-env"])
	gt.True(t, names["sentry-release"])
}

func TestSentryConfigureDisabled(t *testing.T) {
	sentryConfig := &config.Sentry{}
	flush, err := sentryConfig.Configure(context.Background())
	gt.NoError(t, err)
	flush()
}
