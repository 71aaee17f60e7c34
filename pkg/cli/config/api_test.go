package config_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/m-mizutani/chronocode/pkg/cli/config"
	"github.com/m-mizutani/chronocode/pkg/infra/chronocode"
	"github.com/m-mizutani/gt"
	"github.com/urfave/cli/v3"
)

func TestAPIFlags(t *testing.T) {
	var api config.API
	names := flagNames(api.Flags())
	gt.True(t, names["api-url"])
	gt.True(t, names["access-token"])
	gt.True(t, names["api-timeout"])
}

func parseAPI(t *testing.T, args ...string) *config.API {
	t.Helper()
	var api config.API
	cmd := &cli.Command{
		Name:  "test",
		Flags: api.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			return nil
		},
	}
	gt.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, args...)))
	return &api
}

func TestAPINewClient(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		api := parseAPI(t)
		gt.V(t, api.URL()).Equal(chronocode.DefaultBaseURL)

		client := gt.R1(api.NewClient()).NoError(t)
		gt.V(t, client.BaseURL()).Equal(chronocode.DefaultBaseURL)
	})

	t.Run("custom url", func(t *testing.T) {
		api := parseAPI(t, "--api-url", "https://api.example.com/", "--api-timeout", "5s")
		client := gt.R1(api.NewClient()).NoError(t)
		gt.V(t, client.BaseURL()).Equal("https://api.example.com")
	})

	t.Run("invalid scheme", func(t *testing.T) {
		api := parseAPI(t, "--api-url", "ftp://api.example.com")
		_, err := api.NewClient()
		gt.Error(t, err)
	})
}

func TestAPILogValueHidesToken(t *testing.T) {
	api := parseAPI(t, "--access-token", "super-secret-token")

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	logger.Info("config", slog.Any("api", api))

	gt.False(t, strings.Contains(buf.String(), "super-secret-token"))
	gt.True(t, strings.Contains(buf.String(), "AccessToken.len"))
}
