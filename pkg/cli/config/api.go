package config

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/m-mizutani/chronocode/pkg/domain/types"
	"github.com/m-mizutani/chronocode/pkg/infra/chronocode"
	"github.com/urfave/cli/v3"
)

type API struct {
	url         string
	accessToken types.AccessToken `masq:"secret"`
	timeout     time.Duration
}

func (x *API) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "api-url",
			Usage:       "Chronocode API base URL",
			Category:    "API",
			Value:       chronocode.DefaultBaseURL,
			Destination: &x.url,
			Sources:     cli.EnvVars("CHRONOCODE_API_URL"),
		},
		&cli.StringFlag{
			Name:        "access-token",
			Usage:       "Session credential (value of the access_token cookie)",
			Category:    "API",
			Destination: (*string)(&x.accessToken),
			Sources:     cli.EnvVars("CHRONOCODE_ACCESS_TOKEN"),
		},
		&cli.DurationFlag{
			Name:        "api-timeout",
			Usage:       "Timeout of a single API request",
			Category:    "API",
			Value:       30 * time.Second,
			Destination: &x.timeout,
			Sources:     cli.EnvVars("CHRONOCODE_API_TIMEOUT"),
		},
	}
}

func (x *API) URL() string {
	return x.url
}

// NewClient builds a backend client. Without an access token the client can
// only reach the unauthenticated endpoints.
func (x *API) NewClient() (*chronocode.Client, error) {
	options := []chronocode.Option{
		chronocode.WithHTTPClient(&http.Client{Timeout: x.timeout}),
	}
	if x.accessToken != "" {
		options = append(options, chronocode.WithAccessToken(x.accessToken))
	}
	return chronocode.New(x.url, options...)
}

func (x API) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("URL", x.url),
		slog.Int("AccessToken.len", len(x.accessToken)),
		slog.Duration("Timeout", x.timeout),
	)
}
