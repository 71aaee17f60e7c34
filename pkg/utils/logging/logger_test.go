package logging_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/m-mizutani/chronocode/pkg/domain/types"
	"github.com/m-mizutani/chronocode/pkg/utils/logging"
	"github.com/m-mizutani/gt"
)

func TestConfigure(t *testing.T) {
	t.Cleanup(func() {
		_ = logging.Configure("text", "info", "stderr")
	})

	testCases := map[string]struct {
		format, level, output string
		hasErr                bool
	}{
		"json to stdout":    {format: "json", level: "info", output: "stdout"},
		"text to stderr":    {format: "text", level: "debug", output: "stderr"},
		"dash means stderr": {format: "text", level: "warn", output: "-"},
		"invalid format":    {format: "yaml", level: "info", output: "-", hasErr: true},
		"invalid level":     {format: "json", level: "trace", output: "-", hasErr: true},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			err := logging.Configure(tc.format, tc.level, tc.output)
			if tc.hasErr {
				gt.Error(t, err)
				return
			}
			gt.NoError(t, err)
		})
	}
}

func TestAccessTokenIsMasked(t *testing.T) {
	t.Cleanup(func() {
		_ = logging.Configure("text", "info", "stderr")
	})

	path := filepath.Join(t.TempDir(), "log.json")
	gt.NoError(t, logging.Configure("json", "info", path))

	type credentials struct {
		AccessToken string
		Login       string
	}

	logging.Default().Info("request",
		slog.Any("token", types.AccessToken("cookie-secret-1")),
		slog.Any("creds", credentials{AccessToken: "cookie-secret-2", Login: "octocat"}),
	)

	raw, err := os.ReadFile(path)
	gt.NoError(t, err)
	out := string(raw)
	gt.False(t, strings.Contains(out, "cookie-secret-1"))
	gt.False(t, strings.Contains(out, "cookie-secret-2"))
	gt.True(t, strings.Contains(out, "octocat"))
}
