package cli

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/m-mizutani/chronocode/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// ConfigureLogging is exported for testing purposes
var ConfigureLogging = logging.Configure

const defaultEnvFile = ".env"

type CLI struct {
	writer io.Writer
}

type Option func(*CLI)

// WithWriter sets where command output goes. Logs are configured separately.
func WithWriter(w io.Writer) Option {
	return func(x *CLI) {
		x.writer = w
	}
}

func New(options ...Option) *CLI {
	x := &CLI{
		writer: os.Stdout,
	}
	for _, opt := range options {
		opt(x)
	}
	return x
}

// loadEnvFile reads variables from the file named by CHRONOCODE_ENV_FILE, or
// .env, without overriding variables already set. A missing file is ignored.
func loadEnvFile() error {
	path := os.Getenv("CHRONOCODE_ENV_FILE")
	if path == "" {
		path = defaultEnvFile
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return goerr.Wrap(err, "failed to load env file", goerr.V("path", path))
	}
	return nil
}

func (x *CLI) Run(argv []string) error {
	var (
		logLevel  string
		logFormat string
		logOutput string
	)

	if err := loadEnvFile(); err != nil {
		logging.Default().Error("fatal error", "error", err)
		return err
	}

	app := &cli.Command{
		Name:   "chronocode",
		Usage:  "Browse AI generated development timelines of git repositories",
		Writer: x.writer,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "Log level [debug|info|warn|error]",
				Aliases:     []string{"l"},
				Sources:     cli.EnvVars("CHRONOCODE_LOG_LEVEL"),
				Destination: &logLevel,
				Value:       "info",
			},
			&cli.StringFlag{
				Name:        "log-format",
				Usage:       "Log format [text|json]",
				Aliases:     []string{"f"},
				Sources:     cli.EnvVars("CHRONOCODE_LOG_FORMAT"),
				Destination: &logFormat,
				Value:       "text",
			},
			&cli.StringFlag{
				Name:        "log-output",
				Usage:       "Log output [-|stdout|stderr|<file>]",
				Aliases:     []string{"o"},
				Sources:     cli.EnvVars("CHRONOCODE_LOG_OUTPUT"),
				Destination: &logOutput,
				Value:       "-",
			},
		},
		Commands: []*cli.Command{
			loginCommand(),
			logoutCommand(),
			whoamiCommand(),
			reposCommand(),
			searchCommand(),
			analyzeCommand(),
			timelineCommand(),
			serveCommand(),
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := ConfigureLogging(logFormat, logLevel, logOutput); err != nil {
				return ctx, err
			}
			return logging.With(ctx, logging.Default()), nil
		},
	}

	if err := app.Run(context.Background(), argv); err != nil {
		logging.Default().Error("fatal error", "error", err)
		return err
	}

	return nil
}
