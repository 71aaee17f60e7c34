package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/chronocode/pkg/cli/config"
	"github.com/m-mizutani/chronocode/pkg/controller/server"
	"github.com/m-mizutani/chronocode/pkg/infra"
	"github.com/m-mizutani/chronocode/pkg/usecase"
	"github.com/m-mizutani/chronocode/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		addr         string
		secureCookie bool

		api    config.API
		sentry config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:3000",
			Sources:     cli.EnvVars("CHRONOCODE_ADDR"),
			Destination: &addr,
		},
		&cli.BoolFlag{
			Name:        "secure-cookie",
			Usage:       "Mark cookies set by the dashboard as Secure",
			Sources:     cli.EnvVars("CHRONOCODE_SECURE_COOKIE"),
			Destination: &secureCookie,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Run the dashboard edge server",
		Flags: slice.Flatten(
			serveFlags,
			api.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("API", api),
				slog.Any("Sentry", sentry),
			)

			flush, err := sentry.Configure(ctx)
			if err != nil {
				return err
			}
			defer flush()

			client, err := api.NewClient()
			if err != nil {
				return err
			}

			// Only the caller's cookie may authenticate a request.
			uc := usecase.New(infra.New(infra.WithAPI(client.WithAccessToken(""))))
			s := server.New(uc, server.WithSecureCookie(secureCookie))

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      30 * time.Second,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}
