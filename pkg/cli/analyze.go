package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/chronocode/pkg/cli/config"
	"github.com/m-mizutani/chronocode/pkg/domain/model"
	"github.com/m-mizutani/chronocode/pkg/domain/types"
	"github.com/m-mizutani/chronocode/pkg/usecase"
	"github.com/m-mizutani/chronocode/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

func analyzeCommand() *cli.Command {
	var (
		api          config.API
		wait         bool
		pollInterval time.Duration
	)

	return &cli.Command{
		Name:      "analyze",
		Aliases:   []string{"a"},
		Usage:     "Submit a repository for analysis",
		ArgsUsage: "[repository URL] (defaults to the origin remote of the current directory)",
		Flags: slice.Flatten([]cli.Flag{
			&cli.BoolFlag{
				Name:        "wait",
				Usage:       "Wait until the backend reports that analysis has finished",
				Destination: &wait,
			},
			&cli.DurationFlag{
				Name:        "poll-interval",
				Usage:       "Timeline polling interval used with --wait",
				Value:       usecase.DefaultTimelinePollInterval,
				Destination: &pollInterval,
			},
		}, api.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			repoURL := c.Args().First()
			if repoURL == "" {
				detected, err := DetectOriginURL(".")
				if err != nil {
					return err
				}
				repoURL = detected
				logging.From(ctx).Info("detected repository from origin remote", slog.String("url", repoURL))
			}

			uc, err := newUseCase(c, &api)
			if err != nil {
				return err
			}

			var options []usecase.AnalysisOption
			if wait {
				if pollInterval <= 0 {
					return goerr.Wrap(types.ErrInvalidOption, "poll interval must be positive", goerr.V("poll_interval", pollInterval))
				}
				options = append(options, usecase.WithCompletionPolling(pollInterval))
			}
			analysis := uc.NewAnalysis(options...)

			r := newRenderer(c)
			analysis.Subscribe(func(state model.AnalysisState) {
				if state.Step == model.AnalysisIdle {
					return
				}
				if err := r.Status(state.Step.Label()); err != nil {
					logging.From(ctx).Warn("failed to render progress", slog.Any("error", err))
				}
			})

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := analysis.Start(ctx, repoURL); err != nil {
				_ = r.AnalysisState(analysis.State())
				return err
			}

			state, err := analysis.Wait(ctx)
			analysis.Reset()
			if err != nil {
				return err
			}

			if err := r.AnalysisState(state); err != nil {
				return err
			}
			return r.Status("Run `chronocode timeline " + state.RepoID.String() + "` to browse the timeline.")
		},
	}
}
