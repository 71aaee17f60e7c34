package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/chronocode/pkg/cli/config"
	"github.com/m-mizutani/chronocode/pkg/cli/render"
	"github.com/m-mizutani/chronocode/pkg/domain/model"
	"github.com/m-mizutani/chronocode/pkg/domain/types"
	"github.com/m-mizutani/chronocode/pkg/usecase"
	"github.com/m-mizutani/chronocode/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

func timelineCommand() *cli.Command {
	var (
		api      config.API
		typeList string
		query    string
		epics    bool
		watch    bool
		interval time.Duration
		detail   int64
	)

	return &cli.Command{
		Name:      "timeline",
		Aliases:   []string{"t"},
		Usage:     "Show the subcommit timeline of a repository",
		ArgsUsage: "<repository ID>",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "type",
				Usage:       "Comma separated subcommit types to show (FEATURE,BUG,REFACTOR,DOCS,CHORE,MILESTONE,WARNING)",
				Destination: &typeList,
			},
			&cli.StringFlag{
				Name:        "query",
				Aliases:     []string{"q"},
				Usage:       "Case-insensitive text filter over title, description and idea",
				Destination: &query,
			},
			&cli.BoolFlag{
				Name:        "epics",
				Usage:       "Group each day by epic",
				Destination: &epics,
			},
			&cli.BoolFlag{
				Name:        "watch",
				Aliases:     []string{"w"},
				Usage:       "Keep polling and re-render when the timeline changes",
				Destination: &watch,
			},
			&cli.DurationFlag{
				Name:        "interval",
				Usage:       "Polling interval used with --watch",
				Value:       usecase.DefaultTimelinePollInterval,
				Destination: &interval,
			},
			&cli.Int64Flag{
				Name:        "detail",
				Usage:       "Show the detail of one subcommit by id",
				Destination: &detail,
			},
		}, api.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			repoID := types.RepoID(c.Args().First())
			if repoID == "" {
				return goerr.Wrap(types.ErrInvalidOption, "repository ID is required")
			}
			if interval <= 0 {
				return goerr.Wrap(types.ErrInvalidOption, "interval must be positive", goerr.V("interval", interval))
			}

			filter := model.TimelineFilter{Query: query}
			if typeList != "" {
				set, err := types.ParseSubcommitTypes(typeList)
				if err != nil {
					return err
				}
				filter.Types = set
			}

			uc, err := newUseCase(c, &api)
			if err != nil {
				return err
			}
			r := newRenderer(c)

			switch {
			case detail > 0:
				d, err := uc.SubcommitDetail(ctx, repoID, detail)
				if err != nil {
					return err
				}
				return r.Detail(d)

			case watch:
				ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
				defer stop()

				watcher := uc.NewTimelineWatcher(repoID, usecase.WithPollInterval(interval))
				watchTimeline(ctx, watcher, r, filter, epics)
				return nil

			default:
				page, err := uc.Timeline(ctx, repoID, filter, epics)
				if err != nil {
					return err
				}
				return r.Timeline(page)
			}
		},
	}
}

// watchTimeline renders every new revision of the timeline until ctx is done.
func watchTimeline(ctx context.Context, watcher *usecase.TimelineWatcher, r *render.Renderer, filter model.TimelineFilter, epics bool) {
	logger := logging.From(ctx)
	memo := &usecase.TimelineMemo{}

	var (
		lastRevision  uint64
		lastIndicator usecase.AnalysisIndicator
	)

	watcher.Subscribe(func(snap usecase.TimelineSnapshot) {
		if snap.Error != nil {
			logger.Warn("failed to refresh timeline", slog.Any("error", snap.Error))
		}
		if snap.Revision == 0 || (snap.Revision == lastRevision && snap.Indicator == lastIndicator) {
			return
		}
		lastRevision, lastIndicator = snap.Revision, snap.Indicator

		view := memo.View(snap.Revision, snap.Subcommits(), filter, epics)
		page := &model.TimelinePage{
			RepoID:      snap.Response.RepoID,
			RepoURL:     snap.Response.RepoURL,
			IsAnalyzing: snap.Response.IsAnalyzing,
			View:        view,
			CountLabel:  view.CountLabel(),
		}
		if err := r.Timeline(page); err != nil {
			logger.Warn("failed to render timeline", slog.Any("error", err))
		}
		if err := r.Status("status: " + string(snap.Indicator)); err != nil {
			logger.Warn("failed to render status", slog.Any("error", err))
		}
	})

	watcher.Run(ctx)
}
