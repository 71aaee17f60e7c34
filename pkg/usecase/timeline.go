package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/m-mizutani/chronocode/pkg/domain/interfaces"
	"github.com/m-mizutani/chronocode/pkg/domain/model"
	"github.com/m-mizutani/chronocode/pkg/domain/types"
	"github.com/m-mizutani/chronocode/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

const (
	DefaultTimelinePollInterval = 5 * time.Second
	DefaultUpToDateDuration     = 4 * time.Second
)

// AnalysisIndicator is the small status badge of the timeline page.
type AnalysisIndicator string

const (
	IndicatorIdle      AnalysisIndicator = "idle"
	IndicatorAnalyzing AnalysisIndicator = "analyzing"
	IndicatorUpToDate  AnalysisIndicator = "up-to-date"
)

// TimelineSnapshot is the latest state of a TimelineWatcher.
type TimelineSnapshot struct {
	Response *model.TimelineResponse
	// Revision increments on every successful fetch.
	Revision  uint64
	Error     error
	Loading   bool
	Indicator AnalysisIndicator
	FetchedAt time.Time
}

// Subcommits returns the fetched subcommits, or nil before the first success.
func (x TimelineSnapshot) Subcommits() []*model.Subcommit {
	if x.Response == nil {
		return nil
	}
	return x.Response.Subcommits
}

// TimelineWatcher refetches the timeline of one repository at a fixed
// interval while it runs. A failed fetch keeps the last good response.
type TimelineWatcher struct {
	api      interfaces.API
	repoID   types.RepoID
	interval time.Duration
	upToDate time.Duration
	now      func() time.Time

	mu            sync.Mutex
	snapshot      TimelineSnapshot
	wasAnalyzing  bool
	upToDateUntil time.Time
	subscribers   []func(TimelineSnapshot)
}

type TimelineWatcherOption func(*TimelineWatcher)

// WithPollInterval sets the refetch interval. A non-positive value keeps
// DefaultTimelinePollInterval.
func WithPollInterval(d time.Duration) TimelineWatcherOption {
	return func(x *TimelineWatcher) {
		x.interval = d
	}
}

// WithUpToDateDuration sets how long the up-to-date indicator stays after
// the backend stops analysing.
func WithUpToDateDuration(d time.Duration) TimelineWatcherOption {
	return func(x *TimelineWatcher) {
		x.upToDate = d
	}
}

func WithClock(now func() time.Time) TimelineWatcherOption {
	return func(x *TimelineWatcher) {
		x.now = now
	}
}

func (x *UseCase) NewTimelineWatcher(repoID types.RepoID, options ...TimelineWatcherOption) *TimelineWatcher {
	return NewTimelineWatcher(x.clients.API(), repoID, options...)
}

func NewTimelineWatcher(api interfaces.API, repoID types.RepoID, options ...TimelineWatcherOption) *TimelineWatcher {
	w := &TimelineWatcher{
		api:      api,
		repoID:   repoID,
		interval: DefaultTimelinePollInterval,
		upToDate: DefaultUpToDateDuration,
		now:      time.Now,
		snapshot: TimelineSnapshot{Loading: true, Indicator: IndicatorIdle},
	}
	for _, opt := range options {
		opt(w)
	}
	if w.interval <= 0 {
		w.interval = DefaultTimelinePollInterval
	}
	return w
}

// Subscribe registers fn to receive a snapshot after every fetch. fn runs
// with the internal lock held and must not call back into the watcher.
func (x *TimelineWatcher) Subscribe(fn func(TimelineSnapshot)) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.subscribers = append(x.subscribers, fn)
}

// Snapshot returns the latest state with the indicator evaluated now.
func (x *TimelineWatcher) Snapshot() TimelineSnapshot {
	x.mu.Lock()
	defer x.mu.Unlock()
	snap := x.snapshot
	snap.Indicator = x.indicatorLocked()
	return snap
}

func (x *TimelineWatcher) indicatorLocked() AnalysisIndicator {
	if x.wasAnalyzing {
		return IndicatorAnalyzing
	}
	if !x.upToDateUntil.IsZero() && x.now().Before(x.upToDateUntil) {
		return IndicatorUpToDate
	}
	return IndicatorIdle
}

// Refresh fetches the timeline once and publishes the result.
func (x *TimelineWatcher) Refresh(ctx context.Context) error {
	resp, err := x.api.GetSubcommitsTimeline(ctx, x.repoID)

	x.mu.Lock()
	defer x.mu.Unlock()

	x.snapshot.Loading = false
	if err != nil {
		x.snapshot.Error = err
	} else {
		if x.wasAnalyzing && !resp.IsAnalyzing {
			x.upToDateUntil = x.now().Add(x.upToDate)
		}
		x.wasAnalyzing = resp.IsAnalyzing

		x.snapshot.Response = resp
		x.snapshot.Error = nil
		x.snapshot.Revision++
		x.snapshot.FetchedAt = x.now()
	}
	x.snapshot.Indicator = x.indicatorLocked()

	for _, fn := range x.subscribers {
		fn(x.snapshot)
	}

	if err != nil {
		return goerr.Wrap(err, "failed to fetch timeline", goerr.V("repo_id", x.repoID))
	}
	return nil
}

// Run fetches immediately and then on every tick until ctx is cancelled.
// The ticker is released before Run returns.
func (x *TimelineWatcher) Run(ctx context.Context) {
	logger := logging.From(ctx).With(slog.Any("repo_id", x.repoID))

	ticker := time.NewTicker(x.interval)
	defer ticker.Stop()

	for {
		if err := x.Refresh(ctx); err != nil && ctx.Err() == nil {
			logger.Warn("timeline poll failed", slog.Any("error", err))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Start runs the watcher in the background. The returned stop function
// cancels polling and waits until the goroutine has exited.
func (x *TimelineWatcher) Start(ctx context.Context) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		x.Run(ctx)
	}()

	return func() {
		cancel()
		<-done
	}
}

// TimelineMemo caches the last timeline view keyed on the data revision and
// the filter inputs.
type TimelineMemo struct {
	mu   sync.Mutex
	key  timelineMemoKey
	view *model.TimelineView
}

type timelineMemoKey struct {
	revision uint64
	types    string
	query    string
	epics    bool
}

// View returns the cached view when the inputs match the previous call and
// builds a new one otherwise. Callers must bump revision whenever the
// subcommit list changes.
func (x *TimelineMemo) View(revision uint64, subcommits []*model.Subcommit, filter model.TimelineFilter, epics bool) *model.TimelineView {
	typesKey := "*"
	if filter.Types != nil {
		typesKey = filter.Types.Key()
	}
	key := timelineMemoKey{
		revision: revision,
		types:    typesKey,
		query:    filter.Query,
		epics:    epics,
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	if x.view != nil && x.key == key {
		return x.view
	}
	x.key = key
	x.view = model.BuildTimelineView(subcommits, filter, epics)
	return x.view
}

// Timeline fetches a repository timeline once and builds its view.
func (x *UseCase) Timeline(ctx context.Context, repoID types.RepoID, filter model.TimelineFilter, epics bool) (*model.TimelinePage, error) {
	resp, err := x.clients.API().GetSubcommitsTimeline(ctx, repoID)
	if err != nil {
		return nil, err
	}

	view := model.BuildTimelineView(resp.Subcommits, filter, epics)
	page := &model.TimelinePage{
		RepoID:      repoID,
		RepoURL:     resp.RepoURL,
		IsAnalyzing: resp.IsAnalyzing,
		View:        view,
		CountLabel:  view.CountLabel(),
	}
	if resp.RepoID != "" {
		page.RepoID = resp.RepoID
	}
	return page, nil
}

// SubcommitDetail returns one subcommit with its siblings from the same commit.
func (x *UseCase) SubcommitDetail(ctx context.Context, repoID types.RepoID, subcommitID int64) (*model.SubcommitDetail, error) {
	resp, err := x.clients.API().GetSubcommitsTimeline(ctx, repoID)
	if err != nil {
		return nil, err
	}
	return BuildSubcommitDetail(resp, subcommitID)
}

// BuildSubcommitDetail assembles the detail panel content from an already
// fetched timeline.
func BuildSubcommitDetail(resp *model.TimelineResponse, subcommitID int64) (*model.SubcommitDetail, error) {
	selected := model.FindSubcommit(resp.Subcommits, subcommitID)
	if selected == nil {
		return nil, goerr.Wrap(types.ErrNotFound, "subcommit not found",
			goerr.V("repo_id", resp.RepoID),
			goerr.V("subcommit_id", subcommitID),
		)
	}

	return &model.SubcommitDetail{
		Subcommit: selected,
		Siblings:  model.Siblings(resp.Subcommits, selected),
		CommitURL: selected.CommitURL(resp.RepoURL),
	}, nil
}
