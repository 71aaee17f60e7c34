package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/chronocode/pkg/domain/mock"
	"github.com/m-mizutani/chronocode/pkg/domain/model"
	"github.com/m-mizutani/chronocode/pkg/domain/types"
	"github.com/m-mizutani/chronocode/pkg/infra"
	"github.com/m-mizutani/chronocode/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func sampleSubcommits() []*model.Subcommit {
	return []*model.Subcommit{
		{ID: 1, CreatedAt: "2024-03-01T10:00:00Z", Title: "Add login", Type: types.SubcommitFeature, CommitSHA: "aaa111", Epic: "auth"},
		{ID: 2, CreatedAt: "2024-03-01T12:00:00Z", Title: "Fix crash", Type: types.SubcommitBug, CommitSHA: "aaa111"},
		{ID: 3, CreatedAt: "2024-03-02T09:00:00Z", Title: "Docs for login", Type: types.SubcommitDocs, CommitSHA: "bbb222", Epic: "auth"},
	}
}

func TestUseCaseTimeline(t *testing.T) {
	api := &mock.APIMock{
		GetSubcommitsTimelineFunc: func(ctx context.Context, repoID types.RepoID) (*model.TimelineResponse, error) {
			return &model.TimelineResponse{
				RepoID:      repoID,
				RepoURL:     "https://github.com/acme/widgets",
				IsAnalyzing: true,
				Subcommits:  sampleSubcommits(),
			}, nil
		},
	}
	uc := usecase.New(infra.New(infra.WithAPI(api)))

	t.Run("all types", func(t *testing.T) {
		page, err := uc.Timeline(context.Background(), "42", model.TimelineFilter{}, false)
		gt.NoError(t, err)
		gt.V(t, page.RepoID).Equal(types.RepoID("42"))
		gt.V(t, page.RepoURL).Equal("https://github.com/acme/widgets")
		gt.True(t, page.IsAnalyzing)
		gt.V(t, page.CountLabel).Equal("3 subcommits")
		gt.V(t, len(page.View.Days)).Equal(2)
		gt.V(t, page.View.Days[0].Date).Equal("2024-03-02")
		gt.V(t, page.View.Days[1].Date).Equal("2024-03-01")
	})

	t.Run("filtered with epics", func(t *testing.T) {
		filter := model.TimelineFilter{
			Types: types.NewSubcommitTypeSet(types.SubcommitFeature, types.SubcommitDocs),
			Query: "LOGIN",
		}
		page, err := uc.Timeline(context.Background(), "42", filter, true)
		gt.NoError(t, err)
		gt.V(t, page.CountLabel).Equal("2 / 3")
		gt.V(t, len(page.View.Days)).Equal(2)
		gt.V(t, len(page.View.Days[1].Epics)).Equal(1)
		gt.V(t, page.View.Days[1].Epics[0].Epic).Equal("auth")
	})

	t.Run("api error", func(t *testing.T) {
		failing := &mock.APIMock{
			GetSubcommitsTimelineFunc: func(ctx context.Context, repoID types.RepoID) (*model.TimelineResponse, error) {
				return nil, errors.New("boom")
			},
		}
		uc := usecase.New(infra.New(infra.WithAPI(failing)))
		_, err := uc.Timeline(context.Background(), "42", model.TimelineFilter{}, false)
		gt.Error(t, err)
	})
}

func TestUseCaseSubcommitDetail(t *testing.T) {
	api := &mock.APIMock{
		GetSubcommitsTimelineFunc: func(ctx context.Context, repoID types.RepoID) (*model.TimelineResponse, error) {
			return &model.TimelineResponse{
				RepoID:     repoID,
				RepoURL:    "https://github.com/acme/widgets/",
				Subcommits: sampleSubcommits(),
			}, nil
		},
	}
	uc := usecase.New(infra.New(infra.WithAPI(api)))

	t.Run("found with siblings", func(t *testing.T) {
		detail, err := uc.SubcommitDetail(context.Background(), "42", 1)
		gt.NoError(t, err)
		gt.V(t, detail.Subcommit.ID).Equal(int64(1))
		gt.V(t, len(detail.Siblings)).Equal(1)
		gt.V(t, detail.Siblings[0].ID).Equal(int64(2))
		gt.V(t, detail.CommitURL).Equal("https://github.com/acme/widgets/commit/aaa111")
	})

	t.Run("lone subcommit", func(t *testing.T) {
		detail, err := uc.SubcommitDetail(context.Background(), "42", 3)
		gt.NoError(t, err)
		gt.V(t, len(detail.Siblings)).Equal(0)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := uc.SubcommitDetail(context.Background(), "42", 99)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrNotFound))
	})
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (x *fakeClock) Now() time.Time {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.now
}

func (x *fakeClock) Advance(d time.Duration) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.now = x.now.Add(d)
}

func TestTimelineWatcherRefresh(t *testing.T) {
	var (
		mu          sync.Mutex
		isAnalyzing = true
		fail        = false
	)
	api := &mock.APIMock{
		GetSubcommitsTimelineFunc: func(ctx context.Context, repoID types.RepoID) (*model.TimelineResponse, error) {
			mu.Lock()
			defer mu.Unlock()
			if fail {
				return nil, errors.New("temporary failure")
			}
			return &model.TimelineResponse{
				RepoID:      repoID,
				IsAnalyzing: isAnalyzing,
				Subcommits:  sampleSubcommits(),
			}, nil
		},
	}
	clock := &fakeClock{now: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)}

	w := usecase.NewTimelineWatcher(api, "42",
		usecase.WithClock(clock.Now),
		usecase.WithUpToDateDuration(4*time.Second),
	)
	ctx := context.Background()

	snap := w.Snapshot()
	gt.True(t, snap.Loading)
	gt.V(t, snap.Revision).Equal(uint64(0))
	gt.V(t, snap.Indicator).Equal(usecase.IndicatorIdle)
	gt.V(t, len(snap.Subcommits())).Equal(0)

	gt.NoError(t, w.Refresh(ctx))
	snap = w.Snapshot()
	gt.False(t, snap.Loading)
	gt.V(t, snap.Revision).Equal(uint64(1))
	gt.V(t, snap.Indicator).Equal(usecase.IndicatorAnalyzing)
	gt.V(t, len(snap.Subcommits())).Equal(3)

	mu.Lock()
	isAnalyzing = false
	mu.Unlock()
	gt.NoError(t, w.Refresh(ctx))
	gt.V(t, w.Snapshot().Indicator).Equal(usecase.IndicatorUpToDate)

	clock.Advance(3 * time.Second)
	gt.V(t, w.Snapshot().Indicator).Equal(usecase.IndicatorUpToDate)
	clock.Advance(2 * time.Second)
	gt.V(t, w.Snapshot().Indicator).Equal(usecase.IndicatorIdle)

	mu.Lock()
	fail = true
	mu.Unlock()
	gt.Error(t, w.Refresh(ctx))
	snap = w.Snapshot()
	gt.Error(t, snap.Error)
	gt.V(t, snap.Revision).Equal(uint64(2))
	gt.V(t, len(snap.Subcommits())).Equal(3)
}

func TestTimelineWatcherStart(t *testing.T) {
	api := &mock.APIMock{
		GetSubcommitsTimelineFunc: func(ctx context.Context, repoID types.RepoID) (*model.TimelineResponse, error) {
			return &model.TimelineResponse{RepoID: repoID}, nil
		},
	}

	w := usecase.NewTimelineWatcher(api, "42", usecase.WithPollInterval(5*time.Millisecond))

	revisions := make(chan uint64, 100)
	w.Subscribe(func(snap usecase.TimelineSnapshot) {
		select {
		case revisions <- snap.Revision:
		default:
		}
	})

	stop := w.Start(context.Background())
	for i := 0; i < 3; i++ {
		select {
		case <-revisions:
		case <-time.After(2 * time.Second):
			t.Fatal("watcher did not poll")
		}
	}
	stop()

	calls := len(api.GetSubcommitsTimelineCalls())
	gt.True(t, calls >= 3)
	time.Sleep(30 * time.Millisecond)
	gt.V(t, len(api.GetSubcommitsTimelineCalls())).Equal(calls)
}

func TestTimelineWatcherNonPositiveInterval(t *testing.T) {
	for _, interval := range []time.Duration{0, -time.Second} {
		t.Run(interval.String(), func(t *testing.T) {
			api := &mock.APIMock{
				GetSubcommitsTimelineFunc: func(ctx context.Context, repoID types.RepoID) (*model.TimelineResponse, error) {
					return &model.TimelineResponse{RepoID: repoID}, nil
				},
			}
			w := usecase.NewTimelineWatcher(api, "42", usecase.WithPollInterval(interval))

			fetched := make(chan struct{}, 1)
			w.Subscribe(func(usecase.TimelineSnapshot) {
				select {
				case fetched <- struct{}{}:
				default:
				}
			})

			stop := w.Start(context.Background())
			defer stop()

			select {
			case <-fetched:
			case <-time.After(2 * time.Second):
				t.Fatal("watcher did not fetch")
			}
			gt.V(t, len(api.GetSubcommitsTimelineCalls())).Equal(1)
		})
	}
}

func TestTimelineDefaults(t *testing.T) {
	gt.V(t, usecase.DefaultTimelinePollInterval).Equal(5 * time.Second)
	gt.V(t, usecase.DefaultUpToDateDuration).Equal(4 * time.Second)
}

func TestTimelineMemo(t *testing.T) {
	memo := &usecase.TimelineMemo{}
	subcommits := sampleSubcommits()

	v1 := memo.View(1, subcommits, model.TimelineFilter{}, false)
	v2 := memo.View(1, subcommits, model.TimelineFilter{}, false)
	gt.True(t, v1 == v2)

	v3 := memo.View(1, subcommits, model.TimelineFilter{Query: "login"}, false)
	gt.True(t, v3 != v2)
	gt.V(t, v3.ResultCount).Equal(2)

	v4 := memo.View(2, subcommits, model.TimelineFilter{Query: "login"}, false)
	gt.True(t, v4 != v3)

	bugs := model.TimelineFilter{Types: types.NewSubcommitTypeSet(types.SubcommitBug), Query: "login"}
	v5 := memo.View(2, subcommits, bugs, false)
	gt.True(t, v5 != v4)
	gt.V(t, v5.ResultCount).Equal(0)

	v6 := memo.View(2, subcommits, bugs, true)
	gt.True(t, v6 != v5)
}
