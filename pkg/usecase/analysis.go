package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/m-mizutani/chronocode/pkg/domain/interfaces"
	"github.com/m-mizutani/chronocode/pkg/domain/model"
	"github.com/m-mizutani/chronocode/pkg/domain/types"
	"github.com/m-mizutani/chronocode/pkg/infra/chronocode"
	"github.com/m-mizutani/chronocode/pkg/utils/logging"
)

const (
	DefaultReadyDelay = 4 * time.Second
	// DefaultNotStartedGrace bounds completion polling when the timeline never
	// reports isAnalyzing and stays empty.
	DefaultNotStartedGrace = 15 * DefaultReadyDelay
	analysisFailedMessage  = "Analysis failed"
)

// Analysis drives the "analyze a repository" workflow through
// idle -> preparing -> analyzing -> ready. Only one session is tracked; a new
// Start overwrites the previous one and late results of the old session are
// dropped.
type Analysis struct {
	api          interfaces.API
	readyDelay   time.Duration
	pollInterval time.Duration
	grace        time.Duration

	mu          sync.Mutex
	state       model.AnalysisState
	generation  uint64
	cancel      context.CancelFunc
	timer       *time.Timer
	changed     chan struct{}
	subscribers []func(model.AnalysisState)
}

type AnalysisOption func(*Analysis)

// WithReadyDelay sets the fixed delay between analyzing and ready.
func WithReadyDelay(d time.Duration) AnalysisOption {
	return func(x *Analysis) {
		x.readyDelay = d
	}
}

// WithCompletionPolling makes ready depend on the timeline reporting that the
// backend finished analysing, polled every interval, instead of a fixed delay.
func WithCompletionPolling(interval time.Duration) AnalysisOption {
	return func(x *Analysis) {
		x.pollInterval = interval
	}
}

// WithNotStartedGrace sets how long completion polling waits for a timeline
// that neither reports isAnalyzing nor has subcommits before moving to ready.
func WithNotStartedGrace(d time.Duration) AnalysisOption {
	return func(x *Analysis) {
		x.grace = d
	}
}

// NewAnalysis creates an idle analysis session bound to the configured API.
func (x *UseCase) NewAnalysis(options ...AnalysisOption) *Analysis {
	return NewAnalysis(x.clients.API(), options...)
}

func NewAnalysis(api interfaces.API, options ...AnalysisOption) *Analysis {
	a := &Analysis{
		api:        api,
		readyDelay: DefaultReadyDelay,
		grace:      DefaultNotStartedGrace,
		state:      model.AnalysisState{Step: model.AnalysisIdle},
		changed:    make(chan struct{}),
	}
	for _, opt := range options {
		opt(a)
	}
	return a
}

// State returns the current snapshot.
func (x *Analysis) State() model.AnalysisState {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.state
}

// Subscribe registers fn to receive every state change. fn runs with the
// internal lock held and must not call back into Analysis.
func (x *Analysis) Subscribe(fn func(model.AnalysisState)) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.subscribers = append(x.subscribers, fn)
}

func (x *Analysis) setStateLocked(state model.AnalysisState) {
	x.state = state
	for _, fn := range x.subscribers {
		fn(state)
	}
	close(x.changed)
	x.changed = make(chan struct{})
}

// stopLocked cancels the timer and polling of the current session.
func (x *Analysis) stopLocked() {
	if x.timer != nil {
		x.timer.Stop()
		x.timer = nil
	}
	if x.cancel != nil {
		x.cancel()
		x.cancel = nil
	}
}

// Start moves to preparing immediately and then issues the analyze request.
// It returns once the request has been answered; the move from analyzing to
// ready happens in the background. A failed request returns the session to
// idle with Error set, and the error is also returned.
func (x *Analysis) Start(ctx context.Context, repoURL string) error {
	x.mu.Lock()
	x.stopLocked()
	x.generation++
	gen := x.generation
	sessionCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	x.cancel = cancel
	x.setStateLocked(model.AnalysisState{
		Step:        model.AnalysisPreparing,
		IsAnalyzing: true,
		RepoURL:     repoURL,
	})
	x.mu.Unlock()

	logger := logging.From(ctx).With(slog.String("repo_url", repoURL))
	logger.Info("starting analysis")

	resp, err := x.api.AnalyzeRepository(ctx, repoURL)

	x.mu.Lock()
	defer x.mu.Unlock()

	if gen != x.generation {
		logger.Debug("drop superseded analyze response")
		return err
	}

	if err != nil {
		logger.Warn("analysis request failed", slog.Any("error", err))
		x.stopLocked()
		x.setStateLocked(model.AnalysisState{
			Step:    model.AnalysisIdle,
			RepoURL: repoURL,
			Error:   analysisErrorMessage(err),
		})
		return err
	}

	logger.Info("analysis accepted", slog.Any("repo_id", resp.RepoID), slog.String("message", resp.Message))
	x.setStateLocked(model.AnalysisState{
		Step:        model.AnalysisAnalyzing,
		IsAnalyzing: true,
		RepoURL:     repoURL,
		RepoID:      resp.RepoID,
	})

	if x.pollInterval > 0 {
		go x.pollCompletion(sessionCtx, gen, resp.RepoID)
	} else {
		x.timer = time.AfterFunc(x.readyDelay, func() {
			x.markReady(gen)
		})
	}

	return nil
}

func analysisErrorMessage(err error) string {
	if apiErr, ok := chronocode.AsAPIError(err); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return analysisFailedMessage
}

func (x *Analysis) markReady(gen uint64) {
	x.mu.Lock()
	defer x.mu.Unlock()

	if gen != x.generation || x.state.Step != model.AnalysisAnalyzing {
		return
	}
	x.timer = nil
	next := x.state
	next.Step = model.AnalysisReady
	next.IsAnalyzing = false
	x.setStateLocked(next)
}

// pollCompletion waits until the timeline stops reporting isAnalyzing. A
// timeline that never reported isAnalyzing and has no subcommits yet is
// treated as not started until the grace period ends; after that it is
// considered finished with an empty result.
func (x *Analysis) pollCompletion(ctx context.Context, gen uint64, repoID types.RepoID) {
	ticker := time.NewTicker(x.pollInterval)
	defer ticker.Stop()

	logger := logging.From(ctx).With(slog.Any("repo_id", repoID))
	seenAnalyzing := false
	deadline := time.Now().Add(x.grace)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		resp, err := x.api.GetSubcommitsTimeline(ctx, repoID)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Warn("failed to poll analysis progress", slog.Any("error", err))
			continue
		}

		if resp.IsAnalyzing {
			seenAnalyzing = true
			continue
		}
		if seenAnalyzing || len(resp.Subcommits) > 0 {
			x.markReady(gen)
			return
		}
		if !time.Now().Before(deadline) {
			logger.Warn("analysis never reported progress, treating as ready", slog.Duration("grace", x.grace))
			x.markReady(gen)
			return
		}
	}
}

// Reset force-transitions to idle, clearing repository id and error.
func (x *Analysis) Reset() {
	x.mu.Lock()
	defer x.mu.Unlock()

	x.stopLocked()
	x.generation++
	x.setStateLocked(model.AnalysisState{Step: model.AnalysisIdle})
}

// Wait blocks until the session settles in ready or idle, or ctx is done.
func (x *Analysis) Wait(ctx context.Context) (model.AnalysisState, error) {
	for {
		x.mu.Lock()
		state, changed := x.state, x.changed
		x.mu.Unlock()

		if state.Step == model.AnalysisReady || state.Step == model.AnalysisIdle {
			return state, nil
		}

		select {
		case <-ctx.Done():
			return state, ctx.Err()
		case <-changed:
		}
	}
}
