package usecase

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/m-mizutani/chronocode/pkg/domain/interfaces"
	"github.com/m-mizutani/chronocode/pkg/domain/model"
	"github.com/m-mizutani/chronocode/pkg/domain/types"
	"github.com/m-mizutani/chronocode/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

const (
	DefaultSearchDebounce = 300 * time.Millisecond
	MinSearchQueryLength  = 2
)

// Repositories returns the repositories registered by the signed in user.
func (x *UseCase) Repositories(ctx context.Context) ([]*model.UserRepository, error) {
	resp, err := x.clients.API().GetRepositories(ctx)
	if err != nil {
		return nil, err
	}
	return resp.Repositories, nil
}

// SearchRepositories searches analysed repositories by name. Queries shorter
// than MinSearchQueryLength characters return an empty result without a
// request.
func (x *UseCase) SearchRepositories(ctx context.Context, query string) ([]*model.Repository, error) {
	if !searchable(query) {
		return []*model.Repository{}, nil
	}

	resp, err := x.clients.API().SearchRepos(ctx, query)
	if err != nil {
		return nil, err
	}
	return resp.Repositories, nil
}

// AnalyzeRepository submits a repository URL for analysis once.
func (x *UseCase) AnalyzeRepository(ctx context.Context, repoURL string) (*model.AnalyzeResponse, error) {
	repoURL = strings.TrimSpace(repoURL)
	if repoURL == "" {
		return nil, goerr.Wrap(types.ErrValidationFailed, "repository URL is required")
	}
	return x.clients.API().AnalyzeRepository(ctx, repoURL)
}

func searchable(query string) bool {
	return utf8.RuneCountInString(query) >= MinSearchQueryLength
}

// RepositoriesLoader caches the user's repository list. The cache is only
// replaced by a successful fetch.
type RepositoriesLoader struct {
	api interfaces.API

	mu     sync.Mutex
	repos  []*model.UserRepository
	loaded bool
	err    error
}

func (x *UseCase) NewRepositoriesLoader() *RepositoriesLoader {
	return NewRepositoriesLoader(x.clients.API())
}

func NewRepositoriesLoader(api interfaces.API) *RepositoriesLoader {
	return &RepositoriesLoader{api: api}
}

// Load returns the cached list, fetching it on first use.
func (x *RepositoriesLoader) Load(ctx context.Context) ([]*model.UserRepository, error) {
	x.mu.Lock()
	if x.loaded {
		repos := x.repos
		x.mu.Unlock()
		return repos, nil
	}
	x.mu.Unlock()

	return x.Refresh(ctx)
}

// Refresh always refetches. On failure the previous list stays available
// through Snapshot.
func (x *RepositoriesLoader) Refresh(ctx context.Context) ([]*model.UserRepository, error) {
	resp, err := x.api.GetRepositories(ctx)

	x.mu.Lock()
	defer x.mu.Unlock()

	if err != nil {
		x.err = err
		return x.repos, err
	}

	x.repos = resp.Repositories
	x.loaded = true
	x.err = nil
	return x.repos, nil
}

// Snapshot returns the cached list and the error of the last fetch.
func (x *RepositoriesLoader) Snapshot() ([]*model.UserRepository, error) {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.repos, x.err
}

// SearchResult is the visible state of a RepoSearch.
type SearchResult struct {
	Query        string
	Repositories []*model.Repository
	Searching    bool
	Error        error
}

// RepoSearch runs a debounced search as the user types. A response is only
// applied if no newer query was issued after it was requested.
type RepoSearch struct {
	api      interfaces.API
	debounce time.Duration

	mu          sync.Mutex
	seq         uint64
	timer       *time.Timer
	result      SearchResult
	closed      bool
	subscribers []func(SearchResult)
}

type RepoSearchOption func(*RepoSearch)

func WithDebounce(d time.Duration) RepoSearchOption {
	return func(x *RepoSearch) {
		x.debounce = d
	}
}

func (x *UseCase) NewRepoSearch(options ...RepoSearchOption) *RepoSearch {
	return NewRepoSearch(x.clients.API(), options...)
}

func NewRepoSearch(api interfaces.API, options ...RepoSearchOption) *RepoSearch {
	s := &RepoSearch{
		api:      api,
		debounce: DefaultSearchDebounce,
		result:   SearchResult{Repositories: []*model.Repository{}},
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// Subscribe registers fn to receive every published result. fn runs with the
// internal lock held.
func (x *RepoSearch) Subscribe(fn func(SearchResult)) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.subscribers = append(x.subscribers, fn)
}

func (x *RepoSearch) Result() SearchResult {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.result
}

// SetQuery records a new query. Short queries clear the result at once.
// Others publish a searching result and are searched after the debounce
// delay. Length counts runes as typed; whitespace is not trimmed.
func (x *RepoSearch) SetQuery(ctx context.Context, query string) {
	x.mu.Lock()
	defer x.mu.Unlock()
	if x.closed {
		return
	}

	x.seq++
	seq := x.seq
	if x.timer != nil {
		x.timer.Stop()
		x.timer = nil
	}

	if !searchable(query) {
		x.publishLocked(SearchResult{Query: query, Repositories: []*model.Repository{}})
		return
	}

	searching := x.result
	searching.Query = query
	searching.Searching = true
	searching.Error = nil
	x.publishLocked(searching)

	ctx = context.WithoutCancel(ctx)
	x.timer = time.AfterFunc(x.debounce, func() {
		x.run(ctx, seq, query)
	})
}

// Search runs a query immediately and waits for its result.
func (x *RepoSearch) Search(ctx context.Context, query string) SearchResult {
	x.mu.Lock()
	x.seq++
	seq := x.seq
	if x.timer != nil {
		x.timer.Stop()
		x.timer = nil
	}
	x.mu.Unlock()

	if !searchable(query) {
		x.mu.Lock()
		defer x.mu.Unlock()
		if seq == x.seq {
			x.publishLocked(SearchResult{Query: query, Repositories: []*model.Repository{}})
		}
		return SearchResult{Query: query, Repositories: []*model.Repository{}}
	}

	return x.run(ctx, seq, query)
}

func (x *RepoSearch) run(ctx context.Context, seq uint64, query string) SearchResult {
	resp, err := x.api.SearchRepos(ctx, query)

	result := SearchResult{Query: query, Repositories: []*model.Repository{}}
	if err != nil {
		logging.From(ctx).Warn("repository search failed",
			slog.String("query", query),
			slog.Any("error", err),
		)
		result.Error = err
	} else if resp != nil && resp.Repositories != nil {
		result.Repositories = resp.Repositories
	}

	x.mu.Lock()
	defer x.mu.Unlock()
	if seq != x.seq || x.closed {
		return result
	}
	x.publishLocked(result)
	return result
}

func (x *RepoSearch) publishLocked(result SearchResult) {
	x.result = result
	for _, fn := range x.subscribers {
		fn(result)
	}
}

// Close cancels any pending search. Results arriving afterwards are dropped.
func (x *RepoSearch) Close() {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.closed = true
	x.seq++
	if x.timer != nil {
		x.timer.Stop()
		x.timer = nil
	}
}
