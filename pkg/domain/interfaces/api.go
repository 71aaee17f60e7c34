package interfaces

//go:generate moq -out ../mock/api.go -pkg mock . API Navigator
//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/m-mizutani/chronocode/pkg/domain/model"
	"github.com/m-mizutani/chronocode/pkg/domain/types"
)

// API is the Chronocode backend as seen by the dashboard.
type API interface {
	LoginURL() string
	AuthStatus(ctx context.Context) (*model.AuthStatus, error)
	Logout(ctx context.Context) error
	GetProfile(ctx context.Context) (*model.GitHubProfile, error)
	GetRepositories(ctx context.Context) (*model.UserRepositoriesResponse, error)
	SearchRepos(ctx context.Context, query string) (*model.RepositoriesResponse, error)
	AnalyzeRepository(ctx context.Context, repoURL string) (*model.AnalyzeResponse, error)
	GetSubcommitsTimeline(ctx context.Context, repoID types.RepoID) (*model.TimelineResponse, error)
}

// Navigator moves the user agent to another location: a browser, a terminal
// prompt, or an HTTP redirect.
type Navigator interface {
	Navigate(ctx context.Context, url string) error
}
