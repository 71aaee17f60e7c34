package interfaces

import (
	"context"

	"github.com/m-mizutani/chronocode/pkg/domain/model"
	"github.com/m-mizutani/chronocode/pkg/domain/types"
)

type UseCase interface {
	LoginURL() string
	Logout(ctx context.Context)
	Repositories(ctx context.Context) ([]*model.UserRepository, error)
	SearchRepositories(ctx context.Context, query string) ([]*model.Repository, error)
	AnalyzeRepository(ctx context.Context, repoURL string) (*model.AnalyzeResponse, error)
	Timeline(ctx context.Context, repoID types.RepoID, filter model.TimelineFilter, epics bool) (*model.TimelinePage, error)
	SubcommitDetail(ctx context.Context, repoID types.RepoID, subcommitID int64) (*model.SubcommitDetail, error)
}
