package model

import "github.com/m-mizutani/chronocode/pkg/domain/types"

type AuthStatus struct {
	IsLoggedIn bool `json:"isLoggedIn"`
}

type RepositoriesResponse struct {
	Repositories []*Repository `json:"repositories"`
}

type UserRepositoriesResponse struct {
	Repositories []*UserRepository `json:"repositories"`
}

type AnalyzeRequest struct {
	RepoURL string `json:"repoUrl"`
}

type AnalyzeResponse struct {
	Message string       `json:"message"`
	RepoID  types.RepoID `json:"repoId"`
}

type TimelineResponse struct {
	Subcommits  []*Subcommit `json:"subcommits"`
	RepoID      types.RepoID `json:"repoId"`
	IsAnalyzing bool         `json:"isAnalyzing,omitempty"`
	RepoURL     string       `json:"repoUrl,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
