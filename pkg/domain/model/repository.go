package model

import "github.com/m-mizutani/chronocode/pkg/domain/types"

// Repository is a search result from the user's GitHub repositories.
type Repository struct {
	ID                 int64  `json:"id"`
	CreatedAt          string `json:"createdAt,omitempty"`
	Name               string `json:"name"`
	URL                string `json:"url"`
	LastAnalyzedCommit string `json:"lastAnalyzedCommit,omitempty"`
}

// UserRepository is a repository the user already submitted for analysis.
// It shares no identity guarantee with Repository.
type UserRepository struct {
	ID      types.RepoID `json:"id"`
	Name    string       `json:"name"`
	URL     string       `json:"url"`
	AddedAt string       `json:"addedAt"`
}

type GitHubProfile struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
	Email     string `json:"email"`
}

// DisplayName falls back to the login when the profile has no name.
func (x *GitHubProfile) DisplayName() string {
	if x.Name != "" {
		return x.Name
	}
	return x.Login
}
