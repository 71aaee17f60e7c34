package model

import (
	"time"

	"github.com/m-mizutani/chronocode/pkg/domain/types"
)

// Subcommit is the atomic unit of analysis output: one logical change carved
// out of a commit by the backend.
type Subcommit struct {
	ID          int64               `json:"id"`
	CreatedAt   string              `json:"createdAt"`
	Title       string              `json:"title"`
	Idea        string              `json:"idea"`
	Description string              `json:"description"`
	CommitSHA   string              `json:"commitSha"`
	Type        types.SubcommitType `json:"type"`
	Epic        string              `json:"epic,omitempty"`
	Files       []string            `json:"files"`
}

var createdAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// CreatedTime parses CreatedAt. The returned time keeps the offset written in
// the timestamp.
func (x *Subcommit) CreatedTime() (time.Time, bool) {
	if x.CreatedAt == "" {
		return time.Time{}, false
	}
	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, x.CreatedAt); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Day returns the YYYY-MM-DD bucket key of the subcommit, or types.UnknownDay.
func (x *Subcommit) Day() string {
	t, ok := x.CreatedTime()
	if !ok {
		return types.UnknownDay
	}
	return t.Format(time.DateOnly)
}

func (x *Subcommit) ShortSHA() string {
	if len(x.CommitSHA) <= 7 {
		return x.CommitSHA
	}
	return x.CommitSHA[:7]
}

// CommitURL links the owning commit on the repository host. Empty when the
// repository URL is not known yet.
func (x *Subcommit) CommitURL(repoURL string) string {
	if repoURL == "" || x.CommitSHA == "" {
		return ""
	}
	for len(repoURL) > 0 && repoURL[len(repoURL)-1] == '/' {
		repoURL = repoURL[:len(repoURL)-1]
	}
	return repoURL + "/commit/" + x.CommitSHA
}
