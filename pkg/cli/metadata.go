package cli

import (
	"net/url"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/m-mizutani/chronocode/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// DetectOriginURL returns the web URL of the origin remote of the git
// repository at dir (or one of its parents).
func DetectOriginURL(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", goerr.Wrap(err, "failed to open git repository", goerr.V("dir", dir))
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		return "", goerr.Wrap(err, "failed to get remote origin")
	}

	if len(remote.Config().URLs) == 0 {
		return "", goerr.New("no remote URL found")
	}

	return RemoteToWebURL(remote.Config().URLs[0])
}

// RemoteToWebURL converts a git remote URL (scp-like SSH, ssh:// or https://)
// into the https URL of the repository page.
func RemoteToWebURL(remote string) (string, error) {
	remote = strings.TrimSpace(remote)

	var host, path string
	switch {
	case strings.HasPrefix(remote, "git@"):
		// git@github.com:owner/repo.git
		hostPath := strings.TrimPrefix(remote, "git@")
		parts := strings.SplitN(hostPath, ":", 2)
		if len(parts) == 2 {
			host, path = parts[0], parts[1]
		}

	case strings.Contains(remote, "://"):
		u, err := url.Parse(remote)
		if err != nil {
			return "", goerr.Wrap(err, "failed to parse git remote URL", goerr.V("url", remote))
		}
		host, path = u.Hostname(), u.Path
	}

	path = strings.TrimSuffix(strings.Trim(path, "/"), ".git")
	if host == "" || len(strings.Split(path, "/")) < 2 {
		return "", goerr.Wrap(types.ErrValidationFailed, "failed to parse owner/repo from git remote URL", goerr.V("url", remote))
	}

	return "https://" + host + "/" + path, nil
}
