package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/rs/zerolog/log"

	"github.com/tgagor/snapcraft-build/pkg/util"
)

const defaultServerURL = "https://github.com"

// CI carries the identifiers the hosting pipeline exposes about the current
// run. They are read once and handed to the builder explicitly.
type CI struct {
	ServerURL  string
	Repository string
	RunID      string
	Workspace  string
}

// FromEnv reads the GitHub Actions run identifiers.
func FromEnv() CI {
	ci := CI{
		ServerURL:  os.Getenv("GITHUB_SERVER_URL"),
		Repository: os.Getenv("GITHUB_REPOSITORY"),
		RunID:      os.Getenv("GITHUB_RUN_ID"),
		Workspace:  os.Getenv("GITHUB_WORKSPACE"),
	}
	if ci.ServerURL == "" {
		ci.ServerURL = defaultServerURL
	}
	return ci
}

// WithGitFallback fills in a missing repository slug from the origin remote
// of the git repository containing dir.
func (c CI) WithGitFallback(dir string) CI {
	if c.Repository != "" {
		return c
	}
	origin, err := readOrigin(dir)
	if err != nil {
		util.WarnOnError(err, "Skipping git metadata")
		return c
	}
	if slug := RepositorySlug(origin); slug != "" {
		log.Debug().Str("origin", origin).Str("repository", slug).Msg("Using repository from git remote")
		c.Repository = slug
	}
	return c
}

// BuildURL links to the pipeline run that produced the build.
func (c CI) BuildURL() string {
	server := strings.TrimSuffix(c.ServerURL, "/")
	if server == "" {
		server = defaultServerURL
	}
	return fmt.Sprintf("%s/%s/actions/runs/%s", server, c.Repository, c.RunID)
}

func readOrigin(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return "", nil
		}
		return "", fmt.Errorf("failed to open repository: %w", err)
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		if errors.Is(err, git.ErrRemoteNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read origin remote: %w", err)
	}
	if urls := remote.Config().URLs; len(urls) > 0 {
		return urls[0], nil
	}
	return "", nil
}

// RepositorySlug extracts "owner/name" from a git remote URL in SSH, scp-like
// or HTTPS form. It returns "" when no slug can be found.
func RepositorySlug(remoteURL string) string {
	u := strings.TrimSpace(remoteURL)
	if u == "" {
		return ""
	}
	ep, err := transport.NewEndpoint(u)
	if err != nil || ep.Protocol == "file" {
		return ""
	}

	path := strings.TrimSuffix(strings.Trim(ep.Path, "/"), ".git")
	parts := strings.Split(path, "/")
	if len(parts) < 2 || parts[len(parts)-2] == "" || parts[len(parts)-1] == "" {
		return ""
	}
	return parts[len(parts)-2] + "/" + parts[len(parts)-1]
}
