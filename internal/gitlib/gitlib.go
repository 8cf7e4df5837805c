package gitlib

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
)

type DotGit struct {
	Root   string
	Origin *url.URL
}

func FromCwd() (DotGit, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return DotGit{}, err
	}

	return FromPath(cwd)
}

func FromPath(path string) (found DotGit, err error) {
	root, repo, err := FindDotGit(path)
	if err != nil {
		return DotGit{}, err
	}

	if found.Origin, err = Origin(repo); err != nil {
		return DotGit{}, err
	}

	found.Root = root

	return found, nil
}

func FindDotGit(cwd string) (root string, repo *git.Repository, err error) {
	for {
		if _, err := os.Stat(filepath.Join(cwd, ".git")); err == nil {
			repo, err := git.PlainOpen(cwd)
			if err != nil {
				return "", nil, err
			}

			return cwd, repo, nil
		}

		parentDir := filepath.Dir(cwd)
		if parentDir == cwd {
			return cwd, nil, fmt.Errorf("this does not appear to be a git repository")
		}
		cwd = parentDir
	}
}

func Origin(repo *git.Repository) (*url.URL, error) {
	remote, err := repo.Remote("origin")
	if err != nil {
		return nil, err
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return nil, fmt.Errorf("no remote origin found")
	}

	if len(urls) > 1 {
		return nil, fmt.Errorf("multiple remote origins found")
	}

	return ParseRemote(urls[0])
}

// ParseRemote normalizes scp-style remotes (git@host:org/repo.git) to https before parsing.
func ParseRemote(remote string) (*url.URL, error) {
	if strings.HasPrefix(remote, "git@") {
		remote = strings.Replace(remote, ":", "/", 1)
		remote = strings.Replace(remote, "git@", "https://", 1)
	}

	return url.Parse(remote)
}

// GitHubOwner returns the organization or user segment of a github.com origin.
func GitHubOwner(origin *url.URL) (string, error) {
	if origin == nil {
		return "", fmt.Errorf("no origin given")
	}

	if !strings.EqualFold(origin.Hostname(), "github.com") {
		return "", fmt.Errorf("origin %s is not hosted on github.com", origin.Host)
	}

	owner, _, _ := strings.Cut(strings.Trim(origin.Path, "/"), "/")
	if owner == "" {
		return "", fmt.Errorf("origin %s has no owner segment", origin.String())
	}

	return owner, nil
}
