package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/go-github/v62/github"
)

type ContentsClient interface {
	GetContents(ctx context.Context, owner, repo, path string, opts *github.RepositoryContentGetOptions) (fileContent *github.RepositoryContent, directoryContent []*github.RepositoryContent, resp *github.Response, err error)
}

type Client struct {
	Contents ContentsClient
}

type Service struct {
	Client Client
}

var (
	ErrContentNotFound = errors.New("content not found")
	ErrEmptyContent    = errors.New("decoded content is empty")
)

func FromClients(contentsClient ContentsClient) Service {
	return Service{
		Client: Client{
			Contents: contentsClient,
		},
	}
}

// Fetch returns the decoded text of path on the repository's default branch.
func (s Service) Fetch(ctx context.Context, owner, repo, path string) (string, error) {
	file, listing, _, err := s.Client.Contents.GetContents(ctx, owner, repo, path, nil)
	if err != nil {
		return "", fmt.Errorf("failed to get %s content: %w", path, err)
	}

	item := file
	if item == nil && len(listing) > 0 {
		item = listing[0]
	}

	if item == nil {
		return "", fmt.Errorf("%s: %w", path, ErrContentNotFound)
	}

	content, err := item.GetContent()
	if err != nil {
		return "", fmt.Errorf("failed to decode %s content: %w", path, err)
	}

	if content == "" {
		return "", fmt.Errorf("%s: %w", path, ErrEmptyContent)
	}

	return content, nil
}
