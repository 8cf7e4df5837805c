package mocks

import (
	"context"
	"encoding/base64"

	"github.com/google/go-github/v62/github"
	"github.com/stretchr/testify/mock"
)

type MockContentsClient struct {
	mock.Mock
}

func (m *MockContentsClient) GetContents(ctx context.Context, owner, repo, path string, opts *github.RepositoryContentGetOptions) (*github.RepositoryContent, []*github.RepositoryContent, *github.Response, error) {
	args := m.Called(ctx, owner, repo, path, opts)
	return args.Get(0).(*github.RepositoryContent), args.Get(1).([]*github.RepositoryContent), args.Get(2).(*github.Response), args.Error(3)
}

// Mock Responses

// MockFileContent encodes body the way the contents API does, base64 with line breaks.
func MockFileContent(path, body string) *github.RepositoryContent {
	encoded := base64.StdEncoding.EncodeToString([]byte(body))

	var wrapped string
	for len(encoded) > 60 {
		wrapped += encoded[:60] + "\n"
		encoded = encoded[60:]
	}
	wrapped += encoded + "\n"

	return &github.RepositoryContent{
		Type:     github.String("file"),
		Name:     github.String(path),
		Path:     github.String(path),
		Encoding: github.String("base64"),
		Content:  github.String(wrapped),
	}
}
