package repository

import (
	"context"
	"fmt"
	"testing"

	clientmock "github.com/linecard/fnaudit/pkg/mock/client"

	"github.com/google/go-github/v62/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestFetch(t *testing.T) {
	ctx := context.Background()

	noListing := ([]*github.RepositoryContent)(nil)
	noResponse := (*github.Response)(nil)
	noFile := (*github.RepositoryContent)(nil)

	tests := []struct {
		name  string
		setup func(*clientmock.MockContentsClient)
		test  func(*testing.T, *clientmock.MockContentsClient)
	}{
		{
			name: "file content is decoded from base64",
			setup: func(mcc *clientmock.MockContentsClient) {
				mcc.On("GetContents", mock.Anything, "Mikeysauce", "scraper", "package.json", mock.Anything).
					Return(clientmock.MockFileContent("package.json", `{"name":"scraper","version":"1.2.0"}`), noListing, noResponse, nil)
			},
			test: func(t *testing.T, mcc *clientmock.MockContentsClient) {
				got, err := FromClients(mcc).Fetch(ctx, "Mikeysauce", "scraper", "package.json")
				assert.NoError(t, err)
				assert.Equal(t, `{"name":"scraper","version":"1.2.0"}`, got)
			},
		},
		{
			name: "first listed item is used when no file is returned",
			setup: func(mcc *clientmock.MockContentsClient) {
				listing := []*github.RepositoryContent{
					clientmock.MockFileContent("package.json", `{"version":"0.1.0"}`),
					clientmock.MockFileContent("package.json", `{"version":"9.9.9"}`),
				}
				mcc.On("GetContents", mock.Anything, "Mikeysauce", "Scotski", "package.json", mock.Anything).
					Return(noFile, listing, noResponse, nil)
			},
			test: func(t *testing.T, mcc *clientmock.MockContentsClient) {
				got, err := FromClients(mcc).Fetch(ctx, "Mikeysauce", "Scotski", "package.json")
				assert.NoError(t, err)
				assert.Equal(t, `{"version":"0.1.0"}`, got)
			},
		},
		{
			name: "transport errors are wrapped",
			setup: func(mcc *clientmock.MockContentsClient) {
				mcc.On("GetContents", mock.Anything, "Mikeysauce", "movies-front", "package.json", mock.Anything).
					Return(noFile, noListing, noResponse, fmt.Errorf("404 Not Found"))
			},
			test: func(t *testing.T, mcc *clientmock.MockContentsClient) {
				_, err := FromClients(mcc).Fetch(ctx, "Mikeysauce", "movies-front", "package.json")
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "404 Not Found")
			},
		},
		{
			name: "no content items",
			setup: func(mcc *clientmock.MockContentsClient) {
				mcc.On("GetContents", mock.Anything, "Mikeysauce", "standen-node", "package.json", mock.Anything).
					Return(noFile, []*github.RepositoryContent{}, noResponse, nil)
			},
			test: func(t *testing.T, mcc *clientmock.MockContentsClient) {
				_, err := FromClients(mcc).Fetch(ctx, "Mikeysauce", "standen-node", "package.json")
				assert.ErrorIs(t, err, ErrContentNotFound)
			},
		},
		{
			name: "unsupported encoding fails to decode",
			setup: func(mcc *clientmock.MockContentsClient) {
				mcc.On("GetContents", mock.Anything, "Mikeysauce", "now-github-starter", "package.json", mock.Anything).
					Return(&github.RepositoryContent{Encoding: github.String("none")}, noListing, noResponse, nil)
			},
			test: func(t *testing.T, mcc *clientmock.MockContentsClient) {
				_, err := FromClients(mcc).Fetch(ctx, "Mikeysauce", "now-github-starter", "package.json")
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "failed to decode")
			},
		},
		{
			name: "empty decoded content",
			setup: func(mcc *clientmock.MockContentsClient) {
				mcc.On("GetContents", mock.Anything, "Mikeysauce", "now-github-starter", "package.json", mock.Anything).
					Return(clientmock.MockFileContent("package.json", ""), noListing, noResponse, nil)
			},
			test: func(t *testing.T, mcc *clientmock.MockContentsClient) {
				_, err := FromClients(mcc).Fetch(ctx, "Mikeysauce", "now-github-starter", "package.json")
				assert.ErrorIs(t, err, ErrEmptyContent)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mcc := &clientmock.MockContentsClient{}

			if tc.setup != nil {
				tc.setup(mcc)
			}

			tc.test(t, mcc)

			mcc.AssertExpectations(t)
		})
	}
}
