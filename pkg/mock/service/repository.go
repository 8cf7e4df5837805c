package mock

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"
)

// MockRepositoryService is a mock of RepositoryService interface
type MockRepositoryService struct {
	mock.Mock
}

func (m *MockRepositoryService) Fetch(ctx context.Context, owner, repo, path string) (string, error) {
	args := m.Called(ctx, owner, repo, path)
	return args.String(0), args.Error(1)
}

// Mock Responses

func MockPackageJson(name, version string) string {
	manifest := map[string]any{
		"name":    name,
		"version": version,
		"scripts": map[string]string{"start": "node index.js"},
	}

	j, err := json.Marshal(manifest)
	if err != nil {
		panic(err)
	}

	return string(j)
}
