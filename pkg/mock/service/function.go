package mock

import (
	"context"

	"github.com/linecard/fnaudit/pkg/service/function"

	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"github.com/stretchr/testify/mock"
)

// MockFunctionService is a mock of FunctionService interface
type MockFunctionService struct {
	mock.Mock
}

// Paginate hands the returned pages to fn in order, then returns the configured error.
func (m *MockFunctionService) Paginate(ctx context.Context, fn function.PageFunc) error {
	args := m.Called(ctx)

	pages := args.Get(0).([][]types.FunctionConfiguration)
	for i, page := range pages {
		if err := fn(i+1, page); err != nil {
			return err
		}
	}

	return args.Error(1)
}
