package mocks

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"github.com/stretchr/testify/mock"
)

type MockLambdaClient struct {
	mock.Mock
}

func (m *MockLambdaClient) ListFunctions(ctx context.Context, params *lambda.ListFunctionsInput, optFns ...func(*lambda.Options)) (*lambda.ListFunctionsOutput, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(*lambda.ListFunctionsOutput), args.Error(1)
}

// Mock Responses

func PageMarker(page int) *string {
	if page <= 1 {
		return nil
	}
	return aws.String(fmt.Sprintf("marker-%d", page))
}

// MockListFunctionsPages expects exactly one ListFunctions call per page, chained by marker.
func MockListFunctionsPages(m *MockLambdaClient, pages ...[]types.FunctionConfiguration) {
	for i, functions := range pages {
		page := i + 1

		output := &lambda.ListFunctionsOutput{Functions: functions}
		if page < len(pages) {
			output.NextMarker = PageMarker(page + 1)
		}

		m.On("ListFunctions", mock.Anything, &lambda.ListFunctionsInput{Marker: PageMarker(page)}).Return(output, nil).Once()
	}
}

// MockListFunctionsFailure expects the given page request to fail after the preceding pages succeed.
func MockListFunctionsFailure(m *MockLambdaClient, err error, pages ...[]types.FunctionConfiguration) {
	for i, functions := range pages {
		page := i + 1
		m.On("ListFunctions", mock.Anything, &lambda.ListFunctionsInput{Marker: PageMarker(page)}).Return(&lambda.ListFunctionsOutput{
			Functions:  functions,
			NextMarker: PageMarker(page + 1),
		}, nil).Once()
	}

	m.On("ListFunctions", mock.Anything, &lambda.ListFunctionsInput{Marker: PageMarker(len(pages) + 1)}).Return((*lambda.ListFunctionsOutput)(nil), err).Once()
}

func MockFunctionConfiguration(name string, env map[string]string) types.FunctionConfiguration {
	configuration := types.FunctionConfiguration{
		FunctionName: aws.String(name),
		FunctionArn:  aws.String("arn:aws:lambda:us-west-2:123456789012:function:" + name),
		Runtime:      types.RuntimeNodejs20x,
		LastModified: aws.String("2024-05-01T12:00:00.000+0000"),
	}

	if env != nil {
		configuration.Environment = &types.EnvironmentResponse{Variables: env}
	}

	return configuration
}
