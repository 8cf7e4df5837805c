package function

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"github.com/aws/smithy-go"
)

type LambdaClient interface {
	ListFunctions(ctx context.Context, params *lambda.ListFunctionsInput, optFns ...func(*lambda.Options)) (*lambda.ListFunctionsOutput, error)
}

type Clients struct {
	Lambda LambdaClient
}

type Service struct {
	Client Clients
}

func FromClients(lambdaClient LambdaClient) Service {
	return Service{
		Client: Clients{
			Lambda: lambdaClient,
		},
	}
}

// ListError reports the page on which ListFunctions failed.
type ListError struct {
	Page int
	Err  error
}

func (e *ListError) Error() string {
	return fmt.Sprintf("failed to list functions on page %d: %v", e.Page, e.Err)
}

func (e *ListError) Unwrap() error {
	return e.Err
}

// Code returns the provider error code, or "" when the failure was not an API error.
func (e *ListError) Code() string {
	var apiErr smithy.APIError
	if errors.As(e.Err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}

// PageFunc receives each page of function configurations, numbered from 1.
type PageFunc func(page int, functions []types.FunctionConfiguration) error

// Paginate requests pages in order, each with the previous page's marker, until a page has no NextMarker.
// A provider error stops pagination and is returned as a *ListError.
func (s Service) Paginate(ctx context.Context, fn PageFunc) error {
	paginator := lambda.NewListFunctionsPaginator(s.Client.Lambda, &lambda.ListFunctionsInput{})

	for page := 1; paginator.HasMorePages(); page++ {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return &ListError{Page: page, Err: err}
		}

		if err := fn(page, output.Functions); err != nil {
			return err
		}
	}

	return nil
}
