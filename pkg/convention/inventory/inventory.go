package inventory

import (
	"context"
	"maps"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"github.com/linecard/fnaudit/pkg/convention/config"
	"github.com/linecard/fnaudit/pkg/service/function"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"
)

type FunctionService interface {
	Paginate(ctx context.Context, fn function.PageFunc) error
}

// Function is a deployed function that has at least one environment variable.
type Function struct {
	Name         string            `json:"name"`
	Arn          string            `json:"arn"`
	Environment  map[string]string `json:"environment"`
	Runtime      string            `json:"runtime,omitempty"`
	LastModified string            `json:"lastModified,omitempty"`
}

type Convention struct {
	Config  config.Config
	Service FunctionService
}

func FromServices(c config.Config, f FunctionService) Convention {
	return Convention{
		Config:  c,
		Service: f,
	}
}

// HasEnvironment is the retention predicate: a function is kept only when it has
// at least one environment variable. Everything else is dropped without error.
func HasEnvironment(configuration types.FunctionConfiguration) bool {
	return configuration.Environment != nil && len(configuration.Environment.Variables) > 0
}

// FromConfiguration copies the environment so the record never aliases the SDK response.
func FromConfiguration(configuration types.FunctionConfiguration) Function {
	var environment map[string]string
	if configuration.Environment != nil {
		environment = maps.Clone(configuration.Environment.Variables)
	}

	return Function{
		Name:         aws.ToString(configuration.FunctionName),
		Arn:          aws.ToString(configuration.FunctionArn),
		Environment:  environment,
		Runtime:      string(configuration.Runtime),
		LastModified: aws.ToString(configuration.LastModified),
	}
}

func FromConfigurations(configurations []types.FunctionConfiguration) []Function {
	functions := []Function{}
	for _, configuration := range configurations {
		if HasEnvironment(configuration) {
			functions = append(functions, FromConfiguration(configuration))
		}
	}
	return functions
}

// List walks every page sequentially, converting pages with at most Lister.Concurrency
// conversions in flight. Results keep provider page order. Any page failure discards
// everything gathered so far.
func (c Convention) List(ctx context.Context) ([]Function, error) {
	ctx, span := otel.Tracer("").Start(ctx, "inventory.List")
	defer span.End()

	start := time.Now()

	var g errgroup.Group
	g.SetLimit(c.concurrency())

	// Each conversion owns exactly one slot, only this goroutine appends to slots.
	var slots []*[]Function

	err := c.Service.Paginate(ctx, func(page int, configurations []types.FunctionConfiguration) error {
		slot := new([]Function)
		slots = append(slots, slot)

		g.Go(func() error {
			*slot = FromConfigurations(configurations)
			return nil
		})

		log.Debug().Int("page", page).Int("functions", len(configurations)).Msg("dispatched page")
		return nil
	})

	if waitErr := g.Wait(); err == nil {
		err = waitErr
	}

	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	functions := []Function{}
	for _, slot := range slots {
		functions = append(functions, *slot...)
	}

	span.SetAttributes(
		attribute.Int("pages", len(slots)),
		attribute.Int("functions", len(functions)),
	)

	log.Info().Dur("elapsed", time.Since(start)).Int("functions", len(functions)).Msg("got functions")

	return functions, nil
}

func (c Convention) concurrency() int {
	if c.Config.Lister.Concurrency < 1 {
		return 1
	}
	return c.Config.Lister.Concurrency
}
