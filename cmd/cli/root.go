package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/linecard/fnaudit/cmd/cli/router"
	"github.com/linecard/fnaudit/internal/util"
	"github.com/linecard/fnaudit/pkg/convention/config"
	"github.com/linecard/fnaudit/pkg/sdk"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/rs/zerolog/log"
)

// Invoke parses args, resolves configuration and runs the selected command.
// It never exits the process, errors are returned to the caller.
func Invoke(ctx context.Context, args []string, stdout io.Writer) (err error) {
	ctx, span := otel.Tracer("").Start(ctx, "fnaudit")
	defer func() {
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	var root router.Root

	parser, err := arg.NewParser(arg.Config{Program: "fnaudit"}, &root)
	if err != nil {
		return err
	}

	if err := parser.Parse(args); err != nil {
		if errors.Is(err, arg.ErrHelp) {
			parser.WriteHelp(stdout)
			return nil
		}

		parser.WriteUsage(os.Stderr)
		return err
	}

	if parser.Subcommand() == nil {
		parser.WriteHelp(stdout)
		return nil
	}

	cfg, err := config.Load(config.Overrides{
		Owner:        root.Owner,
		Repositories: root.Repos,
		Concurrency:  root.Concurrency,
	})
	if err != nil {
		return err
	}

	retryLogger := util.RetryLogger{
		Log: &log.Logger,
	}

	awsConfig, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithLogger(&retryLogger),
		awsconfig.WithClientLogMode(aws.LogRetries))
	if err != nil {
		return fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	api, err := sdk.Init(ctx, awsConfig, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize SDK: %w", err)
	}

	return root.Route(ctx, stdout, api)
}
