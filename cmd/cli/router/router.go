package router

import (
	"context"
	"errors"
	"io"

	"github.com/linecard/fnaudit/cmd/cli/method"
	"github.com/linecard/fnaudit/cmd/cli/param"
	"github.com/linecard/fnaudit/pkg/sdk"
)

var ErrNoCommand = errors.New("no command given")

type Root struct {
	param.GlobalOpts
	Functions *param.Functions `arg:"subcommand:functions" help:"List deployed functions with environment variables"`
	Versions  *param.Versions  `arg:"subcommand:versions" help:"List package.json versions of the configured repositories"`
	Report    *param.Report    `arg:"subcommand:report" help:"Join functions with repository versions"`
	Config    *param.Config    `arg:"subcommand:config" help:"Print configuration"`
}

func (Root) Description() string {
	return "fnaudit reports deployed Lambda functions and the package.json versions they were built from\n"
}

func (c Root) Route(ctx context.Context, w io.Writer, api sdk.API) error {
	switch {
	case c.Functions != nil:
		return method.ListFunctions(ctx, w, api, c.GlobalOpts, c.Functions)

	case c.Versions != nil:
		return method.ListVersions(ctx, w, api, c.GlobalOpts, c.Versions)

	case c.Report != nil:
		return method.PrintReport(ctx, w, api, c.GlobalOpts, c.Report)

	case c.Config != nil:
		return method.PrintConfig(ctx, w, api, c.Config)

	default:
		return ErrNoCommand
	}
}
