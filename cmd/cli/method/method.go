package method

import (
	"context"
	"fmt"
	"io"

	"github.com/linecard/fnaudit/cmd/cli/param"
	"github.com/linecard/fnaudit/cmd/cli/view"
	"github.com/linecard/fnaudit/pkg/convention/report"
	"github.com/linecard/fnaudit/pkg/sdk"

	"github.com/rs/zerolog/log"
)

func ListFunctions(ctx context.Context, w io.Writer, api sdk.API, g param.GlobalOpts, p *param.Functions) error {
	functions, err := api.Inventory.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list functions: %w", err)
	}

	if g.Json {
		return printJson(w, functions)
	}

	_, err = fmt.Fprint(w, view.Functions(functions))
	return err
}

func ListVersions(ctx context.Context, w io.Writer, api sdk.API, g param.GlobalOpts, p *param.Versions) error {
	versions := api.Version.Fetch(ctx, api.Config.GitHub.Repositories)

	if g.Json {
		return printJson(w, versions)
	}

	_, err := fmt.Fprint(w, view.Versions(versions))
	return err
}

func PrintReport(ctx context.Context, w io.Writer, api sdk.API, g param.GlobalOpts, p *param.Report) error {
	functions, err := api.Inventory.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list functions: %w", err)
	}

	versions := api.Version.Fetch(ctx, api.Config.GitHub.Repositories)
	matches := report.Join(functions, versions)

	if g.Json {
		return printJson(w, matches)
	}

	if !p.NoAccount {
		if caller, err := api.Account.Caller(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to get caller identity")
		} else {
			fmt.Fprint(w, view.Caller(caller))
		}
	}

	_, err = fmt.Fprint(w, view.Report(matches))
	return err
}

func PrintConfig(ctx context.Context, w io.Writer, api sdk.API, p *param.Config) error {
	cJson, err := api.Config.Json(ctx)
	if err != nil {
		return fmt.Errorf("failed to print configuration: %w", err)
	}

	_, err = fmt.Fprintln(w, cJson)
	return err
}

func printJson(w io.Writer, v any) error {
	j, err := view.Json(v)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, j)
	return err
}
