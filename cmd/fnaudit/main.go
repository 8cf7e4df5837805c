package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/linecard/fnaudit/cmd/cli"
	"github.com/linecard/fnaudit/internal/tracing"
	"github.com/linecard/fnaudit/internal/util"
	"github.com/linecard/fnaudit/pkg/convention/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	util.SetLogLevel()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).With().Caller().Logger()

	ctx := context.Background()

	shutdown, err := tracing.InitOtel(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize tracing")
	}

	err = cli.Invoke(ctx, os.Args[1:], os.Stdout)
	shutdown()

	switch {
	case err == nil:
		return
	case errors.Is(err, config.ErrMissingToken):
		fmt.Fprintln(os.Stderr, err)
	default:
		log.Error().Err(err).Strs("argv", os.Args).Msg("failed command")
	}

	os.Exit(1)
}
