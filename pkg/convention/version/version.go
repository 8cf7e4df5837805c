package version

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/linecard/fnaudit/pkg/convention/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

const Field = "version"

var ErrNoVersion = errors.New("no " + Field + " field")

type RepositoryService interface {
	Fetch(ctx context.Context, owner, repo, path string) (string, error)
}

type Convention struct {
	Config  config.Config
	Service RepositoryService
	Log     zerolog.Logger
}

func FromServices(c config.Config, r RepositoryService) Convention {
	return Convention{
		Config:  c,
		Service: r,
		Log:     log.Logger,
	}
}

// Fetch maps each repository to the version field of its manifest. Repositories are
// visited in order, one at a time. A repository that cannot be fetched, decoded,
// parsed, or has no version is logged and left out, so Fetch itself never fails.
func (c Convention) Fetch(ctx context.Context, repositories []string) map[string]any {
	ctx, span := otel.Tracer("").Start(ctx, "version.Fetch")
	defer span.End()

	versions := make(map[string]any, len(repositories))

	for _, repo := range repositories {
		v, err := c.Version(ctx, repo)
		if err != nil {
			c.Log.Warn().
				Err(err).
				Str("owner", c.Config.GitHub.Owner).
				Str("repository", repo).
				Msgf("failed to get %s version", c.Config.GitHub.ManifestPath)
			continue
		}

		versions[repo] = v
	}

	span.SetAttributes(
		attribute.Int("repositories", len(repositories)),
		attribute.Int("versions", len(versions)),
	)

	return versions
}

// Version returns the raw JSON value of the manifest's version field.
func (c Convention) Version(ctx context.Context, repo string) (any, error) {
	manifest, err := c.Manifest(ctx, repo)
	if err != nil {
		return nil, err
	}

	v, ok := manifest[Field]
	if !ok {
		return nil, ErrNoVersion
	}

	return v, nil
}

func (c Convention) Manifest(ctx context.Context, repo string) (map[string]any, error) {
	content, err := c.Service.Fetch(ctx, c.Config.GitHub.Owner, repo, c.Config.GitHub.ManifestPath)
	if err != nil {
		return nil, err
	}

	var manifest map[string]any
	if err := json.Unmarshal([]byte(content), &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", c.Config.GitHub.ManifestPath, err)
	}

	if manifest == nil {
		return nil, fmt.Errorf("%s is not a JSON object", c.Config.GitHub.ManifestPath)
	}

	return manifest, nil
}
