package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/linecard/fnaudit/internal/gitlib"
	"github.com/rs/zerolog/log"
)

const (
	EnvToken       = "MY_TOKEN"
	EnvOwner       = "FNAUDIT_OWNER"
	EnvConcurrency = "FNAUDIT_CONCURRENCY"
)

const (
	DefaultOwner        = "Mikeysauce"
	DefaultManifestPath = "package.json"
	DefaultConcurrency  = 10
)

var ErrMissingToken = errors.New(EnvToken + " environment variable not set")

// DefaultRepositories is the repository list consulted when none is given.
func DefaultRepositories() []string {
	return []string{
		"Scotski",
		"scraper",
		"standen-node",
		"now-github-starter",
		"movies-front",
	}
}

// Overrides carries values given on the command line, zero values fall through to defaults.
type Overrides struct {
	Owner        string
	Repositories []string
	Concurrency  int
}

type GitHub struct {
	Owner        string
	Repositories []string
	ManifestPath string
	token        string
}

type Lister struct {
	Concurrency int
}

type Config struct {
	GitHub GitHub
	Lister Lister
}

// discoverOwner is swapped in tests so they never depend on the enclosing checkout.
var discoverOwner = func() (string, error) {
	here, err := gitlib.FromCwd()
	if err != nil {
		return "", err
	}

	return gitlib.GitHubOwner(here.Origin)
}

// Load resolves configuration from the environment and overrides.
// It fails before any network activity when the token is absent.
func Load(o Overrides) (Config, error) {
	token, ok := os.LookupEnv(EnvToken)
	if !ok || strings.TrimSpace(token) == "" {
		return Config{}, ErrMissingToken
	}

	if o.Concurrency < 0 {
		return Config{}, fmt.Errorf("concurrency must be positive, got %d", o.Concurrency)
	}

	cfg := Config{
		GitHub: GitHub{
			Owner:        o.Owner,
			Repositories: o.Repositories,
			ManifestPath: DefaultManifestPath,
			token:        token,
		},
		Lister: Lister{
			Concurrency: o.Concurrency,
		},
	}

	if cfg.GitHub.Owner == "" {
		cfg.GitHub.Owner = resolveOwner()
	}

	if len(cfg.GitHub.Repositories) == 0 {
		cfg.GitHub.Repositories = DefaultRepositories()
	}

	if cfg.Lister.Concurrency == 0 {
		cfg.Lister.Concurrency = DefaultConcurrency
	}

	return cfg, nil
}

func resolveOwner() string {
	owner, err := discoverOwner()
	if err != nil {
		log.Debug().Err(err).Str("default", DefaultOwner).Msg("could not discover owner from git origin")
		return DefaultOwner
	}

	return owner
}

func (g GitHub) Token() string {
	return g.token
}

func (c Config) Json(ctx context.Context) (string, error) {
	j, err := json.MarshalIndent(c, "", "  ")
	return string(j), err
}
