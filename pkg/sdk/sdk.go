package sdk

import (
	"context"

	// config
	"github.com/linecard/fnaudit/pkg/convention/config"

	// services
	"github.com/linecard/fnaudit/pkg/service/function"
	"github.com/linecard/fnaudit/pkg/service/repository"

	// conventions
	"github.com/linecard/fnaudit/pkg/convention/account"
	"github.com/linecard/fnaudit/pkg/convention/inventory"
	"github.com/linecard/fnaudit/pkg/convention/version"

	// clients
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"
)

type Clients struct {
	StsClient    *sts.Client
	LambdaClient *lambda.Client
	GitHubClient *github.Client
}

type Services struct {
	Function   function.Service
	Repository repository.Service
}

type Conventions struct {
	Account   account.Convention
	Inventory inventory.Convention
	Version   version.Convention
}

type API struct {
	Conventions
	Config config.Config
}

func Init(ctx context.Context, awsConfig aws.Config, config config.Config) (API, error) {
	clients, err := InitClients(ctx, awsConfig, config)
	if err != nil {
		return API{}, err
	}

	services, err := InitServices(ctx, clients)
	if err != nil {
		return API{}, err
	}

	conventions, err := InitConventions(ctx, awsConfig, config, clients, services)
	if err != nil {
		return API{}, err
	}

	return API{
		Conventions: conventions,
		Config:      config,
	}, nil
}

func InitConventions(ctx context.Context, awsConfig aws.Config, config config.Config, clients Clients, services Services) (Conventions, error) {
	return Conventions{
		Account:   account.FromClients(clients.StsClient, awsConfig.Region),
		Inventory: inventory.FromServices(config, services.Function),
		Version:   version.FromServices(config, services.Repository),
	}, nil
}

func InitServices(ctx context.Context, clients Clients) (Services, error) {
	return Services{
		Function:   function.FromClients(clients.LambdaClient),
		Repository: repository.FromClients(clients.GitHubClient.Repositories),
	}, nil
}

func InitClients(ctx context.Context, awsConfig aws.Config, config config.Config) (Clients, error) {
	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: config.GitHub.Token()})

	return Clients{
		StsClient:    sts.NewFromConfig(awsConfig),
		LambdaClient: lambda.NewFromConfig(awsConfig),
		GitHubClient: github.NewClient(oauth2.NewClient(ctx, tokenSource)),
	}, nil
}
