package account

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

type STSClient interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

type Caller struct {
	Account string `json:"account"`
	Arn     string `json:"arn"`
	Region  string `json:"region,omitempty"`
}

type Convention struct {
	Client STSClient
	Region string
}

func FromClients(stsClient STSClient, region string) Convention {
	return Convention{
		Client: stsClient,
		Region: region,
	}
}

func (c Convention) Caller(ctx context.Context) (Caller, error) {
	identity, err := c.Client.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return Caller{}, err
	}

	return Caller{
		Account: aws.ToString(identity.Account),
		Arn:     aws.ToString(identity.Arn),
		Region:  c.Region,
	}, nil
}
