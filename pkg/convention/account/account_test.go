package account

import (
	"context"
	"fmt"
	"testing"

	clientmock "github.com/linecard/fnaudit/pkg/mock/client"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/stretchr/testify/assert"
)

func TestCaller(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		setup func(*clientmock.MockSTSClient)
		test  func(*testing.T, *clientmock.MockSTSClient)
	}{
		{
			name: "caller identity is returned with region",
			setup: func(msc *clientmock.MockSTSClient) {
				msc.On("GetCallerIdentity", ctx, &sts.GetCallerIdentityInput{}).Return(&sts.GetCallerIdentityOutput{
					Account: aws.String("123456789012"),
					Arn:     aws.String("arn:aws:sts::123456789012:assumed-role/auditor/session"),
				}, nil)
			},
			test: func(t *testing.T, msc *clientmock.MockSTSClient) {
				got, err := FromClients(msc, "us-west-2").Caller(ctx)
				assert.NoError(t, err)
				assert.Equal(t, Caller{
					Account: "123456789012",
					Arn:     "arn:aws:sts::123456789012:assumed-role/auditor/session",
					Region:  "us-west-2",
				}, got)
			},
		},
		{
			name: "sts errors are returned",
			setup: func(msc *clientmock.MockSTSClient) {
				msc.On("GetCallerIdentity", ctx, &sts.GetCallerIdentityInput{}).Return((*sts.GetCallerIdentityOutput)(nil), fmt.Errorf("ExpiredToken"))
			},
			test: func(t *testing.T, msc *clientmock.MockSTSClient) {
				got, err := FromClients(msc, "us-west-2").Caller(ctx)
				assert.Error(t, err)
				assert.Equal(t, Caller{}, got)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msc := &clientmock.MockSTSClient{}

			if tc.setup != nil {
				tc.setup(msc)
			}

			tc.test(t, msc)
		})
	}
}
