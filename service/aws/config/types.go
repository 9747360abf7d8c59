package awsconfig

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
)

const (
	defaultRegion = "us-east-1"
	// Cost Explorer and DescribeTags throttle aggressively on large accounts
	maxRetryAttempts = 6
)

type service struct {
	defaultRegion string
}

type ConfigService interface {
	GetAWSCfg(ctx context.Context, region, profile string) (aws.Config, error)
}
