package awsconfig

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
)

func NewService() *service {
	return &service{defaultRegion: defaultRegion}
}

// GetAWSCfg loads the default credential chain. An empty region falls back
// to us-east-1 and an empty profile leaves profile selection to the SDK.
func (s *service) GetAWSCfg(ctx context.Context, region, profile string) (aws.Config, error) {
	if region == "" {
		region = s.defaultRegion
	}

	opts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
		config.WithRetryMaxAttempts(maxRetryAttempts),
	}
	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return cfg, nil
}
