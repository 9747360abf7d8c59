package main

import (
	"fmt"
	"strings"

	"github.com/elC0mpa/tag-doctor/model"
	"github.com/spf13/viper"
)

// Config holds environment-based configuration for all cloud providers
type Config struct {
	// AWS configuration
	AWSRegion  string
	AWSProfile string
	CostTag    string

	// GCP configuration
	GCPProjectID string

	// Azure configuration
	AzureSubscriptionID string

	LogLevel string
}

// LoadConfig reads TAGDOCTOR_* variables, each falling back to the
// provider's own variable, plus the optional file named by TAGDOCTOR_CONFIG
func LoadConfig(v *viper.Viper) (*Config, error) {
	v.SetEnvPrefix("TAGDOCTOR")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("region", "TAGDOCTOR_REGION", "AWS_REGION")
	_ = v.BindEnv("profile", "TAGDOCTOR_PROFILE", "AWS_PROFILE")
	_ = v.BindEnv("project", "TAGDOCTOR_PROJECT", "GOOGLE_CLOUD_PROJECT", "GCP_PROJECT_ID")
	_ = v.BindEnv("subscription", "TAGDOCTOR_SUBSCRIPTION", "AZURE_SUBSCRIPTION_ID")

	v.SetDefault("region", "us-east-1")
	v.SetDefault("tag", "Environment")
	v.SetDefault("log_level", "info")

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return &Config{
		AWSRegion:           v.GetString("region"),
		AWSProfile:          v.GetString("profile"),
		CostTag:             v.GetString("tag"),
		GCPProjectID:        v.GetString("project"),
		AzureSubscriptionID: v.GetString("subscription"),
		LogLevel:            v.GetString("log_level"),
	}, nil
}

// Defaults returns the flags every tool starts from
func (c *Config) Defaults() model.Flags {
	return model.Flags{
		Source:       model.ProviderSynthetic,
		Count:        50,
		Hours:        730,
		CostTag:      c.CostTag,
		Region:       c.AWSRegion,
		Profile:      c.AWSProfile,
		Project:      c.GCPProjectID,
		Subscription: c.AzureSubscriptionID,
	}
}
