package main

import (
	"fmt"
	"os"

	"github.com/elC0mpa/tag-doctor/cmd/mcp/tools"
	"github.com/elC0mpa/tag-doctor/service/policy"
	"github.com/elC0mpa/tag-doctor/service/provider"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

func main() {
	v := viper.New()
	cfg, err := LoadConfig(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// stdout carries the protocol, so logs go to stderr
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Str("component", "mcp").Logger()
	zerolog.DefaultContextLogger = &logger

	s := server.NewMCPServer(
		"tag-doctor-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	providers := provider.NewService()
	policyService := policy.NewService(v)
	defaults := cfg.Defaults()

	tools.RegisterAuditTools(s, providers, policyService, defaults)
	tools.RegisterCostModelTools(s, defaults)
	tools.RegisterAzureTools(s, providers, defaults)
	tools.RegisterAWSTools(s, providers, defaults)
	tools.RegisterGCPTools(s, providers, defaults)
	tools.RegisterMultiCloudTools(s, providers, policyService, defaults)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
