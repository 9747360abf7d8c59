package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/elC0mpa/tag-doctor/model"
	"github.com/elC0mpa/tag-doctor/service/flag"
	"github.com/elC0mpa/tag-doctor/service/orchestrator"
	"github.com/elC0mpa/tag-doctor/service/policy"
	"github.com/elC0mpa/tag-doctor/service/provider"
	"github.com/elC0mpa/tag-doctor/utils"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

func main() {
	v := viper.New()
	flagService := flag.NewService(v)

	root := flagService.NewRootCommand(func(ctx context.Context, flags model.Flags) error {
		logger := newLogger(flags.LogLevel)
		ctx = logger.WithContext(ctx)

		if !flags.JSON {
			utils.DrawBanner(os.Stdout)
		}
		if isLive(flags) {
			utils.StartSpinner("Fetching cloud data...")
			defer utils.StopSpinner()
		}

		orchestratorService := orchestrator.NewService(provider.NewService(), policy.NewService(v), os.Stdout)
		return orchestratorService.Orchestrate(ctx, flags)
	})

	if err := root.ExecuteContext(context.Background()); err != nil {
		utils.StopSpinner()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

// isLive reports whether the workflow calls a cloud API
func isLive(flags model.Flags) bool {
	switch flags.Workflow {
	case model.WorkflowActual:
		return true
	case model.WorkflowAudit:
		return flags.Source != model.ProviderSynthetic
	}
	return false
}
