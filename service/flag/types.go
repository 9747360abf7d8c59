package flag

import (
	"context"
	"errors"
	"fmt"

	"github.com/elC0mpa/tag-doctor/model"
	"github.com/spf13/cobra"
)

const envPrefix = "TAGDOCTOR"

var (
	ErrInvalidSource   = errors.New("invalid source (want synthetic, azure, aws, gcp or all)")
	ErrInvalidProvider = errors.New("invalid provider (want azure or aws)")
	ErrInvalidCount    = fmt.Errorf("count must be between 0 and %d", model.MaxCount)
	ErrInvalidHours    = errors.New("hours must be positive")
)

// RunFunc executes a workflow once flags and configuration are resolved
type RunFunc func(ctx context.Context, flags model.Flags) error

type FlagService interface {
	NewRootCommand(run RunFunc) *cobra.Command
	GetParsedFlags(workflow model.Workflow) (model.Flags, error)
}
