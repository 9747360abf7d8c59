package flag

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/elC0mpa/tag-doctor/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type service struct {
	v *viper.Viper
}

// NewService resolves flags through v so that config file values and
// TAGDOCTOR_* environment variables apply when a flag is not given
func NewService(v *viper.Viper) *service {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	// fall back to each provider's own variables
	_ = v.BindEnv("subscription", envPrefix+"_SUBSCRIPTION", "AZURE_SUBSCRIPTION_ID")
	_ = v.BindEnv("region", envPrefix+"_REGION", "AWS_REGION")
	_ = v.BindEnv("profile", envPrefix+"_PROFILE", "AWS_PROFILE")
	_ = v.BindEnv("project", envPrefix+"_PROJECT", "GOOGLE_CLOUD_PROJECT")

	return &service{v: v}
}

func (s *service) NewRootCommand(run RunFunc) *cobra.Command {
	root := &cobra.Command{
		Use:           "tag-doctor",
		Short:         "Audit cloud resource tags and model Azure resource costs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := s.v.BindPFlags(cmd.Flags()); err != nil {
				return fmt.Errorf("failed to bind flags: %w", err)
			}
			if f := cmd.Flags().Lookup("ignore-case"); f != nil {
				if err := s.v.BindPFlag("ignore_case", f); err != nil {
					return fmt.Errorf("failed to bind flags: %w", err)
				}
			}
			return s.readConfig()
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "Path to a YAML config file (default ./tag-doctor.yaml if present)")
	pf.String("log-level", "info", "Log level (debug, info, warn, error)")
	pf.String("subscription", "", "Azure subscription ID")
	pf.String("region", "us-east-1", "AWS region")
	pf.String("profile", "", "AWS profile configuration")
	pf.String("project", "", "GCP project ID")

	root.AddCommand(
		s.newAuditCommand(run),
		s.newCostsCommand(run),
		s.newActualCommand(run),
		s.newPolicyCommand(run),
	)

	return root
}

func (s *service) newAuditCommand(run RunFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Score resources against the tagging policy",
		Args:  cobra.NoArgs,
		RunE:  s.runE(model.WorkflowAudit, run),
	}

	cmd.Flags().String("source", model.ProviderSynthetic, "Inventory source: synthetic, azure, aws, gcp or all")
	cmd.Flags().Int("count", 50, "Number of synthetic resources")
	cmd.Flags().Int64("seed", 0, "Seed for the synthetic generator (0 picks a random seed)")
	cmd.Flags().Bool("json", false, "Print the report as JSON")
	cmd.Flags().Bool("ignore-case", false, "Match tag names and values case-insensitively")

	return cmd
}

func (s *service) newCostsCommand(run RunFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "costs",
		Short: "Run the resource cost model and its optimisation plan",
		Args:  cobra.NoArgs,
		RunE:  s.runE(model.WorkflowCosts, run),
	}

	cmd.Flags().Float64("hours", 730, "Billable hours per month")
	cmd.Flags().String("csv", "azure_resource_inventory.csv", "Inventory CSV output path (empty to skip)")
	cmd.Flags().String("png", "azure_oop_resource_analysis.png", "Chart PNG output path (empty to skip)")

	return cmd
}

func (s *service) newActualCommand(run RunFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "actual",
		Short: "Show billed month-to-date costs per resource group or tag value",
		Args:  cobra.NoArgs,
		RunE:  s.runE(model.WorkflowActual, run),
	}

	cmd.Flags().String("provider", model.ProviderAzure, "Billing provider: azure (by resource group) or aws (by tag)")
	cmd.Flags().String("tag", "Environment", "Cost allocation tag to group AWS costs by")
	cmd.Flags().Bool("trend", false, "Display a trend report for the last 6 months")

	return cmd
}

func (s *service) newPolicyCommand(run RunFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "policy",
		Short: "Print the effective tagging policy as YAML",
		Args:  cobra.NoArgs,
		RunE:  s.runE(model.WorkflowPolicy, run),
	}
}

func (s *service) runE(workflow model.Workflow, run RunFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		flags, err := s.GetParsedFlags(workflow)
		if err != nil {
			return err
		}
		return run(cmd.Context(), flags)
	}
}

// readConfig loads --config, or ./tag-doctor.yaml when it exists
func (s *service) readConfig() error {
	if path := s.v.GetString("config"); path != "" {
		s.v.SetConfigFile(path)
		if err := s.v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		return nil
	}

	s.v.SetConfigName("tag-doctor")
	s.v.SetConfigType("yaml")
	s.v.AddConfigPath(".")
	if err := s.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

func (s *service) GetParsedFlags(workflow model.Workflow) (model.Flags, error) {
	flags := model.Flags{
		Workflow:     workflow,
		ConfigFile:   s.v.ConfigFileUsed(),
		LogLevel:     s.v.GetString("log-level"),
		JSON:         s.v.GetBool("json"),
		Source:       strings.ToLower(s.v.GetString("source")),
		Count:        s.v.GetInt("count"),
		Seed:         s.v.GetInt64("seed"),
		Hours:        s.v.GetFloat64("hours"),
		CSVPath:      s.v.GetString("csv"),
		PNGPath:      s.v.GetString("png"),
		Provider:     strings.ToLower(s.v.GetString("provider")),
		CostTag:      s.v.GetString("tag"),
		Trend:        s.v.GetBool("trend"),
		Region:       s.v.GetString("region"),
		Profile:      s.v.GetString("profile"),
		Project:      s.v.GetString("project"),
		Subscription: s.v.GetString("subscription"),
	}

	switch workflow {
	case model.WorkflowAudit:
		sources := []string{model.ProviderSynthetic, model.ProviderAzure, model.ProviderAWS, model.ProviderGCP, "all"}
		if !slices.Contains(sources, flags.Source) {
			return model.Flags{}, fmt.Errorf("%w: %q", ErrInvalidSource, flags.Source)
		}
		if flags.Count < 0 || flags.Count > model.MaxCount {
			return model.Flags{}, fmt.Errorf("%w: %d", ErrInvalidCount, flags.Count)
		}
	case model.WorkflowCosts:
		if flags.Hours <= 0 {
			return model.Flags{}, fmt.Errorf("%w: %v", ErrInvalidHours, flags.Hours)
		}
	case model.WorkflowActual:
		if flags.Provider != model.ProviderAzure && flags.Provider != model.ProviderAWS {
			return model.Flags{}, fmt.Errorf("%w: %q", ErrInvalidProvider, flags.Provider)
		}
	}

	return flags, nil
}
