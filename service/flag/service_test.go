package flag

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/elC0mpa/tag-doctor/model"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (model.Flags, *viper.Viper, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	v := viper.New()
	var got model.Flags
	root := NewService(v).NewRootCommand(func(_ context.Context, flags model.Flags) error {
		got = flags
		return nil
	})
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return got, v, err
}

func TestAuditDefaults(t *testing.T) {
	flags, _, err := execute(t, "audit")
	require.NoError(t, err)

	assert.Equal(t, model.WorkflowAudit, flags.Workflow)
	assert.Equal(t, model.ProviderSynthetic, flags.Source)
	assert.Equal(t, 50, flags.Count)
	assert.Equal(t, int64(0), flags.Seed)
	assert.Equal(t, "us-east-1", flags.Region)
	assert.Equal(t, "info", flags.LogLevel)
	assert.False(t, flags.JSON)
}

func TestAuditFlags(t *testing.T) {
	flags, v, err := execute(t, "audit", "--source", "AWS", "--count", "5", "--seed", "99", "--json", "--ignore-case", "--region", "eu-west-1")
	require.NoError(t, err)

	assert.Equal(t, model.ProviderAWS, flags.Source)
	assert.Equal(t, 5, flags.Count)
	assert.Equal(t, int64(99), flags.Seed)
	assert.True(t, flags.JSON)
	assert.Equal(t, "eu-west-1", flags.Region)
	assert.True(t, v.GetBool("ignore_case"))
}

func TestAuditRejectsUnknownSource(t *testing.T) {
	_, _, err := execute(t, "audit", "--source", "oracle")
	assert.ErrorIs(t, err, ErrInvalidSource)
}

func TestAuditRejectsNegativeCount(t *testing.T) {
	_, _, err := execute(t, "audit", "--count", "-1")
	assert.ErrorIs(t, err, ErrInvalidCount)
}

func TestAuditCountIsCapped(t *testing.T) {
	flags, _, err := execute(t, "audit", "--count", "10000")
	require.NoError(t, err)
	assert.Equal(t, model.MaxCount, flags.Count)

	_, _, err = execute(t, "audit", "--count", "10001")
	assert.ErrorIs(t, err, ErrInvalidCount)
}

func TestCostsDefaults(t *testing.T) {
	flags, _, err := execute(t, "costs")
	require.NoError(t, err)

	assert.Equal(t, model.WorkflowCosts, flags.Workflow)
	assert.Equal(t, 730.0, flags.Hours)
	assert.Equal(t, "azure_resource_inventory.csv", flags.CSVPath)
	assert.Equal(t, "azure_oop_resource_analysis.png", flags.PNGPath)
}

func TestCostsRejectsZeroHours(t *testing.T) {
	_, _, err := execute(t, "costs", "--hours", "0")
	assert.ErrorIs(t, err, ErrInvalidHours)
}

func TestActualFlags(t *testing.T) {
	flags, _, err := execute(t, "actual", "--provider", "aws", "--tag", "Team", "--trend")
	require.NoError(t, err)

	assert.Equal(t, model.WorkflowActual, flags.Workflow)
	assert.Equal(t, model.ProviderAWS, flags.Provider)
	assert.Equal(t, "Team", flags.CostTag)
	assert.True(t, flags.Trend)
}

func TestActualRejectsGCP(t *testing.T) {
	_, _, err := execute(t, "actual", "--provider", "gcp")
	assert.ErrorIs(t, err, ErrInvalidProvider)
}

func TestEnvironmentFallbacks(t *testing.T) {
	t.Setenv("AZURE_SUBSCRIPTION_ID", "sub-from-azure-env")
	t.Setenv("TAGDOCTOR_LOG_LEVEL", "debug")

	flags, _, err := execute(t, "policy")
	require.NoError(t, err)

	assert.Equal(t, model.WorkflowPolicy, flags.Workflow)
	assert.Equal(t, "sub-from-azure-env", flags.Subscription)
	assert.Equal(t, "debug", flags.LogLevel)
}

func TestExplicitFlagBeatsEnvironment(t *testing.T) {
	t.Setenv("TAGDOCTOR_SUBSCRIPTION", "from-env")

	flags, _, err := execute(t, "policy", "--subscription", "from-flag")
	require.NoError(t, err)
	assert.Equal(t, "from-flag", flags.Subscription)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tag-doctor.yaml")
	require.NoError(t, os.WriteFile(path, []byte("project: my-project\ncount: 12\n"), 0o600))

	flags, _, err := execute(t, "audit", "--config", path)
	require.NoError(t, err)

	assert.Equal(t, path, flags.ConfigFile)
	assert.Equal(t, "my-project", flags.Project)
	assert.Equal(t, 12, flags.Count)
}

func TestMissingConfigFile(t *testing.T) {
	_, _, err := execute(t, "audit", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestUnknownCommand(t *testing.T) {
	_, _, err := execute(t, "waste")
	assert.Error(t, err)
}
