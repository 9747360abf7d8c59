package policy

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/elC0mpa/tag-doctor/model"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) *viper.Viper {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tag-doctor.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())
	return v
}

func TestGetPolicy_DefaultsWithoutConfig(t *testing.T) {
	p, err := NewService(viper.New()).GetPolicy()
	require.NoError(t, err)

	assert.Equal(t, Default(), p)
	assert.Len(t, p.AllTags(), 7)
	assert.True(t, p.IsRequired("Owner"))
	assert.False(t, p.IsRequired("BackupPolicy"))
}

func TestGetPolicy_FileOverridesKeepTagCase(t *testing.T) {
	v := writeConfig(t, `
policy:
  required_tags: [Environment, Owner]
  valid_values:
    Environment: [Prod, NonProd]
`)

	p, err := NewService(v).GetPolicy()
	require.NoError(t, err)

	assert.Equal(t, []string{"Environment", "Owner"}, p.RequiredTags)
	assert.Equal(t, map[string][]string{"Environment": {"Prod", "NonProd"}}, p.ValidValues)
	assert.Equal(t, Default().RecommendedTags, p.RecommendedTags)
	assert.Equal(t, Default().RemediationDefaults, p.RemediationDefaults)
}

func TestGetPolicy_IgnoreCaseFromViper(t *testing.T) {
	v := viper.New()
	v.Set("ignore_case", true)

	p, err := NewService(v).GetPolicy()
	require.NoError(t, err)
	assert.True(t, p.IgnoreCase)
}

func TestGetPolicy_InvalidFile(t *testing.T) {
	v := writeConfig(t, `
policy:
  required_tags: [Owner]
  recommended_tags: [Owner]
`)

	_, err := NewService(v).GetPolicy()
	assert.ErrorIs(t, err, ErrInvalidPolicy)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		policy  model.Policy
		wantErr bool
	}{
		{"default", Default(), false},
		{"empty", model.Policy{}, false},
		{"empty tag name", model.Policy{RequiredTags: []string{""}}, true},
		{"duplicate required", model.Policy{RequiredTags: []string{"Owner", "Owner"}}, true},
		{"empty enumeration", model.Policy{ValidValues: map[string][]string{"Environment": {}}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.policy)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPolicy)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestWritePolicy(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewService(nil).WritePolicy(&buf, Default()))

	out := buf.String()
	assert.Contains(t, out, "policy:")
	assert.Contains(t, out, "required_tags:")
	assert.Contains(t, out, "- CostCenter")
	assert.Contains(t, out, "Environment: Development")
}
