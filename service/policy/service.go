package policy

import (
	"fmt"
	"io"
	"os"

	"github.com/elC0mpa/tag-doctor/model"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

func NewService(v *viper.Viper) *service {
	return &service{v: v}
}

// Default returns the built-in governance policy
func Default() model.Policy {
	return model.Policy{
		RequiredTags:    []string{"Environment", "CostCenter", "Owner", "Project"},
		RecommendedTags: []string{"DataClassification", "BackupPolicy", "MaintenanceWindow"},
		ValidValues: map[string][]string{
			"Environment":        {"Production", "Staging", "Development", "Test"},
			"DataClassification": {"Public", "Internal", "Confidential", "Restricted"},
			"BackupPolicy":       {"Daily", "Weekly", "Monthly", "None"},
		},
		RemediationDefaults: map[string]string{
			"Environment": "Development",
			"CostCenter":  "UNASSIGNED",
			"Owner":       "ops-team@company.com",
			"Project":     "UNTAGGED",
		},
	}
}

// GetPolicy returns the policy from the config file's "policy" section,
// falling back to Default for every field the file leaves out.
// The section is decoded with yaml directly since viper lower-cases map keys
// and tag names are case-sensitive.
func (s *service) GetPolicy() (model.Policy, error) {
	p := Default()

	if s.v != nil && s.v.ConfigFileUsed() != "" {
		loaded, err := loadFile(s.v.ConfigFileUsed())
		if err != nil {
			return model.Policy{}, err
		}
		if loaded != nil {
			p = merge(p, *loaded)
		}
	}

	if s.v != nil && s.v.IsSet("ignore_case") {
		p.IgnoreCase = s.v.GetBool("ignore_case")
	}

	if err := Validate(p); err != nil {
		return model.Policy{}, err
	}
	return p, nil
}

// WritePolicy renders p as a YAML config document
func (s *service) WritePolicy(w io.Writer, p model.Policy) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(document{Policy: &p}); err != nil {
		return fmt.Errorf("failed to encode policy: %w", err)
	}
	return enc.Close()
}

func loadFile(path string) (*model.Policy, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse policy section: %w", err)
	}
	return doc.Policy, nil
}

func merge(base, override model.Policy) model.Policy {
	if override.RequiredTags != nil {
		base.RequiredTags = override.RequiredTags
	}
	if override.RecommendedTags != nil {
		base.RecommendedTags = override.RecommendedTags
	}
	if override.ValidValues != nil {
		base.ValidValues = override.ValidValues
	}
	if override.RemediationDefaults != nil {
		base.RemediationDefaults = override.RemediationDefaults
	}
	if override.IgnoreCase {
		base.IgnoreCase = true
	}
	return base
}

// Validate checks the structural rules of a policy
func Validate(p model.Policy) error {
	seen := make(map[string]string)
	for _, group := range []struct {
		name string
		tags []string
	}{
		{"required", p.RequiredTags},
		{"recommended", p.RecommendedTags},
	} {
		for _, tag := range group.tags {
			if tag == "" {
				return fmt.Errorf("%w: empty %s tag name", ErrInvalidPolicy, group.name)
			}
			if prev, ok := seen[tag]; ok {
				return fmt.Errorf("%w: tag %q listed as %s and %s", ErrInvalidPolicy, tag, prev, group.name)
			}
			seen[tag] = group.name
		}
	}

	for tag, values := range p.ValidValues {
		if len(values) == 0 {
			return fmt.Errorf("%w: tag %q has an empty list of valid values", ErrInvalidPolicy, tag)
		}
	}

	return nil
}
