package model

// Policy is the tagging policy resources are audited against
type Policy struct {
	RequiredTags        []string            `mapstructure:"required_tags" yaml:"required_tags" json:"required_tags"`
	RecommendedTags     []string            `mapstructure:"recommended_tags" yaml:"recommended_tags" json:"recommended_tags"`
	ValidValues         map[string][]string `mapstructure:"valid_values" yaml:"valid_values" json:"valid_values"`
	RemediationDefaults map[string]string   `mapstructure:"remediation_defaults" yaml:"remediation_defaults" json:"remediation_defaults"`
	// IgnoreCase matches tag names and enumerated values regardless of case (GCP labels are lower-case)
	IgnoreCase bool `mapstructure:"ignore_case" yaml:"ignore_case" json:"ignore_case"`
}

// AllTags returns required tags followed by recommended tags
func (p Policy) AllTags() []string {
	all := make([]string, 0, len(p.RequiredTags)+len(p.RecommendedTags))
	all = append(all, p.RequiredTags...)
	return append(all, p.RecommendedTags...)
}

// IsRequired reports whether tag is one of the required tags
func (p Policy) IsRequired(tag string) bool {
	for _, t := range p.RequiredTags {
		if t == tag {
			return true
		}
	}
	return false
}
