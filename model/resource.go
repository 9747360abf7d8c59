package model

// Provider names used across inventory sources
const (
	ProviderSynthetic = "synthetic"
	ProviderAzure     = "azure"
	ProviderAWS       = "aws"
	ProviderGCP       = "gcp"
)

// AccountInfo represents cloud account/project identity
type AccountInfo struct {
	Provider    string
	AccountID   string
	AccountName string
}

// Resource is a cloud resource record as seen by the tag auditor.
// Any tag may be missing; that is the condition under audit.
type Resource struct {
	ID            string
	Name          string
	Type          string
	ResourceGroup string
	Location      string
	Provider      string
	Tags          map[string]string
}

// Target returns the identifier remediation commands should address
func (r Resource) Target() string {
	if r.ID != "" {
		return r.ID
	}
	return r.Name
}
