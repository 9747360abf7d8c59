package model

// Status is a coarse traffic-light classification used by the report
type Status string

const (
	StatusOK       Status = "OK"
	StatusGood     Status = "GOOD"
	StatusWarning  Status = "WARNING"
	StatusLow      Status = "LOW"
	StatusCritical Status = "CRITICAL"
)

// ResourceStatus classifies a single resource by its compliance score
type ResourceStatus string

const (
	ResourceCompliant    ResourceStatus = "COMPLIANT"
	ResourcePartial      ResourceStatus = "PARTIAL"
	ResourceNonCompliant ResourceStatus = "NON-COMPLIANT"
)

// Rating classifies the average compliance score of an inventory
type Rating string

const (
	RatingExcellent        Rating = "EXCELLENT"
	RatingGood             Rating = "GOOD"
	RatingNeedsImprovement Rating = "NEEDS IMPROVEMENT"
	RatingPoor             Rating = "POOR"
)

// Priority of an action plan item
type Priority string

const (
	PriorityCritical Priority = "CRITICAL"
	PriorityHigh     Priority = "HIGH"
	PriorityMedium   Priority = "MEDIUM"
)

// InvalidTag is a tag whose value is outside its enumeration
type InvalidTag struct {
	Tag         string
	Value       string
	ValidValues []string
}

// ResourceCompliance is the evaluation of one resource against a policy
type ResourceCompliance struct {
	Resource           Resource
	Score              float64
	Status             ResourceStatus
	MissingRequired    []string
	MissingRecommended []string
	InvalidTags        []InvalidTag
}

// Compliant reports whether every required tag is present
func (c ResourceCompliance) Compliant() bool {
	return len(c.MissingRequired) == 0
}

// TagCount is the number of resources a tag is missing from (or present on)
type TagCount struct {
	Tag     string
	Count   int
	Percent float64
}

// TagCoverage describes how many resources carry a tag
type TagCoverage struct {
	Tag      string
	Required bool
	Present  int
	Total    int
	Percent  float64
	Status   Status
}

// TypeCompliance aggregates compliance per resource type
type TypeCompliance struct {
	Type      string
	Total     int
	Compliant int
	Percent   float64
	Status    Status
}

// ProviderCompliance aggregates compliance per inventory source
type ProviderCompliance struct {
	Provider     string
	Total        int
	Compliant    int
	Percent      float64
	AverageScore float64
	Rating       Rating
}

// Remediation holds suggested CLI commands for a non-compliant resource
type Remediation struct {
	Resource string
	Commands []string
}

// Action is an item of the prioritised action plan
type Action struct {
	Priority Priority
	Title    string
	Impact   string
	Effort   string
}

// AuditSummary holds the headline numbers of an audit
type AuditSummary struct {
	Total             int
	Compliant         int
	NonCompliant      int
	ComplianceRate    float64
	AverageScore      float64
	Rating            Rating
	MostMissingTag    string
	NeedingAttention  int
	WithInvalidValues int
}

// AuditReport is the full result of a tag audit
type AuditReport struct {
	Policy              Policy
	Summary             AuditSummary
	MissingRequired     []TagCount
	MostMissing         []ResourceCompliance
	InvalidValues       []ResourceCompliance
	RecommendedCoverage []TagCoverage
	ByType              []TypeCompliance
	ByProvider          []ProviderCompliance
	CoverageMatrix      []TagCoverage
	Remediations        []Remediation
	Details             []ResourceCompliance
	Actions             []Action
}
