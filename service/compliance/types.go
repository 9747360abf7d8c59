package compliance

import "github.com/elC0mpa/tag-doctor/model"

const (
	requiredWeight    = 50.0
	recommendedWeight = 30.0
	invalidPenalty    = 10.0

	// number of resources listed in the "most missing" section
	mostMissingLimit = 10
	// number of non-compliant resources that get remediation commands
	remediationLimit = 5
	// resources scoring below this need attention
	attentionThreshold = 70.0
)

type service struct {
	policy model.Policy
}

type ComplianceService interface {
	MissingRequired(r model.Resource) []string
	MissingRecommended(r model.Resource) []string
	InvalidValues(r model.Resource) []model.InvalidTag
	Score(r model.Resource) float64
	Evaluate(r model.Resource) model.ResourceCompliance
	Audit(resources []model.Resource) *model.AuditReport
}
