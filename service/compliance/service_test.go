package compliance

import (
	"fmt"
	"strings"
	"testing"

	"github.com/elC0mpa/tag-doctor/model"
	"github.com/elC0mpa/tag-doctor/service/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullyTagged() map[string]string {
	return map[string]string{
		"Environment":        "Production",
		"CostCenter":         "IT-001",
		"Owner":              "jane.smith@company.com",
		"Project":            "Project-Alpha",
		"DataClassification": "Internal",
		"BackupPolicy":       "Daily",
		"MaintenanceWindow":  "Weekend",
	}
}

func withTags(base map[string]string, overrides map[string]string) map[string]string {
	tags := make(map[string]string, len(base))
	for k, v := range base {
		tags[k] = v
	}
	for k, v := range overrides {
		tags[k] = v
	}
	return tags
}

func TestScore(t *testing.T) {
	svc := NewService(policy.Default())

	tests := []struct {
		name   string
		tags   map[string]string
		score  float64
		status model.ResourceStatus
	}{
		{
			name:   "fully compliant",
			tags:   fullyTagged(),
			score:  100,
			status: model.ResourceCompliant,
		},
		{
			name:   "no tags",
			tags:   nil,
			score:  20,
			status: model.ResourceNonCompliant,
		},
		{
			name:   "two required and all recommended missing",
			tags:   map[string]string{"Environment": "Production", "CostCenter": "IT-001"},
			score:  45,
			status: model.ResourceNonCompliant,
		},
		{
			name:   "one invalid value",
			tags:   withTags(fullyTagged(), map[string]string{"Environment": "Prod"}),
			score:  90,
			status: model.ResourcePartial,
		},
		{
			name:   "unknown tags are ignored",
			tags:   withTags(fullyTagged(), map[string]string{"Department": "Finance"}),
			score:  100,
			status: model.ResourceCompliant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := model.Resource{Name: "r", Tags: tt.tags}
			assert.InDelta(t, tt.score, svc.Score(r), 1e-9)

			eval := svc.Evaluate(r)
			assert.InDelta(t, tt.score, eval.Score, 1e-9)
			assert.Equal(t, tt.status, eval.Status)
		})
	}
}

func TestScore_RecommendedOnlyPenalty(t *testing.T) {
	svc := NewService(policy.Default())
	tags := fullyTagged()
	delete(tags, "MaintenanceWindow")

	assert.InDelta(t, 90, svc.Score(model.Resource{Tags: tags}), 1e-9)
	assert.Equal(t, []string{"MaintenanceWindow"}, svc.MissingRecommended(model.Resource{Tags: tags}))
}

func TestScore_FloorsAtZero(t *testing.T) {
	p := model.Policy{ValidValues: map[string][]string{}}
	tags := map[string]string{}
	for i := 0; i < 11; i++ {
		name := fmt.Sprintf("T%02d", i)
		p.ValidValues[name] = []string{"ok"}
		tags[name] = "bad"
	}

	svc := NewService(p)
	r := model.Resource{Tags: tags}

	assert.Len(t, svc.InvalidValues(r), 11)
	assert.Equal(t, 0.0, svc.Score(r))
}

func TestInvalidValues_SortedByTag(t *testing.T) {
	svc := NewService(policy.Default())
	r := model.Resource{Tags: map[string]string{
		"Environment":        "prod",
		"BackupPolicy":       "Hourly",
		"DataClassification": "Internal",
	}}

	invalid := svc.InvalidValues(r)
	require.Len(t, invalid, 2)
	assert.Equal(t, "BackupPolicy", invalid[0].Tag)
	assert.Equal(t, "Hourly", invalid[0].Value)
	assert.Equal(t, "Environment", invalid[1].Tag)
	assert.Equal(t, []string{"Production", "Staging", "Development", "Test"}, invalid[1].ValidValues)
}

func TestIgnoreCase(t *testing.T) {
	p := policy.Default()
	r := model.Resource{Tags: map[string]string{
		"environment": "production",
		"costcenter":  "it-001",
		"owner":       "jane",
		"project":     "alpha",
	}}

	strict := NewService(p)
	assert.Len(t, strict.MissingRequired(r), 4)

	p.IgnoreCase = true
	relaxed := NewService(p)
	assert.Empty(t, relaxed.MissingRequired(r))
	assert.Empty(t, relaxed.InvalidValues(r))
}

func TestRatingFor(t *testing.T) {
	assert.Equal(t, model.RatingExcellent, RatingFor(90))
	assert.Equal(t, model.RatingGood, RatingFor(75))
	assert.Equal(t, model.RatingNeedsImprovement, RatingFor(60))
	assert.Equal(t, model.RatingPoor, RatingFor(59.9))
}

func auditInventory() []model.Resource {
	return []model.Resource{
		{Name: "vm-001", Type: "Virtual Machine", Tags: fullyTagged()},
		{Name: "vm-002", Type: "Virtual Machine", Tags: map[string]string{"Environment": "Production", "CostCenter": "IT-001"}},
		{Name: "st-003", Type: "Storage Account", Tags: withTags(fullyTagged(), map[string]string{"Environment": "Prod"})},
		{Name: "st-004", Type: "Storage Account", ID: "/subscriptions/s/resourceGroups/rg/providers/Microsoft.Storage/storageAccounts/st-004"},
	}
}

func TestAudit_Summary(t *testing.T) {
	report := NewService(policy.Default()).Audit(auditInventory())

	s := report.Summary
	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 2, s.Compliant)
	assert.Equal(t, 2, s.NonCompliant)
	assert.InDelta(t, 50, s.ComplianceRate, 1e-9)
	assert.InDelta(t, 63.75, s.AverageScore, 1e-9)
	assert.Equal(t, model.RatingNeedsImprovement, s.Rating)
	assert.Equal(t, "Owner", s.MostMissingTag)
	assert.Equal(t, 2, s.NeedingAttention)
	assert.Equal(t, 1, s.WithInvalidValues)
}

func TestAudit_Sections(t *testing.T) {
	report := NewService(policy.Default()).Audit(auditInventory())

	require.Len(t, report.MissingRequired, 4)
	assert.Equal(t, model.TagCount{Tag: "Owner", Count: 2, Percent: 50}, report.MissingRequired[0])
	assert.Equal(t, "Project", report.MissingRequired[1].Tag)

	require.Len(t, report.MostMissing, 2)
	assert.Equal(t, "st-004", report.MostMissing[0].Resource.Name)
	assert.Equal(t, "vm-002", report.MostMissing[1].Resource.Name)

	require.Len(t, report.InvalidValues, 1)
	assert.Equal(t, "st-003", report.InvalidValues[0].Resource.Name)

	require.Len(t, report.RecommendedCoverage, 3)
	for _, c := range report.RecommendedCoverage {
		assert.Equal(t, 2, c.Present)
		assert.Equal(t, model.StatusLow, c.Status)
	}

	require.Len(t, report.ByType, 2)
	assert.Equal(t, "Virtual Machine", report.ByType[0].Type)
	assert.Equal(t, model.TypeCompliance{Type: "Storage Account", Total: 2, Compliant: 1, Percent: 50, Status: model.StatusCritical}, report.ByType[1])

	require.Len(t, report.CoverageMatrix, 7)
	assert.Equal(t, "Environment", report.CoverageMatrix[0].Tag)
	assert.True(t, report.CoverageMatrix[0].Required)
	assert.Equal(t, 3, report.CoverageMatrix[0].Present)
	assert.Equal(t, model.StatusCritical, report.CoverageMatrix[0].Status)
	assert.False(t, report.CoverageMatrix[4].Required)
	assert.Equal(t, model.StatusLow, report.CoverageMatrix[4].Status)

	names := make([]string, 0, len(report.Details))
	for _, d := range report.Details {
		names = append(names, d.Resource.Name)
	}
	assert.Equal(t, []string{"st-004", "vm-002", "st-003", "vm-001"}, names)
}

func TestAudit_Remediations(t *testing.T) {
	report := NewService(policy.Default()).Audit(auditInventory())

	require.Len(t, report.Remediations, 2)
	assert.Equal(t, "vm-002", report.Remediations[0].Resource)
	assert.Equal(t, []string{
		"az resource tag --is-incremental --tags Owner='ops-team@company.com' --ids vm-002",
		"az resource tag --is-incremental --tags Project='UNTAGGED' --ids vm-002",
	}, report.Remediations[0].Commands)

	require.Len(t, report.Remediations[1].Commands, 4)
	assert.Contains(t, report.Remediations[1].Commands[0], "--ids /subscriptions/s/resourceGroups/rg/")
}

func TestAudit_RemediationsMergeTags(t *testing.T) {
	report := NewService(policy.Default()).Audit(auditInventory())

	require.NotEmpty(t, report.Remediations)
	for _, r := range report.Remediations {
		for _, cmd := range r.Commands {
			assert.True(t, strings.HasPrefix(cmd, "az resource tag --is-incremental "), cmd)
		}
	}
}

func TestAudit_RemediationsAreCapped(t *testing.T) {
	var inventory []model.Resource
	for i := 0; i < 8; i++ {
		inventory = append(inventory, model.Resource{Name: fmt.Sprintf("r-%d", i)})
	}

	report := NewService(policy.Default()).Audit(inventory)
	assert.Len(t, report.Remediations, 5)
	assert.Len(t, report.MostMissing, 8)
}

func TestAudit_ActionPlan(t *testing.T) {
	report := NewService(policy.Default()).Audit(auditInventory())

	require.Len(t, report.Actions, 3)
	assert.Equal(t, model.PriorityCritical, report.Actions[0].Priority)
	assert.Equal(t, "Add required tags to 2 resources", report.Actions[0].Title)
	assert.Equal(t, "~4 minutes", report.Actions[0].Effort)
	assert.Equal(t, model.PriorityHigh, report.Actions[1].Priority)
	assert.Equal(t, "Implement Azure Policy to enforce tagging", report.Actions[2].Title)
}

func TestAudit_LowRecommendedCoverageAction(t *testing.T) {
	inventory := []model.Resource{
		{Name: "a", Tags: map[string]string{"Environment": "Test", "CostCenter": "x", "Owner": "y", "Project": "z"}},
	}

	report := NewService(policy.Default()).Audit(inventory)

	require.Len(t, report.Actions, 2)
	assert.Equal(t, "Improve coverage for recommended tags: DataClassification, BackupPolicy, MaintenanceWindow", report.Actions[0].Title)
}

func TestAudit_Empty(t *testing.T) {
	report := NewService(policy.Default()).Audit(nil)

	assert.Equal(t, 0, report.Summary.Total)
	assert.Equal(t, 0.0, report.Summary.ComplianceRate)
	assert.Equal(t, 0.0, report.Summary.AverageScore)
	assert.Equal(t, model.RatingPoor, report.Summary.Rating)
	assert.Empty(t, report.Summary.MostMissingTag)
	assert.Empty(t, report.Details)
	require.Len(t, report.Actions, 1)
}

func TestAudit_ByProvider(t *testing.T) {
	inventory := []model.Resource{
		{Name: "vm-1", Provider: model.ProviderAzure, Tags: fullyTagged()},
		{Name: "i-1", Provider: model.ProviderAWS},
		{Name: "vm-2", Provider: model.ProviderAzure},
	}

	report := NewService(policy.Default()).Audit(inventory)

	require.Len(t, report.ByProvider, 2)
	azure := report.ByProvider[0]
	assert.Equal(t, model.ProviderAzure, azure.Provider)
	assert.Equal(t, 2, azure.Total)
	assert.Equal(t, 1, azure.Compliant)
	assert.InDelta(t, 50, azure.Percent, 1e-9)
	assert.InDelta(t, 60, azure.AverageScore, 1e-9)
	assert.Equal(t, model.RatingNeedsImprovement, azure.Rating)

	assert.Equal(t, model.ProviderAWS, report.ByProvider[1].Provider)
	assert.Equal(t, model.RatingPoor, report.ByProvider[1].Rating)
}
