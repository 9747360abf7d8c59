package compliance

import (
	"fmt"
	"sort"
	"strings"

	"github.com/elC0mpa/tag-doctor/model"
)

// Audit evaluates every resource and aggregates the report sections
func (s *service) Audit(resources []model.Resource) *model.AuditReport {
	evals := make([]model.ResourceCompliance, len(resources))
	for i, r := range resources {
		evals[i] = s.Evaluate(r)
	}

	report := &model.AuditReport{
		Policy:              s.policy,
		MissingRequired:     s.missingRequiredCounts(evals),
		MostMissing:         mostMissing(evals),
		InvalidValues:       withInvalidValues(evals),
		RecommendedCoverage: s.recommendedCoverage(evals),
		ByType:              byType(evals),
		ByProvider:          byProvider(evals),
		CoverageMatrix:      s.coverageMatrix(resources),
		Remediations:        s.remediations(evals),
		Details:             byScore(evals),
	}
	report.Summary = s.summarize(evals, report)
	report.Actions = s.actionPlan(report)

	return report
}

func (s *service) summarize(evals []model.ResourceCompliance, report *model.AuditReport) model.AuditSummary {
	summary := model.AuditSummary{
		Total:             len(evals),
		WithInvalidValues: len(report.InvalidValues),
	}

	var totalScore float64
	for _, e := range evals {
		if e.Compliant() {
			summary.Compliant++
		}
		if e.Score < attentionThreshold {
			summary.NeedingAttention++
		}
		totalScore += e.Score
	}
	summary.NonCompliant = summary.Total - summary.Compliant
	summary.ComplianceRate = percent(summary.Compliant, summary.Total)
	if summary.Total > 0 {
		summary.AverageScore = totalScore / float64(summary.Total)
	}
	summary.Rating = RatingFor(summary.AverageScore)

	// first maximum in policy order, empty when nothing is missing
	best := 0
	for _, tag := range s.policy.RequiredTags {
		for _, c := range report.MissingRequired {
			if c.Tag == tag && c.Count > best {
				best = c.Count
				summary.MostMissingTag = tag
			}
		}
	}

	return summary
}

func (s *service) missingRequiredCounts(evals []model.ResourceCompliance) []model.TagCount {
	counts := make([]model.TagCount, len(s.policy.RequiredTags))
	for i, tag := range s.policy.RequiredTags {
		counts[i].Tag = tag
		for _, e := range evals {
			for _, missing := range e.MissingRequired {
				if missing == tag {
					counts[i].Count++
				}
			}
		}
		counts[i].Percent = percent(counts[i].Count, len(evals))
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}

func mostMissing(evals []model.ResourceCompliance) []model.ResourceCompliance {
	sorted := make([]model.ResourceCompliance, 0, len(evals))
	for _, e := range evals {
		if !e.Compliant() {
			sorted = append(sorted, e)
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].MissingRequired) > len(sorted[j].MissingRequired)
	})

	if len(sorted) > mostMissingLimit {
		sorted = sorted[:mostMissingLimit]
	}
	return sorted
}

func withInvalidValues(evals []model.ResourceCompliance) []model.ResourceCompliance {
	var result []model.ResourceCompliance
	for _, e := range evals {
		if len(e.InvalidTags) > 0 {
			result = append(result, e)
		}
	}
	return result
}

func (s *service) recommendedCoverage(evals []model.ResourceCompliance) []model.TagCoverage {
	coverage := make([]model.TagCoverage, 0, len(s.policy.RecommendedTags))
	for _, tag := range s.policy.RecommendedTags {
		missing := 0
		for _, e := range evals {
			for _, m := range e.MissingRecommended {
				if m == tag {
					missing++
				}
			}
		}

		present := len(evals) - missing
		pct := percent(present, len(evals))

		status := model.StatusCritical
		switch {
		case pct >= 80:
			status = model.StatusOK
		case pct >= 50:
			status = model.StatusLow
		}

		coverage = append(coverage, model.TagCoverage{
			Tag:     tag,
			Present: present,
			Total:   len(evals),
			Percent: pct,
			Status:  status,
		})
	}
	return coverage
}

func byType(evals []model.ResourceCompliance) []model.TypeCompliance {
	index := make(map[string]int)
	var types []model.TypeCompliance

	for _, e := range evals {
		i, ok := index[e.Resource.Type]
		if !ok {
			i = len(types)
			index[e.Resource.Type] = i
			types = append(types, model.TypeCompliance{Type: e.Resource.Type})
		}
		types[i].Total++
		if e.Compliant() {
			types[i].Compliant++
		}
	}

	for i := range types {
		types[i].Percent = percent(types[i].Compliant, types[i].Total)
		switch {
		case types[i].Percent >= 90:
			types[i].Status = model.StatusOK
		case types[i].Percent >= 70:
			types[i].Status = model.StatusWarning
		default:
			types[i].Status = model.StatusCritical
		}
	}

	sort.SliceStable(types, func(i, j int) bool {
		return types[i].Percent < types[j].Percent
	})
	return types
}

// byProvider keeps first-appearance order
func byProvider(evals []model.ResourceCompliance) []model.ProviderCompliance {
	index := make(map[string]int)
	var providers []model.ProviderCompliance
	var scores []float64

	for _, e := range evals {
		i, ok := index[e.Resource.Provider]
		if !ok {
			i = len(providers)
			index[e.Resource.Provider] = i
			providers = append(providers, model.ProviderCompliance{Provider: e.Resource.Provider})
			scores = append(scores, 0)
		}
		providers[i].Total++
		if e.Compliant() {
			providers[i].Compliant++
		}
		scores[i] += e.Score
	}

	for i := range providers {
		providers[i].Percent = percent(providers[i].Compliant, providers[i].Total)
		providers[i].AverageScore = scores[i] / float64(providers[i].Total)
		providers[i].Rating = RatingFor(providers[i].AverageScore)
	}
	return providers
}

func (s *service) coverageMatrix(resources []model.Resource) []model.TagCoverage {
	matrix := make([]model.TagCoverage, 0, len(s.policy.RequiredTags)+len(s.policy.RecommendedTags))
	for _, tag := range s.policy.AllTags() {
		present := 0
		for _, r := range resources {
			if _, ok := s.lookup(r.Tags, tag); ok {
				present++
			}
		}

		c := model.TagCoverage{
			Tag:      tag,
			Required: s.policy.IsRequired(tag),
			Present:  present,
			Total:    len(resources),
			Percent:  percent(present, len(resources)),
		}

		if c.Required {
			switch {
			case c.Percent >= 95:
				c.Status = model.StatusOK
			case c.Percent < 80:
				c.Status = model.StatusCritical
			default:
				c.Status = model.StatusWarning
			}
		} else {
			c.Status = model.StatusLow
			if c.Percent >= 80 {
				c.Status = model.StatusGood
			}
		}

		matrix = append(matrix, c)
	}
	return matrix
}

func (s *service) remediations(evals []model.ResourceCompliance) []model.Remediation {
	var result []model.Remediation
	for _, e := range evals {
		if e.Compliant() {
			continue
		}
		if len(result) == remediationLimit {
			break
		}

		rem := model.Remediation{Resource: e.Resource.Name}
		for _, tag := range e.MissingRequired {
			value := s.policy.RemediationDefaults[tag]
			rem.Commands = append(rem.Commands, remediationCommand(tag, value, e.Resource.Target()))
		}
		result = append(result, rem)
	}
	return result
}

func byScore(evals []model.ResourceCompliance) []model.ResourceCompliance {
	sorted := make([]model.ResourceCompliance, len(evals))
	copy(sorted, evals)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score < sorted[j].Score
	})
	return sorted
}

func (s *service) actionPlan(report *model.AuditReport) []model.Action {
	var actions []model.Action
	summary := report.Summary

	if summary.NonCompliant > 0 {
		actions = append(actions, model.Action{
			Priority: model.PriorityCritical,
			Title:    fmt.Sprintf("Add required tags to %d resources", summary.NonCompliant),
			Impact:   "Enable proper cost allocation and governance",
			Effort:   fmt.Sprintf("~%d minutes", summary.NonCompliant*2),
		})
	}

	if summary.WithInvalidValues > 0 {
		actions = append(actions, model.Action{
			Priority: model.PriorityHigh,
			Title:    fmt.Sprintf("Correct %d resources with invalid tag values", summary.WithInvalidValues),
			Impact:   "Ensure data quality and reporting accuracy",
		})
	}

	// recommended tags missing on more than half of the inventory
	var lowCoverage []string
	for _, c := range report.RecommendedCoverage {
		if c.Total > 0 && float64(c.Total-c.Present)/float64(c.Total) > 0.5 {
			lowCoverage = append(lowCoverage, c.Tag)
		}
	}
	if len(lowCoverage) > 0 {
		if len(lowCoverage) > 3 {
			lowCoverage = lowCoverage[:3]
		}
		actions = append(actions, model.Action{
			Priority: model.PriorityMedium,
			Title:    "Improve coverage for recommended tags: " + strings.Join(lowCoverage, ", "),
			Impact:   "Enhanced resource management and automation",
		})
	}

	actions = append(actions, model.Action{
		Priority: model.PriorityMedium,
		Title:    "Implement Azure Policy to enforce tagging",
		Impact:   "Prevent future non-compliance",
	})

	return actions
}
