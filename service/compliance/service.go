package compliance

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/elC0mpa/tag-doctor/model"
)

func NewService(policy model.Policy) *service {
	return &service{policy: policy}
}

// MissingRequired returns the required tags r does not carry, in policy order
func (s *service) MissingRequired(r model.Resource) []string {
	return s.missing(r, s.policy.RequiredTags)
}

// MissingRecommended returns the recommended tags r does not carry, in policy order
func (s *service) MissingRecommended(r model.Resource) []string {
	return s.missing(r, s.policy.RecommendedTags)
}

func (s *service) missing(r model.Resource, tags []string) []string {
	var missing []string
	for _, tag := range tags {
		if _, ok := s.lookup(r.Tags, tag); !ok {
			missing = append(missing, tag)
		}
	}
	return missing
}

// InvalidValues returns the tags of r holding a value outside their enumeration,
// sorted by tag name
func (s *service) InvalidValues(r model.Resource) []model.InvalidTag {
	names := make([]string, 0, len(s.policy.ValidValues))
	for name := range s.policy.ValidValues {
		names = append(names, name)
	}
	sort.Strings(names)

	var invalid []model.InvalidTag
	for _, name := range names {
		value, ok := s.lookup(r.Tags, name)
		if !ok {
			continue
		}

		valid := s.policy.ValidValues[name]
		if !s.allowed(valid, value) {
			invalid = append(invalid, model.InvalidTag{
				Tag:         name,
				Value:       value,
				ValidValues: valid,
			})
		}
	}
	return invalid
}

// Score computes the 0-100 compliance score of r
func (s *service) Score(r model.Resource) float64 {
	return s.score(len(s.MissingRequired(r)), len(s.MissingRecommended(r)), len(s.InvalidValues(r)))
}

func (s *service) score(missingRequired, missingRecommended, invalid int) float64 {
	score := 100.0

	if n := len(s.policy.RequiredTags); n > 0 {
		score -= float64(missingRequired) / float64(n) * requiredWeight
	}
	if n := len(s.policy.RecommendedTags); n > 0 {
		score -= float64(missingRecommended) / float64(n) * recommendedWeight
	}
	score -= float64(invalid) * invalidPenalty

	return max(0, score)
}

// Evaluate runs every check against r
func (s *service) Evaluate(r model.Resource) model.ResourceCompliance {
	c := model.ResourceCompliance{
		Resource:           r,
		MissingRequired:    s.MissingRequired(r),
		MissingRecommended: s.MissingRecommended(r),
		InvalidTags:        s.InvalidValues(r),
	}
	c.Score = s.score(len(c.MissingRequired), len(c.MissingRecommended), len(c.InvalidTags))
	c.Status = ResourceStatus(c.Score)
	return c
}

// lookup finds a tag value, honouring the policy's IgnoreCase setting
func (s *service) lookup(tags map[string]string, key string) (string, bool) {
	if value, ok := tags[key]; ok {
		return value, true
	}
	if !s.policy.IgnoreCase {
		return "", false
	}
	for k, value := range tags {
		if strings.EqualFold(k, key) {
			return value, true
		}
	}
	return "", false
}

func (s *service) allowed(valid []string, value string) bool {
	if !s.policy.IgnoreCase {
		return slices.Contains(valid, value)
	}
	return slices.ContainsFunc(valid, func(v string) bool {
		return strings.EqualFold(v, value)
	})
}

// ResourceStatus classifies a single resource score
func ResourceStatus(score float64) model.ResourceStatus {
	switch {
	case score >= 100:
		return model.ResourceCompliant
	case score >= 70:
		return model.ResourcePartial
	default:
		return model.ResourceNonCompliant
	}
}

// RatingFor classifies an average score
func RatingFor(score float64) model.Rating {
	switch {
	case score >= 90:
		return model.RatingExcellent
	case score >= 75:
		return model.RatingGood
	case score >= 60:
		return model.RatingNeedsImprovement
	default:
		return model.RatingPoor
	}
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

func remediationCommand(tag, value, target string) string {
	return fmt.Sprintf("az resource tag --is-incremental --tags %s='%s' --ids %s", tag, value, target)
}
