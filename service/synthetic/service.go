package synthetic

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/elC0mpa/tag-doctor/model"
	"github.com/rs/zerolog"
)

// NewService returns a generator of count resources. A zero seed picks a random one.
func NewService(count int, seed int64) *service {
	s := uint64(seed)
	if seed == 0 {
		s = rand.Uint64()
	}

	return &service{
		count: count,
		rng:   rand.New(rand.NewPCG(s, s)),
	}
}

// ListResources implements service.InventoryService
func (s *service) ListResources(ctx context.Context) ([]model.Resource, error) {
	if s.count < 0 || s.count > model.MaxCount {
		return nil, fmt.Errorf("resource count must be between 0 and %d, got %d", model.MaxCount, s.count)
	}

	resources := s.Generate()
	zerolog.Ctx(ctx).Debug().Int("count", len(resources)).Msg("generated synthetic inventory")
	return resources, nil
}

// Generate produces resources with randomly incomplete and occasionally stray tag sets
func (s *service) Generate() []model.Resource {
	resources := make([]model.Resource, 0, min(max(s.count, 0), model.MaxCount))

	for i := 0; i < s.count; i++ {
		resourceType := pick(s.rng, resourceTypes)

		tags := make(map[string]string)
		for _, choice := range possibleTags {
			if s.rng.Float64() < tagProbability {
				if value := pick(s.rng, choice.values); value != "" {
					tags[choice.name] = value
				}
			}
		}

		if s.rng.Float64() < strayProbability {
			tags["Department"] = pick(s.rng, departments)
		}

		resources = append(resources, model.Resource{
			Name:          fmt.Sprintf("%s-%03d", slug(resourceType), i+1),
			Type:          resourceType,
			ResourceGroup: pick(s.rng, resourceGroups),
			Location:      pick(s.rng, locations),
			Provider:      model.ProviderSynthetic,
			Tags:          tags,
		})
	}

	return resources
}

func pick(rng *rand.Rand, values []string) string {
	return values[rng.IntN(len(values))]
}

func slug(resourceType string) string {
	return strings.ReplaceAll(strings.ToLower(resourceType), " ", "-")
}
