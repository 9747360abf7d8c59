package synthetic

import (
	"context"
	"regexp"
	"slices"
	"strconv"
	"testing"

	"github.com/elC0mpa/tag-doctor/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var namePattern = regexp.MustCompile(`^[a-z-]+-\d{3}$`)

func TestGenerate_Shape(t *testing.T) {
	resources := NewService(50, 42).Generate()
	require.Len(t, resources, 50)

	known := map[string]bool{"Department": true}
	for _, choice := range possibleTags {
		known[choice.name] = true
	}

	for i, r := range resources {
		assert.Regexp(t, namePattern, r.Name)
		assert.Equal(t, slug(r.Type), r.Name[:len(r.Name)-4])
		n, err := strconv.Atoi(r.Name[len(r.Name)-3:])
		require.NoError(t, err)
		assert.Equal(t, i+1, n)
		assert.Contains(t, resourceTypes, r.Type)
		assert.Contains(t, resourceGroups, r.ResourceGroup)
		assert.Contains(t, locations, r.Location)
		assert.Equal(t, model.ProviderSynthetic, r.Provider)
		assert.Empty(t, r.ID)

		for name, value := range r.Tags {
			assert.True(t, known[name], "unexpected tag %s", name)
			assert.NotEmpty(t, value)
		}
	}
}

func TestGenerate_SameSeedSameInventory(t *testing.T) {
	a := NewService(20, 7).Generate()
	b := NewService(20, 7).Generate()
	assert.Equal(t, a, b)

	c := NewService(20, 8).Generate()
	assert.NotEqual(t, a, c)
}

func TestGenerate_TagsAreSometimesMissing(t *testing.T) {
	resources := NewService(200, 1).Generate()

	incomplete := slices.ContainsFunc(resources, func(r model.Resource) bool {
		return len(r.Tags) < len(possibleTags)
	})
	assert.True(t, incomplete)
}

func TestListResources(t *testing.T) {
	resources, err := NewService(3, 1).ListResources(context.Background())
	require.NoError(t, err)
	assert.Len(t, resources, 3)

	_, err = NewService(-1, 1).ListResources(context.Background())
	assert.Error(t, err)

	_, err = NewService(model.MaxCount+1, 1).ListResources(context.Background())
	assert.ErrorContains(t, err, "between 0 and 10000")
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "network-interface", slug("Network Interface"))
}
