package provider

import (
	"context"
	"testing"

	"github.com/elC0mpa/tag-doctor/model"
	azureconfig "github.com/elC0mpa/tag-doctor/service/azure/config"
	gcpconfig "github.com/elC0mpa/tag-doctor/service/gcp/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceNames(t *testing.T) {
	assert.Equal(t, []string{"synthetic"}, SourceNames("synthetic"))
	assert.Equal(t, []string{"azure", "aws", "gcp"}, SourceNames(SourceAll))
}

func TestGetInventory_Synthetic(t *testing.T) {
	p := NewService()
	flags := model.Flags{Source: model.ProviderSynthetic, Count: 7, Seed: 42}

	agg, err := p.GetInventory(context.Background(), flags)
	require.NoError(t, err)
	assert.Equal(t, []string{"synthetic"}, agg.Sources())

	resources, err := agg.ListResources(context.Background())
	require.NoError(t, err)
	assert.Len(t, resources, 7)
}

func TestGetInventory_UnknownSource(t *testing.T) {
	_, err := NewService().GetInventory(context.Background(), model.Flags{Source: "oracle"})
	assert.ErrorIs(t, err, ErrUnknownSource)
}

func TestGetInventory_AzureWithoutSubscription(t *testing.T) {
	_, err := NewService().GetInventory(context.Background(), model.Flags{Source: model.ProviderAzure})
	assert.ErrorIs(t, err, azureconfig.ErrNoSubscription)
}

func TestGetIdentity_UnknownProvider(t *testing.T) {
	ctx := zerolog.Nop().WithContext(context.Background())

	_, err := NewService().GetIdentity(ctx, model.Flags{Provider: "oracle"})
	assert.ErrorIs(t, err, ErrUnknownProvider)

	_, err = NewService().GetCostService(ctx, model.Flags{Provider: ""})
	assert.ErrorIs(t, err, ErrUnknownProvider)
}

func TestGetIdentity_GCPWithoutProject(t *testing.T) {
	_, err := NewService().GetIdentity(context.Background(), model.Flags{Provider: model.ProviderGCP})
	assert.ErrorIs(t, err, gcpconfig.ErrNoProject)
}
