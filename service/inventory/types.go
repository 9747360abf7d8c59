package inventory

import (
	"context"
	"errors"

	"github.com/elC0mpa/tag-doctor/model"
)

var ErrNoSources = errors.New("no inventory sources configured")

// Lister matches service.InventoryService
type Lister interface {
	ListResources(ctx context.Context) ([]model.Resource, error)
}

// Source is a named inventory backend (synthetic, azure, aws, gcp)
type Source struct {
	Name    string
	Service Lister
}

type service struct {
	sources []Source
}

type AggregatorService interface {
	// Generic interface methods (implements service.InventoryService)
	ListResources(ctx context.Context) ([]model.Resource, error)

	Sources() []string
}
