package provider

import (
	"context"
	"errors"

	"github.com/elC0mpa/tag-doctor/model"
	"github.com/elC0mpa/tag-doctor/service"
	"github.com/elC0mpa/tag-doctor/service/inventory"
)

// SourceAll audits every live provider that can be configured
const SourceAll = "all"

var (
	ErrUnknownSource   = errors.New("unknown inventory source")
	ErrUnknownProvider = errors.New("unknown billing provider")
)

type providerService struct{}

// ProviderService builds provider clients on demand so that a workflow
// only needs credentials for the clouds it touches
type ProviderService interface {
	GetInventory(ctx context.Context, flags model.Flags) (inventory.AggregatorService, error)
	GetIdentity(ctx context.Context, flags model.Flags) (service.IdentityService, error)
	GetCostService(ctx context.Context, flags model.Flags) (service.CostService, error)
}
