package service

import (
	"context"

	"github.com/elC0mpa/tag-doctor/model"
)

// IdentityService provides cloud account/project identity information
type IdentityService interface {
	GetAccountInfo(ctx context.Context) (*model.AccountInfo, error)
}

// InventoryService lists resource records together with their tags
type InventoryService interface {
	ListResources(ctx context.Context) ([]model.Resource, error)
}

// CostService provides actual billed costs. The grouping key is provider
// specific: resource group on Azure, a cost allocation tag value on AWS.
type CostService interface {
	GetCurrentMonthCostsByGroup(ctx context.Context) (*model.CostInfo, error)
	GetLastSixMonthsCosts(ctx context.Context) ([]model.CostInfo, error)
}
