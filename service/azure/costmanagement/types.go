package azurecostmanagement

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/costmanagement/armcostmanagement"
	"github.com/elC0mpa/tag-doctor/model"
)

const (
	resourceGroupDimension = "ResourceGroupName"
	totalKey               = "Total"
	defaultCurrency        = "USD"
	unassignedGroup        = "(no resource group)"
)

type service struct {
	subscriptionID string
	client         *armcostmanagement.QueryClient
}

type CostManagementService interface {
	// Generic interface methods (implements service.CostService)
	GetCurrentMonthCostsByGroup(ctx context.Context) (*model.CostInfo, error)
	GetLastSixMonthsCosts(ctx context.Context) ([]model.CostInfo, error)
}

// Credential is passed to allow reuse across services
type Credential = azidentity.DefaultAzureCredential
