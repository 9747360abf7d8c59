package azurecompute

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v5"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v5"
	"github.com/elC0mpa/tag-doctor/model"
)

type service struct {
	subscriptionID string
	disksClient    *armcompute.DisksClient
	vmClient       *armcompute.VirtualMachinesClient
	publicIPClient *armnetwork.PublicIPAddressesClient
}

type ComputeService interface {
	// Generic interface methods (implements service.InventoryService)
	ListResources(ctx context.Context) ([]model.Resource, error)

	// Azure-specific methods for detailed information
	ListVirtualMachines(ctx context.Context) ([]*armcompute.VirtualMachine, error)
	ListDisks(ctx context.Context) ([]*armcompute.Disk, error)
	ListPublicIPs(ctx context.Context) ([]*armnetwork.PublicIPAddress, error)
}

// Credential is passed to allow reuse across services
type Credential = azidentity.DefaultAzureCredential
