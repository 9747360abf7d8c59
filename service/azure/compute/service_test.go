package azurecompute

import (
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v5"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v5"
	"github.com/elC0mpa/tag-doctor/model"
	"github.com/stretchr/testify/assert"
)

const vmID = "/subscriptions/0000/resourceGroups/rg-production/providers/Microsoft.Compute/virtualMachines/vm-web-01"

func TestVMToResource(t *testing.T) {
	vm := &armcompute.VirtualMachine{
		ID:       to.Ptr(vmID),
		Name:     to.Ptr("vm-web-01"),
		Type:     to.Ptr("Microsoft.Compute/virtualMachines"),
		Location: to.Ptr("eastus"),
		Tags: map[string]*string{
			"Environment": to.Ptr("Production"),
			"Owner":       nil,
		},
	}

	got := vmToResource(vm)
	assert.Equal(t, model.Resource{
		ID:            vmID,
		Name:          "vm-web-01",
		Type:          "Microsoft.Compute/virtualMachines",
		ResourceGroup: "rg-production",
		Location:      "eastus",
		Provider:      model.ProviderAzure,
		Tags:          map[string]string{"Environment": "Production"},
	}, got)
}

func TestDiskAndPublicIPToResource(t *testing.T) {
	disk := diskToResource(&armcompute.Disk{
		ID:       to.Ptr("/subscriptions/0000/resourceGroups/RG-Data/providers/Microsoft.Compute/disks/data-01"),
		Location: to.Ptr("westus"),
	})
	assert.Equal(t, "data-01", disk.Name)
	assert.Equal(t, "RG-Data", disk.ResourceGroup)
	assert.Empty(t, disk.Tags)
	assert.NotNil(t, disk.Tags)

	ip := publicIPToResource(&armnetwork.PublicIPAddress{
		ID:   to.Ptr("/subscriptions/0000/resourcegroups/rg-net/providers/Microsoft.Network/publicIPAddresses/pip-1"),
		Name: to.Ptr("pip-1"),
		Tags: map[string]*string{"CostCenter": to.Ptr("IT-001")},
	})
	assert.Equal(t, "rg-net", ip.ResourceGroup)
	assert.Equal(t, "IT-001", ip.Tags["CostCenter"])
}

func TestExtractResourceParts(t *testing.T) {
	assert.Equal(t, "vm-web-01", extractResourceName(vmID))
	assert.Equal(t, "rg-production", extractResourceGroup(vmID))
	assert.Equal(t, "", extractResourceGroup("/subscriptions/0000"))
	assert.Equal(t, "plain", extractResourceName("plain"))
}
