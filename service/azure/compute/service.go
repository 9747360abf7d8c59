package azurecompute

import (
	"context"
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v5"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v5"
	"github.com/elC0mpa/tag-doctor/model"
	"github.com/rs/zerolog"
)

func NewService(subscriptionID string, credential *Credential) (*service, error) {
	disksClient, err := armcompute.NewDisksClient(subscriptionID, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create disks client: %w", err)
	}

	vmClient, err := armcompute.NewVirtualMachinesClient(subscriptionID, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create VM client: %w", err)
	}

	publicIPClient, err := armnetwork.NewPublicIPAddressesClient(subscriptionID, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create public IP client: %w", err)
	}

	return &service{
		subscriptionID: subscriptionID,
		disksClient:    disksClient,
		vmClient:       vmClient,
		publicIPClient: publicIPClient,
	}, nil
}

// ListResources implements service.InventoryService
// Returns VMs, managed disks and public IPs of the subscription with their tags
func (s *service) ListResources(ctx context.Context) ([]model.Resource, error) {
	vms, err := s.ListVirtualMachines(ctx)
	if err != nil {
		return nil, err
	}

	disks, err := s.ListDisks(ctx)
	if err != nil {
		return nil, err
	}

	ips, err := s.ListPublicIPs(ctx)
	if err != nil {
		return nil, err
	}

	resources := make([]model.Resource, 0, len(vms)+len(disks)+len(ips))
	for _, vm := range vms {
		resources = append(resources, vmToResource(vm))
	}
	for _, disk := range disks {
		resources = append(resources, diskToResource(disk))
	}
	for _, ip := range ips {
		resources = append(resources, publicIPToResource(ip))
	}

	zerolog.Ctx(ctx).Debug().
		Str("subscription", s.subscriptionID).
		Int("vms", len(vms)).
		Int("disks", len(disks)).
		Int("public_ips", len(ips)).
		Msg("azure inventory listed")

	return resources, nil
}

func (s *service) ListVirtualMachines(ctx context.Context) ([]*armcompute.VirtualMachine, error) {
	var vms []*armcompute.VirtualMachine

	pager := s.vmClient.NewListAllPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list VMs: %w", err)
		}
		vms = append(vms, page.Value...)
	}

	return vms, nil
}

func (s *service) ListDisks(ctx context.Context) ([]*armcompute.Disk, error) {
	var disks []*armcompute.Disk

	pager := s.disksClient.NewListPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list disks: %w", err)
		}
		disks = append(disks, page.Value...)
	}

	return disks, nil
}

func (s *service) ListPublicIPs(ctx context.Context) ([]*armnetwork.PublicIPAddress, error) {
	var ips []*armnetwork.PublicIPAddress

	pager := s.publicIPClient.NewListAllPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list public IPs: %w", err)
		}
		ips = append(ips, page.Value...)
	}

	return ips, nil
}

func vmToResource(vm *armcompute.VirtualMachine) model.Resource {
	return newResource(vm.ID, vm.Name, vm.Type, vm.Location, vm.Tags)
}

func diskToResource(disk *armcompute.Disk) model.Resource {
	return newResource(disk.ID, disk.Name, disk.Type, disk.Location, disk.Tags)
}

func publicIPToResource(ip *armnetwork.PublicIPAddress) model.Resource {
	return newResource(ip.ID, ip.Name, ip.Type, ip.Location, ip.Tags)
}

func newResource(id, name, resourceType, location *string, tags map[string]*string) model.Resource {
	r := model.Resource{
		ID:       deref(id),
		Name:     deref(name),
		Type:     deref(resourceType),
		Location: deref(location),
		Provider: model.ProviderAzure,
		Tags:     convertTags(tags),
	}
	r.ResourceGroup = extractResourceGroup(r.ID)
	if r.Name == "" {
		r.Name = extractResourceName(r.ID)
	}
	return r
}

// convertTags drops nil values; Azure allows a key with a null value
func convertTags(tags map[string]*string) map[string]string {
	out := make(map[string]string, len(tags))
	for k, v := range tags {
		if v != nil {
			out[k] = *v
		}
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// extractResourceName extracts the resource name from an Azure resource ID
// e.g., "/subscriptions/.../resourceGroups/.../providers/Microsoft.Compute/disks/my-disk"
// returns "my-disk"
func extractResourceName(resourceID string) string {
	parts := strings.Split(resourceID, "/")
	return parts[len(parts)-1]
}

// extractResourceGroup extracts the resource group from an Azure resource ID
func extractResourceGroup(resourceID string) string {
	parts := strings.Split(resourceID, "/")
	for i, part := range parts {
		if strings.EqualFold(part, "resourceGroups") && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	return ""
}
