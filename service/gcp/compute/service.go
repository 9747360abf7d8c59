package gcpcompute

import (
	"context"
	"fmt"
	"strings"

	"github.com/elC0mpa/tag-doctor/model"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/compute/v1"
	"google.golang.org/api/option"
)

func NewService(ctx context.Context, projectID string, creds *google.Credentials) (*service, error) {
	computeClient, err := compute.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("failed to create Compute client: %w", err)
	}

	return &service{
		projectID:     projectID,
		computeClient: computeClient,
	}, nil
}

// ListResources implements service.InventoryService
// Returns instances, persistent disks and addresses with their labels. The
// project stands in for the resource group.
func (s *service) ListResources(ctx context.Context) ([]model.Resource, error) {
	instances, err := s.ListInstances(ctx)
	if err != nil {
		return nil, err
	}

	disks, err := s.ListDisks(ctx)
	if err != nil {
		return nil, err
	}

	addresses, err := s.ListAddresses(ctx)
	if err != nil {
		return nil, err
	}

	resources := make([]model.Resource, 0, len(instances)+len(disks)+len(addresses))
	for _, instance := range instances {
		resources = append(resources, newResource(s.projectID, instance.SelfLink, instance.Name, instanceType, instance.Zone, instance.Labels))
	}
	for _, disk := range disks {
		resources = append(resources, newResource(s.projectID, disk.SelfLink, disk.Name, diskType, disk.Zone, disk.Labels))
	}
	for _, address := range addresses {
		location := address.Region
		if location == "" {
			location = "global"
		}
		resources = append(resources, newResource(s.projectID, address.SelfLink, address.Name, addressType, location, address.Labels))
	}

	zerolog.Ctx(ctx).Debug().
		Str("project", s.projectID).
		Int("instances", len(instances)).
		Int("disks", len(disks)).
		Int("addresses", len(addresses)).
		Msg("gcp inventory listed")

	return resources, nil
}

func (s *service) ListInstances(ctx context.Context) ([]*compute.Instance, error) {
	var instances []*compute.Instance

	err := s.computeClient.Instances.AggregatedList(s.projectID).Pages(ctx, func(page *compute.InstanceAggregatedList) error {
		for _, scoped := range page.Items {
			instances = append(instances, scoped.Instances...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list instances: %w", err)
	}

	return instances, nil
}

func (s *service) ListDisks(ctx context.Context) ([]*compute.Disk, error) {
	var disks []*compute.Disk

	err := s.computeClient.Disks.AggregatedList(s.projectID).Pages(ctx, func(page *compute.DiskAggregatedList) error {
		for _, scoped := range page.Items {
			disks = append(disks, scoped.Disks...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list disks: %w", err)
	}

	return disks, nil
}

func (s *service) ListAddresses(ctx context.Context) ([]*compute.Address, error) {
	var addresses []*compute.Address

	err := s.computeClient.Addresses.AggregatedList(s.projectID).Pages(ctx, func(page *compute.AddressAggregatedList) error {
		for _, scoped := range page.Items {
			addresses = append(addresses, scoped.Addresses...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}

	return addresses, nil
}

func newResource(projectID, selfLink, name, resourceType, location string, labels map[string]string) model.Resource {
	tags := make(map[string]string, len(labels))
	for k, v := range labels {
		tags[k] = v
	}

	return model.Resource{
		ID:            selfLink,
		Name:          name,
		Type:          resourceType,
		ResourceGroup: projectID,
		Location:      extractResourceName(location),
		Provider:      model.ProviderGCP,
		Tags:          tags,
	}
}

// extractResourceName extracts the resource name from a GCP resource URL
// e.g., "https://www.googleapis.com/compute/v1/projects/my-project/zones/us-central1-a"
// returns "us-central1-a"
func extractResourceName(resourceURL string) string {
	if resourceURL == "" {
		return ""
	}
	parts := strings.Split(resourceURL, "/")
	return parts[len(parts)-1]
}
