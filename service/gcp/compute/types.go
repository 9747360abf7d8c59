package gcpcompute

import (
	"context"

	"github.com/elC0mpa/tag-doctor/model"
	"google.golang.org/api/compute/v1"
)

const (
	instanceType = "compute.googleapis.com/Instance"
	diskType     = "compute.googleapis.com/Disk"
	addressType  = "compute.googleapis.com/Address"
)

type service struct {
	projectID     string
	computeClient *compute.Service
}

type ComputeService interface {
	// Generic interface methods (implements service.InventoryService)
	ListResources(ctx context.Context) ([]model.Resource, error)

	// GCP-specific methods for detailed information
	ListInstances(ctx context.Context) ([]*compute.Instance, error)
	ListDisks(ctx context.Context) ([]*compute.Disk, error)
	ListAddresses(ctx context.Context) ([]*compute.Address, error)
}
