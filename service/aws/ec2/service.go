package awsec2

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/elC0mpa/tag-doctor/model"
	"github.com/rs/zerolog"
)

func NewService(awsconfig aws.Config) *service {
	client := ec2.NewFromConfig(awsconfig)
	return &service{
		client: client,
		region: awsconfig.Region,
	}
}

// ListResources implements service.InventoryService
// Returns the instances and EBS volumes of the configured region
func (s *service) ListResources(ctx context.Context) ([]model.Resource, error) {
	instances, err := s.ListInstances(ctx)
	if err != nil {
		return nil, err
	}

	volumes, err := s.ListVolumes(ctx)
	if err != nil {
		return nil, err
	}

	resources := make([]model.Resource, 0, len(instances)+len(volumes))
	for _, instance := range instances {
		resources = append(resources, instanceToResource(instance, s.region))
	}
	for _, volume := range volumes {
		resources = append(resources, volumeToResource(volume, s.region))
	}

	zerolog.Ctx(ctx).Debug().
		Str("region", s.region).
		Int("instances", len(instances)).
		Int("volumes", len(volumes)).
		Msg("aws inventory listed")

	return resources, nil
}

// ListInstances skips terminated instances
func (s *service) ListInstances(ctx context.Context) ([]types.Instance, error) {
	input := &ec2.DescribeInstancesInput{
		Filters: []types.Filter{
			{
				Name:   aws.String("instance-state-name"),
				Values: []string{"pending", "running", "stopping", "stopped"},
			},
		},
	}

	var instances []types.Instance
	paginator := ec2.NewDescribeInstancesPaginator(s.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe instances: %w", err)
		}
		for _, reservation := range page.Reservations {
			instances = append(instances, reservation.Instances...)
		}
	}

	return instances, nil
}

func (s *service) ListVolumes(ctx context.Context) ([]types.Volume, error) {
	var volumes []types.Volume

	paginator := ec2.NewDescribeVolumesPaginator(s.client, &ec2.DescribeVolumesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe volumes: %w", err)
		}
		volumes = append(volumes, page.Volumes...)
	}

	return volumes, nil
}

func instanceToResource(instance types.Instance, region string) model.Resource {
	location := region
	if instance.Placement != nil && instance.Placement.AvailabilityZone != nil {
		location = *instance.Placement.AvailabilityZone
	}
	return newResource(aws.ToString(instance.InstanceId), instanceType, location, instance.Tags)
}

func volumeToResource(volume types.Volume, region string) model.Resource {
	location := region
	if volume.AvailabilityZone != nil {
		location = *volume.AvailabilityZone
	}
	return newResource(aws.ToString(volume.VolumeId), volumeType, location, volume.Tags)
}

func newResource(id, resourceType, location string, tags []types.Tag) model.Resource {
	all := make(map[string]string, len(tags))
	for _, t := range tags {
		all[aws.ToString(t.Key)] = aws.ToString(t.Value)
	}

	name := all[nameTag]
	if name == "" {
		name = id
	}

	return model.Resource{
		ID:            id,
		Name:          name,
		Type:          resourceType,
		ResourceGroup: all[stackNameTag],
		Location:      location,
		Provider:      model.ProviderAWS,
		Tags:          userTags(all),
	}
}

// userTags drops the reserved aws: prefix, which users cannot set or edit
func userTags(tags map[string]string) map[string]string {
	out := make(map[string]string, len(tags))
	for k, v := range tags {
		if strings.HasPrefix(k, "aws:") {
			continue
		}
		out[k] = v
	}
	return out
}
