package awsec2

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/elC0mpa/tag-doctor/model"
	"github.com/stretchr/testify/assert"
)

func tag(k, v string) types.Tag {
	return types.Tag{Key: aws.String(k), Value: aws.String(v)}
}

func TestInstanceToResource(t *testing.T) {
	instance := types.Instance{
		InstanceId: aws.String("i-0abc"),
		Placement:  &types.Placement{AvailabilityZone: aws.String("us-east-1a")},
		Tags: []types.Tag{
			tag("Name", "web-01"),
			tag("Environment", "Production"),
			tag("aws:cloudformation:stack-name", "web-stack"),
		},
	}

	got := instanceToResource(instance, "us-east-1")
	assert.Equal(t, model.Resource{
		ID:            "i-0abc",
		Name:          "web-01",
		Type:          instanceType,
		ResourceGroup: "web-stack",
		Location:      "us-east-1a",
		Provider:      model.ProviderAWS,
		Tags:          map[string]string{"Name": "web-01", "Environment": "Production"},
	}, got)
}

func TestVolumeToResource(t *testing.T) {
	got := volumeToResource(types.Volume{VolumeId: aws.String("vol-1")}, "eu-west-1")
	assert.Equal(t, "vol-1", got.Name)
	assert.Equal(t, volumeType, got.Type)
	assert.Equal(t, "eu-west-1", got.Location)
	assert.Empty(t, got.ResourceGroup)
	assert.Empty(t, got.Tags)
}
