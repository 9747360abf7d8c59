package awsec2

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/elC0mpa/tag-doctor/model"
)

const (
	instanceType = "AWS::EC2::Instance"
	volumeType   = "AWS::EC2::Volume"

	// tag set by CloudFormation; used as the resource group
	stackNameTag = "aws:cloudformation:stack-name"
	nameTag      = "Name"
)

type service struct {
	client *ec2.Client
	region string
}

type EC2Service interface {
	// Generic interface methods (implements service.InventoryService)
	ListResources(ctx context.Context) ([]model.Resource, error)

	// AWS-specific methods for detailed information
	ListInstances(ctx context.Context) ([]types.Instance, error)
	ListVolumes(ctx context.Context) ([]types.Volume, error)
}
