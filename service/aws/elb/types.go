package awselb

import (
	"context"

	elb "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2/types"
	"github.com/elC0mpa/tag-doctor/model"
)

const (
	loadBalancerType = "AWS::ElasticLoadBalancingV2::LoadBalancer"

	// DescribeTags accepts at most 20 ARNs per call
	describeTagsBatch = 20
)

type service struct {
	client *elb.Client
	region string
}

type ELBService interface {
	// Generic interface methods (implements service.InventoryService)
	ListResources(ctx context.Context) ([]model.Resource, error)

	ListLoadBalancers(ctx context.Context) ([]types.LoadBalancer, error)
	GetTags(ctx context.Context, arns []string) (map[string][]types.Tag, error)
}
