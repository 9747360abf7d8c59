package awselb

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	elb "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2/types"
	"github.com/elC0mpa/tag-doctor/model"
)

func NewService(awsconfig aws.Config) *service {
	client := elb.NewFromConfig(awsconfig)
	return &service{
		client: client,
		region: awsconfig.Region,
	}
}

// ListResources implements service.InventoryService
// Returns application, network and gateway load balancers with their tags
func (s *service) ListResources(ctx context.Context) ([]model.Resource, error) {
	lbs, err := s.ListLoadBalancers(ctx)
	if err != nil {
		return nil, err
	}

	arns := make([]string, 0, len(lbs))
	for _, lb := range lbs {
		arns = append(arns, aws.ToString(lb.LoadBalancerArn))
	}

	tags, err := s.GetTags(ctx, arns)
	if err != nil {
		return nil, err
	}

	resources := make([]model.Resource, 0, len(lbs))
	for _, lb := range lbs {
		resources = append(resources, loadBalancerToResource(lb, tags[aws.ToString(lb.LoadBalancerArn)], s.region))
	}
	return resources, nil
}

func (s *service) ListLoadBalancers(ctx context.Context) ([]types.LoadBalancer, error) {
	var lbs []types.LoadBalancer

	paginator := elb.NewDescribeLoadBalancersPaginator(s.client, &elb.DescribeLoadBalancersInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe load balancers: %w", err)
		}
		lbs = append(lbs, page.LoadBalancers...)
	}

	return lbs, nil
}

// GetTags returns the tags of each ARN
func (s *service) GetTags(ctx context.Context, arns []string) (map[string][]types.Tag, error) {
	tags := make(map[string][]types.Tag, len(arns))

	for _, batch := range batches(arns, describeTagsBatch) {
		output, err := s.client.DescribeTags(ctx, &elb.DescribeTagsInput{ResourceArns: batch})
		if err != nil {
			return nil, fmt.Errorf("failed to describe load balancer tags: %w", err)
		}
		for _, desc := range output.TagDescriptions {
			tags[aws.ToString(desc.ResourceArn)] = desc.Tags
		}
	}

	return tags, nil
}

func loadBalancerToResource(lb types.LoadBalancer, tags []types.Tag, region string) model.Resource {
	out := make(map[string]string, len(tags))
	resourceGroup := ""
	for _, t := range tags {
		key := aws.ToString(t.Key)
		if key == "aws:cloudformation:stack-name" {
			resourceGroup = aws.ToString(t.Value)
		}
		if strings.HasPrefix(key, "aws:") {
			continue
		}
		out[key] = aws.ToString(t.Value)
	}

	return model.Resource{
		ID:            aws.ToString(lb.LoadBalancerArn),
		Name:          aws.ToString(lb.LoadBalancerName),
		Type:          loadBalancerType,
		ResourceGroup: resourceGroup,
		Location:      region,
		Provider:      model.ProviderAWS,
		Tags:          out,
	}
}

func batches(items []string, size int) [][]string {
	var out [][]string
	for len(items) > size {
		out = append(out, items[:size])
		items = items[size:]
	}
	if len(items) > 0 {
		out = append(out, items)
	}
	return out
}
