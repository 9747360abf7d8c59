package awselb

import (
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2/types"
	"github.com/stretchr/testify/assert"
)

func TestLoadBalancerToResource(t *testing.T) {
	lb := types.LoadBalancer{
		LoadBalancerArn:  aws.String("arn:aws:elasticloadbalancing:us-east-1:123:loadbalancer/app/web/abc"),
		LoadBalancerName: aws.String("web"),
	}
	tags := []types.Tag{
		{Key: aws.String("Owner"), Value: aws.String("ops@company.com")},
		{Key: aws.String("aws:cloudformation:stack-name"), Value: aws.String("edge")},
	}

	got := loadBalancerToResource(lb, tags, "us-east-1")
	assert.Equal(t, "web", got.Name)
	assert.Equal(t, "edge", got.ResourceGroup)
	assert.Equal(t, map[string]string{"Owner": "ops@company.com"}, got.Tags)
	assert.Equal(t, loadBalancerType, got.Type)
}

func TestBatches(t *testing.T) {
	var arns []string
	for i := range 45 {
		arns = append(arns, fmt.Sprintf("arn-%d", i))
	}

	got := batches(arns, describeTagsBatch)
	assert.Len(t, got, 3)
	assert.Len(t, got[0], 20)
	assert.Len(t, got[2], 5)
	assert.Empty(t, batches(nil, describeTagsBatch))
}
