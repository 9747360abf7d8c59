package awscostexplorer

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/elC0mpa/tag-doctor/model"
)

const (
	costsAggregation = "UnblendedCost"
	totalKey         = "Total"
	untaggedKey      = "(untagged)"
)

type service struct {
	client *costexplorer.Client
	tagKey string
}

type CostService interface {
	// Generic interface methods (implements service.CostService)
	GetCurrentMonthCostsByGroup(ctx context.Context) (*model.CostInfo, error)
	GetLastSixMonthsCosts(ctx context.Context) ([]model.CostInfo, error)

	GetMonthCostsByTag(ctx context.Context, endDate time.Time) (*model.CostInfo, error)
}
