package awscostexplorer

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/elC0mpa/tag-doctor/model"
)

// NewService groups costs by the values of a cost allocation tag. The tag
// must be activated in the billing console for Cost Explorer to report it.
func NewService(awsconfig aws.Config, tagKey string) *service {
	client := costexplorer.NewFromConfig(awsconfig)
	return &service{
		client: client,
		tagKey: tagKey,
	}
}

// GetCurrentMonthCostsByGroup implements service.CostService
func (s *service) GetCurrentMonthCostsByGroup(ctx context.Context) (*model.CostInfo, error) {
	return s.GetMonthCostsByTag(ctx, time.Now())
}

func (s *service) GetMonthCostsByTag(ctx context.Context, endDate time.Time) (*model.CostInfo, error) {
	firstOfMonth := getFirstDayOfMonth(endDate)
	// Cost Explorer rejects an empty interval on the first day of a month
	if endDate.Format("2006-01-02") == firstOfMonth.Format("2006-01-02") {
		endDate = firstOfMonth.AddDate(0, 0, 1)
	}

	input := &costexplorer.GetCostAndUsageInput{
		Granularity: types.GranularityMonthly,
		TimePeriod: &types.DateInterval{
			Start: aws.String(firstOfMonth.Format("2006-01-02")),
			End:   aws.String(endDate.Format("2006-01-02")),
		},
		Metrics: []string{costsAggregation},
		GroupBy: []types.GroupDefinition{
			{
				Key:  aws.String(s.tagKey),
				Type: types.GroupDefinitionTypeTag,
			},
		},
	}

	output, err := s.client.GetCostAndUsage(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get costs by tag %s: %w", s.tagKey, err)
	}
	if len(output.ResultsByTime) == 0 {
		return nil, fmt.Errorf("failed to get costs by tag %s: empty result", s.tagKey)
	}

	result := output.ResultsByTime[0]
	return &model.CostInfo{
		CostGroup: groupsByTagValue(result.Groups),
		DateInterval: model.DateInterval{
			Start: result.TimePeriod.Start,
			End:   result.TimePeriod.End,
		},
	}, nil
}

// GetLastSixMonthsCosts implements service.CostService
func (s *service) GetLastSixMonthsCosts(ctx context.Context) ([]model.CostInfo, error) {
	input := &costexplorer.GetCostAndUsageInput{
		Granularity: types.GranularityMonthly,
		TimePeriod: &types.DateInterval{
			Start: aws.String(getFirstDayOfMonth(time.Now().AddDate(0, -6, 0)).Format("2006-01-02")),
			End:   aws.String(getFirstDayOfMonth(time.Now()).Format("2006-01-02")),
		},
		Metrics: []string{costsAggregation},
	}

	output, err := s.client.GetCostAndUsage(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly costs: %w", err)
	}

	monthlyCosts := make([]model.CostInfo, 0, len(output.ResultsByTime))
	for _, timeResult := range output.ResultsByTime {
		amount, unit := parseMetric(timeResult.Total[costsAggregation])

		costGroups := make(model.CostGroup)
		costGroups[totalKey] = struct {
			Amount float64
			Unit   string
		}{
			Amount: amount,
			Unit:   unit,
		}

		monthlyCosts = append(monthlyCosts, model.CostInfo{
			DateInterval: model.DateInterval{
				Start: timeResult.TimePeriod.Start,
				End:   timeResult.TimePeriod.End,
			},
			CostGroup: costGroups,
		})
	}

	return monthlyCosts, nil
}

func getFirstDayOfMonth(month time.Time) time.Time {
	return time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
}

// groupsByTagValue keys groups by tag value. Cost Explorer reports tag
// groups as "key$value"; an empty value is the untagged spend.
func groupsByTagValue(results []types.Group) model.CostGroup {
	costGroups := make(model.CostGroup)

	for _, g := range results {
		if len(g.Keys) == 0 {
			continue
		}
		amount, unit := parseMetric(g.Metrics[costsAggregation])
		if amount == 0 {
			continue
		}

		key := g.Keys[0]
		if _, value, ok := strings.Cut(key, "$"); ok {
			key = value
		}
		if key == "" {
			key = untaggedKey
		}

		existing := costGroups[key]
		costGroups[key] = struct {
			Amount float64
			Unit   string
		}{
			Amount: existing.Amount + amount,
			Unit:   unit,
		}
	}

	return costGroups
}

func parseMetric(metric types.MetricValue) (float64, string) {
	amount, err := strconv.ParseFloat(aws.ToString(metric.Amount), 64)
	if err != nil {
		amount = 0
	}

	unit := aws.ToString(metric.Unit)
	if unit == "" {
		unit = "USD"
	}
	return amount, unit
}
