package azurecostmanagement

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/costmanagement/armcostmanagement"
	"github.com/elC0mpa/tag-doctor/model"
	"github.com/rs/zerolog"
)

func NewService(subscriptionID string, credential *Credential) (*service, error) {
	// the query API throttles aggressively, so allow more retries than the default
	opts := &arm.ClientOptions{
		ClientOptions: azcore.ClientOptions{
			Retry: policy.RetryOptions{MaxRetries: 6, RetryDelay: 2 * time.Second},
		},
	}

	client, err := armcostmanagement.NewQueryClient(credential, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create cost management client: %w", err)
	}

	return &service{
		subscriptionID: subscriptionID,
		client:         client,
	}, nil
}

// GetCurrentMonthCostsByGroup implements service.CostService
func (s *service) GetCurrentMonthCostsByGroup(ctx context.Context) (*model.CostInfo, error) {
	end := time.Now().UTC()
	start := firstDayOfMonth(end)

	dataset := monthlyDataset()
	dataset.Grouping = []*armcostmanagement.QueryGrouping{
		{
			Type: to.Ptr(armcostmanagement.QueryColumnTypeDimension),
			Name: to.Ptr(resourceGroupDimension),
		},
	}

	resp, err := s.client.Usage(ctx, s.scope(), queryDefinition(start, end, dataset), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to query costs by resource group: %w", err)
	}

	var groups model.CostGroup
	if resp.Properties != nil {
		groups = parseRows(resp.Properties.Columns, resp.Properties.Rows, resourceGroupDimension)
	} else {
		groups = make(model.CostGroup)
	}

	zerolog.Ctx(ctx).Debug().Int("resource_groups", len(groups)).Msg("azure costs by resource group")

	return costInfo(start, end, groups), nil
}

// GetLastSixMonthsCosts implements service.CostService
// A month whose query fails is reported as zero.
func (s *service) GetLastSixMonthsCosts(ctx context.Context) ([]model.CostInfo, error) {
	logger := zerolog.Ctx(ctx)
	monthlyCosts := make([]model.CostInfo, 0, 6)

	for i := 6; i >= 1; i-- {
		month := time.Now().UTC().AddDate(0, -i, 0)
		start := firstDayOfMonth(month)
		end := lastDayOfMonth(month)

		groups := make(model.CostGroup)
		resp, err := s.client.Usage(ctx, s.scope(), queryDefinition(start, end, monthlyDataset()), nil)
		if err != nil {
			logger.Warn().Err(err).Str("month", start.Format("2006-01")).Msg("failed to query monthly cost")
		} else if resp.Properties != nil {
			groups = parseRows(resp.Properties.Columns, resp.Properties.Rows, "")
		}

		if _, ok := groups[totalKey]; !ok {
			groups[totalKey] = struct {
				Amount float64
				Unit   string
			}{Unit: defaultCurrency}
		}

		monthlyCosts = append(monthlyCosts, *costInfo(start, end, groups))
	}

	return monthlyCosts, nil
}

func (s *service) scope() string {
	return fmt.Sprintf("/subscriptions/%s", s.subscriptionID)
}

func queryDefinition(start, end time.Time, dataset *armcostmanagement.QueryDataset) armcostmanagement.QueryDefinition {
	return armcostmanagement.QueryDefinition{
		Type:      to.Ptr(armcostmanagement.ExportTypeActualCost),
		Timeframe: to.Ptr(armcostmanagement.TimeframeTypeCustom),
		TimePeriod: &armcostmanagement.QueryTimePeriod{
			From: to.Ptr(start),
			To:   to.Ptr(end),
		},
		Dataset: dataset,
	}
}

// monthlyDataset sums cost over the whole period (no daily rows)
func monthlyDataset() *armcostmanagement.QueryDataset {
	return &armcostmanagement.QueryDataset{
		Aggregation: map[string]*armcostmanagement.QueryAggregation{
			"totalCost": {
				Name:     to.Ptr("Cost"),
				Function: to.Ptr(armcostmanagement.FunctionTypeSum),
			},
		},
	}
}

// parseRows sums the cost column per value of groupColumn. Columns are
// located by name since their order depends on the query. An empty
// groupColumn sums everything under "Total".
func parseRows(columns []*armcostmanagement.QueryColumn, rows [][]any, groupColumn string) model.CostGroup {
	costIdx, groupIdx, currencyIdx := -1, -1, -1
	for i, c := range columns {
		if c == nil || c.Name == nil {
			continue
		}
		switch name := *c.Name; {
		case strings.EqualFold(name, "Cost"), strings.EqualFold(name, "PreTaxCost"), strings.EqualFold(name, "totalCost"):
			costIdx = i
		case strings.EqualFold(name, "Currency"):
			currencyIdx = i
		case groupColumn != "" && strings.EqualFold(name, groupColumn):
			groupIdx = i
		}
	}

	groups := make(model.CostGroup)
	if costIdx < 0 {
		return groups
	}

	for _, row := range rows {
		if costIdx >= len(row) {
			continue
		}
		cost, ok := row[costIdx].(float64)
		if !ok {
			continue
		}

		key := totalKey
		if groupColumn != "" {
			key = unassignedGroup
			if groupIdx >= 0 && groupIdx < len(row) {
				if name, ok := row[groupIdx].(string); ok && name != "" {
					key = name
				}
			}
		}

		unit := defaultCurrency
		if currencyIdx >= 0 && currencyIdx < len(row) {
			if c, ok := row[currencyIdx].(string); ok && c != "" {
				unit = c
			}
		}

		existing := groups[key]
		groups[key] = struct {
			Amount float64
			Unit   string
		}{
			Amount: existing.Amount + cost,
			Unit:   unit,
		}
	}

	return groups
}

func costInfo(start, end time.Time, groups model.CostGroup) *model.CostInfo {
	startStr := start.Format("2006-01-02")
	endStr := end.Format("2006-01-02")

	return &model.CostInfo{
		DateInterval: model.DateInterval{
			Start: &startStr,
			End:   &endStr,
		},
		CostGroup: groups,
	}
}

func firstDayOfMonth(month time.Time) time.Time {
	return time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func lastDayOfMonth(month time.Time) time.Time {
	return time.Date(month.Year(), month.Month()+1, 0, 23, 59, 59, 0, time.UTC)
}
