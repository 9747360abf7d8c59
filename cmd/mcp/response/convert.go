package response

import (
	"sort"

	"github.com/elC0mpa/tag-doctor/model"
)

// ConvertAccountInfo converts model.AccountInfo to response.AccountInfo
func ConvertAccountInfo(info *model.AccountInfo) *AccountInfo {
	if info == nil {
		return nil
	}
	return &AccountInfo{
		Provider:    info.Provider,
		AccountID:   info.AccountID,
		AccountName: info.AccountName,
	}
}

// ConvertCostInfo converts model.CostInfo to response.CostInfo
func ConvertCostInfo(info *model.CostInfo, groupBy string) *CostInfo {
	if info == nil {
		return nil
	}

	groups := make([]GroupCost, 0, len(info.CostGroup))
	var total float64
	var currency string

	for name, cost := range info.CostGroup {
		groups = append(groups, GroupCost{
			Name:   name,
			Amount: cost.Amount,
			Unit:   cost.Unit,
		})
		total += cost.Amount
		if currency == "" {
			currency = cost.Unit
		}
	}

	// Sort by amount descending, then name
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Amount != groups[j].Amount {
			return groups[i].Amount > groups[j].Amount
		}
		return groups[i].Name < groups[j].Name
	})

	startDate := ""
	if info.Start != nil {
		startDate = *info.Start
	}
	endDate := ""
	if info.End != nil {
		endDate = *info.End
	}

	if currency == "" {
		currency = "USD"
	}

	return &CostInfo{
		StartDate: startDate,
		EndDate:   endDate,
		GroupBy:   groupBy,
		Groups:    groups,
		Total:     total,
		Currency:  currency,
	}
}

// ConvertTrendData converts []model.CostInfo to CostTrend with summary
func ConvertTrendData(data []model.CostInfo) *CostTrend {
	if len(data) == 0 {
		return &CostTrend{
			Months:  []CostInfo{},
			Summary: TrendSummary{},
		}
	}

	var months []CostInfo
	var totalSpend float64
	var highestAmount, lowestAmount float64
	var highestMonth, lowestMonth string
	first := true

	for _, monthData := range data {
		costInfo := ConvertCostInfo(&monthData, "")
		if costInfo == nil {
			continue
		}

		// Monthly totals are reported under the "Total" key
		monthTotal := monthData.CostGroup["Total"].Amount
		costInfo.Total = monthTotal

		months = append(months, *costInfo)
		totalSpend += monthTotal

		monthLabel := ""
		if len(costInfo.StartDate) >= 7 {
			monthLabel = costInfo.StartDate[:7] // YYYY-MM
		}

		if first || monthTotal > highestAmount {
			highestAmount = monthTotal
			highestMonth = monthLabel
		}
		if first || monthTotal < lowestAmount {
			lowestAmount = monthTotal
			lowestMonth = monthLabel
		}
		first = false
	}

	avgMonthly := 0.0
	if len(months) > 0 {
		avgMonthly = totalSpend / float64(len(months))
	}

	return &CostTrend{
		Months: months,
		Summary: TrendSummary{
			TotalSpend:     totalSpend,
			AverageMonthly: avgMonthly,
			HighestMonth:   highestMonth,
			HighestAmount:  highestAmount,
			LowestMonth:    lowestMonth,
			LowestAmount:   lowestAmount,
		},
	}
}

// ConvertResources converts inventoried resources to response format
func ConvertResources(sources []string, resources []model.Resource) *ResourceList {
	result := make([]Resource, 0, len(resources))
	for _, r := range resources {
		result = append(result, Resource{
			ID:            r.ID,
			Name:          r.Name,
			Type:          r.Type,
			Provider:      r.Provider,
			ResourceGroup: r.ResourceGroup,
			Location:      r.Location,
			Tags:          r.Tags,
		})
	}
	return &ResourceList{Sources: sources, Count: len(result), Resources: result}
}

// ConvertResourceCompliance converts a single evaluation to response format
func ConvertResourceCompliance(c model.ResourceCompliance) ResourceScore {
	invalid := make([]InvalidTag, 0, len(c.InvalidTags))
	for _, t := range c.InvalidTags {
		invalid = append(invalid, InvalidTag{Tag: t.Tag, Value: t.Value, ValidValues: t.ValidValues})
	}

	return ResourceScore{
		Name:               c.Resource.Name,
		Type:               c.Resource.Type,
		Provider:           c.Resource.Provider,
		Score:              c.Score,
		Status:             string(c.Status),
		MissingRequired:    nonNil(c.MissingRequired),
		MissingRecommended: nonNil(c.MissingRecommended),
		InvalidTags:        invalid,
	}
}

// ConvertAuditReport condenses a report, keeping only non-compliant resources
func ConvertAuditReport(source string, report *model.AuditReport) *AuditReport {
	if report == nil {
		return nil
	}

	s := report.Summary
	resp := &AuditReport{
		Source: source,
		Summary: AuditSummary{
			Total:             s.Total,
			Compliant:         s.Compliant,
			NonCompliant:      s.NonCompliant,
			ComplianceRate:    s.ComplianceRate,
			AverageScore:      s.AverageScore,
			Rating:            string(s.Rating),
			MostMissingTag:    s.MostMissingTag,
			NeedingAttention:  s.NeedingAttention,
			WithInvalidValues: s.WithInvalidValues,
		},
		MissingRequired: make([]TagCount, 0, len(report.MissingRequired)),
		ByType:          make([]GroupCompliance, 0, len(report.ByType)),
		NonCompliant:    []ResourceScore{},
		Actions:         make([]Action, 0, len(report.Actions)),
	}

	for _, c := range report.MissingRequired {
		resp.MissingRequired = append(resp.MissingRequired, TagCount{Tag: c.Tag, Count: c.Count, Percent: c.Percent})
	}
	for _, t := range report.ByType {
		resp.ByType = append(resp.ByType, GroupCompliance{
			Name:      t.Type,
			Total:     t.Total,
			Compliant: t.Compliant,
			Percent:   t.Percent,
			Status:    string(t.Status),
		})
	}
	for _, p := range report.ByProvider {
		resp.ByProvider = append(resp.ByProvider, GroupCompliance{
			Name:      p.Provider,
			Total:     p.Total,
			Compliant: p.Compliant,
			Percent:   p.Percent,
			Status:    string(p.Rating),
		})
	}
	for _, d := range report.Details {
		if !d.Compliant() {
			resp.NonCompliant = append(resp.NonCompliant, ConvertResourceCompliance(d))
		}
	}
	for _, a := range report.Actions {
		resp.Actions = append(resp.Actions, Action{
			Priority: string(a.Priority),
			Title:    a.Title,
			Impact:   a.Impact,
			Effort:   a.Effort,
		})
	}

	return resp
}

// ConvertInventory converts modelled inventory rows to response format
func ConvertInventory(items []model.InventoryItem) []InventoryItem {
	result := make([]InventoryItem, 0, len(items))
	for _, i := range items {
		result = append(result, InventoryItem{
			Name:          i.Name,
			Type:          i.Type,
			ResourceGroup: i.ResourceGroup,
			Location:      i.Location,
			Status:        i.Status,
			Created:       i.Created,
			Tags:          i.Tags,
			MonthlyCost:   i.MonthlyCost,
		})
	}
	return result
}

// ConvertCostSummaries converts per-type or per-group aggregates
func ConvertCostSummaries(summaries []model.CostSummary) []CostSummary {
	result := make([]CostSummary, 0, len(summaries))
	for _, s := range summaries {
		result = append(result, CostSummary{Key: s.Key, Count: s.Count, Total: s.Total})
	}
	return result
}

// ConvertOptimizationSteps flattens applied changes and their errors
func ConvertOptimizationSteps(steps []model.OptimizationStep) []OptimizationStep {
	result := make([]OptimizationStep, 0, len(steps))
	for _, s := range steps {
		step := OptimizationStep{
			Phase:    s.Phase,
			Title:    s.Title,
			Resource: s.Resource,
			Message:  s.Message,
		}
		if s.Change != nil {
			step.Action = s.Change.Action
			step.From = s.Change.From
			step.To = s.Change.To
			step.OldCost = s.Change.OldCost
			step.NewCost = s.Change.NewCost
		}
		if s.Err != nil {
			step.Error = s.Err.Error()
		}
		result = append(result, step)
	}
	return result
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
