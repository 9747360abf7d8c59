package model

// DateInterval represents a time period for cost analysis
type DateInterval struct {
	Start *string
	End   *string
}

// CostInfo contains cost data for a time period
type CostInfo struct {
	DateInterval
	CostGroup
}

// CostGroup maps a grouping key (resource group, "Total") to its cost data
type CostGroup map[string]struct {
	Amount float64
	Unit   string
}

// ServiceCost represents cost for a single grouping key
type ServiceCost struct {
	Name   string
	Amount float64
	Unit   string
}

// CostChange is the outcome of a mutation on a modelled resource
type CostChange struct {
	Resource string
	Action   string
	From     string
	To       string
	OldCost  float64
	NewCost  float64
}

// Savings is the monthly amount saved by the change (negative when it costs more)
func (c CostChange) Savings() float64 {
	return c.OldCost - c.NewCost
}

// InventoryItem is one row of the modelled resource inventory
type InventoryItem struct {
	Name          string
	Type          string
	ResourceGroup string
	Location      string
	Status        string
	Created       string
	Tags          map[string]string
	MonthlyCost   float64
}

// CostSummary aggregates inventory rows under a key (type or resource group)
type CostSummary struct {
	Key   string
	Count int
	Total float64
}

// CostComparison compares two monthly totals
type CostComparison struct {
	Before float64
	After  float64
}

// Savings is the monthly difference between Before and After
func (c CostComparison) Savings() float64 {
	return c.Before - c.After
}

// SavingsPercent is Savings relative to Before, 0 when Before is 0
func (c CostComparison) SavingsPercent() float64 {
	if c.Before == 0 {
		return 0
	}
	return c.Savings() / c.Before * 100
}

// AnnualSavings extrapolates Savings to twelve months
func (c CostComparison) AnnualSavings() float64 {
	return c.Savings() * 12
}

// OptimizationStep is the outcome of one action of an optimisation plan
type OptimizationStep struct {
	Phase    int
	Title    string
	Resource string
	Message  string
	Change   *CostChange
	Err      error
}
