package response

// AccountInfo represents cloud account/project identity
type AccountInfo struct {
	Provider    string `json:"provider"`
	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name"`
}

// GroupCost represents cost for a single resource group or tag value
type GroupCost struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// CostInfo represents cost data for a time period
type CostInfo struct {
	StartDate string      `json:"start_date"`
	EndDate   string      `json:"end_date"`
	GroupBy   string      `json:"group_by,omitempty"`
	Groups    []GroupCost `json:"groups"`
	Total     float64     `json:"total"`
	Currency  string      `json:"currency"`
}

// TrendSummary provides summary statistics for cost trend
type TrendSummary struct {
	TotalSpend     float64 `json:"total_spend_6_months"`
	AverageMonthly float64 `json:"average_monthly"`
	HighestMonth   string  `json:"highest_month"`
	HighestAmount  float64 `json:"highest_amount"`
	LowestMonth    string  `json:"lowest_month"`
	LowestAmount   float64 `json:"lowest_amount"`
}

// CostTrend represents 6-month cost trend with summary
type CostTrend struct {
	Months  []CostInfo   `json:"months"`
	Summary TrendSummary `json:"summary"`
}

// AzureSubscription represents Azure subscription details
type AzureSubscription struct {
	SubscriptionID string `json:"subscription_id"`
	DisplayName    string `json:"display_name"`
	State          string `json:"state"`
}

// Resource is an inventoried resource with its tags
type Resource struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Type          string            `json:"type"`
	Provider      string            `json:"provider"`
	ResourceGroup string            `json:"resource_group,omitempty"`
	Location      string            `json:"location,omitempty"`
	Tags          map[string]string `json:"tags"`
}

// ResourceList is the result of an inventory listing
type ResourceList struct {
	Sources   []string   `json:"sources"`
	Count     int        `json:"count"`
	Resources []Resource `json:"resources"`
}

// InvalidTag is a tag whose value is outside the allowed set
type InvalidTag struct {
	Tag         string   `json:"tag"`
	Value       string   `json:"value"`
	ValidValues []string `json:"valid_values"`
}

// ResourceScore is the compliance evaluation of one resource
type ResourceScore struct {
	Name               string       `json:"name"`
	Type               string       `json:"type"`
	Provider           string       `json:"provider,omitempty"`
	Score              float64      `json:"score"`
	Status             string       `json:"status"`
	MissingRequired    []string     `json:"missing_required"`
	MissingRecommended []string     `json:"missing_recommended"`
	InvalidTags        []InvalidTag `json:"invalid_tags"`
}

// AuditSummary holds the headline numbers of an audit
type AuditSummary struct {
	Total             int     `json:"total"`
	Compliant         int     `json:"compliant"`
	NonCompliant      int     `json:"non_compliant"`
	ComplianceRate    float64 `json:"compliance_rate"`
	AverageScore      float64 `json:"average_score"`
	Rating            string  `json:"rating"`
	MostMissingTag    string  `json:"most_missing_tag,omitempty"`
	NeedingAttention  int     `json:"needing_attention"`
	WithInvalidValues int     `json:"with_invalid_values"`
}

// TagCount is the number of resources missing a tag
type TagCount struct {
	Tag     string  `json:"tag"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// GroupCompliance aggregates compliance per resource type or provider
type GroupCompliance struct {
	Name      string  `json:"name"`
	Total     int     `json:"total"`
	Compliant int     `json:"compliant"`
	Percent   float64 `json:"percent"`
	Status    string  `json:"status"`
}

// Action is an item of the prioritised action plan
type Action struct {
	Priority string `json:"priority"`
	Title    string `json:"title"`
	Impact   string `json:"impact"`
	Effort   string `json:"effort"`
}

// AuditReport is a condensed tag audit
type AuditReport struct {
	Source          string            `json:"source"`
	Summary         AuditSummary      `json:"summary"`
	MissingRequired []TagCount        `json:"missing_required"`
	ByType          []GroupCompliance `json:"by_type"`
	ByProvider      []GroupCompliance `json:"by_provider,omitempty"`
	NonCompliant    []ResourceScore   `json:"non_compliant"`
	Actions         []Action          `json:"actions"`
}

// InventoryItem is a modelled resource with its monthly cost
type InventoryItem struct {
	Name          string            `json:"name"`
	Type          string            `json:"type"`
	ResourceGroup string            `json:"resource_group"`
	Location      string            `json:"location"`
	Status        string            `json:"status"`
	Created       string            `json:"created"`
	Tags          map[string]string `json:"tags"`
	MonthlyCost   float64           `json:"monthly_cost"`
}

// CostSummary aggregates modelled cost per type or group
type CostSummary struct {
	Key   string  `json:"key"`
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

// OptimizationStep is one applied optimisation
type OptimizationStep struct {
	Phase    int     `json:"phase"`
	Title    string  `json:"title"`
	Resource string  `json:"resource"`
	Message  string  `json:"message"`
	Action   string  `json:"action,omitempty"`
	From     string  `json:"from,omitempty"`
	To       string  `json:"to,omitempty"`
	OldCost  float64 `json:"old_cost,omitempty"`
	NewCost  float64 `json:"new_cost,omitempty"`
	Error    string  `json:"error,omitempty"`
}

// LabReport is the result of running the cost model lab
type LabReport struct {
	Hours          float64            `json:"hours"`
	Before         float64            `json:"monthly_cost_before"`
	After          float64            `json:"monthly_cost_after"`
	Savings        float64            `json:"monthly_savings"`
	SavingsPercent float64            `json:"savings_percent"`
	AnnualSavings  float64            `json:"annual_savings"`
	ByType         []CostSummary      `json:"by_type"`
	ByGroup        []CostSummary      `json:"by_group"`
	Steps          []OptimizationStep `json:"steps"`
	Inventory      []InventoryItem    `json:"inventory"`
}
