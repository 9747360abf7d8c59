package model

// Workflow selects what the orchestrator runs
type Workflow string

const (
	WorkflowAudit  Workflow = "audit"
	WorkflowCosts  Workflow = "costs"
	WorkflowActual Workflow = "actual"
	WorkflowPolicy Workflow = "policy"
)

// MaxCount caps the size of a synthetic inventory
const MaxCount = 10000

type Flags struct {
	Workflow Workflow

	// Common flags
	ConfigFile string
	LogLevel   string
	JSON       bool

	// Audit flags
	Source string
	Count  int
	Seed   int64

	// Cost model flags
	Hours   float64
	CSVPath string
	PNGPath string

	// Actual cost flags
	Provider string
	CostTag  string
	Trend    bool

	// AWS-specific flags
	Region  string
	Profile string

	// GCP-specific flags
	Project string

	// Azure-specific flags
	Subscription string
}
