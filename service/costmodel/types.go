package costmodel

import (
	"errors"
	"time"
)

// DefaultHours is the number of billable hours in a month
const DefaultHours = 730.0

var (
	ErrInvalidSize     = errors.New("invalid VM size")
	ErrInvalidTier     = errors.New("invalid tier")
	ErrInvalidPlan     = errors.New("invalid App Service plan")
	ErrInstanceCount   = errors.New("instance count must be between 1 and 10")
	ErrAutoScaleRange  = errors.New("invalid auto-scale range")
	ErrInvalidCapacity = errors.New("storage capacity must be positive")
	ErrNilResource     = errors.New("resource must not be nil")
	ErrNotFound        = errors.New("resource not found")
)

// Kind identifies the concrete resource type
type Kind string

const (
	KindVirtualMachine Kind = "VirtualMachine"
	KindStorageAccount Kind = "StorageAccount"
	KindSQLDatabase    Kind = "SQLDatabase"
	KindAppService     Kind = "AppService"
)

// Namespace returns the Azure provider namespace used in resource ids
func (k Kind) Namespace() string {
	switch k {
	case KindVirtualMachine:
		return "Microsoft.Compute/virtualMachines"
	case KindStorageAccount:
		return "Microsoft.Storage/storageAccounts"
	case KindSQLDatabase:
		return "Microsoft.Sql/servers/databases"
	case KindAppService:
		return "Microsoft.Web/sites"
	}
	return string(k)
}

// Status is the power state of a resource
type Status string

const (
	StatusRunning Status = "Running"
	StatusStopped Status = "Stopped"
)

// Resource is a modelled Azure resource with a monthly cost
type Resource interface {
	Name() string
	ResourceGroup() string
	Location() string
	ID() string
	Kind() Kind
	Status() Status
	CreatedAt() time.Time
	Tags() map[string]string
	AddTag(key, value string)

	// Start and Stop report whether the status changed
	Start() bool
	Stop() bool

	MonthlyCost(hours float64) float64
	String() string
}

// Common holds the attributes shared by every resource type
type Common struct {
	Name          string
	ResourceGroup string
	Location      string
	Tags          map[string]string
}

// hourly compute rate per VM size
var vmPricing = map[string]float64{
	"Standard_B1s":    0.0104,
	"Standard_B2s":    0.0416,
	"Standard_D2s_v3": 0.096,
	"Standard_D4s_v3": 0.192,
	"Standard_E4s_v3": 0.252,
	"Standard_E8s_v3": 0.504,
}

const defaultVMRate = 0.10

// monthly rate per GB
var storageTierPricing = map[string]float64{
	"Hot":     0.0184,
	"Cool":    0.01,
	"Archive": 0.00099,
}

// monthly compute rate per DTU tier
var sqlTierPricing = map[string]float64{
	"Basic": 4.99,
	"S0":    15.00,
	"S1":    30.00,
	"S2":    75.00,
	"S3":    150.00,
	"P1":    465.00,
}

const (
	defaultSQLRate     = 30.00
	sqlStorageRate     = 0.115
	sqlBackupSurcharge = 10.0
)

// monthly rate per instance
var appServicePricing = map[string]float64{
	"Free":     0,
	"Shared":   9.49,
	"Basic":    54.75,
	"Standard": 146.00,
	"Premium":  292.00,
}

const (
	minInstances = 1
	maxInstances = 10
)
