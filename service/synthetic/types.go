package synthetic

import (
	"context"
	"math/rand/v2"

	"github.com/elC0mpa/tag-doctor/model"
)

type service struct {
	count int
	rng   *rand.Rand
}

type GeneratorService interface {
	// Generic interface methods (implements service.InventoryService)
	ListResources(ctx context.Context) ([]model.Resource, error)

	Generate() []model.Resource
}

type tagChoices struct {
	name   string
	values []string
}

var resourceTypes = []string{"Virtual Machine", "Storage Account", "SQL Database", "App Service", "Network Interface"}

var resourceGroups = []string{"rg-production", "rg-development", "rg-shared"}

var locations = []string{"East US", "West Europe", "Southeast Asia"}

// an empty value means the tag was left blank and is dropped
var possibleTags = []tagChoices{
	{"Environment", []string{"Production", "Staging", "Development", "Test", ""}},
	{"CostCenter", []string{"IT-001", "HR-002", "Sales-003", "Marketing-004", ""}},
	{"Owner", []string{"john.doe@company.com", "jane.smith@company.com", "admin@company.com", ""}},
	{"Project", []string{"Project-Alpha", "Project-Beta", "Project-Gamma", ""}},
	{"DataClassification", []string{"Public", "Internal", "Confidential", "Restricted", ""}},
	{"BackupPolicy", []string{"Daily", "Weekly", "Monthly", "None", ""}},
	{"MaintenanceWindow", []string{"Weekend", "Weekday-Night", "Anytime", ""}},
}

var departments = []string{"Engineering", "Finance", "HR"}

const (
	tagProbability   = 0.7
	strayProbability = 0.1
)
