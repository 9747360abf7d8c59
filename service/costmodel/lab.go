package costmodel

import (
	"fmt"

	"github.com/elC0mpa/tag-doctor/model"
)

// Lab is a small modelled environment with a production and a development group
type Lab struct {
	Production  *ResourceGroup
	Development *ResourceGroup
}

type action struct {
	phase    int
	title    string
	group    *ResourceGroup
	resource string
	apply    func(Resource) (*model.CostChange, string, error)
}

// NewLab builds the sample environment
func NewLab() (*Lab, error) {
	prod := NewResourceGroup("rg-production", "East US")
	dev := NewResourceGroup("rg-development", "West US")

	prodCommon := func(name string, tags map[string]string) Common {
		return Common{Name: name, ResourceGroup: prod.Name(), Location: prod.Location(), Tags: tags}
	}
	devCommon := func(name string) Common {
		return Common{Name: name, ResourceGroup: dev.Name(), Location: dev.Location()}
	}

	stData, err := NewStorageAccount(StorageAccountConfig{Common: prodCommon("stproddata001", nil), StorageGB: 1000, Tier: "Hot"})
	if err != nil {
		return nil, err
	}
	stBackup, err := NewStorageAccount(StorageAccountConfig{Common: prodCommon("stprodbackup001", nil), StorageGB: 5000, Tier: "Cool"})
	if err != nil {
		return nil, err
	}
	sqlProd, err := NewSQLDatabase(SQLDatabaseConfig{Common: prodCommon("sqlprod001", nil), Tier: "S3", StorageGB: 500})
	if err != nil {
		return nil, err
	}
	appProd, err := NewAppService(AppServiceConfig{Common: prodCommon("app-prod-web", nil), Plan: "Standard", Instances: 3})
	if err != nil {
		return nil, err
	}

	stDev, err := NewStorageAccount(StorageAccountConfig{Common: devCommon("stdev001"), StorageGB: 100, Tier: "Hot"})
	if err != nil {
		return nil, err
	}
	sqlDev, err := NewSQLDatabase(SQLDatabaseConfig{Common: devCommon("sqldev001"), Tier: "Basic", StorageGB: 50})
	if err != nil {
		return nil, err
	}
	appDev, err := NewAppService(AppServiceConfig{Common: devCommon("app-dev"), Plan: "Basic", Instances: 1})
	if err != nil {
		return nil, err
	}

	members := []struct {
		group *ResourceGroup
		res   Resource
	}{
		{prod, NewVirtualMachine(VirtualMachineConfig{
			Common: prodCommon("vm-web-prod-01", map[string]string{"Environment": "Production", "Application": "Web"}),
			Size:   "Standard_D4s_v3",
		})},
		{prod, NewVirtualMachine(VirtualMachineConfig{
			Common: prodCommon("vm-db-prod-01", map[string]string{"Environment": "Production", "Application": "Database"}),
			Size:   "Standard_E8s_v3",
		})},
		{prod, stData},
		{prod, stBackup},
		{prod, sqlProd},
		{prod, appProd},
		{dev, NewVirtualMachine(VirtualMachineConfig{Common: devCommon("vm-dev-01"), Size: "Standard_B2s"})},
		{dev, stDev},
		{dev, sqlDev},
		{dev, appDev},
	}
	for _, m := range members {
		if err := m.group.Add(m.res); err != nil {
			return nil, err
		}
	}

	return &Lab{Production: prod, Development: dev}, nil
}

func (l *Lab) Groups() []*ResourceGroup {
	return []*ResourceGroup{l.Production, l.Development}
}

func (l *Lab) TotalCost(hours float64) float64 {
	var total float64
	for _, g := range l.Groups() {
		total += g.TotalCost(hours)
	}
	return total
}

// Optimize runs the optimisation plan, pricing every change at hours so the
// step savings add up to the change in TotalCost(hours). A failing step is
// recorded and the remaining steps still run.
func (l *Lab) Optimize(hours float64) []model.OptimizationStep {
	plan := []action{
		{1, "Resizing oversized VMs", l.Production, "vm-web-prod-01", func(r Resource) (*model.CostChange, string, error) {
			vm, ok := r.(*VirtualMachine)
			if !ok {
				return nil, "", kindMismatch(r, KindVirtualMachine)
			}
			return changed(vm.Resize("Standard_D2s_v3", hours))
		}},
		{2, "Optimizing storage tiers", l.Production, "stprodbackup001", func(r Resource) (*model.CostChange, string, error) {
			sa, ok := r.(*StorageAccount)
			if !ok {
				return nil, "", kindMismatch(r, KindStorageAccount)
			}
			return changed(sa.ChangeTier("Archive", hours))
		}},
		{3, "Scaling down development environment", l.Development, "app-dev", func(r Resource) (*model.CostChange, string, error) {
			app, ok := r.(*AppService)
			if !ok {
				return nil, "", kindMismatch(r, KindAppService)
			}
			return changed(app.ScaleOut(1, hours))
		}},
		{3, "Scaling down development environment", l.Development, "sqldev001", func(r Resource) (*model.CostChange, string, error) {
			db, ok := r.(*SQLDatabase)
			if !ok {
				return nil, "", kindMismatch(r, KindSQLDatabase)
			}
			return changed(db.ScaleTier("Basic", hours))
		}},
		{4, "Stopping non-critical resources", l.Development, "vm-dev-01", func(r Resource) (*model.CostChange, string, error) {
			before := r.MonthlyCost(hours)
			if !r.Stop() {
				return nil, fmt.Sprintf("%s is already stopped", r.Name()), nil
			}
			return &model.CostChange{
				Resource: r.Name(),
				Action:   "stop",
				From:     string(StatusRunning),
				To:       string(StatusStopped),
				OldCost:  before,
				NewCost:  r.MonthlyCost(hours),
			}, fmt.Sprintf("%s stopped", r.Name()), nil
		}},
		{5, "Enabling auto-scale for production app", l.Production, "app-prod-web", func(r Resource) (*model.CostChange, string, error) {
			app, ok := r.(*AppService)
			if !ok {
				return nil, "", kindMismatch(r, KindAppService)
			}
			if err := app.EnableAutoScale(2, 5); err != nil {
				return nil, "", err
			}
			return nil, fmt.Sprintf("auto-scale enabled on %s: %d-%d instances", app.Name(), 2, 5), nil
		}},
	}

	steps := make([]model.OptimizationStep, 0, len(plan))
	for _, a := range plan {
		step := model.OptimizationStep{Phase: a.phase, Title: a.title, Resource: a.resource}

		r, err := a.group.Get(a.resource)
		if err != nil {
			step.Err = err
			steps = append(steps, step)
			continue
		}

		step.Change, step.Message, step.Err = a.apply(r)
		steps = append(steps, step)
	}

	return steps
}

func changed(c model.CostChange, err error) (*model.CostChange, string, error) {
	if err != nil {
		return nil, "", err
	}
	return &c, fmt.Sprintf("%s: %s %s -> %s", c.Resource, c.Action, c.From, c.To), nil
}

func kindMismatch(r Resource, want Kind) error {
	return fmt.Errorf("%s is a %s, not a %s", r.Name(), r.Kind(), want)
}
