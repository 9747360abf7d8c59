package costmodel

import (
	"fmt"
	"strconv"

	"github.com/elC0mpa/tag-doctor/model"
)

type AppServiceConfig struct {
	Common
	Plan      string
	Instances int
}

// AppService is billed at a flat plan rate per instance
type AppService struct {
	base
	plan      string
	instances int

	autoScale    bool
	minInstances int
	maxInstances int
}

func NewAppService(cfg AppServiceConfig) (*AppService, error) {
	if cfg.Plan == "" {
		cfg.Plan = "Basic"
	}
	if cfg.Instances == 0 {
		cfg.Instances = 1
	}

	if _, ok := appServicePricing[cfg.Plan]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPlan, cfg.Plan)
	}
	if cfg.Instances < minInstances || cfg.Instances > maxInstances {
		return nil, fmt.Errorf("%w: got %d", ErrInstanceCount, cfg.Instances)
	}

	return &AppService{
		base:      newBase(KindAppService, cfg.Common),
		plan:      cfg.Plan,
		instances: cfg.Instances,
	}, nil
}

func (app *AppService) Kind() Kind     { return KindAppService }
func (app *AppService) Plan() string   { return app.plan }
func (app *AppService) Instances() int { return app.instances }
func (app *AppService) String() string { return describe(app.Kind(), &app.base) }

// AutoScale reports whether auto-scaling is enabled and its bounds
func (app *AppService) AutoScale() (enabled bool, min, max int) {
	return app.autoScale, app.minInstances, app.maxInstances
}

func (app *AppService) MonthlyCost(float64) float64 {
	return appServicePricing[app.plan] * float64(app.instances)
}

func (app *AppService) ScaleOut(instances int, hours float64) (model.CostChange, error) {
	if instances < minInstances || instances > maxInstances {
		return model.CostChange{}, fmt.Errorf("%w: got %d", ErrInstanceCount, instances)
	}

	change := model.CostChange{
		Resource: app.name,
		Action:   "scale-out",
		From:     strconv.Itoa(app.instances),
		To:       strconv.Itoa(instances),
		OldCost:  app.MonthlyCost(hours),
	}
	app.instances = instances
	change.NewCost = app.MonthlyCost(hours)

	return change, nil
}

func (app *AppService) EnableAutoScale(min, max int) error {
	if min < minInstances || max > maxInstances || min > max {
		return fmt.Errorf("%w: %d-%d", ErrAutoScaleRange, min, max)
	}

	app.autoScale = true
	app.minInstances = min
	app.maxInstances = max
	return nil
}
