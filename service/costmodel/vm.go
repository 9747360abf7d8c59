package costmodel

import (
	"fmt"

	"github.com/elC0mpa/tag-doctor/model"
)

type VirtualMachineConfig struct {
	Common
	Size   string
	OSType string
}

// VirtualMachine is billed per hour while running; a stopped (deallocated) VM has no compute cost
type VirtualMachine struct {
	base
	size   string
	osType string
}

// NewVirtualMachine accepts any size; sizes missing from the rate table bill at a flat default rate
func NewVirtualMachine(cfg VirtualMachineConfig) *VirtualMachine {
	osType := cfg.OSType
	if osType == "" {
		osType = "Linux"
	}

	return &VirtualMachine{
		base:   newBase(KindVirtualMachine, cfg.Common),
		size:   cfg.Size,
		osType: osType,
	}
}

func (vm *VirtualMachine) Kind() Kind     { return KindVirtualMachine }
func (vm *VirtualMachine) Size() string   { return vm.size }
func (vm *VirtualMachine) OSType() string { return vm.osType }
func (vm *VirtualMachine) String() string { return describe(vm.Kind(), &vm.base) }

func (vm *VirtualMachine) MonthlyCost(hours float64) float64 {
	if vm.status == StatusStopped {
		return 0
	}

	rate, ok := vmPricing[vm.size]
	if !ok {
		rate = defaultVMRate
	}
	return rate * hours
}

// Resize moves the VM to a size from the rate table. Costs in the change are priced at hours.
func (vm *VirtualMachine) Resize(size string, hours float64) (model.CostChange, error) {
	if _, ok := vmPricing[size]; !ok {
		return model.CostChange{}, fmt.Errorf("%w: %s", ErrInvalidSize, size)
	}

	change := model.CostChange{
		Resource: vm.name,
		Action:   "resize",
		From:     vm.size,
		To:       size,
		OldCost:  vm.MonthlyCost(hours),
	}
	vm.size = size
	change.NewCost = vm.MonthlyCost(hours)

	return change, nil
}

// Restart leaves the VM running whatever its previous state
func (vm *VirtualMachine) Restart() {
	vm.status = StatusRunning
}
