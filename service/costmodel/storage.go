package costmodel

import (
	"fmt"
	"strconv"

	"github.com/elC0mpa/tag-doctor/model"
)

// DefaultStorageAccountGB is the capacity given to a storage account configured without one
const DefaultStorageAccountGB = 100

// StorageAccountConfig describes a storage account. A zero StorageGB means
// DefaultStorageAccountGB, so an empty account cannot be modelled; negative
// values are rejected. An empty Tier means Hot.
type StorageAccountConfig struct {
	Common
	StorageGB int
	Tier      string
}

// StorageAccount is billed per GB-month at its access tier's rate
type StorageAccount struct {
	base
	storageGB int
	tier      string
}

func NewStorageAccount(cfg StorageAccountConfig) (*StorageAccount, error) {
	if cfg.StorageGB == 0 {
		cfg.StorageGB = DefaultStorageAccountGB
	}
	if cfg.Tier == "" {
		cfg.Tier = "Hot"
	}

	if cfg.StorageGB < 0 {
		return nil, fmt.Errorf("%w: %d GB", ErrInvalidCapacity, cfg.StorageGB)
	}
	if _, ok := storageTierPricing[cfg.Tier]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTier, cfg.Tier)
	}

	return &StorageAccount{
		base:      newBase(KindStorageAccount, cfg.Common),
		storageGB: cfg.StorageGB,
		tier:      cfg.Tier,
	}, nil
}

func (sa *StorageAccount) Kind() Kind     { return KindStorageAccount }
func (sa *StorageAccount) Tier() string   { return sa.tier }
func (sa *StorageAccount) StorageGB() int { return sa.storageGB }
func (sa *StorageAccount) String() string { return describe(sa.Kind(), &sa.base) }

// MonthlyCost does not depend on hours or power state
func (sa *StorageAccount) MonthlyCost(float64) float64 {
	return float64(sa.storageGB) * storageTierPricing[sa.tier]
}

func (sa *StorageAccount) ChangeTier(tier string, hours float64) (model.CostChange, error) {
	if _, ok := storageTierPricing[tier]; !ok {
		return model.CostChange{}, fmt.Errorf("%w: %s", ErrInvalidTier, tier)
	}

	change := model.CostChange{
		Resource: sa.name,
		Action:   "change-tier",
		From:     sa.tier,
		To:       tier,
		OldCost:  sa.MonthlyCost(hours),
	}
	sa.tier = tier
	change.NewCost = sa.MonthlyCost(hours)

	return change, nil
}

func (sa *StorageAccount) AddStorage(gb int, hours float64) (model.CostChange, error) {
	if gb <= 0 {
		return model.CostChange{}, fmt.Errorf("%w: %d GB", ErrInvalidCapacity, gb)
	}

	change := model.CostChange{
		Resource: sa.name,
		Action:   "add-storage",
		From:     strconv.Itoa(sa.storageGB) + "GB",
		To:       strconv.Itoa(sa.storageGB+gb) + "GB",
		OldCost:  sa.MonthlyCost(hours),
	}
	sa.storageGB += gb
	change.NewCost = sa.MonthlyCost(hours)

	return change, nil
}
