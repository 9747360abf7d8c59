package costmodel

import (
	"fmt"

	"github.com/elC0mpa/tag-doctor/model"
)

// DefaultSQLDatabaseGB is the capacity given to a database configured without one
const DefaultSQLDatabaseGB = 250

// SQLDatabaseConfig describes a database. A zero StorageGB means
// DefaultSQLDatabaseGB and an empty Tier means S0.
type SQLDatabaseConfig struct {
	Common
	Tier      string
	StorageGB int
}

// SQLDatabase is billed as tier compute plus storage plus a backup surcharge
type SQLDatabase struct {
	base
	tier          string
	storageGB     int
	backupEnabled bool
}

// NewSQLDatabase accepts any tier; tiers missing from the rate table bill at a flat default rate
func NewSQLDatabase(cfg SQLDatabaseConfig) (*SQLDatabase, error) {
	if cfg.Tier == "" {
		cfg.Tier = "S0"
	}
	if cfg.StorageGB == 0 {
		cfg.StorageGB = DefaultSQLDatabaseGB
	}
	if cfg.StorageGB < 0 {
		return nil, fmt.Errorf("%w: %d GB", ErrInvalidCapacity, cfg.StorageGB)
	}

	return &SQLDatabase{
		base:          newBase(KindSQLDatabase, cfg.Common),
		tier:          cfg.Tier,
		storageGB:     cfg.StorageGB,
		backupEnabled: true,
	}, nil
}

func (db *SQLDatabase) Kind() Kind          { return KindSQLDatabase }
func (db *SQLDatabase) Tier() string        { return db.tier }
func (db *SQLDatabase) StorageGB() int      { return db.storageGB }
func (db *SQLDatabase) BackupEnabled() bool { return db.backupEnabled }
func (db *SQLDatabase) String() string      { return describe(db.Kind(), &db.base) }

func (db *SQLDatabase) SetBackup(enabled bool) {
	db.backupEnabled = enabled
}

func (db *SQLDatabase) MonthlyCost(float64) float64 {
	compute, ok := sqlTierPricing[db.tier]
	if !ok {
		compute = defaultSQLRate
	}

	cost := compute + float64(db.storageGB)*sqlStorageRate
	if db.backupEnabled {
		cost += sqlBackupSurcharge
	}
	return cost
}

func (db *SQLDatabase) ScaleTier(tier string, hours float64) (model.CostChange, error) {
	if _, ok := sqlTierPricing[tier]; !ok {
		return model.CostChange{}, fmt.Errorf("%w: %s", ErrInvalidTier, tier)
	}

	change := model.CostChange{
		Resource: db.name,
		Action:   "scale-tier",
		From:     db.tier,
		To:       tier,
		OldCost:  db.MonthlyCost(hours),
	}
	db.tier = tier
	change.NewCost = db.MonthlyCost(hours)

	return change, nil
}
