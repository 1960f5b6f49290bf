package models

import (
	"time"
)

// InterestConfig holds the mutable distribution parameters. A single row
// exists per deployment, created empty by the initial migration; only the
// administrative role may change it.
type InterestConfig struct {
	// SettlementToken is nil until an administrator configures it.
	SettlementToken *int64 `db:"settlement_token"`

	// WeeklyInterestBudget is the per-period interest amount per asset,
	// in the base unit of account (not yet scaled to token decimals).
	WeeklyInterestBudget int64 `db:"weekly_interest_budget"`

	// PeriodsToDistribute is the exclusive upper bound on valid period
	// indices. Changing it never invalidates already-paid records.
	PeriodsToDistribute int32 `db:"periods_to_distribute"`

	UpdatedAt time.Time `db:"updated_at"`
}
