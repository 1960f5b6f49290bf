package models

import (
	"time"
)

// PayoutStatus represents the per-beneficiary result of a distribution call
type PayoutStatus string

const (
	PayoutStatusPaid              PayoutStatus = "paid"
	PayoutStatusAlreadyPaid       PayoutStatus = "already_paid"
	PayoutStatusInsufficientFunds PayoutStatus = "insufficient_funds"
)

// DistributionRecord is the durable, append-only proof that a beneficiary
// was paid for a given asset and period. Records are never updated or
// deleted; the (asset, period, beneficiary) key admits at most one row.
type DistributionRecord struct {
	AssetID     int64     `db:"asset_id"`
	PeriodIndex int32     `db:"period_index"`
	Beneficiary int64     `db:"beneficiary_id"`
	Amount      int64     `db:"amount"`
	CreatedAt   time.Time `db:"created_at"`
}

// PayoutOutcome reports what happened to one beneficiary within a single
// distribution call. AlreadyPaid and InsufficientFunds are non-fatal;
// the caller may retry just those beneficiaries later.
type PayoutOutcome struct {
	Beneficiary int64
	Status      PayoutStatus
	Amount      int64
}
