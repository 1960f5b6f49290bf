package service

import (
	"context"

	"fleetyield/events"
	"fleetyield/models"
)

// DistributionLedgerRepository defines data access for the append-only
// payout ledger. The distribution engine is the sole writer.
type DistributionLedgerRepository interface {
	// HasPaid reports whether a payout record exists for the key
	HasPaid(ctx context.Context, assetID int64, periodIndex int32, beneficiary int64) (bool, error)

	// RecordPayment appends a payout record, failing if one already
	// exists for the same (asset, period, beneficiary) key
	RecordPayment(ctx context.Context, record *models.DistributionRecord) error

	// AddToTotal increments the asset's cumulative distributed amount
	AddToTotal(ctx context.Context, assetID int64, amount int64) error

	// TotalDistributed returns the cumulative amount paid for an asset,
	// zero if nothing was ever distributed
	TotalDistributed(ctx context.Context, assetID int64) (int64, error)

	// GetByAsset returns the most recent payout records for an asset
	GetByAsset(ctx context.Context, assetID int64, limit int) ([]*models.DistributionRecord, error)
}

// InterestConfigRepository defines data access for the single-row
// distribution configuration
type InterestConfigRepository interface {
	// Get returns the current configuration
	Get(ctx context.Context) (*models.InterestConfig, error)

	// SetSettlementToken replaces the configured settlement token
	SetSettlementToken(ctx context.Context, tokenID int64) error

	// SetPeriodsToDistribute replaces the valid period bound
	SetPeriodsToDistribute(ctx context.Context, n int32) error

	// SetWeeklyInterestBudget replaces the per-period budget
	SetWeeklyInterestBudget(ctx context.Context, amount int64) error
}

// OwnershipRepository is the source of truth for asset fractionalization
// state and share counts. The distribution engine only reads from it.
type OwnershipRepository interface {
	// GetAsset retrieves an asset by id, nil if not found
	GetAsset(ctx context.Context, assetID int64) (*models.Asset, error)

	// CreateAsset registers a new fleet unit
	CreateAsset(ctx context.Context, name string, fractionalized bool) (*models.Asset, error)

	// SetHolding sets a holder's share count for an asset
	SetHolding(ctx context.Context, assetID, holderID, shares int64) error

	// IsFractionalized reports whether the asset is fractionally owned
	IsFractionalized(ctx context.Context, assetID int64) (bool, error)

	// ShareBalance returns a holder's share count, zero if none
	ShareBalance(ctx context.Context, assetID, holderID int64) (int64, error)

	// MaxShares returns the registry-wide share supply per asset
	MaxShares() int64
}

// TokenRepository defines the settlement transfer interface: balance
// lookups and value movement in a fungible token
type TokenRepository interface {
	// CreateToken registers a new settlement token
	CreateToken(ctx context.Context, symbol string, decimals int16) (*models.Token, error)

	// Decimals returns the token's decimal places
	Decimals(ctx context.Context, tokenID int64) (int16, error)

	// BalanceOf returns an account's balance, zero if no account row
	BalanceOf(ctx context.Context, tokenID, accountID int64) (int64, error)

	// Credit adds to an account's balance
	Credit(ctx context.Context, tokenID, accountID int64, amount int64) error

	// Transfer moves amount between accounts atomically, failing with
	// ErrInsufficientFunds if the source balance is too low
	Transfer(ctx context.Context, tokenID, from, to int64, amount int64) error
}

// ConfigService defines the administrative configuration operations
type ConfigService interface {
	// SetSettlementToken configures the token interest is paid in
	SetSettlementToken(ctx context.Context, actorID, tokenID int64) error

	// SetPeriodsToDistribute sets the exclusive upper bound on period indices
	SetPeriodsToDistribute(ctx context.Context, actorID int64, n int32) error

	// SetWeeklyInterestBudget sets the per-period interest amount
	SetWeeklyInterestBudget(ctx context.Context, actorID int64, amount int64) error

	// GetConfig returns the current configuration
	GetConfig(ctx context.Context) (*models.InterestConfig, error)
}

// DistributionService defines the interest distribution engine
type DistributionService interface {
	// DistributeInterest pays each beneficiary its proportional share of
	// the period budget, returning one outcome per beneficiary in caller
	// order. Precondition failures reject the whole call.
	DistributeInterest(ctx context.Context, assetID int64, periodIndex int32, beneficiaries []int64) ([]*models.PayoutOutcome, error)

	// TotalDistributed returns the cumulative amount paid for an asset
	TotalDistributed(ctx context.Context, assetID int64) (int64, error)

	// Pause blocks all further distribution calls until Unpause
	Pause(actorID int64) error

	// Unpause lifts the pause gate
	Unpause(actorID int64) error

	// Paused reports the current pause state
	Paused() bool
}

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Publish(event events.Event)
}

// UnitOfWork defines the interface for transactional repository operations
type UnitOfWork interface {
	// Begin starts a new transaction
	Begin(ctx context.Context) error

	// Commit commits the transaction
	Commit() error

	// Rollback rolls back the transaction
	Rollback() error

	// Repository getters
	DistributionLedgerRepository() DistributionLedgerRepository
	InterestConfigRepository() InterestConfigRepository
	OwnershipRepository() OwnershipRepository
	TokenRepository() TokenRepository
	EventBus() EventPublisher
}

// UnitOfWorkFactory defines the interface for creating UnitOfWork instances
type UnitOfWorkFactory interface {
	// Create creates a new UnitOfWork instance
	Create() UnitOfWork
}
