package repository

import (
	"context"
	"fmt"

	"fleetyield/database"
	"fleetyield/models"
)

// InterestConfigRepository implements the InterestConfigRepository interface.
// The configuration is a single row created by the initial migration and
// updated in place; it is never deleted.
type InterestConfigRepository struct {
	q queryable
}

// NewInterestConfigRepository creates a new interest config repository
func NewInterestConfigRepository(db *database.DB) *InterestConfigRepository {
	return &InterestConfigRepository{q: db.Pool}
}

// newInterestConfigRepositoryWithTx creates a new interest config repository with a transaction
func newInterestConfigRepositoryWithTx(tx queryable) *InterestConfigRepository {
	return &InterestConfigRepository{q: tx}
}

// Get returns the current configuration
func (r *InterestConfigRepository) Get(ctx context.Context) (*models.InterestConfig, error) {
	query := `
		SELECT settlement_token, weekly_interest_budget, periods_to_distribute, updated_at
		FROM interest_config
		WHERE id = 1
	`

	var cfg models.InterestConfig
	err := r.q.QueryRow(ctx, query).Scan(
		&cfg.SettlementToken,
		&cfg.WeeklyInterestBudget,
		&cfg.PeriodsToDistribute,
		&cfg.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get interest config: %w", err)
	}

	return &cfg, nil
}

// SetSettlementToken replaces the configured settlement token
func (r *InterestConfigRepository) SetSettlementToken(ctx context.Context, tokenID int64) error {
	query := `
		UPDATE interest_config
		SET settlement_token = $1, updated_at = NOW()
		WHERE id = 1
	`

	result, err := r.q.Exec(ctx, query, tokenID)
	if err != nil {
		return fmt.Errorf("failed to set settlement token: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("interest config row not found")
	}

	return nil
}

// SetPeriodsToDistribute replaces the valid period bound
func (r *InterestConfigRepository) SetPeriodsToDistribute(ctx context.Context, n int32) error {
	query := `
		UPDATE interest_config
		SET periods_to_distribute = $1, updated_at = NOW()
		WHERE id = 1
	`

	result, err := r.q.Exec(ctx, query, n)
	if err != nil {
		return fmt.Errorf("failed to set periods to distribute: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("interest config row not found")
	}

	return nil
}

// SetWeeklyInterestBudget replaces the per-period budget
func (r *InterestConfigRepository) SetWeeklyInterestBudget(ctx context.Context, amount int64) error {
	query := `
		UPDATE interest_config
		SET weekly_interest_budget = $1, updated_at = NOW()
		WHERE id = 1
	`

	result, err := r.q.Exec(ctx, query, amount)
	if err != nil {
		return fmt.Errorf("failed to set weekly interest budget: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("interest config row not found")
	}

	return nil
}
