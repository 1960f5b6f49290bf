package repository

import (
	"context"
	"fmt"

	"fleetyield/database"
	"fleetyield/models"

	"github.com/jackc/pgx/v5"
)

// DistributionLedgerRepository implements the DistributionLedgerRepository interface
type DistributionLedgerRepository struct {
	q queryable
}

// NewDistributionLedgerRepository creates a new distribution ledger repository
func NewDistributionLedgerRepository(db *database.DB) *DistributionLedgerRepository {
	return &DistributionLedgerRepository{q: db.Pool}
}

// newDistributionLedgerRepositoryWithTx creates a new distribution ledger repository with a transaction
func newDistributionLedgerRepositoryWithTx(tx queryable) *DistributionLedgerRepository {
	return &DistributionLedgerRepository{q: tx}
}

// HasPaid reports whether a payout record exists for the key
func (r *DistributionLedgerRepository) HasPaid(ctx context.Context, assetID int64, periodIndex int32, beneficiary int64) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM distribution_records
			WHERE asset_id = $1 AND period_index = $2 AND beneficiary_id = $3
		)
	`

	var paid bool
	err := r.q.QueryRow(ctx, query, assetID, periodIndex, beneficiary).Scan(&paid)
	if err != nil {
		return false, fmt.Errorf("failed to check payment for asset %d period %d holder %d: %w",
			assetID, periodIndex, beneficiary, err)
	}

	return paid, nil
}

// RecordPayment appends a payout record. The composite primary key rejects
// a second record for the same (asset, period, beneficiary) key.
func (r *DistributionLedgerRepository) RecordPayment(ctx context.Context, record *models.DistributionRecord) error {
	if record.Amount < 0 {
		return fmt.Errorf("payment amount must be non-negative, got %d", record.Amount)
	}

	query := `
		INSERT INTO distribution_records (asset_id, period_index, beneficiary_id, amount)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	err := r.q.QueryRow(ctx, query,
		record.AssetID,
		record.PeriodIndex,
		record.Beneficiary,
		record.Amount,
	).Scan(&record.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to record payment for asset %d period %d holder %d: %w",
			record.AssetID, record.PeriodIndex, record.Beneficiary, err)
	}

	return nil
}

// AddToTotal increments the asset's cumulative distributed amount
func (r *DistributionLedgerRepository) AddToTotal(ctx context.Context, assetID int64, amount int64) error {
	if amount < 0 {
		return fmt.Errorf("total increment must be non-negative, got %d", amount)
	}

	query := `
		INSERT INTO distribution_totals (asset_id, total_distributed)
		VALUES ($1, $2)
		ON CONFLICT (asset_id) DO UPDATE
		SET total_distributed = distribution_totals.total_distributed + EXCLUDED.total_distributed,
		    updated_at = NOW()
	`

	if _, err := r.q.Exec(ctx, query, assetID, amount); err != nil {
		return fmt.Errorf("failed to add %d to distributed total for asset %d: %w", amount, assetID, err)
	}

	return nil
}

// TotalDistributed returns the cumulative amount paid for an asset, zero
// if nothing was ever distributed
func (r *DistributionLedgerRepository) TotalDistributed(ctx context.Context, assetID int64) (int64, error) {
	query := `
		SELECT total_distributed FROM distribution_totals
		WHERE asset_id = $1
	`

	var total int64
	err := r.q.QueryRow(ctx, query, assetID).Scan(&total)
	if err == pgx.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get distributed total for asset %d: %w", assetID, err)
	}

	return total, nil
}

// GetByAsset returns the most recent payout records for an asset
func (r *DistributionLedgerRepository) GetByAsset(ctx context.Context, assetID int64, limit int) ([]*models.DistributionRecord, error) {
	query := `
		SELECT asset_id, period_index, beneficiary_id, amount, created_at
		FROM distribution_records
		WHERE asset_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.q.Query(ctx, query, assetID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get distribution records for asset %d: %w", assetID, err)
	}
	defer rows.Close()

	var records []*models.DistributionRecord
	for rows.Next() {
		var record models.DistributionRecord
		err := rows.Scan(
			&record.AssetID,
			&record.PeriodIndex,
			&record.Beneficiary,
			&record.Amount,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan distribution record: %w", err)
		}
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate distribution records: %w", err)
	}

	return records, nil
}
