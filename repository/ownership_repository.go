package repository

import (
	"context"
	"fmt"

	"fleetyield/database"
	"fleetyield/models"

	"github.com/jackc/pgx/v5"
)

// OwnershipRepository implements the OwnershipRepository interface over the
// asset registry tables. The distribution engine only reads from it; the
// registration operations exist for the administrative side of the registry.
type OwnershipRepository struct {
	q queryable
}

// NewOwnershipRepository creates a new ownership repository
func NewOwnershipRepository(db *database.DB) *OwnershipRepository {
	return &OwnershipRepository{q: db.Pool}
}

// newOwnershipRepositoryWithTx creates a new ownership repository with a transaction
func newOwnershipRepositoryWithTx(tx queryable) *OwnershipRepository {
	return &OwnershipRepository{q: tx}
}

// GetAsset retrieves an asset by id, nil if not found
func (r *OwnershipRepository) GetAsset(ctx context.Context, assetID int64) (*models.Asset, error) {
	query := `
		SELECT id, name, fractionalized, created_at
		FROM assets
		WHERE id = $1
	`

	var asset models.Asset
	err := r.q.QueryRow(ctx, query, assetID).Scan(
		&asset.ID,
		&asset.Name,
		&asset.Fractionalized,
		&asset.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get asset %d: %w", assetID, err)
	}

	return &asset, nil
}

// CreateAsset registers a new fleet unit
func (r *OwnershipRepository) CreateAsset(ctx context.Context, name string, fractionalized bool) (*models.Asset, error) {
	query := `
		INSERT INTO assets (name, fractionalized)
		VALUES ($1, $2)
		RETURNING id, name, fractionalized, created_at
	`

	var asset models.Asset
	err := r.q.QueryRow(ctx, query, name, fractionalized).Scan(
		&asset.ID,
		&asset.Name,
		&asset.Fractionalized,
		&asset.CreatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create asset %q: %w", name, err)
	}

	return &asset, nil
}

// SetHolding sets a holder's share count for an asset
func (r *OwnershipRepository) SetHolding(ctx context.Context, assetID, holderID, shares int64) error {
	if shares < 0 {
		return fmt.Errorf("share count must be non-negative, got %d", shares)
	}
	if shares > models.MaxShares {
		return fmt.Errorf("share count %d exceeds max shares %d", shares, models.MaxShares)
	}

	query := `
		INSERT INTO share_holdings (asset_id, holder_id, shares)
		VALUES ($1, $2, $3)
		ON CONFLICT (asset_id, holder_id) DO UPDATE
		SET shares = EXCLUDED.shares, updated_at = NOW()
	`

	if _, err := r.q.Exec(ctx, query, assetID, holderID, shares); err != nil {
		return fmt.Errorf("failed to set holding for asset %d holder %d: %w", assetID, holderID, err)
	}

	return nil
}

// IsFractionalized reports whether the asset is fractionally owned
func (r *OwnershipRepository) IsFractionalized(ctx context.Context, assetID int64) (bool, error) {
	query := `
		SELECT fractionalized FROM assets
		WHERE id = $1
	`

	var fractionalized bool
	err := r.q.QueryRow(ctx, query, assetID).Scan(&fractionalized)
	if err == pgx.ErrNoRows {
		return false, fmt.Errorf("asset %d not found", assetID)
	}
	if err != nil {
		return false, fmt.Errorf("failed to check fractionalization of asset %d: %w", assetID, err)
	}

	return fractionalized, nil
}

// ShareBalance returns a holder's share count, zero if no holding exists
func (r *OwnershipRepository) ShareBalance(ctx context.Context, assetID, holderID int64) (int64, error) {
	query := `
		SELECT shares FROM share_holdings
		WHERE asset_id = $1 AND holder_id = $2
	`

	var shares int64
	err := r.q.QueryRow(ctx, query, assetID, holderID).Scan(&shares)
	if err == pgx.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get share balance for asset %d holder %d: %w", assetID, holderID, err)
	}

	return shares, nil
}

// MaxShares returns the registry-wide share supply per asset
func (r *OwnershipRepository) MaxShares() int64 {
	return models.MaxShares
}
