package repository

import (
	"context"
	"testing"

	"fleetyield/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistributionLedgerRepository_HasPaid(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewDistributionLedgerRepository(testDB.DB)
	ownershipRepo := NewOwnershipRepository(testDB.DB)
	ctx := context.Background()

	asset, err := ownershipRepo.CreateAsset(ctx, "unit-alpha", true)
	require.NoError(t, err)

	t.Run("no payment recorded", func(t *testing.T) {
		paid, err := repo.HasPaid(ctx, asset.ID, 0, 100)
		require.NoError(t, err)
		assert.False(t, paid)
	})

	t.Run("payment recorded", func(t *testing.T) {
		record := testutil.CreateTestDistributionRecord(asset.ID, 0, 100)
		err := repo.RecordPayment(ctx, record)
		require.NoError(t, err)
		assert.False(t, record.CreatedAt.IsZero())

		paid, err := repo.HasPaid(ctx, asset.ID, 0, 100)
		require.NoError(t, err)
		assert.True(t, paid)
	})

	t.Run("keyed by period", func(t *testing.T) {
		// Same asset and holder, different period
		paid, err := repo.HasPaid(ctx, asset.ID, 1, 100)
		require.NoError(t, err)
		assert.False(t, paid)
	})

	t.Run("keyed by beneficiary", func(t *testing.T) {
		paid, err := repo.HasPaid(ctx, asset.ID, 0, 200)
		require.NoError(t, err)
		assert.False(t, paid)
	})
}

func TestDistributionLedgerRepository_RecordPayment(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewDistributionLedgerRepository(testDB.DB)
	ownershipRepo := NewOwnershipRepository(testDB.DB)
	ctx := context.Background()

	asset, err := ownershipRepo.CreateAsset(ctx, "unit-bravo", true)
	require.NoError(t, err)

	t.Run("successful recording", func(t *testing.T) {
		record := testutil.CreateTestDistributionRecordWithAmount(asset.ID, 2, 100, 490_000_000)
		err := repo.RecordPayment(ctx, record)
		require.NoError(t, err)
		assert.False(t, record.CreatedAt.IsZero())
	})

	t.Run("duplicate key rejected", func(t *testing.T) {
		record := testutil.CreateTestDistributionRecord(asset.ID, 3, 100)
		err := repo.RecordPayment(ctx, record)
		require.NoError(t, err)

		// A second record for the same (asset, period, beneficiary) key
		// violates the primary key
		duplicate := testutil.CreateTestDistributionRecordWithAmount(asset.ID, 3, 100, 1)
		err = repo.RecordPayment(ctx, duplicate)
		assert.Error(t, err)
	})

	t.Run("zero amount allowed", func(t *testing.T) {
		record := testutil.CreateTestDistributionRecordWithAmount(asset.ID, 4, 300, 0)
		err := repo.RecordPayment(ctx, record)
		require.NoError(t, err)

		paid, err := repo.HasPaid(ctx, asset.ID, 4, 300)
		require.NoError(t, err)
		assert.True(t, paid)
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		record := testutil.CreateTestDistributionRecordWithAmount(asset.ID, 5, 100, -1)
		err := repo.RecordPayment(ctx, record)
		assert.Error(t, err)
	})

	t.Run("unknown asset rejected", func(t *testing.T) {
		record := testutil.CreateTestDistributionRecord(99999, 0, 100)
		err := repo.RecordPayment(ctx, record)
		assert.Error(t, err)
	})
}

func TestDistributionLedgerRepository_Totals(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewDistributionLedgerRepository(testDB.DB)
	ownershipRepo := NewOwnershipRepository(testDB.DB)
	ctx := context.Background()

	asset, err := ownershipRepo.CreateAsset(ctx, "unit-charlie", true)
	require.NoError(t, err)

	t.Run("zero before any distribution", func(t *testing.T) {
		total, err := repo.TotalDistributed(ctx, asset.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
	})

	t.Run("accumulates across payouts", func(t *testing.T) {
		err := repo.AddToTotal(ctx, asset.ID, 210_000_000)
		require.NoError(t, err)
		err = repo.AddToTotal(ctx, asset.ID, 490_000_000)
		require.NoError(t, err)

		total, err := repo.TotalDistributed(ctx, asset.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(700_000_000), total)
	})

	t.Run("zero increment keeps total", func(t *testing.T) {
		err := repo.AddToTotal(ctx, asset.ID, 0)
		require.NoError(t, err)

		total, err := repo.TotalDistributed(ctx, asset.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(700_000_000), total)
	})

	t.Run("negative increment rejected", func(t *testing.T) {
		err := repo.AddToTotal(ctx, asset.ID, -1)
		assert.Error(t, err)
	})

	t.Run("totals isolated per asset", func(t *testing.T) {
		other, err := ownershipRepo.CreateAsset(ctx, "unit-delta", false)
		require.NoError(t, err)

		total, err := repo.TotalDistributed(ctx, other.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
	})
}

func TestDistributionLedgerRepository_GetByAsset(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewDistributionLedgerRepository(testDB.DB)
	ownershipRepo := NewOwnershipRepository(testDB.DB)
	ctx := context.Background()

	asset, err := ownershipRepo.CreateAsset(ctx, "unit-echo", true)
	require.NoError(t, err)

	t.Run("empty ledger", func(t *testing.T) {
		records, err := repo.GetByAsset(ctx, asset.ID, 10)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("returns records", func(t *testing.T) {
		for i := int32(0); i < 3; i++ {
			record := testutil.CreateTestDistributionRecordWithAmount(asset.ID, i, 100, int64(i)*1000)
			require.NoError(t, repo.RecordPayment(ctx, record))
		}

		records, err := repo.GetByAsset(ctx, asset.ID, 10)
		require.NoError(t, err)
		assert.Len(t, records, 3)
		for _, record := range records {
			assert.Equal(t, asset.ID, record.AssetID)
			assert.Equal(t, int64(100), record.Beneficiary)
		}
	})

	t.Run("respects limit", func(t *testing.T) {
		records, err := repo.GetByAsset(ctx, asset.ID, 2)
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})
}
