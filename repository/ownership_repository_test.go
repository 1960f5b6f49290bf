package repository

import (
	"context"
	"testing"

	"fleetyield/models"
	"fleetyield/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwnershipRepository_Assets(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewOwnershipRepository(testDB.DB)
	ctx := context.Background()

	t.Run("asset not found", func(t *testing.T) {
		asset, err := repo.GetAsset(ctx, 99999)
		require.NoError(t, err)
		assert.Nil(t, asset)
	})

	t.Run("create and retrieve", func(t *testing.T) {
		created, err := repo.CreateAsset(ctx, "unit-alpha", true)
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.True(t, created.Fractionalized)

		asset, err := repo.GetAsset(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, asset)
		assert.Equal(t, "unit-alpha", asset.Name)
		assert.True(t, asset.Fractionalized)
	})

	t.Run("fractionalization flag", func(t *testing.T) {
		whole, err := repo.CreateAsset(ctx, "unit-bravo", false)
		require.NoError(t, err)

		fractionalized, err := repo.IsFractionalized(ctx, whole.ID)
		require.NoError(t, err)
		assert.False(t, fractionalized)
	})

	t.Run("fractionalization of unknown asset", func(t *testing.T) {
		_, err := repo.IsFractionalized(ctx, 99999)
		assert.Error(t, err)
	})
}

func TestOwnershipRepository_Holdings(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewOwnershipRepository(testDB.DB)
	ctx := context.Background()

	asset, err := repo.CreateAsset(ctx, "unit-charlie", true)
	require.NoError(t, err)

	t.Run("zero for unknown holder", func(t *testing.T) {
		shares, err := repo.ShareBalance(ctx, asset.ID, 100)
		require.NoError(t, err)
		assert.Equal(t, int64(0), shares)
	})

	t.Run("set and read holding", func(t *testing.T) {
		err := repo.SetHolding(ctx, asset.ID, 100, 30)
		require.NoError(t, err)

		shares, err := repo.ShareBalance(ctx, asset.ID, 100)
		require.NoError(t, err)
		assert.Equal(t, int64(30), shares)
	})

	t.Run("holding is replaced not added", func(t *testing.T) {
		err := repo.SetHolding(ctx, asset.ID, 100, 70)
		require.NoError(t, err)

		shares, err := repo.ShareBalance(ctx, asset.ID, 100)
		require.NoError(t, err)
		assert.Equal(t, int64(70), shares)
	})

	t.Run("bounds enforced", func(t *testing.T) {
		assert.Error(t, repo.SetHolding(ctx, asset.ID, 100, -1))
		assert.Error(t, repo.SetHolding(ctx, asset.ID, 100, models.MaxShares+1))
	})

	t.Run("max shares constant", func(t *testing.T) {
		assert.Equal(t, models.MaxShares, repo.MaxShares())
	})
}
