package repository

import (
	"context"
	"testing"

	"fleetyield/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterestConfigRepository(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewInterestConfigRepository(testDB.DB)
	tokenRepo := NewTokenAccountRepository(testDB.DB)
	ctx := context.Background()

	t.Run("seeded defaults", func(t *testing.T) {
		cfg, err := repo.Get(ctx)
		require.NoError(t, err)
		assert.Nil(t, cfg.SettlementToken)
		assert.Equal(t, int64(0), cfg.WeeklyInterestBudget)
		assert.Equal(t, int32(0), cfg.PeriodsToDistribute)
	})

	t.Run("set settlement token", func(t *testing.T) {
		token, err := tokenRepo.CreateToken(ctx, "FLEET", 6)
		require.NoError(t, err)

		err = repo.SetSettlementToken(ctx, token.ID)
		require.NoError(t, err)

		cfg, err := repo.Get(ctx)
		require.NoError(t, err)
		require.NotNil(t, cfg.SettlementToken)
		assert.Equal(t, token.ID, *cfg.SettlementToken)
	})

	t.Run("unknown token rejected by constraint", func(t *testing.T) {
		err := repo.SetSettlementToken(ctx, 99999)
		assert.Error(t, err)
	})

	t.Run("set periods to distribute", func(t *testing.T) {
		err := repo.SetPeriodsToDistribute(ctx, 52)
		require.NoError(t, err)

		cfg, err := repo.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, int32(52), cfg.PeriodsToDistribute)
	})

	t.Run("set weekly interest budget", func(t *testing.T) {
		err := repo.SetWeeklyInterestBudget(ctx, 700)
		require.NoError(t, err)

		cfg, err := repo.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(700), cfg.WeeklyInterestBudget)
	})

	t.Run("negative budget rejected by constraint", func(t *testing.T) {
		err := repo.SetWeeklyInterestBudget(ctx, -1)
		assert.Error(t, err)
	})
}
