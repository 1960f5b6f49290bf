package repository

import (
	"context"
	"errors"
	"testing"

	"fleetyield/repository/testutil"
	"fleetyield/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenAccountRepository_CreateToken(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewTokenAccountRepository(testDB.DB)
	ctx := context.Background()

	t.Run("successful creation", func(t *testing.T) {
		token, err := repo.CreateToken(ctx, "FLEET", 6)
		require.NoError(t, err)
		assert.NotZero(t, token.ID)
		assert.Equal(t, "FLEET", token.Symbol)
		assert.Equal(t, int16(6), token.Decimals)
		assert.False(t, token.CreatedAt.IsZero())
	})

	t.Run("duplicate symbol rejected", func(t *testing.T) {
		_, err := repo.CreateToken(ctx, "FLEET", 2)
		assert.Error(t, err)
	})

	t.Run("decimals lookup", func(t *testing.T) {
		token, err := repo.CreateToken(ctx, "USDY", 2)
		require.NoError(t, err)

		decimals, err := repo.Decimals(ctx, token.ID)
		require.NoError(t, err)
		assert.Equal(t, int16(2), decimals)
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := repo.Decimals(ctx, 99999)
		assert.Error(t, err)
	})
}

func TestTokenAccountRepository_Balances(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewTokenAccountRepository(testDB.DB)
	ctx := context.Background()

	token, err := repo.CreateToken(ctx, "FLEET", 6)
	require.NoError(t, err)

	t.Run("zero for unknown account", func(t *testing.T) {
		balance, err := repo.BalanceOf(ctx, token.ID, 100)
		require.NoError(t, err)
		assert.Equal(t, int64(0), balance)
	})

	t.Run("credit creates account", func(t *testing.T) {
		err := repo.Credit(ctx, token.ID, 100, 1_000_000)
		require.NoError(t, err)

		balance, err := repo.BalanceOf(ctx, token.ID, 100)
		require.NoError(t, err)
		assert.Equal(t, int64(1_000_000), balance)
	})

	t.Run("credit accumulates", func(t *testing.T) {
		err := repo.Credit(ctx, token.ID, 100, 500_000)
		require.NoError(t, err)

		balance, err := repo.BalanceOf(ctx, token.ID, 100)
		require.NoError(t, err)
		assert.Equal(t, int64(1_500_000), balance)
	})

	t.Run("non-positive credit rejected", func(t *testing.T) {
		assert.Error(t, repo.Credit(ctx, token.ID, 100, 0))
		assert.Error(t, repo.Credit(ctx, token.ID, 100, -10))
	})
}

func TestTokenAccountRepository_Transfer(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewTokenAccountRepository(testDB.DB)
	ctx := context.Background()

	token, err := repo.CreateToken(ctx, "FLEET", 6)
	require.NoError(t, err)

	treasury := int64(888)
	require.NoError(t, repo.Credit(ctx, token.ID, treasury, 1_000_000_000))

	t.Run("successful transfer", func(t *testing.T) {
		err := repo.Transfer(ctx, token.ID, treasury, 100, 210_000_000)
		require.NoError(t, err)

		fromBalance, err := repo.BalanceOf(ctx, token.ID, treasury)
		require.NoError(t, err)
		assert.Equal(t, int64(790_000_000), fromBalance)

		toBalance, err := repo.BalanceOf(ctx, token.ID, 100)
		require.NoError(t, err)
		assert.Equal(t, int64(210_000_000), toBalance)
	})

	t.Run("conserves total supply", func(t *testing.T) {
		err := repo.Transfer(ctx, token.ID, treasury, 200, 490_000_000)
		require.NoError(t, err)

		treasuryBalance, err := repo.BalanceOf(ctx, token.ID, treasury)
		require.NoError(t, err)
		h1Balance, err := repo.BalanceOf(ctx, token.ID, 100)
		require.NoError(t, err)
		h2Balance, err := repo.BalanceOf(ctx, token.ID, 200)
		require.NoError(t, err)

		assert.Equal(t, int64(1_000_000_000), treasuryBalance+h1Balance+h2Balance)
	})

	t.Run("overdraw rejected", func(t *testing.T) {
		before, err := repo.BalanceOf(ctx, token.ID, treasury)
		require.NoError(t, err)

		err = repo.Transfer(ctx, token.ID, treasury, 100, before+1)
		require.Error(t, err)
		assert.True(t, errors.Is(err, service.ErrInsufficientFunds))

		// Neither side moved
		after, err := repo.BalanceOf(ctx, token.ID, treasury)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("transfer from empty account rejected", func(t *testing.T) {
		err := repo.Transfer(ctx, token.ID, 77777, 100, 1)
		require.Error(t, err)
		assert.True(t, errors.Is(err, service.ErrInsufficientFunds))
	})

	t.Run("self transfer rejected", func(t *testing.T) {
		err := repo.Transfer(ctx, token.ID, treasury, treasury, 100)
		assert.Error(t, err)
	})

	t.Run("non-positive amount rejected", func(t *testing.T) {
		assert.Error(t, repo.Transfer(ctx, token.ID, treasury, 100, 0))
		assert.Error(t, repo.Transfer(ctx, token.ID, treasury, 100, -5))
	})
}
