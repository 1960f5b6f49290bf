package repository

import (
	"context"
	"fmt"

	"fleetyield/database"
	"fleetyield/models"
	"fleetyield/service"

	"github.com/jackc/pgx/v5"
)

// TokenAccountRepository implements the TokenRepository interface over the
// settlement token tables
type TokenAccountRepository struct {
	q queryable
}

// NewTokenAccountRepository creates a new token account repository
func NewTokenAccountRepository(db *database.DB) *TokenAccountRepository {
	return &TokenAccountRepository{q: db.Pool}
}

// newTokenAccountRepositoryWithTx creates a new token account repository with a transaction
func newTokenAccountRepositoryWithTx(tx queryable) *TokenAccountRepository {
	return &TokenAccountRepository{q: tx}
}

// CreateToken registers a new settlement token
func (r *TokenAccountRepository) CreateToken(ctx context.Context, symbol string, decimals int16) (*models.Token, error) {
	query := `
		INSERT INTO tokens (symbol, decimals)
		VALUES ($1, $2)
		RETURNING id, symbol, decimals, created_at
	`

	var token models.Token
	err := r.q.QueryRow(ctx, query, symbol, decimals).Scan(
		&token.ID,
		&token.Symbol,
		&token.Decimals,
		&token.CreatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create token %q: %w", symbol, err)
	}

	return &token, nil
}

// Decimals returns the token's decimal places
func (r *TokenAccountRepository) Decimals(ctx context.Context, tokenID int64) (int16, error) {
	query := `
		SELECT decimals FROM tokens
		WHERE id = $1
	`

	var decimals int16
	err := r.q.QueryRow(ctx, query, tokenID).Scan(&decimals)
	if err == pgx.ErrNoRows {
		return 0, fmt.Errorf("token %d not found", tokenID)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get decimals for token %d: %w", tokenID, err)
	}

	return decimals, nil
}

// BalanceOf returns an account's balance, zero if no account row exists
func (r *TokenAccountRepository) BalanceOf(ctx context.Context, tokenID, accountID int64) (int64, error) {
	query := `
		SELECT balance FROM token_accounts
		WHERE token_id = $1 AND account_id = $2
	`

	var balance int64
	err := r.q.QueryRow(ctx, query, tokenID, accountID).Scan(&balance)
	if err == pgx.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get balance for token %d account %d: %w", tokenID, accountID, err)
	}

	return balance, nil
}

// Credit adds to an account's balance
func (r *TokenAccountRepository) Credit(ctx context.Context, tokenID, accountID int64, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("credit amount must be positive, got %d", amount)
	}

	query := `
		INSERT INTO token_accounts (token_id, account_id, balance)
		VALUES ($1, $2, $3)
		ON CONFLICT (token_id, account_id) DO UPDATE
		SET balance = token_accounts.balance + EXCLUDED.balance, updated_at = NOW()
	`

	if _, err := r.q.Exec(ctx, query, tokenID, accountID, amount); err != nil {
		return fmt.Errorf("failed to credit token %d account %d: %w", tokenID, accountID, err)
	}

	return nil
}

// Transfer moves amount between accounts atomically. The debit updates
// only when the source balance covers the amount, so an overdraw is a
// rejected precondition rather than a silent no-op.
func (r *TokenAccountRepository) Transfer(ctx context.Context, tokenID, from, to int64, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("transfer amount must be positive, got %d", amount)
	}
	if from == to {
		return fmt.Errorf("cannot transfer to the same account")
	}

	debit := `
		UPDATE token_accounts
		SET balance = balance - $1, updated_at = NOW()
		WHERE token_id = $2 AND account_id = $3 AND balance >= $1
	`

	result, err := r.q.Exec(ctx, debit, amount, tokenID, from)
	if err != nil {
		return fmt.Errorf("failed to debit token %d account %d: %w", tokenID, from, err)
	}
	if result.RowsAffected() == 0 {
		balance, err := r.BalanceOf(ctx, tokenID, from)
		if err != nil {
			return fmt.Errorf("failed to check source account: %w", err)
		}
		return fmt.Errorf("have %d, need %d: %w", balance, amount, service.ErrInsufficientFunds)
	}

	if err := r.Credit(ctx, tokenID, to, amount); err != nil {
		return fmt.Errorf("failed to credit transfer: %w", err)
	}

	return nil
}
