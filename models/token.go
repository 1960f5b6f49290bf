package models

import (
	"time"
)

// Token represents a fungible settlement token
type Token struct {
	ID        int64     `db:"id"`
	Symbol    string    `db:"symbol"`
	Decimals  int16     `db:"decimals"`
	CreatedAt time.Time `db:"created_at"`
}

// TokenAccount represents an account's balance in a settlement token.
// Balances are denominated in the token's smallest unit.
type TokenAccount struct {
	TokenID   int64     `db:"token_id"`
	AccountID int64     `db:"account_id"`
	Balance   int64     `db:"balance"`
	UpdatedAt time.Time `db:"updated_at"`
}
