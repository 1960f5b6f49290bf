package service

import (
	"errors"
)

// Configuration errors, surfaced to the administrative caller with no
// state change.
var (
	ErrNotAuthorized   = errors.New("caller is not the administrator")
	ErrInvalidToken    = errors.New("settlement token id is invalid")
	ErrTokenAlreadySet = errors.New("settlement token is already set to this value")
)

// Precondition errors reject a distribution call before any per-beneficiary
// work.
var (
	ErrPaused             = errors.New("distribution engine is paused")
	ErrTokenNotConfigured = errors.New("settlement token is not configured")
	ErrPeriodOutOfRange   = errors.New("period index is out of range")
)

// ErrAmountOverflow means a scaled entitlement does not fit the settlement
// amount width. Always fatal to the whole call; amounts are never wrapped
// or saturated.
var ErrAmountOverflow = errors.New("entitlement amount overflows 64-bit range")

// ErrInsufficientFunds is returned by the token repository when a debit
// would overdraw the source account. The engine maps it to a non-fatal
// per-beneficiary outcome.
var ErrInsufficientFunds = errors.New("insufficient settlement token balance")
