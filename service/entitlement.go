package service

import (
	"fmt"
	"math/big"
)

// scaledEntitlement computes budget * weight * 10^decimals / maxShares,
// the token amount owed to a beneficiary holding `weight` of `maxShares`
// shares for one period. The multiplication happens before the truncating
// division so no precision is lost; per-beneficiary remainders are an
// accepted rounding loss. The product is evaluated at arbitrary precision
// and a result outside int64 is rejected rather than wrapped.
func scaledEntitlement(budget, weight, maxShares int64, decimals int16) (int64, error) {
	if maxShares <= 0 {
		return 0, fmt.Errorf("max shares must be positive, got %d", maxShares)
	}
	if weight < 0 {
		return 0, fmt.Errorf("entitlement weight must be non-negative, got %d", weight)
	}
	if decimals < 0 {
		return 0, fmt.Errorf("token decimals must be non-negative, got %d", decimals)
	}

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)

	amount := new(big.Int).Mul(big.NewInt(budget), big.NewInt(weight))
	amount.Mul(amount, scale)
	amount.Quo(amount, big.NewInt(maxShares))

	if !amount.IsInt64() {
		return 0, ErrAmountOverflow
	}

	return amount.Int64(), nil
}
