package models

import (
	"time"
)

// MaxShares is the registry-wide share supply per fleet unit. A
// fractionalized asset is divided into exactly this many shares; a
// non-fractionalized asset is treated as a single stake of full weight.
const MaxShares int64 = 100

// Asset represents a fleet unit that may be wholly or fractionally owned
type Asset struct {
	ID             int64     `db:"id"`
	Name           string    `db:"name"`
	Fractionalized bool      `db:"fractionalized"`
	CreatedAt      time.Time `db:"created_at"`
}

// ShareHolding represents a holder's fractional stake in an asset
type ShareHolding struct {
	AssetID   int64     `db:"asset_id"`
	HolderID  int64     `db:"holder_id"`
	Shares    int64     `db:"shares"`
	UpdatedAt time.Time `db:"updated_at"`
}
