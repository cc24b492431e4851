package decimal

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Base is the rate bump that doubles the price.
const Base = 10_000_000

var (
	base    = decimal.NewFromInt(Base)
	hundred = decimal.NewFromInt(100)
)

func fromUint(v uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(v), 0)
}

// RateBump returns the price multiplier for bump.
func RateBump(bump uint64) decimal.Decimal {
	return decimal.NewFromInt(1).Add(fromUint(bump).Div(base))
}

// Percent returns bump in percent.
func Percent(bump uint64) decimal.Decimal {
	return fromUint(bump).Mul(hundred).Div(base)
}

// Fee returns amount scaled down by decimals.
func Fee(amount uint64, decimals int32) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(amount), -decimals)
}
