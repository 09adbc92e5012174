// Package money converts between coins and currency units.
//
// 1000 coins are worth exactly one currency unit. Currency amounts carry at
// most two decimal places, so every valid amount maps to a whole number of
// coins and back without rounding.
package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// CoinsPerUnit is the fixed exchange factor.
const CoinsPerUnit = 1000

// Precision is the number of decimal places a currency amount may carry.
const Precision = 2

var (
	ErrNotANumber  = errors.New("amount is not a number")
	ErrNotPositive = errors.New("amount must be > 0")
	ErrPrecision   = errors.New("amount has more than two decimal places")
)

var coinsPerUnit = decimal.NewFromInt(CoinsPerUnit)

// ParseAmount parses a user entered currency amount such as "2", "2.5" or "2.00".
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}
	if err := Validate(d); err != nil {
		return decimal.Zero, err
	}
	return d, nil
}

// Validate checks that d is a positive currency amount with at most two decimals.
func Validate(d decimal.Decimal) error {
	if !d.IsPositive() {
		return ErrNotPositive
	}
	if !d.Equal(d.Truncate(Precision)) {
		return ErrPrecision
	}
	return nil
}

// CoinValue is the exact coin value of a currency amount, with no bound.
func CoinValue(d decimal.Decimal) decimal.Decimal {
	return d.Mul(coinsPerUnit)
}

// ToCoins converts a currency amount to coins. Sub-coin fractions are
// truncated; amounts that passed Validate never have any. The coin value
// must fit in an int64, so compare CoinValue against a balance first.
func ToCoins(d decimal.Decimal) int64 {
	return CoinValue(d).IntPart()
}

// FromCoins converts coins to a currency amount.
func FromCoins(coins int64) decimal.Decimal {
	return decimal.New(coins, -3)
}

// Format renders a currency amount as euros with two decimals.
func Format(d decimal.Decimal) string {
	return "€" + d.StringFixed(Precision)
}
