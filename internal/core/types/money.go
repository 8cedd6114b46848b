// Package types provides common type aliases and utilities.
package types

import (
	"math"

	"github.com/shopspring/decimal"
)

// Money represents a monetary value with full precision.
// Uses decimal.Decimal to avoid floating-point errors in report arithmetic.
type Money = decimal.Decimal

// NewMoneyFromString creates a Money value from a string.
// This is the preferred method for monetary values.
func NewMoneyFromString(s string) (Money, error) {
	return decimal.NewFromString(s)
}

// MustMoney creates a Money value from a string, panics on error.
// Use only for constants and tests.
func MustMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// ZeroMoney returns zero Money value.
func ZeroMoney() Money {
	return decimal.Zero
}

// MinorUnits represents a monetary value in minor currency units.
// Storage: int64 - sufficient for ±922 trillion minor units.
//
// Every ledger row stores its rate and derived amount as MinorUnits,
// computed once at insert time and never recalculated on read.
type MinorUnits int64

// NewMinorUnitsFromMajor creates MinorUnits from a major unit amount and decimal places.
func NewMinorUnitsFromMajor(major float64, decimalPlaces int) MinorUnits {
	multiplier := math.Pow10(decimalPlaces)
	return MinorUnits(math.Round(major * multiplier))
}

// ToMajor converts minor units to a precise major-unit Money value for display.
func (m MinorUnits) ToMajor(decimalPlaces int) Money {
	return decimal.New(int64(m), -int32(decimalPlaces))
}

func (m MinorUnits) IsZero() bool     { return m == 0 }
func (m MinorUnits) IsPositive() bool { return m > 0 }
func (m MinorUnits) IsNegative() bool { return m < 0 }
func (m MinorUnits) Neg() MinorUnits  { return -m }
func (m MinorUnits) Abs() MinorUnits {
	if m < 0 {
		return -m
	}
	return m
}
