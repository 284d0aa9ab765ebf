// Package money keeps float64 on the wire and does the arithmetic in decimal.
package money

import "github.com/shopspring/decimal"

// Line returns price * quantity.
func Line(price float64, quantity int) decimal.Decimal {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(quantity)))
}

// Sum adds the values without binary floating point drift.
func Sum(values ...float64) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(v))
	}
	return total
}

// Float converts back to float64 rounded to cents.
func Float(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}

// MeanRounded returns the mean of the values rounded to places decimals, or 0
// for an empty input.
func MeanRounded(values []int, places int32) float64 {
	if len(values) == 0 {
		return 0
	}
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromInt(int64(v)))
	}
	f, _ := total.Div(decimal.NewFromInt(int64(len(values)))).Round(places).Float64()
	return f
}

// Ratio returns numerator / max(denominator, 1) rounded to cents.
func Ratio(numerator decimal.Decimal, denominator int) float64 {
	if denominator < 1 {
		denominator = 1
	}
	return Float(numerator.Div(decimal.NewFromInt(int64(denominator))))
}
