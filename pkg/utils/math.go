package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

// Round2 rounds v to two decimal places. NaN and infinities pass through
// unchanged so not-computable sentinels survive rounding.
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
