package helpers

import "math"

// RoundMoney rounds half away from zero to two decimal places.
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

// Float64Ptr returns a pointer to v
func Float64Ptr(v float64) *float64 {
	return &v
}

// Float64Value dereferences p, returning 0 for nil
func Float64Value(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// CapAmount returns amount limited to maxAmount when a cap is set.
func CapAmount(amount float64, maxAmount *float64) float64 {
	if maxAmount != nil && amount > *maxAmount {
		return *maxAmount
	}
	return amount
}
