package finance

import "math"

// PercentageChange returns the change from previous to current in percent.
// A zero previous value means there is no reference point and yields 0.
func PercentageChange(previous, current float64) float64 {
	if previous == 0 || !isFinite(previous) || !isFinite(current) {
		return 0
	}
	return (current - previous) / previous * 100
}

// DeltaToNav is the premium (positive) or discount (negative) of price over
// the net asset value per share, in percent.
func DeltaToNav(price, nav float64) float64 {
	if price == 0 {
		return 0
	}
	return PercentageChange(nav, price)
}

// Nav is the value of the underlying assets per share.
func Nav(underlyingValue, totalSupply float64) float64 {
	return SafeDiv(underlyingValue, totalSupply)
}

// SafeDiv returns 0 instead of Inf or NaN.
func SafeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	r := a / b
	if !isFinite(r) {
		return 0
	}
	return r
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
