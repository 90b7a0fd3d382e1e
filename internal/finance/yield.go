package finance

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/Alexintosh/piedao-monorepo/internal/types"
)

const secondsPerYear = float64(365 * 24 * 60 * 60)

var (
	ErrNoDeposits           = errors.New("strategy has no deposits")
	ErrInvalidReturnsPeriod = errors.New("strategy returns period must be positive")
	ErrUnknownCompounding   = errors.New("unknown compounding frequency")
	ErrNegativeReturns      = errors.New("strategy returns must not be negative")
)

// StrategyAPR annualises the returns a strategy produced over period on
// top of its deposits.
func StrategyAPR(totalDeposited, estimatedReturns float64, period time.Duration) (float64, error) {
	if totalDeposited <= 0 {
		return 0, ErrNoDeposits
	}
	if period <= 0 {
		return 0, ErrInvalidReturnsPeriod
	}
	if estimatedReturns < 0 {
		return 0, ErrNegativeReturns
	}

	return estimatedReturns / totalDeposited * (secondsPerYear / period.Seconds()), nil
}

// SimulateAPY compounds apr n times a year: (1 + apr/n)^n - 1.
func SimulateAPY(apr float64, frequency types.CompoundingFrequency) (float64, error) {
	n := frequency.PeriodsPerYear()
	if n == 0 {
		return 0, fmt.Errorf("%w: %s", ErrUnknownCompounding, frequency)
	}

	return CompoundAPY(apr, n), nil
}

// CompoundAPY is SimulateAPY for an explicit number of periods.
func CompoundAPY(apr float64, periodsPerYear int) float64 {
	if periodsPerYear <= 0 {
		return 0
	}
	n := float64(periodsPerYear)
	return math.Pow(1+apr/n, n) - 1
}

// Weighted is a value with its weight, e.g. a strategy APR and its
// allocation percentage.
type Weighted struct {
	Value  float64
	Weight float64
}

// WeightedAverage returns zero when the total weight is not positive.
func WeightedAverage(values []Weighted) float64 {
	var sum, weights float64
	for _, v := range values {
		if v.Weight <= 0 {
			continue
		}
		sum += v.Value * v.Weight
		weights += v.Weight
	}
	if weights == 0 {
		return 0
	}
	return sum / weights
}
