package finance

import (
	"math"
	"testing"
	"time"

	"github.com/Alexintosh/piedao-monorepo/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func TestSimulateAPY(t *testing.T) {
	t.Run("daily compounding of 10% apr", func(t *testing.T) {
		apy, err := SimulateAPY(0.10, types.CompoundingDaily)
		require.NoError(t, err)
		assert.InDelta(t, 0.10515578, apy, 1e-8)
	})

	t.Run("matches closed form for a range of aprs", func(t *testing.T) {
		for _, apr := range []float64{0, 0.0001, 0.05, 0.25, 1, 3.5} {
			apy, err := SimulateAPY(apr, types.CompoundingDaily)
			require.NoError(t, err)
			assert.InDelta(t, math.Pow(1+apr/365, 365)-1, apy, tolerance, "apr %f", apr)
		}
	})

	t.Run("yearly compounding equals apr", func(t *testing.T) {
		apy, err := SimulateAPY(0.07, types.CompoundingYearly)
		require.NoError(t, err)
		assert.InDelta(t, 0.07, apy, tolerance)
	})

	t.Run("unknown frequency", func(t *testing.T) {
		_, err := SimulateAPY(0.1, types.CompoundingFrequency("HOURLY"))
		require.ErrorIs(t, err, ErrUnknownCompounding)
	})

	t.Run("non positive periods", func(t *testing.T) {
		assert.Equal(t, float64(0), CompoundAPY(0.1, 0))
	})
}

func TestStrategyAPR(t *testing.T) {
	t.Run("annualises weekly returns", func(t *testing.T) {
		apr, err := StrategyAPR(1_000_000, 2_000, 7*24*time.Hour)
		require.NoError(t, err)
		assert.InDelta(t, 0.002*365.0/7.0, apr, tolerance)
	})

	t.Run("zero deposits", func(t *testing.T) {
		_, err := StrategyAPR(0, 10, time.Hour)
		require.ErrorIs(t, err, ErrNoDeposits)
	})

	t.Run("zero period", func(t *testing.T) {
		_, err := StrategyAPR(10, 10, 0)
		require.ErrorIs(t, err, ErrInvalidReturnsPeriod)
	})

	t.Run("negative returns", func(t *testing.T) {
		_, err := StrategyAPR(10, -1, time.Hour)
		require.ErrorIs(t, err, ErrNegativeReturns)
	})
}

func TestWeightedAverage(t *testing.T) {
	assert.InDelta(t, 0.075, WeightedAverage([]Weighted{
		{Value: 0.05, Weight: 50},
		{Value: 0.10, Weight: 50},
	}), tolerance)
	assert.InDelta(t, 0.05, WeightedAverage([]Weighted{
		{Value: 0.05, Weight: 100},
		{Value: 0.90, Weight: 0},
	}), tolerance)
	assert.Equal(t, float64(0), WeightedAverage(nil))
}
