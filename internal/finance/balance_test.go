package finance

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatBalance(t *testing.T) {
	t.Run("applies token decimals", func(t *testing.T) {
		b, err := FormatBalance("1500000000000000000", 18)
		require.NoError(t, err)
		assert.Equal(t, "1.5", b.String())
	})

	t.Run("six decimals", func(t *testing.T) {
		b, err := FormatBalance("123456789", 6)
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("123.456789").Equal(b))
	})

	t.Run("empty balance is zero", func(t *testing.T) {
		b, err := FormatBalance("", 18)
		require.NoError(t, err)
		assert.True(t, b.IsZero())
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := FormatBalance("12abc", 18)
		require.Error(t, err)
	})

	t.Run("fractional raw amount", func(t *testing.T) {
		_, err := FormatBalance("1.5", 18)
		require.Error(t, err)
	})

	t.Run("negative decimals", func(t *testing.T) {
		_, err := FormatBalance("1", -1)
		require.Error(t, err)
	})
}

func TestValue(t *testing.T) {
	b := decimal.RequireFromString("2.5")
	assert.InDelta(t, 5.0, Value(b, 2), tolerance)
	assert.Equal(t, float64(0), Value(decimal.Zero, 2))

	t.Run("non finite price", func(t *testing.T) {
		assert.Equal(t, float64(0), Value(b, math.NaN()))
		assert.Equal(t, float64(0), Value(b, math.Inf(1)))
		assert.Equal(t, float64(0), Value(b, math.Inf(-1)))
	})
}
