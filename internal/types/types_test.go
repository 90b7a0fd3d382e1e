package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEntityID(t *testing.T) {
	t.Run("normalises chain and address", func(t *testing.T) {
		id, err := ParseEntityID(" Ethereum ", "0xAD32A8E6220741182940C5ABF610BDE99E737B2D")
		require.NoError(t, err)
		assert.Equal(t, ChainEthereum, id.Chain)
		assert.Equal(t, "0xad32a8e6220741182940c5abf610bde99e737b2d", id.Address)
		assert.Equal(t, "ethereum:0xad32a8e6220741182940c5abf610bde99e737b2d", id.String())
	})

	t.Run("unsupported chain", func(t *testing.T) {
		_, err := ParseEntityID("solana", "0xad32a8e6220741182940c5abf610bde99e737b2d")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported chain")
	})

	t.Run("malformed address", func(t *testing.T) {
		for _, address := range []string{"", "0x123", "ad32a8e6220741182940c5abf610bde99e737b2d", "0xzz32a8e6220741182940c5abf610bde99e737b2d"} {
			_, err := ParseEntityID("ethereum", address)
			assert.Error(t, err, address)
		}
	})
}

func TestParseCurrency(t *testing.T) {
	c, err := ParseCurrency("USD")
	require.NoError(t, err)
	assert.Equal(t, CurrencyUSD, c)

	_, err = ParseCurrency("doge")
	require.Error(t, err)
}

func TestCompoundingFrequency(t *testing.T) {
	assert.Equal(t, 365, CompoundingDaily.PeriodsPerYear())
	assert.Equal(t, 52, CompoundingWeekly.PeriodsPerYear())
	assert.Equal(t, 0, CompoundingFrequency("HOURLY").PeriodsPerYear())
}

func TestCodeOf(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", NewNotFoundError("pie vault %s not found", "x"))
	assert.Equal(t, NotFound, CodeOf(err))
	assert.Equal(t, InternalServiceError, CodeOf(errors.New("boom")))

	var typed *Error
	require.ErrorAs(t, err, &typed)
	assert.Equal(t, map[string]interface{}{"code": "NOT_FOUND"}, typed.Extensions())
}
