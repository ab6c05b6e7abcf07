package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionRefRoundTrip(t *testing.T) {
	ref := NewTransactionRef(42)

	parsed, err := ParseTransactionRef(ref.String())
	require.NoError(t, err)
	assert.Equal(t, uint(42), parsed.OrderID)
	assert.Equal(t, ref.Nonce, parsed.Nonce)
}

func TestNewTransactionRefUniquePerAttempt(t *testing.T) {
	a := NewTransactionRef(7)
	b := NewTransactionRef(7)
	assert.NotEqual(t, a.String(), b.String())
}

func TestParseTransactionRef(t *testing.T) {
	t.Run("SplitsAtFirstSeparator", func(t *testing.T) {
		// The nonce may itself contain separators.
		parsed, err := ParseTransactionRef("42-1700-0000")
		require.NoError(t, err)
		assert.Equal(t, uint(42), parsed.OrderID)
		assert.Equal(t, "1700-0000", parsed.Nonce)
	})

	t.Run("Malformed", func(t *testing.T) {
		for _, s := range []string{
			"",
			"42",
			"42-",
			"-1700",
			"abc-1700",
			"0-1700",
			"-42-1700",
		} {
			_, err := ParseTransactionRef(s)
			assert.ErrorIs(t, err, ErrMalformedRef, "input %q", s)
		}
	})
}
