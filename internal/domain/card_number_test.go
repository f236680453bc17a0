package domain_test

import (
	"strings"
	"testing"

	"github.com/cardpay/gateway/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCardNumber(t *testing.T) {
	t.Run("accepts digit strings between 14 and 19 digits", func(t *testing.T) {
		for length := 14; length <= 19; length++ {
			raw := strings.Repeat("4", length)

			cardNumber, err := domain.NewCardNumber(raw)

			require.NoError(t, err, "length %d should be valid", length)
			assert.Equal(t, raw, cardNumber.Value())
		}
	})

	t.Run("strips spaces before validating", func(t *testing.T) {
		cardNumber, err := domain.NewCardNumber("4111 1111 1111 1111")

		require.NoError(t, err)
		assert.Equal(t, "4111111111111111", cardNumber.Value())
	})

	t.Run("exposes the last four digits", func(t *testing.T) {
		cardNumber, err := domain.NewCardNumber("4111111111111234")

		require.NoError(t, err)
		assert.Equal(t, "1234", cardNumber.LastFour())
	})

	t.Run("rejects empty input", func(t *testing.T) {
		_, err := domain.NewCardNumber("")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "card number is required")
		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeInvalidCardNumber))
	})

	t.Run("rejects spaces-only input", func(t *testing.T) {
		_, err := domain.NewCardNumber("    ")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "card number is required")
	})

	t.Run("rejects out-of-range lengths", func(t *testing.T) {
		for _, raw := range []string{strings.Repeat("4", 13), strings.Repeat("4", 20)} {
			_, err := domain.NewCardNumber(raw)

			require.Error(t, err, "length %d should be invalid", len(raw))
			assert.Contains(t, err.Error(), "between 14 and 19 digits")
		}
	})

	t.Run("rejects non-digit characters", func(t *testing.T) {
		_, err := domain.NewCardNumber("41111111111111a1")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be numeric")
	})
}
