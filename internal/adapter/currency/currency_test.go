package currency_test

import (
	"testing"

	"github.com/niksmo/shop-feed/internal/adapter/currency"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByCode(t *testing.T) {
	s := currency.New("USD")

	t.Run("Known", func(t *testing.T) {
		c, err := s.ByCode("gbp")
		require.NoError(t, err)
		assert.Equal(t, "GBP", c.Code)
		assert.Equal(t, "£", c.Symbol)
	})

	t.Run("Unknown", func(t *testing.T) {
		c, err := s.ByCode("XXX")
		require.NoError(t, err)
		assert.Equal(t, "XXX", c.Code)
		assert.Empty(t, c.Symbol)
	})

	t.Run("Empty", func(t *testing.T) {
		c, err := s.ByCode("")
		require.NoError(t, err)
		assert.Empty(t, c.Code)
	})
}

func TestFormatBase(t *testing.T) {
	s := currency.New("USD")

	tests := []struct {
		name       string
		amount     float64
		withSymbol bool
		want       string
	}{
		{"Plain", 19.99, false, "19.99"},
		{"Rounded", 19.996, false, "20.00"},
		{"Zero", 0, false, "0.00"},
		{"WithSymbol", 19.99, true, "$19.99"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, s.FormatBase(tc.amount, tc.withSymbol))
		})
	}
}
