package naija_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/naija"
)

func TestCurrency(t *testing.T) {
	t.Parallel()

	gen := newTestGenerator(t)
	code, name := gen.Currency()
	assert.Equal(t, "NGN", code)
	assert.Equal(t, "Nigerian naira", name)
	assert.Equal(t, "NGN", naija.CurrencyCode)
	assert.Equal(t, "₦", naija.CurrencySymbol)
}

func TestPriceTag(t *testing.T) {
	t.Parallel()

	gen := newTestGenerator(t)

	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{name: "grouped millions", amount: 1234567.891, want: "₦1,234,567.89"},
		{name: "sub naira", amount: 0.5, want: "₦0.50"},
		{name: "round hundred", amount: 100.0, want: "₦100.00"},
		{name: "thousands", amount: 2235, want: "₦2,235.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, gen.PriceTag(tt.amount))
		})
	}
}

func TestAmount(t *testing.T) {
	t.Parallel()

	t.Run("within range", func(t *testing.T) {
		t.Parallel()

		gen := newTestGenerator(t)
		for range 50 {
			v, err := gen.Amount(10, 20)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, v, 10.0)
			assert.Less(t, v, 20.0)
		}
	})

	t.Run("min above max", func(t *testing.T) {
		t.Parallel()

		gen := newTestGenerator(t)
		_, err := gen.Amount(20, 10)
		require.Error(t, err)
		assert.ErrorIs(t, err, naija.ErrInvalidArgument)
	})
}

func TestRandomPriceTag(t *testing.T) {
	t.Parallel()

	gen := newTestGenerator(t)
	tagPattern := regexp.MustCompile(`^₦[0-9]{1,3}(,[0-9]{3})*\.[0-9]{2}$`)

	sawPlainKobo := false
	for range 100 {
		tag := gen.RandomPriceTag()
		require.Regexp(t, tagPattern, tag)
		if tag[len(tag)-3:] == ".00" {
			sawPlainKobo = true
		}
	}
	// Half of all tags close with .00, so a hundred draws see at least one.
	assert.True(t, sawPlainKobo)
}
