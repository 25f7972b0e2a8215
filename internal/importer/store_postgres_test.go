package importer

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestNumericPriceKeepsExactCents(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"12.99", "12.99"},
		{"1299", "1299.00"},
		{"0", "0.00"},
		{"7.005", "7.01"},
	}

	for _, tc := range cases {
		d, err := decimal.NewFromString(tc.in)
		require.NoError(t, err)
		require.Equal(t, tc.want, numericPrice(d))
	}

	// Sums that drift under float64 stay exact as decimals.
	sum := decimal.RequireFromString("0.1").Add(decimal.RequireFromString("0.2"))
	require.Equal(t, "0.30", numericPrice(sum))
}
