package money

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	testTable := []struct {
		name     string
		amount   float64
		currency string
		result   string
	}{
		{name: "Grouped dollars", amount: 18000, currency: "USD", result: "$18,000"},
		{name: "Rounded", amount: 120.5, currency: "usd", result: "$121"},
		{name: "Negative", amount: -2300, currency: "USD", result: "-$2,300"},
		{name: "Default currency", amount: 7, currency: "", result: "$7"},
		{name: "Rupees", amount: 1234567, currency: "INR", result: "₹1,234,567"},
		{name: "Unknown currency", amount: 10, currency: "CHF", result: "CHF 10"},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			require.Equal(t, testCase.result, Format(testCase.amount, testCase.currency))
		})
	}
}

func TestWhole(t *testing.T) {
	require.Equal(t, int64(28), Whole(27.78))
	require.Equal(t, int64(0), Whole(0.4))
	require.Equal(t, "1,500", Number(1500))
}
