package planner

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIncomeFromTotal(t *testing.T) {
	in := IncomeFromTotal(10000)
	require.Equal(t, Income{Salary: 9000, Investments: 800, Other: 200}, in)
	require.InDelta(t, 10000, in.Total(), 1)
}

func TestIncomeFromTotal_RoundingTolerance(t *testing.T) {
	for _, total := range []float64{1, 333, 3000, 3120.5, 12345.67} {
		in := IncomeFromTotal(total)
		require.InDelta(t, total, in.Total(), 1.5, "total %v", total)
	}
}

func TestExpensesFromTotal(t *testing.T) {
	ex := ExpensesFromTotal(2000)
	require.Equal(t, Expenses{Housing: 700, Food: 300, Utilities: 200, Transportation: 300, Entertainment: 200, Other: 300}, ex)
	require.Equal(t, 2000.0, ex.Total())
}

func TestCashFlow_Defaults(t *testing.T) {
	cf := CashFlow{Income: DefaultIncome(), Expenses: DefaultExpenses()}
	require.Equal(t, 5200.0, cf.Income.Total())
	require.Equal(t, 2900.0, cf.Expenses.Total())
	require.Equal(t, 2300.0, cf.Surplus())
}

func TestSavingsRate(t *testing.T) {
	testTable := []struct {
		name     string
		reported float64
		income   float64
		surplus  float64
		result   float64
	}{
		{name: "Reported rate wins", reported: 25, income: 5200, surplus: 2300, result: 25},
		{name: "Derived rate", income: 5200, surplus: 2300, result: 44},
		{name: "No income", income: 0, surplus: -2900, result: 0},
		{name: "Negative surplus", income: 1000, surplus: -500, result: -50},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			rate := SavingsRate(testCase.reported, testCase.income, testCase.surplus)
			require.False(t, math.IsNaN(rate))
			require.Equal(t, testCase.result, rate)
		})
	}
}
