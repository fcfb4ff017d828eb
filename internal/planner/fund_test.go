package planner

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmergency(t *testing.T) {
	p := Emergency(EmergencyInput{MonthlyExpenses: 3000, CurrentSavings: 5000, BuildMonths: 12})
	require.Equal(t, 18000.0, p.Target)
	require.Equal(t, 28.0, p.Progress)
	require.Equal(t, 13000.0, p.Remaining)
	require.Equal(t, 1084.0, p.Monthly)
}

func TestEmergency_ProgressClamped(t *testing.T) {
	p := Emergency(EmergencyInput{MonthlyExpenses: 1000, CurrentSavings: 50000, BuildMonths: 12})
	require.Equal(t, 100.0, p.Progress)
	require.Equal(t, 0.0, p.Remaining)
	require.Equal(t, 0.0, p.Monthly)
}

func TestMarriage(t *testing.T) {
	p := Marriage(DefaultMarriage())
	require.Equal(t, 10.0, p.Progress)
	require.Equal(t, 45000.0, p.Remaining)
	require.Equal(t, 1471.0, p.Monthly)
}

func TestChildren(t *testing.T) {
	p := Children(DefaultChildren())
	require.Equal(t, 90000.0, p.Remaining)
	require.Equal(t, 722.0, p.Monthly)
}

func TestProject_EdgeCases(t *testing.T) {
	testTable := []struct {
		name   string
		plan   FundPlan
		result Projection
	}{
		{
			name:   "No months left",
			plan:   FundPlan{Target: 1000, Current: 400, Months: 0, ReturnFactor: 0.8},
			result: Projection{Target: 1000, Remaining: 600, Progress: 40, Monthly: 600},
		},
		{
			name:   "Zero target with savings",
			plan:   FundPlan{Target: 0, Current: 10, Months: 12, ReturnFactor: 1},
			result: Projection{Target: 0, Remaining: 0, Progress: 100, Monthly: 0},
		},
		{
			name:   "Zero target without savings",
			plan:   FundPlan{Target: 0, Current: 0, Months: 12, ReturnFactor: 1},
			result: Projection{Target: 0, Remaining: 0, Progress: 0, Monthly: 0},
		},
		{
			name:   "Missing factor treated as one",
			plan:   FundPlan{Target: 1200, Current: 0, Months: 12},
			result: Projection{Target: 1200, Remaining: 1200, Progress: 0, Monthly: 100},
		},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			require.Equal(t, testCase.result, Project(testCase.plan))
		})
	}
}

func TestResult(t *testing.T) {
	r := NoData(DefaultEmergency())
	require.False(t, r.HasData())
	require.Equal(t, "default", r.Source.String())

	r = From(EmergencyInput{MonthlyExpenses: 10}, SourceSummary)
	require.True(t, r.HasData())
}
