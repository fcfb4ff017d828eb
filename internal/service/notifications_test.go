package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/chucky-1/finfine/internal/model"
)

func TestDerive(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	summary := &model.DashboardSummary{
		Accounts: model.AccountsSummary{Data: []model.Account{{ID: "a1", Currency: "USD"}}},
		Budgets: model.BudgetsSummary{Data: []model.Budget{
			{ID: "b1", Category: "Groceries", Amount: 1000, Spent: 790, Period: "monthly"},
			{ID: "b2", Category: "Dining", Amount: 500, Spent: 400, Period: "monthly"},
			{ID: "b3", Category: "Travel", Amount: 1000, Spent: 1200, Period: "monthly"},
		}},
		Goals: model.GoalsSummary{Data: []model.Goal{
			{ID: "g1", Name: "Vacation", TargetAmount: 1000, CurrentAmount: 100},
			{ID: "g2", Name: "Car", TargetAmount: 1000, CurrentAmount: 600},
			{ID: "g3", Name: "Laptop", TargetAmount: 1000, CurrentAmount: 1500},
		}},
	}

	got := Derive(summary, now)
	ids := make([]string, len(got))
	for i, n := range got {
		ids[i] = n.ID
		require.Equal(t, now, n.CreatedAt)
	}
	require.Equal(t, []string{"budget-b2-80", "budget-b3-over", "goal-g2-50", "goal-g3-100"}, ids)

	require.Equal(t, "Budget Alert", got[0].Title)
	require.Equal(t, "You're approaching your monthly Dining budget limit.", got[0].Message)
	require.Equal(t, "You're $200 over your Travel budget.", got[1].Message)
	require.Equal(t, "Goal Achievement", got[2].Title)
	require.Equal(t, "Congratulations! You're 50% of the way to your Car goal.", got[2].Message)
	require.Equal(t, model.NotificationGoal, got[3].Kind)
}

func TestDerive_NoSummary(t *testing.T) {
	require.Empty(t, Derive(nil, time.Now()))
	require.Empty(t, Derive(&model.DashboardSummary{}, time.Now()))
}
