package service

import (
	"fmt"
	"time"

	"github.com/chucky-1/finfine/internal/model"
	"github.com/chucky-1/finfine/internal/money"
	"github.com/chucky-1/finfine/internal/planner"
)

const budgetWarningPercent = 80

var goalMilestones = []float64{100, 75, 50, 25}

// Derive builds the alerts a summary warrants: budgets nearing or past their limit and
// the highest milestone each goal has reached. IDs are stable so an alert can be
// recognised as already delivered.
func Derive(summary *model.DashboardSummary, now time.Time) []model.Notification {
	if summary == nil {
		return nil
	}
	currency := ""
	if len(summary.Accounts.Data) > 0 {
		currency = summary.Accounts.Data[0].Currency
	}

	var out []model.Notification
	for _, b := range summary.Budgets.Data {
		line := planner.BudgetLineOf(b)
		switch {
		case line.Over:
			out = append(out, model.Notification{
				ID:        fmt.Sprintf("budget-%s-over", b.ID),
				Title:     "Over Budget",
				Message:   fmt.Sprintf("You're %s over your %s budget.", money.Format(line.OverBy, currency), b.Category),
				Kind:      model.NotificationBudget,
				CreatedAt: now,
			})
		case line.Percentage >= budgetWarningPercent:
			out = append(out, model.Notification{
				ID:        fmt.Sprintf("budget-%s-%d", b.ID, budgetWarningPercent),
				Title:     "Budget Alert",
				Message:   fmt.Sprintf("You're approaching your %s %s budget limit.", b.Period, b.Category),
				Kind:      model.NotificationBudget,
				CreatedAt: now,
			})
		}
	}

	for _, g := range summary.Goals.Data {
		progress := planner.ProgressOf(g, now).Progress
		for _, milestone := range goalMilestones {
			if progress < milestone {
				continue
			}
			msg := fmt.Sprintf("Congratulations! You're %.0f%% of the way to your %s goal.", milestone, g.Name)
			if milestone == 100 {
				msg = fmt.Sprintf("Congratulations! You've reached your %s goal.", g.Name)
			}
			out = append(out, model.Notification{
				ID:        fmt.Sprintf("goal-%s-%.0f", g.ID, milestone),
				Title:     "Goal Achievement",
				Message:   msg,
				Kind:      model.NotificationGoal,
				CreatedAt: now,
			})
			break
		}
	}
	return out
}
