package planner

import (
	"strings"
	"time"

	"github.com/chucky-1/finfine/internal/model"
)

type Horizon string

const (
	HorizonShort   Horizon = "short"
	HorizonMedium  Horizon = "medium"
	HorizonLong    Horizon = "long"
	HorizonUnknown Horizon = "unknown"
)

// HorizonFor buckets a deadline: under 3 years short, under 7 medium, otherwise long.
func HorizonFor(deadline time.Time, now time.Time) Horizon {
	if deadline.IsZero() {
		return HorizonUnknown
	}
	switch {
	case deadline.Before(now.AddDate(3, 0, 0)):
		return HorizonShort
	case deadline.Before(now.AddDate(7, 0, 0)):
		return HorizonMedium
	}
	return HorizonLong
}

type GoalProgress struct {
	Goal      model.Goal
	Progress  float64
	Remaining float64
	Horizon   Horizon
	// MonthsLeft is zero when the goal has no deadline or it has passed.
	MonthsLeft float64
}

func ProgressOf(goal model.Goal, now time.Time) GoalProgress {
	gp := GoalProgress{
		Goal:     goal,
		Progress: Clamp(Percent(goal.CurrentAmount, goal.TargetAmount)),
		Horizon:  HorizonUnknown,
	}
	if remaining := goal.TargetAmount - goal.CurrentAmount; remaining > 0 {
		gp.Remaining = remaining
	}
	if deadline, ok := goal.DeadlineTime(); ok {
		gp.Horizon = HorizonFor(deadline, now)
		if months := monthsBetween(now, deadline); months > 0 {
			gp.MonthsLeft = months
		}
	}
	return gp
}

func monthsBetween(from, to time.Time) float64 {
	return Round(to.Sub(from).Hours() / 24 / 30.4375)
}

// FilterGoals keeps goals whose name contains any of keywords, case-insensitively.
func FilterGoals(goals []model.Goal, keywords ...string) []model.Goal {
	var out []model.Goal
	for _, g := range goals {
		name := strings.ToLower(g.Name)
		for _, k := range keywords {
			if strings.Contains(name, k) {
				out = append(out, g)
				break
			}
		}
	}
	return out
}

func ChildrenGoals(goals []model.Goal) []model.Goal {
	return FilterGoals(goals, "child", "education")
}

func MarriageGoals(goals []model.Goal) []model.Goal {
	return FilterGoals(goals, "marriage", "wedding")
}

func EmergencyGoals(goals []model.Goal) []model.Goal {
	return FilterGoals(goals, "emergency")
}

type BudgetLine struct {
	Budget     model.Budget
	Percentage float64
	// Bar is Percentage capped at 100 for progress bars.
	Bar       float64
	Over      bool
	Remaining float64
	OverBy    float64
}

func BudgetLineOf(b model.Budget) BudgetLine {
	pct := Percent(b.Spent, b.Amount)
	line := BudgetLine{Budget: b, Percentage: pct, Bar: Clamp(pct), Over: pct > 100}
	if line.Over {
		line.OverBy = b.Spent - b.Amount
	} else {
		line.Remaining = b.Amount - b.Spent
	}
	return line
}

type BudgetOverview struct {
	Total      float64
	Spent      float64
	Remaining  float64
	Percentage float64
	Lines      []BudgetLine
}

func Overview(budgets []model.Budget, total, spent, remaining float64) BudgetOverview {
	o := BudgetOverview{Total: total, Spent: spent, Remaining: remaining, Percentage: Percent(spent, total)}
	for _, b := range budgets {
		o.Lines = append(o.Lines, BudgetLineOf(b))
	}
	return o
}

type InvestmentOption struct {
	Name   string
	Return string
}

// InvestmentOptions suggests where to keep money for goals of a horizon.
func InvestmentOptions(h Horizon) []InvestmentOption {
	switch h {
	case HorizonShort:
		return []InvestmentOption{{Name: "High-Yield Savings", Return: "3-4%"}, {Name: "Liquid Funds", Return: "5-6%"}}
	case HorizonMedium:
		return []InvestmentOption{{Name: "Hybrid Mutual Funds", Return: "8-10%"}, {Name: "Fixed Deposits", Return: "5-7%"}}
	case HorizonLong:
		return []InvestmentOption{{Name: "Index Fund SIPs", Return: "10-12%"}, {Name: "Retirement Funds", Return: "8-10%"}}
	}
	return nil
}
