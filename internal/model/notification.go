package model

import "time"

const (
	NotificationBudget = "budget"
	NotificationGoal   = "goal"
)

type Notification struct {
	ID        string
	Title     string
	Message   string
	Kind      string
	CreatedAt time.Time
}
