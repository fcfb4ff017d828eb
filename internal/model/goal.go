package model

import "time"

type Goal struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	TargetAmount  float64 `json:"target_amount"`
	CurrentAmount float64 `json:"current_amount"`
	Deadline      *string `json:"deadline"`
	Priority      string  `json:"priority"`
}

// DeadlineTime reports the parsed deadline and whether the goal has one.
func (g Goal) DeadlineTime() (time.Time, bool) {
	if g.Deadline == nil || *g.Deadline == "" {
		return time.Time{}, false
	}
	t := parseISO(*g.Deadline)
	return t, !t.IsZero()
}

type GoalsResponse struct {
	Goals    []Goal  `json:"goals"`
	Total    float64 `json:"total"`
	Current  float64 `json:"current"`
	Progress float64 `json:"progress"`
}
