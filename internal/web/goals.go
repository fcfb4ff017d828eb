package web

import (
	"net/http"

	"github.com/chucky-1/finfine/internal/model"
	"github.com/chucky-1/finfine/internal/planner"
	"github.com/chucky-1/finfine/internal/service"
)

type horizonGroup struct {
	Horizon planner.Horizon
	Label   string
	Range   string
	Options []planner.InvestmentOption
	Goals   []planner.GoalProgress
}

type goalsPage struct {
	layout
	Goals    service.Resource[model.GoalsResponse]
	Progress float64
	Groups   []horizonGroup
}

func newHorizonGroups() []horizonGroup {
	groups := []horizonGroup{
		{Horizon: planner.HorizonShort, Label: "Short-term goals", Range: "1-3 years"},
		{Horizon: planner.HorizonMedium, Label: "Medium-term goals", Range: "3-7 years"},
		{Horizon: planner.HorizonLong, Label: "Long-term goals", Range: "7+ years"},
		{Horizon: planner.HorizonUnknown, Label: "Goals without a deadline"},
	}
	for i := range groups {
		groups[i].Options = planner.InvestmentOptions(groups[i].Horizon)
	}
	return groups
}

func (s *Server) goalsPage(w http.ResponseWriter, r *http.Request) {
	goals := s.deps.Dashboard.Goals(r.Context(), SessionFrom(r.Context()))
	if goals.Unauthorized {
		s.expired(w, r)
		return
	}
	page := goalsPage{
		layout: s.pageLayout(r, "/goals", "Goals"),
		Goals:  goals,
		Groups: newHorizonGroups(),
	}
	if data := goals.Data; data != nil {
		page.Progress = planner.Clamp(planner.Percent(data.Current, data.Total))
		now := s.now()
		for _, g := range data.Goals {
			progress := planner.ProgressOf(g, now)
			for i := range page.Groups {
				if page.Groups[i].Horizon == progress.Horizon {
					page.Groups[i].Goals = append(page.Groups[i].Goals, progress)
				}
			}
		}
	}
	s.render(w, http.StatusOK, "goals", page)
}
