package web

import (
	"net/http"
	"strconv"

	"github.com/chucky-1/finfine/internal/model"
	"github.com/chucky-1/finfine/internal/planner"
	"github.com/chucky-1/finfine/internal/service"
)

const transactionsPerPage = 10

type dashboardPage struct {
	layout
	Summary      service.Resource[model.DashboardSummary]
	Totals       model.Totals
	SavingsRate  float64
	Budgets      planner.BudgetOverview
	Goals        []planner.GoalProgress
	Transactions service.Resource[model.TransactionsResponse]
	Filter       model.TransactionsParams
	Page         int
	PrevPage     int
	NextPage     int
}

// pageLayout loads the settings the shell depends on before building it.
func (s *Server) pageLayout(r *http.Request, active, title string) layout {
	session := SessionFrom(r.Context())
	s.deps.Dashboard.Settings(r.Context(), session)
	return s.layout(r, session, active, title)
}

func (s *Server) dashboardPage(w http.ResponseWriter, r *http.Request) {
	session := SessionFrom(r.Context())
	summary := s.deps.Dashboard.Summary(r.Context(), session)
	if summary.Unauthorized {
		s.expired(w, r)
		return
	}

	page := dashboardPage{Summary: summary}
	page.Page, page.Filter = transactionsFilter(r)
	page.Transactions = s.deps.Dashboard.Transactions(r.Context(), session, page.Filter)
	if page.Transactions.Unauthorized {
		s.expired(w, r)
		return
	}
	page.layout = s.pageLayout(r, "/", "Dashboard")
	if s.deps.Dashboard.Currency(session) == "" && summary.Data != nil && len(summary.Data.Accounts.Data) > 0 {
		if c := summary.Data.Accounts.Data[0].Currency; c != "" {
			page.Currency = c
		}
	}

	if data := summary.Data; data != nil {
		page.Totals = data.Summary
		page.SavingsRate = planner.SavingsRate(data.Summary.SavingsRate, data.Summary.IncomeThisMonth,
			data.Summary.IncomeThisMonth-data.Summary.ExpensesThisMonth)
		page.Budgets = planner.Overview(data.Budgets.Data, data.Budgets.Total, data.Budgets.Spent, data.Budgets.Remaining)
		now := s.now()
		for _, g := range data.Goals.Data {
			page.Goals = append(page.Goals, planner.ProgressOf(g, now))
		}
	}
	if t := page.Transactions.Data; t != nil {
		if page.Page > 1 {
			page.PrevPage = page.Page - 1
		}
		if page.Page < t.TotalPages {
			page.NextPage = page.Page + 1
		}
	}
	s.render(w, http.StatusOK, "dashboard", page)
}

func transactionsFilter(r *http.Request) (int, model.TransactionsParams) {
	q := r.URL.Query()
	page, err := strconv.Atoi(q.Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	params := model.TransactionsParams{
		Limit:    transactionsPerPage,
		Skip:     (page - 1) * transactionsPerPage,
		Category: q.Get("category"),
	}
	switch t := q.Get("type"); t {
	case model.TransactionIncome, model.TransactionExpense:
		params.Type = t
	}
	return page, params
}

// refresh backs the dashboard's retry button.
func (s *Server) refresh(w http.ResponseWriter, r *http.Request) {
	summary := s.deps.Dashboard.Refresh(r.Context(), SessionFrom(r.Context()))
	if summary.Unauthorized {
		s.expired(w, r)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
