package web

import (
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/chucky-1/finfine/internal/model"
	"github.com/chucky-1/finfine/internal/planner"
	"github.com/chucky-1/finfine/internal/service"
)

// planFields lists the inputs each planner form submits.
var planFields = map[string][]string{
	model.PlanBudget:   {"income", "needs", "wants", "savings"},
	model.PlanCashFlow: {"salary", "investments", "other_income", "housing", "food", "utilities", "transportation", "entertainment", "other_expenses"},
	model.PlanSafety:   {"expenses", "savings", "months"},
	model.PlanChildren: {"child_age", "target_age", "target", "savings"},
	model.PlanMarriage: {"target", "years", "savings"},
}

var planPages = map[string]string{
	model.PlanBudget:   "/budget",
	model.PlanCashFlow: "/budget",
	model.PlanSafety:   "/safety",
	model.PlanChildren: "/children",
	model.PlanMarriage: "/marriage",
}

// numbers reads the named fields that hold a finite number. Negative amounts count as 0.
func numbers(values url.Values, names ...string) map[string]float64 {
	out := make(map[string]float64)
	for _, name := range names {
		raw := strings.TrimSpace(values.Get(name))
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		out[name] = math.Max(v, 0)
	}
	return out
}

func field(values map[string]float64, name string, fallback float64) float64 {
	if v, ok := values[name]; ok {
		return v
	}
	return fallback
}

// complete reports whether values holds every field a planner form submits.
func complete(values map[string]float64, fields []string) bool {
	for _, name := range fields {
		if _, ok := values[name]; !ok {
			return false
		}
	}
	return true
}

// inputs returns what the visitor typed laid over the plan they saved. The source is
// SourceInput or SourceSaved only when every field of the form is known; otherwise it
// is SourceDefault and the page fills the gaps itself.
func (s *Server) inputs(r *http.Request, kind string) (map[string]float64, planner.Source) {
	fields := planFields[kind]
	typed := numbers(r.URL.Query(), fields...)
	if complete(typed, fields) {
		return typed, planner.SourceInput
	}
	saved, ok, err := s.deps.Plans.Load(r.Context(), SessionFrom(r.Context()), kind)
	if err != nil {
		logrus.Errorf("web, load %s plan error: %v", kind, err)
		return typed, planner.SourceDefault
	}
	if !ok {
		return typed, planner.SourceDefault
	}
	merged := make(map[string]float64, len(fields))
	for k, v := range saved {
		merged[k] = v
	}
	for k, v := range typed {
		merged[k] = v
	}
	switch {
	case !complete(merged, fields):
		return merged, planner.SourceDefault
	case len(typed) > 0:
		return merged, planner.SourceInput
	}
	return merged, planner.SourceSaved
}

func (s *Server) savePlan(w http.ResponseWriter, r *http.Request) {
	kind := r.PathValue("kind")
	fields, ok := planFields[kind]
	if !ok {
		s.notFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		s.renderError(w, r, http.StatusBadRequest, "The form could not be read.")
		return
	}
	values := numbers(r.PostForm, fields...)
	if !complete(values, fields) {
		s.renderError(w, r, http.StatusBadRequest, "Fill in every field with a number before saving.")
		return
	}
	if err := s.deps.Plans.Save(r.Context(), SessionFrom(r.Context()), kind, values); err != nil {
		logrus.Errorf("web, save %s plan error: %v", kind, err)
		s.renderError(w, r, http.StatusInternalServerError, "Your plan could not be saved. Please try again.")
		return
	}
	http.Redirect(w, r, planPages[kind]+"?done=saved", http.StatusSeeOther)
}

type budgetPage struct {
	layout
	Summary     service.Resource[model.DashboardSummary]
	Budgets     service.Resource[model.BudgetsResponse]
	Overview    planner.BudgetOverview
	Income      planner.Result[float64]
	Split       planner.Split
	Allocation  planner.Allocation
	CashFlow    planner.Result[planner.CashFlow]
	Surplus     float64
	SavingsRate float64
}

func (s *Server) budgetPage(w http.ResponseWriter, r *http.Request) {
	session := SessionFrom(r.Context())
	summary := s.deps.Dashboard.Summary(r.Context(), session)
	budgets := s.deps.Dashboard.Budgets(r.Context(), session)
	if summary.Unauthorized || budgets.Unauthorized {
		s.expired(w, r)
		return
	}
	var totals model.Totals
	if summary.Data != nil {
		totals = summary.Data.Summary
	}

	page := budgetPage{
		layout:  s.pageLayout(r, "/budget", "Budget"),
		Summary: summary,
		Budgets: budgets,
	}
	if b := budgets.Data; b != nil {
		page.Overview = planner.Overview(b.Budgets, b.Total, b.Spent, b.Remaining)
	}

	in, source := s.inputs(r, model.PlanBudget)
	if source == planner.SourceDefault {
		source = planner.SourceInput
	}
	switch {
	case in["income"] > 0:
		page.Income = planner.From(in["income"], source)
	case totals.IncomeThisMonth > 0:
		page.Income = planner.From(totals.IncomeThisMonth, planner.SourceSummary)
	default:
		page.Income = planner.NoData(float64(planner.DefaultMonthlyIncome))
	}
	page.Split = splitFrom(in, r.URL.Query().Get("adjust"))
	page.Allocation = planner.Amounts(page.Income.Value, page.Split)

	page.CashFlow = s.cashFlow(r, totals)
	page.Surplus = page.CashFlow.Value.Surplus()
	reported := 0.0
	if page.CashFlow.Source == planner.SourceSummary {
		reported = totals.SavingsRate
	}
	page.SavingsRate = planner.SavingsRate(reported, page.CashFlow.Value.Income.Total(), page.Surplus)

	s.render(w, http.StatusOK, "budget", page)
}

// splitFrom applies the adjustment the visitor asked for to the submitted split. The
// adjusted slider is authoritative and the others follow it. A split edited without
// pressing Apply is repaired around the edited value rather than reset.
func splitFrom(in map[string]float64, adjust string) planner.Split {
	def := planner.DefaultSplit()
	prev := planner.Split{
		Needs:   field(in, "needs", def.Needs),
		Wants:   field(in, "wants", def.Wants),
		Savings: field(in, "savings", def.Savings),
	}
	switch adjust {
	case "needs":
		return planner.AdjustNeeds(prev, prev.Needs)
	case "wants":
		return planner.AdjustWants(prev, prev.Wants)
	}
	if prev.Valid() {
		return prev
	}
	if prev.Needs+prev.Wants <= 100 {
		return planner.AdjustWants(prev, prev.Wants)
	}
	return planner.AdjustNeeds(prev, prev.Needs)
}

func (s *Server) cashFlow(r *http.Request, totals model.Totals) planner.Result[planner.CashFlow] {
	base := planner.CashFlow{Income: planner.DefaultIncome(), Expenses: planner.DefaultExpenses()}
	baseSource := planner.SourceDefault
	if totals.IncomeThisMonth > 0 || totals.ExpensesThisMonth > 0 {
		base = planner.CashFlow{
			Income:   planner.IncomeFromTotal(totals.IncomeThisMonth),
			Expenses: planner.ExpensesFromTotal(totals.ExpensesThisMonth),
		}
		baseSource = planner.SourceSummary
	}

	in, source := s.inputs(r, model.PlanCashFlow)
	if source == planner.SourceDefault {
		source = baseSource
	}
	inc, exp := base.Income, base.Expenses
	return planner.From(planner.CashFlow{
		Income: planner.Income{
			Salary:      field(in, "salary", inc.Salary),
			Investments: field(in, "investments", inc.Investments),
			Other:       field(in, "other_income", inc.Other),
		},
		Expenses: planner.Expenses{
			Housing:        field(in, "housing", exp.Housing),
			Food:           field(in, "food", exp.Food),
			Utilities:      field(in, "utilities", exp.Utilities),
			Transportation: field(in, "transportation", exp.Transportation),
			Entertainment:  field(in, "entertainment", exp.Entertainment),
			Other:          field(in, "other_expenses", exp.Other),
		},
	}, source)
}

type fundPage struct {
	layout
	Kind    string
	Summary service.Resource[model.DashboardSummary]
	Result  planner.Result[planner.Projection]
	Goals   []planner.GoalProgress
}

type safetyPage struct {
	fundPage
	Input planner.EmergencyInput
}

type childrenPage struct {
	fundPage
	Input planner.ChildrenInput
}

type marriagePage struct {
	fundPage
	Input planner.MarriageInput
}

// fund loads what every fund page shows: the summary and the goals matching the fund.
func (s *Server) fund(w http.ResponseWriter, r *http.Request, kind, title string, match func([]model.Goal) []model.Goal) (fundPage, bool) {
	session := SessionFrom(r.Context())
	summary := s.deps.Dashboard.Summary(r.Context(), session)
	if summary.Unauthorized {
		s.expired(w, r)
		return fundPage{}, false
	}
	page := fundPage{
		layout:  s.pageLayout(r, planPages[kind], title),
		Kind:    kind,
		Summary: summary,
	}
	if summary.Data != nil {
		now := s.now()
		for _, g := range match(summary.Data.Goals.Data) {
			page.Goals = append(page.Goals, planner.ProgressOf(g, now))
		}
	}
	return page, true
}

func goalSums(goals []planner.GoalProgress) (target, current float64) {
	for _, g := range goals {
		target += g.Goal.TargetAmount
		current += g.Goal.CurrentAmount
	}
	return target, current
}

// seeded keeps the source of typed or saved inputs, and otherwise falls back to what the
// page could seed itself from.
func seeded(src, fallback planner.Source) planner.Source {
	if src != planner.SourceDefault {
		return src
	}
	return fallback
}

func (s *Server) safetyPage(w http.ResponseWriter, r *http.Request) {
	base, ok := s.fund(w, r, model.PlanSafety, "Emergency Fund", planner.EmergencyGoals)
	if !ok {
		return
	}
	page := safetyPage{fundPage: base, Input: planner.DefaultEmergency()}
	fallback := planner.SourceDefault
	if base.Summary.Data != nil && base.Summary.Data.Summary.ExpensesThisMonth > 0 {
		_, current := goalSums(base.Goals)
		page.Input.MonthlyExpenses = base.Summary.Data.Summary.ExpensesThisMonth
		page.Input.CurrentSavings = current
		fallback = planner.SourceSummary
	}

	in, src := s.inputs(r, model.PlanSafety)
	page.Input = planner.EmergencyInput{
		MonthlyExpenses: field(in, "expenses", page.Input.MonthlyExpenses),
		CurrentSavings:  field(in, "savings", page.Input.CurrentSavings),
		BuildMonths:     field(in, "months", page.Input.BuildMonths),
	}
	page.Result = planner.From(planner.Emergency(page.Input), seeded(src, fallback))
	s.render(w, http.StatusOK, "safety", page)
}

func (s *Server) childrenPage(w http.ResponseWriter, r *http.Request) {
	base, ok := s.fund(w, r, model.PlanChildren, "Children's Fund", planner.ChildrenGoals)
	if !ok {
		return
	}
	page := childrenPage{fundPage: base, Input: planner.DefaultChildren()}
	fallback := planner.SourceDefault
	if target, current := goalSums(base.Goals); target > 0 {
		page.Input.TargetAmount = target
		page.Input.CurrentSavings = current
		fallback = planner.SourceSummary
	}

	in, src := s.inputs(r, model.PlanChildren)
	page.Input = planner.ChildrenInput{
		ChildAge:       field(in, "child_age", page.Input.ChildAge),
		TargetAge:      field(in, "target_age", page.Input.TargetAge),
		TargetAmount:   field(in, "target", page.Input.TargetAmount),
		CurrentSavings: field(in, "savings", page.Input.CurrentSavings),
	}
	page.Result = planner.From(planner.Children(page.Input), seeded(src, fallback))
	s.render(w, http.StatusOK, "children", page)
}

func (s *Server) marriagePage(w http.ResponseWriter, r *http.Request) {
	base, ok := s.fund(w, r, model.PlanMarriage, "Marriage Fund", planner.MarriageGoals)
	if !ok {
		return
	}
	page := marriagePage{fundPage: base, Input: planner.DefaultMarriage()}
	fallback := planner.SourceDefault
	if target, current := goalSums(base.Goals); target > 0 {
		page.Input.TargetAmount = target
		page.Input.CurrentSavings = current
		if months := base.Goals[0].MonthsLeft; months > 0 {
			page.Input.Years = math.Ceil(months / 12)
		}
		fallback = planner.SourceSummary
	}

	in, src := s.inputs(r, model.PlanMarriage)
	page.Input = planner.MarriageInput{
		TargetAmount:   field(in, "target", page.Input.TargetAmount),
		Years:          field(in, "years", page.Input.Years),
		CurrentSavings: field(in, "savings", page.Input.CurrentSavings),
	}
	page.Result = planner.From(planner.Marriage(page.Input), seeded(src, fallback))
	s.render(w, http.StatusOK, "marriage", page)
}
