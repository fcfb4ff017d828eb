package service

import (
	"context"
	"sync"
	"time"

	"github.com/chucky-1/finfine/internal/model"
)

//go:generate mockery --name=DashboardAPI

type DashboardAPI interface {
	Summary(ctx context.Context, token string) (*model.DashboardSummary, error)
	Accounts(ctx context.Context, token string) (*model.AccountsResponse, error)
	Transactions(ctx context.Context, token string, params model.TransactionsParams) (*model.TransactionsResponse, error)
	Budgets(ctx context.Context, token string) (*model.BudgetsResponse, error)
	Goals(ctx context.Context, token string) (*model.GoalsResponse, error)
	Settings(ctx context.Context, token string) (*model.Settings, error)
	UpdateSetting(ctx context.Context, token, section, value string) error
}

// AlertSink receives the notifications derived from every fresh summary.
type AlertSink interface {
	Offer(userID string, notifications []model.Notification)
}

type viewState struct {
	created time.Time

	summary  resource[model.DashboardSummary]
	accounts resource[model.AccountsResponse]
	budgets  resource[model.BudgetsResponse]
	goals    resource[model.GoalsResponse]
	settings resource[model.Settings]

	mu           sync.Mutex
	transactions map[string]*resource[model.TransactionsResponse]
}

// Dashboard keeps the per-session view state of every remote resource. State lives
// from the first fetch after sign-in until Forget; data changes elsewhere never
// invalidate it, only an explicit refresh does.
type Dashboard struct {
	api    DashboardAPI
	alerts AlertSink
	now    func() time.Time

	mu     sync.Mutex
	states map[string]*viewState
}

func NewDashboard(api DashboardAPI, alerts AlertSink) *Dashboard {
	return &Dashboard{
		api:    api,
		alerts: alerts,
		now:    time.Now,
		states: make(map[string]*viewState),
	}
}

func (d *Dashboard) state(session *model.Session) *viewState {
	d.mu.Lock()
	defer d.mu.Unlock()
	s, ok := d.states[session.ID]
	if !ok {
		s = &viewState{
			created:      session.CreatedAt,
			transactions: make(map[string]*resource[model.TransactionsResponse]),
		}
		d.states[session.ID] = s
	}
	return s
}

// Forget drops everything held for a session, called when it signs out.
func (d *Dashboard) Forget(sessionID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.states, sessionID)
}

// ForgetBefore drops the state of sessions created before t and reports how many went.
func (d *Dashboard) ForgetBefore(t time.Time) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	var n int
	for id, s := range d.states {
		if s.created.Before(t) {
			delete(d.states, id)
			n++
		}
	}
	return n
}

func (d *Dashboard) Summary(ctx context.Context, session *model.Session) Resource[model.DashboardSummary] {
	return d.summary(ctx, session, false)
}

// Refresh re-runs the summary fetch, backing the dashboard's retry button.
func (d *Dashboard) Refresh(ctx context.Context, session *model.Session) Resource[model.DashboardSummary] {
	return d.summary(ctx, session, true)
}

func (d *Dashboard) summary(ctx context.Context, session *model.Session, refresh bool) Resource[model.DashboardSummary] {
	return d.state(session).summary.get(ctx, "summary", refresh, func(ctx context.Context) (*model.DashboardSummary, error) {
		summary, err := d.api.Summary(ctx, session.Token)
		if err == nil && d.alerts != nil {
			d.alerts.Offer(session.User.ID, Derive(summary, d.now()))
		}
		return summary, err
	})
}

// Notifications lists what the header bell shows, derived from the summary held for
// the session without fetching it.
func (d *Dashboard) Notifications(session *model.Session) []model.Notification {
	state := d.state(session).summary.peek()
	if state.Data == nil {
		return nil
	}
	return Derive(state.Data, d.now())
}

func (d *Dashboard) Accounts(ctx context.Context, session *model.Session) Resource[model.AccountsResponse] {
	return d.state(session).accounts.get(ctx, "accounts", false, func(ctx context.Context) (*model.AccountsResponse, error) {
		return d.api.Accounts(ctx, session.Token)
	})
}

func (d *Dashboard) Budgets(ctx context.Context, session *model.Session) Resource[model.BudgetsResponse] {
	return d.state(session).budgets.get(ctx, "budgets", false, func(ctx context.Context) (*model.BudgetsResponse, error) {
		return d.api.Budgets(ctx, session.Token)
	})
}

func (d *Dashboard) Goals(ctx context.Context, session *model.Session) Resource[model.GoalsResponse] {
	return d.state(session).goals.get(ctx, "goals", false, func(ctx context.Context) (*model.GoalsResponse, error) {
		return d.api.Goals(ctx, session.Token)
	})
}

// Transactions holds one page per distinct parameter set.
func (d *Dashboard) Transactions(ctx context.Context, session *model.Session, params model.TransactionsParams) Resource[model.TransactionsResponse] {
	s := d.state(session)
	s.mu.Lock()
	r, ok := s.transactions[params.Key()]
	if !ok {
		r = &resource[model.TransactionsResponse]{}
		s.transactions[params.Key()] = r
	}
	s.mu.Unlock()

	return r.get(ctx, "transactions", false, func(ctx context.Context) (*model.TransactionsResponse, error) {
		return d.api.Transactions(ctx, session.Token, params)
	})
}

func (d *Dashboard) Settings(ctx context.Context, session *model.Session) Resource[model.Settings] {
	return d.settings(ctx, session, false)
}

func (d *Dashboard) settings(ctx context.Context, session *model.Session, refresh bool) Resource[model.Settings] {
	return d.state(session).settings.get(ctx, "settings", refresh, func(ctx context.Context) (*model.Settings, error) {
		return d.api.Settings(ctx, session.Token)
	})
}

// UpdateSetting writes one settings section and reloads the settings it changed.
func (d *Dashboard) UpdateSetting(ctx context.Context, session *model.Session, section, value string) (Resource[model.Settings], error) {
	if err := d.api.UpdateSetting(ctx, session.Token, section, value); err != nil {
		return d.state(session).settings.peek(), err
	}
	return d.settings(ctx, session, true), nil
}

// Currency is the display currency from the settings held for the session.
func (d *Dashboard) Currency(session *model.Session) string {
	state := d.state(session).settings.peek()
	if state.Data == nil {
		return ""
	}
	return state.Data.Currency
}
