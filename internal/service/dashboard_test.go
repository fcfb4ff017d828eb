package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chucky-1/finfine/internal/api"
	"github.com/chucky-1/finfine/internal/model"
	"github.com/chucky-1/finfine/internal/service/mocks"
)

var testSession = &model.Session{ID: "s1", Token: "token", User: testUser}

type recordingSink struct {
	mu     sync.Mutex
	offers map[string][]model.Notification
}

func (r *recordingSink) Offer(userID string, notifications []model.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.offers == nil {
		r.offers = make(map[string][]model.Notification)
	}
	r.offers[userID] = append(r.offers[userID], notifications...)
}

func summaryWithBudget(spent float64) *model.DashboardSummary {
	return &model.DashboardSummary{
		Accounts: model.AccountsSummary{Data: []model.Account{{ID: "a1", Currency: "USD", Balance: 1000}}, TotalBalance: 1000},
		Budgets:  model.BudgetsSummary{Data: []model.Budget{{ID: "b1", Category: "Groceries", Amount: 1000, Spent: spent, Period: "monthly"}}},
	}
}

func TestDashboard_SummaryFetchedOnce(t *testing.T) {
	dashAPI := mocks.NewDashboardAPI(t)
	sink := &recordingSink{}
	d := NewDashboard(dashAPI, sink)

	dashAPI.On("Summary", mock.Anything, "token").Return(summaryWithBudget(850), nil).Once()

	first := d.Summary(context.Background(), testSession)
	second := d.Summary(context.Background(), testSession)
	require.False(t, first.Loading)
	require.Empty(t, first.Err)
	require.Same(t, first.Data, second.Data)

	require.Len(t, sink.offers[testUser.ID], 1)
	require.Equal(t, "budget-b1-80", sink.offers[testUser.ID][0].ID)
	require.Len(t, d.Notifications(testSession), 1)
}

func TestDashboard_Refresh(t *testing.T) {
	dashAPI := mocks.NewDashboardAPI(t)
	d := NewDashboard(dashAPI, nil)

	dashAPI.On("Summary", mock.Anything, "token").Return(summaryWithBudget(100), nil).Once()
	dashAPI.On("Summary", mock.Anything, "token").Return(summaryWithBudget(200), nil).Once()

	require.Equal(t, float64(100), d.Summary(context.Background(), testSession).Data.Budgets.Data[0].Spent)
	require.Equal(t, float64(200), d.Refresh(context.Background(), testSession).Data.Budgets.Data[0].Spent)
	require.Equal(t, float64(200), d.Summary(context.Background(), testSession).Data.Budgets.Data[0].Spent)
}

func TestDashboard_ErrorKeepsPreviousData(t *testing.T) {
	dashAPI := mocks.NewDashboardAPI(t)
	d := NewDashboard(dashAPI, nil)

	dashAPI.On("Summary", mock.Anything, "token").Return(summaryWithBudget(100), nil).Once()
	dashAPI.On("Summary", mock.Anything, "token").Return(nil, &api.Error{Status: 500, Message: "An error occurred"}).Once()

	d.Summary(context.Background(), testSession)
	res := d.Refresh(context.Background(), testSession)
	require.Equal(t, "An error occurred", res.Err)
	require.False(t, res.Unauthorized)
	require.NotNil(t, res.Data)
}

func TestDashboard_Unauthorized(t *testing.T) {
	dashAPI := mocks.NewDashboardAPI(t)
	d := NewDashboard(dashAPI, nil)

	dashAPI.On("Budgets", mock.Anything, "token").Return(nil, &api.Error{Status: 401, Message: "Token is invalid"}).Once()

	res := d.Budgets(context.Background(), testSession)
	require.True(t, res.Unauthorized)
	require.Equal(t, "Token is invalid", res.Err)
	require.Nil(t, res.Data)
}

func TestDashboard_TransactionsPerParams(t *testing.T) {
	dashAPI := mocks.NewDashboardAPI(t)
	d := NewDashboard(dashAPI, nil)

	all := model.TransactionsParams{Limit: 10}
	income := model.TransactionsParams{Limit: 10, Type: model.TransactionIncome}
	dashAPI.On("Transactions", mock.Anything, "token", all).Return(&model.TransactionsResponse{TotalCount: 12}, nil).Once()
	dashAPI.On("Transactions", mock.Anything, "token", income).Return(&model.TransactionsResponse{TotalCount: 3}, nil).Once()

	require.Equal(t, 12, d.Transactions(context.Background(), testSession, all).Data.TotalCount)
	require.Equal(t, 3, d.Transactions(context.Background(), testSession, income).Data.TotalCount)
	require.Equal(t, 12, d.Transactions(context.Background(), testSession, all).Data.TotalCount)
}

func TestDashboard_UpdateSettingReloads(t *testing.T) {
	dashAPI := mocks.NewDashboardAPI(t)
	d := NewDashboard(dashAPI, nil)

	dashAPI.On("Settings", mock.Anything, "token").Return(&model.Settings{Currency: "USD"}, nil).Once()
	dashAPI.On("UpdateSetting", mock.Anything, "token", model.SettingCurrency, "EUR").Return(nil).Once()
	dashAPI.On("Settings", mock.Anything, "token").Return(&model.Settings{Currency: "EUR"}, nil).Once()

	d.Settings(context.Background(), testSession)
	require.Equal(t, "USD", d.Currency(testSession))

	res, err := d.UpdateSetting(context.Background(), testSession, model.SettingCurrency, "EUR")
	require.NoError(t, err)
	require.Equal(t, "EUR", res.Data.Currency)
	require.Equal(t, "EUR", d.Currency(testSession))
}

func TestDashboard_Forget(t *testing.T) {
	dashAPI := mocks.NewDashboardAPI(t)
	d := NewDashboard(dashAPI, nil)

	dashAPI.On("Goals", mock.Anything, "token").Return(&model.GoalsResponse{Total: 1}, nil).Twice()

	d.Goals(context.Background(), testSession)
	d.Forget(testSession.ID)
	d.Goals(context.Background(), testSession)
}

// slowSummaryAPI blocks its first Summary call until released.
type slowSummaryAPI struct {
	*mocks.DashboardAPI
	started chan struct{}
	release chan struct{}

	mu    sync.Mutex
	calls int
}

func (s *slowSummaryAPI) Summary(_ context.Context, _ string) (*model.DashboardSummary, error) {
	s.mu.Lock()
	s.calls++
	call := s.calls
	s.mu.Unlock()
	if call == 1 {
		close(s.started)
		<-s.release
		return summaryWithBudget(1), nil
	}
	return summaryWithBudget(2), nil
}

func TestDashboard_StaleResponseDropped(t *testing.T) {
	slow := &slowSummaryAPI{
		DashboardAPI: mocks.NewDashboardAPI(t),
		started:      make(chan struct{}),
		release:      make(chan struct{}),
	}
	d := NewDashboard(slow, nil)

	done := make(chan Resource[model.DashboardSummary])
	go func() {
		done <- d.Summary(context.Background(), testSession)
	}()
	select {
	case <-slow.started:
	case <-time.After(time.Second):
		t.Fatal("first fetch didn't start")
	}

	fresh := d.Refresh(context.Background(), testSession)
	require.Equal(t, float64(2), fresh.Data.Budgets.Data[0].Spent)

	close(slow.release)
	<-done

	held := d.Summary(context.Background(), testSession)
	require.Equal(t, float64(2), held.Data.Budgets.Data[0].Spent)
}

func TestDashboard_Accounts(t *testing.T) {
	dashAPI := mocks.NewDashboardAPI(t)
	d := NewDashboard(dashAPI, nil)

	dashAPI.On("Accounts", mock.Anything, "token").
		Return(&model.AccountsResponse{Accounts: []model.Account{{ID: "a1"}}, TotalBalance: 250}, nil).Once()

	res := d.Accounts(context.Background(), testSession)
	require.Equal(t, float64(250), res.Data.TotalBalance)
	require.Same(t, res.Data, d.Accounts(context.Background(), testSession).Data)
}

func TestDashboard_MissingToken(t *testing.T) {
	dashAPI := mocks.NewDashboardAPI(t)
	d := NewDashboard(dashAPI, nil)

	dashAPI.On("Goals", mock.Anything, "").Return(nil, api.ErrMissingToken).Once()

	res := d.Goals(context.Background(), &model.Session{ID: "s2"})
	require.True(t, res.Unauthorized)
	require.Equal(t, "Authentication token not found", res.Err)
}

func TestDashboard_ForgetBefore(t *testing.T) {
	dashAPI := mocks.NewDashboardAPI(t)
	d := NewDashboard(dashAPI, nil)
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	old := &model.Session{ID: "old", Token: "token", User: testUser, CreatedAt: created}
	recent := &model.Session{ID: "recent", Token: "token", User: testUser, CreatedAt: created.Add(30 * time.Hour)}
	dashAPI.On("Goals", mock.Anything, "token").Return(&model.GoalsResponse{}, nil).Twice()
	d.Goals(context.Background(), old)
	d.Goals(context.Background(), recent)

	require.Equal(t, 1, d.ForgetBefore(created.Add(24*time.Hour)))
	require.NotContains(t, d.states, "old")
	require.Contains(t, d.states, "recent")
}
