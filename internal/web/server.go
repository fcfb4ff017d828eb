// Package web serves the dashboard pages.
package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/chucky-1/finfine/internal/assistant"
	"github.com/chucky-1/finfine/internal/model"
	"github.com/chucky-1/finfine/internal/service"
)

const (
	shutdownTimeout   = 5 * time.Second
	readHeaderTimeout = 10 * time.Second
)

type Authenticator interface {
	Login(ctx context.Context, email, password string) (*model.Session, error)
	Register(ctx context.Context, name, email, password string) (*model.Session, error)
	Logout(ctx context.Context, sessionID string) error
	Check(ctx context.Context, sessionID string) (*model.Session, service.Status, error)
}

type Dashboard interface {
	Summary(ctx context.Context, session *model.Session) service.Resource[model.DashboardSummary]
	Refresh(ctx context.Context, session *model.Session) service.Resource[model.DashboardSummary]
	Budgets(ctx context.Context, session *model.Session) service.Resource[model.BudgetsResponse]
	Goals(ctx context.Context, session *model.Session) service.Resource[model.GoalsResponse]
	Transactions(ctx context.Context, session *model.Session, params model.TransactionsParams) service.Resource[model.TransactionsResponse]
	Settings(ctx context.Context, session *model.Session) service.Resource[model.Settings]
	UpdateSetting(ctx context.Context, session *model.Session, section, value string) (service.Resource[model.Settings], error)
	Notifications(session *model.Session) []model.Notification
	Currency(session *model.Session) string
	Forget(sessionID string)
}

type PlanStore interface {
	Save(ctx context.Context, session *model.Session, kind string, fields map[string]float64) error
	Load(ctx context.Context, session *model.Session, kind string) (map[string]float64, bool, error)
}

// ChatLinker is nil when Telegram alerts are disabled.
type ChatLinker interface {
	LinkCode(userID string) string
	Linked(ctx context.Context, userID string) bool
}

type Assistant interface {
	Greet() assistant.Message
	Reply(ctx context.Context, text string) (assistant.Message, bool, error)
}

type Options struct {
	Addr         string
	CookieSecure bool
	// BotName is the Telegram bot users send their link code to.
	BotName string
}

type Deps struct {
	Auth      Authenticator
	Dashboard Dashboard
	Plans     PlanStore
	Chats     ChatLinker
	Assistant Assistant
}

type Server struct {
	opts     Options
	deps     Deps
	pages    *renderer
	upgrader websocket.Upgrader
	now      func() time.Time

	httpServer *http.Server
}

func NewServer(opts Options, deps Deps) (*Server, error) {
	pages, err := newRenderer()
	if err != nil {
		return nil, fmt.Errorf("web, parse templates error: %w", err)
	}
	s := &Server{
		opts:  opts,
		deps:  deps,
		pages: pages,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		now: time.Now,
	}
	s.httpServer = &http.Server{
		Addr:              opts.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}
	return s, nil
}

// Handler returns the routed handler wrapped with request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /login", s.guest(http.HandlerFunc(s.loginPage)))
	mux.Handle("POST /login", s.guest(http.HandlerFunc(s.login)))
	mux.Handle("GET /register", s.guest(http.HandlerFunc(s.registerPage)))
	mux.Handle("POST /register", s.guest(http.HandlerFunc(s.register)))
	mux.HandleFunc("POST /logout", s.logout)

	mux.Handle("GET /{$}", s.protect(http.HandlerFunc(s.dashboardPage)))
	mux.Handle("POST /refresh", s.protect(http.HandlerFunc(s.refresh)))
	mux.Handle("GET /budget", s.protect(http.HandlerFunc(s.budgetPage)))
	mux.Handle("GET /goals", s.protect(http.HandlerFunc(s.goalsPage)))
	mux.Handle("GET /safety", s.protect(http.HandlerFunc(s.safetyPage)))
	mux.Handle("GET /children", s.protect(http.HandlerFunc(s.childrenPage)))
	mux.Handle("GET /marriage", s.protect(http.HandlerFunc(s.marriagePage)))
	mux.Handle("POST /{kind}/save", s.protect(http.HandlerFunc(s.savePlan)))
	mux.Handle("GET /settings", s.protect(http.HandlerFunc(s.settingsPage)))
	mux.Handle("POST /settings", s.protect(http.HandlerFunc(s.updateSettings)))
	mux.Handle("GET /help", s.protect(http.HandlerFunc(s.helpPage)))
	mux.Handle("GET /assistant/ws", s.protect(http.HandlerFunc(s.assistantSocket)))

	mux.HandleFunc("/", s.notFound)

	return logRequests(mux)
}

// ListenAndServe runs the HTTP server until ctx ends, then drains in-flight requests.
func (s *Server) ListenAndServe(ctx context.Context) error {
	serveErr := make(chan error, 1)
	logrus.Infof("web server listening on %s", s.opts.Addr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		logrus.Info("web server stopped")
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
