package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"math"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/chucky-1/finfine/internal/model"
	"github.com/chucky-1/finfine/internal/money"
	"github.com/chucky-1/finfine/internal/planner"
)

//go:embed templates/*.html
var templateFS embed.FS

const layoutFile = "templates/layout.html"

type renderer struct {
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	"money":   money.Format,
	"number":  money.Number,
	"percent": func(pct float64) string { return fmt.Sprintf("%.0f%%", planner.Round(pct)) },
	"bar": func(pct float64) template.CSS {
		return template.CSS(fmt.Sprintf("width: %.0f%%", planner.Clamp(planner.Round(pct))))
	},
	"initial": func(name string) string {
		name = strings.TrimSpace(name)
		if name == "" {
			return "?"
		}
		return strings.ToUpper(string([]rune(name)[:1]))
	},
	"abs":   math.Abs,
	"value": func(x float64) string { return fmt.Sprintf("%.0f", planner.Round(x)) },
}

func newRenderer() (*renderer, error) {
	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	r := &renderer{pages: make(map[string]*template.Template)}
	for _, file := range files {
		if file == layoutFile {
			continue
		}
		name := strings.TrimSuffix(strings.TrimPrefix(file, "templates/"), ".html")
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS, layoutFile, file)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

var flashes = map[string]string{
	"saved":    "Your plan has been saved.",
	"settings": "Your settings have been updated.",
}

type navItem struct {
	Path   string
	Label  string
	Active bool
}

var navigation = []navItem{
	{Path: "/", Label: "Dashboard"},
	{Path: "/budget", Label: "Budget"},
	{Path: "/goals", Label: "Goals"},
	{Path: "/safety", Label: "Emergency Fund"},
	{Path: "/children", Label: "Children's Fund"},
	{Path: "/marriage", Label: "Marriage Fund"},
	{Path: "/settings", Label: "Settings"},
	{Path: "/help", Label: "Help"},
}

// layout carries what the shell around every page needs.
type layout struct {
	Title         string
	User          *model.User
	Nav           []navItem
	Notifications []model.Notification
	Currency      string
	Flash         string
}

func (s *Server) layout(r *http.Request, session *model.Session, active, title string) layout {
	l := layout{Title: title, Currency: money.DefaultCurrency, Flash: flashes[r.URL.Query().Get("done")]}
	if session == nil {
		return l
	}
	user := session.User
	l.User = &user
	l.Notifications = s.deps.Dashboard.Notifications(session)
	if c := s.deps.Dashboard.Currency(session); c != "" {
		l.Currency = c
	}
	l.Nav = make([]navItem, len(navigation))
	for i, item := range navigation {
		item.Active = item.Path == active
		l.Nav[i] = item
	}
	return l
}

func (s *Server) render(w http.ResponseWriter, status int, page string, data any) {
	t, ok := s.pages.pages[page]
	if !ok {
		logrus.Errorf("web, unknown page %s", page)
		http.Error(w, service500, http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		logrus.Errorf("web, render %s error: %v", page, err)
		http.Error(w, service500, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logrus.Debugf("web, write %s error: %v", page, err)
	}
}

const service500 = "Internal Server Error"

type errorPage struct {
	layout
	Status  int
	Message string
}

func (s *Server) renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	session := SessionFrom(r.Context())
	s.render(w, status, "error", errorPage{
		layout:  s.layout(r, session, "", http.StatusText(status)),
		Status:  status,
		Message: message,
	})
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	s.renderError(w, r, http.StatusNotFound, "The page you're looking for doesn't exist.")
}
