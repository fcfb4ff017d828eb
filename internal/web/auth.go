package web

import (
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/chucky-1/finfine/internal/model"
	"github.com/chucky-1/finfine/internal/service"
	"github.com/chucky-1/finfine/internal/web/sessioncookie"
)

type authPage struct {
	layout
	Next  string
	Name  string
	Email string
	Error string
}

func (s *Server) loginPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "login", authPage{
		layout: s.layout(r, nil, "", "Sign in"),
		Next:   safeNext(r.URL.Query().Get("next")),
	})
}

func (s *Server) registerPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "register", authPage{
		layout: s.layout(r, nil, "", "Create account"),
		Next:   safeNext(r.URL.Query().Get("next")),
	})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	page := authPage{
		layout: s.layout(r, nil, "", "Sign in"),
		Next:   safeNext(r.PostFormValue("next")),
		Email:  strings.TrimSpace(r.PostFormValue("email")),
	}
	session, err := s.deps.Auth.Login(r.Context(), page.Email, r.PostFormValue("password"))
	if err != nil {
		logrus.Infof("web, login failed for %s: %v", page.Email, err)
		page.Error = service.ErrorText(err)
		s.render(w, http.StatusOK, "login", page)
		return
	}
	s.signIn(w, r, session, page.Next)
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	page := authPage{
		layout: s.layout(r, nil, "", "Create account"),
		Next:   safeNext(r.PostFormValue("next")),
		Name:   strings.TrimSpace(r.PostFormValue("name")),
		Email:  strings.TrimSpace(r.PostFormValue("email")),
	}
	if r.PostFormValue("password") != r.PostFormValue("confirm") {
		page.Error = "Passwords do not match"
		s.render(w, http.StatusOK, "register", page)
		return
	}
	session, err := s.deps.Auth.Register(r.Context(), page.Name, page.Email, r.PostFormValue("password"))
	if err != nil {
		logrus.Infof("web, register failed for %s: %v", page.Email, err)
		page.Error = service.ErrorText(err)
		s.render(w, http.StatusOK, "register", page)
		return
	}
	s.signIn(w, r, session, page.Next)
}

func (s *Server) signIn(w http.ResponseWriter, r *http.Request, session *model.Session, next string) {
	sessioncookie.Write(w, session.ID, s.opts.CookieSecure)
	http.Redirect(w, r, next, http.StatusSeeOther)
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	if sessionID, ok := sessioncookie.Read(r); ok {
		if err := s.deps.Auth.Logout(r.Context(), sessionID); err != nil {
			logrus.Error(err)
		}
		s.deps.Dashboard.Forget(sessionID)
	}
	sessioncookie.Clear(w, s.opts.CookieSecure)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
