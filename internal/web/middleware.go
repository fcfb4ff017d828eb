package web

import (
	"bufio"
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/chucky-1/finfine/internal/model"
	"github.com/chucky-1/finfine/internal/service"
	"github.com/chucky-1/finfine/internal/web/sessioncookie"
)

type sessionKey struct{}

func withSession(ctx context.Context, session *model.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

// SessionFrom returns the authenticated session of a request, or nil.
func SessionFrom(ctx context.Context) *model.Session {
	session, _ := ctx.Value(sessionKey{}).(*model.Session)
	return session
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Hijack lets the assistant socket upgrade through the recorder.
func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hijacker, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	r.status = http.StatusSwitchingProtocols
	return hijacker.Hijack()
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		entry := logrus.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.status,
			"duration": time.Since(start),
		})
		if rec.status >= http.StatusInternalServerError {
			entry.Error("request failed")
			return
		}
		entry.Debug("request served")
	})
}

// protect admits authenticated visitors only. Anonymous ones are sent to the login page
// with the path they asked for; while a restored session is being validated a
// self-refreshing placeholder is shown instead of the page.
func (s *Server) protect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID, hadCookie := sessioncookie.Read(r)
		session, status, err := s.deps.Auth.Check(r.Context(), sessionID)
		if err != nil {
			logrus.Errorf("web, check session error: %v", err)
			s.renderError(w, r, http.StatusInternalServerError, service.UnknownErrorText)
			return
		}

		switch status {
		case service.StatusPending:
			s.render(w, http.StatusOK, "loading", s.layout(r, nil, "", "Loading"))
		case service.StatusAuthenticated:
			next.ServeHTTP(w, r.WithContext(withSession(r.Context(), session)))
		default:
			if hadCookie {
				s.deps.Dashboard.Forget(sessionID)
				sessioncookie.Clear(w, s.opts.CookieSecure)
			}
			http.Redirect(w, r, loginPath(r), http.StatusSeeOther)
		}
	})
}

// guest keeps signed-in visitors away from the login and register pages.
func (s *Server) guest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sessionID, ok := sessioncookie.Read(r); ok {
			_, status, err := s.deps.Auth.Check(r.Context(), sessionID)
			if err == nil && status == service.StatusAuthenticated {
				http.Redirect(w, r, "/", http.StatusSeeOther)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

// expired ends a session the API no longer accepts.
func (s *Server) expired(w http.ResponseWriter, r *http.Request) {
	session := SessionFrom(r.Context())
	if session != nil {
		if err := s.deps.Auth.Logout(r.Context(), session.ID); err != nil {
			logrus.Error(err)
		}
		s.deps.Dashboard.Forget(session.ID)
	}
	sessioncookie.Clear(w, s.opts.CookieSecure)
	http.Redirect(w, r, loginPath(r), http.StatusSeeOther)
}

func loginPath(r *http.Request) string {
	next := r.URL.RequestURI()
	if r.Method != http.MethodGet || next == "/" {
		return "/login"
	}
	return "/login?next=" + url.QueryEscape(next)
}

// safeNext keeps redirects after login on this site.
func safeNext(next string) string {
	if next == "" || next[0] != '/' || len(next) > 1 && (next[1] == '/' || next[1] == '\\') {
		return "/"
	}
	u, err := url.Parse(next)
	if err != nil || u.IsAbs() || u.Host != "" {
		return "/"
	}
	return next
}
