package web

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/chucky-1/finfine/internal/api"
	"github.com/chucky-1/finfine/internal/model"
	"github.com/chucky-1/finfine/internal/service"
)

type option struct {
	Value string
	Label string
}

var settingOptions = map[string][]option{
	model.SettingTheme: {{"light", "Light"}, {"dark", "Dark"}, {"system", "System"}},
	model.SettingCurrency: {
		{"USD", "US Dollar ($)"}, {"EUR", "Euro (€)"}, {"GBP", "British Pound (£)"}, {"INR", "Indian Rupee (₹)"},
		{"JPY", "Japanese Yen (¥)"}, {"CAD", "Canadian Dollar (C$)"}, {"AUD", "Australian Dollar (A$)"},
	},
	model.SettingLanguage: {{"en", "English"}, {"es", "Español"}, {"fr", "Français"}, {"de", "Deutsch"}, {"hi", "हिन्दी"}},
}

var settingSections = []string{model.SettingTheme, model.SettingCurrency, model.SettingLanguage}

type settingsPage struct {
	layout
	Settings  service.Resource[model.Settings]
	Themes    []option
	Languages []option
	Codes     []option
	Error     string
	// Telegram linking, shown only when alerts are enabled.
	BotName  string
	LinkCode string
	Linked   bool
}

func (s *Server) settingsPage(w http.ResponseWriter, r *http.Request) {
	s.renderSettings(w, r, "")
}

func (s *Server) renderSettings(w http.ResponseWriter, r *http.Request, errText string) {
	session := SessionFrom(r.Context())
	settings := s.deps.Dashboard.Settings(r.Context(), session)
	if settings.Unauthorized {
		s.expired(w, r)
		return
	}
	page := settingsPage{
		layout:    s.layout(r, session, "/settings", "Settings"),
		Settings:  settings,
		Themes:    settingOptions[model.SettingTheme],
		Languages: settingOptions[model.SettingLanguage],
		Codes:     settingOptions[model.SettingCurrency],
		Error:     errText,
	}
	if s.deps.Chats != nil {
		page.BotName = s.opts.BotName
		page.Linked = s.deps.Chats.Linked(r.Context(), session.User.ID)
		if !page.Linked {
			page.LinkCode = s.deps.Chats.LinkCode(session.User.ID)
		}
	}
	s.render(w, http.StatusOK, "settings", page)
}

// updateSettings writes every section whose submitted value differs from the held one.
func (s *Server) updateSettings(w http.ResponseWriter, r *http.Request) {
	session := SessionFrom(r.Context())
	if err := r.ParseForm(); err != nil {
		s.renderError(w, r, http.StatusBadRequest, "The form could not be read.")
		return
	}
	current := s.deps.Dashboard.Settings(r.Context(), session)
	if current.Unauthorized {
		s.expired(w, r)
		return
	}

	for _, section := range settingSections {
		value := r.PostForm.Get(section)
		if value == "" || !allowed(section, value) || current.Data != nil && held(current.Data, section) == value {
			continue
		}
		res, err := s.deps.Dashboard.UpdateSetting(r.Context(), session, section, value)
		if err != nil {
			logrus.Warnf("web, update %s setting error: %v", section, err)
			if api.IsUnauthorized(err) {
				s.expired(w, r)
				return
			}
			s.renderSettings(w, r, service.ErrorText(err))
			return
		}
		current = res
	}
	http.Redirect(w, r, "/settings?done=settings", http.StatusSeeOther)
}

func allowed(section, value string) bool {
	for _, o := range settingOptions[section] {
		if o.Value == value {
			return true
		}
	}
	return false
}

func held(settings *model.Settings, section string) string {
	switch section {
	case model.SettingTheme:
		return settings.Theme
	case model.SettingCurrency:
		return settings.Currency
	case model.SettingLanguage:
		return settings.Language
	}
	return ""
}
