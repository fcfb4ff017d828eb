package model

type Settings struct {
	ID            string          `json:"id"`
	Theme         string          `json:"theme"`
	Currency      string          `json:"currency"`
	Language      string          `json:"language"`
	Notifications map[string]bool `json:"notifications"`
	Privacy       map[string]bool `json:"privacy"`
	Dashboard     map[string]bool `json:"dashboard"`
}

// Setting sections that accept a single string value.
const (
	SettingTheme    = "theme"
	SettingCurrency = "currency"
	SettingLanguage = "language"
)
