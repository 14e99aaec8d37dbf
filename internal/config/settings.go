package config

import (
	"strings"
	"time"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyAPIBaseURL      = "api_base_url"
	KeyAPIKey          = "api_key"
	KeyRequestTimeout  = "request_timeout_sec"
	KeyPairIngredients = "pair_ingredients"
	KeyLanguage        = "app_language"
	KeyLastSearch      = "last_search_term"
)

// Default values
const (
	DefaultAPIBaseURL      = "https://www.themealdb.com/api/json/v1"
	DefaultAPIKey          = "1"
	DefaultRequestTimeout  = 15
	DefaultPairIngredients = false
	DefaultLanguage        = "system"
)

// Request timeout bounds in seconds
const (
	MinRequestTimeout = 1
	MaxRequestTimeout = 120
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetAPIBaseURL returns the recipe API base URL
func (s *Settings) GetAPIBaseURL() string {
	base := s.app.Preferences().String(KeyAPIBaseURL)
	if base == "" {
		s.SetAPIBaseURL(DefaultAPIBaseURL)
		return DefaultAPIBaseURL
	}
	return base
}

// SetAPIBaseURL sets the recipe API base URL
func (s *Settings) SetAPIBaseURL(base string) {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if base == "" {
		base = DefaultAPIBaseURL
	}
	s.app.Preferences().SetString(KeyAPIBaseURL, base)
}

// GetAPIKey returns the recipe API key
func (s *Settings) GetAPIKey() string {
	key := s.app.Preferences().String(KeyAPIKey)
	if key == "" {
		s.SetAPIKey(DefaultAPIKey)
		return DefaultAPIKey
	}
	return key
}

// SetAPIKey sets the recipe API key
func (s *Settings) SetAPIKey(key string) {
	key = strings.TrimSpace(key)
	if key == "" {
		key = DefaultAPIKey
	}
	s.app.Preferences().SetString(KeyAPIKey, key)
}

// GetRequestTimeoutSeconds returns the network timeout in seconds
func (s *Settings) GetRequestTimeoutSeconds() int {
	value := s.app.Preferences().Int(KeyRequestTimeout)
	if value <= 0 {
		s.SetRequestTimeoutSeconds(DefaultRequestTimeout)
		return DefaultRequestTimeout
	}
	return value
}

// SetRequestTimeoutSeconds sets the network timeout in seconds
func (s *Settings) SetRequestTimeoutSeconds(seconds int) {
	if seconds < MinRequestTimeout {
		seconds = MinRequestTimeout
	}
	if seconds > MaxRequestTimeout {
		seconds = MaxRequestTimeout
	}
	s.app.Preferences().SetInt(KeyRequestTimeout, seconds)
}

// GetRequestTimeout returns the network timeout as a duration
func (s *Settings) GetRequestTimeout() time.Duration {
	return time.Duration(s.GetRequestTimeoutSeconds()) * time.Second
}

// GetPairIngredients returns whether ingredients are shown paired with their measures
func (s *Settings) GetPairIngredients() bool {
	return s.app.Preferences().BoolWithFallback(KeyPairIngredients, DefaultPairIngredients)
}

// SetPairIngredients sets whether ingredients are shown paired with their measures
func (s *Settings) SetPairIngredients(pair bool) {
	s.app.Preferences().SetBool(KeyPairIngredients, pair)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLastSearch returns the last submitted search term
func (s *Settings) GetLastSearch() string {
	return s.app.Preferences().String(KeyLastSearch)
}

// SetLastSearch remembers the last submitted search term
func (s *Settings) SetLastSearch(term string) {
	s.app.Preferences().SetString(KeyLastSearch, strings.TrimSpace(term))
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// ApplyEnv writes non-empty environment overrides into preferences
func (s *Settings) ApplyEnv(env Env) {
	if env.APIBaseURL != "" {
		s.SetAPIBaseURL(env.APIBaseURL)
	}
	if env.APIKey != "" {
		s.SetAPIKey(env.APIKey)
	}
	if env.RequestTimeoutSeconds > 0 {
		s.SetRequestTimeoutSeconds(env.RequestTimeoutSeconds)
	}
}
