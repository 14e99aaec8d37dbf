package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconSearch   = "🔍"
	IconRandom   = "🎲"
	IconLanguage = "🌐"
)

// Layout sizing
const (
	ImageRegionWidth  float32 = 200
	ImageRegionHeight float32 = 200

	DetailMinWidth  float32 = 480
	DetailMinHeight float32 = 420

	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 380
)

// Language codes
const (
	LanguageSystem     = "system"
	LanguageEnglish    = "en"
	LanguageRussian    = "ru"
	LanguagePortuguese = "pt"
)
