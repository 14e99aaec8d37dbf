package ui

import (
	"sort"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/meal-maker/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	baseURLEntry   *widget.Entry
	apiKeyEntry    *widget.Entry
	timeoutEntry   *widget.Entry
	pairCheck      *widget.Check
	languageSelect *widget.Select

	// language display name -> code
	languageCodes map[string]string
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog builds and shows the settings dialog; onSaved runs after a successful save
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window)
	sd.onSaved = onSaved
	sd.Show()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	sd.baseURLEntry = widget.NewEntry()
	sd.baseURLEntry.SetPlaceHolder(config.DefaultAPIBaseURL)

	sd.apiKeyEntry = widget.NewEntry()
	sd.apiKeyEntry.SetPlaceHolder(config.DefaultAPIKey)

	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder(strconv.Itoa(config.MinRequestTimeout) + "-" + strconv.Itoa(config.MaxRequestTimeout))
	sd.timeoutEntry.Validator = validateTimeout

	sd.pairCheck = widget.NewCheck(text(KeyPairIngredients), nil)

	// Language selection, sorted by display name
	sd.languageCodes = make(map[string]string)
	languageOptions := []string{}
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		languageOptions = append(languageOptions, name)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(text(KeyRecipeSource)),
		widget.NewSeparator(),

		widget.NewLabel(text(KeyAPIBaseURL)+":"),
		sd.baseURLEntry,

		widget.NewLabel(text(KeyAPIKey)+":"),
		sd.apiKeyEntry,

		widget.NewLabel(text(KeyRequestTimeout)+":"),
		sd.timeoutEntry,

		widget.NewSeparator(),
		widget.NewLabel(text(KeyDisplay)),
		widget.NewSeparator(),

		sd.pairCheck,

		widget.NewLabel(text(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.baseURLEntry.SetText(sd.settings.GetAPIBaseURL())
	sd.apiKeyEntry.SetText(sd.settings.GetAPIKey())
	sd.timeoutEntry.SetText(strconv.Itoa(sd.settings.GetRequestTimeoutSeconds()))
	sd.pairCheck.SetChecked(sd.settings.GetPairIngredients())

	current := sd.settings.GetLanguage()
	for name, code := range sd.languageCodes {
		if code == current {
			sd.languageSelect.SetSelected(name)
			break
		}
	}
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	sd.apply()

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// apply writes the dialog fields into settings
func (sd *SettingsDialog) apply() {
	// Empty values reset to defaults inside the setters
	sd.settings.SetAPIBaseURL(sd.baseURLEntry.Text)
	sd.settings.SetAPIKey(sd.apiKeyEntry.Text)

	if seconds, err := strconv.Atoi(strings.TrimSpace(sd.timeoutEntry.Text)); err == nil {
		sd.settings.SetRequestTimeoutSeconds(seconds)
	}

	sd.settings.SetPairIngredients(sd.pairCheck.Checked)

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}
}

// validateTimeout accepts an empty value or a whole number of seconds
func validateTimeout(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}
	_, err := strconv.Atoi(input)
	return err
}
