package ui

import (
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/meal-maker/internal/config"
	"github.com/ytget/meal-maker/internal/mealdb"
	"github.com/ytget/meal-maker/internal/render"
	"github.com/ytget/meal-maker/internal/session"
	"github.com/ytget/meal-maker/internal/thumbnail"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	titleLabel   *widget.Label
	searchEntry  *widget.Entry
	searchBtn    *widget.Button
	randomBtn    *widget.Button
	image        *canvas.Image
	detail       *widget.RichText
	detailScroll *container.Scroll
	session      *session.Session
	settings     *config.Settings
	localization *Localization

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite
	cancelBtn             *widget.Button
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, settings *config.Settings, sess *session.Session) *RootUI {
	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		session:      sess,
		settings:     settings,
		localization: localization,
	}

	log.Printf("RootUI initialized with language %s", localization.GetCurrentLanguage())

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	sess.SetMessages(localization.Messages())
	sess.SetUpdateCallback(ui.onStateUpdate)

	ui.setupUI()
	return ui
}

// NewSession creates a session configured from settings
func NewSession(settings *config.Settings) *session.Session {
	sess := session.NewSession(newSource(settings), newImages(settings))
	sess.SetOptions(renderOptions(settings))
	return sess
}

// ConfigureSession points sess at the recipe service and formatting described by settings
func ConfigureSession(sess *session.Session, settings *config.Settings) {
	sess.SetSource(newSource(settings))
	sess.SetImages(newImages(settings))
	sess.SetOptions(renderOptions(settings))
}

func newSource(settings *config.Settings) mealdb.Source {
	return mealdb.NewClient(settings.GetAPIBaseURL(), settings.GetAPIKey(), settings.GetRequestTimeout())
}

func newImages(settings *config.Settings) thumbnail.Loader {
	return thumbnail.NewService(settings.GetRequestTimeout())
}

func renderOptions(settings *config.Settings) render.Options {
	return render.Options{PairIngredients: settings.GetPairIngredients()}
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.titleLabel = widget.NewLabelWithStyle(ui.localization.GetText(KeyAppTitle), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	ui.titleLabel.SizeName = theme.SizeNameHeadingText

	ui.image = newImageRegion()

	// Search entry; Enter submits like the Search button
	ui.searchEntry = widget.NewEntry()
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterMeal))
	ui.searchEntry.SetText(ui.settings.GetLastSearch())
	ui.searchEntry.OnSubmitted = func(string) {
		ui.onSearchClick()
	}

	ui.searchBtn = widget.NewButton(ui.buttonText(IconSearch, KeySearch), ui.onSearchClick)
	ui.searchBtn.Importance = widget.HighImportance
	ui.randomBtn = widget.NewButton(ui.buttonText(IconRandom, KeyRandomize), ui.onRandomClick)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	searchRow := container.NewBorder(nil, nil, settingsBtn, container.NewHBox(ui.searchBtn, ui.randomBtn), ui.searchEntry)

	// Create notification panel under the search row (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.cancelBtn = widget.NewButton(ui.localization.GetText(KeyCancel), ui.onCancelClick)
	ui.cancelBtn.Importance = widget.LowImportance
	ui.notificationContainer = container.NewHBox(ui.notificationSpinner, container.NewPadded(ui.notificationLabel), ui.cancelBtn)
	ui.notificationContainer.Hide()

	top := container.NewVBox(
		ui.titleLabel,
		container.NewCenter(ui.image),
		searchRow,
		ui.notificationContainer,
	)

	// Scrollable detail region
	ui.detail = widget.NewRichText()
	ui.detail.Wrapping = fyne.TextWrapWord
	ui.detailScroll = container.NewVScroll(ui.detail)
	ui.detailScroll.SetMinSize(fyne.NewSize(DetailMinWidth, DetailMinHeight))

	content := container.NewBorder(
		top,             // top
		nil,             // bottom
		nil,             // left
		nil,             // right
		ui.detailScroll, // center
	)

	ui.window.SetContent(content)
	ui.window.Canvas().SetOnTypedKey(ui.onTypedKey)
	ui.window.Canvas().Focus(ui.searchEntry)

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(IconLanguage + " " + ui.localization.GetText(KeyLanguage))

	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	recipeMenu := fyne.NewMenu(ui.localization.GetText(KeyRecipe),
		fyne.NewMenuItem(ui.localization.GetText(KeyRandomize), ui.onRandomClick),
		fyne.NewMenuItem(ui.localization.GetText(KeyOpenVideo), ui.onOpenVideo),
		fyne.NewMenuItem(ui.localization.GetText(KeyCancel), ui.onCancelClick),
	)

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		recipeMenu,
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.settings.SetLanguage(langCode)
	ui.applyLanguage(langCode)
}

// applyLanguage switches the UI and session messages to langCode
func (ui *RootUI) applyLanguage(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.session.SetMessages(ui.localization.Messages())

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.titleLabel.SetText(ui.localization.GetText(KeyAppTitle))

	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterMeal))
	ui.searchBtn.SetText(ui.buttonText(IconSearch, KeySearch))
	ui.randomBtn.SetText(ui.buttonText(IconRandom, KeyRandomize))
	ui.cancelBtn.SetText(ui.localization.GetText(KeyCancel))

	if ui.notificationContainer.Visible() && ui.notificationSpinner.Visible() {
		ui.notificationLabel.SetText(ui.localization.GetText(KeyLoading))
	}
}

// onSearchClick handles the Search button and Enter in the search entry
func (ui *RootUI) onSearchClick() {
	term := strings.TrimSpace(ui.searchEntry.Text)
	if term != "" {
		ui.settings.SetLastSearch(term)
	}

	id := ui.session.Search(term)
	log.Printf("Search submitted: term=%q id=%s", term, id)
}

// onRandomClick handles the Randomize button
func (ui *RootUI) onRandomClick() {
	id := ui.session.Randomize()
	log.Printf("Randomize submitted: id=%s", id)
}

// onCancelClick abandons the fetch in progress
func (ui *RootUI) onCancelClick() {
	ui.session.Cancel()
}

// onOpenVideo opens the first video link in the displayed document
func (ui *RootUI) onOpenVideo() {
	if !ui.session.ActivateAt(0) {
		log.Printf("No video link in the displayed document")
	}
}

// onTypedKey handles keys typed while no widget has focus
func (ui *RootUI) onTypedKey(ev *fyne.KeyEvent) {
	if ev.Name == fyne.KeyEscape {
		ui.onCancelClick()
	}
}

// buttonText prefixes a localized label with an icon
func (ui *RootUI) buttonText(icon, key string) string {
	return icon + " " + ui.localization.GetText(key)
}

// onLinkTapped opens the link with the given index from the displayed document
func (ui *RootUI) onLinkTapped(index int) {
	if !ui.session.ActivateLink(index) {
		log.Printf("Link %d is no longer displayed", index)
	}
}

// onStateUpdate handles state updates from the session
func (ui *RootUI) onStateUpdate(st session.State) {
	log.Printf("State update received: id=%s status=%s", st.RequestID, st.Status)

	// Widgets must be touched on the UI thread
	fyne.Do(func() {
		ui.applyState(st)
	})
}

// applyState renders st; must run on the UI thread
func (ui *RootUI) applyState(st session.State) {
	if st.Status.IsActive() {
		ui.setNotification(ui.localization.GetText(KeyLoading), true)
		return
	}
	ui.clearNotification()

	if !st.Status.IsFinished() {
		return
	}

	ui.detail.Segments = segmentsFor(st.Document, ui.onLinkTapped)
	ui.detail.Refresh()
	ui.detailScroll.ScrollToTop()

	setThumbnail(ui.image, st.Thumbnail)
}

// setNotification displays a message in the notification panel under the search row.
// When spinning is true, a spinner is shown to indicate background activity.
func (ui *RootUI) setNotification(message string, spinning bool) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	ui.notificationLabel.SetText(message)
	if spinning {
		ui.notificationSpinner.Show()
	} else {
		ui.notificationSpinner.Hide()
	}
	ui.notificationContainer.Show()
	ui.notificationContainer.Refresh()
}

// clearNotification hides the notification panel.
func (ui *RootUI) clearNotification() {
	if ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	ui.notificationSpinner.Hide()
	ui.notificationContainer.Hide()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.onSettingsSaved)
}

// onSettingsSaved applies saved settings to the session and UI
func (ui *RootUI) onSettingsSaved() {
	ConfigureSession(ui.session, ui.settings)

	if lang := ui.settings.GetLanguage(); lang != ui.localization.GetCurrentLanguage() {
		ui.applyLanguage(lang)
	}
	log.Printf("Settings applied: base=%s timeout=%s pair=%t",
		ui.settings.GetAPIBaseURL(), ui.settings.GetRequestTimeout(), ui.settings.GetPairIngredients())
}
