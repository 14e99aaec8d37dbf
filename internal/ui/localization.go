package ui

import (
	"fyne.io/fyne/v2/lang"
	"golang.org/x/text/language"

	"github.com/ytget/meal-maker/internal/session"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeySearch            = "search"
	KeyRandomize         = "randomize"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyEnterMeal         = "enter_meal"
	KeyLoading           = "loading"
	KeyAPIBaseURL        = "api_base_url"
	KeyAPIKey            = "api_key"
	KeyRequestTimeout    = "request_timeout"
	KeyPairIngredients   = "pair_ingredients"
	KeyRecipeSource      = "recipe_source"
	KeyDisplay           = "display"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeySettingsSaved     = "settings_saved"
	KeyPleaseEnterTerm   = "please_enter_term"
	KeyNoMealFound       = "no_meal_found"
	KeyNoRandomMealFound = "no_random_meal_found"
	KeyFetchFailed       = "fetch_failed"
	KeyRecipe            = "recipe"
	KeyOpenVideo         = "open_video"
)

// supportedLanguages lists the translated languages; the first one is the fallback
var supportedLanguages = []language.Tag{
	language.English,
	language.Russian,
	language.Portuguese,
}

var languageMatcher = language.NewMatcher(supportedLanguages)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: LanguageEnglish,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language; "system" follows the OS locale
func (l *Localization) SetLanguage(code string) {
	if code == LanguageSystem {
		code = resolveLanguage(string(lang.SystemLocale()))
	}

	if _, exists := l.texts[code]; exists {
		l.currentLanguage = code
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts[LanguageEnglish]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		LanguageEnglish:    "English",
		LanguageRussian:    "Русский",
		LanguagePortuguese: "Português",
	}
}

// Messages returns the session messages in the current language
func (l *Localization) Messages() session.Messages {
	return session.Messages{
		EmptyQuery:     l.GetText(KeyPleaseEnterTerm),
		NotFound:       l.GetText(KeyNoMealFound),
		RandomNotFound: l.GetText(KeyNoRandomMealFound),
		FetchFailed:    l.GetText(KeyFetchFailed),
	}
}

// resolveLanguage maps a BCP 47 locale such as "pt-BR" to a supported language code
func resolveLanguage(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return LanguageEnglish
	}

	_, index, confidence := languageMatcher.Match(tag)
	if confidence == language.No {
		return LanguageEnglish
	}

	base, _ := supportedLanguages[index].Base()
	return base.String()
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts[LanguageEnglish] = map[string]string{
		KeyAppTitle:          "Meal Maker",
		KeySearch:            "Search",
		KeyRandomize:         "Randomize",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyEnterMeal:         "Enter a meal name (e.g. Arrabiata)",
		KeyLoading:           "Loading recipe...",
		KeyAPIBaseURL:        "API Base URL",
		KeyAPIKey:            "API Key",
		KeyRequestTimeout:    "Request Timeout (seconds)",
		KeyPairIngredients:   "Show each ingredient with its measure",
		KeyRecipeSource:      "Recipe Source",
		KeyDisplay:           "Display",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyPleaseEnterTerm:   "Please enter a search term.",
		KeyNoMealFound:       "No meal found.",
		KeyNoRandomMealFound: "No random meal found.",
		KeyFetchFailed:       "Could not reach the recipe service.",
		KeyRecipe:            "Recipe",
		KeyOpenVideo:         "Open Video",
	}

	// Russian texts
	l.texts[LanguageRussian] = map[string]string{
		KeyAppTitle:          "Meal Maker",
		KeySearch:            "Найти",
		KeyRandomize:         "Случайное",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyEnterMeal:         "Введите название блюда (например, Arrabiata)",
		KeyLoading:           "Загрузка рецепта...",
		KeyAPIBaseURL:        "Базовый URL API",
		KeyAPIKey:            "Ключ API",
		KeyRequestTimeout:    "Тайм-аут запроса (секунды)",
		KeyPairIngredients:   "Показывать ингредиент вместе с мерой",
		KeyRecipeSource:      "Источник рецептов",
		KeyDisplay:           "Отображение",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyPleaseEnterTerm:   "Пожалуйста, введите запрос.",
		KeyNoMealFound:       "Блюдо не найдено.",
		KeyNoRandomMealFound: "Случайное блюдо не найдено.",
		KeyFetchFailed:       "Не удалось связаться с сервисом рецептов.",
		KeyRecipe:            "Рецепт",
		KeyOpenVideo:         "Открыть видео",
	}

	// Portuguese texts
	l.texts[LanguagePortuguese] = map[string]string{
		KeyAppTitle:          "Meal Maker",
		KeySearch:            "Buscar",
		KeyRandomize:         "Aleatório",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyEnterMeal:         "Digite o nome de um prato (ex.: Arrabiata)",
		KeyLoading:           "Carregando receita...",
		KeyAPIBaseURL:        "URL Base da API",
		KeyAPIKey:            "Chave da API",
		KeyRequestTimeout:    "Tempo Limite da Requisição (segundos)",
		KeyPairIngredients:   "Mostrar cada ingrediente com sua medida",
		KeyRecipeSource:      "Fonte de Receitas",
		KeyDisplay:           "Exibição",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyPleaseEnterTerm:   "Por favor, digite um termo de busca.",
		KeyNoMealFound:       "Nenhuma refeição encontrada.",
		KeyNoRandomMealFound: "Nenhuma refeição aleatória encontrada.",
		KeyFetchFailed:       "Não foi possível acessar o serviço de receitas.",
		KeyRecipe:            "Receita",
		KeyOpenVideo:         "Abrir Vídeo",
	}
}
