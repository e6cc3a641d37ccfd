package ui

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeySettings           = "settings"
	KeyLauncher           = "launcher"
	KeyLanguage           = "language"
	KeyHome               = "home"
	KeySwipeHint          = "swipe_hint"
	KeySearchPlaceholder  = "search_placeholder"
	KeySearchStore        = "search_store"
	KeyStripSection       = "strip_section"
	KeyGestureSection     = "gesture_section"
	KeyStripWidth         = "strip_width"
	KeyStripPadding       = "strip_padding"
	KeyTouchMargin        = "touch_margin"
	KeyFineScrollDistance = "fine_scroll_distance"
	KeyFineModeThreshold  = "fine_mode_threshold"
	KeyHighlightScale     = "highlight_scale"
	KeyBulgeMargin        = "bulge_margin"
	KeyBulgeRadius        = "bulge_radius"
	KeySelectMode         = "select_mode"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeyReset              = "reset"
	KeyImportProfile      = "import_profile"
	KeyExportProfile      = "export_profile"
	KeySettingsSaved      = "settings_saved"
	KeyProfileImported    = "profile_imported"
	KeyProfileExported    = "profile_exported"
	KeyErrorLaunching     = "error_launching"
)

var supportedLanguages = []language.Tag{
	language.English,
	language.Russian,
	language.Portuguese,
}

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = systemLanguage(os.Getenv("LC_ALL"), os.Getenv("LANG"))
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// systemLanguage picks the closest supported language for the POSIX locale
// values, falling back to English
func systemLanguage(locales ...string) string {
	matcher := language.NewMatcher(supportedLanguages)
	for _, locale := range locales {
		if locale == "" || locale == "C" || locale == "POSIX" {
			continue
		}
		// en_US.UTF-8 -> en-US
		tag := locale
		if i := strings.IndexAny(tag, ".@"); i >= 0 {
			tag = tag[:i]
		}
		tag = strings.ReplaceAll(tag, "_", "-")
		_, index, confidence := matcher.Match(language.Make(tag))
		if confidence != language.No {
			base, _ := supportedLanguages[index].Base()
			return base.String()
		}
	}
	return "en"
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
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
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "Niagara Launcher",
		KeySettings:           "Settings",
		KeyLauncher:           "Launcher",
		KeyLanguage:           "Language",
		KeyHome:               "Home",
		KeySwipeHint:          "Swipe up for apps",
		KeySearchPlaceholder:  "Search apps",
		KeySearchStore:        "Search store for \"%s\"",
		KeyStripSection:       "Alphabet Strip",
		KeyGestureSection:     "Gesture",
		KeyStripWidth:         "Strip width",
		KeyStripPadding:       "Strip vertical padding",
		KeyTouchMargin:        "Touch margin",
		KeyFineScrollDistance: "Fine scroll pull distance",
		KeyFineModeThreshold:  "Fine mode threshold",
		KeyHighlightScale:     "Highlight scale",
		KeyBulgeMargin:        "Bulge margin",
		KeyBulgeRadius:        "Bulge radius",
		KeySelectMode:         "On letter select",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeyReset:              "Reset to defaults",
		KeyImportProfile:      "Import profile",
		KeyExportProfile:      "Export profile",
		KeySettingsSaved:      "Settings saved successfully!",
		KeyProfileImported:    "Profile imported",
		KeyProfileExported:    "Profile exported",
		KeyErrorLaunching:     "Error launching app",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "Niagara Лаунчер",
		KeySettings:           "Настройки",
		KeyLauncher:           "Лаунчер",
		KeyLanguage:           "Язык",
		KeyHome:               "Домой",
		KeySwipeHint:          "Проведите вверх для списка приложений",
		KeySearchPlaceholder:  "Поиск приложений",
		KeySearchStore:        "Искать «%s» в магазине",
		KeyStripSection:       "Алфавитная полоса",
		KeyGestureSection:     "Жест",
		KeyStripWidth:         "Ширина полосы",
		KeyStripPadding:       "Вертикальный отступ полосы",
		KeyTouchMargin:        "Зона касания",
		KeyFineScrollDistance: "Дистанция точной прокрутки",
		KeyFineModeThreshold:  "Порог точного режима",
		KeyHighlightScale:     "Масштаб выделения",
		KeyBulgeMargin:        "Отступ выпуклости",
		KeyBulgeRadius:        "Радиус выпуклости",
		KeySelectMode:         "При выборе буквы",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeyReset:              "Сбросить",
		KeyImportProfile:      "Импорт профиля",
		KeyExportProfile:      "Экспорт профиля",
		KeySettingsSaved:      "Настройки успешно сохранены!",
		KeyProfileImported:    "Профиль импортирован",
		KeyProfileExported:    "Профиль экспортирован",
		KeyErrorLaunching:     "Ошибка запуска приложения",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "Niagara Launcher",
		KeySettings:           "Configurações",
		KeyLauncher:           "Launcher",
		KeyLanguage:           "Idioma",
		KeyHome:               "Início",
		KeySwipeHint:          "Deslize para cima para ver os apps",
		KeySearchPlaceholder:  "Pesquisar apps",
		KeySearchStore:        "Pesquisar \"%s\" na loja",
		KeyStripSection:       "Faixa alfabética",
		KeyGestureSection:     "Gesto",
		KeyStripWidth:         "Largura da faixa",
		KeyStripPadding:       "Margem vertical da faixa",
		KeyTouchMargin:        "Margem de toque",
		KeyFineScrollDistance: "Distância da rolagem fina",
		KeyFineModeThreshold:  "Limite do modo fino",
		KeyHighlightScale:     "Escala do destaque",
		KeyBulgeMargin:        "Margem da curvatura",
		KeyBulgeRadius:        "Raio da curvatura",
		KeySelectMode:         "Ao selecionar letra",
		KeySave:               "Salvar",
		KeyCancel:             "Cancelar",
		KeyReset:              "Restaurar padrões",
		KeyImportProfile:      "Importar perfil",
		KeyExportProfile:      "Exportar perfil",
		KeySettingsSaved:      "Configurações salvas com sucesso!",
		KeyProfileImported:    "Perfil importado",
		KeyProfileExported:    "Perfil exportado",
		KeyErrorLaunching:     "Erro ao abrir o app",
	}
}
