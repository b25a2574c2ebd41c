// Package present turns schedule data into user-facing text for the GUI and CLI.
package present

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Language codes
const (
	LangSystem  = "system"
	LangRussian = "ru"
	LangEnglish = "en"

	DefaultLanguage = LangRussian
)

// Text keys for localization
const (
	KeyAppTitle             = "app_title"
	KeySchedule             = "schedule"
	KeyFavorites            = "favorites"
	KeyProfile              = "profile"
	KeySelectGroup          = "select_group"
	KeyAddFavorite          = "add_favorite"
	KeyRemoveFavorite       = "remove_favorite"
	KeyRefresh              = "refresh"
	KeyLoading              = "loading"
	KeyEmptySchedule        = "empty_schedule"
	KeyErrorPrefix          = "error_prefix"
	KeyUnknownError         = "unknown_error"
	KeyNoFavorites          = "no_favorites"
	KeyNoFavoritesHint      = "no_favorites_hint"
	KeyFavoriteGroups       = "favorite_groups"
	KeySubgroup1            = "subgroup_1"
	KeySubgroup2            = "subgroup_2"
	KeyLessonNumber         = "lesson_number"
	KeyClassroom            = "classroom"
	KeyWeek                 = "week"
	KeySettings             = "settings"
	KeyLanguage             = "language"
	KeyWeekStart            = "week_start"
	KeyMonday               = "monday"
	KeySunday               = "sunday"
	KeyAPIURL               = "api_url"
	KeyTimeout              = "timeout"
	KeySave                 = "save"
	KeyCancel               = "cancel"
	KeySettingsSaved        = "settings_saved"
	KeyFavoriteAdded        = "favorite_added"
	KeyFavoriteRemoved      = "favorite_removed"
	KeyErrorSavingFavorites = "error_saving_favorites"
	KeyProfileText          = "profile_text"
	KeyRestartRequired      = "restart_required"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: DefaultLanguage,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == LangSystem || lang == "" {
		lang = DefaultLanguage
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to Russian
	if texts, exists := l.texts[DefaultLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns available languages
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		LangSystem:  "System Default",
		LangRussian: "Русский",
		LangEnglish: "English",
	}
}

func (l *Localization) initializeTexts() {
	l.texts[LangRussian] = map[string]string{
		KeyAppTitle:             "Расписание колледжа",
		KeySchedule:             "Расписание",
		KeyFavorites:            "Избранное",
		KeyProfile:              "Профиль",
		KeySelectGroup:          "Выберите группу",
		KeyAddFavorite:          "Добавить в избранное",
		KeyRemoveFavorite:       "Удалить из избранного",
		KeyRefresh:              "Обновить",
		KeyLoading:              "Загрузка...",
		KeyEmptySchedule:        "Нет занятий на выбранную неделю",
		KeyErrorPrefix:          "Ошибка",
		KeyUnknownError:         "Неизвестная ошибка",
		KeyNoFavorites:          "Нет избранных групп",
		KeyNoFavoritesHint:      "Добавьте группы, нажав на сердечко в главном экране",
		KeyFavoriteGroups:       "Избранные группы",
		KeySubgroup1:            "Подгруппа 1",
		KeySubgroup2:            "Подгруппа 2",
		KeyLessonNumber:         "Пара %d",
		KeyClassroom:            "ауд.",
		KeyWeek:                 "Неделя",
		KeySettings:             "Настройки",
		KeyLanguage:             "Язык",
		KeyWeekStart:            "Начало недели",
		KeyMonday:               "Понедельник",
		KeySunday:               "Воскресенье",
		KeyAPIURL:               "Адрес сервера",
		KeyTimeout:              "Таймаут запроса (сек)",
		KeySave:                 "Сохранить",
		KeyCancel:               "Отмена",
		KeySettingsSaved:        "Настройки сохранены",
		KeyFavoriteAdded:        "Группа добавлена в избранное",
		KeyFavoriteRemoved:      "Группа удалена из избранного",
		KeyErrorSavingFavorites: "Не удалось сохранить избранное",
		KeyProfileText:          "Профиль студента",
		KeyRestartRequired:      "Язык применится после перезапуска",
	}

	l.texts[LangEnglish] = map[string]string{
		KeyAppTitle:             "College Schedule",
		KeySchedule:             "Schedule",
		KeyFavorites:            "Favorites",
		KeyProfile:              "Profile",
		KeySelectGroup:          "Select a group",
		KeyAddFavorite:          "Add to favorites",
		KeyRemoveFavorite:       "Remove from favorites",
		KeyRefresh:              "Refresh",
		KeyLoading:              "Loading...",
		KeyEmptySchedule:        "No classes this week",
		KeyErrorPrefix:          "Error",
		KeyUnknownError:         "Unknown error",
		KeyNoFavorites:          "No favorite groups",
		KeyNoFavoritesHint:      "Add groups with the heart button on the schedule screen",
		KeyFavoriteGroups:       "Favorite groups",
		KeySubgroup1:            "Subgroup 1",
		KeySubgroup2:            "Subgroup 2",
		KeyLessonNumber:         "Class %d",
		KeyClassroom:            "room",
		KeyWeek:                 "Week",
		KeySettings:             "Settings",
		KeyLanguage:             "Language",
		KeyWeekStart:            "Week starts on",
		KeyMonday:               "Monday",
		KeySunday:               "Sunday",
		KeyAPIURL:               "Server address",
		KeyTimeout:              "Request timeout (sec)",
		KeySave:                 "Save",
		KeyCancel:               "Cancel",
		KeySettingsSaved:        "Settings saved",
		KeyFavoriteAdded:        "Group added to favorites",
		KeyFavoriteRemoved:      "Group removed from favorites",
		KeyErrorSavingFavorites: "Could not save favorites",
		KeyProfileText:          "Student profile",
		KeyRestartRequired:      "Language applies after restart",
	}
}
