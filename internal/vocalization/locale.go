package vocalization

// Vocalization categories as stored and reported. These are also the default
// model output labels, in tensor order.
const (
	CategorySong  = "song"
	CategoryCall  = "call"
	CategoryAlarm = "alarm"
)

// DefaultLanguage is used when a requested language has no translations.
const DefaultLanguage = "en"

// categoryTranslations maps language code to category display names.
var categoryTranslations = map[string]map[string]string{
	"en": {
		CategorySong:  "song",
		CategoryCall:  "call",
		CategoryAlarm: "alarm",
	},
	"nl": {
		CategorySong:  "zang",
		CategoryCall:  "roep",
		CategoryAlarm: "alarm",
	},
	"de": {
		CategorySong:  "Gesang",
		CategoryCall:  "Ruf",
		CategoryAlarm: "Alarm",
	},
}

// DisplayCategory returns the localized display name for a category. Unknown
// languages fall back to English; unknown categories are returned as is.
func DisplayCategory(category, language string) string {
	translations, ok := categoryTranslations[language]
	if !ok {
		translations = categoryTranslations[DefaultLanguage]
	}
	if display, ok := translations[category]; ok {
		return display
	}
	return category
}

// SupportedLanguages returns the language codes with category translations.
func SupportedLanguages() []string {
	return []string{"de", "en", "nl"}
}
