package vocalization

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		category string
		language string
		want     string
	}{
		{CategorySong, "en", "song"},
		{CategoryCall, "en", "call"},
		{CategoryAlarm, "en", "alarm"},
		{CategorySong, "nl", "zang"},
		{CategoryCall, "nl", "roep"},
		{CategoryAlarm, "nl", "alarm"},
		{CategorySong, "de", "Gesang"},
		{CategoryCall, "de", "Ruf"},
		{CategoryAlarm, "de", "Alarm"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DisplayCategory(tt.category, tt.language))
	}
}

func TestDisplayCategoryUnknownLanguageFallsBack(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "song", DisplayCategory(CategorySong, "fr"))
	assert.Equal(t, "call", DisplayCategory(CategoryCall, ""))
}

func TestDisplayCategoryUnknownCategory(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "drumming", DisplayCategory("drumming", "nl"))
}

func TestSupportedLanguages(t *testing.T) {
	t.Parallel()

	languages := SupportedLanguages()
	assert.Contains(t, languages, DefaultLanguage)
	for _, lang := range languages {
		assert.Contains(t, categoryTranslations, lang)
	}
}
