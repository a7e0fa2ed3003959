package validation

import "strings"

const DefaultEmoji = "🎯"

var emojiKeywords = []struct {
	emoji    string
	keywords []string
}{
	{"📖", []string{"alquran", "quran", "tadabur", "tadarus", "ngaji", "mengaji"}},
	{"🏃", []string{"olahraga", "lari", "jogging", "run", "gym", "exercise", "workout", "fitness"}},
	{"📚", []string{"baca", "membaca", "buku", "read", "book"}},
	{"🎸", []string{"gitar", "guitar", "piano", "musik", "music"}},
	{"🎓", []string{"belajar", "kursus", "study", "learn", "course"}},
	{"🍳", []string{"masak", "memasak", "cook"}},
	{"🥗", []string{"diet", "sehat", "healthy"}},
	{"💰", []string{"hemat", "tabung", "menabung", "saving", "save money"}},
	{"✍️", []string{"menulis", "tulis", "write", "writing", "journal"}},
	{"😴", []string{"tidur", "sleep"}},
}

// PickEmoji chooses an emoji from keywords in text, falling back to DefaultEmoji.
func PickEmoji(text string) string {
	lower := strings.ToLower(text)
	for _, e := range emojiKeywords {
		for _, kw := range e.keywords {
			if strings.Contains(lower, kw) {
				return e.emoji
			}
		}
	}
	return DefaultEmoji
}
