package clone

import "strings"

// Heuristic keyword tables, indexed by language tag. Matching logic never
// changes when a language is added; only these tables grow.

var hotelKeywords = map[string][]string{
	"en": {"hotel", "resort", "palace", "inn", "lodge", "suite", "accommodation", "welcome", "about"},
	"tr": {"otel", "konaklama", "hoş geldiniz", "hakkında"},
}

var addressKeywords = map[string][]string{
	"en": {"address", "location", "street", "avenue"},
	"tr": {"adres", "konum", "sokak", "cadde"},
}

var descriptionKeywords = map[string][]string{
	"en": {"description", "about", "welcome", "experience"},
	"tr": {"açıklama", "hakkında", "hoş geldiniz", "deneyim"},
}

var phoneKeywords = map[string][]string{
	"en": {"phone"},
	"tr": {"telefon"},
}

var emailKeywords = map[string][]string{
	"en": {"email"},
	"tr": {"e-posta"},
}

var checkInKeywords = map[string][]string{
	"en": {"check-in"},
	"tr": {"giriş"},
}

var checkOutKeywords = map[string][]string{
	"en": {"check-out"},
	"tr": {"çıkış"},
}

// keywordsFor merges English with the requested language; an unknown or empty
// language tag falls back to every set we know, which keeps the locator
// usable on mixed-language pages.
func keywordsFor(table map[string][]string, lang string) []string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" || table[lang] == nil {
		var all []string
		for _, kws := range table {
			all = append(all, kws...)
		}
		return all
	}
	if lang == "en" {
		return table["en"]
	}
	return append(append([]string{}, table["en"]...), table[lang]...)
}

func containsAny(text string, keywords []string) bool {
	t := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(t, kw) {
			return true
		}
	}
	return false
}
