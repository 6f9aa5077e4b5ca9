package output

// T renders console messages in the operator's language.
type T interface {
	// T renders message key in locale. data fills the template fields and may
	// be nil. Unknown keys render as the key itself.
	T(locale, key string, data map[string]any) string
	// LanguageName names the target locale in the language of locale
	// (e.g. "英語" for target "en" in "ja").
	LanguageName(locale, target string) string
}
