package entities

// LocaleSources is the ordered list of source bundles merged for one locale.
type LocaleSources struct {
	Locale  string
	Sources []Bundle
}

// Target is one exported pair of files, named <Stem>_<locale>.<ext>.
type Target struct {
	Stem    string
	Locales []LocaleSources
}

// Merged returns the merged bundle of locale, or false when the target does
// not declare it.
func (t Target) Merged(locale string) (Bundle, bool) {
	for _, l := range t.Locales {
		if l.Locale == locale {
			return Merge(l.Sources...), true
		}
	}
	return nil, false
}

// LocaleCodes returns the locales of the target in declaration order.
func (t Target) LocaleCodes() []string {
	codes := make([]string, 0, len(t.Locales))
	for _, l := range t.Locales {
		codes = append(codes, l.Locale)
	}
	return codes
}

// Set is an independent generator: a named group of targets exported together.
type Set struct {
	Name        string
	Description string
	Targets     []Target
}
