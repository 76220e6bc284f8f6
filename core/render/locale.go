package render

import (
	"fmt"
	"sort"
)

// Locale holds the labels an edition prints around the text.
type Locale struct {
	Vocabulary string
	Headword   string
	Gloss      string
	Count      string
}

var locales = map[string]Locale{
	"en": {Vocabulary: "Vocabulary", Headword: "Headword", Gloss: "Gloss", Count: "Occurrences"},
	"de": {Vocabulary: "Wortschatz", Headword: "Stichwort", Gloss: "Bedeutung", Count: "Vorkommen"},
	"fr": {Vocabulary: "Vocabulaire", Headword: "Entrée", Gloss: "Sens", Count: "Occurrences"},
	"es": {Vocabulary: "Vocabulario", Headword: "Lema", Gloss: "Significado", Count: "Apariciones"},
}

// LookupLocale returns the labels for a language code such as "en".
func LookupLocale(code string) (Locale, error) {
	l, ok := locales[code]
	if !ok {
		return Locale{}, fmt.Errorf("unknown locale %q (available: %v)", code, LocaleCodes())
	}
	return l, nil
}

// LocaleCodes lists the supported language codes.
func LocaleCodes() []string {
	codes := make([]string, 0, len(locales))
	for c := range locales {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}
