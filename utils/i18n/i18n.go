package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Language is one of the two supported display languages.
type Language string

const (
	Spanish Language = "es"
	English Language = "en"
)

var (
	supported = []language.Tag{language.Spanish, language.English}
	matcher   = language.NewMatcher(supported)

	dictionaries = map[Language]map[string]string{
		Spanish: es,
		English: en,
	}
)

// Parse accepts "es" or "en" in any case.
func Parse(code string) (Language, bool) {
	switch Language(strings.ToLower(strings.TrimSpace(code))) {
	case Spanish:
		return Spanish, true
	case English:
		return English, true
	}
	return "", false
}

// Negotiate picks the best supported language for an Accept-Language header,
// or fallback when nothing in the header matches.
func Negotiate(acceptLanguage string, fallback Language) Language {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return fallback
	}
	if supported[idx] == language.English {
		return English
	}
	return Spanish
}

// Tag returns the BCP 47 tag used for number formatting.
func (l Language) Tag() language.Tag {
	if l == English {
		return language.AmericanEnglish
	}
	return language.EuropeanSpanish
}

// Other returns the language the switcher offers.
func (l Language) Other() Language {
	if l == English {
		return Spanish
	}
	return English
}

func (l Language) String() string {
	return string(l)
}

// T looks up key in the dictionary of lang. Unknown keys are returned as is.
func T(lang Language, key string) string {
	dict, ok := dictionaries[lang]
	if !ok {
		dict = dictionaries[Spanish]
	}
	if value, ok := dict[key]; ok {
		return value
	}
	return key
}

// Keys lists the keys of a dictionary.
func Keys(lang Language) []string {
	dict := dictionaries[lang]
	keys := make([]string, 0, len(dict))
	for k := range dict {
		keys = append(keys, k)
	}
	return keys
}
