package calendar

import (
	"strings"
	"unicode"
)

// LabelFromKey turns a config key into a display label.
//
// The key is split on underscores and whitespace. Every word gets an upper-case
// first letter and a lower-case remainder, except words containing an apostrophe,
// which keep their remainder as written:
//
//	new_year         -> New Year
//	new_year's_day   -> New Year's Day
//	EID_AL_FITR      -> Eid Al Fitr
func LabelFromKey(key string) string {
	words := strings.FieldsFunc(key, func(r rune) bool {
		return r == '_' || unicode.IsSpace(r)
	})

	for i, word := range words {
		runes := []rune(word)
		rest := string(runes[1:])
		if !strings.ContainsRune(word, '\'') {
			rest = strings.ToLower(rest)
		}
		words[i] = string(unicode.ToUpper(runes[0])) + rest
	}

	return strings.Join(words, " ")
}
