// Package args splits a free-form argument string into shell-like words.
//
// Quote characters and backslashes are kept in the produced words, so
// `--name="my snap"` comes back exactly as typed, only separated from its
// neighbours. A closing quote always ends the current word.
package args

import "strings"

// Parse splits raw on unquoted spaces. It never fails: an unterminated quote
// absorbs the rest of the input into the last word.
func Parse(raw string) []string {
	var (
		words []string
		word  strings.Builder
	)
	flush := func() {
		if word.Len() > 0 {
			words = append(words, word.String())
			word.Reset()
		}
	}

	// every special character is ASCII, so bytes are walked as they are
	for i := 0; i < len(raw); i++ {
		switch c := raw[i]; c {
		case '"', '\'':
			word.WriteByte(c)
			for i++; i < len(raw); i++ {
				sub := raw[i]
				word.WriteByte(sub)
				if sub == c {
					flush()
					break
				}
				if sub == '\\' && i+1 < len(raw) {
					i++
					word.WriteByte(raw[i])
				}
			}
		case '\\':
			word.WriteByte(c)
			if i+1 < len(raw) {
				i++
				word.WriteByte(raw[i])
			}
		case ' ':
			flush()
		default:
			word.WriteByte(c)
		}
	}
	flush()

	return words
}
