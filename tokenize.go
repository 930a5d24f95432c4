package docdiff

import (
	"strings"
	"unicode"
)

// Tokenize flattens per-page text into a single word sequence. Pages are joined
// with a space, runs of white space collapse, and the result is split into
// words. Tokens are otherwise left untouched: no case folding, no punctuation
// stripping.
func Tokenize(pages []string) []string {
	tokens := strings.FieldsFunc(strings.Join(pages, " "), isSpace)
	if tokens == nil {
		return []string{}
	}
	return tokens
}

// isSpace matches the white space class of browser regular expressions: the
// Unicode White_Space set plus the byte order mark, minus NEL (U+0085).
func isSpace(r rune) bool {
	switch r {
	case '\u0085':
		return false
	case '\uFEFF':
		return true
	}
	return unicode.IsSpace(r)
}
