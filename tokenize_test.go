package docdiff

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	type TestCase struct {
		Name     string
		Pages    []string
		Expected []string
	}

	for i, tc := range []TestCase{
		{"No pages", nil, []string{}},
		{"Blank pages", []string{"", "  ", "\n\t"}, []string{}},
		{"Single page", []string{"The quick  brown fox"}, []string{"The", "quick", "brown", "fox"}},
		{"Pages are joined", []string{"end of", "page two"}, []string{"end", "of", "page", "two"}},
		{"Whitespace runs", []string{"  a\t\tb\r\nc  "}, []string{"a", "b", "c"}},
		{"No folding", []string{"Fox, fox."}, []string{"Fox,", "fox."}},
		{"Empty page between", []string{"a", "", "b"}, []string{"a", "b"}},
		{"Byte order mark separates", []string{"a\ufeffb"}, []string{"a", "b"}},
		{"NEL is not a separator", []string{"c\u0085d"}, []string{"c\u0085d"}},
		{"Unicode spaces", []string{"a\u00a0b\u2003c\u3000d"}, []string{"a", "b", "c", "d"}},
	} {
		assert.Equal(t, tc.Expected, Tokenize(tc.Pages), fmt.Sprintf("Test case #%d, %s", i, tc.Name))
	}
}

func TestIsSpace(t *testing.T) {
	for _, r := range " \t\n\v\f\r\u00a0\u1680\u2000\u200a\u2028\u2029\u202f\u205f\u3000\ufeff" {
		assert.True(t, isSpace(r), "%U", r)
	}
	for _, r := range "a.\u0085\u200b" {
		assert.False(t, isSpace(r), "%U", r)
	}
}
