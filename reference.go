package docdiff

import (
	"fmt"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	surrogateMin = 0xD800
	surrogateLen = 0x800

	// maxDistinctTokens is the number of valid, non-surrogate code points.
	maxDistinctTokens = utf8.MaxRune + 1 - surrogateLen
)

var opmap = map[diffmatchpatch.Operation]Op{
	diffmatchpatch.DiffEqual:  OpMatch,
	diffmatchpatch.DiffInsert: OpInsert,
	diffmatchpatch.DiffDelete: OpDelete,
}

// Reference computes a minimal alignment of old and new with Myers' algorithm.
// It is meant for judging the output of Align, which trades minimality for a
// bounded amount of work per token. WithTimeout limits the search; a search cut
// short by the timeout may also be non-minimal.
func Reference(old, new []string, o ...FuncOption) (*Result, error) {
	cfg := newConfig(o)

	runes1, runes2, tokens, err := tokensToRunes(old, new)
	if err != nil {
		return nil, err
	}

	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = cfg.timeout
	diffs := dmp.DiffMainRunes(runes1, runes2, false)

	ops := make([]Operation, 0, max(len(old), len(new)))
	for _, d := range diffs {
		for _, r := range d.Text {
			ops = append(ops, Operation{opmap[d.Type], tokens[runeIndex(r)]})
		}
	}

	return newResult(ops, 0), nil
}

// tokensToRunes assigns every distinct token its own rune so the character
// differ can work on whole tokens.
func tokensToRunes(old, new []string) ([]rune, []rune, []string, error) {
	index := make(map[string]rune)
	var tokens []string

	encode := func(seq []string) ([]rune, error) {
		out := make([]rune, len(seq))
		for n, t := range seq {
			r, ok := index[t]
			if !ok {
				if len(tokens) >= maxDistinctTokens {
					return nil, fmt.Errorf("more than %d distinct tokens", maxDistinctTokens)
				}
				r = indexRune(len(tokens))
				index[t] = r
				tokens = append(tokens, t)
			}
			out[n] = r
		}
		return out, nil
	}

	runes1, err := encode(old)
	if err != nil {
		return nil, nil, nil, err
	}
	runes2, err := encode(new)
	if err != nil {
		return nil, nil, nil, err
	}
	return runes1, runes2, tokens, nil
}

func indexRune(n int) rune {
	if n >= surrogateMin {
		n += surrogateLen
	}
	return rune(n)
}

func runeIndex(r rune) int {
	n := int(r)
	if n >= surrogateMin+surrogateLen {
		n -= surrogateLen
	}
	return n
}
