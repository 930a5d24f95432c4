// Package docdiff aligns the word streams of two documents and reports which
// words were kept, removed, or added.
//
// The aligner is a greedy walk with a bounded lookahead rather than a minimal
// edit-distance search. On a mismatch it scans at most W tokens ahead, first in
// the old sequence and then in the new one, for a point where the two sides
// agree again. Work is O((len(old)+len(new))·W). The output is not guaranteed to
// be minimal: inputs with many repeats of a common word can resynchronize on the
// wrong occurrence. Use Reference when a minimal alignment is needed for
// comparison.
package docdiff

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var ErrInvalidConfiguration = errors.New("invalid configuration")

// Align classifies every token of old and new as matched, deleted, or inserted.
//
// The lookahead defaults to Window(old, new) and can be fixed with WithWindow.
// When a run could be explained either as deletions from old or as insertions
// into new, deletions win.
func Align(old, new []string, o ...FuncOption) (*Result, error) {
	cfg := newConfig(o)

	w := cfg.window
	if !cfg.windowSet {
		w = Window(old, new)
		cfg.logger.Debug("lookahead window selected",
			zap.Int("window", w),
			zap.Int("avgChars", (JoinedLen(old)+JoinedLen(new))/2))
	} else if w < 1 {
		return nil, fmt.Errorf("%w: window must be at least 1, got %d", ErrInvalidConfiguration, w)
	}

	r := newResult(align(old, new, w), w)

	cfg.logger.Debug("alignment complete",
		zap.Int("oldTokens", len(old)),
		zap.Int("newTokens", len(new)),
		zap.Int("inserted", r.Inserted),
		zap.Int("deleted", r.Deleted))

	return r, nil
}

// Compare tokenizes the page texts of two documents and aligns them.
func Compare(oldPages, newPages []string, o ...FuncOption) (*Result, error) {
	return Align(Tokenize(oldPages), Tokenize(newPages), o...)
}

func align(old, new []string, w int) []Operation {
	ops := make([]Operation, 0, max(len(old), len(new)))
	i, j := 0, 0

	for i < len(old) || j < len(new) {
		if i < len(old) && j < len(new) && old[i] == new[j] {
			ops = append(ops, Operation{OpMatch, old[i]})
			i++
			j++
			continue
		}

		// old[i:i+k] were dropped if new[j] shows up k tokens ahead in old.
		if k := lookahead(old, i, new, j, w); k > 0 {
			for _, t := range old[i : i+k] {
				ops = append(ops, Operation{OpDelete, t})
			}
			i += k
			continue
		}

		// new[j:j+k] were added if old[i] shows up k tokens ahead in new.
		if k := lookahead(new, j, old, i, w); k > 0 {
			for _, t := range new[j : j+k] {
				ops = append(ops, Operation{OpInsert, t})
			}
			j += k
			continue
		}

		if i < len(old) {
			ops = append(ops, Operation{OpDelete, old[i]})
			i++
		}
		if j < len(new) {
			ops = append(ops, Operation{OpInsert, new[j]})
			j++
		}
	}

	return ops
}

// lookahead returns the smallest k in [1, w] with a[p+k] == b[q], or 0 if there
// is none within bounds.
func lookahead(a []string, p int, b []string, q int, w int) int {
	if q >= len(b) {
		return 0
	}
	for k := 1; k <= w && p+k < len(a); k++ {
		if a[p+k] == b[q] {
			return k
		}
	}
	return 0
}
