package docdiff

import "unicode/utf8"

const (
	MinWindow = 3
	MaxWindow = 10

	// windowStep is the number of characters of average input length that
	// buys one more token of lookahead.
	windowStep = 1000
)

// Window derives the default lookahead from the size of both inputs:
// floor(avg/1000)+3 clamped to [MinWindow, MaxWindow], where avg is the mean of
// the two JoinedLen values.
func Window(old, new []string) int {
	// floor(((a+b)/2)/1000) == (a+b)/2000 for non-negative integers.
	w := (JoinedLen(old)+JoinedLen(new))/(2*windowStep) + MinWindow
	if w < MinWindow {
		return MinWindow
	}
	if w > MaxWindow {
		return MaxWindow
	}
	return w
}

// JoinedLen is the character count of tokens joined by single spaces.
func JoinedLen(tokens []string) int {
	if len(tokens) == 0 {
		return 0
	}
	n := len(tokens) - 1
	for _, t := range tokens {
		n += utf8.RuneCountInString(t)
	}
	return n
}
