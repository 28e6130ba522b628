package rewrite

import (
	"strings"

	"github.com/fatih/camelcase"

	"github.com/abdidvp/namefix/internal/domain"
)

// markers identify names that were already rewritten. Every vocabulary
// spelling contains one of them, which keeps a second run a no-op.
var markers = []string{"yourmom", "yourmother", "urmom", "yomama"}

// overusedLetters duplicates the single-letter rule on purpose: these are the
// letters the policy calls out by name.
var overusedLetters = map[string]bool{
	"i": true, "j": true, "k": true, "l": true, "m": true, "n": true,
	"x": true, "y": true, "z": true, "a": true, "b": true, "c": true,
	"d": true, "e": true, "f": true, "g": true, "h": true,
}

var noiseWords = map[string]bool{
	"temp": true, "tmp": true, "var": true, "val": true, "data": true,
	"item": true, "elem": true, "node": true, "obj": true, "thing": true,
	"stuff": true,
}

// HasMarker reports whether name already contains a replacement marker,
// ignoring case.
func HasMarker(name string) bool {
	lower := strings.ToLower(name)
	for _, m := range markers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

// Classify reports whether name is a bad identifier and which rule flagged it.
func Classify(name string) (domain.Reason, bool) {
	if HasMarker(name) {
		return "", false
	}
	switch {
	case overusedLetters[name]:
		return domain.ReasonOverusedLetter, true
	case len(name) == 1 && isLower(name[0]):
		return domain.ReasonSingleLetter, true
	case noiseWords[name]:
		return domain.ReasonNoiseWord, true
	case isNumberedStem(name):
		return domain.ReasonNumberedStem, true
	case len(name) == 2 && name[0] == name[1] && isLower(name[0]):
		return domain.ReasonDoubledLetter, true
	}
	return "", false
}

// isNumberedStem matches lowercase letters followed by digits ("tmp2").
// camelcase splits on character-class changes, so the shape is exactly two
// parts: a lowercase run and a digit run.
func isNumberedStem(name string) bool {
	parts := camelcase.Split(name)
	if len(parts) != 2 {
		return false
	}
	return allBytes(parts[0], isLower) && allBytes(parts[1], isDigit)
}

func isLower(b byte) bool { return b >= 'a' && b <= 'z' }
func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func allBytes(s string, pred func(byte) bool) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !pred(s[i]) {
			return false
		}
	}
	return true
}
