package evaluate

import (
	"strings"
	"unicode"
)

// normalizeText lowercases, trims, collapses inner whitespace, and drops
// a trailing period so that "  The Answer. " and "the answer" compare
// equal.
func normalizeText(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.TrimSuffix(s, ".")
	return strings.Join(strings.Fields(s), " ")
}

// matchChoice grades a multiple-choice answer. The canonical answer is a
// letter A-D; the subject may answer with the letter in either case,
// with a marker suffix ("b)"), or with the exact option text.
func matchChoice(student, canonical string, choices []string) bool {
	want, ok := letterIndex(canonical)
	if !ok {
		// A malformed canonical answer can only be matched verbatim.
		return normalizeText(student) != "" && normalizeText(student) == normalizeText(canonical)
	}

	if got, ok := letterIndex(student); ok {
		return got == want
	}
	if want < len(choices) && normalizeText(student) == normalizeText(choices[want]) {
		return true
	}
	return false
}

// letterIndex resolves an answer of the form "B", "b", or "b) 42" to an
// option index 0-3.
func letterIndex(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	letter := s[0]
	if letter >= 'a' && letter <= 'd' {
		letter -= 'a' - 'A'
	}
	if letter < 'A' || letter > 'D' {
		return 0, false
	}
	if len(s) == 1 {
		return int(letter - 'A'), true
	}
	switch s[1] {
	case ')', '.', ':', ' ':
		return int(letter - 'A'), true
	}
	return 0, false
}

// tokens splits a string into lowercased words, stripping punctuation.
func tokens(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

// tokenOverlap returns the share of canonical-answer tokens that also
// appear in the student's answer.
func tokenOverlap(student, canonical string) float64 {
	canonicalTokens := tokens(canonical)
	if len(canonicalTokens) == 0 {
		return 0
	}

	have := make(map[string]bool, len(canonicalTokens))
	for _, tok := range tokens(student) {
		have[tok] = true
	}

	matched := 0
	for _, tok := range canonicalTokens {
		if have[tok] {
			matched++
		}
	}
	return float64(matched) / float64(len(canonicalTokens))
}
