package extract

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// LineLabel is the classification of a single resume line.
type LineLabel int

const (
	// LineDescription lines are bullet fragments or sentence continuations.
	LineDescription LineLabel = iota
	// LineTitle lines name a project or a heading-like entry.
	LineTitle
)

// bulletPrefix matches the symbol markers that open a bullet line.
var bulletPrefix = regexp.MustCompile(`^[•\-\*◦▪○●→▸►✓✔☑]\s*`)

// titleSeparators are characters that mark a line as heading-like even when long.
var titleSeparators = regexp.MustCompile(`[|–—:]`)

// longLineThreshold is the length above which a separator-free line is
// treated as a description sentence.
const longLineThreshold = 80

// ClassifyLine labels a resume line as a title or a description using ordered
// formatting heuristics; the first matching rule wins:
//
//  1. blank line: description (ignored downstream)
//  2. bullet or symbol marker prefix: description
//  3. lowercase first letter: description
//  4. starts with a curated action verb or article: description
//  5. longer than 80 characters with none of "| – — :": description
//  6. otherwise: title
//
// The rule order is fixed; the heuristics are approximate for free-form or
// non-English resumes and that is a documented limitation, not a bug.
func ClassifyLine(line string, verbs []string) LineLabel {
	stripped := strings.TrimSpace(line)
	if stripped == "" {
		return LineDescription
	}

	if bulletPrefix.MatchString(stripped) {
		return LineDescription
	}

	first, _ := utf8.DecodeRuneInString(stripped)
	if unicode.IsLower(first) {
		return LineDescription
	}

	for _, verb := range verbs {
		if strings.HasPrefix(stripped, verb) {
			return LineDescription
		}
	}

	if utf8.RuneCountInString(stripped) > longLineThreshold && !titleSeparators.MatchString(stripped) {
		return LineDescription
	}

	return LineTitle
}

// matchesSection reports whether the line starts with any of the given
// section header prefixes, case-insensitively.
func matchesSection(line string, sections []string) bool {
	lower := strings.ToLower(line)
	for _, s := range sections {
		if strings.HasPrefix(lower, s) {
			return true
		}
	}
	return false
}
