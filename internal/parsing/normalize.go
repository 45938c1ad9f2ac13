// Package parsing recovers structured candidate fields from raw resume text.
package parsing

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// minKernedRun is the minimum number of consecutive single-letter tokens that
// are treated as one de-kerned word. Below this threshold, runs of short
// tokens are assumed to be genuine words. A run of exactly three real
// one-letter words ("a b c") is an accepted false positive of this heuristic.
const minKernedRun = 3

// blankRun matches three or more consecutive newlines, i.e. more than one
// blank line between paragraphs.
var blankRun = regexp.MustCompile(`\n{3,}`)

// NormalizeText repairs whitespace noise in text extracted by document
// converters. It rejoins de-kerned words ("K a r t i k" -> "Kartik"),
// collapses runs of spaces and tabs to a single space, and reduces any run of
// blank lines to a single paragraph break. The function is pure and
// idempotent; empty input yields empty output.
func NormalizeText(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.ReplaceAll(raw, "\r", "\n")

	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		lines[i] = normalizeLine(line)
	}

	result := strings.Join(lines, "\n")
	result = blankRun.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// normalizeLine collapses intra-line whitespace and rejoins de-kerned runs.
func normalizeLine(line string) string {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return ""
	}
	return strings.Join(rejoinKernedRuns(tokens), " ")
}

// rejoinKernedRuns merges runs of at least minKernedRun consecutive
// single-letter tokens into one token. Shorter runs are left untouched so
// that legitimate short words survive.
func rejoinKernedRuns(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	i := 0
	for i < len(tokens) {
		j := i
		for j < len(tokens) && isSingleLetter(tokens[j]) {
			j++
		}
		if j-i >= minKernedRun {
			out = append(out, strings.Join(tokens[i:j], ""))
			i = j
			continue
		}
		if j == i {
			out = append(out, tokens[i])
			i++
			continue
		}
		out = append(out, tokens[i:j]...)
		i = j
	}
	return out
}

// isSingleLetter reports whether a token is exactly one alphabetic rune.
func isSingleLetter(tok string) bool {
	if utf8.RuneCountInString(tok) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(tok)
	return unicode.IsLetter(r)
}
