package extraction

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"registration-backend/internal/gazetteer"
)

const nameScanWindow = 500

var firstLineBlockers = []string{"email", "phone", "address", "mobile", "@"}
var fallbackBlockers = []string{"email", "phone", "address", "www", "http"}

// NameExtractor finds the candidate name, first from the document head, then
// from capitalized-sequence patterns over the opening window.
type NameExtractor struct {
	Tables *gazetteer.Tables
}

// Extract returns the detected name or "".
func (e NameExtractor) Extract(text string) string {
	if name := nameFromFirstLine(text); name != "" {
		return name
	}
	return e.nameFromPatterns(text)
}

// nameFromFirstLine accepts the first line as the name when it is short,
// at most four words, every multi-letter word is capitalized, and it carries
// no contact-field markers.
func nameFromFirstLine(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) == 0 {
		return ""
	}
	first := strings.TrimSpace(lines[0])
	if utf8.RuneCountInString(first) >= 50 {
		return ""
	}
	words := strings.Fields(first)
	if len(words) > 4 {
		return ""
	}
	for _, w := range words {
		if utf8.RuneCountInString(w) <= 1 {
			continue
		}
		r, _ := utf8.DecodeRuneInString(w)
		if !unicode.IsUpper(r) {
			return ""
		}
	}
	if containsAny(strings.ToLower(first), firstLineBlockers) {
		return ""
	}
	return first
}

func (e NameExtractor) nameFromPatterns(text string) string {
	window := text
	if len(window) > nameScanWindow {
		window = window[:nameScanWindow]
	}
	for _, pattern := range e.Tables.NamePatterns {
		for _, m := range pattern.FindAllStringSubmatch(window, -1) {
			candidate := m[1]
			if utf8.RuneCountInString(candidate) <= 3 {
				continue
			}
			if len(strings.Fields(candidate)) > 4 {
				continue
			}
			if containsAny(strings.ToLower(candidate), fallbackBlockers) {
				continue
			}
			return strings.TrimSpace(candidate)
		}
	}
	return ""
}
