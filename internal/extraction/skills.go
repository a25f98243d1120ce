package extraction

import (
	"sort"
	"strings"

	"registration-backend/internal/gazetteer"
)

const (
	maxSkills         = 50
	fuzzyPrefixLen    = 4
	fuzzyLengthSlack  = 2
	fuzzyMinSkillSize = 3
)

// SkillMatcher finds known skills in free text. Implementations return
// case-normalized skills sorted alphabetically, bounded to the skills cap.
type SkillMatcher interface {
	Match(text string) []string
}

// GazetteerMatcher is the default two-tier matcher: exact substring
// containment, then a bounded prefix fallback that tolerates minor OCR and
// spelling noise. The fallback can false-positive on unrelated words sharing
// a four-character prefix; that trade-off is accepted.
type GazetteerMatcher struct {
	Tables *gazetteer.Tables
}

// Match returns the matched skills, deduplicated, sorted, at most 50.
func (m GazetteerMatcher) Match(text string) []string {
	lower := strings.ToLower(text)
	words := m.Tables.WordToken.FindAllString(lower, -1)

	found := make(map[string]bool)
	for _, skill := range m.Tables.Skills {
		if strings.Contains(lower, skill) {
			found[skill] = true
			continue
		}
		if len(skill) > fuzzyMinSkillSize && fuzzyTokenMatch(skill, words) {
			found[skill] = true
		}
	}

	matched := make([]string, 0, len(found))
	for skill := range found {
		matched = append(matched, skill)
	}
	sort.Strings(matched)
	if len(matched) > maxSkills {
		matched = matched[:maxSkills]
	}
	return matched
}

// fuzzyTokenMatch accepts a token that starts with the skill's first four
// characters and is no more than two characters shorter than the skill.
func fuzzyTokenMatch(skill string, words []string) bool {
	prefix := skill[:fuzzyPrefixLen]
	for _, word := range words {
		if strings.HasPrefix(word, prefix) && len(word) >= len(skill)-fuzzyLengthSlack {
			return true
		}
	}
	return false
}
