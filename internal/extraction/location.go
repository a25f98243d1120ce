package extraction

import (
	"strings"

	"registration-backend/internal/gazetteer"
)

// LocationExtractor resolves the candidate's city, gazetteer first, then
// labeled-field patterns.
type LocationExtractor struct {
	Tables *gazetteer.Tables
}

// Extract returns the detected location title-cased, or "".
func (e LocationExtractor) Extract(text string) string {
	lower := strings.ToLower(text)

	for _, city := range e.Tables.Cities {
		if strings.Contains(lower, city) {
			return titleCase(city)
		}
	}

	for _, pattern := range e.Tables.Locations {
		if m := pattern.FindStringSubmatch(text); m != nil {
			return titleCase(strings.TrimSpace(m[1]))
		}
	}

	return ""
}
