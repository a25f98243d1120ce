package extraction

import (
	"strings"

	"registration-backend/internal/gazetteer"
)

const maxEducationEntries = 5

// EducationExtractor scans the document line by line for qualifications.
type EducationExtractor struct {
	Tables *gazetteer.Tables
}

// Extract returns up to five education entries in document order.
func (e EducationExtractor) Extract(text string) []Education {
	education := make([]Education, 0, maxEducationEntries)
	lines := strings.Split(text, "\n")

	for i, line := range lines {
		lower := strings.ToLower(line)

		if containsAny(lower, e.Tables.DegreeKeywords) {
			entry := Education{
				Degree:      e.degree(line),
				Institution: e.institution(line, lines, i),
				Year:        e.year(line),
			}
			if entry.Degree != "" || entry.Institution != "" {
				education = append(education, entry)
			}
			continue
		}

		if e.Tables.EducationNoun.MatchString(lower) {
			education = append(education, Education{
				Institution: strings.TrimSpace(line),
				Year:        e.year(line),
			})
		}
	}

	if len(education) > maxEducationEntries {
		education = education[:maxEducationEntries]
	}
	return education
}

// degree normalizes the degree label. The canonical mapping is ordered and
// checked before the generic keyword-uppercase fallback.
func (e EducationExtractor) degree(line string) string {
	lower := strings.ToLower(line)
	for _, pair := range e.Tables.DegreeCanonical {
		if strings.Contains(lower, pair.Spelling) {
			return pair.Label
		}
	}
	for _, keyword := range e.Tables.DegreeKeywords {
		if strings.Contains(lower, keyword) {
			return strings.ToUpper(keyword)
		}
	}
	return ""
}

// institution checks the current line against the institution gazetteer and,
// failing that, the next line. Lookahead is one line only.
func (e EducationExtractor) institution(line string, lines []string, idx int) string {
	lower := strings.ToLower(line)
	for _, inst := range e.Tables.Institutions {
		if strings.Contains(lower, inst) {
			return strings.TrimSpace(line)
		}
	}
	if idx+1 < len(lines) {
		next := strings.ToLower(lines[idx+1])
		for _, inst := range e.Tables.Institutions {
			if strings.Contains(next, inst) {
				return strings.TrimSpace(lines[idx+1])
			}
		}
	}
	return ""
}

// year prefers a single 19xx/20xx year, falling back to a year range.
func (e EducationExtractor) year(line string) string {
	if m := e.Tables.Year.FindString(line); m != "" {
		return m
	}
	return e.Tables.YearRange.FindString(line)
}
