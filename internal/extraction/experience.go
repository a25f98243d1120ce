package extraction

import (
	"strings"

	"registration-backend/internal/gazetteer"
)

const (
	maxExperienceEntries = 5
	minExperienceLineLen = 10
)

// fallbackRole marks the synthetic entry emitted when no experience section
// was found but the text mentions a years/months-of-experience phrase.
const fallbackRole = "Experience Detected"

// ExperienceExtractor walks the document with a two-state section machine:
// outside the experience section until a header keyword opens it, back
// outside (terminally) once an unrelated section header closes it.
type ExperienceExtractor struct {
	Tables *gazetteer.Tables
}

// Extract returns up to five experience entries in document order.
func (e ExperienceExtractor) Extract(text string) []Experience {
	experience := make([]Experience, 0, maxExperienceEntries)
	lines := strings.Split(text, "\n")

	inSection := false
	for _, line := range lines {
		lower := strings.ToLower(line)

		if e.opensSection(lower) {
			inSection = true
			continue
		}
		if !inSection {
			continue
		}
		if e.closesSection(lower) {
			break
		}

		trimmed := strings.TrimSpace(line)
		if len([]rune(trimmed)) <= minExperienceLineLen {
			continue
		}

		entry := Experience{
			Company:  e.company(line),
			Role:     e.role(line),
			Duration: e.duration(line),
		}
		if entry.Company == "" && entry.Role == "" {
			continue
		}
		if entry.Role == "" {
			entry.Role = truncateRunes(trimmed, 50)
		}
		experience = append(experience, entry)
	}

	if len(experience) == 0 {
		experience = e.fallback(lines)
	}
	if len(experience) > maxExperienceEntries {
		experience = experience[:maxExperienceEntries]
	}
	return experience
}

func (e ExperienceExtractor) opensSection(lower string) bool {
	return containsAny(lower, e.Tables.ExperienceHeaders)
}

func (e ExperienceExtractor) closesSection(lower string) bool {
	return containsAny(lower, e.Tables.SectionEnders)
}

// fallback emits a single synthetic entry for the first line anywhere that
// mentions an amount of experience, when the section scan found nothing.
func (e ExperienceExtractor) fallback(lines []string) []Experience {
	for _, line := range lines {
		if e.Tables.ExperienceAny.MatchString(strings.ToLower(line)) {
			return []Experience{{
				Role:     fallbackRole,
				Duration: strings.TrimSpace(line),
			}}
		}
	}
	return nil
}

// company tries the employer gazetteer first, then the "at/with/joined X"
// and "X Pvt/Ltd/Inc" patterns.
func (e ExperienceExtractor) company(line string) string {
	lower := strings.ToLower(line)
	for _, name := range e.Tables.Companies {
		if strings.Contains(lower, name) {
			return titleCase(name)
		}
	}
	for _, pattern := range e.Tables.CompanySuffix {
		if m := pattern.FindStringSubmatch(line); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// role returns the whole line when it contains a role-title keyword.
func (e ExperienceExtractor) role(line string) string {
	if containsAny(strings.ToLower(line), e.Tables.RoleKeywords) {
		return strings.TrimSpace(line)
	}
	return ""
}

// duration returns the first match of the month-year range, year range, or
// years-of-experience patterns.
func (e ExperienceExtractor) duration(line string) string {
	for _, pattern := range e.Tables.Durations {
		if m := pattern.FindString(line); m != "" {
			return m
		}
	}
	return ""
}
