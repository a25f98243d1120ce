// Package extraction implements the heuristic resume parsing pipeline:
// contact, name, location, education, experience and skill extraction over a
// single normalized text string. Every extractor is a pure function of its
// input and the shared gazetteer tables; given identical text the pipeline
// yields byte-identical records.
package extraction

import "registration-backend/internal/gazetteer"

// Pipeline orchestrates the field extractors into one ExtractedData record.
type Pipeline struct {
	tables     *gazetteer.Tables
	contact    ContactExtractor
	name       NameExtractor
	location   LocationExtractor
	education  EducationExtractor
	experience ExperienceExtractor
	skills     SkillMatcher
}

// NewPipeline builds a pipeline over the given tables with the default
// skill matcher.
func NewPipeline(tables *gazetteer.Tables) *Pipeline {
	return &Pipeline{
		tables:     tables,
		contact:    ContactExtractor{Tables: tables},
		name:       NameExtractor{Tables: tables},
		location:   LocationExtractor{Tables: tables},
		education:  EducationExtractor{Tables: tables},
		experience: ExperienceExtractor{Tables: tables},
		skills:     GazetteerMatcher{Tables: tables},
	}
}

// WithSkillMatcher swaps the skill matching strategy. Intended for callers
// that want edit-distance matching instead of the prefix fallback.
func (p *Pipeline) WithSkillMatcher(m SkillMatcher) *Pipeline {
	p.skills = m
	return p
}

// Extract runs every extractor over the text and returns the full record.
// It never fails: absent fields are empty strings or empty slices.
func (p *Pipeline) Extract(text string) ExtractedData {
	return ExtractedData{
		FullName:   p.name.Extract(text),
		Email:      p.contact.Email(text),
		Phone:      p.contact.Phone(text),
		Location:   p.location.Extract(text),
		Education:  p.education.Extract(text),
		Experience: p.experience.Extract(text),
		Skills:     p.skills.Match(text),
		RawText:    text,
	}
}
