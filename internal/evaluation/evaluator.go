// Package evaluation measures extraction quality against a fixed labeled
// corpus. It is the acceptance mechanism for the extraction subsystem: per
// fixture it runs the full pipeline and compares field by field, producing a
// reproducible per-field and aggregate accuracy report.
package evaluation

import (
	"sort"
	"strings"

	"github.com/agext/levenshtein"

	"registration-backend/internal/extraction"
)

// nameSimilarityThreshold is the minimum normalized edit similarity for a
// full-name comparison to pass; exact name extraction is not guaranteed.
const nameSimilarityThreshold = 0.7

// Result is one field comparison for one fixture.
type Result struct {
	ResumeName string `json:"resume_name"`
	FieldName  string `json:"field_name"`
	Expected   string `json:"expected"`
	Extracted  string `json:"extracted"`
	Correct    bool   `json:"correct"`
}

// AccuracyReport aggregates results over the whole corpus.
type AccuracyReport struct {
	TotalFields        int                `json:"total_fields"`
	CorrectFields      int                `json:"correct_fields"`
	AccuracyPercentage float64            `json:"accuracy_percentage"`
	FieldWiseAccuracy  map[string]float64 `json:"field_wise_accuracy"`
	Results            []Result           `json:"results"`
}

// Evaluator drives the pipeline over its fixture corpus. It never mutates
// pipeline state and fixtures carry no data dependency on each other.
type Evaluator struct {
	pipeline *extraction.Pipeline
	fixtures []Fixture
	byName   map[string]int
}

// New builds an evaluator over the embedded corpus.
func New(pipeline *extraction.Pipeline) (*Evaluator, error) {
	fixtures, err := loadEmbeddedFixtures()
	if err != nil {
		return nil, err
	}
	e := &Evaluator{
		pipeline: pipeline,
		byName:   make(map[string]int, len(fixtures)),
	}
	for _, f := range fixtures {
		e.Register(f)
	}
	return e, nil
}

// Register adds or replaces a fixture. Extending the corpus is data
// registration only; no comparison logic changes.
func (e *Evaluator) Register(f Fixture) {
	if idx, ok := e.byName[f.Name]; ok {
		e.fixtures[idx] = f
		return
	}
	e.byName[f.Name] = len(e.fixtures)
	e.fixtures = append(e.fixtures, f)
}

// Fixtures returns the corpus in registration order.
func (e *Evaluator) Fixtures() []Fixture {
	out := make([]Fixture, len(e.fixtures))
	copy(out, e.fixtures)
	return out
}

// EvaluateSingle runs one fixture by name. Unknown names yield nil.
func (e *Evaluator) EvaluateSingle(name string) []Result {
	idx, ok := e.byName[name]
	if !ok {
		return nil
	}
	return e.evaluate(e.fixtures[idx])
}

// EvaluateAll runs the whole corpus and aggregates per-field and overall
// accuracy percentages.
func (e *Evaluator) EvaluateAll() AccuracyReport {
	var all []Result
	for _, f := range e.fixtures {
		all = append(all, e.evaluate(f)...)
	}

	total := len(all)
	correct := 0
	fieldTotals := make(map[string]int)
	fieldCorrect := make(map[string]int)
	for _, r := range all {
		fieldTotals[r.FieldName]++
		if r.Correct {
			correct++
			fieldCorrect[r.FieldName]++
		}
	}

	fieldWise := make(map[string]float64, len(fieldTotals))
	for field, t := range fieldTotals {
		fieldWise[field] = percentage(fieldCorrect[field], t)
	}

	return AccuracyReport{
		TotalFields:        total,
		CorrectFields:      correct,
		AccuracyPercentage: percentage(correct, total),
		FieldWiseAccuracy:  fieldWise,
		Results:            all,
	}
}

func (e *Evaluator) evaluate(f Fixture) []Result {
	extracted := e.pipeline.Extract(f.Text)
	expected := f.Expected

	results := make([]Result, 0, 5)

	results = append(results, Result{
		ResumeName: f.Name,
		FieldName:  "email",
		Expected:   expected.Email,
		Extracted:  extracted.Email,
		Correct:    strings.EqualFold(expected.Email, extracted.Email),
	})

	results = append(results, Result{
		ResumeName: f.Name,
		FieldName:  "phone",
		Expected:   expected.Phone,
		Extracted:  extracted.Phone,
		Correct:    expected.Phone == extracted.Phone,
	})

	results = append(results, Result{
		ResumeName: f.Name,
		FieldName:  "full_name",
		Expected:   expected.FullName,
		Extracted:  extracted.FullName,
		Correct:    fuzzyMatch(expected.FullName, extracted.FullName, nameSimilarityThreshold),
	})

	expectedSkills := lowerSet(expected.Skills)
	extractedSkills := lowerSet(extracted.Skills)
	results = append(results, Result{
		ResumeName: f.Name,
		FieldName:  "skills",
		Expected:   joinSorted(expectedSkills),
		Extracted:  joinSorted(extractedSkills),
		Correct:    intersects(expectedSkills, extractedSkills),
	})

	expectedLoc := strings.ToLower(expected.Location)
	extractedLoc := strings.ToLower(extracted.Location)
	results = append(results, Result{
		ResumeName: f.Name,
		FieldName:  "location",
		Expected:   expected.Location,
		Extracted:  extracted.Location,
		Correct:    strings.Contains(extractedLoc, expectedLoc) || strings.Contains(expectedLoc, extractedLoc),
	})

	return results
}

// fuzzyMatch compares case-folded strings by normalized edit similarity.
// Empty strings never match.
func fuzzyMatch(a, b string, threshold float64) bool {
	if a == "" || b == "" {
		return false
	}
	return levenshtein.Match(strings.ToLower(a), strings.ToLower(b), nil) >= threshold
}

func percentage(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(correct) / float64(total) * 100
}

func lowerSet(items []string) map[string]bool {
	out := make(map[string]bool, len(items))
	for _, s := range items {
		out[strings.ToLower(s)] = true
	}
	return out
}

func intersects(a, b map[string]bool) bool {
	for k := range a {
		if b[k] {
			return true
		}
	}
	return false
}

func joinSorted(set map[string]bool) string {
	items := make([]string, 0, len(set))
	for k := range set {
		items = append(items, k)
	}
	sort.Strings(items)
	return strings.Join(items, ", ")
}
