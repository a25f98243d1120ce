package evaluation

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
)

//go:embed fixtures/*.json
var fixtureFS embed.FS

// Fixture is one labeled resume: input text plus the expected field values.
type Fixture struct {
	Name     string   `json:"name"`
	Expected Expected `json:"expected"`
	Text     string   `json:"text"`
}

// Expected holds the labeled field values for a fixture.
type Expected struct {
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	FullName string   `json:"full_name"`
	Skills   []string `json:"skills"`
	Location string   `json:"location"`
}

// loadEmbeddedFixtures reads the corpus in filename order, so registration
// order is stable across runs.
func loadEmbeddedFixtures() ([]Fixture, error) {
	entries, err := fixtureFS.ReadDir("fixtures")
	if err != nil {
		return nil, fmt.Errorf("read fixtures dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	fixtures := make([]Fixture, 0, len(names))
	for _, name := range names {
		raw, err := fixtureFS.ReadFile("fixtures/" + name)
		if err != nil {
			return nil, fmt.Errorf("read fixture %s: %w", name, err)
		}
		var f Fixture
		if err := json.Unmarshal(raw, &f); err != nil {
			return nil, fmt.Errorf("parse fixture %s: %w", name, err)
		}
		if f.Name == "" {
			return nil, fmt.Errorf("fixture %s: missing name", name)
		}
		fixtures = append(fixtures, f)
	}
	return fixtures, nil
}
