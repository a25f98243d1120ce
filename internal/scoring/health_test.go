package scoring

import (
	"reflect"
	"testing"
)

func TestHealthFullProfile(t *testing.T) {
	skills := []string{"python", "java", "sql", "react", "docker"}
	got := CalculateHealth("a@b.com", "9876543210", 1, 1, skills, "Hyderabad")

	if got.TotalScore != 100 {
		t.Fatalf("expected score 100, got %d", got.TotalScore)
	}
	if len(got.Suggestions) != 0 {
		t.Fatalf("expected no suggestions, got %v", got.Suggestions)
	}
	if !got.EmailPresent || !got.PhonePresent || !got.EducationDetected || !got.ExperienceDetected || !got.AddressDetected {
		t.Fatalf("expected all presence flags set, got %+v", got)
	}
	if got.SkillsCount != 5 {
		t.Fatalf("expected skills count 5, got %d", got.SkillsCount)
	}
}

func TestHealthEmptyProfile(t *testing.T) {
	got := CalculateHealth("", "", 0, 0, nil, "")

	if got.TotalScore != 0 {
		t.Fatalf("expected score 0, got %d", got.TotalScore)
	}
	want := []string{
		"Add your email address for contact",
		"Add your phone number for contact",
		"Add your educational qualifications",
		"Add your work experience",
		"Add your technical and soft skills",
		"Add your location/address",
	}
	if !reflect.DeepEqual(got.Suggestions, want) {
		t.Fatalf("expected suggestions %v, got %v", want, got.Suggestions)
	}
}

func TestHealthPartialSkillsCredit(t *testing.T) {
	cases := []struct {
		name       string
		skills     []string
		score      int
		suggestion string
	}{
		{"three_skills", []string{"python", "java", "sql"}, 12, "Add more skills (currently 3, recommend at least 5)"},
		{"one_skill", []string{"python"}, 4, "Add more skills (currently 1, recommend at least 5)"},
		{"five_skills", []string{"a", "b", "c", "d", "e"}, 20, ""},
		{"seven_skills", []string{"a", "b", "c", "d", "e", "f", "g"}, 20, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CalculateHealth("", "", 0, 0, tc.skills, "")
			if got.TotalScore != tc.score {
				t.Fatalf("expected score %d, got %d", tc.score, got.TotalScore)
			}
			if tc.suggestion == "" {
				for _, s := range got.Suggestions {
					if s == "Add your technical and soft skills" {
						t.Fatalf("unexpected missing-skills suggestion in %v", got.Suggestions)
					}
				}
				return
			}
			found := false
			for _, s := range got.Suggestions {
				if s == tc.suggestion {
					found = true
				}
			}
			if !found {
				t.Fatalf("expected suggestion %q in %v", tc.suggestion, got.Suggestions)
			}
		})
	}
}

func TestHealthSuggestionOrder(t *testing.T) {
	got := CalculateHealth("a@b.com", "", 1, 0, []string{"python"}, "")

	want := []string{
		"Add your phone number for contact",
		"Add your work experience",
		"Add more skills (currently 1, recommend at least 5)",
		"Add your location/address",
	}
	if !reflect.DeepEqual(got.Suggestions, want) {
		t.Fatalf("expected suggestions %v, got %v", want, got.Suggestions)
	}
	// email 10 + education 20 + one skill 4
	if got.TotalScore != 34 {
		t.Fatalf("expected score 34, got %d", got.TotalScore)
	}
}
