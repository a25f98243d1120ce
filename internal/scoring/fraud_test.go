package scoring

import (
	"strings"
	"testing"

	"registration-backend/internal/gazetteer"
)

func TestFraudCleanInput(t *testing.T) {
	d := FraudDetector{Tables: gazetteer.Default()}

	got := d.Analyze("9876543210", "a@b.com", []string{"python"}, 2, "plain resume text", 25)
	if got.FraudRiskScore != 0 {
		t.Fatalf("expected score 0, got %d", got.FraudRiskScore)
	}
	if got.RiskLabel != RiskLow {
		t.Fatalf("expected label %q, got %q", RiskLow, got.RiskLabel)
	}
	if len(got.Flags) != 0 {
		t.Fatalf("expected no flags, got %v", got.Flags)
	}
}

func TestFraudPhoneChecks(t *testing.T) {
	d := FraudDetector{Tables: gazetteer.Default()}

	cases := []struct {
		name     string
		phone    string
		score    int
		severity string
	}{
		{"too_long", "919876543210", 20, "high"},
		{"too_short", "98765", 20, "high"},
		{"bad_prefix", "5876543210", 15, "medium"},
		{"formatted_ok", "+91 9876543210", 20, "high"},
		{"valid", "9876543210", 0, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := d.Analyze(tc.phone, "", nil, 0, "", 0)
			if got.FraudRiskScore != tc.score {
				t.Fatalf("expected score %d, got %d", tc.score, got.FraudRiskScore)
			}
			if tc.score == 0 {
				if len(got.Flags) != 0 {
					t.Fatalf("expected no flags, got %v", got.Flags)
				}
				return
			}
			if len(got.Flags) != 1 {
				t.Fatalf("expected 1 flag, got %d", len(got.Flags))
			}
			if got.Flags[0].Check != "phone_invalid" || got.Flags[0].Severity != tc.severity {
				t.Fatalf("unexpected flag %+v", got.Flags[0])
			}
		})
	}
}

func TestFraudEmailCheck(t *testing.T) {
	d := FraudDetector{Tables: gazetteer.Default()}

	got := d.Analyze("", "not-an-email", nil, 0, "", 0)
	if got.FraudRiskScore != 15 {
		t.Fatalf("expected score 15, got %d", got.FraudRiskScore)
	}
	if len(got.Flags) != 1 || got.Flags[0].Check != "email_invalid" {
		t.Fatalf("unexpected flags %v", got.Flags)
	}
	if got.Flags[0].Message != "Invalid email format: not-an-email" {
		t.Fatalf("unexpected message %q", got.Flags[0].Message)
	}

	if got := d.Analyze("", "valid@example.com", nil, 0, "", 0); got.FraudRiskScore != 0 {
		t.Fatalf("valid email flagged: %+v", got)
	}
}

func TestFraudExcessiveSkills(t *testing.T) {
	d := FraudDetector{Tables: gazetteer.Default()}

	skills := make([]string, 51)
	for i := range skills {
		skills[i] = "skill"
	}
	got := d.Analyze("", "", skills, 0, "", 0)
	if got.FraudRiskScore != 15 {
		t.Fatalf("expected score 15, got %d", got.FraudRiskScore)
	}
	if len(got.Flags) != 1 || got.Flags[0].Check != "excessive_skills" {
		t.Fatalf("unexpected flags %v", got.Flags)
	}

	if got := d.Analyze("", "", skills[:50], 0, "", 0); got.FraudRiskScore != 0 {
		t.Fatalf("fifty skills flagged: %+v", got)
	}
}

func TestFraudExperienceAge(t *testing.T) {
	d := FraudDetector{Tables: gazetteer.Default()}

	cases := []struct {
		name  string
		years int
		age   int
		score int
	}{
		{"implausible", 10, 22, 25},
		{"exact_boundary", 4, 22, 0},
		{"plausible", 2, 30, 0},
		{"age_unknown", 10, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := d.Analyze("", "", nil, tc.years, "", tc.age)
			if got.FraudRiskScore != tc.score {
				t.Fatalf("expected score %d, got %d", tc.score, got.FraudRiskScore)
			}
		})
	}
}

func TestFraudSuspiciousKeywords(t *testing.T) {
	d := FraudDetector{Tables: gazetteer.Default()}

	text := "We guarantee job placement. Just pay fee upfront, no interview needed."
	got := d.Analyze("", "", nil, 0, text, 0)
	// Three keyword hits at 25 each, clamped to 100 only above it.
	if got.FraudRiskScore != 75 {
		t.Fatalf("expected score 75, got %d", got.FraudRiskScore)
	}
	if got.RiskLabel != RiskHigh {
		t.Fatalf("expected label %q, got %q", RiskHigh, got.RiskLabel)
	}
	if len(got.Flags) != 3 {
		t.Fatalf("expected 3 flags, got %d: %v", len(got.Flags), got.Flags)
	}
	for _, f := range got.Flags {
		if f.Check != "suspicious_keyword" || f.Severity != "high" {
			t.Fatalf("unexpected flag %+v", f)
		}
		if !strings.HasPrefix(f.Message, "Suspicious keyword detected: '") {
			t.Fatalf("unexpected message %q", f.Message)
		}
	}
}

func TestFraudScoreClamp(t *testing.T) {
	d := FraudDetector{Tables: gazetteer.Default()}

	text := strings.Join(gazetteer.Default().FraudKeywords, " ")
	got := d.Analyze("12345", "bad", nil, 0, text, 0)
	if got.FraudRiskScore != 100 {
		t.Fatalf("expected clamped score 100, got %d", got.FraudRiskScore)
	}
	if got.RiskLabel != RiskHigh {
		t.Fatalf("expected label %q, got %q", RiskHigh, got.RiskLabel)
	}
}

func TestRiskLabelBoundaries(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{0, RiskLow},
		{24, RiskLow},
		{25, RiskModerate},
		{49, RiskModerate},
		{50, RiskHigh},
		{100, RiskHigh},
	}
	for _, tc := range cases {
		if got := RiskLabelFor(tc.score); got != tc.want {
			t.Fatalf("score %d: expected %q, got %q", tc.score, tc.want, got)
		}
	}
}
