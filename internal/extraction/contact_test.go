package extraction

import (
	"testing"

	"registration-backend/internal/gazetteer"
)

func TestContactEmail(t *testing.T) {
	e := ContactExtractor{Tables: gazetteer.Default()}

	cases := []struct {
		name     string
		text     string
		expected string
	}{
		{"labeled", "Email: rahul.kumar@example.com\nPhone: 9876543210", "rahul.kumar@example.com"},
		{"inline", "reach me at priya.sharma@techmail.com today", "priya.sharma@techmail.com"},
		{"first_of_many", "a@x.com b@y.org", "a@x.com"},
		{"absent", "no contact details here", ""},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := e.Email(tc.text); got != tc.expected {
				t.Fatalf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestContactPhone(t *testing.T) {
	e := ContactExtractor{Tables: gazetteer.Default()}

	cases := []struct {
		name     string
		text     string
		expected string
	}{
		{"bare", "Phone: 9876543210", "9876543210"},
		{"country_code", "call +919876543210 anytime", "9876543210"},
		{"invalid_prefix", "number 1234567890", ""},
		{"too_short", "ext 98765", ""},
		{"absent", "no phone", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := e.Phone(tc.text); got != tc.expected {
				t.Fatalf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}
