package extraction

import (
	"strings"

	"registration-backend/internal/gazetteer"
)

// ContactExtractor pulls email and phone from raw text.
type ContactExtractor struct {
	Tables *gazetteer.Tables
}

// Email returns the first substring matching the email pattern, or "".
func (e ContactExtractor) Email(text string) string {
	return e.Tables.Email.FindString(text)
}

// Phone returns the first Indian mobile number found, with any "+91" country
// code and surrounding whitespace stripped, or "".
func (e ContactExtractor) Phone(text string) string {
	match := e.Tables.Phone.FindString(text)
	if match == "" {
		return ""
	}
	return strings.TrimSpace(strings.ReplaceAll(match, "+91", ""))
}
