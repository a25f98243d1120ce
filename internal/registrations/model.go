package registrations

import (
	"time"

	"registration-backend/internal/extraction"
	"registration-backend/internal/scoring"
)

// Intake sources. Transcribed voice input arrives as plain text and is
// recorded as SourceText.
const (
	SourceText   = "text"
	SourceUpload = "upload"
)

// Registration is one candidate registration owned by a user: the extracted
// record snapshot plus the scores computed from it. Scores are always
// recomputed in full when the snapshot changes.
type Registration struct {
	ID         string
	UserID     string
	Source     string
	Age        int
	FileName   string
	StorageKey string
	Record     extraction.ExtractedData
	Health     scoring.HealthScore
	Fraud      scoring.FraudReport
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
