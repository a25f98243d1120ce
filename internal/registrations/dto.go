package registrations

import (
	"time"

	"registration-backend/internal/extraction"
	"registration-backend/internal/scoring"
)

// RegistrationResponse is the outward-facing representation of a
// registration. The record and both reports keep their contract JSON keys.
type RegistrationResponse struct {
	RegistrationID string                   `json:"registrationId"`
	Source         string                   `json:"source"`
	Age            int                      `json:"age,omitempty"`
	FileName       string                   `json:"fileName,omitempty"`
	Record         extraction.ExtractedData `json:"record"`
	HealthScore    scoring.HealthScore      `json:"healthScore"`
	FraudReport    scoring.FraudReport      `json:"fraudReport"`
	CreatedAt      time.Time                `json:"createdAt"`
	UpdatedAt      time.Time                `json:"updatedAt"`
}

func toResponse(reg Registration) RegistrationResponse {
	record := reg.Record
	record.RawText = "" // raw text is stored, not echoed
	return RegistrationResponse{
		RegistrationID: reg.ID,
		Source:         reg.Source,
		Age:            reg.Age,
		FileName:       reg.FileName,
		Record:         record,
		HealthScore:    reg.Health,
		FraudReport:    reg.Fraud,
		CreatedAt:      reg.CreatedAt,
		UpdatedAt:      reg.UpdatedAt,
	}
}
