// Package submission builds the registry payload for an extracted record and
// simulates the DEET (Digital Employment Exchange of Telangana) submission
// call. The real registry is an external collaborator; this package owns the
// payload shape and the validation the registry would apply.
package submission

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"registration-backend/internal/extraction"
)

const registrationSource = "DEET_SMART_REGISTRATION"

// Payload is the flat JSON object the registry accepts. Key names mirror the
// ExtractedData contract plus submission metadata.
type Payload struct {
	FullName           string                  `json:"full_name"`
	Email              string                  `json:"email"`
	Phone              string                  `json:"phone"`
	Location           string                  `json:"location"`
	Education          []extraction.Education  `json:"education"`
	Experience         []extraction.Experience `json:"experience"`
	Skills             []string                `json:"skills"`
	RegistrationSource string                  `json:"registration_source"`
	Timestamp          string                  `json:"timestamp"`
}

// Result is the outcome of one simulated submission.
type Result struct {
	Success      bool    `json:"success"`
	Message      string  `json:"message"`
	SubmissionID string  `json:"submission_id"`
	Timestamp    string  `json:"timestamp"`
	Payload      Payload `json:"payload"`
}

// Simulator produces payloads and simulated registry outcomes.
type Simulator struct {
	now func() time.Time
}

// NewSimulator builds a Simulator using wall-clock time.
func NewSimulator() *Simulator {
	return &Simulator{now: time.Now}
}

// NewSimulatorAt builds a Simulator with a fixed clock, for tests.
func NewSimulatorAt(now func() time.Time) *Simulator {
	return &Simulator{now: now}
}

// BuildPayload maps the extracted record into the registry payload shape.
// Nil sequences become empty slices; the registry rejects nulls.
func (s *Simulator) BuildPayload(data extraction.ExtractedData) Payload {
	education := data.Education
	if education == nil {
		education = []extraction.Education{}
	}
	experience := data.Experience
	if experience == nil {
		experience = []extraction.Experience{}
	}
	skills := data.Skills
	if skills == nil {
		skills = []string{}
	}
	return Payload{
		FullName:           data.FullName,
		Email:              data.Email,
		Phone:              data.Phone,
		Location:           data.Location,
		Education:          education,
		Experience:         experience,
		Skills:             skills,
		RegistrationSource: registrationSource,
		Timestamp:          s.now().UTC().Format(time.RFC3339),
	}
}

// Validate applies the registry's required-field rules: full_name, email and
// phone must be present.
func (s *Simulator) Validate(p Payload) error {
	for _, field := range []struct {
		name  string
		value string
	}{
		{"full_name", p.FullName},
		{"email", p.Email},
		{"phone", p.Phone},
	} {
		if strings.TrimSpace(field.value) == "" {
			return fmt.Errorf("missing required field: %s", field.name)
		}
	}
	return nil
}

// Submit validates the payload and returns the simulated outcome. Invalid
// payloads produce an unsuccessful Result, never an error; the payload is
// echoed either way for display.
func (s *Simulator) Submit(data extraction.ExtractedData) Result {
	payload := s.BuildPayload(data)
	ts := s.now().UTC().Format(time.RFC3339)

	if err := s.Validate(payload); err != nil {
		return Result{
			Success:   false,
			Message:   err.Error(),
			Timestamp: ts,
			Payload:   payload,
		}
	}

	return Result{
		Success:      true,
		Message:      "Registration submitted successfully to DEET",
		SubmissionID: newSubmissionID(),
		Timestamp:    ts,
		Payload:      payload,
	}
}

// newSubmissionID mimics the registry's id format: DEET- followed by twelve
// uppercase hex characters.
func newSubmissionID() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "DEET-" + strings.ToUpper(hex[:12])
}
