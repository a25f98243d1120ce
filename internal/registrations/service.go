package registrations

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"registration-backend/internal/extraction"
	"registration-backend/internal/scoring"
	"registration-backend/internal/shared/metrics"
	"registration-backend/internal/shared/storage/object"
	"registration-backend/internal/submission"
)

// Service contains business logic for registrations: intake, scoring,
// rescoring, edits and registry submission.
type Service struct {
	Repo     RegistrationsRepo
	Store    object.ObjectStore
	Pipeline *extraction.Pipeline
	Detector scoring.FraudDetector
	Registry *submission.Simulator

	// ExtractText pulls text from a stored upload. Wired to extract.Text in
	// bootstrap; injectable for tests.
	ExtractText func(ctx context.Context, store object.ObjectStore, fileKey, mimeType, fileName string) (string, error)
}

// CreateFromText runs the pipeline and both scorers over the given text and
// persists the result. Age 0 means not supplied.
func (s *Service) CreateFromText(ctx context.Context, userID, text string, age int) (Registration, error) {
	if userID == "" {
		return Registration{}, errors.New("user id required")
	}
	if strings.TrimSpace(text) == "" {
		return Registration{}, ErrInvalidInput
	}

	reg := Registration{
		ID:        uuid.NewString(),
		UserID:    userID,
		Source:    SourceText,
		Age:       age,
		CreatedAt: time.Now().UTC(),
	}
	reg.UpdatedAt = reg.CreatedAt
	s.extractAndScore(&reg, text)

	if err := s.Repo.Create(ctx, reg); err != nil {
		return Registration{}, err
	}
	return reg, nil
}

// CreateFromUpload stores the file, pulls its text and proceeds as
// CreateFromText. The stored object key is kept on the registration.
func (s *Service) CreateFromUpload(ctx context.Context, userID, fileName string, r io.Reader, age int) (Registration, error) {
	if userID == "" {
		return Registration{}, errors.New("user id required")
	}
	if fileName == "" {
		return Registration{}, ErrInvalidInput
	}

	storageKey, _, mimeType, err := s.Store.Save(ctx, userID, fileName, r)
	if err != nil {
		return Registration{}, err
	}

	text, err := s.ExtractText(ctx, s.Store, storageKey, mimeType, fileName)
	if err != nil {
		metrics.IncExtractionFailed()
		return Registration{}, err
	}
	if strings.TrimSpace(text) == "" {
		metrics.IncExtractionFailed()
		return Registration{}, ErrInvalidInput
	}

	reg := Registration{
		ID:         uuid.NewString(),
		UserID:     userID,
		Source:     SourceUpload,
		Age:        age,
		FileName:   fileName,
		StorageKey: storageKey,
		CreatedAt:  time.Now().UTC(),
	}
	reg.UpdatedAt = reg.CreatedAt
	s.extractAndScore(&reg, text)

	if err := s.Repo.Create(ctx, reg); err != nil {
		return Registration{}, err
	}
	return reg, nil
}

// Get returns one registration for the owner.
func (s *Service) Get(ctx context.Context, userID, id string) (Registration, error) {
	if userID == "" || id == "" {
		return Registration{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, userID, id)
}

// List returns registrations for a user, newest first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Registration, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

// Rescore recomputes both scores from the stored snapshot. A positive age
// replaces the stored one first.
func (s *Service) Rescore(ctx context.Context, userID, id string, age int) (Registration, error) {
	reg, err := s.Get(ctx, userID, id)
	if err != nil {
		return Registration{}, err
	}
	if age > 0 {
		reg.Age = age
	}
	s.score(&reg)
	reg.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, reg); err != nil {
		return Registration{}, err
	}
	return reg, nil
}

// UpdateRecord replaces the extracted record snapshot with user edits and
// recomputes both scores. The raw text is kept when the edit carries none.
func (s *Service) UpdateRecord(ctx context.Context, userID, id string, record extraction.ExtractedData) (Registration, error) {
	reg, err := s.Get(ctx, userID, id)
	if err != nil {
		return Registration{}, err
	}
	if record.RawText == "" {
		record.RawText = reg.Record.RawText
	}
	reg.Record = record
	s.score(&reg)
	reg.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, reg); err != nil {
		return Registration{}, err
	}
	return reg, nil
}

// Submit runs the registry submission simulator over the stored snapshot.
func (s *Service) Submit(ctx context.Context, userID, id string) (submission.Result, error) {
	reg, err := s.Get(ctx, userID, id)
	if err != nil {
		return submission.Result{}, err
	}
	res := s.Registry.Submit(reg.Record)
	if res.Success {
		metrics.IncSubmissionAccepted()
	} else {
		metrics.IncSubmissionRejected()
	}
	return res, nil
}

func (s *Service) extractAndScore(reg *Registration, text string) {
	metrics.IncExtractionStarted()
	start := metrics.NowMillis()
	reg.Record = s.Pipeline.Extract(text)
	metrics.ObserveExtractionDurationMs(metrics.NowMillis() - start)
	metrics.IncExtractionCompleted()
	s.score(reg)
}

func (s *Service) score(reg *Registration) {
	rec := reg.Record
	reg.Health = scoring.CalculateHealth(rec.Email, rec.Phone, len(rec.Education), len(rec.Experience), rec.Skills, rec.Location)
	reg.Fraud = s.Detector.Analyze(rec.Phone, rec.Email, rec.Skills, len(rec.Experience), rec.RawText, reg.Age)
}
