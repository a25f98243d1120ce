package registrations

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"registration-backend/internal/extraction"
	"registration-backend/internal/scoring"
)

func pgTestRegistration() Registration {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return Registration{
		ID:     "reg-1",
		UserID: "user-1",
		Source: SourceText,
		Age:    25,
		Record: extraction.ExtractedData{
			FullName:   "Rahul Kumar",
			Email:      "rahul@example.com",
			Phone:      "9876543210",
			Location:   "Hyderabad",
			Education:  []extraction.Education{},
			Experience: []extraction.Experience{},
			Skills:     []string{"python"},
		},
		Health:    scoring.HealthScore{TotalScore: 64, EmailPresent: true, PhonePresent: true, SkillsCount: 1, AddressDetected: true, Suggestions: []string{}},
		Fraud:     scoring.FraudReport{FraudRiskScore: 0, RiskLabel: scoring.RiskLow, Flags: []scoring.FraudFlag{}},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestPGRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	reg := pgTestRegistration()

	mock.ExpectExec("INSERT INTO registrations").
		WithArgs(
			reg.ID,
			reg.UserID,
			reg.Source,
			reg.Age,
			nil,              // file_name
			nil,              // storage_key
			sqlmock.AnyArg(), // record
			sqlmock.AnyArg(), // health
			sqlmock.AnyArg(), // fraud
			reg.CreatedAt,
			reg.UpdatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), reg); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoCreateUpload(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	reg := pgTestRegistration()
	reg.Source = SourceUpload
	reg.FileName = "resume.pdf"
	reg.StorageKey = "abc/def_resume.pdf"

	mock.ExpectExec("INSERT INTO registrations").
		WithArgs(
			reg.ID,
			reg.UserID,
			reg.Source,
			reg.Age,
			reg.FileName,
			reg.StorageKey,
			sqlmock.AnyArg(),
			sqlmock.AnyArg(),
			sqlmock.AnyArg(),
			reg.CreatedAt,
			reg.UpdatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), reg); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func registrationColumns() []string {
	return []string{"id", "user_id", "source", "age", "file_name", "storage_key", "record", "health", "fraud", "created_at", "updated_at"}
}

func TestPGRepoGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	reg := pgTestRegistration()

	record, _ := json.Marshal(reg.Record)
	health, _ := json.Marshal(reg.Health)
	fraud, _ := json.Marshal(reg.Fraud)

	rows := sqlmock.NewRows(registrationColumns()).
		AddRow(reg.ID, reg.UserID, reg.Source, reg.Age, nil, nil, record, health, fraud, reg.CreatedAt, reg.UpdatedAt)

	mock.ExpectQuery("SELECT (.+) FROM registrations").
		WithArgs(reg.UserID, reg.ID).
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), reg.UserID, reg.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Record.FullName != "Rahul Kumar" {
		t.Fatalf("full name = %q", got.Record.FullName)
	}
	if got.Health.TotalScore != 64 {
		t.Fatalf("health = %d", got.Health.TotalScore)
	}
	if got.FileName != "" {
		t.Fatalf("file name should be empty, got %q", got.FileName)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectQuery("SELECT (.+) FROM registrations").
		WithArgs("user-1", "missing").
		WillReturnRows(sqlmock.NewRows(registrationColumns()))

	if _, err := repo.GetByID(context.Background(), "user-1", "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNormalizesNilSequences(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	reg := pgTestRegistration()

	rows := sqlmock.NewRows(registrationColumns()).
		AddRow(reg.ID, reg.UserID, reg.Source, reg.Age, nil, nil, []byte(`{}`), []byte(`{}`), []byte(`{}`), reg.CreatedAt, reg.UpdatedAt)

	mock.ExpectQuery("SELECT (.+) FROM registrations").
		WithArgs(reg.UserID, reg.ID).
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), reg.UserID, reg.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Record.Education == nil || got.Record.Experience == nil || got.Record.Skills == nil {
		t.Fatalf("record sequences not normalized: %+v", got.Record)
	}
	if got.Health.Suggestions == nil {
		t.Fatalf("suggestions not normalized")
	}
	if got.Fraud.Flags == nil {
		t.Fatalf("flags not normalized")
	}
}

func TestPGRepoListByUserClampsLimit(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectQuery("SELECT (.+) FROM registrations").
		WithArgs("user-1", 100, 0).
		WillReturnRows(sqlmock.NewRows(registrationColumns()))

	regs, err := repo.ListByUser(context.Background(), "user-1", 500, -3)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(regs) != 0 {
		t.Fatalf("len = %d, want 0", len(regs))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoUpdate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	reg := pgTestRegistration()

	mock.ExpectExec("UPDATE registrations").
		WithArgs(reg.Age, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), reg.UpdatedAt, reg.UserID, reg.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Update(context.Background(), reg); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoUpdateNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	reg := pgTestRegistration()

	mock.ExpectExec("UPDATE registrations").
		WithArgs(reg.Age, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), reg.UpdatedAt, reg.UserID, reg.ID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Update(context.Background(), reg); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
