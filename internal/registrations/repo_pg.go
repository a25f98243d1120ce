package registrations

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"registration-backend/internal/extraction"
	"registration-backend/internal/scoring"
)

// PGRepo implements RegistrationsRepo using Postgres. The record snapshot
// and both score reports are stored as JSONB; they are read and written
// whole, never queried into.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new registration.
func (r *PGRepo) Create(ctx context.Context, reg Registration) error {
	const query = `
INSERT INTO registrations (
    id,
    user_id,
    source,
    age,
    file_name,
    storage_key,
    record,
    health,
    fraud,
    created_at,
    updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	record, health, fraud, err := marshalSnapshots(reg)
	if err != nil {
		return err
	}

	var fileName sql.NullString
	if reg.FileName != "" {
		fileName = sql.NullString{String: reg.FileName, Valid: true}
	}
	var storageKey sql.NullString
	if reg.StorageKey != "" {
		storageKey = sql.NullString{String: reg.StorageKey, Valid: true}
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		reg.ID,
		reg.UserID,
		reg.Source,
		reg.Age,
		fileName,
		storageKey,
		record,
		health,
		fraud,
		reg.CreatedAt,
		reg.UpdatedAt,
	)
	return err
}

// GetByID fetches a registration by ID for a user.
func (r *PGRepo) GetByID(ctx context.Context, userID, id string) (Registration, error) {
	const query = `
SELECT id, user_id, source, age, file_name, storage_key, record, health, fraud, created_at, updated_at
FROM registrations
WHERE user_id = $1 AND id = $2
LIMIT 1`

	row := r.DB.QueryRowContext(ctx, query, userID, id)
	reg, err := scanRegistration(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Registration{}, ErrNotFound
		}
		return Registration{}, err
	}
	return reg, nil
}

// ListByUser lists registrations ordered newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Registration, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, user_id, source, age, file_name, storage_key, record, health, fraud, created_at, updated_at
FROM registrations
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Registration
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, reg)
	}
	return out, rows.Err()
}

// Update rewrites the snapshot, scores, age and updated_at for a stored
// registration.
func (r *PGRepo) Update(ctx context.Context, reg Registration) error {
	const query = `
UPDATE registrations
SET age = $1, record = $2, health = $3, fraud = $4, updated_at = $5
WHERE user_id = $6 AND id = $7`

	record, health, fraud, err := marshalSnapshots(reg)
	if err != nil {
		return err
	}

	res, err := r.DB.ExecContext(ctx, query, reg.Age, record, health, fraud, reg.UpdatedAt, reg.UserID, reg.ID)
	if err != nil {
		return err
	}
	updated, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if updated == 0 {
		return ErrNotFound
	}
	return nil
}

func marshalSnapshots(reg Registration) ([]byte, []byte, []byte, error) {
	record, err := json.Marshal(reg.Record)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("marshal record: %w", err)
	}
	health, err := json.Marshal(reg.Health)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("marshal health: %w", err)
	}
	fraud, err := json.Marshal(reg.Fraud)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("marshal fraud: %w", err)
	}
	return record, health, fraud, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRegistration(row rowScanner) (Registration, error) {
	var reg Registration
	var fileName sql.NullString
	var storageKey sql.NullString
	var record, health, fraud []byte

	if err := row.Scan(
		&reg.ID,
		&reg.UserID,
		&reg.Source,
		&reg.Age,
		&fileName,
		&storageKey,
		&record,
		&health,
		&fraud,
		&reg.CreatedAt,
		&reg.UpdatedAt,
	); err != nil {
		return Registration{}, err
	}

	if fileName.Valid {
		reg.FileName = fileName.String
	}
	if storageKey.Valid {
		reg.StorageKey = storageKey.String
	}
	if err := json.Unmarshal(record, &reg.Record); err != nil {
		return Registration{}, fmt.Errorf("unmarshal record: %w", err)
	}
	reg.Record.Education = ensureEducation(reg.Record.Education)
	reg.Record.Experience = ensureExperience(reg.Record.Experience)
	reg.Record.Skills = ensureStrings(reg.Record.Skills)
	if err := json.Unmarshal(health, &reg.Health); err != nil {
		return Registration{}, fmt.Errorf("unmarshal health: %w", err)
	}
	if reg.Health.Suggestions == nil {
		reg.Health.Suggestions = []string{}
	}
	if err := json.Unmarshal(fraud, &reg.Fraud); err != nil {
		return Registration{}, fmt.Errorf("unmarshal fraud: %w", err)
	}
	if reg.Fraud.Flags == nil {
		reg.Fraud.Flags = []scoring.FraudFlag{}
	}
	return reg, nil
}

func ensureEducation(in []extraction.Education) []extraction.Education {
	if in == nil {
		return []extraction.Education{}
	}
	return in
}

func ensureExperience(in []extraction.Experience) []extraction.Experience {
	if in == nil {
		return []extraction.Experience{}
	}
	return in
}

func ensureStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

var _ RegistrationsRepo = (*PGRepo)(nil)
