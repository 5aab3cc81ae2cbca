package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Rick03098/recruitment-matcher/internal/types"
)

// PostgresStore implements Store over a PostgreSQL connection pool.
// Structured fields (skills, experience, contact, education detail) live in
// jsonb columns since their shapes vary by extraction path.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool and verifies it with a ping.
func Connect(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Save inserts one candidate record and returns its generated ID.
func (s *PostgresStore) Save(ctx context.Context, record types.CandidateRecord) (uuid.UUID, error) {
	skills, err := json.Marshal(record.Skills)
	if err != nil {
		return uuid.Nil, &StoreError{Op: "save", Cause: err}
	}
	detail, err := json.Marshal(recordDetail{
		Experience:      record.Experience,
		EducationDetail: record.EducationDetail,
		ContactDetail:   record.ContactDetail,
	})
	if err != nil {
		return uuid.Nil, &StoreError{Op: "save", Cause: err}
	}

	var id uuid.UUID
	err = s.pool.QueryRow(ctx,
		`INSERT INTO candidates
		   (name, title, skills, experience_years, education, contact, detail, raw_text_preview, source)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id`,
		record.Name, record.Title, skills, record.ExperienceYears,
		record.Education, record.Contact, detail, record.RawTextPreview, record.Source,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, &StoreError{Op: "save", Cause: err}
	}
	return id, nil
}

// FetchAll returns every stored candidate record in insertion order.
func (s *PostgresStore) FetchAll(ctx context.Context) ([]types.CandidateRecord, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT name, title, skills, experience_years, education, contact, detail, raw_text_preview, source
		 FROM candidates
		 ORDER BY created_at ASC`,
	)
	if err != nil {
		return nil, &StoreError{Op: "fetch", Cause: err}
	}
	defer rows.Close()

	records := make([]types.CandidateRecord, 0)
	for rows.Next() {
		var record types.CandidateRecord
		var skills, detail []byte
		if err := rows.Scan(
			&record.Name, &record.Title, &skills, &record.ExperienceYears,
			&record.Education, &record.Contact, &detail, &record.RawTextPreview, &record.Source,
		); err != nil {
			return nil, &StoreError{Op: "fetch", Cause: err}
		}
		if err := json.Unmarshal(skills, &record.Skills); err != nil {
			return nil, &StoreError{Op: "fetch", Cause: err}
		}
		var d recordDetail
		if err := json.Unmarshal(detail, &d); err != nil {
			return nil, &StoreError{Op: "fetch", Cause: err}
		}
		record.Experience = d.Experience
		record.EducationDetail = d.EducationDetail
		record.ContactDetail = d.ContactDetail
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, &StoreError{Op: "fetch", Cause: err}
	}
	return records, nil
}

// recordDetail groups the structured richer-path fields into one jsonb
// column.
type recordDetail struct {
	Experience      []types.ExperienceEntry `json:"experience,omitempty"`
	EducationDetail *types.EducationInfo    `json:"education_detail,omitempty"`
	ContactDetail   *types.ContactInfo      `json:"contact_detail,omitempty"`
}
