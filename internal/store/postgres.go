package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/cv-ranker/internal/types"
)

// PostgresStore persists records in PostgreSQL. Full documents are stored as
// JSONB so the schema does not have to chase the record shapes.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool and ensures the schema exists.
func Connect(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &PostgresStore{pool: pool}
	if err := s.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the connection pool
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *PostgresStore) ensureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS jobs (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			doc JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE TABLE IF NOT EXISTS candidates (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL DEFAULT '',
			doc JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// SaveJob upserts a job requirement keyed by its ID.
func (s *PostgresStore) SaveJob(ctx context.Context, job *types.JobRequirement) error {
	if job == nil || job.ID == "" {
		return fmt.Errorf("job must have an ID")
	}

	doc, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO jobs (id, title, doc)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (id) DO UPDATE SET title = $2, doc = $3, updated_at = NOW()`,
		job.ID, job.Title, doc,
	)
	if err != nil {
		return fmt.Errorf("failed to save job %s: %w", job.ID, err)
	}
	return nil
}

// GetJob retrieves a job requirement by ID, or *NotFoundError.
func (s *PostgresStore) GetJob(ctx context.Context, id string) (*types.JobRequirement, error) {
	var doc []byte
	err := s.pool.QueryRow(ctx, `SELECT doc FROM jobs WHERE id = $1`, id).Scan(&doc)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, &NotFoundError{Kind: "job", ID: id}
		}
		return nil, fmt.Errorf("failed to get job %s: %w", id, err)
	}

	var job types.JobRequirement
	if err := json.Unmarshal(doc, &job); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job %s: %w", id, err)
	}
	return &job, nil
}

// ListJobs retrieves all jobs ordered by ID.
func (s *PostgresStore) ListJobs(ctx context.Context) ([]*types.JobRequirement, error) {
	rows, err := s.pool.Query(ctx, `SELECT doc FROM jobs ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*types.JobRequirement
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		var job types.JobRequirement
		if err := json.Unmarshal(doc, &job); err != nil {
			return nil, fmt.Errorf("failed to unmarshal job: %w", err)
		}
		jobs = append(jobs, &job)
	}
	return jobs, rows.Err()
}

// SaveCandidate upserts a candidate record keyed by its ID.
func (s *PostgresStore) SaveCandidate(ctx context.Context, candidate *types.CandidateRecord) error {
	if candidate == nil || candidate.ID == "" {
		return fmt.Errorf("candidate must have an ID")
	}

	doc, err := json.Marshal(candidate)
	if err != nil {
		return fmt.Errorf("failed to marshal candidate: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO candidates (id, name, doc)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (id) DO UPDATE SET name = $2, doc = $3, updated_at = NOW()`,
		candidate.ID, candidate.Name, doc,
	)
	if err != nil {
		return fmt.Errorf("failed to save candidate %s: %w", candidate.ID, err)
	}
	return nil
}

// GetCandidate retrieves a candidate record by ID, or *NotFoundError.
func (s *PostgresStore) GetCandidate(ctx context.Context, id string) (*types.CandidateRecord, error) {
	var doc []byte
	err := s.pool.QueryRow(ctx, `SELECT doc FROM candidates WHERE id = $1`, id).Scan(&doc)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, &NotFoundError{Kind: "candidate", ID: id}
		}
		return nil, fmt.Errorf("failed to get candidate %s: %w", id, err)
	}

	var candidate types.CandidateRecord
	if err := json.Unmarshal(doc, &candidate); err != nil {
		return nil, fmt.Errorf("failed to unmarshal candidate %s: %w", id, err)
	}
	return &candidate, nil
}

// ListCandidates retrieves all candidates ordered by ID.
func (s *PostgresStore) ListCandidates(ctx context.Context) ([]*types.CandidateRecord, error) {
	rows, err := s.pool.Query(ctx, `SELECT doc FROM candidates ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var candidates []*types.CandidateRecord
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		var candidate types.CandidateRecord
		if err := json.Unmarshal(doc, &candidate); err != nil {
			return nil, fmt.Errorf("failed to unmarshal candidate: %w", err)
		}
		candidates = append(candidates, &candidate)
	}
	return candidates, rows.Err()
}

// DeleteCandidate removes a candidate record.
func (s *PostgresStore) DeleteCandidate(ctx context.Context, id string) error {
	result, err := s.pool.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete candidate %s: %w", id, err)
	}
	if result.RowsAffected() == 0 {
		return &NotFoundError{Kind: "candidate", ID: id}
	}
	return nil
}
