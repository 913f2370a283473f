// Package store persists extracted job requirements and candidate records
// between extraction and ranking runs.
package store

import (
	"context"
	"fmt"

	"github.com/jonathan/cv-ranker/internal/types"
)

// Store is the persistence interface shared by the in-memory and PostgreSQL
// implementations. Records are written once by extraction and read many times
// by ranking; Save overwrites any existing record with the same ID.
type Store interface {
	SaveJob(ctx context.Context, job *types.JobRequirement) error
	GetJob(ctx context.Context, id string) (*types.JobRequirement, error)
	ListJobs(ctx context.Context) ([]*types.JobRequirement, error)

	SaveCandidate(ctx context.Context, candidate *types.CandidateRecord) error
	GetCandidate(ctx context.Context, id string) (*types.CandidateRecord, error)
	ListCandidates(ctx context.Context) ([]*types.CandidateRecord, error)

	DeleteCandidate(ctx context.Context, id string) error

	Close()
}

// NotFoundError is returned when a record does not exist.
type NotFoundError struct {
	Kind string // "job" or "candidate"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}
