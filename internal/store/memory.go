package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/jonathan/cv-ranker/internal/types"
)

// MemoryStore is an in-process Store used by the CLI when no database is
// configured, and by tests. Records are deep-copied on the way in and out so
// callers cannot mutate stored state.
type MemoryStore struct {
	mu         sync.RWMutex
	jobs       map[string]*types.JobRequirement
	candidates map[string]*types.CandidateRecord
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		jobs:       make(map[string]*types.JobRequirement),
		candidates: make(map[string]*types.CandidateRecord),
	}
}

// SaveJob stores a job requirement, overwriting any record with the same ID.
func (s *MemoryStore) SaveJob(_ context.Context, job *types.JobRequirement) error {
	if job == nil || job.ID == "" {
		return fmt.Errorf("job must have an ID")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = copyJob(job)
	return nil
}

// GetJob returns the job with the given ID, or *NotFoundError.
func (s *MemoryStore) GetJob(_ context.Context, id string) (*types.JobRequirement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, ok := s.jobs[id]
	if !ok {
		return nil, &NotFoundError{Kind: "job", ID: id}
	}
	return copyJob(job), nil
}

// ListJobs returns all stored jobs ordered by ID.
func (s *MemoryStore) ListJobs(_ context.Context) ([]*types.JobRequirement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	jobs := make([]*types.JobRequirement, 0, len(s.jobs))
	for _, job := range s.jobs {
		jobs = append(jobs, copyJob(job))
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].ID < jobs[j].ID })
	return jobs, nil
}

// SaveCandidate stores a candidate record, overwriting any record with the
// same ID.
func (s *MemoryStore) SaveCandidate(_ context.Context, candidate *types.CandidateRecord) error {
	if candidate == nil || candidate.ID == "" {
		return fmt.Errorf("candidate must have an ID")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.candidates[candidate.ID] = copyCandidate(candidate)
	return nil
}

// GetCandidate returns the candidate with the given ID, or *NotFoundError.
func (s *MemoryStore) GetCandidate(_ context.Context, id string) (*types.CandidateRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	candidate, ok := s.candidates[id]
	if !ok {
		return nil, &NotFoundError{Kind: "candidate", ID: id}
	}
	return copyCandidate(candidate), nil
}

// ListCandidates returns all stored candidates ordered by ID.
func (s *MemoryStore) ListCandidates(_ context.Context) ([]*types.CandidateRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	candidates := make([]*types.CandidateRecord, 0, len(s.candidates))
	for _, candidate := range s.candidates {
		candidates = append(candidates, copyCandidate(candidate))
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].ID < candidates[j].ID })
	return candidates, nil
}

// DeleteCandidate removes a candidate record.
func (s *MemoryStore) DeleteCandidate(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.candidates[id]; !ok {
		return &NotFoundError{Kind: "candidate", ID: id}
	}
	delete(s.candidates, id)
	return nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() {}

func copyJob(job *types.JobRequirement) *types.JobRequirement {
	clone := *job
	clone.MustHaveSkills = append([]string(nil), job.MustHaveSkills...)
	clone.NiceToHaveSkills = append([]string(nil), job.NiceToHaveSkills...)
	if job.MinYearsExperience != nil {
		years := *job.MinYearsExperience
		clone.MinYearsExperience = &years
	}
	return &clone
}

func copyCandidate(candidate *types.CandidateRecord) *types.CandidateRecord {
	clone := *candidate
	clone.Skills = append([]string(nil), candidate.Skills...)
	clone.Education = append([]types.EducationEntry(nil), candidate.Education...)
	clone.Experience = append([]types.ExperienceEntry(nil), candidate.Experience...)
	for i, edu := range candidate.Education {
		if edu.GraduationYear != nil {
			year := *edu.GraduationYear
			clone.Education[i].GraduationYear = &year
		}
	}
	return &clone
}
