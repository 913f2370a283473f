// Package ranking orchestrates rule scoring over a candidate set and blends
// in an optional semantic similarity signal from an external collaborator.
package ranking

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cv-ranker/internal/scoring"
	"github.com/jonathan/cv-ranker/internal/types"
)

// SemanticSearch is the external embedding/vector-search collaborator. It
// returns similarity scores in [0,1] keyed by candidate id and may return a
// partial mapping; omitted ids mean "no opinion". Errors and timeouts are
// treated as total failure and degrade ranking to rule-only scoring.
type SemanticSearch interface {
	ScoreCandidates(ctx context.Context, queryText string, candidateIDs []string) (map[string]float64, error)
}

// DefaultSemanticTimeout bounds the single batched semantic call.
const DefaultSemanticTimeout = 5 * time.Second

// InvalidInputError signals a caller-contract violation detected before any
// scoring work. It is distinct from data-quality degradation, which is
// absorbed silently per candidate.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Message
}

// Engine ranks candidates against a job requirement.
type Engine struct {
	scorer          *scoring.Scorer
	semanticTimeout time.Duration
}

// NewEngine returns an Engine with the default semantic timeout.
func NewEngine(scorer *scoring.Scorer) *Engine {
	return NewEngineWithTimeout(scorer, DefaultSemanticTimeout)
}

// NewEngineWithTimeout returns an Engine with a custom semantic timeout.
func NewEngineWithTimeout(scorer *scoring.Scorer, semanticTimeout time.Duration) *Engine {
	if semanticTimeout <= 0 {
		semanticTimeout = DefaultSemanticTimeout
	}
	return &Engine{scorer: scorer, semanticTimeout: semanticTimeout}
}

// Rank scores every candidate against the job, optionally blends in semantic
// similarity, and returns the full ordering sorted by final score descending
// with deterministic tie-breaks (rule score descending, then candidate id
// ascending). Truncation to top-K is the caller's responsibility.
//
// Inputs are never mutated. Semantic enhancement is strictly best-effort:
// a failing or slow collaborator degrades the run to rule-only scoring and
// partial coverage never drops candidates from the result.
func (e *Engine) Rank(
	ctx context.Context,
	job *types.JobRequirement,
	candidates []*types.CandidateRecord,
	rubric types.ScoringRubric,
	semanticWeight float64,
	source SemanticSearch,
) ([]types.MatchResult, error) {
	if err := validateInputs(candidates, rubric, semanticWeight); err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return []types.MatchResult{}, nil
	}

	// Scoring a single candidate is pure, so the batch is an embarrassingly
	// parallel map into a preallocated slice.
	results := make([]types.MatchResult, len(candidates))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, candidate := range candidates {
		g.Go(func() error {
			results[i] = e.scorer.Score(candidate, job, rubric)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if semanticWeight > 0 && source != nil {
		e.blendSemanticScores(ctx, job, results, semanticWeight, source)
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].FinalScore != results[j].FinalScore {
			return results[i].FinalScore > results[j].FinalScore
		}
		if results[i].RuleScore != results[j].RuleScore {
			return results[i].RuleScore > results[j].RuleScore
		}
		return results[i].CandidateID < results[j].CandidateID
	})

	return results, nil
}

// blendSemanticScores performs the single batched collaborator call and
// interpolates final scores for the candidates it covers. Candidates the
// collaborator has no opinion on keep their rule score.
func (e *Engine) blendSemanticScores(ctx context.Context, job *types.JobRequirement, results []types.MatchResult, semanticWeight float64, source SemanticSearch) {
	ids := make([]string, len(results))
	for i, result := range results {
		ids[i] = result.CandidateID
	}

	queryText := job.Description
	if queryText == "" {
		queryText = job.Title
	}

	semCtx, cancel := context.WithTimeout(ctx, e.semanticTimeout)
	defer cancel()

	scores, err := source.ScoreCandidates(semCtx, queryText, ids)
	if err != nil {
		fmt.Printf("Warning: semantic scoring failed, continuing with rule-only ranking: %v\n", err)
		return
	}

	for i := range results {
		sem, ok := scores[results[i].CandidateID]
		if !ok {
			continue
		}
		sem = clamp01(sem)
		results[i].SemanticScore = &sem
		results[i].FinalScore = (1-semanticWeight)*results[i].RuleScore + semanticWeight*sem
	}
}

// validateInputs rejects caller-contract violations before any work is done.
func validateInputs(candidates []*types.CandidateRecord, rubric types.ScoringRubric, semanticWeight float64) error {
	if semanticWeight < 0 || semanticWeight > 1 {
		return &InvalidInputError{Message: fmt.Sprintf("semantic weight must be in [0,1], got %v", semanticWeight)}
	}
	if err := rubric.Validate(); err != nil {
		return &InvalidInputError{Message: err.Error()}
	}

	seen := make(map[string]bool, len(candidates))
	for _, candidate := range candidates {
		if candidate.ID == "" {
			return &InvalidInputError{Message: "candidate with empty id"}
		}
		if seen[candidate.ID] {
			return &InvalidInputError{Message: fmt.Sprintf("duplicate candidate id %q", candidate.ID)}
		}
		seen[candidate.ID] = true
	}
	return nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
