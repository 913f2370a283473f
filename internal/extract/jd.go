// Package extract turns free-text job descriptions and resumes into the
// structured records consumed by scoring. Extraction is LLM-backed: the model
// returns JSON, which is schema-validated and then normalized so both sides
// of a match share one skill vocabulary.
package extract

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/cv-ranker/internal/llm"
	"github.com/jonathan/cv-ranker/internal/prompts"
	"github.com/jonathan/cv-ranker/internal/schemas"
	"github.com/jonathan/cv-ranker/internal/skills"
	"github.com/jonathan/cv-ranker/internal/types"
)

// JDExtractor extracts a structured JobRequirement from raw job posting text.
type JDExtractor interface {
	ExtractJobRequirement(ctx context.Context, jobText string) (*types.JobRequirement, error)
}

// GeminiJDExtractor implements JDExtractor on top of an LLM client.
type GeminiJDExtractor struct {
	client     llm.Client
	normalizer *skills.Normalizer
}

// NewJDExtractor creates a JD extractor. A nil normalizer falls back to the
// default canonical skill table.
func NewJDExtractor(client llm.Client, normalizer *skills.Normalizer) *GeminiJDExtractor {
	if normalizer == nil {
		normalizer = skills.NewNormalizer()
	}
	return &GeminiJDExtractor{client: client, normalizer: normalizer}
}

// jobRequirementDoc mirrors the JSON shape the extraction prompt asks for.
type jobRequirementDoc struct {
	Title              string   `json:"title"`
	MustHaveSkills     []string `json:"must_have_skills"`
	NiceToHaveSkills   []string `json:"nice_to_have_skills"`
	MinYearsExperience *float64 `json:"min_years_experience"`
	RequiredEducation  string   `json:"required_education"`
}

// ExtractJobRequirement parses jobText into a normalized JobRequirement.
// The raw text is preserved in the Description field for semantic search.
func (e *GeminiJDExtractor) ExtractJobRequirement(ctx context.Context, jobText string) (*types.JobRequirement, error) {
	if strings.TrimSpace(jobText) == "" {
		return nil, &InputError{Message: "job text is empty"}
	}

	template := prompts.MustGet("extraction.json", "extract-job-requirement")
	prompt := prompts.Format(template, map[string]string{
		"JobText": jobText,
	})

	raw, err := e.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &APICallError{
			Message: "failed to extract job requirement",
			Cause:   err,
		}
	}

	if err := schemas.Validate(schemas.JobRequirementSchema, raw); err != nil {
		return nil, &ParseError{
			Message: "job requirement response failed schema validation",
			Cause:   err,
		}
	}

	var doc jobRequirementDoc
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, &ParseError{
			Message: "failed to parse job requirement JSON",
			Cause:   err,
		}
	}

	job := &types.JobRequirement{
		ID:                 uuid.NewString(),
		Title:              strings.TrimSpace(doc.Title),
		MustHaveSkills:     e.normalizer.NormalizeAll(doc.MustHaveSkills),
		NiceToHaveSkills:   e.normalizer.NormalizeAll(doc.NiceToHaveSkills),
		MinYearsExperience: doc.MinYearsExperience,
		RequiredEducation:  types.DegreeLevelFromText(doc.RequiredEducation),
		Description:        jobText,
	}
	job.DedupeSkills()

	return job, nil
}
