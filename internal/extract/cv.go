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

// CVExtractor extracts a structured CandidateRecord from raw resume text.
type CVExtractor interface {
	// ExtractCandidate parses resumeText. The id becomes the record's stable
	// identifier; pass "" to have one generated.
	ExtractCandidate(ctx context.Context, resumeText, id string) (*types.CandidateRecord, error)
}

// GeminiCVExtractor implements CVExtractor on top of an LLM client.
type GeminiCVExtractor struct {
	client     llm.Client
	normalizer *skills.Normalizer
}

// NewCVExtractor creates a CV extractor. A nil normalizer falls back to the
// default canonical skill table.
func NewCVExtractor(client llm.Client, normalizer *skills.Normalizer) *GeminiCVExtractor {
	if normalizer == nil {
		normalizer = skills.NewNormalizer()
	}
	return &GeminiCVExtractor{client: client, normalizer: normalizer}
}

// candidateDoc mirrors the JSON shape the extraction prompt asks for.
type candidateDoc struct {
	Name      string   `json:"name"`
	Summary   string   `json:"summary"`
	Skills    []string `json:"skills"`
	Education []struct {
		Institution    string `json:"institution"`
		Degree         string `json:"degree"`
		GraduationYear *int   `json:"graduation_year"`
	} `json:"education"`
	Experience []struct {
		Title     string `json:"title"`
		Company   string `json:"company"`
		StartDate string `json:"start_date"`
		EndDate   string `json:"end_date"`
	} `json:"experience"`
}

// ExtractCandidate parses resumeText into a normalized CandidateRecord.
// Resumes use the lite tier: the extraction is verbatim copying, not
// reasoning, and a candidate batch means many calls.
func (e *GeminiCVExtractor) ExtractCandidate(ctx context.Context, resumeText, id string) (*types.CandidateRecord, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, &InputError{Message: "resume text is empty"}
	}
	if id == "" {
		id = uuid.NewString()
	}

	template := prompts.MustGet("extraction.json", "extract-candidate-record")
	prompt := prompts.Format(template, map[string]string{
		"ResumeText": resumeText,
	})

	raw, err := e.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, &APICallError{
			Message: "failed to extract candidate record",
			Cause:   err,
		}
	}

	if err := schemas.Validate(schemas.CandidateRecordSchema, raw); err != nil {
		return nil, &ParseError{
			Message: "candidate response failed schema validation",
			Cause:   err,
		}
	}

	var doc candidateDoc
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, &ParseError{
			Message: "failed to parse candidate JSON",
			Cause:   err,
		}
	}

	candidate := &types.CandidateRecord{
		ID:      id,
		Name:    strings.TrimSpace(doc.Name),
		Skills:  e.normalizer.NormalizeAll(doc.Skills),
		Summary: strings.TrimSpace(doc.Summary),
	}

	for _, edu := range doc.Education {
		candidate.Education = append(candidate.Education, types.EducationEntry{
			Institution:    strings.TrimSpace(edu.Institution),
			DegreeLevel:    types.DegreeLevelFromText(edu.Degree),
			RawDegree:      strings.TrimSpace(edu.Degree),
			GraduationYear: edu.GraduationYear,
		})
	}

	for _, exp := range doc.Experience {
		candidate.Experience = append(candidate.Experience, types.ExperienceEntry{
			Title:     strings.TrimSpace(exp.Title),
			Company:   strings.TrimSpace(exp.Company),
			StartDate: strings.TrimSpace(exp.StartDate),
			EndDate:   strings.TrimSpace(exp.EndDate),
		})
	}

	return candidate, nil
}
