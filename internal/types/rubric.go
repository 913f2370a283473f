package types

import "fmt"

// Default rubric weights. They sum to 1 so the composite rule score stays in
// [0,1], but callers may choose any non-negative weights; the engine does not
// renormalize, so weights summing above 1 yield scores above 1.
const (
	DefaultMustHaveWeight   = 0.5
	DefaultNiceToHaveWeight = 0.2
	DefaultExperienceWeight = 0.2
	DefaultEducationWeight  = 0.1
)

// ScoringRubric holds the weights governing the contribution of each
// sub-score to the composite rule score.
type ScoringRubric struct {
	MustHaveWeight   float64 `json:"must_have_weight"`
	NiceToHaveWeight float64 `json:"nice_to_have_weight"`
	ExperienceWeight float64 `json:"experience_weight"`
	EducationWeight  float64 `json:"education_weight"`
}

// DefaultRubric returns a rubric with the default weights.
func DefaultRubric() ScoringRubric {
	return ScoringRubric{
		MustHaveWeight:   DefaultMustHaveWeight,
		NiceToHaveWeight: DefaultNiceToHaveWeight,
		ExperienceWeight: DefaultExperienceWeight,
		EducationWeight:  DefaultEducationWeight,
	}
}

// Validate rejects negative weights. Weights need not sum to 1.
func (r ScoringRubric) Validate() error {
	if r.MustHaveWeight < 0 {
		return fmt.Errorf("rubric error: must_have_weight must be non-negative, got %v", r.MustHaveWeight)
	}
	if r.NiceToHaveWeight < 0 {
		return fmt.Errorf("rubric error: nice_to_have_weight must be non-negative, got %v", r.NiceToHaveWeight)
	}
	if r.ExperienceWeight < 0 {
		return fmt.Errorf("rubric error: experience_weight must be non-negative, got %v", r.ExperienceWeight)
	}
	if r.EducationWeight < 0 {
		return fmt.Errorf("rubric error: education_weight must be non-negative, got %v", r.EducationWeight)
	}
	return nil
}
