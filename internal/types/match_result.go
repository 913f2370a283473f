package types

// MatchResult is the outcome of scoring one candidate against one job.
// Results are produced fresh per ranking call and never mutated afterwards.
// Every score carries the evidence that produced it so rankings remain
// explainable to the reader.
type MatchResult struct {
	CandidateID   string `json:"candidate_id"`
	CandidateName string `json:"candidate_name,omitempty"`

	// RuleScore is the weighted sum of the four sub-scores, pre-blend.
	RuleScore float64 `json:"rule_score"`

	// SemanticScore is nil when the semantic collaborator was unavailable
	// or returned no opinion for this candidate.
	SemanticScore *float64 `json:"semantic_score,omitempty"`

	// FinalScore is the post-blend score; equals RuleScore when no
	// semantic score was available.
	FinalScore float64 `json:"final_score"`

	// Sub-scores, each in [0,1].
	MustHaveScore   float64 `json:"must_have_score"`
	NiceToHaveScore float64 `json:"nice_to_have_score"`
	ExperienceScore float64 `json:"experience_score"`
	EducationScore  float64 `json:"education_score"`

	// Skill evidence, sorted for stable output.
	MatchedMustHave   []string `json:"matched_must_have"`
	MatchedNiceToHave []string `json:"matched_nice_to_have"`
	MissingMustHave   []string `json:"missing_must_have"`

	EstimatedYearsExperience float64 `json:"estimated_years_experience"`
	EducationMatch           bool    `json:"education_match"`
}
