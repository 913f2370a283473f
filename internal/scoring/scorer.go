// Package scoring implements the deterministic rule-based scoring of a
// candidate against a job requirement.
package scoring

import (
	"sort"
	"time"

	"github.com/jonathan/cv-ranker/internal/skills"
	"github.com/jonathan/cv-ranker/internal/types"
)

// Scorer computes rule scores. Scoring is pure: it never mutates its inputs
// and has no side effects, so a single Scorer is safe for concurrent use.
type Scorer struct {
	normalizer *skills.Normalizer
	now        func() time.Time
}

// NewScorer returns a Scorer using the given normalizer and the wall clock.
func NewScorer(normalizer *skills.Normalizer) *Scorer {
	return NewScorerWithClock(normalizer, time.Now)
}

// NewScorerWithClock returns a Scorer with an injected clock. Open-ended
// experience entries are measured against this clock, so tests inject a
// fixed time to make year estimates reproducible.
func NewScorerWithClock(normalizer *skills.Normalizer, now func() time.Time) *Scorer {
	return &Scorer{normalizer: normalizer, now: now}
}

// Score computes the rule-based MatchResult for one candidate against one
// job. It never fails: missing or unparseable candidate data degrades to the
// documented neutral or zero sub-score instead of an error. FinalScore is
// initialized to RuleScore; the ranking engine overwrites it when blending
// in a semantic score.
func (s *Scorer) Score(candidate *types.CandidateRecord, job *types.JobRequirement, rubric types.ScoringRubric) types.MatchResult {
	candidateSkills := s.skillSet(candidate.Skills)
	mustHave := s.normalizer.NormalizeAll(job.MustHaveSkills)
	niceToHave := s.normalizer.NormalizeAll(job.NiceToHaveSkills)

	mustScore, matchedMust, missingMust := scoreMustHave(candidateSkills, mustHave)
	niceScore, matchedNice := scoreNiceToHave(candidateSkills, niceToHave)

	estimatedYears := s.estimateYearsExperience(candidate.Experience)
	expScore := scoreExperience(estimatedYears, job.MinYearsExperience)

	eduScore, eduMatch := scoreEducation(candidate, job.RequiredEducation)

	ruleScore := rubric.MustHaveWeight*mustScore +
		rubric.NiceToHaveWeight*niceScore +
		rubric.ExperienceWeight*expScore +
		rubric.EducationWeight*eduScore

	return types.MatchResult{
		CandidateID:              candidate.ID,
		CandidateName:            candidate.Name,
		RuleScore:                ruleScore,
		FinalScore:               ruleScore,
		MustHaveScore:            mustScore,
		NiceToHaveScore:          niceScore,
		ExperienceScore:          expScore,
		EducationScore:           eduScore,
		MatchedMustHave:          matchedMust,
		MatchedNiceToHave:        matchedNice,
		MissingMustHave:          missingMust,
		EstimatedYearsExperience: estimatedYears,
		EducationMatch:           eduMatch,
	}
}

// skillSet normalizes candidate skills into a lookup set.
func (s *Scorer) skillSet(raw []string) map[string]bool {
	set := make(map[string]bool, len(raw))
	for _, skill := range s.normalizer.NormalizeAll(raw) {
		set[skill] = true
	}
	return set
}

// scoreMustHave returns |matched| / |required|, with matched and missing
// evidence lists sorted for stable output. An empty requirement set scores
// 1.0: there is nothing to fail.
func scoreMustHave(candidateSkills map[string]bool, required []string) (float64, []string, []string) {
	if len(required) == 0 {
		return 1.0, nil, nil
	}

	matched := make([]string, 0, len(required))
	missing := make([]string, 0)
	for _, skill := range required {
		if candidateSkills[skill] {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)

	return float64(len(matched)) / float64(len(required)), matched, missing
}

// scoreNiceToHave returns |matched| / |preferred|. Unlike must-have, an
// empty preferred set scores 0.0: nice-to-haves only ever add credit, so
// their absence from the JD is neutral rather than a free pass.
func scoreNiceToHave(candidateSkills map[string]bool, preferred []string) (float64, []string) {
	if len(preferred) == 0 {
		return 0.0, nil
	}

	matched := make([]string, 0, len(preferred))
	for _, skill := range preferred {
		if candidateSkills[skill] {
			matched = append(matched, skill)
		}
	}
	sort.Strings(matched)

	return float64(len(matched)) / float64(len(preferred)), matched
}

// scoreExperience compares estimated years against the JD minimum. More
// experience than required caps at 1.0 rather than rewarding indefinitely.
func scoreExperience(estimatedYears float64, minYears *float64) float64 {
	if minYears == nil || *minYears <= 0 {
		return 1.0
	}
	score := estimatedYears / *minYears
	if score > 1.0 {
		return 1.0
	}
	return score
}

// scoreEducation gates on the candidate's highest classified degree level.
// No requirement scores 1.0; a requirement with no classifiable candidate
// degree scores 0.0.
func scoreEducation(candidate *types.CandidateRecord, required types.DegreeLevel) (float64, bool) {
	if required == "" {
		return 1.0, true
	}
	if candidate.HighestDegree().AtLeast(required) {
		return 1.0, true
	}
	return 0.0, false
}
