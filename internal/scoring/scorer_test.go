package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/cv-ranker/internal/skills"
	"github.com/jonathan/cv-ranker/internal/types"
)

// fixedNow pins the clock so experience estimates are reproducible.
var fixedNow = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

func newTestScorer() *Scorer {
	return NewScorerWithClock(skills.NewNormalizer(), func() time.Time { return fixedNow })
}

func floatPtr(v float64) *float64 { return &v }

// seniorBackendJob mirrors the reference JD: four must-haves, two
// nice-to-haves, three years minimum, no education requirement.
func seniorBackendJob() *types.JobRequirement {
	return &types.JobRequirement{
		Title:              "Senior Backend Developer",
		MustHaveSkills:     []string{"Python", "FastAPI", "Git", "PostgreSQL"},
		NiceToHaveSkills:   []string{"Docker", "AWS"},
		MinYearsExperience: floatPtr(3),
	}
}

func TestScore_FullMatch(t *testing.T) {
	scorer := newTestScorer()
	candidate := &types.CandidateRecord{
		ID:     "cv_alice",
		Name:   "Alice Chen",
		Skills: []string{"Python", "FastAPI", "Git", "PostgreSQL", "Docker", "AWS"},
		Education: []types.EducationEntry{
			{Institution: "UC Berkeley", DegreeLevel: types.DegreeBachelor},
		},
		Experience: []types.ExperienceEntry{
			{Title: "Backend Engineer", StartDate: "Jan 2020", EndDate: "Jan 2026"},
		},
	}

	result := scorer.Score(candidate, seniorBackendJob(), types.DefaultRubric())

	// 0.5*1 + 0.2*1 + 0.2*1 + 0.1*1 = 1.0
	assert.InDelta(t, 1.0, result.RuleScore, 0.001)
	assert.Equal(t, result.RuleScore, result.FinalScore)
	assert.ElementsMatch(t, []string{"Python", "FastAPI", "Git", "PostgreSQL"}, result.MatchedMustHave)
	assert.ElementsMatch(t, []string{"Docker", "AWS"}, result.MatchedNiceToHave)
	assert.Empty(t, result.MissingMustHave)
	assert.InDelta(t, 6.0, result.EstimatedYearsExperience, 0.05)
	assert.True(t, result.EducationMatch)
}

func TestScore_PartialMustHave(t *testing.T) {
	scorer := newTestScorer()
	candidate := &types.CandidateRecord{
		ID:     "cv_bob",
		Skills: []string{"Python", "Git", "PostgreSQL"},
		Experience: []types.ExperienceEntry{
			{Title: "Developer", StartDate: "2021-01", EndDate: "2025-01"},
		},
	}

	result := scorer.Score(candidate, seniorBackendJob(), types.DefaultRubric())

	// s1=0.75, s2=0, s3=min(1,4/3)=1, s4=1 → 0.5*0.75 + 0.2 + 0.1 = 0.675
	assert.InDelta(t, 0.675, result.RuleScore, 0.001)
	assert.InDelta(t, 0.75, result.MustHaveScore, 0.001)
	assert.Equal(t, 0.0, result.NiceToHaveScore)
	assert.Equal(t, []string{"FastAPI"}, result.MissingMustHave)
}

func TestScore_WeakCandidate(t *testing.T) {
	scorer := newTestScorer()
	candidate := &types.CandidateRecord{
		ID:     "cv_carol",
		Skills: []string{"PHP", "WordPress"},
		Experience: []types.ExperienceEntry{
			{Title: "Developer", StartDate: "2023-01", EndDate: "2025-01"},
		},
	}

	result := scorer.Score(candidate, seniorBackendJob(), types.DefaultRubric())

	// s1=0, s2=0, s3=2/3, s4=1 → 0.2*(2/3) + 0.1 ≈ 0.2333
	assert.InDelta(t, 0.2333, result.RuleScore, 0.001)
	assert.Len(t, result.MissingMustHave, 4)
}

func TestScore_EmptyMustHaveScoresFull(t *testing.T) {
	scorer := newTestScorer()
	job := &types.JobRequirement{Title: "Anything Goes"}
	candidate := &types.CandidateRecord{ID: "cv_1"}

	result := scorer.Score(candidate, job, types.DefaultRubric())

	// No must-have, experience, or education requirement: 1.0 each.
	// Nice-to-have stays 0.0 when the JD defines none.
	assert.Equal(t, 1.0, result.MustHaveScore)
	assert.Equal(t, 0.0, result.NiceToHaveScore)
	assert.Equal(t, 1.0, result.ExperienceScore)
	assert.Equal(t, 1.0, result.EducationScore)
	assert.InDelta(t, 0.8, result.RuleScore, 0.001)
}

func TestScore_SkillNormalizationAppliesBothSides(t *testing.T) {
	scorer := newTestScorer()
	job := &types.JobRequirement{MustHaveSkills: []string{"golang", "k8s"}}
	candidate := &types.CandidateRecord{
		ID:     "cv_2",
		Skills: []string{"Go", "Kubernetes"},
	}

	result := scorer.Score(candidate, job, types.DefaultRubric())

	assert.Equal(t, 1.0, result.MustHaveScore)
	assert.ElementsMatch(t, []string{"Go", "Kubernetes"}, result.MatchedMustHave)
}

func TestScore_ZeroSkillsCandidate(t *testing.T) {
	scorer := newTestScorer()
	candidate := &types.CandidateRecord{ID: "cv_3"}

	result := scorer.Score(candidate, seniorBackendJob(), types.DefaultRubric())

	assert.Equal(t, 0.0, result.MustHaveScore)
	assert.Equal(t, 0.0, result.NiceToHaveScore)
	assert.Len(t, result.MissingMustHave, 4)
}

func TestScore_EducationRequirementMet(t *testing.T) {
	scorer := newTestScorer()
	job := &types.JobRequirement{RequiredEducation: types.DegreeBachelor}
	candidate := &types.CandidateRecord{
		ID: "cv_4",
		Education: []types.EducationEntry{
			{Institution: "MIT", DegreeLevel: types.DegreeMaster},
		},
	}

	result := scorer.Score(candidate, job, types.DefaultRubric())

	assert.Equal(t, 1.0, result.EducationScore)
	assert.True(t, result.EducationMatch)
}

func TestScore_EducationRequirementUnmet(t *testing.T) {
	scorer := newTestScorer()
	job := &types.JobRequirement{RequiredEducation: types.DegreeMaster}
	candidate := &types.CandidateRecord{
		ID: "cv_5",
		Education: []types.EducationEntry{
			{Institution: "State College", DegreeLevel: types.DegreeBachelor},
		},
	}

	result := scorer.Score(candidate, job, types.DefaultRubric())

	assert.Equal(t, 0.0, result.EducationScore)
	assert.False(t, result.EducationMatch)
}

func TestScore_EducationRequirementNoClassifiableDegree(t *testing.T) {
	scorer := newTestScorer()
	job := &types.JobRequirement{RequiredEducation: types.DegreeBachelor}
	candidate := &types.CandidateRecord{
		ID:        "cv_6",
		Education: []types.EducationEntry{{Institution: "Bootcamp"}},
	}

	result := scorer.Score(candidate, job, types.DefaultRubric())

	assert.Equal(t, 0.0, result.EducationScore)
	assert.False(t, result.EducationMatch)
}

func TestScore_ExperienceCapsAtOne(t *testing.T) {
	scorer := newTestScorer()
	job := &types.JobRequirement{MinYearsExperience: floatPtr(2)}
	candidate := &types.CandidateRecord{
		ID: "cv_7",
		Experience: []types.ExperienceEntry{
			{Title: "Engineer", StartDate: "Jan 2010", EndDate: "Jan 2026"},
		},
	}

	result := scorer.Score(candidate, job, types.DefaultRubric())

	assert.Equal(t, 1.0, result.ExperienceScore)
	assert.InDelta(t, 16.0, result.EstimatedYearsExperience, 0.05)
}

func TestScore_CustomRubricWeights(t *testing.T) {
	scorer := newTestScorer()
	rubric := types.ScoringRubric{MustHaveWeight: 1.0}
	candidate := &types.CandidateRecord{
		ID:     "cv_8",
		Skills: []string{"Python", "Git"},
	}

	result := scorer.Score(candidate, seniorBackendJob(), rubric)

	assert.InDelta(t, 0.5, result.RuleScore, 0.001)
}

func TestEstimateYearsExperience_OpenEndedRunsUntilNow(t *testing.T) {
	scorer := newTestScorer()
	entries := []types.ExperienceEntry{
		{Title: "Engineer", StartDate: "Jan 2023"},
	}

	years := scorer.estimateYearsExperience(entries)

	assert.InDelta(t, 3.0, years, 0.05)
}

func TestEstimateYearsExperience_PresentMarker(t *testing.T) {
	scorer := newTestScorer()
	entries := []types.ExperienceEntry{
		{Title: "Engineer", StartDate: "Jan 2024", EndDate: "Present"},
	}

	years := scorer.estimateYearsExperience(entries)

	assert.InDelta(t, 2.0, years, 0.05)
}

func TestEstimateYearsExperience_DatelessEntriesUseFallback(t *testing.T) {
	scorer := newTestScorer()
	entries := []types.ExperienceEntry{
		{Title: "Engineer", Company: "Acme"},
		{Title: "Developer", Company: "Globex"},
		{Title: "Intern", StartDate: "summer, a while ago"},
	}

	// One fallback year per entry, applied deterministically.
	years := scorer.estimateYearsExperience(entries)

	assert.Equal(t, 3.0, years)
}

func TestEstimateYearsExperience_MixedEntries(t *testing.T) {
	scorer := newTestScorer()
	entries := []types.ExperienceEntry{
		{Title: "Engineer", StartDate: "2020-01", EndDate: "2024-01"},
		{Title: "Developer"},
	}

	years := scorer.estimateYearsExperience(entries)

	assert.InDelta(t, 5.0, years, 0.05)
}

func TestEstimateYearsExperience_NegativeSpanIgnored(t *testing.T) {
	scorer := newTestScorer()
	entries := []types.ExperienceEntry{
		{Title: "Engineer", StartDate: "2024-01", EndDate: "2020-01"},
	}

	years := scorer.estimateYearsExperience(entries)

	assert.Equal(t, 0.0, years)
}

func TestEstimateYearsExperience_Empty(t *testing.T) {
	scorer := newTestScorer()

	assert.Equal(t, 0.0, scorer.estimateYearsExperience(nil))
}

func TestParseResumeDate_Layouts(t *testing.T) {
	for _, raw := range []string{"Jan 2020", "January 2020", "2020-01", "01/2020", "2020", "2020-01-15"} {
		_, ok := parseResumeDate(raw)
		assert.True(t, ok, "expected %q to parse", raw)
	}
}

func TestParseResumeDate_Unparseable(t *testing.T) {
	for _, raw := range []string{"", "Present", "current", "a long time ago"} {
		_, ok := parseResumeDate(raw)
		assert.False(t, ok, "expected %q not to parse", raw)
	}
}
