package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDegreeLevelFromText_CommonDegreeStrings(t *testing.T) {
	assert.Equal(t, DegreeBachelor, DegreeLevelFromText("B.S. in Computer Science"))
	assert.Equal(t, DegreeBachelor, DegreeLevelFromText("Bachelor of Arts"))
	assert.Equal(t, DegreeMaster, DegreeLevelFromText("Master of Business Administration"))
	assert.Equal(t, DegreeMaster, DegreeLevelFromText("MBA"))
	assert.Equal(t, DegreeDoctorate, DegreeLevelFromText("Ph.D. in Physics"))
	assert.Equal(t, DegreeAssociate, DegreeLevelFromText("Associate of Science"))
	assert.Equal(t, DegreeHighSchool, DegreeLevelFromText("High School Diploma"))
}

func TestDegreeLevelFromText_CanonicalValues(t *testing.T) {
	assert.Equal(t, DegreeBachelor, DegreeLevelFromText("bachelor"))
	assert.Equal(t, DegreeDoctorate, DegreeLevelFromText("Doctorate"))
}

func TestDegreeLevelFromText_HighestMarkerWins(t *testing.T) {
	// A transcript line mentioning both degrees resolves to the higher one.
	assert.Equal(t, DegreeDoctorate, DegreeLevelFromText("PhD in CS, BSc in Math"))
}

func TestDegreeLevelFromText_Unknown(t *testing.T) {
	assert.Equal(t, DegreeLevel(""), DegreeLevelFromText("certificate of attendance"))
	assert.Equal(t, DegreeLevel(""), DegreeLevelFromText(""))
}

func TestDegreeLevel_AtLeast(t *testing.T) {
	assert.True(t, DegreeMaster.AtLeast(DegreeBachelor))
	assert.True(t, DegreeBachelor.AtLeast(DegreeBachelor))
	assert.False(t, DegreeAssociate.AtLeast(DegreeBachelor))
	// Unknown level never satisfies a requirement.
	assert.False(t, DegreeLevel("").AtLeast(DegreeHighSchool))
}

func TestJobRequirement_DedupeSkills_MustHaveWins(t *testing.T) {
	job := JobRequirement{
		MustHaveSkills:   []string{"Python", "Git"},
		NiceToHaveSkills: []string{"Docker", "Python", "AWS"},
	}

	job.DedupeSkills()

	assert.Equal(t, []string{"Python", "Git"}, job.MustHaveSkills)
	assert.Equal(t, []string{"Docker", "AWS"}, job.NiceToHaveSkills)
}

func TestJobRequirement_DedupeSkills_NoOverlap(t *testing.T) {
	job := JobRequirement{
		MustHaveSkills:   []string{"Python"},
		NiceToHaveSkills: []string{"Docker"},
	}

	job.DedupeSkills()

	assert.Equal(t, []string{"Docker"}, job.NiceToHaveSkills)
}

func TestCandidateRecord_HighestDegree(t *testing.T) {
	candidate := CandidateRecord{
		Education: []EducationEntry{
			{Institution: "State College", DegreeLevel: DegreeBachelor},
			{Institution: "Tech University", DegreeLevel: DegreeMaster},
			{Institution: "Night School"}, // unclassified, excluded
		},
	}

	assert.Equal(t, DegreeMaster, candidate.HighestDegree())
}

func TestCandidateRecord_HighestDegree_NoneClassifiable(t *testing.T) {
	candidate := CandidateRecord{
		Education: []EducationEntry{{Institution: "Bootcamp"}},
	}

	assert.Equal(t, DegreeLevel(""), candidate.HighestDegree())
}

func TestScoringRubric_Validate(t *testing.T) {
	assert.NoError(t, DefaultRubric().Validate())

	bad := DefaultRubric()
	bad.ExperienceWeight = -0.1
	assert.Error(t, bad.Validate())
}

func TestDefaultRubric_Weights(t *testing.T) {
	rubric := DefaultRubric()

	assert.Equal(t, 0.5, rubric.MustHaveWeight)
	assert.Equal(t, 0.2, rubric.NiceToHaveWeight)
	assert.Equal(t, 0.2, rubric.ExperienceWeight)
	assert.Equal(t, 0.1, rubric.EducationWeight)
}
