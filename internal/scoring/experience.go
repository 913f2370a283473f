package scoring

import (
	"strings"
	"time"

	"github.com/jonathan/cv-ranker/internal/types"
)

// fallbackYearsPerEntry is credited for each experience entry whose dates
// cannot be parsed. Applying the fallback per entry, not as a blanket
// estimate, keeps the result stable for resumes with no date data at all.
const fallbackYearsPerEntry = 1.0

const hoursPerYear = 24 * 365.25

// dateLayouts covers the date spellings resumes commonly use.
var dateLayouts = []string{
	"Jan 2006",
	"January 2006",
	"2006-01-02",
	"2006-01",
	"01/2006",
	"2006",
}

// estimateYearsExperience derives total years of experience from the
// candidate's experience entries. Entries with both dates contribute their
// span; entries with only a start date run until now; entries with no
// parseable start date contribute the fixed fallback.
func (s *Scorer) estimateYearsExperience(entries []types.ExperienceEntry) float64 {
	total := 0.0
	for _, entry := range entries {
		start, ok := parseResumeDate(entry.StartDate)
		if !ok {
			total += fallbackYearsPerEntry
			continue
		}

		end, ok := parseResumeDate(entry.EndDate)
		if !ok {
			// Open-ended or unparseable end: the role runs until now.
			end = s.now()
		}

		years := end.Sub(start).Hours() / hoursPerYear
		if years > 0 {
			total += years
		}
	}
	return total
}

// parseResumeDate parses a resume date string. "Present"-style markers and
// empty strings report not-ok so the caller can substitute the clock.
func parseResumeDate(raw string) (time.Time, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, false
	}

	switch strings.ToLower(trimmed) {
	case "present", "current", "now", "ongoing":
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
