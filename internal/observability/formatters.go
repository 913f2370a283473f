// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/cv-ranker/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobRequirement outputs a human-readable summary of the parsed job.
func (p *Printer) PrintJobRequirement(job *types.JobRequirement) {
	if job == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Title:  %s\n", job.Title))
	if job.MinYearsExperience != nil {
		sb.WriteString(fmt.Sprintf("Min experience: %.1f years\n", *job.MinYearsExperience))
	}
	if job.RequiredEducation != "" {
		sb.WriteString(fmt.Sprintf("Education: %s\n", job.RequiredEducation))
	}
	sb.WriteString("\n")

	if len(job.MustHaveSkills) > 0 {
		sb.WriteString("Must-have skills:\n")
		count := min(len(job.MustHaveSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", job.MustHaveSkills[i]))
		}
		if len(job.MustHaveSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(job.MustHaveSkills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(job.NiceToHaveSkills) > 0 {
		sb.WriteString("Nice-to-haves:\n")
		count := min(len(job.NiceToHaveSkills), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", job.NiceToHaveSkills[i]))
		}
		if len(job.NiceToHaveSkills) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(job.NiceToHaveSkills)-3))
		}
	}

	p.printBox("PARSED JOB REQUIREMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCandidate outputs a human-readable summary of a parsed candidate.
func (p *Printer) PrintCandidate(candidate *types.CandidateRecord) {
	if candidate == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:  %s\n", candidate.Name))
	sb.WriteString(fmt.Sprintf("ID:    %s\n", candidate.ID))
	if degree := candidate.HighestDegree(); degree != "" {
		sb.WriteString(fmt.Sprintf("Highest degree: %s\n", degree))
	}
	sb.WriteString("\n")

	if len(candidate.Skills) > 0 {
		skills := strings.Join(candidate.Skills, ", ")
		if len(skills) > 45 {
			skills = skills[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("Skills: %s\n", skills))
	}

	if len(candidate.Experience) > 0 {
		sb.WriteString(fmt.Sprintf("Experience entries: %d\n", len(candidate.Experience)))
		count := min(len(candidate.Experience), 3)
		for i := 0; i < count; i++ {
			exp := candidate.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s", exp.Title))
			if exp.Company != "" {
				sb.WriteString(fmt.Sprintf(" @ %s", exp.Company))
			}
			sb.WriteString("\n")
		}
	}

	p.printBox("PARSED CANDIDATE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRanking outputs the top ranked candidates with scores and evidence.
func (p *Printer) PrintRanking(results []types.MatchResult) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total candidates ranked: %d\n\n", len(results)))

	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		result := results[i]
		name := result.CandidateName
		if name == "" {
			name = result.CandidateID
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, name))
		sb.WriteString(fmt.Sprintf("    Score: %.3f (rule: %.3f", result.FinalScore, result.RuleScore))
		if result.SemanticScore != nil {
			sb.WriteString(fmt.Sprintf(", semantic: %.3f", *result.SemanticScore))
		}
		sb.WriteString(")\n")
		if len(result.MatchedMustHave) > 0 {
			skills := strings.Join(result.MatchedMustHave, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Matched: %s\n", skills))
		}
		if len(result.MissingMustHave) > 0 {
			skills := strings.Join(result.MissingMustHave, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Missing: %s\n", skills))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more candidates", len(results)-maxItemsToShow))
	}

	p.printBox("RANKED CANDIDATES", sb.String())
}
