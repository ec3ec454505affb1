package models

import "strings"

// Placeholder values the backend substitutes into a generated problem when
// the AI response omitted a field. Sections carrying one of these verbatim
// are hidden on the page instead of being shown to the user.
const (
	placeholderSampleInput  = "Sample input"
	placeholderSampleOutput = "Sample output"
	placeholderExplanation  = "Basic test case"
	placeholderConstraints  = "No specific constraints"
)

// Problem is a coding problem returned by the backend's generator.
//
// The backend guarantees every field is present, falling back to placeholder
// text for fields the AI response did not supply; the Has* helpers let the
// presentation layer skip those. The problem text itself is duplicated under
// two keys for historical reasons; Statement picks the right one.
type Problem struct {
	// Problem is the primary problem description.
	Problem string `json:"problem,omitempty"`

	// ProblemStatement duplicates Problem under the generator's older key.
	ProblemStatement string `json:"problem_statement,omitempty"`

	// SampleInput is an example stdin for the problem.
	SampleInput string `json:"sample_input,omitempty"`

	// SampleOutput is the expected stdout for SampleInput.
	SampleOutput string `json:"sample_output,omitempty"`

	// TestcaseExplanation explains how SampleInput maps to SampleOutput.
	TestcaseExplanation string `json:"testcase_explanation,omitempty"`

	// Difficulty is the generator's own difficulty rating (easy/medium/hard),
	// independent of the level the user asked for.
	Difficulty string `json:"difficulty,omitempty"`

	// Constraints lists input bounds and requirements.
	Constraints string `json:"constraints,omitempty"`

	// Error is set when the generator fell back to a canned problem,
	// carrying the reason (commonly an API key issue).
	Error string `json:"error,omitempty"`
}

// Statement returns the problem description, preferring the primary key and
// falling back to the older one. Empty when the backend sent neither.
func (p *Problem) Statement() string {
	if p.Problem != "" {
		return p.Problem
	}
	return p.ProblemStatement
}

// HasSampleInput reports whether SampleInput carries real content rather
// than the backend's placeholder.
func (p *Problem) HasSampleInput() bool {
	return p.SampleInput != "" && p.SampleInput != placeholderSampleInput
}

// HasSampleOutput reports whether SampleOutput carries real content rather
// than the backend's placeholder.
func (p *Problem) HasSampleOutput() bool {
	return p.SampleOutput != "" && p.SampleOutput != placeholderSampleOutput
}

// HasExplanation reports whether TestcaseExplanation carries real content
// rather than the backend's placeholder.
func (p *Problem) HasExplanation() bool {
	return p.TestcaseExplanation != "" && p.TestcaseExplanation != placeholderExplanation
}

// HasConstraints reports whether Constraints carries real content rather
// than the backend's placeholder.
func (p *Problem) HasConstraints() bool {
	return p.Constraints != "" && p.Constraints != placeholderConstraints
}

// IsFallback reports whether the generator substituted a canned problem
// because its AI model was unavailable. The page shows a warning banner in
// that case instead of treating the response as an error.
func (p *Problem) IsFallback() bool {
	return p.Error != "" && strings.Contains(p.Error, "API key")
}
