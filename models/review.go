package models

// FeedbackSection is one labelled block of review prose, ready for rendering.
type FeedbackSection struct {
	Label string
	Text  string
}

// ReviewFeedback is the AI reviewer's response. Which keys are populated
// depends on the path the backend took: a normal review fills the quality
// keys, a review of failing code fills the error-analysis keys, and a
// reviewer-side failure fills Err/Message. Prose fields should be rendered
// via Sections so the ordering stays stable regardless of which subset
// arrived.
type ReviewFeedback struct {
	// Review-path fields.
	Correctness             string `json:"correctness,omitempty"`
	QualityAssessment       string `json:"quality_assessment,omitempty"`
	OptimizationSuggestions string `json:"optimization_suggestions,omitempty"`
	ReadabilityImprovements string `json:"readability_improvements,omitempty"`
	BestPractices           string `json:"best_practices,omitempty"`
	OverallAssessment       string `json:"overall_assessment,omitempty"`
	Review                  string `json:"review,omitempty"`
	PerformanceAnalysis     string `json:"performance_analysis,omitempty"`
	SecurityConcerns        string `json:"security_concerns,omitempty"`

	// Error-analysis path fields, produced when the reviewed code failed.
	ErrorAnalysis string `json:"error_analysis,omitempty"`
	Solution      string `json:"solution,omitempty"`
	SuggestedCode string `json:"suggested_code,omitempty"`

	// Suggestions is an optional list of discrete improvement items.
	Suggestions []string `json:"suggestions,omitempty"`

	// Score is an optional 1..10 quality rating. Zero means not rated.
	Score float64 `json:"score,omitempty"`

	// Err and Message are set when the reviewer itself failed.
	Err     string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// Sections returns the populated prose fields in presentation order.
// SuggestedCode is excluded: it is code, not prose, and pages render it in a
// code block.
func (f *ReviewFeedback) Sections() []FeedbackSection {
	ordered := []FeedbackSection{
		{"Overall Assessment", f.OverallAssessment},
		{"Detailed Review", f.Review},
		{"Correctness", f.Correctness},
		{"Quality Assessment", f.QualityAssessment},
		{"Optimization Suggestions", f.OptimizationSuggestions},
		{"Readability Improvements", f.ReadabilityImprovements},
		{"Best Practices", f.BestPractices},
		{"Performance Analysis", f.PerformanceAnalysis},
		{"Security Concerns", f.SecurityConcerns},
		{"Error Analysis", f.ErrorAnalysis},
		{"Solution", f.Solution},
	}

	sections := make([]FeedbackSection, 0, len(ordered))
	for _, s := range ordered {
		if s.Text != "" {
			sections = append(sections, s)
		}
	}
	return sections
}

// HasScore reports whether the reviewer rated the code.
func (f *ReviewFeedback) HasScore() bool {
	return f.Score > 0
}

// ScorePercent returns Score as a 0..100 value for the score bar.
func (f *ReviewFeedback) ScorePercent() int {
	if f.Score <= 0 {
		return 0
	}
	if f.Score >= 10 {
		return 100
	}
	return int(f.Score * 10)
}

// Failed reports whether the reviewer returned an error payload instead of
// feedback.
func (f *ReviewFeedback) Failed() bool {
	return f.Err != "" && len(f.Sections()) == 0
}
