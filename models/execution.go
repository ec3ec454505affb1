package models

// ExecutionResult is the backend's response to a code run.
type ExecutionResult struct {
	// Success is true when the program compiled (if applicable) and exited
	// cleanly.
	Success bool `json:"success"`

	// Output is the program's stdout. Empty on failure.
	Output string `json:"output,omitempty"`

	// Error carries the compilation or runtime error text on failure.
	Error string `json:"error,omitempty"`

	// ErrorType classifies the failure when the backend distinguishes one
	// (e.g. "compilation", "runtime", "timeout").
	ErrorType string `json:"error_type,omitempty"`

	// ExecutionTime is the wall-clock run duration in seconds, when the
	// backend measures it.
	ExecutionTime float64 `json:"execution_time,omitempty"`

	// MemoryUsage is the peak memory in KiB, when the backend measures it.
	MemoryUsage int64 `json:"memory_usage,omitempty"`

	// Feedback is the AI commentary the backend attaches to every run:
	// error analysis for failed runs, quality notes for clean ones.
	Feedback *ReviewFeedback `json:"ai_feedback,omitempty"`
}

// HasTiming reports whether the backend measured the run duration.
func (r *ExecutionResult) HasTiming() bool {
	return r.ExecutionTime > 0
}

// HasMemory reports whether the backend measured memory usage.
func (r *ExecutionResult) HasMemory() bool {
	return r.MemoryUsage > 0
}
