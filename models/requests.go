package models

// GenerateProblemRequest is the payload for the backend's problem generator.
// Topic carries the full enhanced topic (user topic + difficulty level +
// optional preferred language), composed by the problem service.
type GenerateProblemRequest struct {
	Topic string `json:"topic"`
}

// ExecuteCodeRequest is the payload for the backend's code runner.
type ExecuteCodeRequest struct {
	Code        string   `json:"code"`
	Language    Language `json:"language"`
	CustomInput string   `json:"custom_input"`
}

// ReviewCodeRequest is the payload for the backend's AI reviewer. Problem is
// optional; when present the reviewer judges the code against it.
type ReviewCodeRequest struct {
	Code     string   `json:"code"`
	Language Language `json:"language"`
	Problem  *Problem `json:"problem,omitempty"`
}
