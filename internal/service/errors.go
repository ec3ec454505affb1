package service

import "errors"

var (
	ErrEmptyTopic          = errors.New("topic is required")
	ErrEmptyCode           = errors.New("code is required")
	ErrUnsupportedLanguage = errors.New("unsupported language")

	ErrGenerateProblem = errors.New("problem generation failed")
	ErrExecuteCode     = errors.New("code execution failed")
	ErrReviewCode      = errors.New("code review failed")
)
