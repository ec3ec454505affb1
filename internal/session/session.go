// Package session keeps per-browser navigation state in memory.
//
// Each browser gets one Session, keyed by a cookie carrying the session ID.
// A Session holds the problem the user generated last plus an independent
// form snapshot per page, so returning to a page restores what the user
// typed there and nothing typed on any other page. Nothing is ever written
// to disk; an idle session expires after the configured TTL.
package session

import (
	"slices"

	"github.com/rapozcode/webclient/models"
)

// GeneratorForm is the problem generator page's last submitted state.
type GeneratorForm struct {
	Topic      string
	Difficulty models.Difficulty
	Language   models.LanguageChoice
}

// EditorForm is the code editor page's last state: the selected language,
// the code area content, and the optional custom stdin.
type EditorForm struct {
	Language models.Language
	Code     string
	Stdin    string
}

// ReviewForm is the code review page's last state.
type ReviewForm struct {
	Language models.Language
	Code     string
	Context  string
	Focus    []string
}

// HasFocus reports whether the given focus area is selected, so the page
// can re-check its checkbox.
func (f ReviewForm) HasFocus(area string) bool {
	return slices.Contains(f.Focus, area)
}

// Session is one browser's state. CurrentProblem and Topic are shared across
// pages (the editor and review pages show the generated problem); the three
// form snapshots are page-private.
//
// Sessions move through the store by value. CurrentProblem is a pointer that
// the copies share, so callers replace it with a fresh problem rather than
// mutating the one it points to.
type Session struct {
	ID string

	// Topic is the raw topic the current problem was generated from,
	// before difficulty and language preference were folded in.
	Topic          string
	CurrentProblem *models.Problem

	Generator GeneratorForm
	Editor    EditorForm
	Review    ReviewForm
}

// NewSession returns a Session with the page defaults a first visit shows:
// Beginner difficulty, no language preference, and a Python editor pre-filled
// with the starter template.
func NewSession(id string) Session {
	return Session{
		ID: id,
		Generator: GeneratorForm{
			Difficulty: models.Beginner,
			Language:   models.AnyLanguage,
		},
		Editor: EditorForm{
			Language: models.Python,
			Code:     models.Python.StarterTemplate(),
		},
		Review: ReviewForm{
			Language: models.Python,
			Focus:    []string{"Code Quality", "Best Practices"},
		},
	}
}
