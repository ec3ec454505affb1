// Package app contains shared application-layer constants used across the
// web client's handlers and middleware.
//
// All Msg* constants are human-readable messages rendered into pages or
// written into plain HTTP responses. Keeping them in one place ensures
// consistent wording throughout the client.
package app

const (
	// MsgInvalidForm is returned when a submitted form cannot be parsed.
	MsgInvalidForm = "invalid form data"

	// MsgInternalServerError is returned when an unexpected client-side
	// failure occurs, such as a page failing to render.
	MsgInternalServerError = "internal server error"

	// MsgRateLimited is returned when a client exceeds the per-IP budget
	// for backend-bound actions.
	MsgRateLimited = "too many requests, please wait a moment and try again"

	// MsgEmptyTopic is shown when the problem generator is submitted
	// without a topic.
	MsgEmptyTopic = "Please enter a topic to generate a problem."

	// MsgEmptyCode is shown when a run or review is submitted with an
	// empty code area.
	MsgEmptyCode = "Please enter some code first."

	// MsgUnsupportedLanguage is shown when the submitted language is not
	// one the platform executes. Reachable only with a tampered form.
	MsgUnsupportedLanguage = "That language is not supported. Choose Python, Java, or C++."

	// MsgBackendUnreachable is shown when the backend cannot be reached
	// at all: connection refused, DNS failure, or timeout.
	MsgBackendUnreachable = "Could not reach the backend service. Please try again in a moment."

	// MsgBackendBusy is shown when the backend rejects the request because
	// of its own rate limiting.
	MsgBackendBusy = "The backend is busy right now. Please try again shortly."

	// MsgBackendError is shown for any other backend failure.
	MsgBackendError = "The backend reported an error while handling your request."

	// MsgProblemGenerated is the notice shown above a freshly generated
	// problem.
	MsgProblemGenerated = "Problem generated successfully!"

	// MsgCodeSaved is the notice shown after the editor's save action.
	// There is no permanent storage; the code lives in the session only.
	MsgCodeSaved = "Code saved to your session (this is a demo, nothing is stored permanently)."
)
