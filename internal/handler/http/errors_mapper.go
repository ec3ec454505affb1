package http

import (
	"errors"

	"github.com/rapozcode/webclient/internal/adapter"
	"github.com/rapozcode/webclient/internal/app"
	"github.com/rapozcode/webclient/internal/service"
)

// pageError maps an action error to the inline message its page shows.
// Form-validation problems get a friendly message alone; backend failures
// also carry the reported error text as a detail line, so the user sees
// what the platform said.
func pageError(err error) (msg, detail string) {
	switch {
	case errors.Is(err, service.ErrEmptyTopic):
		return app.MsgEmptyTopic, ""
	case errors.Is(err, service.ErrEmptyCode):
		return app.MsgEmptyCode, ""
	case errors.Is(err, service.ErrUnsupportedLanguage):
		return app.MsgUnsupportedLanguage, ""
	case errors.Is(err, adapter.ErrBackendUnreachable):
		return app.MsgBackendUnreachable, err.Error()
	case errors.Is(err, adapter.ErrTooManyRequests):
		return app.MsgBackendBusy, err.Error()
	default:
		return app.MsgBackendError, err.Error()
	}
}
