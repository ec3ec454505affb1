package http

import (
	"net/http"

	"github.com/rapozcode/webclient/internal/app"
	"github.com/rapozcode/webclient/internal/logger"
	"github.com/rapozcode/webclient/internal/service"
	"github.com/rapozcode/webclient/internal/session"
	"github.com/rapozcode/webclient/models"
	"github.com/rapozcode/webclient/web"
)

func (h *Handler) reviewData(sess session.Session) web.ReviewData {
	return web.ReviewData{
		BaseData:     h.baseData("Code Review", web.PageReview),
		Form:         sess.Review,
		Languages:    models.Languages(),
		FocusOptions: web.FocusOptions(),
		Problem:      sess.CurrentProblem,
	}
}

func (h *Handler) reviewPage(w http.ResponseWriter, r *http.Request) {
	sess := h.currentSession(r)
	h.render(w, r, web.PageReview, h.reviewData(sess))
}

func (h *Handler) reviewCode(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	sess := h.currentSession(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Str("func", "*Handler.reviewCode").Msg("invalid form data")
		http.Error(w, app.MsgInvalidForm, http.StatusBadRequest)
		return
	}

	sess.Review = session.ReviewForm{
		Language: models.Language(r.PostFormValue("language")),
		Code:     r.PostFormValue("code"),
		Context:  r.PostFormValue("context"),
		Focus:    r.PostForm["focus"],
	}
	h.sessions.Put(sess)

	data := h.reviewData(sess)

	feedback, err := h.services.Review.Review(r.Context(), service.ReviewRequest{
		Code:     sess.Review.Code,
		Language: sess.Review.Language,
		Problem:  sess.CurrentProblem,
		Context:  sess.Review.Context,
		Focus:    sess.Review.Focus,
	})
	if err != nil {
		log.Err(err).Str("func", "*Handler.reviewCode").Msg("code review failed")
		data.Error, data.ErrorDetail = pageError(err)
	} else {
		data.Feedback = &feedback
	}

	h.render(w, r, web.PageReview, data)
}
