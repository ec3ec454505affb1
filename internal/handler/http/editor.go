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

func (h *Handler) editorData(sess session.Session) web.EditorData {
	return web.EditorData{
		BaseData:  h.baseData("Code Editor", web.PageEditor),
		Form:      sess.Editor,
		Languages: models.Languages(),
		Problem:   sess.CurrentProblem,
	}
}

// editorPage renders the editor. A template query parameter swaps the code
// area for the chosen language's starter template, replacing whatever was
// there, which is how the template picker buttons work.
func (h *Handler) editorPage(w http.ResponseWriter, r *http.Request) {
	sess := h.currentSession(r)

	if t := r.URL.Query().Get("template"); t != "" {
		if lang, ok := models.ParseLanguage(t); ok {
			sess.Editor.Language = lang
			sess.Editor.Code = lang.StarterTemplate()
			h.sessions.Put(sess)
		}
	}

	h.render(w, r, web.PageEditor, h.editorData(sess))
}

// editorFormFromRequest snapshots the submitted editor form. The language
// arrives as the wire value; an unsupported one is kept verbatim so the
// service can reject it.
func editorFormFromRequest(r *http.Request) session.EditorForm {
	return session.EditorForm{
		Language: models.Language(r.PostFormValue("language")),
		Code:     r.PostFormValue("code"),
		Stdin:    r.PostFormValue("stdin"),
	}
}

func (h *Handler) runCode(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	sess := h.currentSession(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Str("func", "*Handler.runCode").Msg("invalid form data")
		http.Error(w, app.MsgInvalidForm, http.StatusBadRequest)
		return
	}

	sess.Editor = editorFormFromRequest(r)
	h.sessions.Put(sess)

	data := h.editorData(sess)

	result, err := h.services.Workbench.Execute(r.Context(), sess.Editor.Code, sess.Editor.Language, sess.Editor.Stdin)
	if err != nil {
		log.Err(err).Str("func", "*Handler.runCode").Msg("code execution failed")
		data.Error, data.ErrorDetail = pageError(err)
	} else {
		data.Result = &result
	}

	h.render(w, r, web.PageEditor, data)
}

func (h *Handler) reviewFromEditor(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	sess := h.currentSession(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Str("func", "*Handler.reviewFromEditor").Msg("invalid form data")
		http.Error(w, app.MsgInvalidForm, http.StatusBadRequest)
		return
	}

	sess.Editor = editorFormFromRequest(r)
	h.sessions.Put(sess)

	data := h.editorData(sess)

	feedback, err := h.services.Review.Review(r.Context(), service.ReviewRequest{
		Code:     sess.Editor.Code,
		Language: sess.Editor.Language,
		Problem:  sess.CurrentProblem,
	})
	if err != nil {
		log.Err(err).Str("func", "*Handler.reviewFromEditor").Msg("code review failed")
		data.Error, data.ErrorDetail = pageError(err)
	} else {
		data.Feedback = &feedback
	}

	h.render(w, r, web.PageEditor, data)
}

// saveCode stores the editor form in the session and nowhere else. There is
// no persistent storage to save to.
func (h *Handler) saveCode(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	sess := h.currentSession(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Str("func", "*Handler.saveCode").Msg("invalid form data")
		http.Error(w, app.MsgInvalidForm, http.StatusBadRequest)
		return
	}

	sess.Editor = editorFormFromRequest(r)
	h.sessions.Put(sess)

	data := h.editorData(sess)
	data.Notice = app.MsgCodeSaved
	h.render(w, r, web.PageEditor, data)
}
