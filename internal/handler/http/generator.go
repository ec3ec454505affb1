package http

import (
	"net/http"
	"strings"

	"github.com/rapozcode/webclient/internal/app"
	"github.com/rapozcode/webclient/internal/logger"
	"github.com/rapozcode/webclient/internal/session"
	"github.com/rapozcode/webclient/models"
	"github.com/rapozcode/webclient/web"
)

func (h *Handler) generatorData(sess session.Session) web.GeneratorData {
	return web.GeneratorData{
		BaseData:        h.baseData("Problem Generator", web.PageGenerator),
		Form:            sess.Generator,
		Difficulties:    models.Difficulties(),
		LanguageChoices: models.LanguageChoices(),
		Topic:           sess.Topic,
		Problem:         sess.CurrentProblem,
	}
}

func (h *Handler) generatorPage(w http.ResponseWriter, r *http.Request) {
	sess := h.currentSession(r)
	h.render(w, r, web.PageGenerator, h.generatorData(sess))
}

func (h *Handler) generateProblem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	sess := h.currentSession(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Str("func", "*Handler.generateProblem").Msg("invalid form data")
		http.Error(w, app.MsgInvalidForm, http.StatusBadRequest)
		return
	}

	sess.Generator = session.GeneratorForm{
		Topic:      r.PostFormValue("topic"),
		Difficulty: models.ParseDifficulty(r.PostFormValue("difficulty")),
		Language:   models.ParseLanguageChoice(r.PostFormValue("language")),
	}

	problem, err := h.services.Problem.Generate(
		r.Context(),
		sess.Generator.Topic,
		sess.Generator.Difficulty,
		sess.Generator.Language,
	)
	if err != nil {
		log.Err(err).Str("func", "*Handler.generateProblem").Msg("problem generation failed")

		// keep what the user typed, even though generation failed
		h.sessions.Put(sess)

		data := h.generatorData(sess)
		data.Error, data.ErrorDetail = pageError(err)
		h.render(w, r, web.PageGenerator, data)
		return
	}

	sess.Topic = strings.TrimSpace(sess.Generator.Topic)
	sess.CurrentProblem = &problem
	h.sessions.Put(sess)

	data := h.generatorData(sess)
	data.Notice = app.MsgProblemGenerated
	h.render(w, r, web.PageGenerator, data)
}
