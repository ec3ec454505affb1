package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rapozcode/webclient/web"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// pages carry a browser session
	router.Group(func(r chi.Router) {
		r.Use(h.withSession)

		r.Get("/", h.home)
		r.Get("/problems", h.generatorPage)
		r.Get("/editor", h.editorPage)
		r.Get("/review", h.reviewPage)
		r.Get("/about", h.about)
		r.Post("/editor/save", h.saveCode)

		// actions that call the backend share the per-IP budget
		r.Group(func(r chi.Router) {
			r.Use(h.withRateLimit)
			r.Post("/problems", h.generateProblem)
			r.Post("/editor/run", h.runCode)
			r.Post("/editor/review", h.reviewFromEditor)
			r.Post("/review", h.reviewCode)
		})
	})

	router.Get("/healthz", h.healthz)
	router.Get("/robots.txt", h.robots)
	router.Handle("/static/*", web.Static())

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
