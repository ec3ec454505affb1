package http

import (
	"context"
	"net/http"

	"github.com/rapozcode/webclient/internal/session"
	"github.com/rapozcode/webclient/internal/utils"
)

// sessionCookieName keys the browser to its server-side session. The cookie
// itself carries only the opaque session ID; all state stays in memory on
// the server.
const sessionCookieName = "rapozcode_session"

// withSession makes sure every page request runs with a live browser
// session: the cookie's session is loaded when it is still known, and a
// fresh one is created (and a new cookie set) when the cookie is missing,
// stale, or expired. The session ID is placed in the request context.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := h.sessionFromCookie(r)
		if !ok {
			sess = h.sessions.Create()
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookieName,
				Value:    sess.ID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), utils.SessionIDCtxKey, sess.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) sessionFromCookie(r *http.Request) (session.Session, bool) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return session.Session{}, false
	}
	return h.sessions.Get(cookie.Value)
}
