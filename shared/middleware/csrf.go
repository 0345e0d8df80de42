package middleware

import (
	"net/http"
	"strings"

	"github.com/itchan-dev/forum-api/shared/csrf"
	"github.com/itchan-dev/forum-api/shared/logger"
)

const (
	CSRFCookieName = "csrf_token"
	CSRFHeaderName = "X-CSRF-Token"
)

// IssueCSRFToken sets the csrf cookie when the client has none.
// The cookie is readable by scripts: clients echo it back in CSRFHeaderName.
func IssueCSRFToken(isHTTPS bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cookie, err := r.Cookie(CSRFCookieName); err != nil || cookie.Value == "" {
				token, err := csrf.GenerateToken()
				if err != nil {
					logger.Log.Error("failed to generate CSRF token", "error", err)
					http.Error(w, "Internal server error", http.StatusInternalServerError)
					return
				}
				http.SetCookie(w, &http.Cookie{
					Name:     CSRFCookieName,
					Value:    token,
					Path:     "/",
					Secure:   isHTTPS,
					SameSite: http.SameSiteLaxMode,
					MaxAge:   86400,
				})
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireCSRFForCookieAuth rejects unsafe requests that authenticate with the
// accessToken cookie unless they carry the csrf token in CSRFHeaderName.
// Bearer-authenticated requests are not exposed to CSRF and pass through.
func RequireCSRFForCookieAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
				return
			}
			if strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
				next.ServeHTTP(w, r)
				return
			}
			if _, err := r.Cookie("accessToken"); err != nil {
				next.ServeHTTP(w, r)
				return
			}

			cookie, err := r.Cookie(CSRFCookieName)
			if err != nil {
				logger.Log.Warn("CSRF token cookie missing", "path", r.URL.Path)
				http.Error(w, "CSRF token missing", http.StatusForbidden)
				return
			}
			if !csrf.ValidateToken(cookie.Value, r.Header.Get(CSRFHeaderName)) {
				logger.Log.Warn("CSRF token validation failed", "path", r.URL.Path)
				http.Error(w, "CSRF token invalid", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
