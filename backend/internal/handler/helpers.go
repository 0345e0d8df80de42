package handler

import (
	"net/http"

	"github.com/itchan-dev/forum-api/shared/domain"
	mw "github.com/itchan-dev/forum-api/shared/middleware"
)

// requireUser returns the authenticated user or writes 401.
func requireUser(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return nil, false
	}
	return user, true
}

// limitBody caps the request body at what a JSON payload with maxRunes of text
// can take: 6 bytes per rune covers \uXXXX escapes, plus room for keys.
func limitBody(w http.ResponseWriter, r *http.Request, maxRunes int) {
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxRunes)*6+1<<10)
}
