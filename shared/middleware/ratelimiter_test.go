package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/itchan-dev/forum-api/shared/domain"
	"github.com/itchan-dev/forum-api/shared/middleware/ratelimiter"
	"github.com/stretchr/testify/assert"
)

func TestRateLimit(t *testing.T) {
	limiter := ratelimiter.New(0, 1, time.Hour)
	handler := RateLimit(limiter, GetUserIDFromContext)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	request := func(user *domain.User) int {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		if user != nil {
			req = req.WithContext(WithUser(req.Context(), user))
		}
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	alice := &domain.User{Id: "user-alice"}
	bob := &domain.User{Id: "user-bob"}

	assert.Equal(t, http.StatusCreated, request(alice))
	assert.Equal(t, http.StatusTooManyRequests, request(alice))
	assert.Equal(t, http.StatusCreated, request(bob))
	assert.Equal(t, http.StatusInternalServerError, request(nil), "identity error without status is a 500")
}

func TestRateLimit_RejectionBody(t *testing.T) {
	limiter := ratelimiter.New(0, 1, time.Hour)
	handler := RateLimit(limiter, GetUserIDFromContext)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	user := &domain.User{Id: "user-alice"}

	var rr *httptest.ResponseRecorder
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		rr = httptest.NewRecorder()
		handler.ServeHTTP(rr, req.WithContext(WithUser(req.Context(), user)))
	}

	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, "Rate limit exceeded, try again later\n", rr.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
}
