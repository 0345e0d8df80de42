package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/itchan-dev/forum-api/shared/domain"
	jwt_internal "github.com/itchan-dev/forum-api/shared/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNeedAuth(t *testing.T) {
	jwtService := jwt_internal.New("test_secret", time.Hour)
	user := &domain.User{Id: "user-1", Username: "dicoding"}
	token, err := jwtService.NewToken(*user)
	require.NoError(t, err)

	tests := []struct {
		name           string
		header         string
		cookie         *http.Cookie
		expectedStatus int
		expectedUser   *domain.User
	}{
		{
			name:           "Bearer header",
			header:         "Bearer " + token,
			expectedStatus: http.StatusOK,
			expectedUser:   user,
		},
		{
			name:           "Cookie",
			cookie:         &http.Cookie{Name: "accessToken", Value: token},
			expectedStatus: http.StatusOK,
			expectedUser:   user,
		},
		{
			name:           "No token",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Invalid token",
			header:         "Bearer invalid_token",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Wrong scheme",
			header:         "Basic " + token,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			rr := httptest.NewRecorder()

			var gotUser *domain.User
			handler := NewAuth(jwtService).NeedAuth()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUser = GetUserFromContext(r)
				w.WriteHeader(http.StatusOK)
			}))
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectedUser, gotUser)
		})
	}
}

func TestGetUserFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, GetUserFromContext(req))
}
