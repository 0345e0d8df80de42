package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/forum-api/backend/internal/service"
	"github.com/itchan-dev/forum-api/backend/internal/storage/memory"
	"github.com/itchan-dev/forum-api/backend/internal/utils"
	"github.com/itchan-dev/forum-api/shared/api"
	"github.com/itchan-dev/forum-api/shared/config"
	"github.com/itchan-dev/forum-api/shared/domain"
	"github.com/itchan-dev/forum-api/shared/jwt"
	mw "github.com/itchan-dev/forum-api/shared/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	router  http.Handler
	storage *memory.Storage
	jwt     jwt.JwtService
}

func newTestServer(t *testing.T, maskDeleted bool) *testServer {
	t.Helper()
	cfg := &config.Config{
		Public: config.Public{
			JwtTTL:              time.Hour,
			MaxThreadTitleLen:   50,
			MaxThreadBodyLen:    500,
			MaxCommentLen:       100,
			MaskDeletedComments: maskDeleted,
		},
		Private: config.Private{JwtKey: "test-secret"},
	}

	n := 0
	storage := memory.New(func() string {
		n++
		return fmt.Sprintf("%d", n)
	})
	sanitizer := utils.NewSanitizer()
	h := New(
		service.NewAddThreadUseCase(storage, utils.NewThreadValidator(&cfg.Public), sanitizer),
		service.NewGetThreadUseCase(storage, storage),
		service.NewAddCommentUseCase(storage, storage, utils.NewCommentValidator(&cfg.Public), sanitizer),
		service.NewDeleteCommentUseCase(storage, storage),
		cfg,
		storage,
	)
	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())
	auth := mw.NewAuth(jwtService)

	r := chi.NewRouter()
	r.Get("/v1/threads/{threadId}", h.GetThread)
	r.Group(func(r chi.Router) {
		r.Use(auth.NeedAuth())
		r.Post("/v1/threads", h.AddThread)
		r.Post("/v1/threads/{threadId}/comments", h.AddComment)
		r.Delete("/v1/threads/{threadId}/comments/{commentId}", h.DeleteComment)
	})

	return &testServer{router: r, storage: storage, jwt: jwtService}
}

func (s *testServer) token(t *testing.T, userId string) string {
	t.Helper()
	token, err := s.jwt.NewToken(domain.User{Id: userId, Username: userId})
	require.NoError(t, err)
	return token
}

func (s *testServer) do(t *testing.T, method, url, userId string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, url, &buf)
	if userId != "" {
		req.Header.Set("Authorization", "Bearer "+s.token(t, userId))
	}
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func (s *testServer) addThread(t *testing.T, owner string) domain.AddedThread {
	t.Helper()
	rr := s.do(t, http.MethodPost, "/v1/threads", owner, api.CreateThreadRequest{Title: "sebuah thread", Body: "sebuah body"})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var resp api.AddThreadResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.AddedThread
}

func (s *testServer) addComment(t *testing.T, threadId, owner, content string) domain.AddedComment {
	t.Helper()
	rr := s.do(t, http.MethodPost, "/v1/threads/"+threadId+"/comments", owner, api.CreateCommentRequest{Content: content})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var resp api.AddCommentResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.AddedComment
}

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		status   int
		expected string
	}{
		{
			name:     "Valid JSON",
			input:    map[string]string{"message": "hello"},
			status:   http.StatusCreated,
			expected: `{"message":"hello"}` + "\n",
		},
		{
			name:     "Invalid JSON (channel)",
			input:    make(chan int),
			status:   http.StatusInternalServerError,
			expected: "Internal error\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()

			writeJSON(rr, tt.status, tt.input)

			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, tt.expected, rr.Body.String())
		})
	}
}
