package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/itchan-dev/forum-api/backend/internal/service"
	"github.com/itchan-dev/forum-api/shared/config"
	"github.com/itchan-dev/forum-api/shared/logger"
)

// HealthChecker reports whether the storage behind the handlers is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	addThread     *service.AddThreadUseCase
	getThread     *service.GetThreadUseCase
	addComment    *service.AddCommentUseCase
	deleteComment *service.DeleteCommentUseCase
	cfg           *config.Config
	health        HealthChecker
}

func New(
	addThread *service.AddThreadUseCase,
	getThread *service.GetThreadUseCase,
	addComment *service.AddCommentUseCase,
	deleteComment *service.DeleteCommentUseCase,
	cfg *config.Config,
	health HealthChecker,
) *Handler {
	return &Handler{
		addThread:     addThread,
		getThread:     getThread,
		addComment:    addComment,
		deleteComment: deleteComment,
		cfg:           cfg,
		health:        health,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logger.Log.Error("failed to encode response", "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(body, '\n'))
}
