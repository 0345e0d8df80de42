package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/forum-api/shared/api"
	"github.com/itchan-dev/forum-api/shared/domain"
	"github.com/itchan-dev/forum-api/shared/utils"
)

func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	limitBody(w, r, h.cfg.Public.MaxCommentLen)
	var body api.CreateCommentRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	added, err := h.addComment.Execute(r.Context(), domain.NewComment{
		Content:  domain.CommentContent(body.Content),
		ThreadId: domain.ThreadId(chi.URLParam(r, "threadId")),
		Owner:    user.Id,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, api.AddCommentResponse{AddedComment: added})
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	err := h.deleteComment.Execute(
		r.Context(),
		domain.ThreadId(chi.URLParam(r, "threadId")),
		domain.CommentId(chi.URLParam(r, "commentId")),
		user.Id,
	)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}
