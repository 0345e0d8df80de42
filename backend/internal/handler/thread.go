package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/forum-api/shared/api"
	"github.com/itchan-dev/forum-api/shared/domain"
	"github.com/itchan-dev/forum-api/shared/utils"
)

func (h *Handler) AddThread(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	limitBody(w, r, h.cfg.Public.MaxThreadTitleLen+h.cfg.Public.MaxThreadBodyLen)
	var body api.CreateThreadRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	added, err := h.addThread.Execute(r.Context(), domain.NewThread{
		Title: domain.ThreadTitle(body.Title),
		Body:  domain.ThreadBody(body.Body),
		Owner: user.Id,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, api.AddThreadResponse{AddedThread: added})
}

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	threadId := domain.ThreadId(chi.URLParam(r, "threadId"))

	detail, err := h.getThread.Execute(r.Context(), threadId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.NewThreadResponse(detail, h.cfg.Public.MaskDeletedComments))
}
