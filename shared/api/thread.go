package api

import (
	"time"

	"github.com/itchan-dev/forum-api/shared/domain"
)

// Request DTOs

type CreateThreadRequest struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body" validate:"required"`
}

// Response DTOs

type AddThreadResponse struct {
	AddedThread domain.AddedThread `json:"added_thread"`
}

type ThreadDetailResponse struct {
	Id       domain.ThreadId    `json:"id"`
	Title    domain.ThreadTitle `json:"title"`
	Body     domain.ThreadBody  `json:"body"`
	Owner    domain.UserId      `json:"owner"`
	Date     time.Time          `json:"date"`
	Comments []CommentResponse  `json:"comments"`
}

// ThreadResponse wraps a full thread with its comments
type ThreadResponse struct {
	Thread ThreadDetailResponse `json:"thread"`
}

// NewThreadResponse converts the read model. With maskDeleted the content of
// soft-deleted comments is replaced by DeletedCommentPlaceholder.
func NewThreadResponse(detail domain.ThreadDetail, maskDeleted bool) ThreadResponse {
	comments := make([]CommentResponse, 0, len(detail.Comments))
	for _, c := range detail.Comments {
		comments = append(comments, newCommentResponse(c, maskDeleted))
	}
	return ThreadResponse{Thread: ThreadDetailResponse{
		Id:       detail.Id,
		Title:    detail.Title,
		Body:     detail.Body,
		Owner:    detail.Owner,
		Date:     detail.Date,
		Comments: comments,
	}}
}
