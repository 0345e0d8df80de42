package api

import (
	"time"

	"github.com/itchan-dev/forum-api/shared/domain"
)

const DeletedCommentPlaceholder = "**comment deleted**"

// Request DTOs

type CreateCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

// Response DTOs

type AddCommentResponse struct {
	AddedComment domain.AddedComment `json:"added_comment"`
}

type CommentResponse struct {
	Id      domain.CommentId      `json:"id"`
	Owner   domain.UserId         `json:"owner"`
	Date    time.Time             `json:"date"`
	Content domain.CommentContent `json:"content"`
	Deleted bool                  `json:"deleted"`
}

func newCommentResponse(c domain.Comment, maskDeleted bool) CommentResponse {
	content := c.Content
	if maskDeleted && c.Deleted {
		content = DeletedCommentPlaceholder
	}
	return CommentResponse{
		Id:      c.Id,
		Owner:   c.Owner,
		Date:    c.Date,
		Content: content,
		Deleted: c.Deleted,
	}
}
