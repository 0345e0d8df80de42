package service

import (
	"context"

	"github.com/itchan-dev/forum-api/shared/domain"
)

type ThreadRepository interface {
	AddThread(ctx context.Context, thread domain.NewThread) (domain.AddedThread, error)
	GetThreadById(ctx context.Context, id domain.ThreadId) (domain.Thread, error)
	VerifyThreadAvailability(ctx context.Context, id domain.ThreadId) error
}

type CommentRepository interface {
	AddComment(ctx context.Context, comment domain.NewComment) (domain.AddedComment, error)
	GetCommentsByThreadId(ctx context.Context, threadId domain.ThreadId) ([]domain.Comment, error)
	DeleteCommentById(ctx context.Context, id domain.CommentId) error
	VerifyComment(ctx context.Context, id domain.CommentId, userId domain.UserId, threadId domain.ThreadId) error
}

type ThreadValidator interface {
	Title(title domain.ThreadTitle) error
	Body(body domain.ThreadBody) error
}

type CommentValidator interface {
	Content(content domain.CommentContent) error
}

type Sanitizer interface {
	Sanitize(text string) string
}
