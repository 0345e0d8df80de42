package service

import (
	"context"

	"github.com/itchan-dev/forum-api/shared/domain"
)

type AddCommentUseCase struct {
	threads   ThreadRepository
	comments  CommentRepository
	validator CommentValidator
	sanitizer Sanitizer
}

func NewAddCommentUseCase(threads ThreadRepository, comments CommentRepository, validator CommentValidator, sanitizer Sanitizer) *AddCommentUseCase {
	return &AddCommentUseCase{threads: threads, comments: comments, validator: validator, sanitizer: sanitizer}
}

func (u *AddCommentUseCase) Execute(ctx context.Context, comment domain.NewComment) (domain.AddedComment, error) {
	comment.Content = u.sanitizer.Sanitize(comment.Content)
	if err := u.validator.Content(comment.Content); err != nil {
		return domain.AddedComment{}, err
	}
	if err := u.threads.VerifyThreadAvailability(ctx, comment.ThreadId); err != nil {
		return domain.AddedComment{}, err
	}
	return u.comments.AddComment(ctx, comment)
}

type DeleteCommentUseCase struct {
	threads  ThreadRepository
	comments CommentRepository
}

func NewDeleteCommentUseCase(threads ThreadRepository, comments CommentRepository) *DeleteCommentUseCase {
	return &DeleteCommentUseCase{threads: threads, comments: comments}
}

// Execute soft-deletes the comment if userId owns it and it lives under threadId.
func (u *DeleteCommentUseCase) Execute(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, userId domain.UserId) error {
	if err := u.threads.VerifyThreadAvailability(ctx, threadId); err != nil {
		return err
	}
	if err := u.comments.VerifyComment(ctx, commentId, userId, threadId); err != nil {
		return err
	}
	return u.comments.DeleteCommentById(ctx, commentId)
}
