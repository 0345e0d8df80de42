package service

import (
	"context"

	"github.com/itchan-dev/forum-api/shared/domain"
)

type AddThreadUseCase struct {
	threads   ThreadRepository
	validator ThreadValidator
	sanitizer Sanitizer
}

func NewAddThreadUseCase(threads ThreadRepository, validator ThreadValidator, sanitizer Sanitizer) *AddThreadUseCase {
	return &AddThreadUseCase{threads: threads, validator: validator, sanitizer: sanitizer}
}

func (u *AddThreadUseCase) Execute(ctx context.Context, thread domain.NewThread) (domain.AddedThread, error) {
	thread.Title = u.sanitizer.Sanitize(thread.Title)
	thread.Body = u.sanitizer.Sanitize(thread.Body)
	if err := u.validator.Title(thread.Title); err != nil {
		return domain.AddedThread{}, err
	}
	if err := u.validator.Body(thread.Body); err != nil {
		return domain.AddedThread{}, err
	}
	return u.threads.AddThread(ctx, thread)
}

// GetThreadUseCase assembles a thread page: the thread and all of its comments.
type GetThreadUseCase struct {
	threads  ThreadRepository
	comments CommentRepository
}

func NewGetThreadUseCase(threads ThreadRepository, comments CommentRepository) *GetThreadUseCase {
	return &GetThreadUseCase{threads: threads, comments: comments}
}

// Execute fails with whatever the repositories return, untranslated.
// Comments come in repository order (newest first) and are never nil.
func (u *GetThreadUseCase) Execute(ctx context.Context, threadId domain.ThreadId) (domain.ThreadDetail, error) {
	thread, err := u.threads.GetThreadById(ctx, threadId)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	comments, err := u.comments.GetCommentsByThreadId(ctx, threadId)
	if err != nil {
		return domain.ThreadDetail{}, err
	}
	if comments == nil {
		comments = []domain.Comment{}
	}

	return domain.ThreadDetail{Thread: thread, Comments: comments}, nil
}
