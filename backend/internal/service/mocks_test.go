package service

import (
	"context"
	"sync"

	"github.com/itchan-dev/forum-api/shared/domain"
)

// --- Mocks ---

// MockThreadRepository mocks the ThreadRepository interface.
type MockThreadRepository struct {
	addThreadFunc    func(thread domain.NewThread) (domain.AddedThread, error)
	getThreadFunc    func(id domain.ThreadId) (domain.Thread, error)
	verifyThreadFunc func(id domain.ThreadId) error

	mu    sync.Mutex
	calls []string
}

func (m *MockThreadRepository) record(call string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, call)
}

func (m *MockThreadRepository) AddThread(_ context.Context, thread domain.NewThread) (domain.AddedThread, error) {
	m.record("AddThread")
	if m.addThreadFunc != nil {
		return m.addThreadFunc(thread)
	}
	return domain.AddedThread{Id: "thread-1", Title: thread.Title, Owner: thread.Owner}, nil
}

func (m *MockThreadRepository) GetThreadById(_ context.Context, id domain.ThreadId) (domain.Thread, error) {
	m.record("GetThreadById")
	if m.getThreadFunc != nil {
		return m.getThreadFunc(id)
	}
	return domain.Thread{Id: id}, nil
}

func (m *MockThreadRepository) VerifyThreadAvailability(_ context.Context, id domain.ThreadId) error {
	m.record("VerifyThreadAvailability")
	if m.verifyThreadFunc != nil {
		return m.verifyThreadFunc(id)
	}
	return nil
}

// MockCommentRepository mocks the CommentRepository interface.
type MockCommentRepository struct {
	addCommentFunc    func(comment domain.NewComment) (domain.AddedComment, error)
	getCommentsFunc   func(threadId domain.ThreadId) ([]domain.Comment, error)
	deleteCommentFunc func(id domain.CommentId) error
	verifyCommentFunc func(id domain.CommentId, userId domain.UserId, threadId domain.ThreadId) error

	mu    sync.Mutex
	calls []string
}

func (m *MockCommentRepository) record(call string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, call)
}

func (m *MockCommentRepository) AddComment(_ context.Context, comment domain.NewComment) (domain.AddedComment, error) {
	m.record("AddComment")
	if m.addCommentFunc != nil {
		return m.addCommentFunc(comment)
	}
	return domain.AddedComment{Id: "comments-1", Content: comment.Content, Owner: comment.Owner}, nil
}

func (m *MockCommentRepository) GetCommentsByThreadId(_ context.Context, threadId domain.ThreadId) ([]domain.Comment, error) {
	m.record("GetCommentsByThreadId")
	if m.getCommentsFunc != nil {
		return m.getCommentsFunc(threadId)
	}
	return []domain.Comment{}, nil
}

func (m *MockCommentRepository) DeleteCommentById(_ context.Context, id domain.CommentId) error {
	m.record("DeleteCommentById")
	if m.deleteCommentFunc != nil {
		return m.deleteCommentFunc(id)
	}
	return nil
}

func (m *MockCommentRepository) VerifyComment(_ context.Context, id domain.CommentId, userId domain.UserId, threadId domain.ThreadId) error {
	m.record("VerifyComment")
	if m.verifyCommentFunc != nil {
		return m.verifyCommentFunc(id, userId, threadId)
	}
	return nil
}

// MockThreadValidator mocks the ThreadValidator interface.
type MockThreadValidator struct {
	titleFunc func(title domain.ThreadTitle) error
	bodyFunc  func(body domain.ThreadBody) error
}

func (m *MockThreadValidator) Title(title domain.ThreadTitle) error {
	if m.titleFunc != nil {
		return m.titleFunc(title)
	}
	return nil
}

func (m *MockThreadValidator) Body(body domain.ThreadBody) error {
	if m.bodyFunc != nil {
		return m.bodyFunc(body)
	}
	return nil
}

// MockCommentValidator mocks the CommentValidator interface.
type MockCommentValidator struct {
	contentFunc func(content domain.CommentContent) error
}

func (m *MockCommentValidator) Content(content domain.CommentContent) error {
	if m.contentFunc != nil {
		return m.contentFunc(content)
	}
	return nil
}

// identitySanitizer returns text unchanged
type identitySanitizer struct{}

func (identitySanitizer) Sanitize(text string) string { return text }
