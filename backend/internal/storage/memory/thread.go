package memory

import (
	"context"
	"fmt"

	"github.com/itchan-dev/forum-api/shared/domain"
	internal_errors "github.com/itchan-dev/forum-api/shared/errors"
)

func (s *Storage) AddThread(_ context.Context, thread domain.NewThread) (domain.AddedThread, error) {
	id := "thread-" + s.idGenerator()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.threads[id]; exists {
		return domain.AddedThread{}, fmt.Errorf("failed to insert thread: duplicate id %s", id)
	}
	s.threads[id] = domain.Thread{
		Id:    id,
		Title: thread.Title,
		Body:  thread.Body,
		Owner: thread.Owner,
		Date:  s.now(),
	}
	return domain.AddedThread{Id: id, Title: thread.Title, Owner: thread.Owner}, nil
}

func (s *Storage) GetThreadById(_ context.Context, id domain.ThreadId) (domain.Thread, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	thread, ok := s.threads[id]
	if !ok {
		return domain.Thread{}, internal_errors.NewNotFound("thread not found")
	}
	return thread, nil
}

func (s *Storage) VerifyThreadAvailability(_ context.Context, id domain.ThreadId) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.threads[id]; !ok {
		return internal_errors.NewNotFound("thread not found")
	}
	return nil
}
