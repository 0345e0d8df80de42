package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/itchan-dev/forum-api/shared/domain"
	internal_errors "github.com/itchan-dev/forum-api/shared/errors"
)

func (s *Storage) AddComment(_ context.Context, comment domain.NewComment) (domain.AddedComment, error) {
	id := "comments-" + s.idGenerator()

	s.mu.Lock()
	defer s.mu.Unlock()

	// same failures the comments table constraints produce
	if _, ok := s.threads[comment.ThreadId]; !ok {
		return domain.AddedComment{}, fmt.Errorf("failed to insert comment: thread %s does not exist", comment.ThreadId)
	}
	if _, exists := s.comments[id]; exists {
		return domain.AddedComment{}, fmt.Errorf("failed to insert comment: duplicate id %s", id)
	}

	s.seq++
	s.comments[id] = commentRow{
		Comment: domain.Comment{
			Id:       id,
			Content:  comment.Content,
			ThreadId: comment.ThreadId,
			Owner:    comment.Owner,
			Date:     s.now(),
		},
		seq: s.seq,
	}
	return domain.AddedComment{Id: id, Content: comment.Content, Owner: comment.Owner}, nil
}

func (s *Storage) GetCommentsByThreadId(_ context.Context, threadId domain.ThreadId) ([]domain.Comment, error) {
	s.mu.RLock()
	rows := make([]commentRow, 0)
	for _, row := range s.comments {
		if row.ThreadId == threadId {
			rows = append(rows, row)
		}
	}
	s.mu.RUnlock()

	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].Date.Equal(rows[j].Date) {
			return rows[i].Date.After(rows[j].Date)
		}
		return rows[i].seq > rows[j].seq
	})

	comments := make([]domain.Comment, len(rows))
	for i, row := range rows {
		comments[i] = row.Comment
	}
	return comments, nil
}

func (s *Storage) DeleteCommentById(_ context.Context, id domain.CommentId) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.comments[id]
	if !ok {
		return internal_errors.NewNotFound("comment not found")
	}
	row.Deleted = true
	s.comments[id] = row
	return nil
}

func (s *Storage) VerifyComment(_ context.Context, id domain.CommentId, userId domain.UserId, threadId domain.ThreadId) error {
	s.mu.RLock()
	row, ok := s.comments[id]
	s.mu.RUnlock()

	if !ok {
		return internal_errors.NewNotFound("comment not found")
	}
	if row.ThreadId != threadId {
		return internal_errors.NewNotFound("thread not found")
	}
	if row.Owner != userId {
		return internal_errors.NewAuthorization("not comment's owner")
	}
	return nil
}
