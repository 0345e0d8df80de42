package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/itchan-dev/forum-api/shared/domain"
	internal_errors "github.com/itchan-dev/forum-api/shared/errors"
)

const commentIdPrefix = "comments-"

type CommentRepositoryPostgres struct {
	db          Querier
	idGenerator domain.IdGenerator
}

func NewCommentRepository(db Querier, idGenerator domain.IdGenerator) *CommentRepositoryPostgres {
	return &CommentRepositoryPostgres{db: db, idGenerator: idGenerator}
}

func (r *CommentRepositoryPostgres) AddComment(ctx context.Context, comment domain.NewComment) (domain.AddedComment, error) {
	defer observe("add_comment", time.Now())

	id := commentIdPrefix + r.idGenerator()

	var added domain.AddedComment
	err := r.db.QueryRowContext(ctx, `
        INSERT INTO comments (id, content, thread_id, owner)
        VALUES ($1, $2, $3, $4)
        RETURNING id, content, owner
    `, id, comment.Content, comment.ThreadId, comment.Owner).Scan(&added.Id, &added.Content, &added.Owner)
	if err != nil {
		return domain.AddedComment{}, fmt.Errorf("failed to insert comment: %w", err)
	}
	return added, nil
}

// GetCommentsByThreadId returns every comment of the thread, newest first.
// Soft-deleted comments are included; callers decide how to present them.
func (r *CommentRepositoryPostgres) GetCommentsByThreadId(ctx context.Context, threadId domain.ThreadId) ([]domain.Comment, error) {
	defer observe("get_comments_by_thread", time.Now())

	rows, err := r.db.QueryContext(ctx, `
        SELECT id, content, thread_id, owner, date, deleted
        FROM comments
        WHERE thread_id = $1
        ORDER BY date DESC
    `, threadId)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comments: %w", err)
	}
	defer rows.Close()

	comments := []domain.Comment{}
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.Id, &c.Content, &c.ThreadId, &c.Owner, &c.Date, &c.Deleted); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return comments, nil
}

// DeleteCommentById marks the comment deleted. The row itself is kept.
func (r *CommentRepositoryPostgres) DeleteCommentById(ctx context.Context, id domain.CommentId) error {
	defer observe("delete_comment", time.Now())

	result, err := r.db.ExecContext(ctx, "UPDATE comments SET deleted = true WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return internal_errors.NewNotFound("comment not found")
	}
	return nil
}

// VerifyComment checks, in this order, that the comment exists, that it belongs to
// threadId and that userId owns it. A comment under another thread is reported as
// not found so its existence does not leak across threads.
func (r *CommentRepositoryPostgres) VerifyComment(ctx context.Context, id domain.CommentId, userId domain.UserId, threadId domain.ThreadId) error {
	defer observe("verify_comment", time.Now())

	var owner domain.UserId
	var commentThreadId domain.ThreadId
	err := r.db.QueryRowContext(ctx,
		"SELECT owner, thread_id FROM comments WHERE id = $1",
		id,
	).Scan(&owner, &commentThreadId)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.NewNotFound("comment not found")
		}
		return fmt.Errorf("failed to fetch comment: %w", err)
	}

	if commentThreadId != threadId {
		return internal_errors.NewNotFound("thread not found")
	}
	if owner != userId {
		return internal_errors.NewAuthorization("not comment's owner")
	}
	return nil
}
