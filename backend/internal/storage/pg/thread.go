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

const threadIdPrefix = "thread-"

type ThreadRepositoryPostgres struct {
	db          Querier
	idGenerator domain.IdGenerator
}

func NewThreadRepository(db Querier, idGenerator domain.IdGenerator) *ThreadRepositoryPostgres {
	return &ThreadRepositoryPostgres{db: db, idGenerator: idGenerator}
}

func (r *ThreadRepositoryPostgres) AddThread(ctx context.Context, thread domain.NewThread) (domain.AddedThread, error) {
	defer observe("add_thread", time.Now())

	id := threadIdPrefix + r.idGenerator()

	var added domain.AddedThread
	err := r.db.QueryRowContext(ctx, `
        INSERT INTO threads (id, title, body, owner)
        VALUES ($1, $2, $3, $4)
        RETURNING id, title, owner
    `, id, thread.Title, thread.Body, thread.Owner).Scan(&added.Id, &added.Title, &added.Owner)
	if err != nil {
		return domain.AddedThread{}, fmt.Errorf("failed to insert thread: %w", err)
	}
	return added, nil
}

func (r *ThreadRepositoryPostgres) GetThreadById(ctx context.Context, id domain.ThreadId) (domain.Thread, error) {
	defer observe("get_thread", time.Now())

	var thread domain.Thread
	err := r.db.QueryRowContext(ctx, `
        SELECT id, title, body, owner, date
        FROM threads
        WHERE id = $1
    `, id).Scan(&thread.Id, &thread.Title, &thread.Body, &thread.Owner, &thread.Date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Thread{}, internal_errors.NewNotFound("thread not found")
		}
		return domain.Thread{}, fmt.Errorf("failed to fetch thread: %w", err)
	}
	return thread, nil
}

func (r *ThreadRepositoryPostgres) VerifyThreadAvailability(ctx context.Context, id domain.ThreadId) error {
	defer observe("verify_thread", time.Now())

	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM threads WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check thread: %w", err)
	}
	if !exists {
		return internal_errors.NewNotFound("thread not found")
	}
	return nil
}
