// Package memory keeps threads and comments in process memory.
// It backs the "memory" storage mode used for local development and tests.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/itchan-dev/forum-api/shared/domain"
)

type commentRow struct {
	domain.Comment
	seq int64 // insertion order, breaks date ties
}

// Storage implements both thread and comment repositories.
type Storage struct {
	mu          sync.RWMutex
	threads     map[domain.ThreadId]domain.Thread
	comments    map[domain.CommentId]commentRow
	seq         int64
	idGenerator domain.IdGenerator
	now         func() time.Time
}

func New(idGenerator domain.IdGenerator) *Storage {
	return &Storage{
		threads:     make(map[domain.ThreadId]domain.Thread),
		comments:    make(map[domain.CommentId]commentRow),
		idGenerator: idGenerator,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Ping always succeeds
func (s *Storage) Ping(_ context.Context) error {
	return nil
}
