package pg

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/itchan-dev/forum-api/shared/config"
	"github.com/itchan-dev/forum-api/shared/domain"
	"github.com/itchan-dev/forum-api/shared/logger"

	_ "github.com/lib/pq"
)

// Querier is the subset of *sql.DB and *sql.Tx the repositories need.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Storage struct {
	db       *sql.DB
	threads  *ThreadRepositoryPostgres
	comments *CommentRepositoryPostgres
}

func New(ctx context.Context, cfg *config.Config, idGenerator domain.IdGenerator) (*Storage, error) {
	log := logger.Component("pg")
	log.Info("connecting to db", "host", cfg.Private.Pg.Host, "dbname", cfg.Private.Pg.Dbname)
	db, err := Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	log.Info("successfully connected to db")
	return NewWithDB(db, idGenerator), nil
}

// NewWithDB builds Storage over an already opened database.
func NewWithDB(db *sql.DB, idGenerator domain.IdGenerator) *Storage {
	return &Storage{
		db:       db,
		threads:  NewThreadRepository(db, idGenerator),
		comments: NewCommentRepository(db, idGenerator),
	}
}

func Connect(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.Private.Pg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	pool := cfg.Public.PgPool
	if pool.MaxOpenConns > 0 {
		db.SetMaxOpenConns(pool.MaxOpenConns)
	}
	if pool.MaxIdleConns > 0 {
		db.SetMaxIdleConns(pool.MaxIdleConns)
	}
	if pool.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(pool.ConnMaxLifetime)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}

	return db, nil
}

func (s *Storage) Threads() *ThreadRepositoryPostgres {
	return s.threads
}

func (s *Storage) Comments() *CommentRepositoryPostgres {
	return s.comments
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}
