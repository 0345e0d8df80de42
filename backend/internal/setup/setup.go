package setup

import (
	"context"
	"fmt"

	"github.com/itchan-dev/forum-api/backend/internal/handler"
	"github.com/itchan-dev/forum-api/backend/internal/service"
	"github.com/itchan-dev/forum-api/backend/internal/storage/memory"
	"github.com/itchan-dev/forum-api/backend/internal/storage/pg"
	"github.com/itchan-dev/forum-api/backend/internal/utils"
	"github.com/itchan-dev/forum-api/shared/config"
	"github.com/itchan-dev/forum-api/shared/jwt"
	"github.com/itchan-dev/forum-api/shared/logger"
	mw "github.com/itchan-dev/forum-api/shared/middleware"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config  *config.Config
	Handler *handler.Handler
	Auth    *mw.Auth
	Jwt     jwt.JwtService
	cleanup func() error
}

// Close releases the storage connection, if any.
func (d *Dependencies) Close() error {
	if d.cleanup == nil {
		return nil
	}
	return d.cleanup()
}

type repositories struct {
	threads  service.ThreadRepository
	comments service.CommentRepository
	health   handler.HealthChecker
	cleanup  func() error
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	repos, err := newRepositories(ctx, cfg)
	if err != nil {
		return nil, err
	}

	sanitizer := utils.NewSanitizer()
	addThread := service.NewAddThreadUseCase(repos.threads, utils.NewThreadValidator(&cfg.Public), sanitizer)
	getThread := service.NewGetThreadUseCase(repos.threads, repos.comments)
	addComment := service.NewAddCommentUseCase(repos.threads, repos.comments, utils.NewCommentValidator(&cfg.Public), sanitizer)
	deleteComment := service.NewDeleteCommentUseCase(repos.threads, repos.comments)

	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())

	return &Dependencies{
		Config:  cfg,
		Handler: handler.New(addThread, getThread, addComment, deleteComment, cfg, repos.health),
		Auth:    mw.NewAuth(jwtService),
		Jwt:     jwtService,
		cleanup: repos.cleanup,
	}, nil
}

func newRepositories(ctx context.Context, cfg *config.Config) (*repositories, error) {
	idGenerator := utils.NewIdGenerator()

	switch cfg.Public.Storage {
	case config.StorageMemory:
		logger.Log.Warn("using in-memory storage, data is lost on restart")
		storage := memory.New(idGenerator)
		return &repositories{threads: storage, comments: storage, health: storage}, nil
	case config.StoragePostgres:
		storage, err := pg.New(ctx, cfg, idGenerator)
		if err != nil {
			return nil, fmt.Errorf("can't init postgres storage: %w", err)
		}
		return &repositories{
			threads:  storage.Threads(),
			comments: storage.Comments(),
			health:   storage,
			cleanup:  storage.Cleanup,
		}, nil
	default:
		return nil, fmt.Errorf("unknown storage %q", cfg.Public.Storage)
	}
}
