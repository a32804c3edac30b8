package container

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"catalog-backend/internal/config"
	"catalog-backend/internal/infrastructure/database"
	"catalog-backend/internal/infrastructure/email"
	"catalog-backend/pkg/jwt"

	bookHandler "catalog-backend/internal/domains/book/handler"
	bookRepo "catalog-backend/internal/domains/book/repository"
	bookService "catalog-backend/internal/domains/book/service"
	computerHandler "catalog-backend/internal/domains/computer/handler"
	computerRepo "catalog-backend/internal/domains/computer/repository"
	computerService "catalog-backend/internal/domains/computer/service"
)

// Container holds the application's dependency graph. Everything is built
// once at process start and shared for the process lifetime.
type Container struct {
	Config     *config.Config
	Pool       *pgxpool.Pool
	Notifier   email.Notifier
	JWTManager *jwt.Manager

	BookRepo     bookRepo.Repository
	BookService  bookService.ServiceInterface
	BookHandler  *bookHandler.Handler

	ComputerRepo     computerRepo.Repository
	ComputerService  computerService.ServiceInterface
	ComputerHandler  *computerHandler.Handler
}

// NewContainer wires the dependency graph bottom up: config, infrastructure,
// repositories, services, handlers.
func NewContainer(ctx context.Context) (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("environment", cfg.App.Environment).Msg("config loaded")

	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.Pool = pool

	if cfg.Mail.Activate {
		c.Notifier = email.NewSMTPNotifier(
			cfg.Mail.Host, fmt.Sprintf("%d", cfg.Mail.Port), cfg.Mail.From, cfg.Mail.To,
		)
	} else {
		c.Notifier = email.NewLogNotifier()
	}

	c.JWTManager = jwt.NewManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
	)

	c.BookRepo = bookRepo.NewPostgresRepository(pool)
	c.BookService = bookService.NewService(c.BookRepo, c.Notifier)
	c.BookHandler = bookHandler.NewHandler(c.BookService)

	c.ComputerRepo = computerRepo.NewPostgresRepository(pool)
	c.ComputerService = computerService.NewService(c.ComputerRepo, c.Notifier)
	c.ComputerHandler = computerHandler.NewHandler(c.ComputerService)

	return c, nil
}

// Cleanup releases the shared infrastructure.
func (c *Container) Cleanup() {
	if c.Pool != nil {
		c.Pool.Close()
		log.Info().Msg("database pool closed")
	}
}
