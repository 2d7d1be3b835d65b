package container

import (
	"context"
	"fmt"
	"time"

	"book-inventory-backend/internal/config"
	"book-inventory-backend/internal/domains/book"
	bookHandler "book-inventory-backend/internal/domains/book/handler"
	bookRepo "book-inventory-backend/internal/domains/book/repository"
	bookService "book-inventory-backend/internal/domains/book/service"
	infraCache "book-inventory-backend/internal/infrastructure/cache"
	"book-inventory-backend/internal/infrastructure/database"
	"book-inventory-backend/pkg/cache"
	"book-inventory-backend/pkg/logger"
)

// Container holds the application's dependency graph.
// Everything here is a singleton living for the process lifetime.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache

	BookRepo    book.Repository
	BookService book.Service
	BookHandler *bookHandler.Handler
}

// NewContainer initializes the graph in dependency order:
// config -> infrastructure -> repository -> service -> handler.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	db := database.NewPostgresDB(config.LoadDatabaseConfig(cfg))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)

	// Redis being down is not fatal: the service degrades to uncached reads.
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			logger.Warn("redis connection failed (non-critical)", err)
		}
	}
	c.Cache = redisCache

	c.BookRepo = bookRepo.NewPostgresRepository(db.Pool)
	c.BookService = bookService.NewBookService(c.BookRepo, c.Cache)
	c.BookHandler = bookHandler.NewHandler(c.BookService)

	return c, nil
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			logger.Warn("redis close failed", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
