package container

import (
	"context"
	"fmt"
	"time"

	"book-catalog-backend/internal/config"
	infraCache "book-catalog-backend/internal/infrastructure/cache"
	"book-catalog-backend/internal/infrastructure/database"
	"book-catalog-backend/internal/infrastructure/storage"
	"book-catalog-backend/pkg/cache"
	"book-catalog-backend/pkg/jwt"
	"book-catalog-backend/pkg/logger"

	"book-catalog-backend/internal/domains/admin"
	adminHandler "book-catalog-backend/internal/domains/admin/handler"
	adminRepo "book-catalog-backend/internal/domains/admin/repository"
	adminService "book-catalog-backend/internal/domains/admin/service"
	"book-catalog-backend/internal/domains/author"
	authorHandler "book-catalog-backend/internal/domains/author/handler"
	authorRepo "book-catalog-backend/internal/domains/author/repository"
	authorService "book-catalog-backend/internal/domains/author/service"
	"book-catalog-backend/internal/domains/book"
	bookHandler "book-catalog-backend/internal/domains/book/handler"
	bookRepo "book-catalog-backend/internal/domains/book/repository"
	bookService "book-catalog-backend/internal/domains/book/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every dependency of the application and is the root
// of the dependency graph. Everything in it is a singleton.
type Container struct {
	// ----------------------------------------
	// INFRASTRUCTURE
	// ----------------------------------------
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	Storage    *storage.MinIOStorage
	JWTManager *jwt.Manager

	// ----------------------------------------
	// REPOSITORIES
	// ----------------------------------------
	AdminRepo  admin.Repository
	AuthorRepo author.Repository
	BookRepo   book.Repository

	// ----------------------------------------
	// SERVICES
	// ----------------------------------------
	AdminService  admin.Service
	AuthorService author.Service
	BookService   book.Service

	// ----------------------------------------
	// HANDLERS
	// ----------------------------------------
	AdminHandler  *adminHandler.AdminHandler
	AuthorHandler *authorHandler.AuthorHandler
	BookHandler   *bookHandler.BookHandler
}

// NewContainer builds the full dependency graph.
//
// Initialization order matters:
// 1. Config (depends on nothing)
// 2. Infrastructure (DB, Redis, MinIO) - depends on Config
// 3. Repositories - depend on Infrastructure
// 4. Services - depend on Repositories
// 5. Handlers - depend on Services
func NewContainer() (*Container, error) {
	logger.Debug("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	logger.Info("✅ Config loaded", map[string]interface{}{"environment": cfg.App.Environment})

	// ========================================
	// STEP 2: DATABASE
	// ========================================
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	c.DB = db
	logger.Debug("✅ Database connected")

	// ========================================
	// STEP 3: REDIS
	// ========================================
	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)

	// Redis only backs login throttling, so a failure here degrades
	// instead of aborting startup.
	if err := redisCache.Connect(context.Background()); err != nil {
		logger.Error("⚠️  Redis connection failed (non-critical)", err)
	} else {
		logger.Debug("✅ Redis connected")
	}
	c.Cache = redisCache

	// ========================================
	// STEP 4: OBJECT STORAGE
	// ========================================
	minioStorage, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("failed to init object storage: %w", err)
	}
	c.Storage = minioStorage
	logger.Debug("✅ Object storage ready")

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret)

	// ========================================
	// STEP 5: REPOSITORIES
	// ========================================
	c.AdminRepo = adminRepo.NewPostgresRepository(db.Pool)
	c.AuthorRepo = authorRepo.NewPostgresRepository(db.Pool)
	c.BookRepo = bookRepo.NewPostgresBookRepository(db.Pool)

	// ========================================
	// STEP 6: SERVICES
	// ========================================
	c.AdminService = adminService.NewAdminService(
		c.AdminRepo,
		c.JWTManager,
		c.Cache,
		adminService.ThrottleConfig{
			MaxAttempts: cfg.Login.MaxAttempts,
			Window:      time.Duration(cfg.Login.WindowMinutes) * time.Minute,
		},
	)
	// Book repo doubles as the author domain's book counter for the
	// delete guard.
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo, c.BookRepo)
	c.BookService = bookService.NewBookService(
		c.BookRepo,
		c.AuthorRepo,
		c.Storage,
		storage.NewImageProcessor(),
	)

	// ========================================
	// STEP 7: HANDLERS
	// ========================================
	c.AdminHandler = adminHandler.NewAdminHandler(c.AdminService)
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)

	logger.Debug("🎉 DI Container initialized successfully")
	return c, nil
}

// Cleanup releases resources during graceful shutdown
func (c *Container) Cleanup() {
	logger.Debug("🧹 Cleaning up container resources...")

	if c.DB != nil {
		c.DB.Close()
		logger.Debug("✅ Database connections closed")
	}

	if c.Cache != nil {
		if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
			if err := rc.Close(); err != nil {
				logger.Error("⚠️  Failed to close Redis", err)
			} else {
				logger.Debug("✅ Redis connections closed")
			}
		}
	}

	logger.Debug("✅ Container cleanup completed")
}
