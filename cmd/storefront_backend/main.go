package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/kbeautyshop/storefront_backend/cmd/docs"
	redisadapter "github.com/kbeautyshop/storefront_backend/internal/adapters/cache/redis"
	"github.com/kbeautyshop/storefront_backend/internal/adapters/catalog/dummyjson"
	"github.com/kbeautyshop/storefront_backend/internal/adapters/database/pgsql"
	"github.com/kbeautyshop/storefront_backend/internal/adapters/database/sqlite"
	"github.com/kbeautyshop/storefront_backend/internal/core/services"
	"github.com/kbeautyshop/storefront_backend/internal/handlers"
	"github.com/kbeautyshop/storefront_backend/internal/middleware"
	"github.com/kbeautyshop/storefront_backend/internal/platform/config"
	"github.com/kbeautyshop/storefront_backend/pkg/database"
	goredis "github.com/redis/go-redis/v9"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title K-Beauty Storefront API
// @version 1.0
// @description Storefront backend: cart, catalog, auth and checkout.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos, cleanup, err := buildRepositories(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()

	svc := services.NewContainer(repos)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, svc)
	setupSwaggerRoutes(r, cfg)

	logger.Info("Server starting",
		slog.String("port", cfg.Port),
		slog.String("snapshot_backend", cfg.SnapshotBackend),
	)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// buildRepositories wires the storage adapters for the configured backend.
// Carts can live in Postgres, SQLite or Redis; users and orders need a SQL
// store, so the Redis backend keeps them in the embedded SQLite file.
func buildRepositories(cfg *config.Config, logger *slog.Logger) (services.Repositories, func(), error) {
	repos := services.Repositories{
		Catalog: dummyjson.NewClient(cfg.CatalogBaseURL),
	}
	cleanup := func() {}

	switch cfg.SnapshotBackend {
	case config.BackendPgsql:
		dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return repos, cleanup, err
		}
		if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
			dbPool.Close()
			return repos, cleanup, err
		}
		repos.CartSnapshots = pgsql.NewSnapshotRepository(dbPool)
		repos.Users = pgsql.NewUserRepository(dbPool)
		repos.Orders = pgsql.NewOrderRepository(dbPool)
		cleanup = dbPool.Close
		return repos, cleanup, nil

	case config.BackendRedis:
		client := goredis.NewClient(&goredis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(context.Background()).Err(); err != nil {
			return repos, cleanup, err
		}
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			client.Close()
			return repos, cleanup, err
		}
		repos.CartSnapshots = redisadapter.NewSnapshotRepository(client)
		repos.Users = sqlite.NewUserRepository(db)
		repos.Orders = sqlite.NewOrderRepository(db)
		cleanup = func() {
			db.Close()
			client.Close()
		}
		return repos, cleanup, nil

	default: // sqlite
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return repos, cleanup, err
		}
		repos.CartSnapshots = sqlite.NewSnapshotRepository(db)
		repos.Users = sqlite.NewUserRepository(db)
		repos.Orders = sqlite.NewOrderRepository(db)
		cleanup = func() { db.Close() }
		return repos, cleanup, nil
	}
}

// runMigrations applies the Postgres schema migrations from the migrations
// directory, using a temporary database/sql connection on the pgx stdlib
// driver.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}
	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		// no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
