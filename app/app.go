// File: app/app.go
package app

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"simple-bank-api/config"
	"simple-bank-api/db"
	"simple-bank-api/handler"
	"simple-bank-api/logger"
	"simple-bank-api/repository"
	"simple-bank-api/router"
	"simple-bank-api/service"
	"syscall"

	"github.com/redis/go-redis/v9"
)

// TestApp exposes the wired router and its database to integration tests.
type TestApp struct {
	DB     *sql.DB
	Router http.Handler
}

// NewTestApp wires every layer on top of the given connections using the
// loaded configuration. redisClient may be nil.
func NewTestApp(database *sql.DB, redisClient *redis.Client) *TestApp {
	return &TestApp{
		DB:     database,
		Router: buildRouter(database, redisClient),
	}
}

func buildRouter(database *sql.DB, redisClient *redis.Client) http.Handler {
	cfg := config.AppConfig

	authService := service.NewAuthService(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.Bcrypt.Cost)

	var cache service.ICacheClient
	if redisClient != nil {
		cache = redisClient
	}

	// Layers for User
	userRepo := repository.NewUserRepository(database)
	userService := service.NewUserService(userRepo, authService, cache, cfg.Redis.UserCacheTTL)
	userHandler := handler.NewUserHandler(userService)

	// Layers for Account
	accountRepo := repository.NewAccountRepository(database)
	accountService := service.NewAccountService(accountRepo, userService)
	accountHandler := handler.NewAccountHandler(accountService)

	// Layers for Transaction
	transactionRepo := repository.NewTransactionRepository(database)
	transactionService := service.NewTransactionService(database, accountRepo, transactionRepo, userService)
	transactionHandler := handler.NewTransactionHandler(transactionService)

	return router.NewRouter(authService, userHandler, accountHandler, transactionHandler)
}

func Run() {
	config.LoadConfig(".")
	logger.Init(config.AppConfig.Log.Level)
	logger.Log.Info("Logger initialized")
	logger.Log.Info("Configuration loaded successfully")

	database, err := db.Connect()
	if err != nil {
		logger.Log.Fatalf("Error connecting to the database: %v", err)
	}
	defer database.Close()

	if config.AppConfig.Database.AutoMigrate {
		if err := db.Migrate(database, config.AppConfig.Database.MigrationsPath); err != nil {
			logger.Log.Fatalf("Error running migrations: %v", err)
		}
	}

	redisClient, err := db.ConnectRedis()
	if err != nil {
		logger.Log.WithError(err).Warn("Redis unavailable, user profile caching disabled")
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	r := buildRouter(database, redisClient)

	// --- Start the Server with Graceful Shutdown ---
	port := config.AppConfig.Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), config.AppConfig.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}
