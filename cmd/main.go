package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/Footy64/api/internal/config"
	"github.com/Footy64/api/internal/handlers"
	"github.com/Footy64/api/internal/repository"
	"github.com/Footy64/api/internal/service"
	"github.com/Footy64/api/internal/service/auth"
	"github.com/Footy64/api/internal/service/match"
	"github.com/Footy64/api/internal/service/team"
	"github.com/Footy64/api/internal/service/user"
	"github.com/Footy64/api/pkg/database"
	"github.com/Footy64/api/pkg/token"
	"github.com/Footy64/api/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: .env file not found: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg := config.Load()

	db, err := database.NewPostgresDB(cfg.Postgres, logger)
	if err != nil {
		logger.Error("failed to initialize db", slog.Any("error", err))
		os.Exit(1)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		logger.Error("migration driver error", slog.Any("error", err))
		os.Exit(1)
	}
	m, err := migrate.NewWithDatabaseInstance(cfg.MigrationsPath, "postgres", driver)
	if err != nil {
		logger.Error("migrate init error", slog.Any("error", err))
		os.Exit(1)
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		logger.Error("migration error", slog.Any("error", err))
		os.Exit(1)
	}

	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("error occurred on closing database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed gracefully")
		}
	}()

	dbInstance := database.NewDB(db)
	txManager, err := database.NewTransactionManager(db)
	if err != nil {
		logger.Error("error creating transaction manager", slog.Any("error", err))
		os.Exit(1)
	}

	tokenManager, err := token.NewManager(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		logger.Error("error creating token manager", slog.Any("error", err))
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(dbInstance)
	teamRepo := repository.NewTeamRepository(dbInstance)
	matchRepo := repository.NewMatchRepository(dbInstance)

	services := &service.Services{
		AuthService:  auth.NewAuthService(userRepo, tokenManager, logger),
		TeamService:  team.NewTeamService(teamRepo, userRepo, txManager, logger),
		MatchService: match.NewMatchService(matchRepo, teamRepo, logger),
		UserService:  user.NewUserService(userRepo, logger),
	}

	handler := handlers.NewHandler(services, tokenManager, logger)

	srv := new(server.Server)
	serverErrors := make(chan error, 1)
	go func() {
		if err := srv.Run(cfg.Port, handler.InitRoutes(cfg.CORSAllowedOrigins)); err != nil {
			serverErrors <- err
		}
	}()
	logger.Info("server started", slog.String("port", cfg.Port))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	select {
	case <-quit:
		logger.Info("gracefully shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("error occurred on server shutting down", slog.Any("error", err))
		}

		logger.Info("server stopped gracefully")
	case err := <-serverErrors:
		logger.Error("error occurred while running server", slog.Any("error", err))
		os.Exit(1)
	}
}
