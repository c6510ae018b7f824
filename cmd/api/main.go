package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medreports-backend/internal/config"
	"medreports-backend/internal/database"
	"medreports-backend/internal/handlers"
	"medreports-backend/internal/middleware"
	"medreports-backend/internal/repository"
	"medreports-backend/internal/services"
	"medreports-backend/internal/storage"
	"medreports-backend/internal/token"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	cfg := config.Load()

	db, err := database.Init(cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db)
	reportRepo := repository.NewReportRepository(db)
	files := storage.NewLocalStorage(cfg.UploadDir)
	tokens := token.NewService(cfg.JWTSecret)

	authService := services.NewAuthService(userRepo, tokens)
	reportService := services.NewReportService(reportRepo, userRepo, files)

	authMiddleware := middleware.NewAuthMiddleware(tokens, userRepo)
	router := handlers.NewRouter(
		handlers.NewAuthHandler(authService),
		handlers.NewReportHandler(reportService),
		handlers.NewUserHandler(authService),
		authMiddleware,
	)

	handler := middleware.RequestLogger(logger)(middleware.CORS(cfg.CORSOrigins)(router))

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Handler: handler,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
	logger.Info("server stopped")
}
