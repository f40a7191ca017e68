package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/millbrookfab/shop-planner/backend/internal/config"
	"github.com/millbrookfab/shop-planner/backend/internal/domain"
	"github.com/millbrookfab/shop-planner/backend/internal/handler"
	"github.com/millbrookfab/shop-planner/backend/internal/optimizer"
	"github.com/millbrookfab/shop-planner/backend/internal/repository"
	"github.com/millbrookfab/shop-planner/backend/internal/seed"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	/**********************************************
	 * logger
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	/**********************************************
	 * configuration
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		return
	}

	/**********************************************
	 * in-memory session store
	 **********************************************/
	repo := repository.NewRepository(cfg)

	/**********************************************
	 * initial admin account
	 **********************************************/
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(cfg.InitialAdmin.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("failed to hash initial admin password", "error", err)
		return
	}
	initialAdmin := &domain.User{
		Username:     cfg.InitialAdmin.Username,
		PasswordHash: string(passwordHash),
		FullName:     cfg.InitialAdmin.FullName,
		Role:         domain.RoleAdmin,
	}
	if err := repo.CreateUser(initialAdmin); err != nil && !errors.Is(err, repository.ErrConflict) {
		logger.Error("failed to create initial admin", "error", err)
		return
	}

	/**********************************************
	 * demo data for development
	 **********************************************/
	if cfg.Environment == "development" {
		if err := seed.Seed(repo); err != nil {
			logger.Error("failed to seed demo jobs", "error", err)
			return
		}
	}

	/**********************************************
	 * optimizer client
	 **********************************************/
	opt := optimizer.NewClient(
		cfg.Optimizer.BaseURL,
		cfg.Optimizer.APIKey,
		cfg.Optimizer.Model,
		time.Duration(cfg.Optimizer.Timeout)*time.Second,
	)

	/**********************************************
	 * handler
	 **********************************************/
	handler, err := handler.NewHandler(cfg, repo, opt)
	if err != nil {
		logger.Error("failed to create handler", "error", err)
		return
	}
	handler.RegisterRoutes()

	/**********************************************
	 * HTTP server
	 **********************************************/
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      handler.Mux,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("starting server...", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("failed to start server", slog.String("error", err.Error()))
			return
		}
	}()

	<-quit
	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("failed to shut down server", slog.String("error", err.Error()))
	}
	logger.Info("server stopped")
}
