package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/connect-marketplace/internal/config"
	dbpkg "github.com/BruksfildServices01/connect-marketplace/internal/db"
	"github.com/BruksfildServices01/connect-marketplace/internal/routes"
)

func main() {

	cfg := config.Load()

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	db := dbpkg.NewDB(cfg)

	r := routes.NewEngine(routes.Deps{
		DB:     db,
		Config: cfg,
		Logger: logger,
	})

	logger.Info("server starting", "addr", cfg.Addr(), "env", cfg.AppEnv)
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Error("failed to start server", "error", err)
		os.Exit(1)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
