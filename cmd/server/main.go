package main

import (
	"net/http"

	"ChatAuth/internal/config"
	"ChatAuth/internal/handlers"
	"ChatAuth/internal/middleware"
	"ChatAuth/internal/repo"
	"ChatAuth/internal/service"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	userService := service.NewUserService(userRepo)
	tokenService := service.NewTokenService(cfg.AuthSecret, cfg.AccessTTL, cfg.RefreshTTL)

	h := handlers.NewHandler(userService, tokenService, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"DatabaseDSN", cfg.DatabaseDSN,
		"AccessTTL", cfg.AccessTTL,
		"RefreshTTL", cfg.RefreshTTL,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
