package handlers

import (
	"encoding/json"
	"net/http"

	"ChatAuth/internal/config"
	"ChatAuth/internal/middleware"
	"ChatAuth/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	tokenService *service.TokenService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(tokenService))

	userHandler := NewUserHandler(userService, tokenService, logger, config)

	r.Post("/api/register/", userHandler.Register)
	r.Post("/api/login/", userHandler.Login)
	r.Post("/api/token/refresh/", userHandler.Refresh)
	r.Get("/api/me/", userHandler.Me)

	return &Handler{Router: r}
}

type detailResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, detailResponse{Detail: detail})
}
