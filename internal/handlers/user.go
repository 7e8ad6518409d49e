package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"ChatAuth/internal/config"
	"ChatAuth/internal/middleware"
	"ChatAuth/internal/service"

	"go.uber.org/zap"
)

// UserHandler обслуживает регистрацию, вход, обновление токена и профиль.
type UserHandler struct {
	UserService  *service.UserService
	TokenService *service.TokenService
	Logger       *zap.SugaredLogger
	Config       *config.Config
}

func NewUserHandler(us *service.UserService, ts *service.TokenService, logger *zap.SugaredLogger, cfg *config.Config) *UserHandler {
	return &UserHandler{UserService: us, TokenService: ts, Logger: logger, Config: cfg}
}

type registerRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
}

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token service.TokenPair `json:"token"`
	Msg   string            `json:"msg"`
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	u, err := h.UserService.Register(r.Context(), req.Username, req.Email, req.Password, req.Password2)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrMissingFields), errors.Is(err, service.ErrPasswordMismatch):
		writeDetail(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, service.ErrEmailTaken), errors.Is(err, service.ErrUsernameTaken):
		writeDetail(w, http.StatusConflict, err.Error())
		return
	default:
		h.Logger.Errorw("register failed", "error", err)
		writeDetail(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, userResponse{ID: u.ID, Username: u.Username, Email: u.Email})
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" {
		writeDetail(w, http.StatusBadRequest, "email and password are required")
		return
	}
	u, err := h.UserService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeDetail(w, http.StatusUnauthorized, err.Error())
			return
		}
		h.Logger.Errorw("login failed", "error", err)
		writeDetail(w, http.StatusInternalServerError, "internal error")
		return
	}
	pair, err := h.TokenService.IssuePair(u.ID)
	if err != nil {
		h.Logger.Errorw("issue tokens", "error", err, "user_id", u.ID)
		writeDetail(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{Token: pair, Msg: "Login successful"})
}

func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeDetail(w, http.StatusUnauthorized, "Authentication credentials were not provided.")
		return
	}
	u, err := h.UserService.GetByID(r.Context(), uid)
	if err != nil {
		writeDetail(w, http.StatusUnauthorized, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, userResponse{ID: u.ID, Username: u.Username})
}
