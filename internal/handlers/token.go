package handlers

import (
	"encoding/json"
	"net/http"
)

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

type refreshResponse struct {
	Access string `json:"access"`
}

// Refresh выдаёт новый access по refresh-токену. Сам refresh не ротируется.
func (h *UserHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Refresh == "" {
		writeDetail(w, http.StatusBadRequest, "refresh is required")
		return
	}
	access, err := h.TokenService.RefreshAccess(req.Refresh)
	if err != nil {
		writeDetail(w, http.StatusUnauthorized, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, refreshResponse{Access: access})
}
