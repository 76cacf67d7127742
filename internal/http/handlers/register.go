package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"dates-shop-backend/internal/models"
)

type Registrar interface {
	Register(ctx context.Context, name, email, password string) (int64, error)
}

type RegisterHandler struct {
	Auth Registrar
	Log  zerolog.Logger
}

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerResp struct {
	ID int64 `json:"id"`
}

func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "validation_error", "name, email and password are required")
		return
	}

	id, err := h.Auth.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrEmailTaken) {
			writeError(w, http.StatusBadRequest, "email_taken", "")
			return
		}
		h.Log.Error().Err(err).Msg("register failed")
		writeError(w, http.StatusInternalServerError, "registration_failed", "")
		return
	}

	writeJSON(w, http.StatusOK, registerResp{ID: id})
}
