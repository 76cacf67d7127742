package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	apihttp "dates-shop-backend/internal/http"
	"dates-shop-backend/internal/models"
)

type Loginer interface {
	Login(ctx context.Context, email, password string) (models.User, string, error)
}

type LoginHandler struct {
	Auth     Loginer
	TokenTTL time.Duration
	Log      zerolog.Logger
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResp struct {
	ID    int64 `json:"id"`
	Admin bool  `json:"admin"`
}

func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	u, token, err := h.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "invalid_credentials", "")
			return
		}
		h.Log.Error().Err(err).Msg("login failed")
		writeError(w, http.StatusInternalServerError, "login_failed", "")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     apihttp.AuthCookie,
		Value:    token,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
		MaxAge:   int(h.TokenTTL.Seconds()),
		Path:     "/",
	})
	writeJSON(w, http.StatusOK, loginResp{ID: u.ID, Admin: u.IsAdmin})
}
