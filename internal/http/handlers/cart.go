package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	apihttp "dates-shop-backend/internal/http"
	"dates-shop-backend/internal/models"
)

type CartStore interface {
	Add(ctx context.Context, userID, productID int64, qty int) (int64, error)
	List(ctx context.Context, userID int64) ([]models.CartView, error)
}

type AddToCartHandler struct {
	Cart CartStore
	Log  zerolog.Logger
}

type addToCartReq struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

type addToCartResp struct {
	ID int64 `json:"id"`
}

func (h *AddToCartHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	claims, ok := apihttp.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req addToCartReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if req.ProductID <= 0 || req.Quantity <= 0 {
		writeError(w, http.StatusBadRequest, "validation_error", "productId and quantity must be positive")
		return
	}

	id, err := h.Cart.Add(r.Context(), claims.UserID, req.ProductID, req.Quantity)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "product_not_found", "")
			return
		}
		h.Log.Error().Err(err).Int64("user_id", claims.UserID).Msg("add to cart failed")
		writeError(w, http.StatusInternalServerError, "add_to_cart_failed", "")
		return
	}

	writeJSON(w, http.StatusOK, addToCartResp{ID: id})
}

type GetCartHandler struct {
	Cart CartStore
	Log  zerolog.Logger
}

func (h *GetCartHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	claims, ok := apihttp.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	lines, err := h.Cart.List(r.Context(), claims.UserID)
	if err != nil {
		h.Log.Error().Err(err).Int64("user_id", claims.UserID).Msg("fetch cart failed")
		writeError(w, http.StatusInternalServerError, "fetch_cart_failed", "")
		return
	}
	if lines == nil {
		lines = []models.CartView{}
	}
	writeJSON(w, http.StatusOK, lines)
}
