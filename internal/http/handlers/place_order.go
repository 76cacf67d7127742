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

type OrderPlacer interface {
	PlaceOrder(ctx context.Context, userID int64, items []models.OrderItem) error
}

type PlaceOrderHandler struct {
	Orders OrderPlacer
	Log    zerolog.Logger
}

type placeOrderReq struct {
	CartItems []models.OrderItem `json:"cartItems"`
}

func (h *PlaceOrderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	claims, ok := apihttp.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req placeOrderReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	err := h.Orders.PlaceOrder(r.Context(), claims.UserID, req.CartItems)
	switch {
	case err == nil:
		observeOrderPlacement("ok")
		writeJSON(w, http.StatusOK, map[string]string{"status": "placed"})
	case errors.Is(err, models.ErrEmptyCart):
		observeOrderPlacement("empty_cart")
		writeError(w, http.StatusBadRequest, "empty_cart", "")
	case errors.Is(err, models.ErrInvalidQuantity):
		observeOrderPlacement("invalid_quantity")
		writeError(w, http.StatusBadRequest, "invalid_quantity", "")
	case errors.Is(err, models.ErrProductNotFound):
		observeOrderPlacement("product_not_found")
		writeError(w, http.StatusNotFound, "product_not_found", "")
	case errors.Is(err, models.ErrInsufficientStock):
		observeOrderPlacement("insufficient_stock")
		writeError(w, http.StatusConflict, "insufficient_stock", "")
	default:
		observeOrderPlacement("error")
		h.Log.Error().Err(err).Int64("user_id", claims.UserID).Msg("place order failed")
		writeError(w, http.StatusInternalServerError, "place_order_failed", "")
	}
}
