package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apihttp "dates-shop-backend/internal/http"
	"dates-shop-backend/internal/models"
	"dates-shop-backend/internal/service"
)

type stubPlacer struct {
	err    error
	userID int64
	items  []models.OrderItem
}

func (s *stubPlacer) PlaceOrder(ctx context.Context, userID int64, items []models.OrderItem) error {
	s.userID = userID
	s.items = items
	return s.err
}

func placeOrderRequest(body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/orders/place", strings.NewReader(body))
	return r.WithContext(apihttp.WithUser(r.Context(), service.Claims{UserID: 42}))
}

func TestPlaceOrderHandlerSuccess(t *testing.T) {
	placer := &stubPlacer{}
	h := &PlaceOrderHandler{Orders: placer, Log: zerolog.Nop()}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, placeOrderRequest(`{"cartItems":[{"productId":1,"quantity":2}]}`))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(42), placer.userID)
	require.Len(t, placer.items, 1)
	assert.Equal(t, int64(1), placer.items[0].ProductID)
	assert.Equal(t, 2, placer.items[0].Quantity)
}

func TestPlaceOrderHandlerStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"empty cart", models.ErrEmptyCart, http.StatusBadRequest},
		{"invalid quantity", models.ErrInvalidQuantity, http.StatusBadRequest},
		{"product not found", models.ErrProductNotFound, http.StatusNotFound},
		{"insufficient stock", models.ErrInsufficientStock, http.StatusConflict},
		{"persistence error", errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := &PlaceOrderHandler{Orders: &stubPlacer{err: tc.err}, Log: zerolog.Nop()}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, placeOrderRequest(`{"cartItems":[{"productId":1,"quantity":1}]}`))
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestPlaceOrderHandlerWrappedErrorsStillMap(t *testing.T) {
	wrapped := errors.Join(errors.New("place order"), models.ErrInsufficientStock)
	h := &PlaceOrderHandler{Orders: &stubPlacer{err: wrapped}, Log: zerolog.Nop()}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, placeOrderRequest(`{"cartItems":[{"productId":1,"quantity":1}]}`))
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestPlaceOrderHandlerBadJSON(t *testing.T) {
	h := &PlaceOrderHandler{Orders: &stubPlacer{}, Log: zerolog.Nop()}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, placeOrderRequest(`{"cartItems":`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlaceOrderHandlerNoClaims(t *testing.T) {
	h := &PlaceOrderHandler{Orders: &stubPlacer{}, Log: zerolog.Nop()}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/orders/place", strings.NewReader(`{}`))
	h.ServeHTTP(w, r)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
