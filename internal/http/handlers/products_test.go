package handlers

import (
	"context"
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

type stubProducts struct {
	added []models.Product
	list  []models.Product
	err   error
}

func (s *stubProducts) Add(ctx context.Context, p models.Product) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.added = append(s.added, p)
	return int64(len(s.added)), nil
}

func (s *stubProducts) List(ctx context.Context) ([]models.Product, error) {
	return s.list, s.err
}

func adminRequest(body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/products/add", strings.NewReader(body))
	return r.WithContext(apihttp.WithUser(r.Context(), service.Claims{UserID: 1, IsAdmin: true}))
}

func TestAddProductRequiresAdmin(t *testing.T) {
	h := &AddProductHandler{Products: &stubProducts{}, Log: zerolog.Nop()}

	r := httptest.NewRequest(http.MethodPost, "/products/add", strings.NewReader(`{}`))
	r = r.WithContext(apihttp.WithUser(r.Context(), service.Claims{UserID: 2}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAddProduct(t *testing.T) {
	products := &stubProducts{}
	h := &AddProductHandler{Products: products, Log: zerolog.Nop()}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, adminRequest(`{"name":"Medjool dates","description":"1kg box","priceCents":1599,"stock":20}`))

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, products.added, 1)
	assert.Equal(t, "Medjool dates", products.added[0].Name)
	assert.Equal(t, 20, products.added[0].Stock)
}

func TestAddProductValidation(t *testing.T) {
	h := &AddProductHandler{Products: &stubProducts{}, Log: zerolog.Nop()}

	for _, body := range []string{
		`{"name":"","priceCents":100,"stock":1}`,
		`{"name":"x","priceCents":-1,"stock":1}`,
		`{"name":"x","priceCents":100,"stock":-1}`,
	} {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, adminRequest(body))
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}

func TestListProductsEmpty(t *testing.T) {
	h := &ListProductsHandler{Products: &stubProducts{}, Log: zerolog.Nop()}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}
