package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	apihttp "dates-shop-backend/internal/http"
	"dates-shop-backend/internal/models"
)

type ProductAdder interface {
	Add(ctx context.Context, p models.Product) (int64, error)
}

type ProductLister interface {
	List(ctx context.Context) ([]models.Product, error)
}

type AddProductHandler struct {
	Products ProductAdder
	Log      zerolog.Logger
}

type addProductReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `json:"priceCents"`
	Stock       int    `json:"stock"`
}

type addProductResp struct {
	ID int64 `json:"id"`
}

func (h *AddProductHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	claims, ok := apihttp.UserFromContext(r.Context())
	if !ok || !claims.IsAdmin {
		writeError(w, http.StatusForbidden, "not_admin", "")
		return
	}

	var req addProductReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if req.Name == "" || req.PriceCents < 0 || req.Stock < 0 {
		writeError(w, http.StatusBadRequest, "validation_error", "name is required, price and stock must be >= 0")
		return
	}

	id, err := h.Products.Add(r.Context(), models.Product{
		Name:        req.Name,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		Stock:       req.Stock,
	})
	if err != nil {
		h.Log.Error().Err(err).Msg("add product failed")
		writeError(w, http.StatusInternalServerError, "add_product_failed", "")
		return
	}

	writeJSON(w, http.StatusOK, addProductResp{ID: id})
}

type ListProductsHandler struct {
	Products ProductLister
	Log      zerolog.Logger
}

func (h *ListProductsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	products, err := h.Products.List(r.Context())
	if err != nil {
		h.Log.Error().Err(err).Msg("list products failed")
		writeError(w, http.StatusInternalServerError, "list_products_failed", "")
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}
