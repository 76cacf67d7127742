package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handlers struct {
	Health       http.HandlerFunc
	Register     http.HandlerFunc
	Login        http.HandlerFunc
	AddProduct   http.HandlerFunc
	ListProducts http.HandlerFunc
	AddToCart    http.HandlerFunc
	GetCart      http.HandlerFunc
	PlaceOrder   http.HandlerFunc
}

func NewRouter(h *Handlers, auth func(http.Handler) http.Handler, serviceName string) http.Handler {
	r := chi.NewRouter()

	r.Use(WithRequestID)
	r.Use(MetricsMiddleware(serviceName))
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/health", h.Health)
	r.Post("/user/register", h.Register)
	r.Post("/user/login", h.Login)
	r.Get("/products", h.ListProducts)

	r.Group(func(r chi.Router) {
		r.Use(auth)
		r.Post("/products/add", h.AddProduct)
		r.Post("/cart/add", h.AddToCart)
		r.Get("/cart", h.GetCart)
		r.Post("/orders/place", h.PlaceOrder)
	})

	return r
}
