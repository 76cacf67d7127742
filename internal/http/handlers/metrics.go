package handlers

import "github.com/prometheus/client_golang/prometheus"

var ordersPlacedTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "orders_placed_total",
		Help: "Order placement attempts by outcome",
	},
	[]string{"status"},
)

func init() {
	prometheus.MustRegister(ordersPlacedTotal)
}

func observeOrderPlacement(status string) {
	ordersPlacedTotal.WithLabelValues(status).Inc()
}
