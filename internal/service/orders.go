package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"dates-shop-backend/internal/models"
	"dates-shop-backend/pkg/rabbit"
)

// OrderStore owns the placement transaction: append the order lines,
// decrement each product's stock, clear the user's cart — all or nothing.
type OrderStore interface {
	PlaceOrder(ctx context.Context, userID int64, items []models.OrderItem) error
}

// ProductsInvalidator drops cached catalog state after stock changed.
type ProductsInvalidator interface {
	Invalidate(ctx context.Context)
}

type OrdersService struct {
	Store OrderStore
	Log   zerolog.Logger

	// Cache and Publisher are optional; nil disables them.
	Cache     ProductsInvalidator
	Publisher *rabbit.Publisher
}

// PlaceOrder validates the request and runs the placement. Validation
// failures reject before any write. A nil error means the order lines
// exist, stock is decremented and the cart is empty; any error means none
// of that happened.
//
// Placement is deliberately not idempotent: submitting the same items twice
// produces two orders and decrements stock twice.
func (s *OrdersService) PlaceOrder(ctx context.Context, userID int64, items []models.OrderItem) error {
	if len(items) == 0 {
		return models.ErrEmptyCart
	}
	for _, it := range items {
		if it.ProductID <= 0 || it.Quantity <= 0 {
			return models.ErrInvalidQuantity
		}
	}

	if err := s.Store.PlaceOrder(ctx, userID, items); err != nil {
		return fmt.Errorf("place order: %w", err)
	}

	// Post-commit effects only; neither can fail the order.
	if s.Cache != nil {
		s.Cache.Invalidate(ctx)
	}
	if s.Publisher != nil {
		evt := models.NewOrderPlacedEvent(userID, items)
		pubCtx, cancel := rabbit.WithTimeout(ctx)
		err := s.Publisher.PublishJSON(pubCtx, evt.Type, evt, nil)
		cancel()
		if err != nil {
			s.Log.Error().Err(err).Int64("user_id", userID).Msg("publish orders.placed failed")
		}
	}

	s.Log.Info().Int64("user_id", userID).Int("lines", len(items)).Msg("order placed")
	return nil
}
