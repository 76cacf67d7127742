package repo

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"dates-shop-backend/internal/models"
)

type OrdersPG struct {
	DB *pgxpool.Pool
}

// PlaceOrder runs the whole placement as one transaction: append one order
// line per item, decrement each product's stock, clear the user's cart.
// Every exit path before Commit rolls back, so a failure of any step leaves
// no order lines, no stock change and the cart intact.
func (r *OrdersPG) PlaceOrder(ctx context.Context, userID int64, items []models.OrderItem) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// One timestamp for the whole placement.
	placedAt := time.Now().UTC()

	for _, it := range items {
		_, err = tx.Exec(ctx, `
			insert into order_lines (user_id, product_id, quantity, placed_at)
			values ($1, $2, $3, $4)
		`, userID, it.ProductID, it.Quantity, placedAt)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" &&
				strings.Contains(pgErr.ConstraintName, "product") {
				return models.ErrProductNotFound
			}
			return err
		}

		if err := decrementStock(ctx, tx, it.ProductID, it.Quantity); err != nil {
			return err
		}
	}

	if err := clearCart(ctx, tx, userID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
