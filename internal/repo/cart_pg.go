package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"dates-shop-backend/internal/models"
)

type CartPG struct {
	DB *pgxpool.Pool
}

func (r *CartPG) Add(ctx context.Context, userID, productID int64, qty int) (int64, error) {
	var id int64
	err := r.DB.QueryRow(ctx, `
		insert into cart_lines (user_id, product_id, quantity)
		values ($1, $2, $3)
		returning id
	`, userID, productID, qty).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return 0, models.ErrProductNotFound
		}
		return 0, err
	}
	return id, nil
}

func (r *CartPG) List(ctx context.Context, userID int64) ([]models.CartView, error) {
	rows, err := r.DB.Query(ctx, `
		select cart_lines.id, products.name, products.price_cents, cart_lines.quantity
		from cart_lines
		inner join products on cart_lines.product_id = products.id
		where cart_lines.user_id = $1
		order by cart_lines.id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.CartView
	for rows.Next() {
		var v models.CartView
		if err := rows.Scan(&v.CartLineID, &v.ProductName, &v.PriceCents, &v.Quantity); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// clearCart removes every cart line of the user inside the placement
// transaction. Clearing an already empty cart is not an error.
func clearCart(ctx context.Context, tx pgx.Tx, userID int64) error {
	_, err := tx.Exec(ctx, `delete from cart_lines where user_id = $1`, userID)
	return err
}
