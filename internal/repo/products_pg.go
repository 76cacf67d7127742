package repo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"dates-shop-backend/internal/models"
)

type ProductsPG struct {
	DB *pgxpool.Pool
}

func (r *ProductsPG) Add(ctx context.Context, p models.Product) (int64, error) {
	var id int64
	err := r.DB.QueryRow(ctx, `
		insert into products (name, description, price_cents, stock)
		values ($1, $2, $3, $4)
		returning id
	`, p.Name, p.Description, p.PriceCents, p.Stock).Scan(&id)
	return id, err
}

func (r *ProductsPG) List(ctx context.Context) ([]models.Product, error) {
	rows, err := r.DB.Query(ctx, `
		select id, name, description, price_cents, stock
		from products
		order by id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.PriceCents, &p.Stock); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// decrementStock runs inside the placement transaction. The stock >= $2
// guard makes the decrement conditional: zero rows affected means the
// product row exists (the FK on order_lines already vouched for that) but
// cannot cover the quantity. The row lock taken by the update serializes
// concurrent placements of the same product.
func decrementStock(ctx context.Context, tx pgx.Tx, productID int64, qty int) error {
	ct, err := tx.Exec(ctx, `
		update products set stock = stock - $2
		where id = $1 and stock >= $2
	`, productID, qty)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return models.ErrInsufficientStock
	}
	return nil
}
