package repo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

var schema = []string{
	`create table if not exists users (
		id bigserial primary key,
		name text not null,
		email text unique not null,
		password_hash text not null,
		is_admin boolean not null default false
	)`,
	`create table if not exists products (
		id bigserial primary key,
		name text not null,
		description text not null default '',
		price_cents bigint not null,
		stock int not null check (stock >= 0)
	)`,
	`create table if not exists cart_lines (
		id bigserial primary key,
		user_id bigint not null references users(id) on delete cascade,
		product_id bigint not null references products(id) on delete cascade,
		quantity int not null,
		added_at timestamptz not null default now()
	)`,
	`create table if not exists order_lines (
		id bigserial primary key,
		user_id bigint not null references users(id) on delete cascade,
		product_id bigint not null references products(id) on delete cascade,
		quantity int not null,
		placed_at timestamptz not null
	)`,
	`create index if not exists cart_lines_user_id_idx on cart_lines (user_id)`,
	`create index if not exists order_lines_user_id_idx on order_lines (user_id)`,
}

// InitSchema creates the tables on startup. The stock decrement that the
// schema used to own as a trigger is an explicit statement inside the
// placement transaction instead (see OrdersPG.PlaceOrder).
func InitSchema(ctx context.Context, db *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
