package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"dates-shop-backend/internal/models"
)

type UsersPG struct {
	DB *pgxpool.Pool
}

func (r *UsersPG) Create(ctx context.Context, name, email, passwordHash string) (int64, error) {
	var id int64
	err := r.DB.QueryRow(ctx, `
		insert into users (name, email, password_hash, is_admin)
		values ($1, $2, $3, false)
		returning id
	`, name, email, passwordHash).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, models.ErrEmailTaken
		}
		return 0, err
	}
	return id, nil
}

func (r *UsersPG) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	err := r.DB.QueryRow(ctx, `
		select id, name, email, password_hash, is_admin
		from users where email = $1
	`, email).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.IsAdmin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, models.ErrInvalidCredentials
		}
		return models.User{}, err
	}
	return u, nil
}
