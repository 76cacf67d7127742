package repo

import (
	"context"
	"encoding/json"
	"time"

	"dates-shop-backend/internal/models"
	"dates-shop-backend/pkg/cache"
)

const productsKey = "products:all"

// ProductsCached is a read-through cache over ProductsPG. Redis being down
// degrades to Postgres; it never fails a request on its own.
type ProductsCached struct {
	PG    *ProductsPG
	Redis *cache.Redis
	TTL   time.Duration
}

func (r *ProductsCached) Add(ctx context.Context, p models.Product) (int64, error) {
	id, err := r.PG.Add(ctx, p)
	if err != nil {
		return 0, err
	}
	_ = r.Redis.Delete(ctx, productsKey)
	return id, nil
}

func (r *ProductsCached) List(ctx context.Context) ([]models.Product, error) {
	if s, err := r.Redis.GetString(ctx, productsKey); err == nil {
		var out []models.Product
		if err := json.Unmarshal([]byte(s), &out); err == nil {
			return out, nil
		}
		// corrupt entry, fall through to Postgres
		_ = r.Redis.Delete(ctx, productsKey)
	}

	out, err := r.PG.List(ctx)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = r.Redis.SetString(ctx, productsKey, string(b), r.TTL)
	}
	return out, nil
}

// Invalidate drops the cached list. Called after a successful placement,
// since stock values changed.
func (r *ProductsCached) Invalidate(ctx context.Context) {
	_ = r.Redis.Delete(ctx, productsKey)
}
