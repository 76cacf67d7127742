package models

import "time"

// User is created at registration and immutable afterwards except for the
// admin flag. PasswordHash is a bcrypt hash, never the plain password.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	IsAdmin      bool
}

// Product stock is mutated only by order placement.
type Product struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `json:"priceCents"`
	Stock       int    `json:"stock"`
}

// CartLine is a pending selection, deleted en masse when the owning user's
// order is placed.
type CartLine struct {
	ID        int64
	UserID    int64
	ProductID int64
	Quantity  int
	AddedAt   time.Time
}

// CartView is a cart line joined with its product for display.
type CartView struct {
	CartLineID  int64  `json:"cartLineId"`
	ProductName string `json:"productName"`
	PriceCents  int64  `json:"priceCents"`
	Quantity    int    `json:"quantity"`
}

// OrderItem is one requested (product, quantity) pair of a placement.
type OrderItem struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// OrderLine is an append-only record of a placed purchase; never updated or
// deleted.
type OrderLine struct {
	ID        int64
	UserID    int64
	ProductID int64
	Quantity  int
	PlacedAt  time.Time
}
