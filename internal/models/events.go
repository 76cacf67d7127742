package models

import (
	"time"

	"github.com/google/uuid"
)

type Event[T any] struct {
	ID      string    `json:"id"`
	Type    string    `json:"type"`
	Version int       `json:"version"`
	Time    time.Time `json:"time"`

	Payload T `json:"payload"`
}

type OrderPlacedPayload struct {
	UserID int64       `json:"user_id"`
	Items  []OrderItem `json:"items"`
}

// NewOrderPlacedEvent is published after a placement commits. It is
// best-effort: consumers must not assume every committed order produced one.
func NewOrderPlacedEvent(userID int64, items []OrderItem) Event[OrderPlacedPayload] {
	return Event[OrderPlacedPayload]{
		ID:      uuid.NewString(),
		Type:    "orders.placed",
		Version: 1,
		Time:    time.Now(),
		Payload: OrderPlacedPayload{
			UserID: userID,
			Items:  items,
		},
	}
}
