package domain

import (
	"time"

	"github.com/google/uuid"
)

// InteractionType classifies a recorded user-product event.
type InteractionType string

const (
	InteractionView      InteractionType = "view"
	InteractionPurchase  InteractionType = "purchase"
	InteractionAddToCart InteractionType = "add_to_cart"
	InteractionWishlist  InteractionType = "wishlist"
)

// InteractionTypes lists every valid interaction type.
var InteractionTypes = []InteractionType{
	InteractionView,
	InteractionPurchase,
	InteractionAddToCart,
	InteractionWishlist,
}

// Interaction is an append-only log entry recording a user-product event.
// Rating is optional for every interaction type.
type Interaction struct {
	ID        uuid.UUID       `json:"id"`
	UserID    string          `json:"user_id"`
	ProductID string          `json:"product_id"`
	Type      InteractionType `json:"interaction_type"`
	Rating    *float64        `json:"rating,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}
