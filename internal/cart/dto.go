package cart

import (
	"time"

	"github.com/angelmondragon/storefront-backend/internal/cart/domain"
	"github.com/angelmondragon/storefront-backend/pkg/types"
	"github.com/google/uuid"
)

// CartDTO is the cacheable result of cart resolution.
type CartDTO struct {
	ID        uuid.UUID `json:"id"`
	UserID    *string   `json:"user_id,omitempty"`
	SessionID *string   `json:"session_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CartItemDTO is a cart line as returned to callers.
type CartItemDTO struct {
	ID         uuid.UUID   `json:"id"`
	CartID     uuid.UUID   `json:"cart_id"`
	VariantID  uuid.UUID   `json:"variant_id"`
	Quantity   int         `json:"quantity"`
	PriceAtAdd types.Price `json:"price_at_add"`
	LineTotal  types.Price `json:"line_total"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// CartDetailItem is a line enriched with the live variant snapshot.
type CartDetailItem struct {
	CartItemDTO
	Variant domain.VariantSnapshot `json:"variant"`
}

// CartDetails is the assembled read view of a cart.
type CartDetails struct {
	CartDTO
	Items      []CartDetailItem   `json:"items"`
	ItemCount  int                `json:"item_count"`
	Subtotal   types.Price        `json:"subtotal"`
	Validation *domain.Validation `json:"validation,omitempty"`
}

func toCartDTO(c *domain.Cart) *CartDTO {
	if c == nil {
		return nil
	}
	userID, sessionID := c.Owner().Fields()
	return &CartDTO{
		ID:        c.ID(),
		UserID:    userID,
		SessionID: sessionID,
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

func toCartItemDTO(item *domain.CartItem) *CartItemDTO {
	if item == nil {
		return nil
	}
	return &CartItemDTO{
		ID:         item.ID(),
		CartID:     item.CartID(),
		VariantID:  item.VariantID(),
		Quantity:   item.Quantity(),
		PriceAtAdd: item.PriceAtAdd(),
		LineTotal:  item.LineTotal(),
		CreatedAt:  item.CreatedAt(),
		UpdatedAt:  item.UpdatedAt(),
	}
}
