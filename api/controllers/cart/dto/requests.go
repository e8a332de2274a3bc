package cartdto

import "github.com/google/uuid"

// AddItemRequest adds a variant to the caller's cart.
type AddItemRequest struct {
	VariantID uuid.UUID `json:"variant_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"min=1"`
}

// UpdateItemRequest sets the absolute quantity of a line. Zero removes it.
type UpdateItemRequest struct {
	Quantity *int `json:"quantity" validate:"required,min=0"`
}
