package domain

import (
	"time"

	"github.com/angelmondragon/storefront-backend/pkg/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem is one line of a cart. Quantity is strictly positive for as long as the
// item exists; a zero quantity is expressed by removing the item.
type CartItem struct {
	id         uuid.UUID
	cartID     uuid.UUID
	variantID  uuid.UUID
	quantity   int
	priceAtAdd types.Price
	createdAt  time.Time
	updatedAt  time.Time
}

// CartItemParams carries the fields needed to build or rehydrate a CartItem.
type CartItemParams struct {
	ID         uuid.UUID
	CartID     uuid.UUID
	VariantID  uuid.UUID
	Quantity   int
	PriceAtAdd decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewCartItem validates the params and returns the item.
func NewCartItem(p CartItemParams) (*CartItem, error) {
	if p.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	price, err := types.NewPrice(p.PriceAtAdd)
	if err != nil {
		return nil, ErrInvalidPrice
	}
	return &CartItem{
		id:         p.ID,
		cartID:     p.CartID,
		variantID:  p.VariantID,
		quantity:   p.Quantity,
		priceAtAdd: price,
		createdAt:  p.CreatedAt,
		updatedAt:  p.UpdatedAt,
	}, nil
}

func (i *CartItem) ID() uuid.UUID           { return i.id }
func (i *CartItem) CartID() uuid.UUID       { return i.cartID }
func (i *CartItem) VariantID() uuid.UUID    { return i.variantID }
func (i *CartItem) Quantity() int           { return i.quantity }
func (i *CartItem) PriceAtAdd() types.Price { return i.priceAtAdd }
func (i *CartItem) CreatedAt() time.Time    { return i.createdAt }
func (i *CartItem) UpdatedAt() time.Time    { return i.updatedAt }

// LineTotal is the snapshot price times quantity.
func (i *CartItem) LineTotal() types.Price {
	return i.priceAtAdd.Mul(i.quantity)
}

// IncreaseQuantity adds delta. A result of zero or less is rejected rather than
// treated as a removal.
func (i *CartItem) IncreaseQuantity(delta int) error {
	next := i.quantity + delta
	if next <= 0 {
		return ErrInvalidQuantity
	}
	i.quantity = next
	return nil
}

// SetQuantity replaces the quantity.
func (i *CartItem) SetQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	i.quantity = quantity
	return nil
}

// UpdatePriceSnapshot overwrites the captured price. Zero is allowed.
func (i *CartItem) UpdatePriceSnapshot(price decimal.Decimal) error {
	p, err := types.NewPrice(price)
	if err != nil {
		return ErrInvalidPrice
	}
	i.priceAtAdd = p
	return nil
}

// merge folds an incoming line for the same variant into i. Both fields are
// validated before either is written.
func (i *CartItem) merge(incoming *CartItem) error {
	next := i.quantity + incoming.quantity
	if next <= 0 {
		return ErrInvalidQuantity
	}
	i.quantity = next
	i.priceAtAdd = incoming.priceAtAdd
	return nil
}
