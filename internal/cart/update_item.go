package cart

import (
	"context"
	"fmt"

	"github.com/angelmondragon/storefront-backend/internal/cart/domain"
	"github.com/google/uuid"
)

// UpdateItemInput sets the quantity of a line. Quantity 0 removes the line. When
// CartID is set, the item must belong to that cart.
type UpdateItemInput struct {
	CartID   uuid.UUID
	ItemID   uuid.UUID
	Quantity int
}

// UpdateItemUseCase changes a line's quantity under availability and stock rules.
type UpdateItemUseCase struct {
	repo        Repository
	invalidator *Invalidator
}

// NewUpdateItemUseCase wires the use case.
func NewUpdateItemUseCase(repo Repository, cache Cache) *UpdateItemUseCase {
	return &UpdateItemUseCase{repo: repo, invalidator: NewInvalidator(cache)}
}

// Execute returns the updated line, or nil when the line was removed.
func (uc *UpdateItemUseCase) Execute(ctx context.Context, in UpdateItemInput) (*CartItemDTO, error) {
	if in.Quantity < 0 {
		return nil, domain.ErrInvalidQuantity
	}

	found, err := uc.repo.GetCartItemWithVariant(ctx, in.ItemID)
	if err != nil {
		return nil, dependencyErr(err, "load cart item")
	}
	if found == nil || found.Item == nil {
		return nil, domain.ErrItemNotFound
	}
	if in.CartID != uuid.Nil && found.Item.CartID() != in.CartID {
		return nil, domain.ErrItemNotFound
	}

	cartID := found.Item.CartID()
	if in.Quantity == 0 {
		err := uc.invalidator.Commit(ctx, func(ctx context.Context) error {
			return uc.repo.RemoveItem(ctx, cartID, in.ItemID)
		}, cartKey(cartID))
		if err != nil {
			return nil, dependencyErr(err, "remove cart item")
		}
		return nil, nil
	}

	if !found.Variant.IsAvailable() {
		return nil, domain.ErrVariantUnavailable
	}
	if !found.Variant.HasStockFor(in.Quantity) {
		return nil, domain.ErrInsufficientStock.WithMessage(
			fmt.Sprintf("only %d units available", found.Variant.StockQuantity),
		)
	}
	if err := found.Item.SetQuantity(in.Quantity); err != nil {
		return nil, err
	}

	var saved *domain.CartItem
	err = uc.invalidator.Commit(ctx, func(ctx context.Context) error {
		var err error
		saved, err = uc.repo.UpdateItemQuantity(ctx, in.ItemID, in.Quantity)
		return err
	}, cartKey(cartID))
	if err != nil {
		return nil, dependencyErr(err, "update cart item")
	}
	return toCartItemDTO(saved), nil
}
