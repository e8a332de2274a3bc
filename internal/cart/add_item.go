package cart

import (
	"context"

	"github.com/angelmondragon/storefront-backend/internal/cart/domain"
	"github.com/google/uuid"
)

// AddItemInput adds Quantity units of a variant to a cart.
type AddItemInput struct {
	CartID    uuid.UUID
	VariantID uuid.UUID
	Quantity  int
}

// AddItemUseCase adds a variant to a cart, merging with an existing line for the
// same variant.
type AddItemUseCase struct {
	repo        Repository
	invalidator *Invalidator
}

// NewAddItemUseCase wires the use case.
func NewAddItemUseCase(repo Repository, cache Cache) *AddItemUseCase {
	return &AddItemUseCase{repo: repo, invalidator: NewInvalidator(cache)}
}

// Execute validates the request against the live variant and persists the line.
func (uc *AddItemUseCase) Execute(ctx context.Context, in AddItemInput) (*CartItemDTO, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	variant, err := uc.repo.GetVariantInfo(ctx, in.VariantID)
	if err != nil {
		return nil, dependencyErr(err, "load variant")
	}
	if variant == nil {
		return nil, domain.ErrVariantNotFound
	}
	if !variant.IsAvailable() {
		return nil, domain.ErrVariantUnavailable
	}

	var saved *domain.CartItem
	err = uc.invalidator.Commit(ctx, func(ctx context.Context) error {
		var err error
		saved, err = uc.repo.AddOrUpdateItem(ctx, AddItemParams{
			CartID:        in.CartID,
			VariantID:     in.VariantID,
			Quantity:      in.Quantity,
			PriceSnapshot: variant.LivePrice(),
		})
		return err
	}, cartKey(in.CartID))
	if err != nil {
		return nil, dependencyErr(err, "add cart item")
	}
	return toCartItemDTO(saved), nil
}
