package cart

import (
	"context"

	"github.com/google/uuid"
)

// ClearCartInput identifies the cart to empty.
type ClearCartInput struct {
	CartID uuid.UUID
}

// ClearCartUseCase removes every line of a cart; the cart itself survives.
type ClearCartUseCase struct {
	repo        Repository
	invalidator *Invalidator
}

// NewClearCartUseCase wires the use case.
func NewClearCartUseCase(repo Repository, cache Cache) *ClearCartUseCase {
	return &ClearCartUseCase{repo: repo, invalidator: NewInvalidator(cache)}
}

func (uc *ClearCartUseCase) Execute(ctx context.Context, in ClearCartInput) error {
	err := uc.invalidator.Commit(ctx, func(ctx context.Context) error {
		return uc.repo.ClearCart(ctx, in.CartID)
	}, cartKey(in.CartID))
	return dependencyErr(err, "clear cart")
}
