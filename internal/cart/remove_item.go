package cart

import (
	"context"

	"github.com/google/uuid"
)

// RemoveItemInput identifies the line to delete.
type RemoveItemInput struct {
	CartID uuid.UUID
	ItemID uuid.UUID
}

// RemoveItemUseCase deletes one line unconditionally.
type RemoveItemUseCase struct {
	repo        Repository
	invalidator *Invalidator
}

// NewRemoveItemUseCase wires the use case.
func NewRemoveItemUseCase(repo Repository, cache Cache) *RemoveItemUseCase {
	return &RemoveItemUseCase{repo: repo, invalidator: NewInvalidator(cache)}
}

func (uc *RemoveItemUseCase) Execute(ctx context.Context, in RemoveItemInput) error {
	err := uc.invalidator.Commit(ctx, func(ctx context.Context) error {
		return uc.repo.RemoveItem(ctx, in.CartID, in.ItemID)
	}, cartKey(in.CartID))
	return dependencyErr(err, "remove cart item")
}
