package domain

import (
	"github.com/angelmondragon/storefront-backend/pkg/types"
	"github.com/google/uuid"
)

// MergeGuestInto folds every line of guest into user. A variant present in both
// carts keeps the summed quantity and the lower of the two price snapshots; any
// other guest line moves to user unchanged. guest is left empty.
//
// All resulting quantities are checked before user is modified, so on error neither
// cart changes.
func MergeGuestInto(user, guest *Cart) error {
	if user == nil || guest == nil {
		return ErrInvalidOwner
	}

	for _, g := range guest.items {
		if existing, ok := user.FindItem(g.variantID); ok && existing.quantity+g.quantity <= 0 {
			return ErrInvalidQuantity
		}
	}

	for _, g := range guest.items {
		if existing, ok := user.FindItem(g.variantID); ok {
			existing.quantity += g.quantity
			existing.priceAtAdd = types.MinPrice(existing.priceAtAdd, g.priceAtAdd)
			continue
		}
		g.moveTo(user.id)
		user.items = append(user.items, g)
	}
	guest.items = nil
	return nil
}

func (i *CartItem) moveTo(cartID uuid.UUID) {
	i.cartID = cartID
}
