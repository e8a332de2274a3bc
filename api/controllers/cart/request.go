package cart

import (
	"github.com/google/uuid"

	cartdto "github.com/angelmondragon/storefront-backend/api/controllers/cart/dto"
	cartsvc "github.com/angelmondragon/storefront-backend/internal/cart"
)

func toAddItemInput(cartID uuid.UUID, payload cartdto.AddItemRequest) cartsvc.AddItemInput {
	return cartsvc.AddItemInput{
		CartID:    cartID,
		VariantID: payload.VariantID,
		Quantity:  payload.Quantity,
	}
}

func toUpdateItemInput(cartID, itemID uuid.UUID, payload cartdto.UpdateItemRequest) cartsvc.UpdateItemInput {
	input := cartsvc.UpdateItemInput{CartID: cartID, ItemID: itemID}
	if payload.Quantity != nil {
		input.Quantity = *payload.Quantity
	}
	return input
}
