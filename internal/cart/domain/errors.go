package domain

import (
	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
)

const (
	KindInvalidOwner       pkgerrors.Kind = "INVALID_OWNER"
	KindInvalidUser        pkgerrors.Kind = "INVALID_USER"
	KindInvalidSession     pkgerrors.Kind = "INVALID_SESSION"
	KindInvalidQuantity    pkgerrors.Kind = "INVALID_QUANTITY"
	KindInvalidPrice       pkgerrors.Kind = "INVALID_PRICE"
	KindIdentifierRequired pkgerrors.Kind = "IDENTIFIER_REQUIRED"
	KindCartNotFound       pkgerrors.Kind = "CART_NOT_FOUND"
	KindVariantNotFound    pkgerrors.Kind = "VARIANT_NOT_FOUND"
	KindItemNotFound       pkgerrors.Kind = "ITEM_NOT_FOUND"
	KindVariantUnavailable pkgerrors.Kind = "VARIANT_UNAVAILABLE"
	KindInsufficientStock  pkgerrors.Kind = "INSUFFICIENT_STOCK"
)

// Sentinels are shared values; derive per-call messages with WithMessage so the
// sentinel itself is never mutated.
var (
	ErrInvalidOwner       = pkgerrors.NewKind(pkgerrors.CodeValidation, KindInvalidOwner, "cart must belong to a user or a session")
	ErrInvalidUser        = pkgerrors.NewKind(pkgerrors.CodeValidation, KindInvalidUser, "user id is required")
	ErrInvalidSession     = pkgerrors.NewKind(pkgerrors.CodeValidation, KindInvalidSession, "session id is required")
	ErrInvalidQuantity    = pkgerrors.NewKind(pkgerrors.CodeValidation, KindInvalidQuantity, "quantity must be a positive integer")
	ErrInvalidPrice       = pkgerrors.NewKind(pkgerrors.CodeValidation, KindInvalidPrice, "price must not be negative")
	ErrIdentifierRequired = pkgerrors.NewKind(pkgerrors.CodeValidation, KindIdentifierRequired, "user id or session id is required")
	ErrCartNotFound       = pkgerrors.NewKind(pkgerrors.CodeNotFound, KindCartNotFound, "cart not found")
	ErrVariantNotFound    = pkgerrors.NewKind(pkgerrors.CodeNotFound, KindVariantNotFound, "product variant not found")
	ErrItemNotFound       = pkgerrors.NewKind(pkgerrors.CodeNotFound, KindItemNotFound, "cart item not found")
	ErrVariantUnavailable = pkgerrors.NewKind(pkgerrors.CodeStateConflict, KindVariantUnavailable, "product is not available for sale")
	ErrInsufficientStock  = pkgerrors.NewKind(pkgerrors.CodeConflict, KindInsufficientStock, "requested quantity exceeds available stock")
)
