package cart

import (
	"context"
	"time"

	"github.com/angelmondragon/storefront-backend/internal/cart/domain"
	"github.com/angelmondragon/storefront-backend/pkg/types"
	"github.com/google/uuid"
)

// CartIdentity selects a cart by id, user or session. The first non-empty field wins
// in that order.
type CartIdentity struct {
	CartID    uuid.UUID
	UserID    string
	SessionID string
}

// ItemWithVariant pairs a cart line with the live data of the variant it references.
type ItemWithVariant struct {
	Item    *domain.CartItem
	Variant domain.VariantSnapshot
}

// CartWithItems is a cart loaded together with its lines and their variants.
type CartWithItems struct {
	Cart  *domain.Cart
	Items []ItemWithVariant
}

// AddItemParams describes an add-or-merge write.
type AddItemParams struct {
	CartID        uuid.UUID
	VariantID     uuid.UUID
	Quantity      int
	PriceSnapshot types.Price
}

// Repository is the persistence surface required by the cart use cases. Finders
// return (nil, nil) when nothing matches.
type Repository interface {
	FindCartByUser(ctx context.Context, userID string) (*domain.Cart, error)
	FindCartBySession(ctx context.Context, sessionID string) (*domain.Cart, error)
	CreateCart(ctx context.Context, owner domain.Owner) (*domain.Cart, error)
	// MergeGuestCart folds the session's cart into the user's cart atomically and
	// returns the surviving cart. An empty guest cart is left untouched.
	MergeGuestCart(ctx context.Context, userID, sessionID string) (*domain.Cart, error)
	GetCartWithItems(ctx context.Context, identity CartIdentity) (*CartWithItems, error)
	// AddOrUpdateItem inserts the line or, when the variant is already in the cart,
	// adds the quantity and overwrites the price snapshot in a single atomic write.
	AddOrUpdateItem(ctx context.Context, params AddItemParams) (*domain.CartItem, error)
	UpdateItemQuantity(ctx context.Context, itemID uuid.UUID, quantity int) (*domain.CartItem, error)
	RemoveItem(ctx context.Context, cartID, itemID uuid.UUID) error
	ClearCart(ctx context.Context, cartID uuid.UUID) error
	GetVariantInfo(ctx context.Context, variantID uuid.UUID) (*domain.VariantSnapshot, error)
	GetCartItemWithVariant(ctx context.Context, itemID uuid.UUID) (*ItemWithVariant, error)
}

// Cache is an advisory key/value store. Implementations swallow and log their own
// failures: Get reports a miss, Set and Delete become no-ops.
type Cache interface {
	Get(ctx context.Context, key string, dest any) bool
	Set(ctx context.Context, key string, value any, ttl time.Duration)
	Delete(ctx context.Context, keys ...string)
}
