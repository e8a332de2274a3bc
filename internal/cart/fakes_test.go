package cart

import (
	"context"
	"encoding/json"
	"sort"
	"testing"
	"time"

	"github.com/angelmondragon/storefront-backend/internal/cart/domain"
	"github.com/angelmondragon/storefront-backend/pkg/enums"
	"github.com/angelmondragon/storefront-backend/pkg/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type stubRepo struct {
	userCart  *domain.Cart
	guestCart *domain.Cart
	findErr   error

	created   []domain.Owner
	createErr error

	merged     *domain.Cart
	mergeErr   error
	mergeCalls int

	cartWithItems *CartWithItems
	loadErr       error
	loadCalls     int

	variant    *domain.VariantSnapshot
	variantErr error

	addResult *domain.CartItem
	addErr    error
	addParams []AddItemParams

	itemWithVariant *ItemWithVariant
	itemErr         error
	itemCalls       int

	updated     *domain.CartItem
	updateErr   error
	updateCalls []int

	removed   []uuid.UUID
	removeErr error

	cleared  []uuid.UUID
	clearErr error
}

func (s *stubRepo) FindCartByUser(ctx context.Context, userID string) (*domain.Cart, error) {
	return s.userCart, s.findErr
}

func (s *stubRepo) FindCartBySession(ctx context.Context, sessionID string) (*domain.Cart, error) {
	return s.guestCart, s.findErr
}

func (s *stubRepo) CreateCart(ctx context.Context, owner domain.Owner) (*domain.Cart, error) {
	s.created = append(s.created, owner)
	if s.createErr != nil {
		return nil, s.createErr
	}
	now := time.Now()
	return domain.NewCartForOwner(uuid.New(), owner, now, now)
}

func (s *stubRepo) MergeGuestCart(ctx context.Context, userID, sessionID string) (*domain.Cart, error) {
	s.mergeCalls++
	return s.merged, s.mergeErr
}

func (s *stubRepo) GetCartWithItems(ctx context.Context, identity CartIdentity) (*CartWithItems, error) {
	s.loadCalls++
	return s.cartWithItems, s.loadErr
}

func (s *stubRepo) AddOrUpdateItem(ctx context.Context, params AddItemParams) (*domain.CartItem, error) {
	s.addParams = append(s.addParams, params)
	return s.addResult, s.addErr
}

func (s *stubRepo) UpdateItemQuantity(ctx context.Context, itemID uuid.UUID, quantity int) (*domain.CartItem, error) {
	s.updateCalls = append(s.updateCalls, quantity)
	return s.updated, s.updateErr
}

func (s *stubRepo) RemoveItem(ctx context.Context, cartID, itemID uuid.UUID) error {
	s.removed = append(s.removed, itemID)
	return s.removeErr
}

func (s *stubRepo) ClearCart(ctx context.Context, cartID uuid.UUID) error {
	s.cleared = append(s.cleared, cartID)
	return s.clearErr
}

func (s *stubRepo) GetVariantInfo(ctx context.Context, variantID uuid.UUID) (*domain.VariantSnapshot, error) {
	return s.variant, s.variantErr
}

func (s *stubRepo) GetCartItemWithVariant(ctx context.Context, itemID uuid.UUID) (*ItemWithVariant, error) {
	s.itemCalls++
	return s.itemWithVariant, s.itemErr
}

// memoryCache round-trips values through JSON the way the redis adapter does.
type memoryCache struct {
	entries map[string][]byte
	sets    []string
	deletes []string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}}
}

func (c *memoryCache) Get(ctx context.Context, key string, dest any) bool {
	raw, ok := c.entries[key]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

func (c *memoryCache) Set(ctx context.Context, key string, value any, ttl time.Duration) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.entries[key] = raw
	c.sets = append(c.sets, key)
}

func (c *memoryCache) Delete(ctx context.Context, keys ...string) {
	for _, key := range keys {
		delete(c.entries, key)
		c.deletes = append(c.deletes, key)
	}
}

func (c *memoryCache) deleted() []string {
	out := append([]string(nil), c.deletes...)
	sort.Strings(out)
	return out
}

func strPtr(v string) *string { return &v }

func testCart(t *testing.T, userID, sessionID *string, items ...*domain.CartItem) *domain.Cart {
	t.Helper()
	now := time.Now().UTC()
	c, err := domain.NewCart(uuid.New(), userID, sessionID, now, now, items...)
	if err != nil {
		t.Fatalf("new cart: %v", err)
	}
	return c
}

func testItem(t *testing.T, cartID, variantID uuid.UUID, qty int, price string) *domain.CartItem {
	t.Helper()
	now := time.Now().UTC()
	item, err := domain.NewCartItem(domain.CartItemParams{
		ID:         uuid.New(),
		CartID:     cartID,
		VariantID:  variantID,
		Quantity:   qty,
		PriceAtAdd: decimal.RequireFromString(price),
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		t.Fatalf("new item: %v", err)
	}
	return item
}

func testVariant(id uuid.UUID, price string, stock int, status enums.ProductStatus) domain.VariantSnapshot {
	return domain.VariantSnapshot{
		VariantID:     id,
		SKU:           "SKU-" + id.String()[:8],
		ProductName:   "Linen Shirt",
		ProductSlug:   types.Slug("linen-shirt"),
		StockQuantity: stock,
		Price:         types.MustPrice(price),
		ProductStatus: status,
	}
}
