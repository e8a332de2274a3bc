package cart

import (
	"context"
	"time"

	"github.com/angelmondragon/storefront-backend/internal/cart/domain"
	"github.com/angelmondragon/storefront-backend/pkg/logger"
	"github.com/angelmondragon/storefront-backend/pkg/types"
	"github.com/google/uuid"
)

// GetCartDetailsInput selects the cart to read.
type GetCartDetailsInput struct {
	CartID uuid.UUID
}

// GetCartDetailsUseCase assembles the cart view and validates each line against
// live variant data.
type GetCartDetailsUseCase struct {
	repo   Repository
	cache  Cache
	ttl    time.Duration
	policy domain.PriceDriftPolicy
	log    *logger.Logger
}

// NewGetCartDetailsUseCase wires the use case. logg may be nil.
func NewGetCartDetailsUseCase(repo Repository, cache Cache, ttl time.Duration, policy domain.PriceDriftPolicy, logg *logger.Logger) *GetCartDetailsUseCase {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &GetCartDetailsUseCase{repo: repo, cache: cache, ttl: ttl, policy: policy, log: logg}
}

// Execute returns the cart view. Views with fatal issues are never cached so a
// restock or republish shows up on the next read.
func (uc *GetCartDetailsUseCase) Execute(ctx context.Context, in GetCartDetailsInput) (*CartDetails, error) {
	key := cartKey(in.CartID)

	var cached CartDetails
	if uc.cache != nil && uc.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	loaded, err := uc.repo.GetCartWithItems(ctx, CartIdentity{CartID: in.CartID})
	if err != nil {
		return nil, dependencyErr(err, "load cart")
	}
	if loaded == nil || loaded.Cart == nil {
		return nil, domain.ErrCartNotFound
	}

	details := uc.assemble(loaded)
	if details.Validation.HasErrors() {
		logCtx := uc.log.WithFields(uc.log.WithCartID(ctx, in.CartID.String()), map[string]any{
			"error_count":   len(details.Validation.Errors),
			"warning_count": len(details.Validation.Warnings),
		})
		uc.log.Info(logCtx, "cart.details_cache_skipped")
		return details, nil
	}
	if uc.cache != nil {
		uc.cache.Set(ctx, key, details, uc.ttl)
	}
	return details, nil
}

func (uc *GetCartDetailsUseCase) assemble(loaded *CartWithItems) *CartDetails {
	details := &CartDetails{
		CartDTO: *toCartDTO(loaded.Cart),
		Items:   make([]CartDetailItem, 0, len(loaded.Items)),
	}

	var (
		classifier domain.Classifier
		subtotal   types.Price
	)
	for _, entry := range loaded.Items {
		if entry.Item == nil {
			continue
		}
		classifier.Add(entry.Item, domain.ValidateItem(entry.Item, entry.Variant, uc.policy))

		details.Items = append(details.Items, CartDetailItem{
			CartItemDTO: *toCartItemDTO(entry.Item),
			Variant:     entry.Variant,
		})
		details.ItemCount += entry.Item.Quantity()
		subtotal = subtotal.Add(entry.Item.LineTotal())
	}

	details.Subtotal = subtotal
	details.Validation = classifier.Result()
	return details
}
