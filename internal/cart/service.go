package cart

import (
	"context"
	"fmt"
	"time"

	"github.com/angelmondragon/storefront-backend/internal/cart/domain"
	"github.com/angelmondragon/storefront-backend/pkg/logger"
)

// Service exposes the cart use cases behind one handle.
type Service interface {
	ResolveCart(ctx context.Context, input ResolveCartInput) (*CartDTO, error)
	AddItem(ctx context.Context, input AddItemInput) (*CartItemDTO, error)
	UpdateItem(ctx context.Context, input UpdateItemInput) (*CartItemDTO, error)
	RemoveItem(ctx context.Context, input RemoveItemInput) error
	ClearCart(ctx context.Context, input ClearCartInput) error
	GetCartDetails(ctx context.Context, input GetCartDetailsInput) (*CartDetails, error)
}

// Options tunes the service. Zero values fall back to defaults.
type Options struct {
	CacheTTL   time.Duration
	PriceDrift domain.PriceDriftPolicy
	Logger     *logger.Logger
}

type service struct {
	resolve *ResolveCartUseCase
	add     *AddItemUseCase
	update  *UpdateItemUseCase
	remove  *RemoveItemUseCase
	clear   *ClearCartUseCase
	details *GetCartDetailsUseCase
}

// NewService builds the cart service backed by the provided repository and cache.
func NewService(repo Repository, cache Cache, opts Options) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	if cache == nil {
		return nil, fmt.Errorf("cart cache required")
	}

	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	policy := opts.PriceDrift
	if policy.Percent.IsZero() && policy.Absolute.IsZero() {
		policy = domain.DefaultPriceDriftPolicy()
	}

	return &service{
		resolve: NewResolveCartUseCase(repo, cache, ttl, opts.Logger),
		add:     NewAddItemUseCase(repo, cache),
		update:  NewUpdateItemUseCase(repo, cache),
		remove:  NewRemoveItemUseCase(repo, cache),
		clear:   NewClearCartUseCase(repo, cache),
		details: NewGetCartDetailsUseCase(repo, cache, ttl, policy, opts.Logger),
	}, nil
}

func (s *service) ResolveCart(ctx context.Context, input ResolveCartInput) (*CartDTO, error) {
	return s.resolve.Execute(ctx, input)
}

func (s *service) AddItem(ctx context.Context, input AddItemInput) (*CartItemDTO, error) {
	return s.add.Execute(ctx, input)
}

func (s *service) UpdateItem(ctx context.Context, input UpdateItemInput) (*CartItemDTO, error) {
	return s.update.Execute(ctx, input)
}

func (s *service) RemoveItem(ctx context.Context, input RemoveItemInput) error {
	return s.remove.Execute(ctx, input)
}

func (s *service) ClearCart(ctx context.Context, input ClearCartInput) error {
	return s.clear.Execute(ctx, input)
}

func (s *service) GetCartDetails(ctx context.Context, input GetCartDetailsInput) (*CartDetails, error) {
	return s.details.Execute(ctx, input)
}
