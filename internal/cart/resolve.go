package cart

import (
	"context"
	"strings"
	"time"

	"github.com/angelmondragon/storefront-backend/internal/cart/domain"
	"github.com/angelmondragon/storefront-backend/pkg/logger"
)

// ResolveCartInput carries the caller identity. At least one field must be set.
type ResolveCartInput struct {
	UserID    string
	SessionID string
}

// ResolveCartUseCase maps an identity to exactly one cart, creating it on first use
// and merging the guest cart into the user's cart when both identities are known.
type ResolveCartUseCase struct {
	repo        Repository
	cache       Cache
	invalidator *Invalidator
	ttl         time.Duration
	log         *logger.Logger
}

// NewResolveCartUseCase wires the use case. logg may be nil.
func NewResolveCartUseCase(repo Repository, cache Cache, ttl time.Duration, logg *logger.Logger) *ResolveCartUseCase {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &ResolveCartUseCase{
		repo:        repo,
		cache:       cache,
		invalidator: NewInvalidator(cache),
		ttl:         ttl,
		log:         logg,
	}
}

// Execute resolves the cart for the identity.
func (uc *ResolveCartUseCase) Execute(ctx context.Context, in ResolveCartInput) (*CartDTO, error) {
	userID := strings.TrimSpace(in.UserID)
	sessionID := strings.TrimSpace(in.SessionID)

	switch {
	case userID != "" && sessionID != "":
		return uc.merge(ctx, userID, sessionID)
	case userID != "":
		return uc.single(ctx, userCartKey(userID), func(ctx context.Context) (*domain.Cart, error) {
			return uc.repo.FindCartByUser(ctx, userID)
		}, func() (domain.Owner, error) {
			return domain.UserOwner(userID)
		})
	case sessionID != "":
		return uc.single(ctx, sessionCartKey(sessionID), func(ctx context.Context) (*domain.Cart, error) {
			return uc.repo.FindCartBySession(ctx, sessionID)
		}, func() (domain.Owner, error) {
			return domain.GuestOwner(sessionID)
		})
	default:
		return nil, domain.ErrIdentifierRequired
	}
}

func (uc *ResolveCartUseCase) single(
	ctx context.Context,
	key string,
	find func(context.Context) (*domain.Cart, error),
	owner func() (domain.Owner, error),
) (*CartDTO, error) {
	var cached CartDTO
	if uc.cache != nil && uc.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	found, err := find(ctx)
	if err != nil {
		return nil, dependencyErr(err, "find cart")
	}
	if found == nil {
		o, err := owner()
		if err != nil {
			return nil, err
		}
		found, err = uc.repo.CreateCart(ctx, o)
		if err != nil {
			return nil, dependencyErr(err, "create cart")
		}
	}

	dto := toCartDTO(found)
	uc.store(ctx, key, dto)
	return dto, nil
}

// merge never reads from the cache: a cached session entry may point at a guest cart
// that a concurrent merge already deleted.
func (uc *ResolveCartUseCase) merge(ctx context.Context, userID, sessionID string) (*CartDTO, error) {
	guest, err := uc.repo.FindCartBySession(ctx, sessionID)
	if err != nil {
		return nil, dependencyErr(err, "find guest cart")
	}
	user, err := uc.repo.FindCartByUser(ctx, userID)
	if err != nil {
		return nil, dependencyErr(err, "find user cart")
	}

	stale := []string{userCartKey(userID), sessionCartKey(sessionID)}

	var result *domain.Cart
	if guest == nil || guest.IsEmpty() {
		result = user
		if result == nil {
			owner, err := domain.UserOwner(userID)
			if err != nil {
				return nil, err
			}
			result, err = uc.repo.CreateCart(ctx, owner)
			if err != nil {
				return nil, dependencyErr(err, "create cart")
			}
		}
	} else {
		result, err = uc.repo.MergeGuestCart(ctx, userID, sessionID)
		if err != nil {
			return nil, dependencyErr(err, "merge guest cart")
		}
		stale = append(stale, cartKey(guest.ID()))
		fields := map[string]any{
			"guest_cart_id":  guest.ID().String(),
			"merged_cart_id": result.ID().String(),
			"guest_items":    len(guest.Items()),
		}
		if user != nil {
			stale = append(stale, cartKey(user.ID()))
			fields["user_cart_id"] = user.ID().String()
		}
		logCtx := uc.log.WithFields(uc.log.WithCartOwner(ctx, userID, sessionID), fields)
		uc.log.Info(logCtx, "cart.guest_merged")
	}

	uc.invalidator.AfterCommit(ctx, stale...)

	dto := toCartDTO(result)
	uc.store(ctx, userCartKey(userID), dto)
	return dto, nil
}

func (uc *ResolveCartUseCase) store(ctx context.Context, key string, dto *CartDTO) {
	if uc.cache == nil || dto == nil {
		return
	}
	uc.cache.Set(ctx, key, dto, uc.ttl)
}
