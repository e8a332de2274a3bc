package cart

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/angelmondragon/storefront-backend/internal/cart/domain"
	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
	"github.com/google/uuid"
)

func TestResolveCartRequiresIdentity(t *testing.T) {
	t.Parallel()

	repo := &stubRepo{}
	uc := NewResolveCartUseCase(repo, newMemoryCache(), 0, nil)

	_, err := uc.Execute(context.Background(), ResolveCartInput{UserID: "  ", SessionID: ""})
	if !pkgerrors.IsKind(err, domain.KindIdentifierRequired) {
		t.Fatalf("expected identifier required, got %v", err)
	}
	if len(repo.created) != 0 || repo.mergeCalls != 0 {
		t.Fatalf("repository should not be touched")
	}
}

func TestResolveCartUserCacheHit(t *testing.T) {
	t.Parallel()

	cache := newMemoryCache()
	cached := &CartDTO{ID: uuid.New(), UserID: strPtr("U")}
	cache.Set(context.Background(), userCartKey("U"), cached, DefaultCacheTTL)

	repo := &stubRepo{findErr: errors.New("repository should not be called")}
	uc := NewResolveCartUseCase(repo, cache, 0, nil)

	got, err := uc.Execute(context.Background(), ResolveCartInput{UserID: "U"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != cached.ID {
		t.Fatalf("expected cached cart %s, got %s", cached.ID, got.ID)
	}
}

func TestResolveCartCreatesUserCart(t *testing.T) {
	t.Parallel()

	cache := newMemoryCache()
	repo := &stubRepo{}
	uc := NewResolveCartUseCase(repo, cache, 0, nil)

	got, err := uc.Execute(context.Background(), ResolveCartInput{UserID: "U"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.created) != 1 || !repo.created[0].IsUser() {
		t.Fatalf("expected one user-owned cart created, got %+v", repo.created)
	}
	if got.UserID == nil || *got.UserID != "U" || got.SessionID != nil {
		t.Fatalf("unexpected owner on result: %+v", got)
	}
	if !reflect.DeepEqual(cache.sets, []string{"cart:userId:U"}) {
		t.Fatalf("unexpected cache writes: %v", cache.sets)
	}
}

func TestResolveCartReturnsExistingGuestCart(t *testing.T) {
	t.Parallel()

	guest := testCart(t, nil, strPtr("S"))
	cache := newMemoryCache()
	repo := &stubRepo{guestCart: guest}
	uc := NewResolveCartUseCase(repo, cache, 0, nil)

	got, err := uc.Execute(context.Background(), ResolveCartInput{SessionID: "S"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != guest.ID() {
		t.Fatalf("expected guest cart %s, got %s", guest.ID(), got.ID)
	}
	if len(repo.created) != 0 {
		t.Fatalf("no cart should be created")
	}
	if !reflect.DeepEqual(cache.sets, []string{"cart:sessionId:S"}) {
		t.Fatalf("unexpected cache writes: %v", cache.sets)
	}
}

func TestResolveCartMergesGuestIntoUser(t *testing.T) {
	t.Parallel()

	variant := uuid.New()
	guest := testCart(t, nil, strPtr("S"))
	if err := guest.AddItem(testItem(t, guest.ID(), variant, 2, "10.00")); err != nil {
		t.Fatalf("add guest item: %v", err)
	}
	user := testCart(t, strPtr("U"), nil)
	merged := testCart(t, strPtr("U"), nil, testItem(t, user.ID(), variant, 2, "10.00"))

	cache := newMemoryCache()
	cache.Set(context.Background(), userCartKey("U"), &CartDTO{ID: uuid.New()}, DefaultCacheTTL)
	cache.sets = nil

	repo := &stubRepo{userCart: user, guestCart: guest, merged: merged}
	uc := NewResolveCartUseCase(repo, cache, 0, nil)

	got, err := uc.Execute(context.Background(), ResolveCartInput{UserID: "U", SessionID: "S"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != merged.ID() {
		t.Fatalf("expected merged cart %s, got %s", merged.ID(), got.ID)
	}
	if repo.mergeCalls != 1 {
		t.Fatalf("expected one merge, got %d", repo.mergeCalls)
	}

	deleted := cache.deleted()
	for _, key := range []string{"cart:userId:U", "cart:sessionId:S", cartKey(guest.ID()), cartKey(user.ID())} {
		if !contains(deleted, key) {
			t.Fatalf("expected %s to be invalidated, got %v", key, deleted)
		}
	}
	if !reflect.DeepEqual(cache.sets, []string{"cart:userId:U"}) {
		t.Fatalf("merged cart should be cached under the user key, got %v", cache.sets)
	}
}

func TestResolveCartEmptyGuestCreatesUserCart(t *testing.T) {
	t.Parallel()

	repo := &stubRepo{guestCart: testCart(t, nil, strPtr("S"))}
	uc := NewResolveCartUseCase(repo, newMemoryCache(), 0, nil)

	got, err := uc.Execute(context.Background(), ResolveCartInput{UserID: "U", SessionID: "S"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.mergeCalls != 0 {
		t.Fatalf("empty guest cart should not be merged")
	}
	if len(repo.created) != 1 || got.UserID == nil || *got.UserID != "U" {
		t.Fatalf("expected a new user cart, got %+v", got)
	}
}

func TestResolveCartMergeFailureKeepsCache(t *testing.T) {
	t.Parallel()

	guest := testCart(t, nil, strPtr("S"))
	if err := guest.AddItem(testItem(t, guest.ID(), uuid.New(), 1, "5.00")); err != nil {
		t.Fatalf("add guest item: %v", err)
	}
	cache := newMemoryCache()
	repo := &stubRepo{guestCart: guest, mergeErr: errors.New("tx aborted")}
	uc := NewResolveCartUseCase(repo, cache, 0, nil)

	_, err := uc.Execute(context.Background(), ResolveCartInput{UserID: "U", SessionID: "S"})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
	if len(cache.deletes) != 0 || len(cache.sets) != 0 {
		t.Fatalf("cache must be untouched on failure: deletes=%v sets=%v", cache.deletes, cache.sets)
	}
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
