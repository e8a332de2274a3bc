package cart

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/angelmondragon/storefront-backend/api/middleware"
	cartsvc "github.com/angelmondragon/storefront-backend/internal/cart"
	"github.com/angelmondragon/storefront-backend/internal/cart/domain"
	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
	"github.com/angelmondragon/storefront-backend/pkg/types"
)

type stubCartService struct {
	cart        *cartsvc.CartDTO
	resolveErr  error
	details     *cartsvc.CartDetails
	item        *cartsvc.CartItemDTO
	err         error
	lastResolve cartsvc.ResolveCartInput
	lastAdd     cartsvc.AddItemInput
	lastUpdate  cartsvc.UpdateItemInput
	lastRemove  cartsvc.RemoveItemInput
	lastClear   cartsvc.ClearCartInput
	lastDetails cartsvc.GetCartDetailsInput
}

func (s *stubCartService) ResolveCart(ctx context.Context, input cartsvc.ResolveCartInput) (*cartsvc.CartDTO, error) {
	s.lastResolve = input
	if s.resolveErr != nil {
		return nil, s.resolveErr
	}
	return s.cart, nil
}

func (s *stubCartService) AddItem(ctx context.Context, input cartsvc.AddItemInput) (*cartsvc.CartItemDTO, error) {
	s.lastAdd = input
	return s.item, s.err
}

func (s *stubCartService) UpdateItem(ctx context.Context, input cartsvc.UpdateItemInput) (*cartsvc.CartItemDTO, error) {
	s.lastUpdate = input
	return s.item, s.err
}

func (s *stubCartService) RemoveItem(ctx context.Context, input cartsvc.RemoveItemInput) error {
	s.lastRemove = input
	return s.err
}

func (s *stubCartService) ClearCart(ctx context.Context, input cartsvc.ClearCartInput) error {
	s.lastClear = input
	return s.err
}

func (s *stubCartService) GetCartDetails(ctx context.Context, input cartsvc.GetCartDetailsInput) (*cartsvc.CartDetails, error) {
	s.lastDetails = input
	return s.details, s.err
}

func newStub() *stubCartService {
	now := time.Now().UTC()
	session := "guest-1"
	return &stubCartService{cart: &cartsvc.CartDTO{ID: uuid.New(), SessionID: &session, CreatedAt: now, UpdatedAt: now}}
}

func guestRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	return req.WithContext(middleware.WithSessionID(req.Context(), "guest-1"))
}

func withItemParam(req *http.Request, itemID string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("itemId", itemID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestCartFetchReturnsDetails(t *testing.T) {
	svc := newStub()
	svc.details = &cartsvc.CartDetails{
		CartDTO:    *svc.cart,
		Items:      []cartsvc.CartDetailItem{},
		Subtotal:   types.MustPrice("0"),
		Validation: &domain.Validation{},
	}

	resp := httptest.NewRecorder()
	CartFetch(svc, nil).ServeHTTP(resp, guestRequest(http.MethodGet, "/api/v1/cart", ""))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	if svc.lastResolve.SessionID != "guest-1" || svc.lastResolve.UserID != "" {
		t.Fatalf("unexpected resolve input %+v", svc.lastResolve)
	}
	if svc.lastDetails.CartID != svc.cart.ID {
		t.Fatalf("details requested for wrong cart %s", svc.lastDetails.CartID)
	}

	var envelope struct {
		Data struct {
			ID       uuid.UUID `json:"id"`
			Subtotal string    `json:"subtotal"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.ID != svc.cart.ID {
		t.Fatalf("unexpected cart id: %s", envelope.Data.ID)
	}
}

func TestCartFetchWithoutIdentity(t *testing.T) {
	svc := newStub()
	svc.resolveErr = domain.ErrIdentifierRequired

	resp := httptest.NewRecorder()
	CartFetch(svc, nil).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), string(domain.KindIdentifierRequired)) {
		t.Fatalf("expected error kind in body: %s", resp.Body.String())
	}
}

func TestCartAddItemCreatesLine(t *testing.T) {
	svc := newStub()
	variantID := uuid.New()
	svc.item = &cartsvc.CartItemDTO{ID: uuid.New(), CartID: svc.cart.ID, VariantID: variantID, Quantity: 2}

	body := `{"variant_id":"` + variantID.String() + `","quantity":2}`
	resp := httptest.NewRecorder()
	CartAddItem(svc, nil).ServeHTTP(resp, guestRequest(http.MethodPost, "/api/v1/cart/items", body))

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
	if svc.lastAdd.CartID != svc.cart.ID || svc.lastAdd.VariantID != variantID || svc.lastAdd.Quantity != 2 {
		t.Fatalf("unexpected add input %+v", svc.lastAdd)
	}
}

func TestCartAddItemRejectsZeroQuantity(t *testing.T) {
	svc := newStub()

	body := `{"variant_id":"` + uuid.NewString() + `","quantity":0}`
	resp := httptest.NewRecorder()
	CartAddItem(svc, nil).ServeHTTP(resp, guestRequest(http.MethodPost, "/api/v1/cart/items", body))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
	if svc.lastAdd.CartID != uuid.Nil {
		t.Fatalf("service must not be called")
	}
}

func TestCartAddItemMapsUnavailableVariant(t *testing.T) {
	svc := newStub()
	svc.err = domain.ErrVariantUnavailable

	body := `{"variant_id":"` + uuid.NewString() + `","quantity":1}`
	resp := httptest.NewRecorder()
	CartAddItem(svc, nil).ServeHTTP(resp, guestRequest(http.MethodPost, "/api/v1/cart/items", body))

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 got %d", resp.Code)
	}
}

func TestCartUpdateItemZeroQuantityReturnsNoContent(t *testing.T) {
	svc := newStub()
	itemID := uuid.New()

	req := withItemParam(guestRequest(http.MethodPatch, "/api/v1/cart/items/"+itemID.String(), `{"quantity":0}`), itemID.String())
	resp := httptest.NewRecorder()
	CartUpdateItem(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204 got %d: %s", resp.Code, resp.Body.String())
	}
	if svc.lastUpdate.ItemID != itemID || svc.lastUpdate.CartID != svc.cart.ID || svc.lastUpdate.Quantity != 0 {
		t.Fatalf("unexpected update input %+v", svc.lastUpdate)
	}
}

func TestCartUpdateItemRequiresQuantity(t *testing.T) {
	svc := newStub()
	itemID := uuid.New()

	req := withItemParam(guestRequest(http.MethodPatch, "/api/v1/cart/items/"+itemID.String(), `{}`), itemID.String())
	resp := httptest.NewRecorder()
	CartUpdateItem(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCartUpdateItemMapsInsufficientStock(t *testing.T) {
	svc := newStub()
	svc.err = domain.ErrInsufficientStock.WithMessage("only 3 units available")
	itemID := uuid.New()

	req := withItemParam(guestRequest(http.MethodPatch, "/api/v1/cart/items/"+itemID.String(), `{"quantity":9}`), itemID.String())
	resp := httptest.NewRecorder()
	CartUpdateItem(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "only 3 units available") {
		t.Fatalf("expected stock message in body: %s", resp.Body.String())
	}
}

func TestCartRemoveItemRejectsInvalidID(t *testing.T) {
	svc := newStub()

	req := withItemParam(guestRequest(http.MethodDelete, "/api/v1/cart/items/nope", ""), "nope")
	resp := httptest.NewRecorder()
	CartRemoveItem(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCartRemoveItemScopesToResolvedCart(t *testing.T) {
	svc := newStub()
	itemID := uuid.New()

	req := withItemParam(guestRequest(http.MethodDelete, "/api/v1/cart/items/"+itemID.String(), ""), itemID.String())
	resp := httptest.NewRecorder()
	CartRemoveItem(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204 got %d", resp.Code)
	}
	if svc.lastRemove.CartID != svc.cart.ID || svc.lastRemove.ItemID != itemID {
		t.Fatalf("unexpected remove input %+v", svc.lastRemove)
	}
}

func TestCartClearPropagatesDependencyErrors(t *testing.T) {
	svc := newStub()
	svc.err = pkgerrors.New(pkgerrors.CodeDependency, "db down")

	resp := httptest.NewRecorder()
	CartClear(svc, nil).ServeHTTP(resp, guestRequest(http.MethodDelete, "/api/v1/cart", ""))

	if resp.Code == http.StatusNoContent || resp.Code < 500 {
		t.Fatalf("expected server error got %d", resp.Code)
	}
	if svc.lastClear.CartID != svc.cart.ID {
		t.Fatalf("unexpected clear input %+v", svc.lastClear)
	}
}
