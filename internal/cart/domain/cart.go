package domain

import (
	"time"

	"github.com/google/uuid"
)

// Cart is the aggregate root for a shopping cart and its lines.
type Cart struct {
	id        uuid.UUID
	owner     Owner
	items     []*CartItem
	createdAt time.Time
	updatedAt time.Time
}

// NewCart builds a cart from nullable identity fields. At least one of userID and
// sessionID must be set.
func NewCart(id uuid.UUID, userID, sessionID *string, createdAt, updatedAt time.Time, items ...*CartItem) (*Cart, error) {
	owner, err := OwnerFrom(userID, sessionID)
	if err != nil {
		return nil, ErrInvalidOwner
	}
	return NewCartForOwner(id, owner, createdAt, updatedAt, items...)
}

// NewCartForOwner builds a cart for an already constructed owner.
func NewCartForOwner(id uuid.UUID, owner Owner, createdAt, updatedAt time.Time, items ...*CartItem) (*Cart, error) {
	if owner.IsZero() {
		return nil, ErrInvalidOwner
	}
	c := &Cart{
		id:        id,
		owner:     owner,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
	c.ReplaceItems(items)
	return c, nil
}

func (c *Cart) ID() uuid.UUID        { return c.id }
func (c *Cart) Owner() Owner         { return c.owner }
func (c *Cart) CreatedAt() time.Time { return c.createdAt }
func (c *Cart) UpdatedAt() time.Time { return c.updatedAt }

// UserID returns the owning user id, if any.
func (c *Cart) UserID() (string, bool) {
	return c.owner.UserID()
}

// SessionID returns the owning session id, if any.
func (c *Cart) SessionID() (string, bool) {
	return c.owner.SessionID()
}

// Items returns a copy of the item slice; the items themselves are shared.
func (c *Cart) Items() []*CartItem {
	out := make([]*CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// FindItem returns the line for the variant, if present.
func (c *Cart) FindItem(variantID uuid.UUID) (*CartItem, bool) {
	for _, item := range c.items {
		if item.variantID == variantID {
			return item, true
		}
	}
	return nil, false
}

// AssignToUser moves ownership to userID and drops the session.
func (c *Cart) AssignToUser(userID string) error {
	owner, err := UserOwner(userID)
	if err != nil {
		return err
	}
	c.owner = owner
	return nil
}

// AssignToSession moves ownership to sessionID and drops the user.
func (c *Cart) AssignToSession(sessionID string) error {
	owner, err := GuestOwner(sessionID)
	if err != nil {
		return err
	}
	c.owner = owner
	return nil
}

// AddItem appends item, or when the cart already holds the variant adds the
// quantities and takes the incoming price snapshot.
func (c *Cart) AddItem(item *CartItem) error {
	if item == nil {
		return ErrInvalidQuantity
	}
	if existing, ok := c.FindItem(item.variantID); ok {
		return existing.merge(item)
	}
	c.items = append(c.items, item)
	return nil
}

// ReplaceItems swaps the whole item collection, e.g. after loading from storage.
func (c *Cart) ReplaceItems(items []*CartItem) {
	c.items = make([]*CartItem, 0, len(items))
	for _, item := range items {
		if item != nil {
			c.items = append(c.items, item)
		}
	}
}
