package domain

import "strings"

type ownerKind uint8

const (
	ownerNone ownerKind = iota
	ownerUser
	ownerGuest
)

// Owner identifies who a cart belongs to: an authenticated user or an anonymous
// session, never both. The zero value owns nothing and is rejected by NewCart.
type Owner struct {
	kind ownerKind
	id   string
}

// UserOwner builds an owner for an authenticated user.
func UserOwner(userID string) (Owner, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Owner{}, ErrInvalidUser
	}
	return Owner{kind: ownerUser, id: userID}, nil
}

// GuestOwner builds an owner for an anonymous session.
func GuestOwner(sessionID string) (Owner, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return Owner{}, ErrInvalidSession
	}
	return Owner{kind: ownerGuest, id: sessionID}, nil
}

// OwnerFrom picks the owner from nullable identity fields. A user id takes
// precedence when both are set.
func OwnerFrom(userID, sessionID *string) (Owner, error) {
	if userID != nil && strings.TrimSpace(*userID) != "" {
		return UserOwner(*userID)
	}
	if sessionID != nil && strings.TrimSpace(*sessionID) != "" {
		return GuestOwner(*sessionID)
	}
	return Owner{}, ErrInvalidOwner
}

func (o Owner) IsZero() bool {
	return o.kind == ownerNone
}

func (o Owner) IsUser() bool {
	return o.kind == ownerUser
}

func (o Owner) IsGuest() bool {
	return o.kind == ownerGuest
}

// UserID returns the user id when the owner is a user.
func (o Owner) UserID() (string, bool) {
	if o.kind != ownerUser {
		return "", false
	}
	return o.id, true
}

// SessionID returns the session id when the owner is a guest.
func (o Owner) SessionID() (string, bool) {
	if o.kind != ownerGuest {
		return "", false
	}
	return o.id, true
}

// Fields splits the owner back into nullable columns for persistence.
func (o Owner) Fields() (userID, sessionID *string) {
	id := o.id
	switch o.kind {
	case ownerUser:
		return &id, nil
	case ownerGuest:
		return nil, &id
	}
	return nil, nil
}
