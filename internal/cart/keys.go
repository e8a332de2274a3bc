package cart

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DefaultCacheTTL applies to both identity lookups and cart detail views.
const DefaultCacheTTL = 300 * time.Second

func cartKey(cartID uuid.UUID) string {
	return fmt.Sprintf("cart:%s", cartID)
}

func userCartKey(userID string) string {
	return fmt.Sprintf("cart:userId:%s", userID)
}

func sessionCartKey(sessionID string) string {
	return fmt.Sprintf("cart:sessionId:%s", sessionID)
}
