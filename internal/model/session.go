package model

import (
	"time"

	"github.com/google/uuid"
)

// Session is the server-side identity record tied to one authenticated
// browser connection. It lives in Redis keyed by Token; the token itself is
// never part of the stored value.
type Session struct {
	Token string `json:"-"`
	// CartID scopes the draft cart. It is fixed at login and survives token
	// rotation, so rotating the cookie never orphans the cart.
	CartID       string    `json:"cart_id"`
	UserID       uuid.UUID `json:"user_id"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	Level        Role      `json:"level"`
	LoginAt      time.Time `json:"login_at"`
	LastActivity time.Time `json:"last_activity"`
	LastRotation time.Time `json:"last_rotation"`
}
