package auth

import (
	"errors"
	"fmt"

	"github.com/isdelr/staffdesk-be/internal/models"
)

// ErrUserGone reports a valid token whose subject no longer exists. Tokens
// are stateless and outlive account deletion, so this is checked on every
// request, not just at login.
var ErrUserGone = errors.New("user no longer exists")

// Identity is the per-request record of who the caller is, once verified.
// It lives for a single request and is never shared across requests.
type Identity struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UserLookup is the persistence capability the resolver depends on. The
// boolean result distinguishes an absent user from a lookup failure.
type UserLookup interface {
	FindUserByID(id string) (models.User, bool, error)
}

// Resolver turns verified claims into a request identity, confirming the
// referenced account still exists.
type Resolver struct {
	lookup UserLookup
}

// NewResolver creates a Resolver over the given user lookup.
func NewResolver(lookup UserLookup) *Resolver {
	return &Resolver{lookup: lookup}
}

// Resolve confirms the claim's subject still exists and builds the identity
// attached to the request. Lookup infrastructure failures are wrapped and
// surfaced distinctly from ErrUserGone.
func (r *Resolver) Resolve(claims *Claims) (Identity, error) {
	user, ok, err := r.lookup.FindUserByID(claims.UserID)
	if err != nil {
		return Identity{}, fmt.Errorf("user lookup: %w", err)
	}
	if !ok {
		return Identity{}, ErrUserGone
	}
	return Identity{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
	}, nil
}
