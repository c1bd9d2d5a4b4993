package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/isdelr/staffdesk-be/internal/respond"
	"github.com/rs/zerolog/log"
)

type contextKey string

const identityKey = contextKey("identity")

// WithIdentity returns a context carrying the verified identity.
func WithIdentity(ctx context.Context, ident Identity) context.Context {
	return context.WithValue(ctx, identityKey, ident)
}

// IdentityFrom returns the identity attached by the gate, if any.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	ident, ok := ctx.Value(identityKey).(Identity)
	return ident, ok
}

// Gate is the per-request authentication enforcement point.
type Gate struct {
	codec    *Codec
	resolver *Resolver
}

// NewGate creates a Gate over the given codec and resolver.
func NewGate(codec *Codec, resolver *Resolver) *Gate {
	return &Gate{codec: codec, resolver: resolver}
}

// Require protects a route: requests without a verified bearer credential
// are rejected before the handler runs. On success the identity is attached
// to the request context.
func (g *Gate) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			respond.Fail(w, http.StatusUnauthorized, "Access denied. No token provided.")
			return
		}

		tokenStr := bearerToken(header)
		if tokenStr == "" {
			respond.Fail(w, http.StatusBadRequest, "Access denied. Invalid token format.")
			return
		}

		claims, err := g.codec.Decode(tokenStr)
		if err != nil {
			if errors.Is(err, ErrTokenExpired) {
				respond.Fail(w, http.StatusUnauthorized, "Access denied. Token expired.")
			} else {
				respond.Fail(w, http.StatusUnauthorized, "Access denied. Invalid token.")
			}
			return
		}

		ident, err := g.resolver.Resolve(claims)
		if err != nil {
			if errors.Is(err, ErrUserGone) {
				respond.Fail(w, http.StatusUnauthorized, "Access denied. User not found.")
				return
			}
			log.Error().Err(err).Str("user_id", claims.UserID).Msg("Identity resolution failed")
			respond.Fail(w, http.StatusInternalServerError, "Server error during token verification.")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), ident)))
	})
}

// Optional attempts the same verification as Require but swallows every
// failure: the handler always runs, with an identity attached only when a
// valid credential was presented. Routes stay reachable anonymously.
func (g *Gate) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := bearerToken(r.Header.Get("Authorization"))
		if tokenStr == "" {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := g.codec.Decode(tokenStr)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ident, err := g.resolver.Resolve(claims)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), ident)))
	})
}

// bearerToken extracts the token segment from an Authorization header of the
// form "Bearer <token>". An empty result means no usable token.
func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
