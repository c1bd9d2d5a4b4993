package auth

import (
	"testing"
	"time"

	"github.com/isdelr/staffdesk-be/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUser = models.User{
	ID:       "user-123",
	Username: "jdoe",
	Email:    "jdoe@example.com",
}

func TestCodecRoundTrip(t *testing.T) {
	t.Parallel()

	codec := NewCodec("super-secret", time.Hour)

	token, err := codec.Issue(testUser)
	require.NoError(t, err)

	claims, err := codec.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, testUser.ID, claims.UserID)
	assert.Equal(t, testUser.Username, claims.Username)
	assert.Equal(t, testUser.Email, claims.Email)
}

func TestCodecDeterministicForFixedClock(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	codec := NewCodec("super-secret", time.Hour)
	codec.now = func() time.Time { return fixed }

	first, err := codec.Issue(testUser)
	require.NoError(t, err)
	second, err := codec.Issue(testUser)
	require.NoError(t, err)
	assert.Equal(t, first, second, "same claim, secret, and timestamp must yield the same token")

	// A later instant must produce a different token for the same claim.
	codec.now = func() time.Time { return fixed.Add(time.Second) }
	third, err := codec.Issue(testUser)
	require.NoError(t, err)
	assert.NotEqual(t, first, third)
}

func TestCodecExpired(t *testing.T) {
	t.Parallel()

	codec := NewCodec("super-secret", time.Minute)
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	codec.now = func() time.Time { return issued }

	token, err := codec.Issue(testUser)
	require.NoError(t, err)

	// Past expiry the same well-signed token reports expired, never invalid.
	codec.now = func() time.Time { return issued.Add(2 * time.Minute) }
	_, err = codec.Decode(token)
	require.ErrorIs(t, err, ErrTokenExpired)
	require.NotErrorIs(t, err, ErrTokenInvalid)
}

func TestCodecWrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewCodec("right-secret", time.Hour)
	token, err := issuer.Issue(testUser)
	require.NoError(t, err)

	verifier := NewCodec("wrong-secret", time.Hour)
	_, err = verifier.Decode(token)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestCodecMalformedToken(t *testing.T) {
	t.Parallel()

	codec := NewCodec("super-secret", time.Hour)
	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		_, err := codec.Decode(tok)
		assert.ErrorIs(t, err, ErrTokenInvalid, "token %q", tok)
	}
}
