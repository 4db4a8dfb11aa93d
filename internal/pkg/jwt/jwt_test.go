package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fixedUUID struct{ id string }

func (g fixedUUID) Generate() string { return g.id }

func newTestJWT(t *testing.T, now time.Time) *Symmetric {
	t.Helper()

	s, err := NewHS512(Config{
		Secret:     []byte("0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"),
		Issuer:     "shoply",
		Audiences:  []string{"shoply-web"},
		AccessTTL:  5 * time.Minute,
		RefreshTTL: 24 * time.Hour,
		Clock:      fixedClock{now: now},
		UUID:       fixedUUID{id: "jti-1"},
	})
	require.NoError(t, err)
	return s
}

func TestNewHS512RejectsShortSecret(t *testing.T) {
	_, err := NewHS512(Config{Secret: []byte("short")})
	assert.ErrorIs(t, err, ErrSigningKeyTooShort)
}

func TestGenerateVerifyRoundTrip(t *testing.T) {
	s := newTestJWT(t, time.Now())

	token, err := s.Generate(KindAccess, 42, "jane@example.com")
	require.NoError(t, err)

	claims, err := s.Verify(token, KindAccess)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "jane@example.com", claims.UserEmail)
	assert.Equal(t, KindAccess, claims.TokenKind)
}

func TestVerifyWrongKind(t *testing.T) {
	s := newTestJWT(t, time.Now())

	refresh, err := s.Generate(KindRefresh, 42, "jane@example.com")
	require.NoError(t, err)

	_, err = s.Verify(refresh, KindAccess)
	assert.ErrorIs(t, err, ErrWrongKind)

	_, err = s.Verify(refresh, KindRefresh)
	assert.NoError(t, err)
}

func TestVerifyExpired(t *testing.T) {
	s := newTestJWT(t, time.Now().Add(-time.Hour))

	token, err := s.Generate(KindAccess, 42, "jane@example.com")
	require.NoError(t, err)

	_, err = s.Verify(token, KindAccess)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyTampered(t *testing.T) {
	s := newTestJWT(t, time.Now())

	token, err := s.Generate(KindAccess, 42, "jane@example.com")
	require.NoError(t, err)

	_, err = s.Verify(token[:len(token)-2]+"xx", KindAccess)
	assert.Error(t, err)
}

func TestAuthContextRoundTrip(t *testing.T) {
	ctx := t.Context()
	assert.Nil(t, GetAuth(ctx))

	ctx = SetAuth(ctx, Claims{UserID: 7, UserEmail: "jane@example.com"})
	clm := GetAuth(ctx)
	require.NotNil(t, clm)
	assert.Equal(t, int64(7), clm.UserID)
}
