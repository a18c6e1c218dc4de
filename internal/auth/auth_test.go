package auth

import (
	"context"
	"testing"
	"time"

	"flightdesk/scheduler/internal/constants"
	"flightdesk/scheduler/internal/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_IssueAndVerify(t *testing.T) {
	m := NewTokenManager("secret", "flightdesk")

	token, err := m.Issue("alice", constants.RoleAdmin, time.Hour)
	require.NoError(t, err)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.UserID())
	assert.Equal(t, constants.RoleAdmin, claims.Role())
	assert.Equal(t, "JWT", claims.Source())
}

func TestTokenManager_Verify_Rejects(t *testing.T) {
	m := NewTokenManager("secret", "flightdesk")
	other := NewTokenManager("another-secret", "flightdesk")
	foreign := NewTokenManager("secret", "someone-else")

	expired := NewTokenManager("secret", "flightdesk")
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expiredToken, err := expired.Issue("bob", constants.RoleUser, time.Hour)
	require.NoError(t, err)

	wrongKey, err := other.Issue("bob", constants.RoleUser, time.Hour)
	require.NoError(t, err)

	wrongIssuer, err := foreign.Issue("bob", constants.RoleUser, time.Hour)
	require.NoError(t, err)

	badRole, err := jwt.NewWithClaims(jwt.SigningMethodHS256, JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "bob",
			Issuer:    "flightdesk",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		RoleValue: "pilot",
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "bob", Issuer: "flightdesk"},
		RoleValue:        constants.RoleUser,
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	for name, token := range map[string]string{
		"garbage":      "not.a.token",
		"expired":      expiredToken,
		"wrong key":    wrongKey,
		"wrong issuer": wrongIssuer,
		"unknown role": badRole,
		"no expiry":    noExpiry,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := m.Verify(token)
			require.Error(t, err)
			assert.Equal(t, 401, errs.HTTPStatus(err))
		})
	}
}

func TestTokenManager_Issue_UnknownRole(t *testing.T) {
	_, err := NewTokenManager("secret", "").Issue("x", "root", time.Hour)
	assert.Error(t, err)
}

func TestBearerToken(t *testing.T) {
	tok, ok := BearerToken("Bearer abc.def")
	assert.True(t, ok)
	assert.Equal(t, "abc.def", tok)

	tok, ok = BearerToken("bearer abc")
	assert.True(t, ok)
	assert.Equal(t, "abc", tok)

	for _, h := range []string{"", "Bearer ", "Basic abc", "abc"} {
		_, ok := BearerToken(h)
		assert.False(t, ok, h)
	}
}

func TestAuthorize(t *testing.T) {
	user := &JWTClaims{RoleValue: constants.RoleUser}
	admin := &JWTClaims{RoleValue: constants.RoleAdmin}

	assert.NoError(t, Authorize(user, CapRead))
	assert.NoError(t, Authorize(admin, CapRead))
	assert.NoError(t, Authorize(admin, CapWrite))

	assert.Equal(t, 403, errs.HTTPStatus(Authorize(user, CapWrite)))
	assert.Equal(t, 401, errs.HTTPStatus(Authorize(nil, CapRead)))
	assert.Equal(t, 403, errs.HTTPStatus(Authorize(&JWTClaims{RoleValue: "guest"}, CapRead)))
	assert.False(t, Allows(constants.RoleAdmin, Capability("launch")))
}

func TestRequestContext(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, GetUserClaims(ctx))
	assert.Empty(t, GetRequestID(ctx))

	claims := &JWTClaims{RoleValue: constants.RoleUser}
	ctx = SetUserClaims(SetRequestID(ctx, "req-1"), claims)
	assert.Equal(t, claims, GetUserClaims(ctx))
	assert.Equal(t, "req-1", GetRequestID(ctx))
}
