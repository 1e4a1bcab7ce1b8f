package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leon37/SavingsCoach/internal/apperr"
	"github.com/leon37/SavingsCoach/internal/config"
	"github.com/leon37/SavingsCoach/internal/repository"
)

func newAuthService() *AuthService {
	store := repository.NewMemoryStore()
	return NewAuthService(store.Users(), config.JWTConfig{Secret: "test-secret", ExpireHours: 1})
}

func TestRegisterLoginRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService()

	token, user, err := svc.Register(ctx, "A@B.com", "abc12345", " A ")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, "a@b.com", user.Email, "email lowercased")
	assert.Equal(t, "A", user.Name, "name trimmed")
	assert.NotEqual(t, "abc12345", user.Password, "password stored hashed")

	loginToken, loginUser, err := svc.Login(ctx, "a@b.com", "abc12345")
	require.NoError(t, err)
	require.NotEmpty(t, loginToken)
	assert.Equal(t, user.ID, loginUser.ID)

	// The decoded token carries the registered user's id.
	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "a@b.com", claims.Email)
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService()

	cases := []struct {
		name            string
		email, pw, user string
	}{
		{"missing fields", "", "", ""},
		{"bad email", "not-an-email", "abc12345", "A"},
		{"weak password", "a@b.com", "short", "A"},
		{"no digit", "a@b.com", "abcdefgh", "A"},
	}
	for _, tc := range cases {
		_, _, err := svc.Register(ctx, tc.email, tc.pw, tc.user)
		var appErr *apperr.Error
		require.ErrorAs(t, err, &appErr, tc.name)
		assert.Equal(t, 400, appErr.Status, tc.name)
	}
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService()

	_, _, err := svc.Register(ctx, "a@b.com", "abc12345", "A")
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, "A@B.COM", "other1234", "B")
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.Status)
}

func TestLoginFailsGenerically(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService()

	_, _, err := svc.Register(ctx, "a@b.com", "abc12345", "A")
	require.NoError(t, err)

	// Unknown email and wrong password produce the identical message.
	_, _, errMissing := svc.Login(ctx, "nobody@b.com", "abc12345")
	_, _, errWrongPw := svc.Login(ctx, "a@b.com", "wrong1234")

	var e1, e2 *apperr.Error
	require.ErrorAs(t, errMissing, &e1)
	require.ErrorAs(t, errWrongPw, &e2)
	assert.Equal(t, 401, e1.Status)
	assert.Equal(t, e1.Message, e2.Message)
}

func TestVerifyTokenFailureReasons(t *testing.T) {
	svc := newAuthService()

	_, err := svc.VerifyToken("garbage")
	assert.ErrorIs(t, err, ErrTokenMalformed)

	// Token signed with another secret.
	other := NewAuthService(repository.NewMemoryStore().Users(),
		config.JWTConfig{Secret: "other-secret", ExpireHours: 1})
	token, err := other.GenerateToken("u1", "a@b.com")
	require.NoError(t, err)
	_, err = svc.VerifyToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	// Expired token.
	expired := NewAuthService(repository.NewMemoryStore().Users(),
		config.JWTConfig{Secret: "test-secret", ExpireHours: 1})
	expired.expire = -time.Hour
	token, err = expired.GenerateToken("u1", "a@b.com")
	require.NoError(t, err)
	_, err = svc.VerifyToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}
