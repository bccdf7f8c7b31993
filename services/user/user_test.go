package user

import (
	"context"
	"testing"

	"groomer/database/repository/kv/kvtest"
	"groomer/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) (*DefaultUserService, *kvtest.MemStore, *miniredis.Miniredis) {
	t.Helper()
	store := kvtest.NewMemStore()
	mr := miniredis.RunT(t)
	svc := &DefaultUserService{
		Store:     store,
		AuthCache: redis.NewClient(&redis.Options{Addr: mr.Addr()}),
	}
	return svc, store, mr
}

func TestSignUp(t *testing.T) {
	svc, store, _ := newUserService(t)
	ctx := context.Background()

	user, err := svc.SignUp(ctx, "Asha@Example.com", "secret123", " Asha ")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	// Email is normalized, name trimmed.
	assert.Equal(t, "asha@example.com", user.Email)
	assert.Equal(t, "Asha", user.Metadata.Name)

	assert.True(t, store.Has(utils.UserKey(user.ID)))
	assert.True(t, store.Has(utils.UserEmailKey("asha@example.com")))

	// The record stores a hash, never the raw password.
	record, err := svc.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, record.PasswordHash)
	assert.NotContains(t, record.PasswordHash, "secret123")
}

func TestSignUpValidation(t *testing.T) {
	svc, _, _ := newUserService(t)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, "", "secret123", "Asha")
	assert.ErrorIs(t, err, ErrMissingFields)
	_, err = svc.SignUp(ctx, "asha@example.com", "", "Asha")
	assert.ErrorIs(t, err, ErrMissingFields)
	_, err = svc.SignUp(ctx, "asha@example.com", "secret123", "")
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestSignUpDuplicateEmail(t *testing.T) {
	svc, _, _ := newUserService(t)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, "asha@example.com", "secret123", "Asha")
	require.NoError(t, err)

	// Uniqueness check is case-insensitive.
	_, err = svc.SignUp(ctx, "ASHA@example.com", "other", "Other")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignIn(t *testing.T) {
	svc, _, mr := newUserService(t)
	ctx := context.Background()

	created, err := svc.SignUp(ctx, "asha@example.com", "secret123", "Asha")
	require.NoError(t, err)

	user, token, err := svc.SignIn(ctx, "asha@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	require.NotEmpty(t, token)

	// The token round-trips through validation.
	subject, err := utils.ExtractUserIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, subject)

	// Only the hash is stored, on the record and in the auth cache.
	record, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, utils.HashToken(token), record.TokenHash)

	cached, err := mr.Get(utils.AuthCachePrefix + created.ID)
	require.NoError(t, err)
	assert.Equal(t, utils.HashToken(token), cached)
}

func TestSignInWrongPassword(t *testing.T) {
	svc, _, _ := newUserService(t)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, "asha@example.com", "secret123", "Asha")
	require.NoError(t, err)

	_, _, err = svc.SignIn(ctx, "asha@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignInUnknownEmail(t *testing.T) {
	svc, _, _ := newUserService(t)
	_, _, err := svc.SignIn(context.Background(), "nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetByIDNotFound(t *testing.T) {
	svc, _, _ := newUserService(t)
	_, err := svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRevokeToken(t *testing.T) {
	svc, _, mr := newUserService(t)
	ctx := context.Background()

	created, err := svc.SignUp(ctx, "asha@example.com", "secret123", "Asha")
	require.NoError(t, err)
	_, _, err = svc.SignIn(ctx, "asha@example.com", "secret123")
	require.NoError(t, err)

	require.NoError(t, svc.RevokeToken(ctx, created.ID))

	record, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, record.TokenHash)
	assert.False(t, mr.Exists(utils.AuthCachePrefix+created.ID))
}
