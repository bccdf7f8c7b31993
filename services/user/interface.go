package user

import (
	"context"
	"errors"
	"time"

	"groomer/database/repository/kv"
	"groomer/models"

	"github.com/go-redis/redis/v8"
)

var (
	ErrMissingFields      = errors.New("email, password, and name are required")
	ErrEmailTaken         = errors.New("a user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

// UserService owns account records and session tokens.
type UserService interface {
	SignUp(ctx context.Context, email, password, name string) (*models.User, error)
	// SignIn verifies credentials and returns the user with a fresh bearer
	// token. The token's hash is stored on the record and cached.
	SignIn(ctx context.Context, email, password string) (*models.User, string, error)
	GetByID(ctx context.Context, userID string) (*models.UserRecord, error)
	// RevokeToken drops the stored token hash, signing the user out
	// everywhere.
	RevokeToken(ctx context.Context, userID string) error
}

// DefaultUserService implements UserService over the KV store with a Redis
// auth cache for token hashes.
type DefaultUserService struct {
	Store     kv.Store
	AuthCache *redis.Client
	TokenTTL  time.Duration
}
