// File: services/user/service.go
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"groomer/database/repository/kv"
	"groomer/models"
	"groomer/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// DefaultTokenTTL is how long an issued bearer token stays valid.
const DefaultTokenTTL = 72 * time.Hour

func (s *DefaultUserService) tokenTTL() time.Duration {
	if s.TokenTTL > 0 {
		return s.TokenTTL
	}
	return DefaultTokenTTL
}

// SignUp creates an account. Email is the uniqueness handle; a secondary
// email-index key points at the record.
func (s *DefaultUserService) SignUp(ctx context.Context, email, password, name string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)
	if email == "" || password == "" || name == "" {
		return nil, ErrMissingFields
	}

	var existingID string
	err := s.Store.Get(ctx, utils.UserEmailKey(email), &existingID)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if err != kv.ErrNotFound {
		return nil, fmt.Errorf("failed to check for existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	record := models.UserRecord{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Store.Set(ctx, utils.UserKey(record.ID), record); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}
	if err := s.Store.Set(ctx, utils.UserEmailKey(email), record.ID); err != nil {
		return nil, fmt.Errorf("failed to save user email index: %w", err)
	}

	utils.GetLogger().Info("user registered", zap.String("userID", record.ID))
	pub := record.Public()
	return &pub, nil
}

// SignIn verifies the password and issues a JWT. Only the token's SHA-256
// hash is stored: on the record for durability and in the auth cache for
// fast middleware checks.
func (s *DefaultUserService) SignIn(ctx context.Context, email, password string) (*models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var userID string
	err := s.Store.Get(ctx, utils.UserEmailKey(email), &userID)
	if err == kv.ErrNotFound {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	record, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(record.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(record.ID, record.Email, s.tokenTTL())
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	record.TokenHash = utils.HashToken(token)
	if err := s.Store.Set(ctx, utils.UserKey(record.ID), record); err != nil {
		return nil, "", fmt.Errorf("failed to save session: %w", err)
	}
	if s.AuthCache != nil {
		cacheKey := utils.AuthCachePrefix + record.ID
		if err := s.AuthCache.Set(ctx, cacheKey, record.TokenHash, time.Hour).Err(); err != nil {
			utils.GetLogger().Warn("failed to prime auth cache", zap.Error(err))
		}
	}

	pub := record.Public()
	return &pub, token, nil
}

// GetByID loads the stored account record.
func (s *DefaultUserService) GetByID(ctx context.Context, userID string) (*models.UserRecord, error) {
	var record models.UserRecord
	err := s.Store.Get(ctx, utils.UserKey(userID), &record)
	if err == kv.ErrNotFound {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return &record, nil
}

// RevokeToken clears the stored token hash and evicts the cache entry.
func (s *DefaultUserService) RevokeToken(ctx context.Context, userID string) error {
	record, err := s.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	record.TokenHash = ""
	if err := s.Store.Set(ctx, utils.UserKey(userID), record); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	if s.AuthCache != nil {
		s.AuthCache.Del(ctx, utils.AuthCachePrefix+userID)
	}
	return nil
}
