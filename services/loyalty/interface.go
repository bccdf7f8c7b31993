package loyalty

import (
	"context"
	"errors"
	"time"

	"groomer/database/repository/kv"
	"groomer/models"
)

var (
	// ErrRewardUnavailable means the reward does not exist or is disabled.
	ErrRewardUnavailable = errors.New("reward not available")
	// ErrInsufficientPoints means the balance does not cover the reward cost.
	ErrInsufficientPoints = errors.New("insufficient points")
	// ErrLoyaltyNotFound means the user has no loyalty document to redeem from.
	ErrLoyaltyNotFound = errors.New("loyalty data not found")
)

// LoyaltyService manages per-user loyalty documents.
type LoyaltyService interface {
	// GetLoyalty returns a user's loyalty document, seeding the starter
	// document on first access.
	GetLoyalty(ctx context.Context, userID string) (*models.Loyalty, error)
	// Redeem deducts a reward's cost and records the transaction.
	Redeem(ctx context.Context, userID, rewardID string) error
}

// DefaultLoyaltyService implements LoyaltyService over the KV store.
type DefaultLoyaltyService struct {
	Store kv.Store
	Now   func() time.Time
}
