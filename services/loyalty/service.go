// File: services/loyalty/service.go
package loyalty

import (
	"context"
	"fmt"
	"time"

	"groomer/database/repository/kv"
	"groomer/models"
	"groomer/utils"

	"go.uber.org/zap"
)

func (s *DefaultLoyaltyService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// GetLoyalty reads the user's loyalty document, writing the starter document
// on first access so the rewards screen is never empty.
func (s *DefaultLoyaltyService) GetLoyalty(ctx context.Context, userID string) (*models.Loyalty, error) {
	key := utils.UserLoyaltyKey(userID)
	var doc models.Loyalty
	err := s.Store.Get(ctx, key, &doc)
	if err == kv.ErrNotFound {
		doc = starterLoyalty()
		if err := s.Store.Set(ctx, key, doc); err != nil {
			return nil, fmt.Errorf("failed to seed loyalty data: %w", err)
		}
		return &doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch loyalty data: %w", err)
	}
	return &doc, nil
}

// Redeem checks availability and balance, then deducts the cost and prepends
// a redeemed transaction in a single read-modify-write.
//
// Known limitation: there is no concurrency protection. Two simultaneous
// redemptions for the same user can both pass the balance check against a
// stale read and double-deduct. Closing this requires a conditional
// decrement (compare-and-swap) the plain KV contract does not offer.
func (s *DefaultLoyaltyService) Redeem(ctx context.Context, userID, rewardID string) error {
	key := utils.UserLoyaltyKey(userID)
	var doc models.Loyalty
	if err := s.Store.Get(ctx, key, &doc); err != nil {
		if err == kv.ErrNotFound {
			return ErrLoyaltyNotFound
		}
		return fmt.Errorf("failed to fetch loyalty data: %w", err)
	}

	var reward *models.Reward
	for i := range doc.Rewards {
		if doc.Rewards[i].ID == rewardID {
			reward = &doc.Rewards[i]
			break
		}
	}
	if reward == nil || !reward.IsAvailable {
		return ErrRewardUnavailable
	}
	if doc.CurrentPoints < reward.PointsCost {
		return ErrInsufficientPoints
	}

	now := s.now()
	doc.CurrentPoints -= reward.PointsCost
	doc.RecentTransactions = append([]models.LoyaltyTransaction{{
		ID:          fmt.Sprintf("trans_%d", now.UnixMilli()),
		Type:        "redeemed",
		Points:      -reward.PointsCost,
		Description: "Redeemed: " + reward.Title,
		Date:        now.UTC().Format(time.RFC3339),
	}}, doc.RecentTransactions...)

	if err := s.Store.Set(ctx, key, doc); err != nil {
		return fmt.Errorf("failed to save loyalty data: %w", err)
	}

	utils.GetLogger().Info("loyalty reward redeemed",
		zap.String("userID", userID),
		zap.String("rewardID", rewardID),
		zap.Int("remainingPoints", doc.CurrentPoints))
	return nil
}

func starterLoyalty() models.Loyalty {
	return models.Loyalty{
		CurrentPoints:    350,
		TotalEarned:      850,
		CurrentTier:      "Bronze",
		NextTier:         "Silver",
		PointsToNextTier: 150,
		Rewards: []models.Reward{
			{
				ID:          "reward_1",
				Title:       "10% Off Next Service",
				Description: "Get 10% discount on any service",
				PointsCost:  100,
				Category:    "discount",
				IsAvailable: true,
			},
			{
				ID:          "reward_2",
				Title:       "Free Hair Wash",
				Description: "Complimentary hair wash with any service",
				PointsCost:  50,
				Category:    "free-service",
				IsAvailable: true,
			},
			{
				ID:          "reward_3",
				Title:       "Premium Service Upgrade",
				Description: "Upgrade to premium service package",
				PointsCost:  200,
				Category:    "upgrade",
				IsAvailable: true,
			},
			{
				ID:          "reward_4",
				Title:       "Hair Care Gift Set",
				Description: "Professional hair care products package",
				PointsCost:  500,
				Category:    "gift",
				IsAvailable: false,
			},
		},
		RecentTransactions: []models.LoyaltyTransaction{
			{
				ID:          "trans_1",
				Type:        "earned",
				Points:      130,
				Description: "Hair Cut & Styling at Glamour Studio",
				Date:        "2024-12-15T10:00:00Z",
			},
			{
				ID:          "trans_2",
				Type:        "earned",
				Points:      60,
				Description: "Facial Treatment at Elite Beauty Salon",
				Date:        "2024-11-28T14:00:00Z",
			},
			{
				ID:          "trans_3",
				Type:        "redeemed",
				Points:      -50,
				Description: "Redeemed: Free Hair Wash",
				Date:        "2024-11-20T16:00:00Z",
			},
		},
	}
}
