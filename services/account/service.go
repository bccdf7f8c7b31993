// File: services/account/service.go
package account

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"groomer/database/repository/kv"
	"groomer/models"
	"groomer/utils"

	"go.uber.org/zap"
)

// ErrNotFound is returned when a requested document does not exist.
var ErrNotFound = errors.New("not found")

func (s *DefaultAccountService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultAccountService) stamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

// UpdateProfile replaces the whole profile document.
func (s *DefaultAccountService) UpdateProfile(ctx context.Context, userID string, profile models.Profile) error {
	if profile == nil {
		profile = models.Profile{}
	}
	profile["updatedAt"] = s.stamp()
	if err := s.Store.Set(ctx, utils.UserProfileKey(userID), profile); err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}

func (s *DefaultAccountService) GetPreferences(ctx context.Context, userID string) (models.Preferences, error) {
	var prefs models.Preferences
	err := s.Store.Get(ctx, utils.UserPreferencesKey(userID), &prefs)
	if err == kv.ErrNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch preferences: %w", err)
	}
	return prefs, nil
}

// SavePreferences replaces the whole preferences document.
func (s *DefaultAccountService) SavePreferences(ctx context.Context, userID string, prefs models.Preferences) error {
	if prefs == nil {
		prefs = models.Preferences{}
	}
	prefs["updatedAt"] = s.stamp()
	if err := s.Store.Set(ctx, utils.UserPreferencesKey(userID), prefs); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}

func (s *DefaultAccountService) GetSettings(ctx context.Context, userID string) (models.Settings, error) {
	var settings models.Settings
	err := s.Store.Get(ctx, utils.UserSettingsKey(userID), &settings)
	if err == kv.ErrNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch settings: %w", err)
	}
	return settings, nil
}

// SaveSettings replaces the whole settings document.
func (s *DefaultAccountService) SaveSettings(ctx context.Context, userID string, settings models.Settings) error {
	if settings == nil {
		settings = models.Settings{}
	}
	settings["updatedAt"] = s.stamp()
	if err := s.Store.Set(ctx, utils.UserSettingsKey(userID), settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// ExportData aggregates everything stored for a user. Absent documents export
// as null rather than failing the bundle.
func (s *DefaultAccountService) ExportData(ctx context.Context, userID string) (*models.ExportBundle, error) {
	bundle := &models.ExportBundle{
		ExportDate: s.stamp(),
	}
	bundle.Profile = s.rawDoc(ctx, utils.UserProfileKey(userID))
	bundle.Loyalty = s.rawDoc(ctx, utils.UserLoyaltyKey(userID))
	bundle.Preferences = s.rawDoc(ctx, utils.UserPreferencesKey(userID))
	bundle.Settings = s.rawDoc(ctx, utils.UserSettingsKey(userID))

	var ids []string
	err := s.Store.Get(ctx, utils.UserBookingsKey(userID), &ids)
	if err != nil && err != kv.ErrNotFound {
		return nil, fmt.Errorf("failed to export bookings: %w", err)
	}
	if len(ids) > 0 {
		raws, err := s.Store.GetMulti(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("failed to export bookings: %w", err)
		}
		bundle.Bookings = raws
	}
	return bundle, nil
}

func (s *DefaultAccountService) rawDoc(ctx context.Context, key string) json.RawMessage {
	var raw json.RawMessage
	if err := s.Store.Get(ctx, key, &raw); err != nil {
		return nil
	}
	return raw
}

// DeleteAccount removes every key known for the user, including each
// individual booking record.
func (s *DefaultAccountService) DeleteAccount(ctx context.Context, userID string) error {
	keys := []string{
		utils.UserProfileKey(userID),
		utils.UserLoyaltyKey(userID),
		utils.UserPreferencesKey(userID),
		utils.UserSettingsKey(userID),
		utils.UserBookingsKey(userID),
	}

	var bookingIDs []string
	err := s.Store.Get(ctx, utils.UserBookingsKey(userID), &bookingIDs)
	if err != nil && err != kv.ErrNotFound {
		return fmt.Errorf("failed to load bookings for deletion: %w", err)
	}
	keys = append(keys, bookingIDs...)

	if err := s.Store.DeleteMulti(ctx, keys); err != nil {
		return fmt.Errorf("failed to delete account data: %w", err)
	}

	utils.GetLogger().Info("account data deleted",
		zap.String("userID", userID),
		zap.Int("keys", len(keys)))
	return nil
}
