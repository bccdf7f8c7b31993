package account

import (
	"context"
	"time"

	"groomer/database/repository/kv"
	"groomer/models"
)

// AccountService covers the per-user documents around a booking account:
// profile, preferences, settings, data export and full deletion.
type AccountService interface {
	UpdateProfile(ctx context.Context, userID string, profile models.Profile) error
	GetPreferences(ctx context.Context, userID string) (models.Preferences, error)
	SavePreferences(ctx context.Context, userID string, prefs models.Preferences) error
	GetSettings(ctx context.Context, userID string) (models.Settings, error)
	SaveSettings(ctx context.Context, userID string, settings models.Settings) error
	ExportData(ctx context.Context, userID string) (*models.ExportBundle, error)
	DeleteAccount(ctx context.Context, userID string) error
}

// DefaultAccountService implements AccountService over the KV store.
type DefaultAccountService struct {
	Store kv.Store
	Now   func() time.Time
}
