package account

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"groomer/database/repository/kv/kvtest"
	"groomer/models"
	"groomer/services/booking"
	"groomer/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
}

func newService(store *kvtest.MemStore) *DefaultAccountService {
	return &DefaultAccountService{Store: store, Now: fixedNow}
}

func TestUpdateProfileStampsUpdatedAt(t *testing.T) {
	store := kvtest.NewMemStore()
	svc := newService(store)
	ctx := context.Background()

	err := svc.UpdateProfile(ctx, "user-1", models.Profile{"name": "Asha", "phone": "9999999999"})
	require.NoError(t, err)

	var stored models.Profile
	require.NoError(t, store.Get(ctx, utils.UserProfileKey("user-1"), &stored))
	assert.Equal(t, "Asha", stored["name"])
	assert.Equal(t, "2025-03-10T12:00:00Z", stored["updatedAt"])
}

func TestPreferencesRoundTrip(t *testing.T) {
	svc := newService(kvtest.NewMemStore())
	ctx := context.Background()

	_, err := svc.GetPreferences(ctx, "user-1")
	assert.ErrorIs(t, err, ErrNotFound)

	prefs := models.Preferences{"notifications": true, "language": "en"}
	require.NoError(t, svc.SavePreferences(ctx, "user-1", prefs))

	got, err := svc.GetPreferences(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, true, got["notifications"])
	assert.Equal(t, "en", got["language"])
	assert.NotEmpty(t, got["updatedAt"])
}

func TestSettingsRoundTrip(t *testing.T) {
	svc := newService(kvtest.NewMemStore())
	ctx := context.Background()

	_, err := svc.GetSettings(ctx, "user-1")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.SaveSettings(ctx, "user-1", models.Settings{"darkMode": true}))

	got, err := svc.GetSettings(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, true, got["darkMode"])
}

func TestExportData(t *testing.T) {
	store := kvtest.NewMemStore()
	svc := newService(store)
	ctx := context.Background()

	require.NoError(t, svc.UpdateProfile(ctx, "user-1", models.Profile{"name": "Asha"}))
	require.NoError(t, svc.SaveSettings(ctx, "user-1", models.Settings{"darkMode": true}))

	bookings := &booking.DefaultBookingService{Store: store, Now: fixedNow}
	created, err := bookings.CreateBooking(ctx, "user-1", models.BookingData{
		SalonID:   1,
		SalonName: "Glamour Studio",
		Service:   models.Service{ID: 1, Name: "Hair Cut & Style", Price: "₹800", Duration: "45 min"},
		Date:      "2025-03-10",
		Time:      "10:00 AM",
		CustomerDetails: models.CustomerDetails{
			Name:  "Asha",
			Phone: "9999999999",
		},
	})
	require.NoError(t, err)

	bundle, err := svc.ExportData(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10T12:00:00Z", bundle.ExportDate)
	assert.NotNil(t, bundle.Profile)
	assert.NotNil(t, bundle.Settings)
	// Absent documents export as null rather than failing.
	assert.Nil(t, bundle.Preferences)

	require.Len(t, bundle.Bookings, 1)
	var exported models.Booking
	require.NoError(t, json.Unmarshal(bundle.Bookings[0], &exported))
	assert.Equal(t, created.ID, exported.ID)
}

func TestDeleteAccountRemovesEverything(t *testing.T) {
	store := kvtest.NewMemStore()
	svc := newService(store)
	ctx := context.Background()

	require.NoError(t, svc.UpdateProfile(ctx, "user-1", models.Profile{"name": "Asha"}))
	require.NoError(t, svc.SavePreferences(ctx, "user-1", models.Preferences{"language": "en"}))
	require.NoError(t, svc.SaveSettings(ctx, "user-1", models.Settings{"darkMode": true}))

	bookings := &booking.DefaultBookingService{Store: store, Now: fixedNow}
	created, err := bookings.CreateBooking(ctx, "user-1", models.BookingData{
		SalonID:   1,
		SalonName: "Glamour Studio",
		Service:   models.Service{ID: 1, Name: "Hair Cut & Style"},
		Date:      "2025-03-10",
		Time:      "10:00 AM",
		CustomerDetails: models.CustomerDetails{
			Name:  "Asha",
			Phone: "9999999999",
		},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAccount(ctx, "user-1"))

	assert.False(t, store.Has(utils.UserProfileKey("user-1")))
	assert.False(t, store.Has(utils.UserPreferencesKey("user-1")))
	assert.False(t, store.Has(utils.UserSettingsKey("user-1")))
	assert.False(t, store.Has(utils.UserBookingsKey("user-1")))
	assert.False(t, store.Has(created.ID))
}

func TestDeleteAccountWithNoData(t *testing.T) {
	svc := newService(kvtest.NewMemStore())
	assert.NoError(t, svc.DeleteAccount(context.Background(), "ghost"))
}
