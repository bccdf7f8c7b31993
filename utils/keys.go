package utils

import "fmt"

// Store key layout. The key strings are wire/store compatible with earlier
// deployments, so changing them orphans existing data.
const SalonsKey = "salons"

func BookingKey(unixMillis int64, userID string) string {
	return fmt.Sprintf("booking_%d_%s", unixMillis, userID)
}

func UserBookingsKey(userID string) string { return "user_bookings_" + userID }

func UserProfileKey(userID string) string { return "user_profile_" + userID }

func UserLoyaltyKey(userID string) string { return "user_loyalty_" + userID }

func UserPreferencesKey(userID string) string { return "user_preferences_" + userID }

func UserSettingsKey(userID string) string { return "user_settings_" + userID }

func UserKey(userID string) string { return "user_" + userID }

func UserEmailKey(email string) string { return "user_email_" + email }
