package notification

import "context"

// NotificationService delivers push notifications to a user's device.
type NotificationService interface {
	SendUserPushNotification(ctx context.Context, userID, title, body string, data map[string]string) error
}
