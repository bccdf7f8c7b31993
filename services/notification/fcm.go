// File: services/notification/fcm.go
package notification

import (
	"context"
	"fmt"

	"groomer/database/repository/kv"
	"groomer/models"
	"groomer/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// FCMNotificationService sends pushes over Firebase Cloud Messaging. The
// device token is read from the user's profile document; users without one
// are silently skipped.
type FCMNotificationService struct {
	Store kv.Store
}

func (s *FCMNotificationService) SendUserPushNotification(ctx context.Context, userID, title, body string, data map[string]string) error {
	client := utils.FCMClient
	if client == nil {
		utils.GetLogger().Debug("push skipped: FCM not configured", zap.String("userID", userID))
		return nil
	}

	var profile models.Profile
	err := s.Store.Get(ctx, utils.UserProfileKey(userID), &profile)
	if err == kv.ErrNotFound {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load profile for push: %w", err)
	}
	token, _ := profile["deviceToken"].(string)
	if token == "" {
		return nil
	}

	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}
	if _, err := client.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send push notification: %w", err)
	}
	utils.GetLogger().Info("push notification sent", zap.String("userID", userID), zap.String("title", title))
	return nil
}
