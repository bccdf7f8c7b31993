// File: services/booking/submit.go
package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"groomer/database/repository/kv"
	"groomer/models"
	"groomer/services/catalog"
	"groomer/utils"

	"go.uber.org/zap"
)

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// CreateBooking validates and persists a booking, then appends its id to the
// user's booking-id list. The id is derived from the submission timestamp,
// not the draft content, so a retry after a transient failure creates a
// second booking. There is also no per-slot uniqueness: two users (or one
// fast user) can hold the same slot.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, userID string, data models.BookingData) (*models.Booking, error) {
	if data.SalonID == 0 || data.Service.Name == "" || data.Date == "" || data.Time == "" ||
		data.CustomerDetails.Name == "" || data.CustomerDetails.Phone == "" {
		return nil, ErrMissingBookingInfo
	}

	now := s.now()
	booking := models.Booking{
		ID:          utils.BookingKey(now.UnixMilli(), userID),
		UserID:      userID,
		BookingData: data,
		CreatedAt:   now.UTC(),
		Status:      "confirmed",
	}

	if err := s.Store.Set(ctx, booking.ID, booking); err != nil {
		return nil, fmt.Errorf("failed to save booking: %w", err)
	}

	listKey := utils.UserBookingsKey(userID)
	var ids []string
	if err := s.Store.Get(ctx, listKey, &ids); err != nil && err != kv.ErrNotFound {
		return nil, fmt.Errorf("failed to load user bookings list: %w", err)
	}
	ids = append(ids, booking.ID)
	if err := s.Store.Set(ctx, listKey, ids); err != nil {
		return nil, fmt.Errorf("failed to update user bookings list: %w", err)
	}

	s.scheduleReminder(&booking)

	utils.GetLogger().Info("booking created",
		zap.String("bookingID", booking.ID),
		zap.String("userID", userID),
		zap.Int("salonID", data.SalonID))
	return &booking, nil
}

// scheduleReminder queues a push reminder an hour before the appointment.
// Best effort only: reminders never fail a booking.
func (s *DefaultBookingService) scheduleReminder(b *models.Booking) {
	if s.Reminders == nil {
		return
	}
	slotAt, err := catalog.SlotTime(b.Date, b.Time, time.Local)
	if err != nil {
		utils.GetLogger().Warn("reminder skipped: unparseable slot",
			zap.String("bookingID", b.ID), zap.Error(err))
		return
	}
	fireAt := slotAt.Add(-time.Hour)
	if fireAt.Before(s.now()) {
		return
	}
	payload := models.ReminderPayload{
		ReminderID: "reminder_" + b.ID,
		UserID:     b.UserID,
		Title:      "Upcoming appointment",
		Body:       fmt.Sprintf("%s at %s, today at %s", b.Service.Name, b.SalonName, b.Time),
		FireDate:   fireAt.UTC().Format(time.RFC3339),
	}
	if err := s.Reminders.ScheduleReminder(payload, fireAt); err != nil {
		utils.GetLogger().Warn("failed to schedule booking reminder",
			zap.String("bookingID", b.ID), zap.Error(err))
	}
}

// priceToAmount extracts the numeric value from a price label like "₹2,500".
func priceToAmount(price string) int {
	amount := 0
	for _, r := range price {
		if r >= '0' && r <= '9' {
			amount = amount*10 + int(r-'0')
		}
	}
	return amount
}

// durationToMinutes converts a duration label like "45 min" or "2 hours"
// into minutes. Unknown labels fall back to an hour.
func durationToMinutes(duration string) int {
	fields := strings.Fields(duration)
	if len(fields) == 2 {
		n := 0
		for _, r := range fields[0] {
			if r < '0' || r > '9' {
				n = 0
				break
			}
			n = n*10 + int(r-'0')
		}
		if n > 0 {
			if strings.HasPrefix(fields[1], "hour") {
				return n * 60
			}
			return n
		}
	}
	return 60
}
