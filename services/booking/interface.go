package booking

import (
	"context"
	"time"

	"groomer/database/repository/kv"
	"groomer/models"
	"groomer/services/directory"

	"github.com/go-redis/redis/v8"
)

// BookingSessionService manages the stateful booking wizard. Sessions live in
// the session cache with a short TTL; every successful update refreshes it.
type BookingSessionService interface {
	InitiateSession(ctx context.Context, user models.User, salonID int, detectedGender string) (*models.BookingSession, error)
	GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error)
	SelectService(ctx context.Context, sessionID string, category models.Category, serviceID int) (*models.BookingSession, error)
	SelectSchedule(ctx context.Context, sessionID, date, slot string) (*models.BookingSession, error)
	SubmitDetails(ctx context.Context, sessionID, name, phone, email string) (*models.BookingSession, error)
	Back(ctx context.Context, sessionID string) (*models.BookingSession, bool, error)
	Complete(ctx context.Context, sessionID string) error
	CancelSession(ctx context.Context, sessionID string) error
}

// BookingService persists and lists bookings.
type BookingService interface {
	CreateBooking(ctx context.Context, userID string, data models.BookingData) (*models.Booking, error)
	ListUserBookings(ctx context.Context, userID string) ([]models.BookingSummary, error)
	BookingHistory(ctx context.Context, userID string) ([]models.BookingHistoryEntry, error)
}

// ReminderScheduler queues an appointment reminder for later delivery.
type ReminderScheduler interface {
	ScheduleReminder(payload models.ReminderPayload, fireAt time.Time) error
}

// DefaultBookingSessionService implements BookingSessionService on Redis.
type DefaultBookingSessionService struct {
	Cache      *redis.Client
	Directory  directory.DirectoryService
	BookingSvc BookingService
	TTL        time.Duration
	Now        func() time.Time
}

// DefaultBookingService implements BookingService on the KV store.
type DefaultBookingService struct {
	Store kv.Store
	// Reminders is optional; booking creation never fails on reminder errors.
	Reminders ReminderScheduler
	Now       func() time.Time
}
