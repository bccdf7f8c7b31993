// File: services/booking/session.go
package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"groomer/models"
	"groomer/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const sessionKeyPrefix = "bsession:"

// DefaultSessionTTL bounds how long an idle wizard draft survives.
const DefaultSessionTTL = 10 * time.Minute

func (s *DefaultBookingSessionService) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return DefaultSessionTTL
}

func (s *DefaultBookingSessionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// InitiateSession creates a new wizard session for the given salon, assigns
// it a unique SessionID and stores it in the session cache.
func (s *DefaultBookingSessionService) InitiateSession(ctx context.Context, user models.User, salonID int, detectedGender string) (*models.BookingSession, error) {
	salon, err := s.Directory.GetSalon(ctx, salonID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve salon: %w", err)
	}

	session := NewSessionDraft(user, *salon, detectedGender, s.now())
	session.SessionID = uuid.New().String()

	if err := s.save(ctx, &session); err != nil {
		return nil, err
	}
	utils.GetLogger().Debug("booking session initiated",
		zap.String("sessionID", session.SessionID),
		zap.Int("salonID", salonID),
		zap.String("category", string(session.Category)))
	return &session, nil
}

// GetSession loads a session without modifying it.
func (s *DefaultBookingSessionService) GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	return s.load(ctx, sessionID)
}

// SelectService fires the services -> datetime transition.
func (s *DefaultBookingSessionService) SelectService(ctx context.Context, sessionID string, category models.Category, serviceID int) (*models.BookingSession, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := ApplyServiceSelection(session, category, serviceID); err != nil {
		return nil, err
	}
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectSchedule fires the guarded datetime -> details transition. A guard
// violation leaves the stored session untouched.
func (s *DefaultBookingSessionService) SelectSchedule(ctx context.Context, sessionID, date, slot string) (*models.BookingSession, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := ApplySchedule(session, s.now(), date, slot); err != nil {
		return nil, err
	}
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SubmitDetails validates the contact block and attempts the final booking.
// On success the session advances to confirmation and keeps the created
// booking; on failure it stays on details with the draft intact so the user
// can retry without re-entering anything.
func (s *DefaultBookingSessionService) SubmitDetails(ctx context.Context, sessionID, name, phone, email string) (*models.BookingSession, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := ApplyCustomerDetails(session, name, phone, email); err != nil {
		return nil, err
	}

	payload, err := BuildBookingData(session)
	if err != nil {
		return nil, err
	}

	// Keep the validated details even if submission fails, so a retry after
	// a transient error starts from a filled-in form.
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}

	created, err := s.BookingSvc.CreateBooking(ctx, session.UserID, payload)
	if err != nil {
		utils.GetLogger().Warn("booking submission failed",
			zap.String("sessionID", sessionID), zap.Error(err))
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	session.Booking = created
	session.Step = models.StepConfirmation
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Back walks one step toward services. When the wizard exits (back from the
// services step) the session is discarded and the second return is true.
func (s *DefaultBookingSessionService) Back(ctx context.Context, sessionID string) (*models.BookingSession, bool, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, false, err
	}
	if exit := Back(session); exit {
		if err := s.delete(ctx, sessionID); err != nil {
			return nil, false, err
		}
		return session, true, nil
	}
	if err := s.save(ctx, session); err != nil {
		return nil, false, err
	}
	return session, false, nil
}

// Complete acknowledges the confirmation screen and discards the session.
func (s *DefaultBookingSessionService) Complete(ctx context.Context, sessionID string) error {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return err
	}
	if session.Step != models.StepConfirmation {
		return ErrInvalidStep
	}
	return s.delete(ctx, sessionID)
}

// CancelSession discards a session unconditionally.
func (s *DefaultBookingSessionService) CancelSession(ctx context.Context, sessionID string) error {
	return s.delete(ctx, sessionID)
}

func (s *DefaultBookingSessionService) load(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := s.Cache.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking session: %w", err)
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

func (s *DefaultBookingSessionService) save(ctx context.Context, session *models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.Cache.Set(ctx, sessionKeyPrefix+session.SessionID, data, s.ttl()).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

func (s *DefaultBookingSessionService) delete(ctx context.Context, sessionID string) error {
	if err := s.Cache.Del(ctx, sessionKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to delete booking session: %w", err)
	}
	return nil
}
