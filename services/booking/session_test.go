package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"groomer/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDirectory struct {
	salons []models.Salon
}

func (d *stubDirectory) ListSalons(ctx context.Context, query string, pos *models.GeoPoint) ([]models.Salon, error) {
	return d.salons, nil
}

func (d *stubDirectory) GetSalon(ctx context.Context, id int) (*models.Salon, error) {
	for i := range d.salons {
		if d.salons[i].ID == id {
			return &d.salons[i], nil
		}
	}
	return nil, errors.New("salon not found")
}

func (d *stubDirectory) Refresh(ctx context.Context) error { return nil }

type stubBookingService struct {
	err     error
	created *models.Booking
	calls   int
}

func (b *stubBookingService) CreateBooking(ctx context.Context, userID string, data models.BookingData) (*models.Booking, error) {
	b.calls++
	if b.err != nil {
		return nil, b.err
	}
	b.created = &models.Booking{
		ID:          "booking_1741600000000_" + userID,
		UserID:      userID,
		BookingData: data,
		Status:      "confirmed",
	}
	return b.created, nil
}

func (b *stubBookingService) ListUserBookings(ctx context.Context, userID string) ([]models.BookingSummary, error) {
	return nil, nil
}

func (b *stubBookingService) BookingHistory(ctx context.Context, userID string) ([]models.BookingHistoryEntry, error) {
	return nil, nil
}

func newSessionService(t *testing.T, bookingSvc BookingService) (*DefaultBookingSessionService, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	svc := &DefaultBookingSessionService{
		Cache:      client,
		Directory:  &stubDirectory{salons: []models.Salon{testSalon()}},
		BookingSvc: bookingSvc,
		Now:        func() time.Time { return testNow },
	}
	return svc, mr
}

func startSession(t *testing.T, svc *DefaultBookingSessionService) *models.BookingSession {
	t.Helper()
	sess, err := svc.InitiateSession(context.Background(), testUser(), 1, "")
	require.NoError(t, err)
	return sess
}

func TestInitiateSessionStoresDraft(t *testing.T) {
	svc, mr := newSessionService(t, &stubBookingService{})
	sess := startSession(t, svc)

	assert.NotEmpty(t, sess.SessionID)
	assert.Equal(t, models.StepServices, sess.Step)
	assert.Equal(t, "Glamour Studio", sess.SalonName)
	assert.True(t, mr.Exists("bsession:"+sess.SessionID))

	loaded, err := svc.GetSession(context.Background(), sess.SessionID)
	require.NoError(t, err)
	assert.Equal(t, sess.SessionID, loaded.SessionID)
}

func TestInitiateSessionUnknownSalon(t *testing.T) {
	svc, _ := newSessionService(t, &stubBookingService{})
	_, err := svc.InitiateSession(context.Background(), testUser(), 42, "")
	assert.Error(t, err)
}

func TestGetSessionNotFound(t *testing.T) {
	svc, _ := newSessionService(t, &stubBookingService{})
	_, err := svc.GetSession(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionExpires(t *testing.T) {
	svc, mr := newSessionService(t, &stubBookingService{})
	sess := startSession(t, svc)

	mr.FastForward(DefaultSessionTTL + time.Second)

	_, err := svc.GetSession(context.Background(), sess.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestFullWizardFlow(t *testing.T) {
	stub := &stubBookingService{}
	svc, mr := newSessionService(t, stub)
	ctx := context.Background()
	sess := startSession(t, svc)

	sess, err := svc.SelectService(ctx, sess.SessionID, models.CategoryWomen, 1)
	require.NoError(t, err)
	assert.Equal(t, models.StepDateTime, sess.Step)

	sess, err = svc.SelectSchedule(ctx, sess.SessionID, "2025-03-10", "10:00 AM")
	require.NoError(t, err)
	assert.Equal(t, models.StepDetails, sess.Step)

	sess, err = svc.SubmitDetails(ctx, sess.SessionID, "Asha", "9999999999", "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.StepConfirmation, sess.Step)
	require.NotNil(t, sess.Booking)
	assert.Equal(t, "confirmed", sess.Booking.Status)
	assert.Equal(t, "Hair Cut & Style", sess.Booking.Service.Name)
	assert.Equal(t, 1, stub.calls)

	require.NoError(t, svc.Complete(ctx, sess.SessionID))
	assert.False(t, mr.Exists("bsession:"+sess.SessionID))
}

func TestSubmitDetailsFailureKeepsDraft(t *testing.T) {
	stub := &stubBookingService{err: errors.New("store unavailable")}
	svc, _ := newSessionService(t, stub)
	ctx := context.Background()
	sess := startSession(t, svc)

	_, err := svc.SelectService(ctx, sess.SessionID, models.CategoryWomen, 1)
	require.NoError(t, err)
	_, err = svc.SelectSchedule(ctx, sess.SessionID, "2025-03-10", "10:00 AM")
	require.NoError(t, err)

	_, err = svc.SubmitDetails(ctx, sess.SessionID, "Asha", "9999999999", "")
	require.Error(t, err)

	// The session stays on details with the entered data intact, so a retry
	// does not restart the wizard.
	loaded, err := svc.GetSession(ctx, sess.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepDetails, loaded.Step)
	assert.Equal(t, "Asha", loaded.Customer.Name)
	assert.Equal(t, "9999999999", loaded.Customer.Phone)
	assert.Nil(t, loaded.Booking)

	// Retry succeeds once the store recovers.
	stub.err = nil
	retried, err := svc.SubmitDetails(ctx, sess.SessionID, "Asha", "9999999999", "")
	require.NoError(t, err)
	assert.Equal(t, models.StepConfirmation, retried.Step)
	assert.Equal(t, 2, stub.calls)
}

func TestSelectScheduleGuardLeavesStoredSession(t *testing.T) {
	svc, _ := newSessionService(t, &stubBookingService{})
	ctx := context.Background()
	sess := startSession(t, svc)

	_, err := svc.SelectService(ctx, sess.SessionID, models.CategoryWomen, 1)
	require.NoError(t, err)

	_, err = svc.SelectSchedule(ctx, sess.SessionID, "2025-03-10", "")
	assert.ErrorIs(t, err, ErrMissingDateTime)

	loaded, err := svc.GetSession(ctx, sess.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepDateTime, loaded.Step)
	assert.Empty(t, loaded.Date)
}

func TestBackDiscardsSessionOnExit(t *testing.T) {
	svc, mr := newSessionService(t, &stubBookingService{})
	ctx := context.Background()
	sess := startSession(t, svc)

	_, exited, err := svc.Back(ctx, sess.SessionID)
	require.NoError(t, err)
	assert.True(t, exited)
	assert.False(t, mr.Exists("bsession:"+sess.SessionID))
}

func TestBackStepsTowardServices(t *testing.T) {
	svc, _ := newSessionService(t, &stubBookingService{})
	ctx := context.Background()
	sess := startSession(t, svc)

	_, err := svc.SelectService(ctx, sess.SessionID, models.CategoryWomen, 1)
	require.NoError(t, err)

	back, exited, err := svc.Back(ctx, sess.SessionID)
	require.NoError(t, err)
	assert.False(t, exited)
	assert.Equal(t, models.StepServices, back.Step)
	// The prior selection is kept for when the user moves forward again.
	assert.NotNil(t, back.Service)
}

func TestCompleteRequiresConfirmation(t *testing.T) {
	svc, _ := newSessionService(t, &stubBookingService{})
	ctx := context.Background()
	sess := startSession(t, svc)

	err := svc.Complete(ctx, sess.SessionID)
	assert.ErrorIs(t, err, ErrInvalidStep)
}

func TestCancelSession(t *testing.T) {
	svc, mr := newSessionService(t, &stubBookingService{})
	ctx := context.Background()
	sess := startSession(t, svc)

	require.NoError(t, svc.CancelSession(ctx, sess.SessionID))
	assert.False(t, mr.Exists("bsession:"+sess.SessionID))

	// Cancelling an already-gone session is not an error.
	assert.NoError(t, svc.CancelSession(ctx, sess.SessionID))
}
