// File: services/booking/wizard.go
//
// The wizard is a linear four-step state machine:
//
//	services -> datetime -> details -> confirmation
//
// with back edges datetime->services and details->datetime; back from
// services exits the wizard. Every transition below is a pure in-memory
// update on the session document; nothing touches a store until the details
// step submits.
package booking

import (
	"strings"
	"time"

	"groomer/models"
	"groomer/services/catalog"
)

// NewSessionDraft builds a fresh session document for a user and salon. The
// starting category comes from the optional detected-gender signal and is
// never re-evaluated. Customer contact fields are prefilled from the account
// so the details step starts populated.
func NewSessionDraft(user models.User, salon models.Salon, detectedGender string, now time.Time) models.BookingSession {
	return models.BookingSession{
		UserID:       user.ID,
		SalonID:      salon.ID,
		SalonName:    salon.Name,
		SalonAddress: salon.Address,
		SalonImage:   salon.Image,
		Step:         models.StepServices,
		Category:     catalog.DefaultCategory(detectedGender),
		Customer: models.CustomerDetails{
			Name:  user.Metadata.Name,
			Email: user.Email,
		},
		CreatedAt: now,
	}
}

// ApplyServiceSelection stores the chosen service whole (price and duration
// render on later steps without a second lookup) and advances to datetime.
func ApplyServiceSelection(sess *models.BookingSession, category models.Category, serviceID int) error {
	if sess.Step != models.StepServices {
		return ErrInvalidStep
	}
	svc, ok := catalog.Lookup(category, serviceID)
	if !ok {
		return ErrUnknownService
	}
	svc.Image = sess.SalonImage
	sess.Category = category
	sess.Service = &svc
	sess.Step = models.StepDateTime
	return nil
}

// ApplySchedule is the guarded datetime -> details transition. On any
// violation the session is left untouched and the caller surfaces the error.
func ApplySchedule(sess *models.BookingSession, now time.Time, date, slot string) error {
	if sess.Step != models.StepDateTime {
		return ErrInvalidStep
	}
	if date == "" || slot == "" {
		return ErrMissingDateTime
	}
	if !catalog.ValidBookingDate(now, date) || !catalog.ValidTimeSlot(slot) {
		return ErrInvalidSlot
	}
	sess.Date = date
	sess.Time = slot
	sess.Step = models.StepDetails
	return nil
}

// ApplyCustomerDetails validates and records the contact block. It does not
// advance the step; that happens only after a successful submission, so a
// failed submit leaves the user on details with the draft intact.
func ApplyCustomerDetails(sess *models.BookingSession, name, phone, email string) error {
	if sess.Step != models.StepDetails {
		return ErrInvalidStep
	}
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" || phone == "" {
		return ErrMissingCustomerDetails
	}
	sess.Customer = models.CustomerDetails{
		Name:  name,
		Phone: phone,
		Email: strings.TrimSpace(email),
	}
	return nil
}

// Back moves one step toward services without clearing any entered data, so
// going forward again re-shows prior selections. From services it reports
// that the wizard should exit; from confirmation it is a no-op.
func Back(sess *models.BookingSession) (exit bool) {
	switch sess.Step {
	case models.StepServices:
		return true
	case models.StepDateTime:
		sess.Step = models.StepServices
	case models.StepDetails:
		sess.Step = models.StepDateTime
	}
	return false
}

// BuildBookingData packages the draft into the submission payload. It fails
// if any selection is missing, which can only happen if steps were skipped.
func BuildBookingData(sess *models.BookingSession) (models.BookingData, error) {
	if sess.Service == nil || sess.Date == "" || sess.Time == "" {
		return models.BookingData{}, ErrMissingBookingInfo
	}
	return models.BookingData{
		SalonID:      sess.SalonID,
		SalonName:    sess.SalonName,
		SalonAddress: sess.SalonAddress,
		Service: models.Service{
			ID:       sess.Service.ID,
			Name:     sess.Service.Name,
			Price:    sess.Service.Price,
			Duration: sess.Service.Duration,
			Category: sess.Service.Category,
		},
		Date:            sess.Date,
		Time:            sess.Time,
		CustomerDetails: sess.Customer,
	}, nil
}
