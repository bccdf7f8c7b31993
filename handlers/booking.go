// File: handlers/booking.go
package handlers

import (
	"errors"
	"net/http"

	"groomer/models"
	"groomer/services/booking"
	userSvc "groomer/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the wizard session endpoints and booking CRUD.
type BookingHandler struct {
	Sessions booking.BookingSessionService
	Bookings booking.BookingService
	Users    userSvc.UserService
	Logger   *zap.Logger
}

func NewBookingHandler(sessions booking.BookingSessionService, bookings booking.BookingService, users userSvc.UserService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Sessions: sessions, Bookings: bookings, Users: users, Logger: logger}
}

// InitiateSession starts a wizard session for a salon.
func (h *BookingHandler) InitiateSession(c *gin.Context) {
	var input struct {
		SalonID        int    `json:"salonId" binding:"required"`
		DetectedGender string `json:"detectedGender"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	// Load the account so the details step starts prefilled with the user's
	// name and email.
	user := models.User{ID: c.GetString("userID")}
	if record, err := h.Users.GetByID(c.Request.Context(), user.ID); err == nil {
		user = record.Public()
	}

	session, err := h.Sessions.InitiateSession(c.Request.Context(), user, input.SalonID, input.DetectedGender)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start booking session", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// GetSession returns the current session state.
func (h *BookingHandler) GetSession(c *gin.Context) {
	session, err := h.Sessions.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// UpdateSession applies one wizard action to the session. The action names
// map one-to-one onto the state machine transitions.
func (h *BookingHandler) UpdateSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		Action    string `json:"action" binding:"required"`
		Category  string `json:"category"`
		ServiceID int    `json:"serviceId"`
		Date      string `json:"date"`
		Time      string `json:"time"`
		Name      string `json:"name"`
		Phone     string `json:"phone"`
		Email     string `json:"email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	ctx := c.Request.Context()
	var (
		session *models.BookingSession
		exited  bool
		err     error
	)
	switch input.Action {
	case "select_service":
		session, err = h.Sessions.SelectService(ctx, sessionID, models.Category(input.Category), input.ServiceID)
	case "select_schedule":
		session, err = h.Sessions.SelectSchedule(ctx, sessionID, input.Date, input.Time)
	case "submit_details":
		session, err = h.Sessions.SubmitDetails(ctx, sessionID, input.Name, input.Phone, input.Email)
	case "back":
		session, exited, err = h.Sessions.Back(ctx, sessionID)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown action"})
		return
	}
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session, "exited": exited})
}

// CompleteSession acknowledges the confirmation screen and discards the
// session.
func (h *BookingHandler) CompleteSession(c *gin.Context) {
	if err := h.Sessions.Complete(c.Request.Context(), c.Param("sessionID")); err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CancelSession discards a session.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.Sessions.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CreateBooking accepts the flat booking payload from clients that skip the
// server-side wizard. The shape matches the wizard's own submission.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var data models.BookingData
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	userID := c.GetString("userID")
	created, err := h.Bookings.CreateBooking(c.Request.Context(), userID, data)
	if err != nil {
		if errors.Is(err, booking.ErrMissingBookingInfo) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required booking information"})
			return
		}
		h.Logger.Error("failed to create booking", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": created})
}

// ListUserBookings returns booking summaries for a user.
func (h *BookingHandler) ListUserBookings(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required"})
		return
	}
	bookings, err := h.Bookings.ListUserBookings(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// BookingHistory returns the detailed booking history for the profile screen.
func (h *BookingHandler) BookingHistory(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required"})
		return
	}
	entries, err := h.Bookings.BookingHistory(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch booking history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": entries})
}

func (h *BookingHandler) respondSessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrInvalidStep),
		errors.Is(err, booking.ErrUnknownService),
		errors.Is(err, booking.ErrMissingDateTime),
		errors.Is(err, booking.ErrInvalidSlot),
		errors.Is(err, booking.ErrMissingCustomerDetails),
		errors.Is(err, booking.ErrMissingBookingInfo):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.Logger.Error("booking session operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
