// File: groomer/handlers/bundle.go
package handlers

import (
	userSvc "groomer/services/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Users userSvc.UserService

	// Auth endpoints
	SignUpHandler gin.HandlerFunc
	SignInHandler gin.HandlerFunc

	// Salon directory endpoints
	ListSalonsHandler     gin.HandlerFunc
	RefreshSalonsHandler  gin.HandlerFunc
	BookingOptionsHandler gin.HandlerFunc

	// Booking wizard session endpoints
	InitiateSession gin.HandlerFunc
	GetSession      gin.HandlerFunc
	UpdateSession   gin.HandlerFunc
	CompleteSession gin.HandlerFunc
	CancelSession   gin.HandlerFunc

	// Booking endpoints
	CreateBookingHandler    gin.HandlerFunc
	ListUserBookingsHandler gin.HandlerFunc
	BookingHistoryHandler   gin.HandlerFunc

	// Loyalty endpoints
	GetLoyaltyHandler gin.HandlerFunc
	RedeemHandler     gin.HandlerFunc

	// Account endpoints
	UpdateProfileHandler   gin.HandlerFunc
	GetPreferencesHandler  gin.HandlerFunc
	SavePreferencesHandler gin.HandlerFunc
	GetSettingsHandler     gin.HandlerFunc
	SaveSettingsHandler    gin.HandlerFunc
	ExportDataHandler      gin.HandlerFunc
	DeleteAccountHandler   gin.HandlerFunc
}
