package routes

import (
	"net/http"
	"time"

	"groomer/handlers"
	"groomer/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers signup and login.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/signup", hb.SignUpHandler)
		api.POST("/login", hb.SignInHandler)
	}
}

// RegisterSalonRoutes registers the salon directory endpoints.
func RegisterSalonRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/salons")
	{
		api.GET("", hb.ListSalonsHandler)
		api.DELETE("", hb.RefreshSalonsHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking engine. The
// wizard sessions and booking creation require authentication; the per-user
// listings and booking options are public, as in the original backend.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.GET("/options", hb.BookingOptionsHandler)

		sessions := bookingGroup.Group("/session")
		sessions.Use(middleware.JWTAuthMiddleware(hb.Users))
		sessions.POST("", hb.InitiateSession)
		sessions.GET("/:sessionID", hb.GetSession)
		sessions.PUT("/:sessionID", hb.UpdateSession)
		sessions.POST("/:sessionID/complete", hb.CompleteSession)
		sessions.DELETE("/:sessionID", hb.CancelSession)
	}

	api := r.Group("/api/bookings")
	{
		api.POST("", middleware.JWTAuthMiddleware(hb.Users), hb.CreateBookingHandler)
		api.GET("/user/:userId", hb.ListUserBookingsHandler)
		api.GET("/history/:userId", hb.BookingHistoryHandler)
	}
}

// RegisterLoyaltyRoutes registers the loyalty program endpoints.
func RegisterLoyaltyRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/loyalty")
	{
		api.GET("/:userId", hb.GetLoyaltyHandler)
		api.POST("/redeem", hb.RedeemHandler)
	}
}

// RegisterAccountRoutes registers profile, preferences, settings, export and
// account deletion, on the paths existing clients call.
func RegisterAccountRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/profile/update", hb.UpdateProfileHandler)
	r.GET("/api/preferences/:userId", hb.GetPreferencesHandler)
	r.POST("/api/preferences/:userId", hb.SavePreferencesHandler)
	r.GET("/api/settings/:userId", hb.GetSettingsHandler)
	r.POST("/api/settings/:userId", hb.SaveSettingsHandler)
	r.GET("/api/data/export/:userId", hb.ExportDataHandler)
	r.DELETE("/api/account/delete/:userId", hb.DeleteAccountHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterUserRoutes(r, hb)
	RegisterSalonRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterLoyaltyRoutes(r, hb)
	RegisterAccountRoutes(r, hb)
	RegisterHealthRoute(r)
}
