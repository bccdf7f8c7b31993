package handlers

import (
	"net/http"
	"strconv"
	"time"

	"groomer/models"
	"groomer/services/catalog"
	"groomer/services/directory"

	"github.com/gin-gonic/gin"
)

// SalonHandler serves the salon directory.
type SalonHandler struct {
	Directory directory.DirectoryService
}

func NewSalonHandler(dir directory.DirectoryService) *SalonHandler {
	return &SalonHandler{Directory: dir}
}

// ListSalonsHandler returns the directory, optionally filtered by ?q= and
// sorted by distance when ?lat=&lng= are supplied.
func (h *SalonHandler) ListSalonsHandler(c *gin.Context) {
	query := c.Query("q")

	var userPos *models.GeoPoint
	latStr, lngStr := c.Query("lat"), c.Query("lng")
	if latStr != "" && lngStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lng, lngErr := strconv.ParseFloat(lngStr, 64)
		if latErr != nil || lngErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lat/lng"})
			return
		}
		userPos = &models.GeoPoint{Lat: lat, Lng: lng}
	}

	salons, err := h.Directory.ListSalons(c.Request.Context(), query, userPos)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch salons"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"salons": salons})
}

// RefreshSalonsHandler clears stored salon data so the next read reseeds it.
func (h *SalonHandler) RefreshSalonsHandler(c *gin.Context) {
	if err := h.Directory.Refresh(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear salon data"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Salon data cleared successfully"})
}

// BookingOptionsHandler returns what the wizard can offer for a salon: the
// per-category service catalog, the 7-day date window and the time slots.
func (h *SalonHandler) BookingOptionsHandler(c *gin.Context) {
	salonID, err := strconv.Atoi(c.Query("salonId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "salonId is required"})
		return
	}
	salon, err := h.Directory.GetSalon(c.Request.Context(), salonID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "salon not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"services": gin.H{
			"women": catalog.ServicesByCategory(models.CategoryWomen, salon.Image),
			"men":   catalog.ServicesByCategory(models.CategoryMen, salon.Image),
		},
		"dates":     catalog.UpcomingDates(time.Now(), catalog.BookingWindowDays),
		"timeSlots": catalog.TimeSlots(),
	})
}
