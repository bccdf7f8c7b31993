package handlers

import (
	"errors"
	"net/http"

	"groomer/models"
	"groomer/services/account"

	"github.com/gin-gonic/gin"
)

// AccountHandler serves profile, preferences, settings, export and deletion.
// Preferences and settings documents travel unwrapped, exactly as stored.
type AccountHandler struct {
	Service account.AccountService
}

func NewAccountHandler(svc account.AccountService) *AccountHandler {
	return &AccountHandler{Service: svc}
}

// UpdateProfileHandler replaces the user's profile document.
func (h *AccountHandler) UpdateProfileHandler(c *gin.Context) {
	var req struct {
		UserID  string         `json:"userId"`
		Profile models.Profile `json:"profile"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" || req.Profile == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID and profile data are required"})
		return
	}
	if err := h.Service.UpdateProfile(c.Request.Context(), req.UserID, req.Profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetPreferencesHandler returns the stored preferences document.
func (h *AccountHandler) GetPreferencesHandler(c *gin.Context) {
	prefs, err := h.Service.GetPreferences(c.Request.Context(), c.Param("userId"))
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No preferences found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch preferences"})
		return
	}
	c.JSON(http.StatusOK, prefs)
}

// SavePreferencesHandler replaces the preferences document. The request body
// is the document.
func (h *AccountHandler) SavePreferencesHandler(c *gin.Context) {
	var prefs models.Preferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	if err := h.Service.SavePreferences(c.Request.Context(), c.Param("userId"), prefs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save preferences"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetSettingsHandler returns the stored settings document.
func (h *AccountHandler) GetSettingsHandler(c *gin.Context) {
	settings, err := h.Service.GetSettings(c.Request.Context(), c.Param("userId"))
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No settings found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// SaveSettingsHandler replaces the settings document. The request body is the
// document.
func (h *AccountHandler) SaveSettingsHandler(c *gin.Context) {
	var settings models.Settings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	if err := h.Service.SaveSettings(c.Request.Context(), c.Param("userId"), settings); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ExportDataHandler streams the full account data bundle as a JSON download.
func (h *AccountHandler) ExportDataHandler(c *gin.Context) {
	bundle, err := h.Service.ExportData(c.Request.Context(), c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export data"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="salon-data.json"`)
	c.JSON(http.StatusOK, bundle)
}

// DeleteAccountHandler removes all stored data for the user.
func (h *AccountHandler) DeleteAccountHandler(c *gin.Context) {
	if err := h.Service.DeleteAccount(c.Request.Context(), c.Param("userId")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete account data"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
