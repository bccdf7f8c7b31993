package handlers

import (
	"errors"
	"net/http"

	"groomer/services/loyalty"

	"github.com/gin-gonic/gin"
)

// LoyaltyHandler serves the loyalty program endpoints.
type LoyaltyHandler struct {
	Service loyalty.LoyaltyService
}

func NewLoyaltyHandler(svc loyalty.LoyaltyService) *LoyaltyHandler {
	return &LoyaltyHandler{Service: svc}
}

// GetLoyaltyHandler returns the user's loyalty document, seeding the starter
// document on first access. The document is the response body, unwrapped.
func (h *LoyaltyHandler) GetLoyaltyHandler(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required"})
		return
	}
	doc, err := h.Service.GetLoyalty(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch loyalty data"})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// RedeemHandler deducts a reward's cost from the user's balance.
func (h *LoyaltyHandler) RedeemHandler(c *gin.Context) {
	var req struct {
		UserID   string `json:"userId" binding:"required"`
		RewardID string `json:"rewardId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId and rewardId are required"})
		return
	}

	if err := h.Service.Redeem(c.Request.Context(), req.UserID, req.RewardID); err != nil {
		switch {
		case errors.Is(err, loyalty.ErrLoyaltyNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Loyalty data not found"})
		case errors.Is(err, loyalty.ErrRewardUnavailable):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Reward not available"})
		case errors.Is(err, loyalty.ErrInsufficientPoints):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient points"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to redeem reward"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
