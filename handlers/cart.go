package handlers

import (
	"net/http"

	"tastekart/cart"
	"tastekart/config"
	"tastekart/middleware"
	"tastekart/models"

	"github.com/gin-gonic/gin"
)

type SyncCartRequest struct {
	Items []struct {
		MenuItemID uint `json:"menu_item_id" binding:"required"`
		Quantity   int  `json:"quantity" binding:"required,min=1"`
	} `json:"items" binding:"required,min=1"`
}

// SyncCart replaces the session cart with the posted item list. Unit
// prices come from the menu, not the client; the whole cart must belong
// to one restaurant.
func SyncCart(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req SyncCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var lines []cart.Line
	for _, item := range req.Items {
		var mi models.MenuItem
		if err := config.DB.First(&mi, item.MenuItemID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Menu item not found"})
			return
		}
		if !mi.Availability {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Menu item '" + mi.Name + "' is not available"})
			return
		}
		lines = append(lines, cart.Line{
			MenuItemID:   mi.ID,
			Name:         mi.Name,
			Quantity:     item.Quantity,
			Price:        mi.Price,
			RestaurantID: mi.RestaurantID,
		})
	}

	subtotal, err := cart.Subtotal(lines)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := loadSession(config.DB, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load checkout session"})
		return
	}
	if err := setSessionLines(session, lines); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store cart"})
		return
	}
	if err := saveSession(config.DB, session); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Cart synced",
		"items":    lines,
		"subtotal": subtotal,
	})
}

// GetCart returns the session cart with current totals
func GetCart(c *gin.Context) {
	userID := middleware.GetUserID(c)

	session, err := loadSession(config.DB, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load checkout session"})
		return
	}

	lines := sessionLines(session)
	if len(lines) == 0 {
		c.JSON(http.StatusOK, gin.H{"items": []cart.Line{}, "subtotal": 0})
		return
	}

	subtotal, err := cart.Subtotal(lines)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":               lines,
		"subtotal":            subtotal,
		"discount_percentage": session.DiscountPercentage,
		"promo_code":          session.PromoCode,
		"delivery_address":    session.DeliveryAddress,
	})
}
