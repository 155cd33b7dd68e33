package handlers

import (
	"net/http"

	"tastekart/config"
	"tastekart/middleware"
	"tastekart/models"

	"github.com/gin-gonic/gin"
)

// GetMyOrders returns the customer's order history, newest first, with a
// reviewed flag so the client can hide the review action.
func GetMyOrders(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var orderList []models.Order
	config.DB.Preload("Restaurant").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orderList)

	var reviewedIDs []uint
	config.DB.Model(&models.Review{}).
		Where("user_id = ?", userID).
		Pluck("order_id", &reviewedIDs)
	reviewed := make(map[uint]bool, len(reviewedIDs))
	for _, id := range reviewedIDs {
		reviewed[id] = true
	}

	type orderWithReview struct {
		models.Order
		Reviewed bool `json:"reviewed"`
	}
	out := make([]orderWithReview, 0, len(orderList))
	for _, o := range orderList {
		out = append(out, orderWithReview{Order: o, Reviewed: reviewed[o.ID]})
	}

	c.JSON(http.StatusOK, gin.H{"count": len(out), "orders": out})
}

// GetOrderDetail returns one of the customer's orders with its items
func GetOrderDetail(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var order models.Order
	if err := config.DB.Preload("Items").Preload("Restaurant").
		First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to you"})
		return
	}

	var payment models.PaymentTransaction
	config.DB.Where("order_id = ?", order.ID).First(&payment)

	c.JSON(http.StatusOK, gin.H{"order": order, "payment": payment})
}

type ReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

// SubmitReview records a write-once rating for a delivered order. The
// order must belong to the caller and must not have been reviewed yet.
func SubmitReview(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to you"})
		return
	}
	if order.Status != models.StatusDelivered {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Only delivered orders can be reviewed"})
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 1 and 5"})
		return
	}

	var existing models.Review
	if err := config.DB.Where("order_id = ? AND user_id = ?", order.ID, userID).
		First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "You have already submitted a review for this order"})
		return
	}

	review := models.Review{
		OrderID:      order.ID,
		UserID:       userID,
		RestaurantID: order.RestaurantID,
		Rating:       req.Rating,
		Comment:      req.Comment,
	}
	if err := config.DB.Create(&review).Error; err != nil {
		// Unique index on (order_id, user_id) backstops the check above.
		c.JSON(http.StatusConflict, gin.H{"error": "You have already submitted a review for this order"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Review submitted successfully", "review": review})
}
