package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"tastekart/config"
	"tastekart/middleware"
	"tastekart/models"
	"tastekart/orders"
	"tastekart/statemachine"

	"github.com/gin-gonic/gin"
)

// GetRestaurantOrders returns all orders placed with this restaurant
func GetRestaurantOrders(c *gin.Context) {
	restaurantID := middleware.GetUserID(c)

	var orderList []models.Order
	query := config.DB.Preload("Items").Preload("Customer").
		Where("restaurant_id = ?", restaurantID)

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	query.Order("created_at desc").Find(&orderList)

	summary := map[string]int{}
	for _, o := range orderList {
		summary[string(o.Status)]++
	}

	var deliveredCount int64
	config.DB.Model(&models.Order{}).
		Where("restaurant_id = ? AND status = ?", restaurantID, models.StatusDelivered).
		Count(&deliveredCount)

	c.JSON(http.StatusOK, gin.H{
		"order_summary":   summary,
		"delivered_count": deliveredCount,
		"count":           len(orderList),
		"orders":          orderList,
	})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateOrderStatus moves one of the restaurant's orders to a new status
func UpdateOrderStatus(c *gin.Context) {
	restaurantID := middleware.GetUserID(c)

	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := orders.SetStatus(config.DB, uint(orderID), restaurantID, req.Status, false)
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		case errors.Is(err, orders.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to your restaurant"})
		case errors.Is(err, statemachine.ErrUnknownStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status selected"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating order status. Please try again."})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Order status updated",
		"order_id":       order.ID,
		"current_status": order.Status,
	})
}
