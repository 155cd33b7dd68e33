package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"tastekart/config"
	"tastekart/models"
	"tastekart/orders"
	"tastekart/statemachine"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

type CreateCouponRequest struct {
	Code          string  `json:"code" binding:"required"`
	Discount      float64 `json:"discount" binding:"required,gte=0,lte=100"`
	ExpiryDate    string  `json:"expiry_date" binding:"required"` // YYYY-MM-DD
	MinOrderValue float64 `json:"min_order_value" binding:"gte=0"`
}

// CreateCoupon adds a discount code — admin only
func CreateCoupon(c *gin.Context) {
	var req CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expiry, err := time.Parse("2006-01-02", req.ExpiryDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Expiry date must be in YYYY-MM-DD format"})
		return
	}

	coupon := models.Coupon{
		Code:          req.Code,
		Discount:      req.Discount,
		ExpiryDate:    expiry,
		MinOrderValue: req.MinOrderValue,
	}
	if err := config.DB.Create(&coupon).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Coupon code already exists"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Coupon created", "coupon": coupon})
}

// ListCoupons returns all coupons — admin only
func ListCoupons(c *gin.Context) {
	var coupons []models.Coupon
	config.DB.Order("expiry_date desc").Find(&coupons)
	c.JSON(http.StatusOK, gin.H{"count": len(coupons), "coupons": coupons})
}

// Dashboard returns aggregate order metrics for the admin overview:
// totals, revenue, delivered count and a daily trend for the last week.
func Dashboard(c *gin.Context) {
	var totalOrders int64
	config.DB.Model(&models.Order{}).Count(&totalOrders)

	var totalRevenue float64
	config.DB.Model(&models.Order{}).Select("COALESCE(SUM(total_amount), 0)").Scan(&totalRevenue)

	var deliveredCount int64
	config.DB.Model(&models.Order{}).
		Where("status = ?", models.StatusDelivered).
		Count(&deliveredCount)

	type dailyCount struct {
		OrderDate  string `json:"order_date"`
		OrderCount int64  `json:"order_count"`
	}
	var trend []dailyCount
	since := time.Now().AddDate(0, 0, -7)
	config.DB.Model(&models.Order{}).
		Select("date(created_at) as order_date, COUNT(*) as order_count").
		Where("created_at >= ?", since).
		Group("date(created_at)").
		Order("order_date").
		Scan(&trend)

	c.JSON(http.StatusOK, gin.H{
		"total_orders":    totalOrders,
		"total_revenue":   totalRevenue,
		"delivered_count": deliveredCount,
		"daily_orders":    trend,
	})
}

// AdminGetAllOrders returns every order with customer and restaurant
// names — admin only
func AdminGetAllOrders(c *gin.Context) {
	var orderList []models.Order
	query := config.DB.Preload("Items").Preload("Customer").Preload("Restaurant")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if restaurantID := c.Query("restaurant_id"); restaurantID != "" {
		query = query.Where("restaurant_id = ?", restaurantID)
	}
	query.Order("created_at desc").Find(&orderList)

	c.JSON(http.StatusOK, gin.H{"count": len(orderList), "orders": orderList})
}

// AdminForceOrderStatus lets an admin override any order's status,
// skipping the ownership check
func AdminForceOrderStatus(c *gin.Context) {
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

	order, err := orders.SetStatus(config.DB, uint(orderID), 0, req.Status, true)
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		case errors.Is(err, statemachine.ErrUnknownStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status selected"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating order status. Please try again."})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Order status force-updated by admin",
		"order_id":       order.ID,
		"current_status": order.Status,
	})
}

// ExportOrders writes all orders to an .xlsx report — admin only
func ExportOrders(c *gin.Context) {
	var orderList []models.Order
	config.DB.Preload("Customer").Preload("Restaurant").
		Order("created_at desc").Find(&orderList)

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	headers := []string{"Order ID", "Customer", "Restaurant", "Status", "Total Amount", "Delivery Address", "Created At"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for rowIdx, o := range orderList {
		customer, restaurant := "", ""
		if o.Customer != nil {
			customer = o.Customer.Name
		}
		if o.Restaurant != nil {
			restaurant = o.Restaurant.Name
		}
		values := []interface{}{
			o.ID, customer, restaurant, string(o.Status),
			o.TotalAmount, o.DeliveryAddress, o.CreatedAt.Format(time.RFC3339),
		}
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="orders_%s.xlsx"`, time.Now().Format("2006-01-02")))
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write report"})
	}
}
