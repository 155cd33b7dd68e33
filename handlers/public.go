package handlers

import (
	"net/http"

	"tastekart/config"
	"tastekart/models"

	"github.com/gin-gonic/gin"
)

// ListMenu returns available menu items across all restaurants (public)
func ListMenu(c *gin.Context) {
	var items []models.MenuItem
	query := config.DB.Preload("Restaurant").Where("availability = ?", true)

	if restaurantID := c.Query("restaurant_id"); restaurantID != "" {
		query = query.Where("restaurant_id = ?", restaurantID)
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	query.Find(&items)
	c.JSON(http.StatusOK, gin.H{"count": len(items), "menu": items})
}

// ListRestaurants returns all restaurant accounts (public)
func ListRestaurants(c *gin.Context) {
	var restaurants []models.User
	query := config.DB.Select("id", "name", "address", "phone").
		Where("role = ?", models.RoleRestaurant)

	if search := c.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	query.Find(&restaurants)
	c.JSON(http.StatusOK, gin.H{"count": len(restaurants), "restaurants": restaurants})
}

// ListRestaurantReviews returns reviews left for a restaurant (public)
func ListRestaurantReviews(c *gin.Context) {
	var restaurant models.User
	if err := config.DB.Where("id = ? AND role = ?", c.Param("id"), models.RoleRestaurant).
		First(&restaurant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	var reviews []models.Review
	config.DB.Preload("User").
		Where("restaurant_id = ?", restaurant.ID).
		Order("created_at desc").
		Find(&reviews)

	var avg float64
	for _, r := range reviews {
		avg += float64(r.Rating)
	}
	if len(reviews) > 0 {
		avg /= float64(len(reviews))
	}

	c.JSON(http.StatusOK, gin.H{
		"restaurant":     restaurant.Name,
		"count":          len(reviews),
		"average_rating": avg,
		"reviews":        reviews,
	})
}
