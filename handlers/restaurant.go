package handlers

import (
	"net/http"
	"strconv"

	"tastekart/config"
	"tastekart/middleware"
	"tastekart/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ── Menu Management ─────────────────────────────────────────────────────────

type CreateMenuItemRequest struct {
	Name     string  `json:"name" binding:"required"`
	Category string  `json:"category"`
	Price    float64 `json:"price" binding:"required,gte=0"`
	PrepTime int     `json:"prep_time" binding:"gte=0"`
	Image    string  `json:"image"`
}

// AddMenuItem adds a new item to the restaurant's menu
func AddMenuItem(c *gin.Context) {
	restaurantID := middleware.GetUserID(c)

	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	image := req.Image
	if image == "" {
		image = models.DefaultMenuImage
	}

	item := models.MenuItem{
		RestaurantID: restaurantID,
		Name:         req.Name,
		Category:     req.Category,
		Price:        req.Price,
		PrepTime:     req.PrepTime,
		Image:        image,
		Availability: true,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add menu item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Menu item added", "item": item})
}

// GetMyMenu lists the restaurant's own items, including unavailable ones
func GetMyMenu(c *gin.Context) {
	restaurantID := middleware.GetUserID(c)
	var items []models.MenuItem
	config.DB.Where("restaurant_id = ?", restaurantID).Find(&items)
	c.JSON(http.StatusOK, gin.H{"count": len(items), "menu": items})
}

// UpdateMenuItem updates a menu item (only by the owning restaurant)
func UpdateMenuItem(c *gin.Context) {
	restaurantID := middleware.GetUserID(c)

	var item models.MenuItem
	if err := config.DB.First(&item, c.Param("itemId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	if item.RestaurantID != restaurantID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You don't own this menu item"})
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	allowed := map[string]bool{"name": true, "category": true, "price": true, "prep_time": true, "image": true, "availability": true}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	if err := config.DB.Model(&item).Updates(update).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated", "item": item})
}

// DeleteMenuItem removes a menu item (only by the owning restaurant)
func DeleteMenuItem(c *gin.Context) {
	restaurantID := middleware.GetUserID(c)

	var item models.MenuItem
	if err := config.DB.First(&item, c.Param("itemId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	if item.RestaurantID != restaurantID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You don't own this menu item"})
		return
	}
	config.DB.Delete(&item)
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}

// ImportMenu bulk-loads menu items from an uploaded .xlsx. Expected
// columns: name, category, price, prep_time, image. Rows with a missing
// name or unparseable price are skipped, never partially applied.
func ImportMenu(c *gin.Context) {
	restaurantID := middleware.GetUserID(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to open Excel file"})
		return
	}
	defer file.Close()

	xl, err := excelize.OpenReader(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse Excel file"})
		return
	}
	defer xl.Close()

	rows, err := xl.GetRows(xl.GetSheetName(0))
	if err != nil || len(rows) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Excel must have at least one row of data"})
		return
	}

	var items []models.MenuItem
	skipped := 0
	for _, row := range rows[1:] {
		if len(row) < 3 || row[0] == "" {
			skipped++
			continue
		}
		price, err := strconv.ParseFloat(row[2], 64)
		if err != nil || price < 0 {
			skipped++
			continue
		}
		prepTime := 0
		if len(row) > 3 && row[3] != "" {
			if v, err := strconv.Atoi(row[3]); err == nil && v >= 0 {
				prepTime = v
			}
		}
		image := models.DefaultMenuImage
		if len(row) > 4 && row[4] != "" {
			image = row[4]
		}
		items = append(items, models.MenuItem{
			RestaurantID: restaurantID,
			Name:         row[0],
			Category:     row[1],
			Price:        price,
			PrepTime:     prepTime,
			Image:        image,
			Availability: true,
		})
	}

	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No valid rows found"})
		return
	}
	if err := config.DB.Create(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import menu items"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Menu import successful",
		"imported": len(items),
		"skipped":  skipped,
	})
}
