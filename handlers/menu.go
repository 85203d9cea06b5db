package handlers

import (
	"net/http"

	"littlelemon-api/config"
	"littlelemon-api/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type MenuItemRequest struct {
	Title    string          `json:"title" binding:"required"`
	Price    decimal.Decimal `json:"price"`
	Featured bool            `json:"featured"`
	Category string          `json:"category"`
}

type MenuItemPatch struct {
	Title    *string          `json:"title"`
	Price    *decimal.Decimal `json:"price"`
	Featured *bool            `json:"featured"`
	Category *string          `json:"category"`
}

// ListMenuItems returns the menu; open to any authenticated user
func ListMenuItems(c *gin.Context) {
	var items []models.MenuItem
	query := config.DB
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if featured := c.Query("featured"); featured != "" {
		query = query.Where("featured = ?", featured == "true")
	}
	query.Find(&items)
	c.JSON(http.StatusOK, gin.H{"count": len(items), "menu_items": items})
}

// GetMenuItem returns a single menu item
func GetMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu_item": item})
}

// CreateMenuItem adds a menu item — manager only (enforced by routing)
func CreateMenuItem(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Price.IsPositive() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be positive"})
		return
	}

	item := models.MenuItem{
		Title:    req.Title,
		Price:    req.Price,
		Featured: req.Featured,
		Category: req.Category,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create menu item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"menu_item": item})
}

// UpdateMenuItem replaces a menu item's fields — manager only
func UpdateMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Price.IsPositive() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be positive"})
		return
	}

	item.Title = req.Title
	item.Price = req.Price
	item.Featured = req.Featured
	item.Category = req.Category
	if err := config.DB.Save(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu_item": item})
}

// PatchMenuItem updates only the provided fields — manager only
func PatchMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	var req MenuItemPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Title != nil {
		if *req.Title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title must not be empty"})
			return
		}
		item.Title = *req.Title
	}
	if req.Price != nil {
		if !req.Price.IsPositive() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be positive"})
			return
		}
		item.Price = *req.Price
	}
	if req.Featured != nil {
		item.Featured = *req.Featured
	}
	if req.Category != nil {
		item.Category = *req.Category
	}

	if err := config.DB.Save(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu_item": item})
}

// DeleteMenuItem removes a menu item — manager only. Items referenced by an
// existing order line are kept so order history stays intact.
func DeleteMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	var referenced int64
	config.DB.Model(&models.OrderItem{}).Where("menu_item_id = ?", item.ID).Count(&referenced)
	if referenced > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Menu item is referenced by existing orders and cannot be deleted"})
		return
	}

	if err := config.DB.Delete(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu item"})
		return
	}
	c.JSON(http.StatusNoContent, gin.H{"message": "Menu item deleted"})
}
