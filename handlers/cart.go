package handlers

import (
	"net/http"

	"littlelemon-api/config"
	"littlelemon-api/middleware"
	"littlelemon-api/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type CartLineRequest struct {
	MenuItemID uint `json:"menuitem_id" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,min=1"`
}

// ListCart returns the caller's cart lines; there is no cross-user visibility
func ListCart(c *gin.Context) {
	ident := middleware.GetIdentity(c)
	var lines []models.Cart
	config.DB.Preload("MenuItem").Where("user_id = ?", ident.UserID).Find(&lines)
	c.JSON(http.StatusOK, gin.H{"count": len(lines), "cart": lines})
}

// AddToCart appends one line to the caller's cart. The unit price always
// comes from the menu item; any client-supplied price is ignored. Duplicate
// lines for the same item are allowed and not merged.
func AddToCart(c *gin.Context) {
	ident := middleware.GetIdentity(c)

	var req CartLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var item models.MenuItem
	if err := config.DB.First(&item, req.MenuItemID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	line := models.Cart{
		UserID:     ident.UserID,
		MenuItemID: item.ID,
		Quantity:   req.Quantity,
		UnitPrice:  item.Price,
		Price:      item.Price.Mul(decimal.NewFromInt(int64(req.Quantity))),
	}
	if err := config.DB.Create(&line).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to cart"})
		return
	}

	config.DB.Preload("MenuItem").First(&line, line.ID)
	c.JSON(http.StatusCreated, gin.H{"cart_line": line})
}

// ClearCart empties the caller's cart. Clearing an already empty cart is
// rejected rather than treated as a no-op.
func ClearCart(c *gin.Context) {
	ident := middleware.GetIdentity(c)

	var count int64
	config.DB.Model(&models.Cart{}).Where("user_id = ?", ident.UserID).Count(&count)
	if count == 0 {
		c.JSON(http.StatusForbidden, gin.H{"error": "Your cart is already empty."})
		return
	}

	if err := config.DB.Where("user_id = ?", ident.UserID).Delete(&models.Cart{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to empty cart"})
		return
	}
	c.JSON(http.StatusNoContent, gin.H{"message": "Your cart has been emptied."})
}
