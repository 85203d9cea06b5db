package handlers

import (
	"net/http"
	"time"

	"littlelemon-api/config"
	"littlelemon-api/metrics"
	"littlelemon-api/middleware"
	"littlelemon-api/models"
	"littlelemon-api/policy"
	"littlelemon-api/statemachine"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type UpdateOrderRequest struct {
	DeliveryCrew *uint `json:"delivery_crew"`
}

type DestroyOrderRequest struct {
	OrderID uint `json:"order_id" binding:"required"`
}

// ListOrders returns orders scoped by the caller's role: managers see every
// order, delivery crew see orders assigned to them, everyone else their own.
func ListOrders(c *gin.Context) {
	ident := middleware.GetIdentity(c)

	query := config.DB.Preload("Items.MenuItem").Preload("DeliveryCrew")
	switch {
	case policy.IsManager(ident):
		// no scope
	case policy.IsDeliveryCrew(ident):
		query = query.Where("delivery_crew_id = ?", ident.UserID)
	default:
		query = query.Where("user_id = ?", ident.UserID)
	}

	var orders []models.Order
	query.Find(&orders)
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// Checkout converts the caller's cart into an order. The cart read, order and
// item writes, and cart deletion all happen in one transaction so a failure
// partway never leaves a half-migrated cart.
func Checkout(c *gin.Context) {
	ident := middleware.GetIdentity(c)

	var order models.Order
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var lines []models.Cart
		if err := tx.Where("user_id = ?", ident.UserID).Find(&lines).Error; err != nil {
			return err
		}

		order = models.Order{
			UserID: ident.UserID,
			Status: models.StatusPending,
			Date:   time.Now(),
			Total:  decimal.Zero,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		total := decimal.Zero
		for _, line := range lines {
			item := models.OrderItem{
				OrderID:    order.ID,
				MenuItemID: line.MenuItemID,
				Quantity:   line.Quantity,
				UnitPrice:  line.UnitPrice,
				Price:      line.Price,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
			total = total.Add(line.Price)
		}

		if err := tx.Model(&order).Update("total", total).Error; err != nil {
			return err
		}
		order.Total = total

		if len(lines) > 0 {
			if err := tx.Where("user_id = ?", ident.UserID).Delete(&models.Cart{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	metrics.OrdersPlaced.Inc()

	config.DB.Preload("Items.MenuItem").First(&order, order.ID)
	c.JSON(http.StatusCreated, gin.H{"order": order})
}

// GetOrder returns one order. Owners, managers and delivery crew may view it.
func GetOrder(c *gin.Context) {
	ident := middleware.GetIdentity(c)

	var order models.Order
	if err := config.DB.Preload("Items.MenuItem").Preload("DeliveryCrew").
		First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if order.UserID != ident.UserID && !policy.IsManager(ident) && !policy.IsDeliveryCrew(ident) {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to you."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": order})
}

// UpdateOrder applies one status transition. The decision comes from the
// state machine; the write is a compare-and-swap on (id, status) so two
// concurrent updates cannot both land.
func UpdateOrder(c *gin.Context) {
	ident := middleware.GetIdentity(c)

	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	actor := statemachine.ActorCustomer
	switch {
	case policy.IsManager(ident):
		actor = statemachine.ActorManager
	case policy.IsDeliveryCrew(ident):
		actor = statemachine.ActorDeliveryCrew
	}
	assigned := order.DeliveryCrewID != nil && *order.DeliveryCrewID == ident.UserID

	decision := statemachine.Decide(actor, order.Status, assigned)
	switch decision.Outcome {
	case statemachine.OutcomeTransition:
		updates := map[string]interface{}{"status": decision.NewStatus}
		if decision.CanAssignCrew && req.DeliveryCrew != nil {
			var crew models.User
			if err := config.DB.First(&crew, *req.DeliveryCrew).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Delivery crew not found"})
				return
			}
			updates["delivery_crew_id"] = crew.ID
		}

		result := config.DB.Model(&models.Order{}).
			Where("id = ? AND status = ?", order.ID, order.Status).
			Updates(updates)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Order was updated concurrently, please retry"})
			return
		}

		metrics.StatusTransitions.WithLabelValues(string(actor)).Inc()
		c.JSON(http.StatusOK, gin.H{"message": decision.Message})

	case statemachine.OutcomeAlreadyOut:
		c.JSON(http.StatusBadRequest, gin.H{"error": decision.Message})

	case statemachine.OutcomeNotAssigned, statemachine.OutcomeForbidden:
		c.JSON(http.StatusForbidden, gin.H{"error": decision.Message})
	}
}

// DeleteOrder removes an order by path id — manager only
func DeleteOrder(c *gin.Context) {
	destroyOrder(c, c.Param("id"))
}

// DestroyOrders is the collection-level delete taking the order id in the
// body, kept for compatibility with existing clients — manager only
func DestroyOrders(c *gin.Context) {
	var req DestroyOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order_id is required"})
		return
	}
	destroyOrder(c, req.OrderID)
}

// destroyOrder checks permission before looking the order up so a
// non-manager always gets 403, even for ids that do not exist.
func destroyOrder(c *gin.Context, id interface{}) {
	ident := middleware.GetIdentity(c)
	if !policy.IsManager(ident) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to delete orders."})
		return
	}

	var order models.Order
	if err := config.DB.First(&order, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
		return
	}
	c.JSON(http.StatusNoContent, gin.H{"message": "Order successfully deleted."})
}
