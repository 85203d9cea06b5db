package handlers

import (
	"net/http"

	"littlelemon-api/models"
	"littlelemon-api/statemachine"

	"github.com/gin-gonic/gin"
)

// GetStateMachineInfo documents the order status model and its transitions
func GetStateMachineInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"states": gin.H{
			"pending":          models.StatusPending,
			"out_for_delivery": models.StatusOutForDelivery,
		},
		"transitions": statemachine.All(),
	})
}
