package routes

import (
	"littlelemon-api/handlers"
	"littlelemon-api/middleware"
	"littlelemon-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, throttle *middleware.Throttle) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/", throttle.Anonymous())
	{
		public.POST("/users", handlers.Register)
		public.POST("/token", handlers.Token)
		public.GET("/state-machine", handlers.GetStateMachineInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/", middleware.AuthRequired(), throttle.Authenticated())
	{
		auth.GET("/users/user/me", handlers.CurrentUser)

		// Menu reads are open to any authenticated user
		auth.GET("/menu-items", handlers.ListMenuItems)
		auth.GET("/menu-items/:id", handlers.GetMenuItem)

		// Cart
		auth.GET("/cart/menu-items", handlers.ListCart)
		auth.POST("/cart/menu-items", handlers.AddToCart)
		auth.DELETE("/cart/menu-items", handlers.ClearCart)

		// Orders — role scoping and order deletion are enforced in the
		// handlers, since customers, crew and managers share these paths
		auth.GET("/orders", handlers.ListOrders)
		auth.POST("/orders", handlers.Checkout)
		auth.DELETE("/orders", handlers.DestroyOrders)
		auth.GET("/orders/:id", handlers.GetOrder)
		auth.PUT("/orders/:id", handlers.UpdateOrder)
		auth.PATCH("/orders/:id", handlers.UpdateOrder)
		auth.DELETE("/orders/:id", handlers.DeleteOrder)
	}

	// ── Manager routes ─────────────────────────────────────────────
	manager := r.Group("/", middleware.AuthRequired(), throttle.Authenticated(), middleware.ManagerRequired())
	{
		manager.POST("/menu-items", handlers.CreateMenuItem)
		manager.PUT("/menu-items/:id", handlers.UpdateMenuItem)
		manager.PATCH("/menu-items/:id", handlers.PatchMenuItem)
		manager.DELETE("/menu-items/:id", handlers.DeleteMenuItem)

		manager.GET("/groups/manager/users", handlers.ListGroupMembers(models.GroupManager))
		manager.POST("/groups/manager/users", handlers.AddGroupMember(models.GroupManager))
		manager.DELETE("/groups/manager/users", handlers.RemoveGroupMember(models.GroupManager))

		manager.GET("/groups/delivery-crew/users", handlers.ListGroupMembers(models.GroupDeliveryCrew))
		manager.POST("/groups/delivery-crew/users", handlers.AddGroupMember(models.GroupDeliveryCrew))
		manager.DELETE("/groups/delivery-crew/users", handlers.RemoveGroupMember(models.GroupDeliveryCrew))
	}
}
