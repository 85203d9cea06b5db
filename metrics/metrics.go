package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	UsersRegistered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "littlelemon_users_registered_total",
		Help: "Total number of user accounts created.",
	})
	OrdersPlaced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "littlelemon_orders_placed_total",
		Help: "Total number of orders created at checkout.",
	})
	StatusTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "littlelemon_order_status_transitions_total",
		Help: "Order status transitions applied, labelled by actor.",
	}, []string{"actor"})
)
