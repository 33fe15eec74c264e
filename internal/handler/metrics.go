package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ordersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "dashboard",
			Subsystem: "orders",
			Name:      "created_total",
			Help:      "Total number of orders created",
		},
	)

	ordersCancelled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "dashboard",
			Subsystem: "orders",
			Name:      "cancelled_total",
			Help:      "Total number of orders cancelled",
		},
	)

	ordersRejectedValidation = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "dashboard",
			Subsystem: "orders",
			Name:      "rejected_validation_total",
			Help:      "Total number of order creations rejected by validation",
		},
	)

	ordersRejectedUser = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "dashboard",
			Subsystem: "orders",
			Name:      "rejected_user_total",
			Help:      "Total number of order creations rejected by the user existence check",
		},
	)
)

var (
	usersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "dashboard",
			Subsystem: "users",
			Name:      "created_total",
			Help:      "Total number of users created",
		},
	)

	usersDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "dashboard",
			Subsystem: "users",
			Name:      "deleted_total",
			Help:      "Total number of users deleted",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		ordersCreated,
		ordersCancelled,
		ordersRejectedValidation,
		ordersRejectedUser,

		usersCreated,
		usersDeleted,
	)
}
