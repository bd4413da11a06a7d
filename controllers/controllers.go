package controllers

import (
	"resto-api/config"
	"resto-api/realtime"
	"resto-api/services"
)

var (
	hub    *realtime.Hub
	orders services.OrderService
)

// Init wires the websocket hub and the order service. Called once from main
// after the database connection is up.
func Init(h *realtime.Hub) {
	hub = h
	orders = services.NewOrderService(config.DB, h)
}
