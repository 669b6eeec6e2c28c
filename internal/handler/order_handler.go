package handler

import (
	"log"
	"net/http"

	"cloudshop/internal/model"
	"cloudshop/internal/service"

	"github.com/gin-gonic/gin"
)

// OrderHandler handles order creation and queries for authenticated users
type OrderHandler struct {
	orders service.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orders service.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	userID, ok := getAuthUserID(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req model.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "missing required order parameters")
		return
	}

	order, err := h.orders.Create(c.Request.Context(), userID, req)
	if err != nil {
		log.Printf("create order failed: %v", err)
		failFromService(c, err, "failed to create order")
		return
	}
	okData(c, order.View(false))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	userID, ok := getAuthUserID(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "authentication required")
		return
	}

	order, err := h.orders.Get(c.Request.Context(), c.Param("orderId"), userID)
	if err != nil {
		log.Printf("get order failed: %v", err)
		failFromService(c, err, "failed to fetch order")
		return
	}
	okData(c, order.View(false))
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	userID, ok := getAuthUserID(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "authentication required")
		return
	}

	orders, err := h.orders.ListByUser(c.Request.Context(), userID)
	if err != nil {
		log.Printf("list orders failed: %v", err)
		failFromService(c, err, "failed to fetch orders")
		return
	}

	views := make([]model.OrderView, 0, len(orders))
	for i := range orders {
		views = append(views, orders[i].View(false))
	}
	okData(c, views)
}

// RegisterOrderRoutes registers the authenticated order routes
func (h *OrderHandler) RegisterOrderRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.POST("/order", authMW, h.CreateOrder)
	rg.GET("/order/:orderId", authMW, h.GetOrder)
	rg.GET("/orders", authMW, h.ListOrders)
}
