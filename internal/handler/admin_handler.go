package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"cloudshop/internal/model"
	"cloudshop/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles admin login and the admin panel endpoints
type AdminHandler struct {
	admins service.AdminService
	orders service.OrderService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(admins service.AdminService, orders service.OrderService) *AdminHandler {
	return &AdminHandler{admins: admins, orders: orders}
}

func (h *AdminHandler) Login(c *gin.Context) {
	var req model.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "username, password and captcha are required")
		return
	}

	admin, token, err := h.admins.Login(c.Request.Context(), req)
	if err != nil {
		log.Printf("admin login failed for %q: %v", req.Username, err)
		failFromService(c, err, "failed to login")
		return
	}

	okMessageData(c, "login successful", gin.H{"token": token, "admin": admin})
}

func (h *AdminHandler) ChangePassword(c *gin.Context) {
	adminID, ok := getAuthUserID(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req model.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "current and new password are required")
		return
	}

	if err := h.admins.ChangePassword(c.Request.Context(), adminID, req.CurrentPassword, req.NewPassword); err != nil {
		log.Printf("admin password change failed: %v", err)
		failFromService(c, err, "failed to update password")
		return
	}
	okMessage(c, "password updated")
}

func (h *AdminHandler) ListAllOrders(c *gin.Context) {
	orders, err := h.orders.ListAll(c.Request.Context())
	if err != nil {
		log.Printf("admin list orders failed: %v", err)
		failFromService(c, err, "failed to fetch orders")
		return
	}

	views := make([]model.OrderView, 0, len(orders))
	for i := range orders {
		views = append(views, orders[i].View(true))
	}
	okData(c, views)
}

func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	var req model.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "status is required")
		return
	}

	if err := h.orders.UpdateStatus(c.Request.Context(), c.Param("orderId"), req.Status); err != nil {
		log.Printf("order status update failed: %v", err)
		failFromService(c, err, "failed to update order status")
		return
	}
	okMessage(c, "order status updated")
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.admins.ListUsers(c.Request.Context())
	if err != nil {
		log.Printf("admin list users failed: %v", err)
		failFromService(c, err, "failed to fetch users")
		return
	}
	okData(c, users)
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid user id")
		return
	}

	if err := h.admins.DeleteUser(c.Request.Context(), userID); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			fail(c, http.StatusNotFound, err.Error())
			return
		}
		log.Printf("delete user failed: %v", err)
		failFromService(c, err, "failed to delete user")
		return
	}
	okMessage(c, "user deleted")
}

// RegisterAdminRoutes registers the admin login and the admin-gated panel routes
func (h *AdminHandler) RegisterAdminRoutes(rg *gin.RouterGroup, adminMW gin.HandlerFunc) {
	adminGroup := rg.Group("/admin")
	adminGroup.POST("/login", h.Login)

	protected := adminGroup.Group("")
	protected.Use(adminMW)
	{
		protected.PUT("/password", h.ChangePassword)
		protected.GET("/orders", h.ListAllOrders)
		protected.PUT("/orders/:orderId/status", h.UpdateOrderStatus)
		protected.GET("/users", h.ListUsers)
		protected.DELETE("/users/:id", h.DeleteUser)
	}
}
