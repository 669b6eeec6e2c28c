package handler

import (
	"errors"
	"log"
	"net/http"

	"cloudshop/internal/payment"

	"github.com/gin-gonic/gin"
)

// PaymentHandler bridges payment endpoints to the provider gateway
type PaymentHandler struct {
	gateway *payment.Gateway
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(gateway *payment.Gateway) *PaymentHandler {
	return &PaymentHandler{gateway: gateway}
}

func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req struct {
		OrderID       string  `json:"orderId" binding:"required"`
		PaymentMethod string  `json:"paymentMethod" binding:"required"`
		Amount        float64 `json:"amount" binding:"required,gt=0"`
		Description   string  `json:"description" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "orderId, paymentMethod, amount and description are required")
		return
	}

	method, err := payment.ParseMethod(req.PaymentMethod)
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.gateway.Create(c.Request.Context(), method, payment.CreateRequest{
		OrderID:     req.OrderID,
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		log.Printf("create payment failed: %v", err)
		fail(c, http.StatusInternalServerError, "failed to create payment")
		return
	}
	okData(c, result)
}

func (h *PaymentHandler) PaymentStatus(c *gin.Context) {
	orderID := c.Query("orderId")
	if orderID == "" {
		fail(c, http.StatusBadRequest, "orderId query parameter is required")
		return
	}

	method, err := payment.ParseMethod(c.Param("paymentMethod"))
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	status, err := h.gateway.Query(c.Request.Context(), method, orderID)
	if err != nil {
		if errors.Is(err, payment.ErrPaymentNotFound) {
			fail(c, http.StatusNotFound, err.Error())
			return
		}
		log.Printf("query payment failed: %v", err)
		fail(c, http.StatusInternalServerError, "failed to query payment status")
		return
	}
	okData(c, status)
}

// WechatNotify acknowledges wechat callback notifications. The provider
// retries until it sees the SUCCESS payload, so the ack is unconditional;
// order-status update from callbacks is an extension point.
func (h *PaymentHandler) WechatNotify(c *gin.Context) {
	log.Printf("received wechat payment notification")
	c.JSON(http.StatusOK, gin.H{"code": "SUCCESS", "message": "OK"})
}

// AlipayNotify acknowledges alipay callback notifications with the literal
// body alipay expects
func (h *PaymentHandler) AlipayNotify(c *gin.Context) {
	log.Printf("received alipay payment notification")
	c.String(http.StatusOK, "success")
}

// RegisterPaymentRoutes registers the payment routes
func (h *PaymentHandler) RegisterPaymentRoutes(rg *gin.RouterGroup) {
	rg.POST("/payment/create", h.CreatePayment)
	rg.GET("/payment/status/:paymentId/:paymentMethod", h.PaymentStatus)
	rg.POST("/payment/wechat/notify", h.WechatNotify)
	rg.POST("/payment/alipay/notify", h.AlipayNotify)
}
