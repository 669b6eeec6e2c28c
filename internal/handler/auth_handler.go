package handler

import (
	"log"
	"net/http"

	"cloudshop/internal/model"
	"cloudshop/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles user registration, login and SMS issuance
type AuthHandler struct {
	auth         service.AuthService
	verification service.VerificationService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(auth service.AuthService, verification service.VerificationService) *AuthHandler {
	return &AuthHandler{auth: auth, verification: verification}
}

func (h *AuthHandler) SendSms(c *gin.Context) {
	var req model.SendSmsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "phone is required")
		return
	}

	if err := h.verification.IssueSmsCode(c.Request.Context(), req.Phone); err != nil {
		log.Printf("send sms failed: %v", err)
		failFromService(c, err, "failed to send sms")
		return
	}
	okMessage(c, "verification code sent")
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "username, password, phone and sms code are required")
		return
	}

	user, token, err := h.auth.Register(c.Request.Context(), req)
	if err != nil {
		log.Printf("registration failed: %v", err)
		failFromService(c, err, "failed to register")
		return
	}

	okMessageData(c, "registered successfully", gin.H{"token": token, "user": user})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "login and password are required")
		return
	}

	user, token, err := h.auth.LoginPassword(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		log.Printf("login failed for %q: %v", req.Login, err)
		failFromService(c, err, "failed to login")
		return
	}

	okMessageData(c, "login successful", gin.H{"token": token, "user": user})
}

func (h *AuthHandler) LoginSms(c *gin.Context) {
	var req model.SmsLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "phone and sms code are required")
		return
	}

	user, token, err := h.auth.LoginSms(c.Request.Context(), req.Phone, req.SmsCode)
	if err != nil {
		log.Printf("sms login failed for %s: %v", req.Phone, err)
		failFromService(c, err, "failed to login")
		return
	}

	okMessageData(c, "login successful", gin.H{"token": token, "user": user})
}

// RegisterAuthRoutes registers the public auth routes
func (h *AuthHandler) RegisterAuthRoutes(rg *gin.RouterGroup) {
	rg.POST("/send-sms", h.SendSms)
	rg.POST("/register", h.Register)
	rg.POST("/login", h.Login)
	rg.POST("/login-sms", h.LoginSms)
}
