package handler

import (
	"log"
	"net/http"

	"cloudshop/internal/model"
	"cloudshop/internal/service"

	"github.com/gin-gonic/gin"
)

// CaptchaHandler serves image captchas and their verification endpoint
type CaptchaHandler struct {
	verification service.VerificationService
}

// NewCaptchaHandler creates a new CaptchaHandler
func NewCaptchaHandler(verification service.VerificationService) *CaptchaHandler {
	return &CaptchaHandler{verification: verification}
}

func (h *CaptchaHandler) GetCaptcha(c *gin.Context) {
	id, image, err := h.verification.IssueCaptcha(c.Request.Context())
	if err != nil {
		log.Printf("issue captcha failed: %v", err)
		fail(c, http.StatusInternalServerError, "failed to generate captcha")
		return
	}
	okData(c, gin.H{"captchaId": id, "image": image})
}

func (h *CaptchaHandler) VerifyCaptcha(c *gin.Context) {
	var req model.VerifyCaptchaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "captchaId and captchaText are required")
		return
	}

	if err := h.verification.ConsumeCaptcha(c.Request.Context(), req.CaptchaID, req.CaptchaText); err != nil {
		failFromService(c, err, "failed to verify captcha")
		return
	}
	okMessage(c, "captcha verified")
}

// RegisterCaptchaRoutes registers the public captcha routes
func (h *CaptchaHandler) RegisterCaptchaRoutes(rg *gin.RouterGroup) {
	rg.GET("/captcha", h.GetCaptcha)
	rg.POST("/verify-captcha", h.VerifyCaptcha)
}
