package handler

import (
	"context"
	"net/http"
	"testing"

	"cloudshop/internal/model"
	"cloudshop/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubVerification accepts a single known phone/code pair
type stubVerification struct {
	phone string
	code  string
}

func (s *stubVerification) IssueSmsCode(_ context.Context, phone string) error {
	if phone != s.phone {
		return service.ErrInvalidPhone
	}
	return nil
}

func (s *stubVerification) CheckSmsCode(_ context.Context, phone, code string) error {
	if phone != s.phone || code != s.code {
		return service.ErrSmsCodeInvalid
	}
	return nil
}

func (s *stubVerification) ConsumeSmsCode(ctx context.Context, phone, code string) error {
	return s.CheckSmsCode(ctx, phone, code)
}

func (s *stubVerification) InvalidateSmsCode(_ context.Context, _ string) error {
	return nil
}

func (s *stubVerification) IssueCaptcha(_ context.Context) (string, string, error) {
	return "CAP1", "data:image/png;base64,xxxx", nil
}

func (s *stubVerification) ConsumeCaptcha(_ context.Context, _, _ string) error {
	return service.ErrCaptchaInvalid
}

// stubAuthService authenticates a single known user
type stubAuthService struct {
	user model.User
}

func (s *stubAuthService) Register(_ context.Context, req model.RegisterRequest) (*model.User, string, error) {
	if req.Username == s.user.Username {
		return nil, "", service.ErrUsernameTaken
	}
	u := model.User{ID: 2, Username: req.Username, Phone: req.Phone}
	return &u, "stub-token", nil
}

func (s *stubAuthService) LoginPassword(_ context.Context, login, password string) (*model.User, string, error) {
	if login != s.user.Username || password != "abc123" {
		return nil, "", service.ErrInvalidCredentials
	}
	u := s.user
	return &u, "stub-token", nil
}

func (s *stubAuthService) LoginSms(_ context.Context, phone, code string) (*model.User, string, error) {
	if phone != s.user.Phone {
		return nil, "", service.ErrUserNotFound
	}
	if code != "123456" {
		return nil, "", service.ErrSmsCodeInvalid
	}
	u := s.user
	return &u, "stub-token", nil
}

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	auth := &stubAuthService{user: model.User{ID: 1, Username: "alice", Phone: "13812345678"}}
	verification := &stubVerification{phone: "13812345678", code: "123456"}
	r := gin.New()
	NewAuthHandler(auth, verification).RegisterAuthRoutes(r.Group("/api"))
	return r
}

func TestSendSms(t *testing.T) {
	r := newAuthRouter()

	w, resp := doRequest(t, r, http.MethodPost, "/api/send-sms", `{"phone":"13812345678"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)
}

func TestSendSms_InvalidPhone(t *testing.T) {
	r := newAuthRouter()

	w, resp := doRequest(t, r, http.MethodPost, "/api/send-sms", `{"phone":"12345"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)

	w, resp = doRequest(t, r, http.MethodPost, "/api/send-sms", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
}

func TestRegisterEndpoint(t *testing.T) {
	r := newAuthRouter()

	body := `{"username":"bob","password":"abc123","phone":"13812345678","smsCode":"123456"}`
	w, resp := doRequest(t, r, http.MethodPost, "/api/register", body)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "stub-token", data["token"])

	user, ok := data["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "bob", user["username"])
	assert.NotContains(t, user, "password_hash", "hashes must never leave the API")
}

func TestRegisterEndpoint_DuplicateUsername(t *testing.T) {
	r := newAuthRouter()

	body := `{"username":"alice","password":"abc123","phone":"13812345678","smsCode":"123456"}`
	w, resp := doRequest(t, r, http.MethodPost, "/api/register", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
}

func TestLoginEndpoint(t *testing.T) {
	r := newAuthRouter()

	w, resp := doRequest(t, r, http.MethodPost, "/api/login", `{"login":"alice","password":"abc123"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)

	w, resp = doRequest(t, r, http.MethodPost, "/api/login", `{"login":"alice","password":"wrong1"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, resp.Success)
}

func TestLoginSmsEndpoint(t *testing.T) {
	r := newAuthRouter()

	body := `{"phone":"13812345678","smsCode":"123456"}`
	w, resp := doRequest(t, r, http.MethodPost, "/api/login-sms", body)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)

	// unknown phone with a spent code: caller is told to register
	body = `{"phone":"13900000000","smsCode":"123456"}`
	w, resp = doRequest(t, r, http.MethodPost, "/api/login-sms", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, resp.Success)
}
