package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"cloudshop/internal/config"
	"cloudshop/internal/handler"
	"cloudshop/internal/middleware"
	"cloudshop/internal/model"
	"cloudshop/internal/payment"
	"cloudshop/internal/pricing"
	"cloudshop/internal/repository"
	"cloudshop/internal/service"
	"cloudshop/internal/sms"
	"cloudshop/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on environment variables")
	}

	// --- Configuration ---
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		log.Fatalf("Failed to load DB config: %v", err)
	}

	jwtSecret := os.Getenv("JWT_SECRET_KEY")
	if jwtSecret == "" {
		log.Fatalf("JWT_SECRET_KEY not set in environment")
	}
	jwtExpHoursStr := os.Getenv("JWT_EXPIRATION_HOURS")
	jwtExpHours, err := strconv.ParseInt(jwtExpHoursStr, 10, 64)
	if err != nil {
		log.Printf("Invalid JWT_EXPIRATION_HOURS, defaulting to 24: %v", err)
		jwtExpHours = 24
	}

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080" // Default port
	}

	// --- Database Connection ---
	dbPool, err := config.ConnectDB(dbCfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	// --- Auto Migration ---
	if err := config.AutoMigrate(dbPool); err != nil {
		log.Fatalf("Failed to auto-migrate database: %v", err)
	}

	// --- Initialize Utilities ---
	jwtUtil := utils.NewJWTUtil(jwtSecret, jwtExpHours)

	smsSender, err := sms.NewSender(os.Getenv("SMS_PROVIDER"))
	if err != nil {
		log.Fatalf("Failed to configure sms sender: %v", err)
	}

	// --- Initialize Repositories ---
	userRepo := repository.NewUserRepository(dbPool)
	adminRepo := repository.NewAdminRepository(dbPool)
	smsRepo := repository.NewSmsCodeRepository(dbPool)
	captchaRepo := repository.NewCaptchaRepository(dbPool)
	orderRepo := repository.NewOrderRepository(dbPool)

	// --- Seed Default Admin ---
	if err := config.SeedDefaultAdmin(adminRepo); err != nil {
		log.Fatalf("Failed to seed default admin: %v", err)
	}

	// --- Initialize Services ---
	verificationService := service.NewVerificationService(smsRepo, captchaRepo, smsSender)
	authService := service.NewAuthService(userRepo, verificationService, jwtUtil)
	adminService := service.NewAdminService(adminRepo, userRepo, verificationService, jwtUtil)
	orderService := service.NewOrderService(orderRepo, pricing.DefaultRates)
	paymentGateway := payment.NewGateway()

	// --- Initialize Handlers ---
	authHandler := handler.NewAuthHandler(authService, verificationService)
	catalogHandler := handler.NewCatalogHandler(pricing.DefaultRates)
	orderHandler := handler.NewOrderHandler(orderService)
	paymentHandler := handler.NewPaymentHandler(paymentGateway)
	captchaHandler := handler.NewCaptchaHandler(verificationService)
	adminHandler := handler.NewAdminHandler(adminService, orderService)

	// --- Setup Gin Router ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("panic recovered: %v", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, handler.Response{Success: false, Message: "internal server error"})
	}))

	// Simple CORS middleware (allow all for development)
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handler.Response{Success: false, Message: "API endpoint not found"})
	})

	// --- Initialize Middlewares ---
	userAuthMW := middleware.RequireAuth(jwtUtil, model.RoleUser)
	adminAuthMW := middleware.RequireAuth(jwtUtil, model.RoleAdmin)

	// --- Register Routes ---
	apiGroup := router.Group("/api")
	authHandler.RegisterAuthRoutes(apiGroup)
	catalogHandler.RegisterCatalogRoutes(apiGroup)
	orderHandler.RegisterOrderRoutes(apiGroup, userAuthMW)
	paymentHandler.RegisterPaymentRoutes(apiGroup)
	captchaHandler.RegisterCaptchaRoutes(apiGroup)
	adminHandler.RegisterAdminRoutes(apiGroup, adminAuthMW)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		if err := dbPool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + serverPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on port %s", serverPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
