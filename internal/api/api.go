package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/procureflow/backend-go/internal/api/handlers"
	"github.com/procureflow/backend-go/internal/api/middleware"
	"github.com/procureflow/backend-go/internal/service"
	"github.com/procureflow/backend-go/internal/session"
	"github.com/procureflow/backend-go/internal/store"
)

type Services struct {
	PRService        *service.PRService
	POService        *service.POService
	VendorService    *service.VendorService
	DashboardService *service.DashboardService
}

func NewRouter(st *store.Store, sessions *session.Manager, services *Services, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	defaultOrigins := []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	corsConfig := cors.Config{
		AllowOrigins:     defaultOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) > 0 {
		normalizedOrigins, allowAll := normalizeAllowedOrigins(allowedOrigins)
		if allowAll {
			corsConfig.AllowOrigins = nil
			corsConfig.AllowOriginFunc = func(origin string) bool { return true }
		} else if len(normalizedOrigins) > 0 {
			corsConfig.AllowOrigins = normalizedOrigins
		}
	}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := router.Group("/api/v1")

	authHandler := handlers.NewAuthHandler(st, sessions)
	apiGroup.POST("/auth/login", authHandler.Login)
	apiGroup.POST("/auth/logout", authHandler.Logout)
	apiGroup.GET("/auth/users", authHandler.Users)

	authed := apiGroup.Group("")
	authed.Use(middleware.RequireSession(sessions))

	sessionHandler := handlers.NewSessionHandler()
	sessionGroup := authed.Group("/session")
	{
		sessionGroup.GET("/view", sessionHandler.View)
		sessionGroup.POST("/navigate", sessionHandler.Navigate)
		sessionGroup.GET("/breadcrumbs", sessionHandler.Breadcrumbs)
	}

	if services != nil {
		if services.PRService != nil {
			prHandler := handlers.NewPRHandler(services.PRService)
			prGroup := authed.Group("/prs")
			{
				prGroup.GET("", prHandler.List)
				prGroup.POST("", prHandler.Create)
				prGroup.GET("/:id", prHandler.Get)
				prGroup.PUT("/:id", prHandler.Update)
				prGroup.POST("/:id/approve", prHandler.Approve)
				prGroup.POST("/:id/reject", prHandler.Reject)
				prGroup.GET("/:id/workflow", prHandler.Workflow)
			}
			authed.GET("/approvals", prHandler.Approvals)
		}

		if services.POService != nil {
			poHandler := handlers.NewPOHandler(services.POService)
			poGroup := authed.Group("/pos")
			{
				poGroup.GET("", poHandler.List)
				poGroup.POST("", poHandler.Create)
				poGroup.GET("/:id", poHandler.Get)
				poGroup.PUT("/:id", poHandler.Update)
				poGroup.GET("/:id/workflow", poHandler.Workflow)
			}
			authed.GET("/payments", poHandler.Payments)
		}

		if services.VendorService != nil {
			vendorHandler := handlers.NewVendorHandler(services.VendorService)
			vendorGroup := authed.Group("/vendors")
			{
				vendorGroup.GET("", vendorHandler.List)
				vendorGroup.POST("", vendorHandler.Create)
				vendorGroup.GET("/:id", vendorHandler.Get)
				vendorGroup.PUT("/:id", vendorHandler.Update)
				vendorGroup.GET("/:id/orders", vendorHandler.Orders)
			}
		}

		if services.DashboardService != nil {
			dashboardHandler := handlers.NewDashboardHandler(services.DashboardService)
			authed.GET("/dashboard", dashboardHandler.Summary)
		}
	}

	return router
}

func normalizeAllowedOrigins(origins []string) ([]string, bool) {
	var (
		parsed   []string
		allowAll bool
	)
	for _, origin := range origins {
		parts := strings.Split(origin, ",")
		for _, part := range parts {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			if trimmed == "*" {
				allowAll = true
				continue
			}
			parsed = append(parsed, trimmed)
		}
	}
	return parsed, allowAll
}
