package routes

import (
	"net/http"
	"time"

	"furaha/config"
	"furaha/handlers"
	"furaha/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAppointmentRoutes registers scheduling endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.POST("", hb.ScheduleAppointmentHandler)
		api.GET("/available-slots", hb.AvailableSlotsHandler)
	}
}

// RegisterContactRoutes registers the public contact endpoint.
func RegisterContactRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/contact", hb.SendContactMessageHandler)
}

// RegisterChatRoutes registers the public chat endpoint.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/chat", hb.SendChatMessageHandler)
}

// RegisterReflectionRoutes registers public reading endpoints and the
// admin-only CRUD on the same resource.
func RegisterReflectionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reflections")
	{
		api.GET("", hb.ListReflectionsHandler)
		api.GET("/:id", hb.GetReflectionHandler)
		api.POST("/:id/summarize", hb.SummarizeReflectionHandler)

		// Mutations require an admin token.
		api.POST("", middleware.JWTAuthAdminMiddleware(), hb.CreateReflectionHandler)
		api.PUT("/:id", middleware.JWTAuthAdminMiddleware(), hb.UpdateReflectionHandler)
		api.DELETE("/:id", middleware.JWTAuthAdminMiddleware(), hb.DeleteReflectionHandler)
	}
}

// RegisterAuthRoutes registers the admin login endpoint.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/auth/login", hb.AdminLoginHandler)
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthAdminMiddleware())
		adminGroup.GET("/appointments", hb.ListAppointmentsHandler)
		adminGroup.PATCH("/appointments/:id/status", hb.UpdateAppointmentStatusHandler)
		adminGroup.GET("/messages", hb.ListMessagesHandler)
		adminGroup.PATCH("/messages/:id/read", hb.MarkMessageReadHandler)
		adminGroup.GET("/chat/sessions", hb.ListChatSessionsHandler)
		adminGroup.GET("/chat/sessions/:sessionId", hb.GetChatSessionHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Furaha portfolio API"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.AppConfig.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAppointmentRoutes(r, hb)
	RegisterContactRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterReflectionRoutes(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Route not found"})
	})
}
