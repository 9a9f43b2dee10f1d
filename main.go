package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"furaha/config"
	"furaha/cron"
	"furaha/database"
	appointmentRepoPkg "furaha/database/repository/appointment"
	chatRepoPkg "furaha/database/repository/chat"
	messageRepoPkg "furaha/database/repository/message"
	reflectionRepoPkg "furaha/database/repository/reflection"
	"furaha/handlers"
	"furaha/middleware"
	"furaha/routes"
	"furaha/services/calendar"
	ai "furaha/services/intelligence"
	"furaha/services/notification"
	"furaha/services/scheduling"
	"furaha/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	apptRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	chatRepo := chatRepoPkg.NewMongoChatRepo()
	msgRepo := messageRepoPkg.NewMongoMessageRepo()
	reflRepo := reflectionRepoPkg.NewMongoReflectionRepo()

	// outbound email.
	var sender notification.EmailSender
	if sg := notification.NewSendGridSender(
		config.AppConfig.SendGridAPIKey,
		config.AppConfig.EmailFrom,
		config.AppConfig.EmailFromName,
	); sg != nil {
		sender = sg
	} else {
		logger.Sugar().Warn("main: SendGrid not configured, using stub email sender")
		sender = notification.StubSender{}
	}
	notificationService, err := notification.NewDefaultNotificationService(
		sender,
		config.AppConfig.AdminEmail,
		config.AppConfig.FrontendURL,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	// Google Calendar is optional; without credentials confirmations skip
	// event creation.
	schedulingService := &scheduling.DefaultSchedulingService{
		Repo:     apptRepo,
		Notifier: notificationService,
	}
	calendarService, err := calendar.NewGoogleCalendarService(context.Background(), calendar.GoogleCalendarConfig{
		ClientID:     config.AppConfig.CalendarClientID,
		ClientSecret: config.AppConfig.CalendarClientSecret,
		RefreshToken: config.AppConfig.CalendarRefreshToken,
	})
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize calendar service: %v", err)
	}
	if calendarService != nil {
		schedulingService.Calendar = calendarService
	} else {
		logger.Sugar().Warn("main: Google Calendar not configured, skipping event creation")
	}

	generator, err := ai.NewGeminiGenerator(context.Background(), config.AppConfig.GeminiAPIKey, "")
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
	}
	aiService := ai.NewDefaultAIService(generator, chatRepo, reflRepo)

	appointmentHandler := handlers.NewAppointmentHandler(schedulingService)
	contactHandler := handlers.NewContactHandler(msgRepo, notificationService)
	chatHandler := handlers.NewChatHandler(aiService, chatRepo)
	reflectionHandler := handlers.NewReflectionHandler(reflRepo, aiService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Appointment endpoints.
		ScheduleAppointmentHandler:     appointmentHandler.ScheduleAppointmentHandler,
		AvailableSlotsHandler:          appointmentHandler.AvailableSlotsHandler,
		ListAppointmentsHandler:        appointmentHandler.ListAppointmentsHandler,
		UpdateAppointmentStatusHandler: appointmentHandler.UpdateAppointmentStatusHandler,

		// Contact endpoints.
		SendContactMessageHandler: contactHandler.SendContactMessageHandler,
		ListMessagesHandler:       contactHandler.ListMessagesHandler,
		MarkMessageReadHandler:    contactHandler.MarkMessageReadHandler,

		// Chat endpoints.
		SendChatMessageHandler:  chatHandler.SendChatMessageHandler,
		ListChatSessionsHandler: chatHandler.ListChatSessionsHandler,
		GetChatSessionHandler:   chatHandler.GetChatSessionHandler,

		// Reflection endpoints.
		ListReflectionsHandler:     reflectionHandler.ListReflectionsHandler,
		GetReflectionHandler:       reflectionHandler.GetReflectionHandler,
		SummarizeReflectionHandler: reflectionHandler.SummarizeReflectionHandler,
		CreateReflectionHandler:    reflectionHandler.CreateReflectionHandler,
		UpdateReflectionHandler:    reflectionHandler.UpdateReflectionHandler,
		DeleteReflectionHandler:    reflectionHandler.DeleteReflectionHandler,

		// Auth endpoints.
		AdminLoginHandler: handlers.AdminLoginHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background jobs (daily itinerary, reminder scan).
	cron.InitJobWorker(schedulingService, aiService, notificationService)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
