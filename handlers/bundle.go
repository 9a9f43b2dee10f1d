package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all your endpoint handlers into one struct.
type HandlerBundle struct {
	// Appointment endpoints
	ScheduleAppointmentHandler     gin.HandlerFunc
	AvailableSlotsHandler          gin.HandlerFunc
	ListAppointmentsHandler        gin.HandlerFunc
	UpdateAppointmentStatusHandler gin.HandlerFunc

	// Contact endpoints
	SendContactMessageHandler gin.HandlerFunc
	ListMessagesHandler       gin.HandlerFunc
	MarkMessageReadHandler    gin.HandlerFunc

	// Chat endpoints
	SendChatMessageHandler  gin.HandlerFunc
	ListChatSessionsHandler gin.HandlerFunc
	GetChatSessionHandler   gin.HandlerFunc

	// Reflection endpoints
	ListReflectionsHandler     gin.HandlerFunc
	GetReflectionHandler       gin.HandlerFunc
	SummarizeReflectionHandler gin.HandlerFunc
	CreateReflectionHandler    gin.HandlerFunc
	UpdateReflectionHandler    gin.HandlerFunc
	DeleteReflectionHandler    gin.HandlerFunc

	// Auth endpoints
	AdminLoginHandler gin.HandlerFunc
}
