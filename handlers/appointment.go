package handlers

import (
	"errors"
	"net/http"

	appointmentRepo "furaha/database/repository/appointment"
	"furaha/models"
	"furaha/services/scheduling"
	"furaha/utils"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler exposes the scheduling endpoints.
type AppointmentHandler struct {
	Svc scheduling.SchedulingService
}

func NewAppointmentHandler(svc scheduling.SchedulingService) *AppointmentHandler {
	return &AppointmentHandler{Svc: svc}
}

func validateAppointmentRequest(req models.ScheduleAppointmentRequest) []utils.FieldError {
	var errs []utils.FieldError
	if !utils.LengthBetween(req.Name, 2, 100) {
		errs = append(errs, utils.FieldError{Field: "name", Message: "Name must be between 2 and 100 characters"})
	}
	if !utils.ValidEmail(req.Email) {
		errs = append(errs, utils.FieldError{Field: "email", Message: "Please provide a valid email"})
	}
	if req.PreferredDate == "" {
		errs = append(errs, utils.FieldError{Field: "preferredDate", Message: "Please provide a valid date"})
	}
	if req.PreferredTime == "" {
		errs = append(errs, utils.FieldError{Field: "preferredTime", Message: "Please provide a preferred time"})
	}
	if !utils.LengthBetween(req.Message, 0, 1000) {
		errs = append(errs, utils.FieldError{Field: "message", Message: "Message must not exceed 1000 characters"})
	}
	return errs
}

// ScheduleAppointmentHandler accepts a public booking request.
func (h *AppointmentHandler) ScheduleAppointmentHandler(c *gin.Context) {
	var req models.ScheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if errs := validateAppointmentRequest(req); len(errs) > 0 {
		utils.RespondValidationErrors(c, errs)
		return
	}

	appt, err := h.Svc.Schedule(c.Request.Context(), req)
	switch {
	case errors.Is(err, scheduling.ErrInvalidDate),
		errors.Is(err, scheduling.ErrPastDate),
		errors.Is(err, scheduling.ErrUnknownSlot):
		utils.RespondError(c, http.StatusBadRequest, err.Error(), nil)
		return
	case err != nil:
		utils.RespondError(c, http.StatusInternalServerError, "Error scheduling appointment", err)
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, gin.H{
		"id":     appt.ID,
		"status": appt.Status,
	}, "Appointment request submitted successfully. You'll receive a confirmation email shortly.")
}

// AvailableSlotsHandler reports the open slots for a date.
func (h *AppointmentHandler) AvailableSlotsHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.RespondError(c, http.StatusBadRequest, "Date parameter is required", nil)
		return
	}

	availability, err := h.Svc.AvailableSlots(c.Request.Context(), date)
	if errors.Is(err, scheduling.ErrInvalidDate) {
		utils.RespondError(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Error fetching available slots", err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, availability, "")
}

// ListAppointmentsHandler returns every appointment for the admin view.
func (h *AppointmentHandler) ListAppointmentsHandler(c *gin.Context) {
	appts, err := h.Svc.ListAppointments(c.Request.Context())
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Error fetching appointments", err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, appts, "")
}

// UpdateAppointmentStatusHandler applies an admin-driven status transition.
func (h *AppointmentHandler) UpdateAppointmentStatusHandler(c *gin.Context) {
	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	appt, err := h.Svc.UpdateStatus(c.Request.Context(), c.Param("id"), input.Status)
	switch {
	case errors.Is(err, scheduling.ErrInvalidStatus):
		utils.RespondError(c, http.StatusBadRequest, err.Error(), nil)
		return
	case errors.Is(err, appointmentRepo.ErrNotFound):
		utils.RespondError(c, http.StatusNotFound, "Appointment not found", nil)
		return
	case err != nil:
		utils.RespondError(c, http.StatusInternalServerError, "Error updating appointment status", err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, appt, "Appointment status updated successfully")
}
