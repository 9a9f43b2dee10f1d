package handlers

import (
	"errors"
	"net/http"

	messageRepo "furaha/database/repository/message"
	"furaha/models"
	"furaha/services/notification"
	"furaha/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContactHandler exposes the contact-form endpoints.
type ContactHandler struct {
	Repo     messageRepo.MessageRepository
	Notifier notification.NotificationService
}

func NewContactHandler(repo messageRepo.MessageRepository, notifier notification.NotificationService) *ContactHandler {
	return &ContactHandler{Repo: repo, Notifier: notifier}
}

// SendContactMessageHandler persists a contact message and alerts the admin
// by email best-effort.
func (h *ContactHandler) SendContactMessageHandler(c *gin.Context) {
	var input struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var errs []utils.FieldError
	if !utils.LengthBetween(input.Name, 2, 100) {
		errs = append(errs, utils.FieldError{Field: "name", Message: "Name must be between 2 and 100 characters"})
	}
	if !utils.ValidEmail(input.Email) {
		errs = append(errs, utils.FieldError{Field: "email", Message: "Please provide a valid email"})
	}
	if !utils.LengthBetween(input.Message, 10, 2000) {
		errs = append(errs, utils.FieldError{Field: "message", Message: "Message must be between 10 and 2000 characters"})
	}
	if len(errs) > 0 {
		utils.RespondValidationErrors(c, errs)
		return
	}

	msg := &models.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Message: input.Message,
	}
	if _, err := h.Repo.Create(c.Request.Context(), msg); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Error sending message", err)
		return
	}

	// Don't fail the request if email fails.
	if err := h.Notifier.SendContactAlert(c.Request.Context(), msg); err != nil {
		utils.GetLogger().Warn("failed to send contact alert email", zap.String("message", msg.ID), zap.Error(err))
	}

	utils.RespondSuccess(c, http.StatusCreated, nil, "Message sent successfully. I'll get back to you soon!")
}

// ListMessagesHandler returns every contact message for the admin view.
func (h *ContactHandler) ListMessagesHandler(c *gin.Context) {
	msgs, err := h.Repo.GetAll(c.Request.Context())
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Error fetching messages", err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, msgs, "")
}

// MarkMessageReadHandler flags a contact message as read.
func (h *ContactHandler) MarkMessageReadHandler(c *gin.Context) {
	msg, err := h.Repo.MarkRead(c.Request.Context(), c.Param("id"))
	if errors.Is(err, messageRepo.ErrNotFound) {
		utils.RespondError(c, http.StatusNotFound, "Message not found", nil)
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Error updating message", err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, msg, "Message marked as read")
}
