package handlers

import (
	"errors"
	"net/http"
	"strings"

	reflectionRepo "furaha/database/repository/reflection"
	"furaha/models"
	ai "furaha/services/intelligence"
	"furaha/utils"

	"github.com/gin-gonic/gin"
)

// ReflectionHandler serves the public reading surface and the admin CRUD.
type ReflectionHandler struct {
	Repo reflectionRepo.ReflectionRepository
	AI   ai.AIService
}

func NewReflectionHandler(repo reflectionRepo.ReflectionRepository, aiSvc ai.AIService) *ReflectionHandler {
	return &ReflectionHandler{Repo: repo, AI: aiSvc}
}

func validateReflectionInput(input *models.ReflectionInput) []utils.FieldError {
	var errs []utils.FieldError

	input.Title = strings.TrimSpace(input.Title)
	input.Content = strings.TrimSpace(input.Content)
	input.Excerpt = strings.TrimSpace(input.Excerpt)
	input.ReadTime = strings.TrimSpace(input.ReadTime)

	if !utils.LengthBetween(input.Title, 5, 200) {
		errs = append(errs, utils.FieldError{Field: "title", Message: "Title must be between 5 and 200 characters"})
	}
	if len(input.Content) < 100 {
		errs = append(errs, utils.FieldError{Field: "content", Message: "Content must be at least 100 characters"})
	}
	if !utils.LengthBetween(input.Excerpt, 20, 300) {
		errs = append(errs, utils.FieldError{Field: "excerpt", Message: "Excerpt must be between 20 and 300 characters"})
	}
	if input.ReadTime == "" {
		errs = append(errs, utils.FieldError{Field: "readTime", Message: "Read time is required"})
	}
	return errs
}

// ListReflectionsHandler returns published reflections without content.
func (h *ReflectionHandler) ListReflectionsHandler(c *gin.Context) {
	refls, err := h.Repo.GetPublished(c.Request.Context())
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Error fetching reflections", err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, refls, "")
}

// GetReflectionHandler returns one published reflection with full content.
func (h *ReflectionHandler) GetReflectionHandler(c *gin.Context) {
	refl, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"), true)
	if errors.Is(err, reflectionRepo.ErrNotFound) {
		utils.RespondError(c, http.StatusNotFound, "Reflection not found", nil)
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Error fetching reflection", err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, refl, "")
}

// SummarizeReflectionHandler returns the AI summary for a published
// reflection, generating and caching it on first request.
func (h *ReflectionHandler) SummarizeReflectionHandler(c *gin.Context) {
	summary, err := h.AI.SummarizeReflection(c.Request.Context(), c.Param("id"))
	if errors.Is(err, reflectionRepo.ErrNotFound) {
		utils.RespondError(c, http.StatusNotFound, "Reflection not found", nil)
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to generate summary. Please try again.", err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, gin.H{"summary": summary}, "")
}

// CreateReflectionHandler is the admin create endpoint.
func (h *ReflectionHandler) CreateReflectionHandler(c *gin.Context) {
	var input models.ReflectionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if errs := validateReflectionInput(&input); len(errs) > 0 {
		utils.RespondValidationErrors(c, errs)
		return
	}

	refl := &models.Reflection{
		Title:       input.Title,
		Content:     input.Content,
		Excerpt:     input.Excerpt,
		ReadTime:    input.ReadTime,
		Tags:        input.Tags,
		IsPublished: input.IsPublished,
	}
	id, err := h.Repo.Create(c.Request.Context(), refl)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Error creating reflection", err)
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, gin.H{"id": id}, "Reflection created successfully")
}

// UpdateReflectionHandler is the admin update endpoint.
func (h *ReflectionHandler) UpdateReflectionHandler(c *gin.Context) {
	var input models.ReflectionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if errs := validateReflectionInput(&input); len(errs) > 0 {
		utils.RespondValidationErrors(c, errs)
		return
	}

	refl, err := h.Repo.Update(c.Request.Context(), c.Param("id"), input)
	if errors.Is(err, reflectionRepo.ErrNotFound) {
		utils.RespondError(c, http.StatusNotFound, "Reflection not found", nil)
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Error updating reflection", err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, refl, "Reflection updated successfully")
}

// DeleteReflectionHandler is the admin delete endpoint.
func (h *ReflectionHandler) DeleteReflectionHandler(c *gin.Context) {
	err := h.Repo.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, reflectionRepo.ErrNotFound) {
		utils.RespondError(c, http.StatusNotFound, "Reflection not found", nil)
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Error deleting reflection", err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, nil, "Reflection deleted successfully")
}
