package utils

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
)

// FieldError reports one invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,})+$`)

// ValidEmail reports whether the string looks like an email address.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(strings.TrimSpace(s))
}

// LengthBetween checks the trimmed length of a string field.
func LengthBetween(s string, min, max int) bool {
	n := len(strings.TrimSpace(s))
	return n >= min && (max <= 0 || n <= max)
}

// RespondValidationErrors writes a 400 with field-level detail.
func RespondValidationErrors(c *gin.Context, errs []FieldError) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": "Validation errors",
		"errors":  errs,
	})
}
