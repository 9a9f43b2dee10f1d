package utils

import (
	"furaha/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// APIResponse is the uniform response envelope for every endpoint.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// RespondSuccess writes a success envelope with optional data and message.
func RespondSuccess(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, APIResponse{Success: true, Data: data, Message: message})
}

// RespondError writes a failure envelope. The underlying error string is
// included only outside production.
func RespondError(c *gin.Context, status int, message string, err error) {
	resp := APIResponse{Success: false, Message: message}
	if err != nil {
		GetLogger().Warn(message, zap.Error(err))
		if !config.IsProduction() {
			resp.Error = err.Error()
		}
	}
	c.JSON(status, resp)
}
