package handlers

import (
	"net/http"
	"time"

	"furaha/config"
	"furaha/utils"

	"github.com/gin-gonic/gin"
)

// adminTokenTTL is how long an admin session token stays valid.
const adminTokenTTL = 24 * time.Hour

// AdminLoginHandler exchanges the admin password for a signed token.
func AdminLoginHandler(c *gin.Context) {
	var input struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if input.Password == "" {
		utils.RespondError(c, http.StatusBadRequest, "Password is required", nil)
		return
	}

	if input.Password != config.AppConfig.AdminPassword {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid credentials", nil)
		return
	}

	token, err := utils.GenerateAdminToken(adminTokenTTL)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Error generating token", err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, gin.H{
		"token":     token,
		"expiresIn": int(adminTokenTTL.Seconds()),
	}, "Login successful")
}
