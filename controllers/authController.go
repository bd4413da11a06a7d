package controllers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"resto-api/config"
	"resto-api/dtos"
	"resto-api/models"
	"resto-api/services"
	"resto-api/utils"
)

func Login(c *gin.Context) {
	var input dtos.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := services.NewAuthService().Login(input)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RequestPasswordReset mails a reset link for a panel user. Responds the
// same whether or not the address is known.
func RequestPasswordReset(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("username = ?", input.Email).First(&user).Error; err == nil {
		panel := os.Getenv("ADMIN_PANEL_URL")
		if panel == "" {
			panel = "http://localhost:3000/admin"
		}
		resetURL := panel + "/reset-password"
		if res := utils.SendPasswordResetEmail(input.Email, resetURL); !res.Success {
			c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "If the account exists, a reset email has been sent"})
}
