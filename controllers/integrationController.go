package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"resto-api/config"
	"resto-api/dtos"
	"resto-api/models"
)

func GetPlatforms(c *gin.Context) {
	var platforms []models.Platform
	if err := config.DB.Find(&platforms).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, platforms)
}

// CreatePlatform registers an external channel and returns its API key once
func CreatePlatform(c *gin.Context) {
	var input struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	platform := models.Platform{
		Name:   input.Name,
		APIKey: uuid.NewString(),
		Active: true,
	}
	if err := config.DB.Create(&platform).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"platform": platform,
		"api_key":  platform.APIKey,
	})
}

func UpdatePlatform(c *gin.Context) {
	id := c.Param("id")
	var platform models.Platform
	if err := config.DB.First(&platform, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Platform not found"})
		return
	}

	var input struct {
		Active *bool `json:"active,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Active != nil {
		platform.Active = *input.Active
	}
	if err := config.DB.Save(&platform).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, platform)
}

// PlatformWebhook accepts orders pushed in by a registered channel. The
// platform authenticates with its API key and orders flow through the same
// order service as the web checkout.
func PlatformWebhook(c *gin.Context) {
	name := c.Param("name")

	var platform models.Platform
	if err := config.DB.Where("name = ? AND active = ?", name, true).
		First(&platform).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Platform not found"})
		return
	}

	if c.GetHeader("X-API-Key") != platform.APIKey {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
		return
	}

	var input dtos.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.Platform = &platform.Name

	order, err := orders.Create(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"order": order})
}
