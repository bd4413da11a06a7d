package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resto-api/config"
	"resto-api/models"
)

func GetCategories(c *gin.Context) {
	db := config.DB.Order("sort_order")
	if branchID := c.Query("branch_id"); branchID != "" {
		db = db.Where("branch_id = ?", branchID)
	}

	var categories []models.Category
	if err := db.Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, categories)
}

func CreateCategory(c *gin.Context) {
	var input struct {
		BranchID  uint   `json:"branch_id" binding:"required"`
		Name      string `json:"name" binding:"required"`
		SortOrder int    `json:"sort_order"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := models.Category{
		BranchID:  input.BranchID,
		Name:      input.Name,
		SortOrder: input.SortOrder,
	}
	if err := config.DB.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, category)
}

func UpdateCategory(c *gin.Context) {
	id := c.Param("id")
	var category models.Category
	if err := config.DB.First(&category, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	var input struct {
		Name      *string `json:"name,omitempty"`
		SortOrder *int    `json:"sort_order,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Name != nil {
		category.Name = *input.Name
	}
	if input.SortOrder != nil {
		category.SortOrder = *input.SortOrder
	}

	if err := config.DB.Save(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, category)
}

func DeleteCategory(c *gin.Context) {
	id := c.Param("id")

	var category models.Category
	if err := config.DB.First(&category, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	var inUse int64
	config.DB.Model(&models.Product{}).Where("category_id = ?", category.ID).Count(&inUse)
	if inUse > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category still has products"})
		return
	}

	if err := config.DB.Delete(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}
