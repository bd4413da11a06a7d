package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resto-api/config"
	"resto-api/models"
	"resto-api/utils"
)

// Public list of active branches
func GetBranches(c *gin.Context) {
	var branches []models.Branch
	if err := config.DB.Where("active = ?", true).Find(&branches).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, branches)
}

// Admin list including inactive branches
func GetAllBranches(c *gin.Context) {
	var branches []models.Branch
	if err := config.DB.Find(&branches).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, branches)
}

func CreateBranch(c *gin.Context) {
	var input struct {
		Name    string `json:"name" binding:"required"`
		Address string `json:"address"`
		Phone   string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	branch := models.Branch{
		Name:    input.Name,
		Address: input.Address,
		Phone:   input.Phone,
		Active:  true,
	}
	if err := config.DB.Create(&branch).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, branch)
}

func UpdateBranch(c *gin.Context) {
	id := c.Param("id")
	var branch models.Branch
	if err := config.DB.First(&branch, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Branch not found"})
		return
	}

	var input struct {
		Name    *string `json:"name,omitempty"`
		Address *string `json:"address,omitempty"`
		Phone   *string `json:"phone,omitempty"`
		Active  *bool   `json:"active,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Name != nil {
		branch.Name = *input.Name
	}
	if input.Address != nil {
		branch.Address = *input.Address
	}
	if input.Phone != nil {
		branch.Phone = *input.Phone
	}
	if input.Active != nil {
		branch.Active = *input.Active
	}

	if err := config.DB.Save(&branch).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, branch)
}

// GetBranchQR renders the branch menu link as a PNG QR code
func GetBranchQR(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid branch id"})
		return
	}

	var branch models.Branch
	if err := config.DB.First(&branch, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Branch not found"})
		return
	}

	size, _ := strconv.Atoi(c.DefaultQuery("size", "256"))
	png, err := utils.GenerateMenuQR(branch.ID, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
