package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"resto-api/config"
	"resto-api/dtos"
	"resto-api/models"
	"resto-api/services"
	"resto-api/utils"
)

// Create new order (customer checkout or POS)
func CreateOrder(c *gin.Context) {
	var input dtos.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := orders.Create(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"order": order})
}

// Get all orders with pagination and optional filters
func GetOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := config.DB.Model(&models.Order{})

	if status := c.Query("status"); status != "" {
		db = db.Where("status = ?", status)
	}
	if branchID := c.Query("branch_id"); branchID != "" {
		db = db.Where("branch_id = ?", branchID)
	}
	if filterDate := c.Query("date"); filterDate != "" {
		start, err := time.Parse("2006-01-02", filterDate)
		if err == nil {
			end := start.Add(24 * time.Hour)
			db = db.Where("created_at >= ? AND created_at < ?", start, end)
		}
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var list []models.Order
	if err := db.Preload("Items.Product").Preload("Customer").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":       list,
		"page":       page,
		"limit":      limit,
		"total":      total,
		"totalPages": int((total + int64(limit) - 1) / int64(limit)),
	})
}

// Get order by ID
func GetOrderByID(c *gin.Context) {
	id := c.Param("id")
	var order models.Order
	if err := config.DB.Preload("Items.Product").Preload("Customer").Preload("Branch").
		First(&order, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, order)
}

// Update order status and push the change to subscribed clients
func ChangeOrderStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	var input dtos.ChangeStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := orders.ChangeStatus(uint(id), input.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		case errors.Is(err, services.ErrUnknownStatus), errors.Is(err, services.ErrTerminalStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, order)
}

// GetMyOrders is the customer polling endpoint. Clients fetch every 30s and
// diff the snapshots locally against the previous fetch.
func GetMyOrders(c *gin.Context) {
	phone := c.Query("phone")
	if phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "phone is required"})
		return
	}

	var customer models.Customer
	if err := config.DB.Where("phone = ?", phone).First(&customer).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{"data": []utils.OrderSnapshot{}})
		return
	}

	var list []models.Order
	if err := config.DB.Where("customer_id = ?", customer.ID).
		Order("created_at DESC").
		Limit(50).
		Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	snapshots := make([]utils.OrderSnapshot, 0, len(list))
	for _, o := range list {
		snapshots = append(snapshots, utils.OrderSnapshot{
			OrderID:     o.ID,
			OrderNumber: o.OrderNumber,
			Status:      o.Status,
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": snapshots})
}
