package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"resto-api/config"
	"resto-api/models"
)

type TopProduct struct {
	ProductID uint   `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity"`
}

func GetDashboard(c *gin.Context) {
	today := time.Now().Format("2006-01-02")

	db := config.DB
	branchFilter := c.Query("branch_id")

	// today's revenue from the reporting mirror
	var todayRevenue float64
	revenueQuery := db.Model(&models.SalesRecord{}).
		Where("status = ? AND DATE(ordered_at) = ?", models.SalesStatusCompleted, today)
	if branchFilter != "" {
		revenueQuery = revenueQuery.Where("branch_id = ?", branchFilter)
	}
	revenueQuery.Select("COALESCE(SUM(total), 0)").Scan(&todayRevenue)

	// order counts by status
	statusCounts := map[string]int64{}
	for _, status := range []string{
		models.StatusPending, models.StatusPreparing, models.StatusReady,
		models.StatusDelivered, models.StatusCancelled,
	} {
		var count int64
		countQuery := db.Model(&models.Order{}).
			Where("status = ? AND DATE(created_at) = ?", status, today)
		if branchFilter != "" {
			countQuery = countQuery.Where("branch_id = ?", branchFilter)
		}
		countQuery.Count(&count)
		statusCounts[status] = count
	}

	// top selling products (top 5)
	var topProducts []TopProduct
	topQuery := db.Model(&models.OrderItem{}).
		Select("product_id, SUM(quantity) as quantity").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.status != ?", models.StatusCancelled)
	if branchFilter != "" {
		topQuery = topQuery.Where("orders.branch_id = ?", branchFilter)
	}
	topQuery.Group("product_id").
		Order("quantity desc").
		Limit(5).
		Scan(&topProducts)

	for i, tp := range topProducts {
		var product models.Product
		if err := db.First(&product, tp.ProductID).Error; err == nil {
			topProducts[i].Name = product.Name
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"today_revenue": todayRevenue,
		"status_counts": statusCounts,
		"top_products":  topProducts,
		"generated_at":  time.Now(),
	})
}
