package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"resto-api/models"
)

func TestSendOrderStatusEmailWithoutCredentials(t *testing.T) {
	t.Setenv("EMAIL_USER", "")
	t.Setenv("EMAIL_PASS", "")

	email := "guest@example.com"
	order := &models.Order{OrderNumber: "ORD-20260830-001", Status: models.StatusReady}
	customer := &models.Customer{Name: "Guest", Phone: "+905551112233", Email: &email}

	res := SendOrderStatusEmail(order, customer, nil)

	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "EMAIL_USER")
}

func TestSendNewOrderEmailNoRecipient(t *testing.T) {
	t.Setenv("EMAIL_USER", "mailer@example.com")
	t.Setenv("EMAIL_PASS", "secret")
	t.Setenv("ADMIN_EMAIL", "")

	order := &models.Order{OrderNumber: "ORD-20260830-002"}

	res := SendNewOrderEmail(order, nil, nil)

	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "no recipient")
}

func TestBuildOrderHTMLContents(t *testing.T) {
	note := "no onions"
	email := "guest@example.com"
	order := &models.Order{
		OrderNumber: "ORD-20260830-003",
		Total:       45.50,
		Status:      models.StatusPreparing,
		Note:        &note,
		Items: []models.OrderItem{
			{ProductID: 1, Quantity: 2, Price: 20.00, Subtotal: 40.00,
				Product: &models.Product{Name: "Margherita Pizza"}},
			{ProductID: 2, Quantity: 1, Price: 5.50, Subtotal: 5.50,
				Product: &models.Product{Name: "Ayran"}},
		},
	}
	customer := &models.Customer{Name: "Guest", Phone: "+905551112233", Email: &email}
	branch := &models.Branch{Name: "Downtown"}

	html := buildOrderHTML(order, customer, branch, models.StatusText(order.Status))

	assert.Contains(t, html, "ORD-20260830-003")
	assert.Contains(t, html, "Downtown")
	assert.Contains(t, html, "45.50")
	assert.Contains(t, html, "Margherita Pizza")
	assert.Contains(t, html, "Ayran")
	assert.Contains(t, html, "no onions")
	assert.Contains(t, html, "Guest")
	assert.Contains(t, html, "Your order is being prepared")

	// deterministic for the same order
	assert.Equal(t, html, buildOrderHTML(order, customer, branch, models.StatusText(order.Status)))
}

func TestBuildOrderTextItemLines(t *testing.T) {
	order := &models.Order{
		OrderNumber: "ORD-20260830-004",
		Total:       18.00,
		Items: []models.OrderItem{
			{ProductID: 3, Quantity: 1, Price: 18.00, Subtotal: 18.00,
				Product: &models.Product{Name: "Lentil Soup"}},
		},
	}

	text := buildOrderText(order, nil, "A new order has been placed")

	assert.True(t, strings.HasPrefix(text, "A new order has been placed"))
	assert.Contains(t, text, "Order: #ORD-20260830-004")
	assert.Contains(t, text, "- 1x Lentil Soup (18.00)")
}
