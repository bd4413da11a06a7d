package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"resto-api/models"
)

// SendWhatsAppNotification pushes a message through the WhatsApp gateway API.
func SendWhatsAppNotification(phone, message string) error {
	apiURL := "https://api.fonnte.com/send"
	token := os.Getenv("WHATSAPP_TOKEN")

	if token == "" {
		return fmt.Errorf("WHATSAPP_TOKEN not set in environment")
	}

	payload := map[string]string{
		"target":  phone,
		"message": message,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %v", err)
	}

	req, err := http.NewRequest("POST", apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to build request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", token)

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("gateway returned status: %d", resp.StatusCode)
	}

	return nil
}

// FormatOrderMessage renders the WhatsApp text for a new order.
func FormatOrderMessage(order *models.Order, branchName string) string {
	message := "NEW ORDER\n\n"
	message += fmt.Sprintf("Order: #%s\n", order.OrderNumber)
	if branchName != "" {
		message += fmt.Sprintf("Branch: %s\n", branchName)
	}
	message += fmt.Sprintf("Type: %s\n", order.OrderType)
	message += fmt.Sprintf("Total: %.2f\n\n", order.Total)
	message += "*Items:*\n"

	for i, item := range order.Items {
		name := fmt.Sprintf("#%d", item.ProductID)
		if item.Product != nil {
			name = item.Product.Name
		}
		message += fmt.Sprintf("%d. %dx %s\n", i+1, item.Quantity, name)
	}

	if order.Note != nil && *order.Note != "" {
		message += fmt.Sprintf("\nNote: %s\n", *order.Note)
	}

	message += fmt.Sprintf("\n_%s_", order.CreatedAt.Format("02/01/2006 15:04:05"))

	return message
}
