package utils

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/gomail.v2"

	"resto-api/models"
)

// SendResult is the outcome shape shared by the notification utilities.
// Callers branch on Success; nothing in this file panics past its boundary.
type SendResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func ok() SendResult {
	return SendResult{Success: true}
}

func fail(format string, args ...any) SendResult {
	return SendResult{Success: false, Error: fmt.Sprintf(format, args...)}
}

func smtpDialer() (*gomail.Dialer, string, SendResult) {
	user := os.Getenv("EMAIL_USER")
	pass := os.Getenv("EMAIL_PASS")
	if user == "" || pass == "" {
		return nil, "", fail("EMAIL_USER / EMAIL_PASS not configured")
	}

	host := os.Getenv("EMAIL_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}
	port := 587
	if p, err := strconv.Atoi(os.Getenv("EMAIL_PORT")); err == nil && p > 0 {
		port = p
	}

	return gomail.NewDialer(host, port, user, pass), user, ok()
}

func send(to, subject, htmlBody, textBody string) SendResult {
	dialer, from, res := smtpDialer()
	if !res.Success {
		return res
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", textBody)
	m.AddAlternative("text/html", htmlBody)

	// No retry on transient SMTP failure; callers log and move on.
	if err := dialer.DialAndSend(m); err != nil {
		return fail("smtp send failed: %v", err)
	}
	return ok()
}

// orderRecipient picks the customer's email when present, else the admin
// fallback address.
func orderRecipient(customer *models.Customer) (string, SendResult) {
	if customer != nil && customer.Email != nil && *customer.Email != "" {
		return *customer.Email, ok()
	}
	admin := os.Getenv("ADMIN_EMAIL")
	if admin == "" {
		return "", fail("no recipient: customer has no email and ADMIN_EMAIL is not set")
	}
	return admin, ok()
}

func buildOrderHTML(order *models.Order, customer *models.Customer, branch *models.Branch, headline string) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html><html><body style=\"font-family:Arial,sans-serif\">")
	b.WriteString(fmt.Sprintf("<h2>%s</h2>", headline))
	b.WriteString(fmt.Sprintf("<p><strong>Order:</strong> #%s</p>", order.OrderNumber))
	if branch != nil {
		b.WriteString(fmt.Sprintf("<p><strong>Branch:</strong> %s</p>", branch.Name))
	}
	b.WriteString(fmt.Sprintf("<p><strong>Total:</strong> %.2f</p>", order.Total))

	if len(order.Items) > 0 {
		b.WriteString("<table border=\"1\" cellpadding=\"6\" cellspacing=\"0\"><tr><th>Item</th><th>Qty</th><th>Price</th><th>Subtotal</th></tr>")
		for _, item := range order.Items {
			name := fmt.Sprintf("#%d", item.ProductID)
			if item.Product != nil {
				name = item.Product.Name
			}
			b.WriteString(fmt.Sprintf("<tr><td>%s</td><td>%d</td><td>%.2f</td><td>%.2f</td></tr>",
				name, item.Quantity, item.Price, item.Subtotal))
		}
		b.WriteString("</table>")
	}

	if order.Note != nil && *order.Note != "" {
		b.WriteString(fmt.Sprintf("<p><strong>Note:</strong> %s</p>", *order.Note))
	}
	if customer != nil {
		b.WriteString(fmt.Sprintf("<p><strong>Customer:</strong> %s (%s)</p>", customer.Name, customer.Phone))
	}
	if panel := os.Getenv("ADMIN_PANEL_URL"); panel != "" {
		b.WriteString(fmt.Sprintf("<p><a href=\"%s\">Open admin panel</a></p>", panel))
	}
	b.WriteString("</body></html>")

	return b.String()
}

func buildOrderText(order *models.Order, branch *models.Branch, headline string) string {
	var b strings.Builder

	b.WriteString(headline + "\n\n")
	b.WriteString(fmt.Sprintf("Order: #%s\n", order.OrderNumber))
	if branch != nil {
		b.WriteString(fmt.Sprintf("Branch: %s\n", branch.Name))
	}
	b.WriteString(fmt.Sprintf("Total: %.2f\n", order.Total))
	for _, item := range order.Items {
		name := fmt.Sprintf("#%d", item.ProductID)
		if item.Product != nil {
			name = item.Product.Name
		}
		b.WriteString(fmt.Sprintf("- %dx %s (%.2f)\n", item.Quantity, name, item.Subtotal))
	}
	if order.Note != nil && *order.Note != "" {
		b.WriteString(fmt.Sprintf("Note: %s\n", *order.Note))
	}

	return b.String()
}

// SendNewOrderEmail notifies about a freshly placed order.
func SendNewOrderEmail(order *models.Order, customer *models.Customer, branch *models.Branch) SendResult {
	to, res := orderRecipient(customer)
	if !res.Success {
		return res
	}

	subject := fmt.Sprintf("New order #%s", order.OrderNumber)
	headline := "A new order has been placed"
	return send(to, subject, buildOrderHTML(order, customer, branch, headline), buildOrderText(order, branch, headline))
}

// SendOrderStatusEmail notifies about a status change using the fixed
// status message table.
func SendOrderStatusEmail(order *models.Order, customer *models.Customer, branch *models.Branch) SendResult {
	to, res := orderRecipient(customer)
	if !res.Success {
		return res
	}

	subject := fmt.Sprintf("Order #%s: %s", order.OrderNumber, order.Status)
	headline := models.StatusText(order.Status)
	return send(to, subject, buildOrderHTML(order, customer, branch, headline), buildOrderText(order, branch, headline))
}

// SendPasswordResetEmail mails a reset link to a panel user.
func SendPasswordResetEmail(to, resetURL string) SendResult {
	if to == "" {
		return fail("no recipient address")
	}

	html := fmt.Sprintf("<!DOCTYPE html><html><body style=\"font-family:Arial,sans-serif\">"+
		"<h2>Password reset</h2><p>Click the link below to choose a new password.</p>"+
		"<p><a href=\"%s\">Reset password</a></p></body></html>", resetURL)
	text := fmt.Sprintf("Password reset\n\nOpen the link to choose a new password:\n%s\n", resetURL)

	return send(to, "Password reset", html, text)
}
