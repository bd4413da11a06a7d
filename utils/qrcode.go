package utils

import (
	"fmt"
	"os"

	qrcode "github.com/skip2/go-qrcode"
)

// MenuURL builds the public QR menu link for a branch.
func MenuURL(branchID uint) string {
	base := os.Getenv("MENU_BASE_URL")
	if base == "" {
		base = "http://localhost:3000"
	}
	return fmt.Sprintf("%s/menu/%d", base, branchID)
}

// GenerateMenuQR renders the branch menu link as a PNG QR code.
func GenerateMenuQR(branchID uint, size int) ([]byte, error) {
	if size <= 0 {
		size = 256
	}
	return qrcode.Encode(MenuURL(branchID), qrcode.Medium, size)
}
