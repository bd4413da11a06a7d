package seeders

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"resto-api/config"
	"resto-api/models"
)

// helper for pointer string
func ptrString(s string) *string {
	return &s
}

func hash(password string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return ""
	}
	return string(h)
}

func Seed() {
	// ============= Seed Branches =============
	branches := []models.Branch{
		{Name: "Downtown", Address: "12 Main Street", Phone: "+90 212 000 0001", Active: true},
		{Name: "Riverside", Address: "4 Harbour Road", Phone: "+90 212 000 0002", Active: true},
	}
	for _, branch := range branches {
		config.DB.FirstOrCreate(&branch, models.Branch{Name: branch.Name})
	}

	var allBranches []models.Branch
	config.DB.Find(&allBranches)
	if len(allBranches) == 0 {
		return
	}
	main := allBranches[0]

	// ============= Seed Users =============
	users := []models.User{
		{Username: "admin", Password: hash("admin123"), Role: "admin"},
		{Username: "staff1", Password: hash("staff123"), Role: "staff", BranchID: &main.ID},
	}
	for _, user := range users {
		config.DB.FirstOrCreate(&user, models.User{Username: user.Username})
	}

	// ============= Seed Categories + Products =============
	for _, branch := range allBranches {
		categories := []models.Category{
			{BranchID: branch.ID, Name: "Mains", SortOrder: 1},
			{BranchID: branch.ID, Name: "Drinks", SortOrder: 2},
			{BranchID: branch.ID, Name: "Desserts", SortOrder: 3},
		}
		for i := range categories {
			config.DB.FirstOrCreate(&categories[i],
				models.Category{BranchID: branch.ID, Name: categories[i].Name})
		}

		products := []models.Product{
			{BranchID: branch.ID, CategoryID: &categories[0].ID, Name: "Margherita Pizza", Description: ptrString("Tomato, mozzarella, basil"), Price: 45.50, Available: true},
			{BranchID: branch.ID, CategoryID: &categories[0].ID, Name: "Lamb Kebab", Description: ptrString("Char-grilled with rice"), Price: 62.00, Available: true},
			{BranchID: branch.ID, CategoryID: &categories[0].ID, Name: "Lentil Soup", Description: ptrString("With lemon and croutons"), Price: 18.00, Available: true},
			{BranchID: branch.ID, CategoryID: &categories[1].ID, Name: "Ayran", Description: ptrString("Cold yogurt drink"), Price: 8.00, Available: true},
			{BranchID: branch.ID, CategoryID: &categories[1].ID, Name: "Turkish Tea", Price: 6.00, Available: true},
			{BranchID: branch.ID, CategoryID: &categories[2].ID, Name: "Baklava", Description: ptrString("Pistachio, four pieces"), Price: 28.00, Available: true},
		}
		for _, product := range products {
			config.DB.FirstOrCreate(&product,
				models.Product{BranchID: branch.ID, Name: product.Name})
		}
	}

	fmt.Println("Seeding done: branches, users, categories, products")
}
