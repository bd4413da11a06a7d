package migrations

import (
	"gorm.io/gorm"

	"resto-api/models"
)

// BackfillSalesRecords ensures every order has exactly one sales record,
// creating the table first if it does not exist. Orders that already have a
// record are skipped, so running it again is a safe retry. Returns the
// number of records created; stops at the first persistence error.
func BackfillSalesRecords(db *gorm.DB) (int, error) {
	if err := db.AutoMigrate(&models.SalesRecord{}); err != nil {
		return 0, err
	}

	var orders []models.Order
	if err := db.Find(&orders).Error; err != nil {
		return 0, err
	}

	created := 0
	for _, order := range orders {
		var count int64
		if err := db.Model(&models.SalesRecord{}).
			Where("order_id = ?", order.ID).
			Count(&count).Error; err != nil {
			return created, err
		}
		if count > 0 {
			continue
		}

		record := models.NewSalesRecord(order)
		if err := db.Create(&record).Error; err != nil {
			return created, err
		}
		created++
	}

	return created, nil
}
