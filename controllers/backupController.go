package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"resto-api/config"
	"resto-api/models"
)

type backupExport struct {
	GeneratedAt  time.Time            `json:"generated_at"`
	Orders       []models.Order       `json:"orders"`
	SalesRecords []models.SalesRecord `json:"sales_records"`
}

func backupDir() string {
	dir := os.Getenv("BACKUP_DIR")
	if dir == "" {
		dir = "backups"
	}
	return dir
}

// CreateBackup exports orders and sales records to a JSON file
func CreateBackup(c *gin.Context) {
	export := backupExport{GeneratedAt: time.Now()}

	if err := config.DB.Preload("Items").Find(&export.Orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := config.DB.Find(&export.SalesRecords).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := os.MkdirAll(backupDir(), 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	name := fmt.Sprintf("backup-%s-%s.json",
		time.Now().Format("20060102-150405"),
		uuid.NewString()[:8])
	path := filepath.Join(backupDir(), name)

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"file":          name,
		"orders":        len(export.Orders),
		"sales_records": len(export.SalesRecords),
	})
}

func ListBackups(c *gin.Context) {
	entries, err := os.ReadDir(backupDir())
	if err != nil {
		if os.IsNotExist(err) {
			c.JSON(http.StatusOK, gin.H{"data": []gin.H{}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	files := []gin.H{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, gin.H{
			"file":       entry.Name(),
			"size":       info.Size(),
			"created_at": info.ModTime(),
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": files})
}

func DownloadBackup(c *gin.Context) {
	// filepath.Base strips any path traversal from the parameter
	name := filepath.Base(c.Param("file"))
	path := filepath.Join(backupDir(), name)

	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Backup not found"})
		return
	}

	c.FileAttachment(path, name)
}

func DeleteBackup(c *gin.Context) {
	name := filepath.Base(c.Param("file"))
	path := filepath.Join(backupDir(), name)

	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Backup not found"})
		return
	}
	if err := os.Remove(path); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Backup deleted"})
}
