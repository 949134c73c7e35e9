// store.go
package main

import (
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pivolan/sales_analyzer/domain/models"
	"github.com/pivolan/sales_analyzer/table"
)

// registry keeps a bookkeeping row per uploaded dataset. It is optional: with
// no DSN configured the server runs without persistence.
var registry *gorm.DB

func initRegistry(dsn string) error {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return err
	}
	if err := db.AutoMigrate(&models.DatasetRecord{}); err != nil {
		return err
	}
	registry = db
	return nil
}

func registerUpload(uploadID, fileName, path string, t *table.Table) {
	if registry == nil {
		return
	}
	rec := models.DatasetRecord{
		UploadID:   uploadID,
		FileName:   fileName,
		Path:       path,
		Rows:       t.NumRows(),
		Columns:    t.NumColumns(),
		UploadedAt: time.Now(),
	}
	if err := registry.Create(&rec).Error; err != nil {
		log.Printf("register upload: %v", err)
	}
}
