package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/pivolan/sales_analyzer/config"
)

func main() {
	cfg := config.GetConfig()

	if cfg.DatabaseDSN != "" {
		if err := initRegistry(cfg.DatabaseDSN); err != nil {
			log.Fatalln("cannot connect to dataset registry", err)
		}
		log.Println("connected to dataset registry")
	}

	http.HandleFunc("/upload_csv", handleUpload)
	http.HandleFunc("/kpis", handleKPIs)
	http.HandleFunc("/grouped", handleGrouped)
	http.HandleFunc("/sales_trend", handleSalesTrend)
	http.HandleFunc("/sales_trend.png", handleSalesTrendPNG)
	http.HandleFunc("/trend_chart", handleTrendChart)
	http.HandleFunc("/predict_csv", handlePredictCSV)
	http.HandleFunc("/predict", handlePredictJSON)
	http.HandleFunc("/metrics", handleMetrics)

	// uploads are transient, clean them out after a couple of hours
	go func() {
		for {
			time.Sleep(time.Minute)
			if err := removeOldFiles(cfg.UploadDir, time.Now().Add(-2*time.Hour)); err != nil {
				log.Printf("cleanup: %v", err)
			}
		}
	}()

	log.Printf("listening on %s", cfg.ListenAddr)
	if err := http.ListenAndServe(cfg.ListenAddr, nil); err != nil {
		log.Fatalln("server error:", err)
	}
}

// removeOldFiles walks dirPath and removes every file modified before maxAge.
func removeOldFiles(dirPath string, maxAge time.Time) error {
	files, err := os.ReadDir(dirPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, file := range files {
		filePath := filepath.Join(dirPath, file.Name())
		if file.IsDir() {
			if err := removeOldFiles(filePath, maxAge); err != nil {
				return err
			}
			continue
		}
		info, err := file.Info()
		if err != nil {
			return err
		}
		if info.ModTime().Before(maxAge) {
			if err := os.Remove(filePath); err != nil {
				return err
			}
			log.Printf("removed stale upload: %s", filePath)
		}
	}
	return nil
}
