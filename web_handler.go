// web_handler.go
package main

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"

	uuid "github.com/satori/go.uuid"

	"github.com/pivolan/sales_analyzer/config"
	"github.com/pivolan/sales_analyzer/table"
)

// handleUpload receives the training CSV, unpacks it when archived, loads it
// into the dataset session and registers the upload.
func handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Error uploading file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	uid := uuid.NewV4().String()
	dir := filepath.Join(config.GetConfig().UploadDir, uid)
	if err := os.MkdirAll(dir, 0755); err != nil {
		http.Error(w, "Error saving file: "+err.Error(), http.StatusInternalServerError)
		return
	}
	filePath := filepath.Join(dir, filepath.Base(header.Filename))
	dst, err := os.Create(filePath)
	if err != nil {
		http.Error(w, "Error saving file: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if _, err := io.Copy(dst, file); err != nil {
		dst.Close()
		http.Error(w, "Error saving file", http.StatusInternalServerError)
		return
	}
	dst.Close()

	unpacked, err := unpackArchive(filePath)
	if err != nil {
		http.Error(w, "Error unpacking archive: "+err.Error(), http.StatusBadRequest)
		return
	}
	if unpacked != "" {
		filePath = unpacked
	}

	t, err := table.ReadFile(filePath)
	if err != nil {
		http.Error(w, "Error reading CSV: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := t.Validate(); err != nil {
		http.Error(w, "Invalid CSV: "+err.Error(), http.StatusBadRequest)
		return
	}

	current.replace(t, filePath)
	registerUpload(uid, header.Filename, filePath, t)
	log.Printf("dataset %s loaded: %d rows, %d columns", header.Filename, t.NumRows(), t.NumColumns())

	writeJSON(w, map[string]string{
		"detail": fmt.Sprintf("CSV loaded: %s (%d rows)", header.Filename, t.NumRows()),
	})
}
