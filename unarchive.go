// unarchive.go
package main

import (
	"archive/zip"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pierrec/lz4"
)

// unpackArchive extracts a compressed upload next to the original and removes
// the archive. Returns "" when the file is not an archive.
func unpackArchive(filePath string) (string, error) {
	switch filepath.Ext(filePath) {
	case ".zip":
		return unpackZipArchive(filePath)
	case ".gz":
		return unpackStream(filePath, ".gz", func(r io.Reader) (io.Reader, error) {
			return gzip.NewReader(r)
		})
	case ".lz4":
		return unpackStream(filePath, ".lz4", func(r io.Reader) (io.Reader, error) {
			return lz4.NewReader(r), nil
		})
	}
	return "", nil
}

// unpackZipArchive extracts the largest file in the archive, which is the
// dataset in every export we have seen.
func unpackZipArchive(filePath string) (string, error) {
	r, err := zip.OpenReader(filePath)
	if err != nil {
		return "", fmt.Errorf("open zip: %w", err)
	}
	defer r.Close()

	var largest *zip.File
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if largest == nil || f.UncompressedSize64 > largest.UncompressedSize64 {
			largest = f
		}
	}
	if largest == nil {
		return "", fmt.Errorf("zip archive %s contains no files", filePath)
	}

	destPath := filepath.Join(filepath.Dir(filePath), filepath.Base(largest.Name))
	rc, err := largest.Open()
	if err != nil {
		return "", fmt.Errorf("open zip entry: %w", err)
	}
	defer rc.Close()
	if err := copyToFile(destPath, rc); err != nil {
		return "", err
	}
	if err := os.Remove(filePath); err != nil {
		return "", err
	}
	return destPath, nil
}

func unpackStream(filePath, ext string, wrap func(io.Reader) (io.Reader, error)) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("open archive: %w", err)
	}
	defer file.Close()

	reader, err := wrap(file)
	if err != nil {
		return "", fmt.Errorf("read archive %s: %w", filePath, err)
	}
	destPath := strings.TrimSuffix(filePath, ext)
	if err := copyToFile(destPath, reader); err != nil {
		return "", err
	}
	if err := os.Remove(filePath); err != nil {
		return "", err
	}
	return destPath, nil
}

func copyToFile(destPath string, r io.Reader) error {
	outFile, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", destPath, err)
	}
	defer outFile.Close()
	if _, err := io.Copy(outFile, r); err != nil {
		return fmt.Errorf("extract to %s: %w", destPath, err)
	}
	return nil
}
