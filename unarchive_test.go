package main

import (
	"archive/zip"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnpackArchivePassthrough(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n1,2\n"), 0644))

	dest, err := unpackArchive(path)
	require.NoError(t, err)
	assert.Equal(t, "", dest)
}

func TestUnpackGzip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv.gz")

	f, err := os.Create(path)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write([]byte("a,b\n1,2\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	dest, err := unpackArchive(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "data.csv"), dest)

	content, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2\n", string(content))

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "the archive is removed after extraction")
}

func TestUnpackZipPicksLargestFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.zip")

	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	small, err := zw.Create("readme.txt")
	require.NoError(t, err)
	small.Write([]byte("notes"))
	big, err := zw.Create("export/data.csv")
	require.NoError(t, err)
	big.Write([]byte("a,b\n1,2\n3,4\n5,6\n"))
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	dest, err := unpackArchive(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "data.csv"), dest)

	content, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(content), "5,6")
}

func TestUnpackEmptyZip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.zip")

	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	_, err = unpackArchive(path)
	assert.Error(t, err)
}
