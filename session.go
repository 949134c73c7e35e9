// session.go
package main

import (
	"errors"
	"sync"

	"github.com/pivolan/sales_analyzer/table"
)

var errNoDataset = errors.New("no dataset uploaded yet")

// datasetSession holds the currently served dataset. It is replaced
// atomically on every upload and read-only in between, so request handlers
// can keep using a snapshot while a new upload swaps it out.
type datasetSession struct {
	mu    sync.RWMutex
	table *table.Table
	path  string
}

var current = &datasetSession{}

func (s *datasetSession) replace(t *table.Table, path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table = t
	s.path = path
}

func (s *datasetSession) snapshot() (*table.Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.table == nil {
		return nil, errNoDataset
	}
	return s.table, nil
}
