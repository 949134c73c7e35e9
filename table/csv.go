// csv.go
package table

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// ReadFile loads a CSV file into a table. Input that is not valid UTF-8 is
// decoded as latin1, which is what the sales exports in the wild use.
func ReadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if !utf8.Valid(data) {
		data, err = charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err != nil {
			return nil, fmt.Errorf("decode latin1: %w", err)
		}
	}
	return Read(bytes.NewReader(data))
}

// Read parses CSV content. The first row is treated as a header unless it
// looks like data, in which case column_N names are generated.
func Read(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	first, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	headers, firstRowIsData := analyzeHeader(first)

	t := New(headers...)
	if firstRowIsData {
		appendRecord(t, first)
	}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		appendRecord(t, record)
	}
	return t, nil
}

func appendRecord(t *Table, record []string) {
	for i, col := range t.Columns {
		if i < len(record) {
			col.Cells = append(col.Cells, NewCell(record[i]))
		} else {
			col.Cells = append(col.Cells, MissingCell())
		}
	}
}

// WriteFile writes the table back to disk as CSV, missing cells as empty
// fields.
func WriteFile(path string, t *Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	defer f.Close()
	return Write(f, t)
}

func Write(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Names()); err != nil {
		return err
	}
	record := make([]string, t.NumColumns())
	for i := 0; i < t.NumRows(); i++ {
		for j, col := range t.Columns {
			if col.Cells[i].Missing {
				record[j] = ""
			} else {
				record[j] = col.Cells[i].Value
			}
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// analyzeHeader decides whether the first CSV row holds column names or data.
// When most fields do not look like headers, generated names are used and the
// row is kept as data.
func analyzeHeader(first []string) ([]string, bool) {
	headerLike := 0
	for _, field := range first {
		if isLikelyHeader(field) {
			headerLike++
		}
	}
	if len(first) > 0 && float64(headerLike)/float64(len(first)) >= 0.5 {
		headers := make([]string, len(first))
		for i, h := range first {
			h = trimmedOr(h, generateColumnName(i))
			headers[i] = h
		}
		return dedupeHeaders(headers), false
	}
	headers := make([]string, len(first))
	for i := range first {
		headers[i] = generateColumnName(i)
	}
	return headers, true
}

var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`),
	regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`),
	regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}$`),
	regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`),
	regexp.MustCompile(`^\d{4}-\d{2}-\d{2}\s\d{2}:\d{2}:\d{2}`),
}

// isLikelyHeader reports whether the text reads as a column name rather than
// a value: not a number, not a date, and mostly letters.
func isLikelyHeader(text string) bool {
	text = trimmedOr(text, "")
	if text == "" {
		return false
	}
	if _, err := strconv.ParseFloat(text, 64); err == nil {
		return false
	}
	for _, pattern := range datePatterns {
		if pattern.MatchString(text) {
			return false
		}
	}
	letters, others := 0, 0
	for _, r := range text {
		switch {
		case unicode.IsLetter(r):
			letters++
		case unicode.IsSpace(r):
		default:
			others++
		}
	}
	if letters+others == 0 {
		return false
	}
	return letters > 0 && float64(letters)/float64(letters+others) >= 0.3
}

func generateColumnName(index int) string {
	return fmt.Sprintf("column_%d", index+1)
}

// dedupeHeaders suffixes repeated names so column names stay unique.
func dedupeHeaders(headers []string) []string {
	seen := map[string]bool{}
	result := make([]string, len(headers))
	for i, header := range headers {
		name := header
		for counter := 1; seen[name]; counter++ {
			name = fmt.Sprintf("%s_%d", header, counter)
		}
		seen[name] = true
		result[i] = name
	}
	return result
}

func trimmedOr(s, fallback string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}
