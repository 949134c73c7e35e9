package table

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeHeader(t *testing.T) {
	tests := []struct {
		name        string
		first       []string
		wantHeaders []string
		wantIsData  bool
	}{
		{
			name:        "clean header row",
			first:       []string{"Order Date", "Region", "Sales"},
			wantHeaders: []string{"Order Date", "Region", "Sales"},
			wantIsData:  false,
		},
		{
			name:        "numeric first row is data",
			first:       []string{"2020-01-05", "10", "3.5"},
			wantHeaders: []string{"column_1", "column_2", "column_3"},
			wantIsData:  true,
		},
		{
			name:        "blank header fields get generated names",
			first:       []string{"Region", "", "Sales"},
			wantHeaders: []string{"Region", "column_2", "Sales"},
			wantIsData:  false,
		},
		{
			name:        "duplicate headers are suffixed",
			first:       []string{"Sales", "Sales", "Sales"},
			wantHeaders: []string{"Sales", "Sales_1", "Sales_2"},
			wantIsData:  false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers, isData := analyzeHeader(tt.first)
			assert.Equal(t, tt.wantHeaders, headers)
			assert.Equal(t, tt.wantIsData, isData)
		})
	}
}

func TestIsLikelyHeader(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"Order Date", true},
		{"customer_name", true},
		{"Sales", true},
		{"42", false},
		{"3.14", false},
		{"2020-01-05", false},
		{"11/8/2016", false},
		{"", false},
		{"---", false},
	}
	for _, tt := range tests {
		if got := isLikelyHeader(tt.text); got != tt.want {
			t.Errorf("isLikelyHeader(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestReadWithHeader(t *testing.T) {
	input := "Order Date,Region,Sales\n2020-01-05,West,100\n2020-01-06,East,\n"
	tbl, err := Read(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"Order Date", "Region", "Sales"}, tbl.Names())
	require.Equal(t, 2, tbl.NumRows())
	assert.Equal(t, "West", tbl.Column("Region").Cells[0].Value)
	assert.True(t, tbl.Column("Sales").Cells[1].Missing)
}

func TestReadHeaderlessKeepsFirstRow(t *testing.T) {
	input := "2020-01-05,100\n2020-01-06,200\n"
	tbl, err := Read(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"column_1", "column_2"}, tbl.Names())
	require.Equal(t, 2, tbl.NumRows())
	assert.Equal(t, "2020-01-05", tbl.Column("column_1").Cells[0].Value)
}

func TestReadShortRecordPadsMissing(t *testing.T) {
	tbl, err := Read(strings.NewReader("a,b\n1\n2,3\n"))
	require.NoError(t, err)

	require.Equal(t, 2, tbl.NumRows())
	assert.True(t, tbl.Column("b").Cells[0].Missing)
	assert.Equal(t, "3", tbl.Column("b").Cells[1].Value)
}

func TestWriteRoundTrip(t *testing.T) {
	tbl := New("day", "sales")
	tbl.AppendRow(map[string]Cell{"day": NewCell("2020-01-05"), "sales": NewCell("100")})
	tbl.AppendRow(map[string]Cell{"day": NewCell("2020-01-06")})

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, tbl))

	back, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, tbl.Names(), back.Names())
	require.Equal(t, 2, back.NumRows())
	assert.True(t, back.Column("sales").Cells[1].Missing)
}

func TestReadFileLatin1(t *testing.T) {
	path := filepath.Join(t.TempDir(), "latin1.csv")
	content := append([]byte("Region,Sales\n"), []byte{'M', 0xE9, 'x', 'i', 'c', 'o', ',', '1', '0', '\n'}...)
	require.NoError(t, os.WriteFile(path, content, 0644))

	tbl, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "México", tbl.Column("Region").Cells[0].Value)
}
