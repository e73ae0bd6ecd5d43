// ABOUTME: CSV catalog source for the scraped wine dataset
// ABOUTME: Validates required columns at load and fails fast when absent
package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// LoadCSV reads the wine dataset from a CSV file. Missing required columns
// are a configuration error; no partial catalog is returned.
func LoadCSV(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	return ParseCSV(f)
}

// ParseCSV reads a catalog from CSV data.
func ParseCSV(r io.Reader) (*Catalog, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // scraped rows are occasionally ragged

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading dataset header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		index[col] = i
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	colorIdx := -1
	for _, col := range colorColumns {
		if i, ok := index[col]; ok {
			colorIdx = i
			break
		}
	}
	if colorIdx < 0 {
		missing = append(missing, colorColumns[0])
	}
	if len(missing) > 0 {
		return nil, missingColumnsError(missing)
	}

	field := func(row []string, col string) string {
		i, ok := index[col]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	cat := &Catalog{}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading dataset row: %w", err)
		}
		color := ""
		if colorIdx < len(row) {
			color = row[colorIdx]
		}
		cat.records = append(cat.records, buildRecord(
			field(row, "Winery"),
			field(row, "Name"),
			field(row, "Vintage"),
			field(row, "Country"),
			field(row, "Region"),
			color,
			field(row, "Alcohol Level (ABV)"),
			field(row, "Price"),
		))
	}

	return cat, nil
}
