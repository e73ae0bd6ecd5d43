// ABOUTME: Catalog holds the loaded wine dataset, immutable after load
// ABOUTME: Dispatches loading to the CSV or SQLite source by file extension
package catalog

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/eagles/winechat/internal/models"
)

// Catalog is the read-only wine dataset an engine searches. It is safe to
// share across concurrent engine instances because nothing mutates it after
// construction.
type Catalog struct {
	records []models.Record
}

// New wraps an already-built record set.
func New(records []models.Record) *Catalog {
	return &Catalog{records: records}
}

// Load reads a catalog from path, choosing the source by extension:
// .db/.sqlite/.sqlite3 open a SQLite catalog, everything else parses as CSV.
func Load(path string) (*Catalog, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return LoadSQLite(path)
	default:
		return LoadCSV(path)
	}
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.records)
}

// Records returns the underlying record set in dataset order. Callers must
// treat it as read-only.
func (c *Catalog) Records() []models.Record {
	return c.records
}

// Stats summarizes dataset coverage for the dataset CLI command.
type Stats struct {
	Rows         int            `json:"rows"`
	MatchableABV int            `json:"matchable_abv"`
	PricedRows   int            `json:"priced_rows"`
	ByColor      map[string]int `json:"by_color"`
	ByCountry    map[string]int `json:"by_country"`
}

// Stats computes row counts and field coverage over the catalog.
func (c *Catalog) Stats() Stats {
	st := Stats{
		Rows:      len(c.records),
		ByColor:   make(map[string]int),
		ByCountry: make(map[string]int),
	}
	for _, r := range c.records {
		if r.ABV.Valid {
			st.MatchableABV++
		}
		if r.Price.Valid {
			st.PricedRows++
		}
		if color := strings.TrimSpace(r.Color); color != "" {
			st.ByColor[color]++
		}
		if country := strings.TrimSpace(r.Country); country != "" {
			st.ByCountry[country]++
		}
	}
	return st
}

// buildRecord assembles one Record from raw source fields, parsing the
// numeric columns into optional values.
func buildRecord(winery, name, vintage, country, region, color, abv, price string) models.Record {
	return models.Record{
		Winery:     strings.TrimSpace(winery),
		Name:       strings.TrimSpace(name),
		Country:    strings.TrimSpace(country),
		Region:     strings.TrimSpace(region),
		Color:      strings.TrimSpace(color),
		VintageRaw: strings.TrimSpace(vintage),
		Vintage:    models.ParseVintage(vintage),
		ABV:        models.ParseABV(abv),
		PriceRaw:   strings.TrimSpace(price),
		Price:      models.ParsePrice(price),
	}
}

// requiredColumns are the dataset columns the engine depends on. The color
// column has two accepted spellings, checked separately.
var requiredColumns = []string{"Winery", "Name", "Vintage", "Country", "Alcohol Level (ABV)", "Price"}

// colorColumns are the accepted header spellings for the wine color field.
var colorColumns = []string{"Colour of Wine", "Color"}

// missingColumnsError builds the fatal configuration error for a source
// missing required columns.
func missingColumnsError(missing []string) error {
	return fmt.Errorf("dataset is missing required columns: %s", strings.Join(missing, ", "))
}
