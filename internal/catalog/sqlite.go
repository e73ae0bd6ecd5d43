// ABOUTME: SQLite catalog source and CSV-to-SQLite import
// ABOUTME: Uses modernc.org/sqlite with WAL mode, raw fields re-parsed on load
package catalog

import (
	"database/sql"
	"fmt"

	"github.com/eagles/winechat/internal/models"
	_ "modernc.org/sqlite"
)

// wineSchema stores the raw source fields; numeric parsing happens at load so
// both catalog sources share one set of coercion rules.
const wineSchema = `
CREATE TABLE IF NOT EXISTS wines (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	winery TEXT NOT NULL DEFAULT '',
	name TEXT NOT NULL DEFAULT '',
	vintage TEXT NOT NULL DEFAULT '',
	country TEXT NOT NULL DEFAULT '',
	region TEXT NOT NULL DEFAULT '',
	color TEXT NOT NULL DEFAULT '',
	abv TEXT NOT NULL DEFAULT '',
	price TEXT NOT NULL DEFAULT ''
);
`

// openDB opens a SQLite catalog database with WAL mode enabled.
func openDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("opening catalog database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging catalog database: %w", err)
	}
	return db, nil
}

// LoadSQLite reads the wine catalog from a SQLite database produced by
// ImportCSV. A database without the wines table is a configuration error.
func LoadSQLite(path string) (*Catalog, error) {
	db, err := openDB(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(`SELECT winery, name, vintage, country, region, color, abv, price FROM wines ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	cat := &Catalog{}
	for rows.Next() {
		var winery, name, vintage, country, region, color, abv, price string
		if err := rows.Scan(&winery, &name, &vintage, &country, &region, &color, &abv, &price); err != nil {
			return nil, fmt.Errorf("scanning catalog row: %w", err)
		}
		cat.records = append(cat.records, buildRecord(winery, name, vintage, country, region, color, abv, price))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating catalog rows: %w", err)
	}

	return cat, nil
}

// ImportCSV converts a CSV dataset into a SQLite catalog at dbPath, replacing
// any rows already there. It returns the number of imported records.
func ImportCSV(csvPath, dbPath string) (int, error) {
	cat, err := LoadCSV(csvPath)
	if err != nil {
		return 0, err
	}

	db, err := openDB(dbPath)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	if _, err := db.Exec(wineSchema); err != nil {
		return 0, fmt.Errorf("creating catalog schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("starting import transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM wines`); err != nil {
		return 0, fmt.Errorf("clearing previous import: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO wines (winery, name, vintage, country, region, color, abv, price) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range cat.Records() {
		if _, err := stmt.Exec(r.Winery, r.Name, r.VintageRaw, r.Country, r.Region, r.Color, rawABV(r), r.PriceRaw); err != nil {
			return 0, fmt.Errorf("inserting record: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing import: %w", err)
	}
	return cat.Len(), nil
}

// rawABV renders the ABV back to text for storage; absent values store empty.
func rawABV(r models.Record) string {
	if !r.ABV.Valid {
		return ""
	}
	return fmt.Sprintf("%g", r.ABV.Value)
}
