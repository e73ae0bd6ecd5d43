// ABOUTME: Record is one row of the wine catalog plus its numeric parse helpers
// ABOUTME: Dirty source fields parse to absent Numbers instead of failing a turn
package models

import (
	"strconv"
	"strings"
)

// Plausible alcohol-by-volume bounds. Values outside this window come from
// scraper noise and are treated as absent rather than matched or displayed.
const (
	MinPlausibleABV = 5
	MaxPlausibleABV = 20
)

// Number is a float that may be absent. Parse functions return an invalid
// Number instead of an error; filter predicates treat absent as non-matching
// and formatting renders it as "N/A".
type Number struct {
	Value float64
	Valid bool
}

// Record is one catalog row. Raw strings are kept alongside parsed values so
// display can fall back to the source text where that reads better.
type Record struct {
	Winery     string
	Name       string
	Country    string
	Region     string
	Color      string
	VintageRaw string
	Vintage    Number
	ABV        Number
	PriceRaw   string
	Price      Number
}

// ParseABV parses an alcohol-by-volume field. Non-numeric values and values
// outside the plausible range come back invalid.
func ParseABV(s string) Number {
	v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "%"), 64)
	if err != nil || v < MinPlausibleABV || v > MaxPlausibleABV {
		return Number{}
	}
	return Number{Value: v, Valid: true}
}

// ParsePrice normalizes a possibly currency-decorated price field. Amounts
// above 100 are cent-denominated in the source and are scaled down.
func ParsePrice(s string) Number {
	cleaned := strings.NewReplacer("$", "", "€", "", ",", "", " ", "").Replace(strings.TrimSpace(s))
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return Number{}
	}
	if v > 100 {
		v /= 100
	}
	return Number{Value: v, Valid: true}
}

// ParseVintage parses a vintage year field; "2015.0" style values from the
// scraper parse as numbers so they can be re-rendered as whole years.
func ParseVintage(s string) Number {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return Number{}
	}
	return Number{Value: v, Valid: true}
}

// ParseBand splits a canonical band such as "11-12%" or "$10-20" into its
// inclusive numeric bounds.
func ParseBand(band string) (lo, hi float64, ok bool) {
	cleaned := strings.NewReplacer("%", "", "$", "").Replace(strings.TrimSpace(band))
	parts := strings.SplitN(cleaned, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	lo, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, 0, false
	}
	hi, err = strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, 0, false
	}
	return lo, hi, true
}

// FormatNumber renders a Number without trailing zeros, or "N/A" when absent.
func FormatNumber(n Number) string {
	if !n.Valid {
		return "N/A"
	}
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}

// VintageDisplay renders the vintage: whole-number years as integers,
// unparseable source text as-is, missing as the empty string.
func (r Record) VintageDisplay() string {
	if r.Vintage.Valid {
		if r.Vintage.Value == float64(int64(r.Vintage.Value)) {
			return strconv.FormatInt(int64(r.Vintage.Value), 10)
		}
		return strconv.FormatFloat(r.Vintage.Value, 'f', -1, 64)
	}
	return strings.TrimSpace(r.VintageRaw)
}
