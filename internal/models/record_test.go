// ABOUTME: Tests for numeric field parsing and display of catalog records
// ABOUTME: Dirty scraper values must parse to absent, never to errors
package models

import "testing"

func TestParseABV(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Number
	}{
		{"plain", "13.5", Number{13.5, true}},
		{"percent suffix", "12%", Number{12, true}},
		{"whitespace", " 14 ", Number{14, true}},
		{"non-numeric", "unknown", Number{}},
		{"empty", "", Number{}},
		{"below plausible range", "2", Number{}},
		{"above plausible range", "45", Number{}},
		{"range boundary low", "5", Number{5, true}},
		{"range boundary high", "20", Number{20, true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseABV(tt.input); got != tt.want {
				t.Errorf("ParseABV(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Number
	}{
		{"plain", "25", Number{25, true}},
		{"dollar sign", "$39.99", Number{39.99, true}},
		{"euro sign", "€18", Number{18, true}},
		{"thousands comma as cents", "2,499", Number{24.99, true}},
		{"cents denominated", "3500", Number{35, true}},
		{"non-numeric", "call for price", Number{}},
		{"empty", "", Number{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParsePrice(tt.input); got != tt.want {
				t.Errorf("ParsePrice(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseBand(t *testing.T) {
	lo, hi, ok := ParseBand("11-12%")
	if !ok || lo != 11 || hi != 12 {
		t.Errorf("ParseBand(11-12%%) = %v, %v, %v, want 11, 12, true", lo, hi, ok)
	}

	lo, hi, ok = ParseBand("$20-30")
	if !ok || lo != 20 || hi != 30 {
		t.Errorf("ParseBand($20-30) = %v, %v, %v, want 20, 30, true", lo, hi, ok)
	}

	if _, _, ok := ParseBand("cheap"); ok {
		t.Error("ParseBand(cheap) = ok, want not ok")
	}
	if _, _, ok := ParseBand("10-"); ok {
		t.Error("ParseBand(10-) = ok, want not ok")
	}
}

func TestVintageDisplay(t *testing.T) {
	tests := []struct {
		name   string
		record Record
		want   string
	}{
		{"whole number year", Record{VintageRaw: "2015.0", Vintage: Number{2015, true}}, "2015"},
		{"plain year", Record{VintageRaw: "2020", Vintage: Number{2020, true}}, "2020"},
		{"non-numeric source text", Record{VintageRaw: "N.V."}, "N.V."},
		{"missing", Record{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.record.VintageDisplay(); got != tt.want {
				t.Errorf("VintageDisplay() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatNumber(t *testing.T) {
	if got := FormatNumber(Number{14.5, true}); got != "14.5" {
		t.Errorf("FormatNumber(14.5) = %q, want 14.5", got)
	}
	if got := FormatNumber(Number{25, true}); got != "25" {
		t.Errorf("FormatNumber(25) = %q, want 25", got)
	}
	if got := FormatNumber(Number{}); got != "N/A" {
		t.Errorf("FormatNumber(absent) = %q, want N/A", got)
	}
}
