// ABOUTME: Strict conjunctive filtering plus deterministic fallback relaxation
// ABOUTME: Relaxation is greedy and cumulative; PriceRange is never relaxed
package catalog

import (
	"strings"

	"github.com/eagles/winechat/internal/models"
)

// relaxOrder is the fixed order in which constraints are dropped when the
// strict filter comes up empty. Price is the one constraint the user is
// assumed unwilling to compromise, so it never appears here.
var relaxOrder = []models.Slot{
	models.SlotAlcoholLevel,
	models.SlotCountry,
	models.SlotColor,
}

// Filter applies each set slot as a conjunctive predicate over the catalog
// and returns the matching records in dataset order. Unset slots contribute
// no predicate.
func (c *Catalog) Filter(criteria models.Criteria) []models.Record {
	var matches []models.Record
	for _, r := range c.records {
		if matchesCriteria(r, &criteria) {
			matches = append(matches, r)
		}
	}
	return matches
}

// FilterWithFallback runs the strict filter, then relaxes constraints one at
// a time in relaxOrder until something matches. Relaxations accumulate: a
// dropped slot stays dropped for the rest of the search. The returned slice
// names the slots relaxed, in the order they were dropped; it is nil when the
// strict filter succeeded.
func (c *Catalog) FilterWithFallback(criteria models.Criteria) ([]models.Record, []models.Slot) {
	if matches := c.Filter(criteria); len(matches) > 0 {
		return matches, nil
	}

	var relaxed []models.Slot
	working := criteria
	for _, slot := range relaxOrder {
		if !working.IsSet(slot) {
			continue
		}
		working.Clear(slot)
		relaxed = append(relaxed, slot)
		if matches := c.Filter(working); len(matches) > 0 {
			return matches, relaxed
		}
	}

	return nil, relaxed
}

func matchesCriteria(r models.Record, criteria *models.Criteria) bool {
	if color, ok := criteria.Get(models.SlotColor); ok {
		if !strings.Contains(strings.ToLower(r.Color), strings.ToLower(color)) {
			return false
		}
	}

	if band, ok := criteria.Get(models.SlotAlcoholLevel); ok {
		lo, hi, parsed := models.ParseBand(band)
		if !parsed {
			return false
		}
		// Records with unparseable alcohol are out of range, not skipped.
		if !r.ABV.Valid || r.ABV.Value < lo || r.ABV.Value > hi {
			return false
		}
	}

	if country, ok := criteria.Get(models.SlotCountry); ok {
		if !matchesCountry(r.Country, country) {
			return false
		}
	}

	if band, ok := criteria.Get(models.SlotPriceRange); ok {
		lo, hi, parsed := models.ParseBand(band)
		if !parsed {
			return false
		}
		if !r.Price.Valid || r.Price.Value < lo || r.Price.Value > hi {
			return false
		}
	}

	return true
}

// matchesCountry handles the "Others" complement: any country that is none of
// the three named options.
func matchesCountry(recordCountry, choice string) bool {
	got := strings.ToLower(strings.TrimSpace(recordCountry))
	if strings.EqualFold(choice, "Others") {
		return got != "france" && got != "spain" && got != "italy"
	}
	return got == strings.ToLower(choice)
}
