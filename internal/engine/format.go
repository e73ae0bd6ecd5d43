// ABOUTME: Turns filter results into user-facing recommendation messages
// ABOUTME: Suppresses implausible source values as N/A instead of failing
package engine

import (
	"fmt"
	"strings"

	"github.com/eagles/winechat/internal/models"
)

// refinementNote closes a multi-result answer. Appellation and taste are not
// filterable slots; the suggestion is purely informational.
const refinementNote = "Want to narrow it down further? Tell me about a preferred appellation or taste profile and I can point you at a better bottle."

// formatMatches renders up to maxResults records in dataset order, appending
// a note when constraints had to be relaxed to find them.
func (r *Recommender) formatMatches(matches []models.Record, relaxed []models.Slot) string {
	var b strings.Builder

	if len(matches) == 1 {
		b.WriteString("Based on your current preferences, here's a suggestion:\n")
		b.WriteString(formatRecord(matches[0]))
	} else {
		limit := r.maxResults
		if limit > len(matches) {
			limit = len(matches)
		}
		fmt.Fprintf(&b, "Based on your current preferences, here are my top %d suggestions:\n", limit)
		for i := 0; i < limit; i++ {
			fmt.Fprintf(&b, "%d. %s\n", i+1, formatRecordLine(matches[i]))
		}
		b.WriteString("\n")
		b.WriteString(refinementNote)
	}

	if len(relaxed) > 0 {
		names := make([]string, len(relaxed))
		for i, slot := range relaxed {
			names[i] = slot.String()
		}
		fmt.Fprintf(&b, "\n\nNote: no exact match was found, so I relaxed these constraints: %s.", strings.Join(names, ", "))
	}

	return b.String()
}

// formatRecord renders the multiline single-suggestion block.
func formatRecord(rec models.Record) string {
	lines := []string{
		fmt.Sprintf("Winery: %s, %s", rec.Winery, rec.Country),
		strings.TrimSpace(rec.Name + " " + rec.VintageDisplay()),
		abvDisplay(rec) + " Alc./vol.",
		priceDisplay(rec),
	}
	return strings.Join(lines, "\n")
}

// formatRecordLine renders one numbered entry of a multi-result list.
func formatRecordLine(rec models.Record) string {
	return fmt.Sprintf("%s (%s, %s) %s Alc./vol. %s",
		strings.TrimSpace(rec.Name+" "+rec.VintageDisplay()),
		rec.Winery,
		rec.Country,
		abvDisplay(rec),
		priceDisplay(rec),
	)
}

func abvDisplay(rec models.Record) string {
	if !rec.ABV.Valid {
		return "N/A"
	}
	return models.FormatNumber(rec.ABV) + "%"
}

func priceDisplay(rec models.Record) string {
	if !rec.Price.Valid {
		return "N/A"
	}
	return "$" + models.FormatNumber(rec.Price)
}

// noMatchMessage enumerates the current criteria and suggests loosening one.
func (r *Recommender) noMatchMessage() string {
	return fmt.Sprintf(
		"No wines matched your preferences, even with partial relaxation.\n"+
			"(Color=%s, ABV=%s, Country=%s, Price=%s)\n"+
			"Try changing or removing a constraint (e.g. 'Change ABV to 13-14%%' or 'Remove country filter').",
		r.criteria.Describe(models.SlotColor),
		r.criteria.Describe(models.SlotAlcoholLevel),
		r.criteria.Describe(models.SlotCountry),
		r.criteria.Describe(models.SlotPriceRange),
	)
}
