// ABOUTME: Keyword and pattern extraction of slot values from free-form text
// ABOUTME: Stateless, layered heuristics; never overwrites an already-set slot
package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/eagles/winechat/internal/models"
)

var (
	lessThanPattern = regexp.MustCompile(`less\s+than\s+(\d+)%`)
	underPattern    = regexp.MustCompile(`under\s+\$?(\d+)`)
)

// Strength interprets descriptive alcohol-strength language ("light",
// "strong", "less than 13%") into a canonical band. It reports false when no
// rule matches; the first matching rule wins.
func Strength(text string) (string, bool) {
	text = strings.ToLower(text)

	if m := lessThanPattern.FindStringSubmatch(text); m != nil {
		limit, err := strconv.Atoi(m[1])
		if err == nil {
			switch {
			case limit <= 12:
				return "11-12%", true
			case limit <= 13:
				return "12-13%", true
			case limit <= 14:
				return "13-14%", true
			default:
				return "14-15%", true
			}
		}
	}

	for _, word := range []string{"strong", "heavy", "high"} {
		if strings.Contains(text, word) {
			return "14-15%", true
		}
	}
	for _, word := range []string{"light", "low"} {
		if strings.Contains(text, word) {
			return "11-12%", true
		}
	}
	if strings.Contains(text, "medium") {
		return "12-13%", true
	}

	return "", false
}

// Fill runs every slot extractor over the utterance, opportunistically
// writing into any slot that is still unset. Running it twice on the same
// criteria is a no-op because each extractor checks its target slot first.
func Fill(c *models.Criteria, utterance string) {
	text := strings.ToLower(utterance)

	fillAlcohol(c, text)
	fillColor(c, text)
	fillCountry(c, text)
	fillPrice(c, text)
}

func fillAlcohol(c *models.Criteria, text string) {
	if c.IsSet(models.SlotAlcoholLevel) {
		return
	}
	if band, ok := Strength(text); ok {
		_ = c.Set(models.SlotAlcoholLevel, band)
		return
	}
	for _, band := range models.SlotAlcoholLevel.Options() {
		if strings.Contains(text, band) {
			_ = c.Set(models.SlotAlcoholLevel, band)
			return
		}
	}
}

func fillColor(c *models.Criteria, text string) {
	if c.IsSet(models.SlotColor) {
		return
	}
	// First keyword wins; "rose" without the accent counts as Rosé.
	keywords := []struct {
		word  string
		value string
	}{
		{"red", "Red"},
		{"white", "White"},
		{"rosé", "Rosé"},
		{"rose", "Rosé"},
		{"sparkling", "Sparkling"},
	}
	for _, k := range keywords {
		if strings.Contains(text, k.word) {
			_ = c.Set(models.SlotColor, k.value)
			return
		}
	}
}

func fillCountry(c *models.Criteria, text string) {
	if c.IsSet(models.SlotCountry) {
		return
	}
	keywords := []struct {
		word  string
		value string
	}{
		{"france", "France"},
		{"spain", "Spain"},
		{"italy", "Italy"},
		{"other", "Others"},
	}
	for _, k := range keywords {
		if strings.Contains(text, k.word) {
			_ = c.Set(models.SlotCountry, k.value)
			return
		}
	}
}

func fillPrice(c *models.Criteria, text string) {
	if c.IsSet(models.SlotPriceRange) {
		return
	}
	for _, band := range models.SlotPriceRange.Options() {
		if strings.Contains(text, strings.ToLower(band)) {
			_ = c.Set(models.SlotPriceRange, band)
			return
		}
	}
	if m := underPattern.FindStringSubmatch(text); m != nil {
		limit, err := strconv.Atoi(m[1])
		if err != nil {
			return
		}
		var band string
		switch {
		case limit <= 20:
			band = "$10-20"
		case limit <= 30:
			band = "$20-30"
		case limit <= 40:
			band = "$30-40"
		default:
			band = "$40-50"
		}
		_ = c.Set(models.SlotPriceRange, band)
	}
}
