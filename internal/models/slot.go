// ABOUTME: Slot is the closed enumeration of the four preference attributes
// ABOUTME: Each slot carries its display question and canonical option list
package models

// Slot identifies one of the four fixed preference attributes collected
// during a conversation. Slots are asked in declaration order.
type Slot int

const (
	SlotColor Slot = iota
	SlotAlcoholLevel
	SlotCountry
	SlotPriceRange

	numSlots int = iota
)

// slotInfo holds the static metadata for one slot.
type slotInfo struct {
	name     string
	question string
	options  []string
}

// slotTable replaces string-keyed dispatch: every slot-dependent decision
// indexes this table instead of comparing slot names at runtime.
var slotTable = [numSlots]slotInfo{
	SlotColor: {
		name:     "Color",
		question: "What color wine do you prefer?",
		options:  []string{"Red", "White", "Rosé", "Sparkling"},
	},
	SlotAlcoholLevel: {
		name:     "AlcoholLevel",
		question: "What is your preferred alcohol range?",
		options:  []string{"11-12%", "12-13%", "13-14%", "14-15%"},
	},
	SlotCountry: {
		name:     "Country",
		question: "Which country do you prefer?",
		options:  []string{"France", "Spain", "Italy", "Others"},
	},
	SlotPriceRange: {
		name:     "PriceRange",
		question: "Which price range do you want?",
		options:  []string{"$10-20", "$20-30", "$30-40", "$40-50"},
	},
}

// AllSlots returns every slot in ask-priority order.
func AllSlots() []Slot {
	return []Slot{SlotColor, SlotAlcoholLevel, SlotCountry, SlotPriceRange}
}

// String returns the slot's stable name (used in relaxation notes and the
// no-match disclaimer).
func (s Slot) String() string {
	if !s.valid() {
		return "Unknown"
	}
	return slotTable[s].name
}

// Question returns the display question asked for this slot.
func (s Slot) Question() string {
	if !s.valid() {
		return ""
	}
	return slotTable[s].question
}

// Options returns the slot's canonical option list in fixed order. The
// returned slice is a copy; callers may not mutate the table.
func (s Slot) Options() []string {
	if !s.valid() {
		return nil
	}
	opts := make([]string, len(slotTable[s].options))
	copy(opts, slotTable[s].options)
	return opts
}

// HasOption reports whether v is exactly one of the slot's canonical options.
func (s Slot) HasOption(v string) bool {
	if !s.valid() {
		return false
	}
	for _, opt := range slotTable[s].options {
		if opt == v {
			return true
		}
	}
	return false
}

func (s Slot) valid() bool {
	return s >= 0 && int(s) < numSlots
}
