// ABOUTME: Tests for the Criteria record of per-conversation slot values
// ABOUTME: Verifies the canonical-only invariant and value-copy semantics
package models

import "testing"

func TestCriteria_SetAndGet(t *testing.T) {
	var c Criteria

	if err := c.Set(SlotColor, "Red"); err != nil {
		t.Fatalf("Set(Color, Red) error = %v", err)
	}

	v, ok := c.Get(SlotColor)
	if !ok || v != "Red" {
		t.Errorf("Get(Color) = %q, %v, want Red, true", v, ok)
	}
	if _, ok := c.Get(SlotCountry); ok {
		t.Error("Get(Country) on unset slot = set, want unset")
	}
}

func TestCriteria_RejectsNonCanonicalValues(t *testing.T) {
	var c Criteria

	tests := []struct {
		slot  Slot
		value string
	}{
		{SlotColor, "reddish"},
		{SlotColor, "red"}, // canonical values keep their capitalization
		{SlotAlcoholLevel, "11%"},
		{SlotPriceRange, "cheap"},
	}

	for _, tt := range tests {
		if err := c.Set(tt.slot, tt.value); err == nil {
			t.Errorf("Set(%s, %q) succeeded, want error", tt.slot, tt.value)
		}
	}

	if n := c.FilledCount(); n != 0 {
		t.Errorf("FilledCount() after rejected sets = %d, want 0", n)
	}
}

func TestCriteria_FilledCountAndFirstUnset(t *testing.T) {
	var c Criteria

	slot, ok := c.FirstUnset()
	if !ok || slot != SlotColor {
		t.Errorf("FirstUnset() on empty = %v, %v, want Color, true", slot, ok)
	}

	_ = c.Set(SlotColor, "White")
	_ = c.Set(SlotAlcoholLevel, "12-13%")

	if n := c.FilledCount(); n != 2 {
		t.Errorf("FilledCount() = %d, want 2", n)
	}

	slot, ok = c.FirstUnset()
	if !ok || slot != SlotCountry {
		t.Errorf("FirstUnset() = %v, %v, want Country, true", slot, ok)
	}

	_ = c.Set(SlotCountry, "Spain")
	_ = c.Set(SlotPriceRange, "$20-30")

	if _, ok := c.FirstUnset(); ok {
		t.Error("FirstUnset() on full criteria reported an unset slot")
	}
}

func TestCriteria_ClearAndReset(t *testing.T) {
	var c Criteria
	_ = c.Set(SlotColor, "Red")
	_ = c.Set(SlotCountry, "Italy")

	c.Clear(SlotColor)
	if c.IsSet(SlotColor) {
		t.Error("Clear(Color) left slot set")
	}
	if !c.IsSet(SlotCountry) {
		t.Error("Clear(Color) unset an unrelated slot")
	}

	c.Reset()
	if n := c.FilledCount(); n != 0 {
		t.Errorf("FilledCount() after Reset = %d, want 0", n)
	}
}

func TestCriteria_Describe(t *testing.T) {
	var c Criteria
	_ = c.Set(SlotPriceRange, "$30-40")

	if got := c.Describe(SlotPriceRange); got != "$30-40" {
		t.Errorf("Describe(PriceRange) = %q, want $30-40", got)
	}
	if got := c.Describe(SlotColor); got != "Any" {
		t.Errorf("Describe(Color) on unset slot = %q, want Any", got)
	}
}

func TestCriteria_CopyIsIndependent(t *testing.T) {
	var c Criteria
	_ = c.Set(SlotColor, "Red")

	snapshot := c
	snapshot.Clear(SlotColor)

	if !c.IsSet(SlotColor) {
		t.Error("clearing a copied Criteria mutated the original")
	}
}
