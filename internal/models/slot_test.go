// ABOUTME: Tests for the Slot enumeration and its static metadata
// ABOUTME: Verifies ask-priority order, questions, and canonical options
package models

import (
	"reflect"
	"testing"
)

func TestAllSlots_Order(t *testing.T) {
	want := []Slot{SlotColor, SlotAlcoholLevel, SlotCountry, SlotPriceRange}
	if got := AllSlots(); !reflect.DeepEqual(got, want) {
		t.Errorf("AllSlots() = %v, want %v", got, want)
	}
}

func TestSlot_String(t *testing.T) {
	tests := []struct {
		slot Slot
		want string
	}{
		{SlotColor, "Color"},
		{SlotAlcoholLevel, "AlcoholLevel"},
		{SlotCountry, "Country"},
		{SlotPriceRange, "PriceRange"},
		{Slot(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.slot.String(); got != tt.want {
			t.Errorf("Slot(%d).String() = %q, want %q", tt.slot, got, tt.want)
		}
	}
}

func TestSlot_Options(t *testing.T) {
	tests := []struct {
		slot Slot
		want []string
	}{
		{SlotColor, []string{"Red", "White", "Rosé", "Sparkling"}},
		{SlotAlcoholLevel, []string{"11-12%", "12-13%", "13-14%", "14-15%"}},
		{SlotCountry, []string{"France", "Spain", "Italy", "Others"}},
		{SlotPriceRange, []string{"$10-20", "$20-30", "$30-40", "$40-50"}},
	}

	for _, tt := range tests {
		if got := tt.slot.Options(); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s.Options() = %v, want %v", tt.slot, got, tt.want)
		}
	}
}

func TestSlot_OptionsReturnsCopy(t *testing.T) {
	opts := SlotColor.Options()
	opts[0] = "Orange"

	if got := SlotColor.Options()[0]; got != "Red" {
		t.Errorf("Options()[0] after caller mutation = %q, want %q", got, "Red")
	}
}

func TestSlot_Question(t *testing.T) {
	if got := SlotColor.Question(); got != "What color wine do you prefer?" {
		t.Errorf("SlotColor.Question() = %q", got)
	}
	if got := Slot(-1).Question(); got != "" {
		t.Errorf("invalid slot Question() = %q, want empty", got)
	}
}

func TestSlot_HasOption(t *testing.T) {
	if !SlotCountry.HasOption("Others") {
		t.Error("SlotCountry.HasOption(Others) = false, want true")
	}
	if SlotCountry.HasOption("others") {
		t.Error("HasOption should be case-sensitive for canonical values")
	}
	if SlotColor.HasOption("Blue") {
		t.Error("SlotColor.HasOption(Blue) = true, want false")
	}
}
