// ABOUTME: Criteria tracks the per-conversation value of each preference slot
// ABOUTME: A slot is atomically unset or holds exactly one canonical option
package models

import "fmt"

// Criteria is a fixed-size record of the four slot values. The zero value is
// a fully unset Criteria. It is a value type: copying a Criteria yields an
// independent snapshot, which the fallback search relies on.
type Criteria struct {
	values [numSlots]string
}

// Get returns the slot's value and whether it is set.
func (c *Criteria) Get(s Slot) (string, bool) {
	if !s.valid() {
		return "", false
	}
	v := c.values[s]
	return v, v != ""
}

// IsSet reports whether the slot currently holds a value.
func (c *Criteria) IsSet(s Slot) bool {
	_, ok := c.Get(s)
	return ok
}

// Set stores a canonical value for the slot. Values that are not one of the
// slot's options are rejected so free-text fragments can never leak in.
func (c *Criteria) Set(s Slot, v string) error {
	if !s.HasOption(v) {
		return fmt.Errorf("%q is not a canonical %s option", v, s)
	}
	c.values[s] = v
	return nil
}

// Clear unsets a single slot.
func (c *Criteria) Clear(s Slot) {
	if s.valid() {
		c.values[s] = ""
	}
}

// Reset unsets every slot.
func (c *Criteria) Reset() {
	c.values = [numSlots]string{}
}

// FilledCount returns how many slots are set.
func (c *Criteria) FilledCount() int {
	n := 0
	for _, v := range c.values {
		if v != "" {
			n++
		}
	}
	return n
}

// FirstUnset returns the first unset slot in ask-priority order.
func (c *Criteria) FirstUnset() (Slot, bool) {
	for _, s := range AllSlots() {
		if !c.IsSet(s) {
			return s, true
		}
	}
	return 0, false
}

// Describe returns the slot's value for user-facing summaries, with "Any"
// standing in for an unset slot.
func (c *Criteria) Describe(s Slot) string {
	if v, ok := c.Get(s); ok {
		return v
	}
	return "Any"
}
