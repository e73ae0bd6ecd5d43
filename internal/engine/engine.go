// ABOUTME: Dialogue engine owning one conversation's criteria and turn protocol
// ABOUTME: Each turn is a pure function of (state, utterance) with no I/O
package engine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/eagles/winechat/internal/catalog"
	"github.com/eagles/winechat/internal/extract"
	"github.com/eagles/winechat/internal/models"
)

// DefaultMaxResults caps how many matches a recommendation message lists.
const DefaultMaxResults = 5

// Recommender runs the slot-filling conversation for one user. It is not
// safe for concurrent use; the host serializes turns per user identifier.
type Recommender struct {
	catalog    *catalog.Catalog
	maxResults int

	criteria   models.Criteria
	pending    models.Slot
	hasPending bool
}

// New creates a Recommender over an already-loaded catalog. maxResults values
// below 1 fall back to DefaultMaxResults.
func New(cat *catalog.Catalog, maxResults int) (*Recommender, error) {
	if cat == nil {
		return nil, errors.New("catalog is required")
	}
	if maxResults < 1 {
		maxResults = DefaultMaxResults
	}
	return &Recommender{catalog: cat, maxResults: maxResults}, nil
}

// Criteria returns a snapshot of the conversation's current criteria.
func (r *Recommender) Criteria() models.Criteria {
	return r.criteria
}

// Reset clears all criteria and any pending question, returning the
// conversation to its initial state. The catalog is untouched.
func (r *Recommender) Reset() {
	r.criteria.Reset()
	r.hasPending = false
}

// HandleTurn processes one user utterance: resolve a pending question if one
// was asked, opportunistically extract any other slot from the raw text, then
// either ask the next question or search the catalog.
func (r *Recommender) HandleTurn(utterance string) models.Response {
	if r.hasPending {
		choice, errMsg := validateChoice(utterance, r.pending)
		if errMsg != "" {
			// Invalid answer: re-prompt, state unchanged.
			return models.NewResponse(errMsg, r.pending.Options())
		}
		_ = r.criteria.Set(r.pending, choice)
		r.hasPending = false
	}

	extract.Fill(&r.criteria, utterance)

	if r.criteria.FilledCount() == 0 {
		r.pending = models.SlotColor
		r.hasPending = true
		return models.NewResponse(
			"Hello! Let's start with your preference.\n"+models.SlotColor.Question(),
			models.SlotColor.Options(),
		)
	}

	if next, ok := r.criteria.FirstUnset(); ok {
		r.pending = next
		r.hasPending = true
		return models.NewResponse("Got it. "+next.Question(), next.Options())
	}

	matches, relaxed := r.catalog.FilterWithFallback(r.criteria)
	if len(matches) == 0 {
		return models.NewResponse(r.noMatchMessage(), nil)
	}
	return models.NewResponse(r.formatMatches(matches, relaxed), nil)
}

// validateChoice resolves a direct answer against the slot's canonical
// options: a bare 1-based index, an exact case-insensitive match, or a unique
// prefix (first option in list order wins). Invalid input yields a user-facing
// message rather than an error: re-prompting is a normal response, not a
// failure.
func validateChoice(text string, slot models.Slot) (choice, errMsg string) {
	opts := slot.Options()
	t := strings.ToLower(strings.TrimSpace(text))

	if t != "" && isDigits(t) {
		idx, err := strconv.Atoi(t)
		if err == nil {
			if idx >= 1 && idx <= len(opts) {
				return opts[idx-1], ""
			}
			return "", fmt.Sprintf("Invalid choice. Choose one of: %s", strings.Join(opts, ", "))
		}
	}

	for _, opt := range opts {
		if strings.ToLower(opt) == t {
			return opt, ""
		}
	}

	if t != "" {
		for _, opt := range opts {
			if strings.HasPrefix(strings.ToLower(opt), t) {
				return opt, ""
			}
		}
	}

	return "", fmt.Sprintf("I didn't understand. Please choose one of: %s", strings.Join(opts, ", "))
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
