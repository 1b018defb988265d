// Package session holds the per-session state and the reducer that is the
// only way to mutate it. One State value exists per browsing session; every
// transition goes through Apply with one of the closed set of actions.
package session

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fashionswipe/swipeshop/internal/catalog"
)

// SwipeLimit caps the number of liked (right-swiped) products per session.
// Passes (left swipes) do not count against it.
const SwipeLimit = 10

// State is the full session state. Zero or more recommendations form the
// current deck; CurrentIndex points at the active card and may sit one past
// the end when the deck is exhausted.
type State struct {
	Query           string            `json:"query"`
	Recommendations []catalog.Product `json:"recommendations"`
	CurrentIndex    int               `json:"current_index"`
	Cart            []catalog.Product `json:"cart"`
	SwipeCount      int               `json:"swipe_count"`
	SessionID       string            `json:"session_id"`
	IsLoading       bool              `json:"is_loading"`
	Error           string            `json:"error,omitempty"`
}

// NewState returns the initial state with a fresh session ID.
func NewState() State {
	return State{
		Recommendations: []catalog.Product{},
		Cart:            []catalog.Product{},
		SessionID:       uuid.NewString(),
	}
}

// CanSwipeRight reports whether another like is allowed.
func (s State) CanSwipeRight() bool {
	return s.SwipeCount < SwipeLimit
}

// CurrentProduct returns the active card, if the cursor is in bounds.
func (s State) CurrentProduct() (catalog.Product, bool) {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Recommendations) {
		return catalog.Product{}, false
	}
	return s.Recommendations[s.CurrentIndex], true
}

// TotalPrice sums the raw prices of all cart items. Currency codes are
// ignored; mixed-currency carts sum numerically.
func (s State) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.Cart {
		total = total.Add(item.Price)
	}
	return total
}

// Clone returns a copy of the state with its own slices, safe to hand out
// to readers while the session keeps mutating.
func (s State) Clone() State {
	out := s
	out.Recommendations = append([]catalog.Product(nil), s.Recommendations...)
	out.Cart = append([]catalog.Product(nil), s.Cart...)
	return out
}
