package session

import "github.com/fashionswipe/swipeshop/internal/catalog"

// Action is one of the closed set of state transitions. The reducer is
// total over this set; there is no way to fail a dispatch.
type Action interface {
	isAction()
}

// SetQuery records the last search text.
type SetQuery struct {
	Query string
}

// SetRecommendations replaces the deck wholesale and resets the cursor.
type SetRecommendations struct {
	Products []catalog.Product
}

// SetCurrentIndex moves the cursor.
type SetCurrentIndex struct {
	Index int
}

// AddToCart appends a copy of the product with a freshly assigned ID.
// Quota enforcement is the caller's responsibility, performed before
// dispatching.
type AddToCart struct {
	Product catalog.Product
}

// RemoveFromCart removes the first cart entry with the given ID; no-op
// when absent.
type RemoveFromCart struct {
	ID string
}

// IncrementSwipeCount counts one successful like.
type IncrementSwipeCount struct{}

// SetLoading flags an outstanding recommendation fetch.
type SetLoading struct {
	Loading bool
}

// SetError records a user-visible error message; empty clears it.
type SetError struct {
	Message string
}

// ResetSession discards everything and issues a new session ID.
type ResetSession struct{}

func (SetQuery) isAction()            {}
func (SetRecommendations) isAction()  {}
func (SetCurrentIndex) isAction()     {}
func (AddToCart) isAction()           {}
func (RemoveFromCart) isAction()      {}
func (IncrementSwipeCount) isAction() {}
func (SetLoading) isAction()          {}
func (SetError) isAction()            {}
func (ResetSession) isAction()        {}
