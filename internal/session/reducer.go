package session

import (
	"github.com/google/uuid"

	"github.com/fashionswipe/swipeshop/internal/catalog"
)

// Apply is a pure reducer: it returns the next state for an action without
// mutating the input. Slices are copied on write so prior State values stay
// valid. Unrecognized actions return the state unchanged.
func Apply(s State, a Action) State {
	switch act := a.(type) {
	case SetQuery:
		s.Query = act.Query
	case SetRecommendations:
		deck := act.Products
		if deck == nil {
			deck = []catalog.Product{}
		}
		s.Recommendations = append([]catalog.Product(nil), deck...)
		s.CurrentIndex = 0
	case SetCurrentIndex:
		s.CurrentIndex = act.Index
	case AddToCart:
		item := act.Product
		item.ID = uuid.NewString()
		s.Cart = append(append([]catalog.Product(nil), s.Cart...), item)
	case RemoveFromCart:
		for i, item := range s.Cart {
			if item.ID == act.ID {
				cart := append([]catalog.Product(nil), s.Cart[:i]...)
				s.Cart = append(cart, s.Cart[i+1:]...)
				break
			}
		}
	case IncrementSwipeCount:
		s.SwipeCount++
	case SetLoading:
		s.IsLoading = act.Loading
	case SetError:
		s.Error = act.Message
	case ResetSession:
		return NewState()
	}
	return s
}
