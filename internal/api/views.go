package api

import (
	"github.com/shopspring/decimal"

	"github.com/fashionswipe/swipeshop/internal/browse"
	"github.com/fashionswipe/swipeshop/internal/catalog"
	"github.com/fashionswipe/swipeshop/internal/session"
)

// sessionView is the JSON shape of a session for API responses. The full
// deck is not echoed back; clients get the active card and counters.
type sessionView struct {
	SessionID     string           `json:"session_id"`
	Query         string           `json:"query"`
	Phase         browse.Phase     `json:"phase"`
	Current       *catalog.Product `json:"current,omitempty"`
	DeckSize      int              `json:"deck_size"`
	DeckIndex     int              `json:"deck_index"`
	SwipeCount    int              `json:"swipe_count"`
	SwipeLimit    int              `json:"swipe_limit"`
	CanSwipeRight bool             `json:"can_swipe_right"`
	CartSize      int              `json:"cart_size"`
	IsLoading     bool             `json:"is_loading"`
	Error         string           `json:"error,omitempty"`
}

func viewOf(st session.State) sessionView {
	v := sessionView{
		SessionID:     st.SessionID,
		Query:         st.Query,
		Phase:         browse.PhaseOf(st),
		DeckSize:      len(st.Recommendations),
		DeckIndex:     st.CurrentIndex,
		SwipeCount:    st.SwipeCount,
		SwipeLimit:    session.SwipeLimit,
		CanSwipeRight: st.CanSwipeRight(),
		CartSize:      len(st.Cart),
		IsLoading:     st.IsLoading,
		Error:         st.Error,
	}
	if p, ok := st.CurrentProduct(); ok {
		v.Current = &p
	}
	return v
}

// cartView is the JSON shape of the cart screen.
type cartView struct {
	Items []catalog.Product `json:"items"`
	Total decimal.Decimal   `json:"total"`
}

// swipeView is the JSON shape of a swipe response.
type swipeView struct {
	Swiped       bool             `json:"swiped"`
	Direction    browse.Direction `json:"direction"`
	Liked        *catalog.Product `json:"liked,omitempty"`
	LimitReached bool             `json:"limit_reached"`
	Refetched    bool             `json:"refetched"`
	FetchFailed  bool             `json:"fetch_failed"`
	Session      sessionView      `json:"session"`
}
