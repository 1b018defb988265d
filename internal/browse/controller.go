package browse

import (
	"context"
	"log/slog"
	"strings"

	"github.com/fashionswipe/swipeshop/internal/catalog"
	"github.com/fashionswipe/swipeshop/internal/session"
)

// Phase is the browse state machine position derived from session state.
type Phase string

const (
	// PhaseBrowsing means an active card is showing.
	PhaseBrowsing Phase = "browsing"
	// PhaseFetching means a recommendation fetch is in flight.
	PhaseFetching Phase = "fetching"
	// PhaseExhausted means no current product and no fetch in flight.
	PhaseExhausted Phase = "exhausted"
	// PhaseLimitReached means the swipe quota is spent; passes may
	// continue but likes are rejected.
	PhaseLimitReached Phase = "limit_reached"
)

// PhaseOf derives the browse phase from the session state.
func PhaseOf(st session.State) Phase {
	if st.IsLoading {
		return PhaseFetching
	}
	if _, ok := st.CurrentProduct(); !ok {
		return PhaseExhausted
	}
	if !st.CanSwipeRight() {
		return PhaseLimitReached
	}
	return PhaseBrowsing
}

// Recommender fetches a ranked product list for a query.
type Recommender interface {
	Recommend(ctx context.Context, query string) ([]catalog.Product, error)
}

// Outcome describes what one swipe did.
type Outcome struct {
	Swiped       bool             // a card actually left the deck
	Direction    Direction        // the classified direction
	Liked        *catalog.Product // cart entry created by a right swipe, with assigned ID
	LimitReached bool             // the blocking quota notice must be shown
	Refetched    bool             // the deck was replaced during this swipe
	FetchFailed  bool             // a refetch was attempted and failed
	State        session.State    // state after the swipe
}

// Controller orchestrates swipe-by-swipe transitions over a session.
type Controller struct {
	rec    Recommender
	logger *slog.Logger
}

// NewController creates a Controller backed by the given recommender.
func NewController(rec Recommender, logger *slog.Logger) *Controller {
	return &Controller{rec: rec, logger: logger}
}

// Swipe applies a classified gesture. DirectionNone is a spring-back: no
// state change.
func (c *Controller) Swipe(ctx context.Context, sess *session.Session, dir Direction) Outcome {
	switch dir {
	case DirectionRight:
		return c.SwipeRight(ctx, sess)
	case DirectionLeft:
		return c.SwipeLeft(ctx, sess)
	default:
		return Outcome{Direction: DirectionNone, State: sess.State()}
	}
}

// SwipeRight likes the active card. With the quota spent it is a rejected
// no-op surfacing the limit notice; otherwise the product is copied into
// the cart, the counter incremented, and the cursor advanced. Reaching the
// quota on this very swipe also surfaces the notice.
func (c *Controller) SwipeRight(ctx context.Context, sess *session.Session) Outcome {
	out := Outcome{Direction: DirectionRight}
	out.State = sess.Update(func(st session.State) session.State {
		if !st.CanSwipeRight() {
			out.LimitReached = true
			return st
		}
		product, ok := st.CurrentProduct()
		if !ok {
			return st
		}
		st = session.Apply(st, session.AddToCart{Product: product})
		st = session.Apply(st, session.IncrementSwipeCount{})
		liked := st.Cart[len(st.Cart)-1]
		out.Swiped = true
		out.Liked = &liked
		if !st.CanSwipeRight() {
			out.LimitReached = true
		}
		return c.advance(ctx, st, &out)
	})
	return out
}

// SwipeLeft passes on the active card: the cursor advances, the cart and
// the counter stay untouched.
func (c *Controller) SwipeLeft(ctx context.Context, sess *session.Session) Outcome {
	out := Outcome{Direction: DirectionLeft}
	out.State = sess.Update(func(st session.State) session.State {
		if _, ok := st.CurrentProduct(); ok {
			out.Swiped = true
		}
		return c.advance(ctx, st, &out)
	})
	return out
}

// advance moves the cursor to the next card. Past the end of the deck it
// refetches, seeding the query with "{brand} {name}" of the most recently
// liked item when the cart is non-empty, else the original query. With no
// query to refetch with (a session that never searched), or on a fetch
// failure, the deck is left exhausted; recovery is a fresh user-initiated
// search.
func (c *Controller) advance(ctx context.Context, st session.State, out *Outcome) session.State {
	next := st.CurrentIndex + 1
	if next < len(st.Recommendations) {
		return session.Apply(st, session.SetCurrentIndex{Index: next})
	}

	query := st.Query
	if n := len(st.Cart); n > 0 {
		last := st.Cart[n-1]
		query = last.Brand + " " + last.Name
	}
	if strings.TrimSpace(query) == "" {
		return session.Apply(st, session.SetCurrentIndex{Index: len(st.Recommendations)})
	}

	st = session.Apply(st, session.SetLoading{Loading: true})
	products, err := c.rec.Recommend(ctx, query)
	st = session.Apply(st, session.SetLoading{Loading: false})
	if err != nil {
		c.logger.Error("failed to fetch more recommendations", "query", query, "err", err)
		out.FetchFailed = true
		return session.Apply(st, session.SetCurrentIndex{Index: len(st.Recommendations)})
	}

	out.Refetched = true
	return session.Apply(st, session.SetRecommendations{Products: products})
}
