package checkout

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fashionswipe/swipeshop/internal/session"
	"github.com/fashionswipe/swipeshop/internal/store"
)

// Flow runs the checkout: guards, validation, processing, confirmation.
// Confirmed orders are kept in an in-memory store for the admin surface.
type Flow struct {
	proc   Processor
	orders *store.Store[Order]

	mu       sync.Mutex
	inflight map[string]bool // session IDs with a submit in progress
}

// NewFlow creates a Flow using the given processor and order store.
func NewFlow(proc Processor, orders *store.Store[Order]) *Flow {
	return &Flow{
		proc:     proc,
		orders:   orders,
		inflight: make(map[string]bool),
	}
}

// Orders returns the confirmed order store.
func (f *Flow) Orders() *store.Store[Order] {
	return f.orders
}

// Submit validates the form and the cart, runs the processor, and returns
// the confirmed order. Checkout is unreachable with an empty cart, and a
// session can only have one submit in flight at a time.
func (f *Flow) Submit(ctx context.Context, sess *session.Session, form Form) (Order, error) {
	form.Normalize()
	if err := form.Validate(); err != nil {
		return Order{}, err
	}

	st := sess.State()
	if len(st.Cart) == 0 {
		return Order{}, ErrEmptyCart
	}

	if !f.begin(st.SessionID) {
		return Order{}, ErrAlreadySubmitting
	}
	defer f.end(st.SessionID)

	order := Order{
		ID:            f.orders.NextID(),
		SessionID:     st.SessionID,
		Items:         st.Cart,
		Total:         st.TotalPrice(),
		Name:          form.Name,
		Email:         form.Email,
		Address:       form.Address,
		PaymentMethod: form.PaymentMethod,
		Status:        "confirmed",
		CreatedAt:     time.Now().UTC(),
	}

	if err := f.proc.Process(ctx, order); err != nil {
		return Order{}, fmt.Errorf("%w: %v", ErrProcessingFailed, err)
	}

	f.orders.Set(order.ID, order)
	return order, nil
}

func (f *Flow) begin(sessionID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.inflight[sessionID] {
		return false
	}
	f.inflight[sessionID] = true
	return true
}

func (f *Flow) end(sessionID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.inflight, sessionID)
}
