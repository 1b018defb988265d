// Package checkout collects the order form, validates it, and hands the
// order to a payment processor. The processor shipped here is a fixed-delay
// simulator standing in for a real payment integration.
package checkout

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/fashionswipe/swipeshop/internal/catalog"
)

// PaymentMethod is one of the fixed set of accepted payment methods.
type PaymentMethod string

const (
	CreditCard PaymentMethod = "credit-card"
	PayPal     PaymentMethod = "paypal"
	ApplePay   PaymentMethod = "apple-pay"
)

// DefaultPaymentMethod is used when the form leaves the method blank.
const DefaultPaymentMethod = CreditCard

var (
	// ErrEmptyCart rejects checkout with nothing in the cart.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrAlreadySubmitting rejects a second submit while one is in flight.
	ErrAlreadySubmitting = errors.New("checkout already in progress")
	// ErrProcessingFailed wraps a payment processor failure.
	ErrProcessingFailed = errors.New("payment processing failed")
)

// Form is the shipping and payment form. Name, email, and address must be
// non-empty; no format validation is applied (email shape included).
type Form struct {
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	Address       string        `json:"address"`
	PaymentMethod PaymentMethod `json:"payment_method"`
}

// Normalize fills in the default payment method.
func (f *Form) Normalize() {
	if f.PaymentMethod == "" {
		f.PaymentMethod = DefaultPaymentMethod
	}
}

// Validate checks the form. Required fields must be non-blank and the
// payment method must be one of the accepted set.
func (f Form) Validate() error {
	var missing []string
	if strings.TrimSpace(f.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(f.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(f.Address) == "" {
		missing = append(missing, "address")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}
	switch f.PaymentMethod {
	case CreditCard, PayPal, ApplePay:
		return nil
	default:
		return fmt.Errorf("unknown payment method: %q", f.PaymentMethod)
	}
}

// Order is a confirmed purchase: a snapshot of the cart at submit time.
type Order struct {
	ID            string            `json:"id"`
	SessionID     string            `json:"session_id"`
	Items         []catalog.Product `json:"items"`
	Total         decimal.Decimal   `json:"total"`
	Name          string            `json:"name"`
	Email         string            `json:"email"`
	Address       string            `json:"address"`
	PaymentMethod PaymentMethod     `json:"payment_method"`
	Status        string            `json:"status"`
	CreatedAt     time.Time         `json:"created_at"`
}

// Processor charges an order. Implementations may block; they receive the
// request context and should honor its cancellation.
type Processor interface {
	Process(ctx context.Context, order Order) error
}

// Simulator is a Processor that waits a fixed delay and succeeds. It stands
// in for the absent real payment integration.
type Simulator struct {
	Delay time.Duration
}

// NewSimulator creates a Simulator with the given processing delay.
func NewSimulator(delay time.Duration) *Simulator {
	return &Simulator{Delay: delay}
}

// Process waits out the configured delay, then confirms.
func (s *Simulator) Process(ctx context.Context, _ Order) error {
	if s.Delay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.Delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
