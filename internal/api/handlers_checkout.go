package api

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"

	"github.com/fashionswipe/swipeshop/internal/checkout"
	"github.com/fashionswipe/swipeshop/internal/core"
)

// Checkout handles POST /v1/sessions/{id}/checkout. Blank required fields
// are a 422, an empty cart a 409 (the cart-empty notice), a concurrent
// submit a 409. Success is the order confirmation, the thank-you screen.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var form checkout.Form
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		core.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.flow.Submit(r.Context(), sess, form)
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrEmptyCart):
			core.Error(w, http.StatusConflict, "no items in cart")
		case errors.Is(err, checkout.ErrAlreadySubmitting):
			core.Error(w, http.StatusConflict, "checkout already in progress")
		case errors.Is(err, checkout.ErrProcessingFailed):
			core.Error(w, http.StatusBadGateway, "payment processing failed")
		default:
			core.Error(w, http.StatusUnprocessableEntity, err.Error())
		}
		return
	}

	h.logger.Info("order confirmed",
		"session_id", order.SessionID,
		"order_id", order.ID,
		"items", len(order.Items),
		"total", order.Total,
	)
	core.JSON(w, http.StatusCreated, order)
}
