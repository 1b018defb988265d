// Package api implements the HTTP API: search, swiping, cart review, and
// checkout as JSON endpoints over per-session state.
package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/fashionswipe/swipeshop/internal/browse"
	"github.com/fashionswipe/swipeshop/internal/checkout"
	"github.com/fashionswipe/swipeshop/internal/core"
	"github.com/fashionswipe/swipeshop/internal/session"
)

// Handler holds all API handler state.
type Handler struct {
	sessions *session.Registry
	browser  *browse.Controller
	client   browse.Recommender
	flow     *checkout.Flow
	logger   *slog.Logger
	mw       *core.Middleware
}

// NewHandler creates a new API handler.
func NewHandler(
	sessions *session.Registry,
	browser *browse.Controller,
	client browse.Recommender,
	flow *checkout.Flow,
	logger *slog.Logger,
	mw *core.Middleware,
) *Handler {
	return &Handler{
		sessions: sessions,
		browser:  browser,
		client:   client,
		flow:     flow,
		logger:   logger,
		mw:       mw,
	}
}

// Routes mounts all API routes.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/healthz", h.Health)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/sessions", h.CreateSession)
		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Get("/", h.GetSession)
			r.Post("/query", h.SubmitQuery)
			r.Post("/swipe", h.Swipe)
			r.Get("/cart", h.GetCart)
			r.Delete("/cart/{itemID}", h.RemoveCartItem)
			r.Post("/checkout", h.Checkout)
			r.Post("/reset", h.ResetSession)
		})
	})

	r.Get("/admin/state", h.AdminState)
	r.Get("/admin/orders", h.AdminOrders)
	r.Post("/admin/reset", h.AdminReset)
	r.Get("/admin/requests", h.AdminRequests)
}
