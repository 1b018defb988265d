package api

import (
	"net/http"

	"github.com/fashionswipe/swipeshop/internal/core"
)

// AdminState handles GET /admin/state: a JSON snapshot of every live
// session and confirmed order, for inspection in development.
func (h *Handler) AdminState(w http.ResponseWriter, r *http.Request) {
	core.JSON(w, http.StatusOK, map[string]any{
		"sessions": h.sessions.Snapshot(),
		"orders":   h.flow.Orders().Snapshot(),
	})
}

// AdminOrders handles GET /admin/orders: confirmed orders in the order
// they were placed.
func (h *Handler) AdminOrders(w http.ResponseWriter, r *http.Request) {
	core.JSON(w, http.StatusOK, map[string]any{
		"orders": h.flow.Orders().List(),
	})
}

// AdminReset handles POST /admin/reset: drops all sessions and orders.
func (h *Handler) AdminReset(w http.ResponseWriter, r *http.Request) {
	h.sessions.Reset()
	h.flow.Orders().Reset()
	h.mw.ReqLog.Clear()
	h.logger.Info("admin reset")
	core.JSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

// AdminRequests handles GET /admin/requests: the recent-request ring buffer.
func (h *Handler) AdminRequests(w http.ResponseWriter, r *http.Request) {
	core.JSON(w, http.StatusOK, map[string]any{
		"requests": h.mw.ReqLog.Entries(),
	})
}
