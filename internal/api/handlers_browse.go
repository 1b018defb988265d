package api

import (
	"encoding/json"
	"net/http"

	"github.com/fashionswipe/swipeshop/internal/browse"
	"github.com/fashionswipe/swipeshop/internal/core"
)

// swipeRequest carries either an explicit direction ("left"/"right") or the
// raw gesture release, which the server classifies.
type swipeRequest struct {
	Direction string  `json:"direction"`
	OffsetX   float64 `json:"offset_x"`
	VelocityX float64 `json:"velocity_x"`
}

// Swipe handles POST /v1/sessions/{id}/swipe. An unclassifiable release is
// a spring-back: 200 with swiped=false and no state change.
func (h *Handler) Swipe(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var req swipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var dir browse.Direction
	switch req.Direction {
	case "":
		dir = browse.Classify(req.OffsetX, req.VelocityX)
	case string(browse.DirectionLeft):
		dir = browse.DirectionLeft
	case string(browse.DirectionRight):
		dir = browse.DirectionRight
	default:
		core.Error(w, http.StatusBadRequest, "direction must be \"left\" or \"right\"")
		return
	}

	out := h.browser.Swipe(r.Context(), sess, dir)
	core.JSON(w, http.StatusOK, swipeView{
		Swiped:       out.Swiped,
		Direction:    out.Direction,
		Liked:        out.Liked,
		LimitReached: out.LimitReached,
		Refetched:    out.Refetched,
		FetchFailed:  out.FetchFailed,
		Session:      viewOf(out.State),
	})
}
