package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fashionswipe/swipeshop/internal/core"
	"github.com/fashionswipe/swipeshop/internal/session"
)

// GetCart handles GET /v1/sessions/{id}/cart: the review screen. The total
// is the raw numeric sum regardless of currency codes.
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookup(w, r)
	if !ok {
		return
	}
	st := sess.State()
	core.JSON(w, http.StatusOK, cartView{
		Items: st.Cart,
		Total: st.TotalPrice(),
	})
}

// RemoveCartItem handles DELETE /v1/sessions/{id}/cart/{itemID}. Removal is
// the only way a cart entry disappears short of a session reset.
func (h *Handler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookup(w, r)
	if !ok {
		return
	}
	itemID := chi.URLParam(r, "itemID")

	before := sess.State()
	found := false
	for _, item := range before.Cart {
		if item.ID == itemID {
			found = true
			break
		}
	}
	if !found {
		core.Error(w, http.StatusNotFound, "no such cart item: "+itemID)
		return
	}

	st := sess.Dispatch(session.RemoveFromCart{ID: itemID})
	core.JSON(w, http.StatusOK, cartView{
		Items: st.Cart,
		Total: st.TotalPrice(),
	})
}
