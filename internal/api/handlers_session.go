package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/fashionswipe/swipeshop/internal/core"
	"github.com/fashionswipe/swipeshop/internal/session"
)

// Health handles GET /healthz.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	core.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// CreateSession handles POST /v1/sessions. A session starts empty with a
// fresh session ID; the client follows up with a query to fill the deck.
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Create()
	h.logger.Info("session created", "session_id", sess.ID())
	core.JSON(w, http.StatusCreated, viewOf(sess.State()))
}

// GetSession handles GET /v1/sessions/{id}.
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookup(w, r)
	if !ok {
		return
	}
	core.JSON(w, http.StatusOK, viewOf(sess.State()))
}

type queryRequest struct {
	Query string `json:"query"`
}

// SubmitQuery handles POST /v1/sessions/{id}/query: the Home screen's
// search. It fetches a fresh deck and moves the session into browsing.
// A fetch failure is surfaced inline; the user retries by resubmitting.
func (h *Handler) SubmitQuery(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	query := strings.TrimSpace(req.Query)
	if query == "" {
		core.Error(w, http.StatusBadRequest, "query must not be empty")
		return
	}

	var fetchErr error
	st := sess.Update(func(st session.State) session.State {
		st = session.Apply(st, session.SetLoading{Loading: true})
		st = session.Apply(st, session.SetError{})

		products, err := h.client.Recommend(r.Context(), query)
		st = session.Apply(st, session.SetLoading{Loading: false})
		if err != nil {
			fetchErr = err
			return session.Apply(st, session.SetError{
				Message: "Failed to fetch recommendations. Please try again.",
			})
		}

		st = session.Apply(st, session.SetQuery{Query: query})
		return session.Apply(st, session.SetRecommendations{Products: products})
	})

	if fetchErr != nil {
		h.logger.Error("query fetch failed", "session_id", st.SessionID, "query", query, "err", fetchErr)
		core.Error(w, http.StatusBadGateway, "failed to fetch recommendations")
		return
	}

	core.JSON(w, http.StatusOK, viewOf(st))
}

// ResetSession handles POST /v1/sessions/{id}/reset. Everything is
// discarded; the session continues under a new session ID.
func (h *Handler) ResetSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sess, ok := h.sessions.ResetSession(id)
	if !ok {
		core.Error(w, http.StatusNotFound, "no such session: "+id)
		return
	}
	st := sess.State()
	h.logger.Info("session reset", "old_session_id", id, "session_id", st.SessionID)
	core.JSON(w, http.StatusOK, viewOf(st))
}

// lookup resolves the {id} route param to a live session, writing a 404
// when it does not exist.
func (h *Handler) lookup(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id := chi.URLParam(r, "id")
	sess, ok := h.sessions.Get(id)
	if !ok {
		core.Error(w, http.StatusNotFound, "no such session: "+id)
		return nil, false
	}
	return sess, true
}
