package sync

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hbenomar/macstore-backend/internal/modules/catalog"
	"github.com/hbenomar/macstore-backend/internal/modules/order"
	"github.com/hbenomar/macstore-backend/internal/modules/site"
	"github.com/hbenomar/macstore-backend/internal/modules/user"
	"github.com/hbenomar/macstore-backend/internal/store"
)

// Handler exposes the full-snapshot endpoints consumed by storefront clients.
type Handler struct{ st *store.Store }

func NewHandler(st *store.Store) *Handler { return &Handler{st: st} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Get("/api/sync-data", h.export)
	r.Post("/api/sync-data", h.replace)
}

func (h *Handler) export(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.st.Export())
}

// replace overwrites the whole snapshot. Partial payloads are tolerated:
// missing users/orders become empty, a missing hero keeps the current one.
// lastUpdated from the client is ignored.
func (h *Handler) replace(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Products    []catalog.Product `json:"products"`
		Users       []user.Account    `json:"users"`
		Orders      []order.Order     `json:"orders"`
		HeroContent *site.HeroContent `json:"heroContent"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if payload.Products == nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "products must be an array"})
		return
	}
	if payload.Users == nil {
		payload.Users = []user.Account{}
	}
	if payload.Orders == nil {
		payload.Orders = []order.Order{}
	}
	hero := h.st.Export().HeroContent
	if payload.HeroContent != nil {
		hero = *payload.HeroContent
	}

	snap := &store.Snapshot{
		Products:    payload.Products,
		Users:       payload.Users,
		Orders:      payload.Orders,
		HeroContent: hero,
	}
	h.st.Replace(snap)

	respond(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"message":   "Data saved successfully",
		"timestamp": snap.LastUpdated,
	})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
