package site

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the hero banner endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux, admin func(http.Handler) http.Handler) {
	r.Route("/api/v1/hero", func(r chi.Router) {
		r.Get("/", h.getHero)
		r.With(admin).Put("/", h.updateHero)
	})
}

func (h *Handler) getHero(w http.ResponseWriter, r *http.Request) {
	hero, err := h.service.Hero(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, hero)
}

func (h *Handler) updateHero(w http.ResponseWriter, r *http.Request) {
	var hero HeroContent
	if err := json.NewDecoder(r.Body).Decode(&hero); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	updated, err := h.service.UpdateHero(r.Context(), hero)
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, updated)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
