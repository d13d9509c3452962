package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vaultpass/vaultpass-web/internal/middleware"
	"github.com/vaultpass/vaultpass-web/internal/model"
	"github.com/vaultpass/vaultpass-web/internal/service"
)

// CardHandler handles HTTP requests for stored payment cards.
type CardHandler struct{}

// NewCardHandler creates a new CardHandler.
func NewCardHandler() *CardHandler {
	return &CardHandler{}
}

func cardService(r *http.Request) (*service.CardService, bool) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		return nil, false
	}
	return service.NewCardService(sess.Client), true
}

// HandleList handles GET /api/v1/cards requests.
func (h *CardHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	cards, ok := cardService(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	list, err := cards.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, list)
}

// HandleCreate handles POST /api/v1/cards requests.
func (h *CardHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	cards, ok := cardService(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var in model.CardInput
	if !decodeJSON(w, r, &in) {
		return
	}

	card, err := cards.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, card)
}

// HandleUpdate handles PATCH /api/v1/cards/{id} requests.
func (h *CardHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	cards, ok := cardService(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var in model.CardInput
	if !decodeJSON(w, r, &in) {
		return
	}

	card, err := cards.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, card)
}

// HandleDelete handles DELETE /api/v1/cards/{id} requests.
func (h *CardHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	cards, ok := cardService(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	if err := cards.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
