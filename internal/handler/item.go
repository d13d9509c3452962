package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vaultpass/vaultpass-web/internal/middleware"
	"github.com/vaultpass/vaultpass-web/internal/model"
	"github.com/vaultpass/vaultpass-web/internal/service"
)

// ItemHandler handles HTTP requests for stored credentials.
type ItemHandler struct{}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler() *ItemHandler {
	return &ItemHandler{}
}

func itemService(r *http.Request) (*service.ItemService, bool) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		return nil, false
	}
	return service.NewItemService(sess.Client), true
}

// HandleList handles GET /api/v1/items requests.
func (h *ItemHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	items, ok := itemService(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	list, err := items.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, list)
}

// HandleCreate handles POST /api/v1/items requests.
func (h *ItemHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	items, ok := itemService(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var in model.ItemInput
	if !decodeJSON(w, r, &in) {
		return
	}

	item, err := items.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

// HandleUpdate handles PATCH /api/v1/items/{id} requests.
func (h *ItemHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	items, ok := itemService(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var in model.ItemInput
	if !decodeJSON(w, r, &in) {
		return
	}

	item, err := items.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// HandleDelete handles DELETE /api/v1/items/{id} requests.
func (h *ItemHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	items, ok := itemService(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	if err := items.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
