package handler

import (
	"errors"
	"net/http"

	"github.com/vaultpass/vaultpass-web/internal/crypto"
	"github.com/vaultpass/vaultpass-web/internal/model"
	"github.com/vaultpass/vaultpass-web/internal/service"
)

// GeneratorHandler handles HTTP requests for password generation.
type GeneratorHandler struct {
	service *service.GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{service: svc}
}

// HandleGenerate handles POST /api/v1/generate requests. An empty body uses the defaults.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if !decodeOptionalJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Generate(req)
	if err != nil {
		if isValidationError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func isValidationError(err error) bool {
	return errors.Is(err, service.ErrLengthTooShort) ||
		errors.Is(err, service.ErrLengthTooLong) ||
		errors.Is(err, crypto.ErrInvalidRequest)
}
