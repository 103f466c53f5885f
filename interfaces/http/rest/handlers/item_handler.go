package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"shopping-backend/application/services"
	apperrors "shopping-backend/pkg/errors"
	"shopping-backend/pkg/utils"
)

// ItemHandler handles item-related HTTP requests
type ItemHandler struct {
	service *services.ItemService
	logger  *zap.Logger
}

// NewItemHandler creates a new item handler
func NewItemHandler(service *services.ItemService, logger *zap.Logger) *ItemHandler {
	return &ItemHandler{
		service: service,
		logger:  logger,
	}
}

// CreateItemRequest represents the request body for creating an item
type CreateItemRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
}

// UpdateItemRequest represents the request body for updating an item
type UpdateItemRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
}

// CreateItem handles POST /items
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.service.Create(r.Context(), req.Name, req.Description)
	if err != nil {
		h.handleServiceError(w, err, "Could not create item.")
		return
	}

	h.respondJSON(w, http.StatusCreated, created)
}

// GetItem handles GET /items/{id}
func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	it, err := h.service.Get(r.Context(), id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			h.respondError(w, http.StatusNotFound, "Item not found.")
			return
		}
		h.handleServiceError(w, err, "Could not retrieve item.")
		return
	}

	h.respondJSON(w, http.StatusOK, it)
}

// ListItems handles GET /items
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "Could not retrieve items.")
		return
	}

	h.respondJSON(w, http.StatusOK, items)
}

// UpdateItem handles PUT /items/{id}
func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	// The handler path only ever updates name and description; description is
	// reset to null when the request omits it.
	attributes := map[string]interface{}{
		"name":        req.Name,
		"description": req.Description,
	}

	updated, err := h.service.Update(r.Context(), id, attributes)
	if err != nil {
		h.handleServiceError(w, err, "Could not update item.")
		return
	}

	h.respondJSON(w, http.StatusOK, updated)
}

// DeleteItem handles DELETE /items/{id}
func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err, "Could not delete item.")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Item deleted successfully."})
}

// handleServiceError maps service errors onto the response contract: 400 for
// validation failures and a generic 500 for any backend fault. Internal
// detail is logged, never returned.
func (h *ItemHandler) handleServiceError(w http.ResponseWriter, err error, genericMessage string) {
	if appErr := apperrors.GetAppError(err); appErr != nil && appErr.Type == apperrors.ErrorTypeValidation {
		h.respondError(w, http.StatusBadRequest, appErr.Message)
		return
	}

	h.logger.Error("Item request failed", zap.Error(err))
	h.respondError(w, http.StatusInternalServerError, genericMessage)
}

// respondJSON writes a JSON response with the given status code
func (h *ItemHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

// respondError writes an error response
func (h *ItemHandler) respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
