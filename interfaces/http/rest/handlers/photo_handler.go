package handlers

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"shopping-backend/application/ports"
	"shopping-backend/pkg/utils"
)

// defaultContentType is assumed when the caller does not declare one
const defaultContentType = "image/jpeg"

// PhotoHandler handles photo upload requests, independent of the item domain
type PhotoHandler struct {
	store  ports.PhotoStore
	logger *zap.Logger
}

// NewPhotoHandler creates a new photo handler
func NewPhotoHandler(store ports.PhotoStore, logger *zap.Logger) *PhotoHandler {
	return &PhotoHandler{
		store:  store,
		logger: logger,
	}
}

// UploadPhotoRequest represents the request body for uploading a photo
type UploadPhotoRequest struct {
	Base64Data  string `json:"base64Data" validate:"required"`
	FileName    string `json:"fileName" validate:"required"`
	ContentType string `json:"contentType"`
}

// UploadPhotoResponse represents a successful upload
type UploadPhotoResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	URL     string `json:"url"`
	Key     string `json:"key"`
}

// UploadPhoto handles POST /photos. The payload is decoded from base64 and
// stored under a timestamp-prefixed key; the response carries the object's
// public URL. Decode and upload faults return the underlying error detail,
// matching the original contract.
func (h *PhotoHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	var req UploadPhotoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	data, err := base64.StdEncoding.DecodeString(req.Base64Data)
	if err != nil {
		h.logger.Error("Failed to decode photo payload", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	contentType := req.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}

	key := photoKey(req.FileName)
	url, err := h.store.Upload(r.Context(), key, data, contentType)
	if err != nil {
		h.logger.Error("Failed to upload photo",
			zap.Error(err),
			zap.String("key", key),
		)
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(UploadPhotoResponse{
		Success: true,
		Message: "Photo uploaded successfully.",
		URL:     url,
		Key:     key,
	})
}

// photoKey builds a collision-resistant object key for the uploaded file
func photoKey(fileName string) string {
	return fmt.Sprintf("photos/%d-%s", time.Now().UnixMilli(), fileName)
}

// respondError writes an error response
func (h *PhotoHandler) respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
