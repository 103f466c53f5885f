package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"shopping-backend/application/services"
	"shopping-backend/domain/item"
	appErrors "shopping-backend/pkg/errors"
	"shopping-backend/tests/mocks"
)

func newItemTestRouter() (*chi.Mux, *mocks.MockItemRepository, *mocks.MockPublisher) {
	repo := mocks.NewMockItemRepository()
	publisher := mocks.NewMockPublisher()
	svc := services.NewItemService(repo, publisher, zap.NewNop())
	h := NewItemHandler(svc, zap.NewNop())

	r := chi.NewRouter()
	r.Post("/items", h.CreateItem)
	r.Get("/items", h.ListItems)
	r.Get("/items/{id}", h.GetItem)
	r.Put("/items/{id}", h.UpdateItem)
	r.Delete("/items/{id}", h.DeleteItem)
	return r, repo, publisher
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateItem_Success(t *testing.T) {
	router, _, publisher := newItemTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/items", map[string]interface{}{
		"name":        "Widget",
		"description": "a widget",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created item.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Widget", created.Name)
	require.NotNil(t, created.Description)
	assert.Equal(t, "a widget", *created.Description)
	assert.NotEmpty(t, created.CreatedAt)

	require.Len(t, publisher.Events(), 1)
}

func TestCreateItem_MissingName(t *testing.T) {
	router, repo, publisher := newItemTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/items", map[string]interface{}{
		"description": "no name",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "name is a required field")

	// No store or publish call happened.
	assert.Equal(t, 0, repo.Len())
	assert.Empty(t, publisher.Events())
}

func TestCreateItem_InvalidBody(t *testing.T) {
	router, _, _ := newItemTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/items", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateItem_BackendFault(t *testing.T) {
	router, repo, _ := newItemTestRouter()
	repo.SetError("CreateItem", appErrors.NewDatabaseError("put", errors.New("boom")))

	rec := doJSON(t, router, http.MethodPost, "/items", map[string]interface{}{"name": "Widget"})
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	// Internal detail stays out of the response.
	assert.Equal(t, "Could not create item.", resp["error"])
}

func TestGetItem_NotFound(t *testing.T) {
	router, _, _ := newItemTestRouter()

	rec := doJSON(t, router, http.MethodGet, "/items/missing", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Item not found.", resp["error"])
}

func TestGetItem_ReturnsStoredRecord(t *testing.T) {
	router, repo, _ := newItemTestRouter()
	desc := "stored"
	repo.Seed(item.Item{ID: "item-1", Name: "Widget", Description: &desc, CreatedAt: "2024-01-01T00:00:00Z"})

	rec := doJSON(t, router, http.MethodGet, "/items/item-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got item.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "item-1", got.ID)
	assert.Equal(t, "Widget", got.Name)
	assert.Equal(t, "2024-01-01T00:00:00Z", got.CreatedAt)
}

func TestListItems(t *testing.T) {
	router, repo, _ := newItemTestRouter()
	repo.Seed(item.Item{ID: "a", Name: "A"})
	repo.Seed(item.Item{ID: "b", Name: "B"})

	rec := doJSON(t, router, http.MethodGet, "/items", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var items []item.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	assert.Len(t, items, 2)
}

func TestListItems_EmptyTableIsEmptyArray(t *testing.T) {
	router, _, _ := newItemTestRouter()

	rec := doJSON(t, router, http.MethodGet, "/items", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestUpdateItem_Success(t *testing.T) {
	router, repo, publisher := newItemTestRouter()
	desc := "original"
	repo.Seed(item.Item{ID: "item-1", Name: "Widget", Description: &desc, CreatedAt: "2024-01-01T00:00:00Z"})

	rec := doJSON(t, router, http.MethodPut, "/items/item-1", map[string]interface{}{
		"name":        "Widget2",
		"description": "updated",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated item.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "Widget2", updated.Name)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "updated", *updated.Description)
	// createdAt is untouched by updates.
	assert.Equal(t, "2024-01-01T00:00:00Z", updated.CreatedAt)

	require.Len(t, publisher.Events(), 1)
}

func TestUpdateItem_MissingName(t *testing.T) {
	router, _, publisher := newItemTestRouter()

	rec := doJSON(t, router, http.MethodPut, "/items/item-1", map[string]interface{}{
		"description": "updated",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, publisher.Events())
}

func TestUpdateItem_OmittedDescriptionResetsToNull(t *testing.T) {
	router, repo, _ := newItemTestRouter()
	desc := "original"
	repo.Seed(item.Item{ID: "item-1", Name: "Widget", Description: &desc})

	rec := doJSON(t, router, http.MethodPut, "/items/item-1", map[string]interface{}{
		"name": "Widget2",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated item.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Nil(t, updated.Description)
}

func TestDeleteItem_Success(t *testing.T) {
	router, repo, publisher := newItemTestRouter()
	repo.Seed(item.Item{ID: "item-1", Name: "Widget"})

	rec := doJSON(t, router, http.MethodDelete, "/items/item-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Item deleted successfully.", resp["message"])

	assert.Equal(t, 0, repo.Len())
	require.Len(t, publisher.Events(), 1)
}

func TestDeleteItem_AbsentIDStillSucceeds(t *testing.T) {
	router, _, _ := newItemTestRouter()

	rec := doJSON(t, router, http.MethodDelete, "/items/never-existed", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteItem_BackendFault(t *testing.T) {
	router, repo, _ := newItemTestRouter()
	repo.SetError("DeleteItem", appErrors.NewDatabaseError("delete", errors.New("boom")))

	rec := doJSON(t, router, http.MethodDelete, "/items/item-1", nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Could not delete item.", resp["error"])
}
