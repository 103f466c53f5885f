package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"shopping-backend/application/services"
	domainevents "shopping-backend/domain/events"
	"shopping-backend/domain/item"
	"shopping-backend/interfaces/http/rest"
	"shopping-backend/tests/mocks"
)

type testEnv struct {
	server    *httptest.Server
	repo      *mocks.MockItemRepository
	publisher *mocks.MockPublisher
	store     *mocks.MockPhotoStore
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	repo := mocks.NewMockItemRepository()
	publisher := mocks.NewMockPublisher()
	store := mocks.NewMockPhotoStore()
	logger := zap.NewNop()

	svc := services.NewItemService(repo, publisher, logger)
	router := rest.NewRouter(svc, store, false, logger)

	server := httptest.NewServer(router.Setup())
	t.Cleanup(server.Close)

	return &testEnv{server: server, repo: repo, publisher: publisher, store: store}
}

func (e *testEnv) request(t *testing.T, method, path string, body interface{}) (*http.Response, []byte) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, e.server.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out bytes.Buffer
	_, err = out.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp, out.Bytes()
}

func TestCRUDFlow(t *testing.T) {
	env := setupTestEnv(t)

	// create
	resp, body := env.request(t, http.MethodPost, "/items", map[string]string{"name": "Widget"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created item.Item
	require.NoError(t, json.Unmarshal(body, &created))
	require.NotEmpty(t, created.ID)
	assert.Nil(t, created.Description)

	// get returns the same record
	resp, body = env.request(t, http.MethodGet, "/items/"+created.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var fetched item.Item
	require.NoError(t, json.Unmarshal(body, &fetched))
	assert.Equal(t, created, fetched)

	// update changes name, description defaults back to null
	resp, body = env.request(t, http.MethodPut, "/items/"+created.ID, map[string]string{"name": "Widget2"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated item.Item
	require.NoError(t, json.Unmarshal(body, &updated))
	assert.Equal(t, "Widget2", updated.Name)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	// list reflects the update
	resp, body = env.request(t, http.MethodGet, "/items", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var items []item.Item
	require.NoError(t, json.Unmarshal(body, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Widget2", items[0].Name)

	// delete
	resp, _ = env.request(t, http.MethodDelete, "/items/"+created.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// gone
	resp, _ = env.request(t, http.MethodGet, "/items/"+created.ID, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	// every mutation published exactly one notification
	events := env.publisher.Events()
	require.Len(t, events, 3)
	assert.Equal(t, domainevents.ItemCreated, events[0].EventType)
	assert.Equal(t, domainevents.ItemUpdated, events[1].EventType)
	assert.Equal(t, domainevents.ItemDeleted, events[2].EventType)
}

func TestCRUDFlow_ValidationShortCircuits(t *testing.T) {
	env := setupTestEnv(t)

	resp, _ := env.request(t, http.MethodPost, "/items", map[string]string{"description": "nameless"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	assert.Equal(t, 0, env.repo.Len())
	assert.Empty(t, env.publisher.Events())
}

func TestHealthCheck(t *testing.T) {
	env := setupTestEnv(t)

	resp, body := env.request(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"healthy"}`, string(body))
}
