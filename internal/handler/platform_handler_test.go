package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/amd4k/ZHV/internal/model"
	"github.com/amd4k/ZHV/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPlatformLinks(t *testing.T) {
	url := "https://myntra.com/product/X"
	store := &MockStore{Links: []model.PlatformLink{
		{ID: "l1", ProductID: "p1", Platform: model.PlatformMyntra, URL: &url, IsActive: true},
		{ID: "l2", ProductID: "p1", Platform: model.PlatformDirect, IsActive: true},
		{ID: "l3", ProductID: "p2", Platform: model.PlatformAmazon, URL: &url, IsActive: true},
	}}
	e := newTestServer(store, Options{}, RouteOptions{})

	rec := doRequest(e, http.MethodGet, "/api/products/p1/platforms", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp []map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "myntra", resp[0]["platform"])
	assert.Nil(t, resp[1]["url"])
	assert.Equal(t, "p1", resp[1]["productId"])

	rec = doRequest(e, http.MethodGet, "/api/products/unknown/platforms", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	e = newTestServer(&MockStore{Err: errDBDown}, Options{}, RouteOptions{})
	rec = doRequest(e, http.MethodGet, "/api/products/p1/platforms", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to fetch platform links", decodeError(t, rec).Message)
}

func TestGetPlatformLink(t *testing.T) {
	url := "https://amazon.in/dp/X"
	store := &MockStore{Links: []model.PlatformLink{
		{ID: "l1", ProductID: "p1", Platform: model.PlatformAmazon, URL: &url, IsActive: true},
	}}
	e := newTestServer(store, Options{}, RouteOptions{})

	rec := doRequest(e, http.MethodGet, "/api/platforms/l1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp model.PlatformLink
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "p1", resp.ProductID)
	assert.Equal(t, model.PlatformAmazon, resp.Platform)
	assert.Equal(t, "l1", store.lastID)

	rec = doRequest(e, http.MethodGet, "/api/platforms/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Platform link not found", decodeError(t, rec).Message)

	e = newTestServer(&MockStore{Err: errDBDown}, Options{}, RouteOptions{})
	rec = doRequest(e, http.MethodGet, "/api/platforms/l1", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to fetch platform link", decodeError(t, rec).Message)
}

func TestCreatePlatformLink(t *testing.T) {
	testCases := []struct {
		name               string
		body               string
		mockStoreSetup     func() *MockStore
		expectedStatusCode int
		checkResponse      func(t *testing.T, rec *httptest.ResponseRecorder, store *MockStore)
	}{
		{
			name:               "Marketplace link",
			body:               `{"platform":"Amazon","url":"https://amazon.com/product/T-001"}`,
			mockStoreSetup:     func() *MockStore { return &MockStore{} },
			expectedStatusCode: http.StatusCreated,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder, store *MockStore) {
				var resp model.PlatformLink
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, "link-new", resp.ID)
				assert.Equal(t, "p1", resp.ProductID)
				assert.Equal(t, model.PlatformAmazon, resp.Platform)
				assert.True(t, resp.IsActive)
			},
		},
		{
			name:               "Path product wins over body",
			body:               `{"productId":"other","platform":"direct"}`,
			mockStoreSetup:     func() *MockStore { return &MockStore{} },
			expectedStatusCode: http.StatusCreated,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder, store *MockStore) {
				assert.Equal(t, "p1", store.savedLink.ProductID)
				assert.Nil(t, store.savedLink.URL)
			},
		},
		{
			name:               "Inactive link",
			body:               `{"platform":"meesho","url":"https://meesho.com/product/T-001","isActive":false}`,
			mockStoreSetup:     func() *MockStore { return &MockStore{} },
			expectedStatusCode: http.StatusCreated,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder, store *MockStore) {
				assert.False(t, store.savedLink.IsActive)
			},
		},
		{
			name:               "URL required for marketplaces",
			body:               `{"platform":"flipkart","url":"  "}`,
			mockStoreSetup:     func() *MockStore { return &MockStore{} },
			expectedStatusCode: http.StatusBadRequest,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder, store *MockStore) {
				body := decodeError(t, rec)
				assert.Equal(t, "Invalid platform link data", body.Message)
				assert.Equal(t, []string{"url: required_for_platform"}, body.Details)
				assert.Nil(t, store.savedLink)
			},
		},
		{
			name:               "Unknown platform",
			body:               `{"platform":"ebay","url":"https://ebay.com/x"}`,
			mockStoreSetup:     func() *MockStore { return &MockStore{} },
			expectedStatusCode: http.StatusBadRequest,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder, store *MockStore) {
				assert.Equal(t, []string{"platform: platform"}, decodeError(t, rec).Details)
			},
		},
		{
			name:               "Non-http URL",
			body:               `{"platform":"amazon","url":"ftp://amazon.com/x"}`,
			mockStoreSetup:     func() *MockStore { return &MockStore{} },
			expectedStatusCode: http.StatusBadRequest,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder, store *MockStore) {
				assert.Equal(t, []string{"url: httpurl"}, decodeError(t, rec).Details)
			},
		},
		{
			name: "Unknown product",
			body: `{"platform":"direct"}`,
			mockStoreSetup: func() *MockStore {
				return &MockStore{WriteErr: fmt.Errorf("%w: product", storage.ErrInvalidReference)}
			},
			expectedStatusCode: http.StatusBadRequest,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder, store *MockStore) {
				assert.Equal(t, "Invalid platform link data", decodeError(t, rec).Message)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := tc.mockStoreSetup()
			e := newTestServer(store, Options{}, RouteOptions{})
			rec := doRequest(e, http.MethodPost, "/api/products/p1/platforms", tc.body)
			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			tc.checkResponse(t, rec, store)
		})
	}
}

func TestUpdatePlatformLink(t *testing.T) {
	store := &MockStore{}
	e := newTestServer(store, Options{}, RouteOptions{})

	rec := doRequest(e, http.MethodPut, "/api/platforms/l1", `{"platform":"direct","isActive":false}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "l1", store.lastID)
	assert.Empty(t, store.savedLink.ProductID)
	var resp model.PlatformLink
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, model.PlatformDirect, resp.Platform)
	assert.False(t, resp.IsActive)

	store = &MockStore{WriteErr: storage.ErrNotFound}
	e = newTestServer(store, Options{}, RouteOptions{})
	rec = doRequest(e, http.MethodPut, "/api/platforms/missing", `{"platform":"direct"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Platform link not found", decodeError(t, rec).Message)

	rec = doRequest(e, http.MethodPut, "/api/platforms/l1", `{"platform":"amazon"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeletePlatformLink(t *testing.T) {
	store := &MockStore{}
	e := newTestServer(store, Options{}, RouteOptions{})
	rec := doRequest(e, http.MethodDelete, "/api/platforms/l1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "l1", store.lastID)

	e = newTestServer(&MockStore{WriteErr: storage.ErrNotFound}, Options{}, RouteOptions{})
	rec = doRequest(e, http.MethodDelete, "/api/platforms/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Platform link not found", decodeError(t, rec).Message)
}
