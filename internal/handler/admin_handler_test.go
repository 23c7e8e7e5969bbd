package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/amd4k/ZHV/internal/model"
	"github.com/amd4k/ZHV/internal/storage"
	"github.com/amd4k/ZHV/pkg/jwtutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	store := &MockStore{SeedReport: storage.SeedReport{CategoriesCreated: 9, ProductsCreated: 5, LinksCreated: 25}}
	e := newTestServer(store, Options{}, RouteOptions{})

	rec := doRequest(e, http.MethodPost, "/api/admin/seed", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Message string             `json:"message"`
		Report  storage.SeedReport `json:"report"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Database seeded successfully", resp.Message)
	assert.Equal(t, 25, resp.Report.LinksCreated)
	assert.Equal(t, 1, store.seedCalls)
}

func TestSeedFailureDoesNotLeakError(t *testing.T) {
	e := newTestServer(&MockStore{Err: errDBDown}, Options{}, RouteOptions{})

	rec := doRequest(e, http.MethodPost, "/api/admin/seed", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Failed to seed database"}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), errDBDown.Error())
}

func TestLogin(t *testing.T) {
	admin := model.User{ID: "u1", Username: "admin", IsAdmin: true}
	require.NoError(t, admin.SetPassword("correct-horse"))
	jwtUtil := jwtutil.NewJWTUtil(&jwtutil.JWTConfig{SigningKey: "test-key", ExpirationHours: 1})

	testCases := []struct {
		name               string
		body               string
		jwt                *jwtutil.JWTUtil
		expectedStatusCode int
		expectedMessage    string
	}{
		{name: "Disabled without signing config", body: `{"username":"admin","password":"correct-horse"}`, expectedStatusCode: http.StatusNotFound, expectedMessage: "Authentication is not enabled"},
		{name: "Unknown user", body: `{"username":"ghost","password":"correct-horse"}`, jwt: jwtUtil, expectedStatusCode: http.StatusUnauthorized, expectedMessage: "Invalid username or password"},
		{name: "Wrong password", body: `{"username":"admin","password":"nope"}`, jwt: jwtUtil, expectedStatusCode: http.StatusUnauthorized, expectedMessage: "Invalid username or password"},
		{name: "Missing password", body: `{"username":"admin"}`, jwt: jwtUtil, expectedStatusCode: http.StatusBadRequest, expectedMessage: "Invalid login data"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestServer(&MockStore{Users: []model.User{admin}}, Options{JWT: tc.jwt}, RouteOptions{})
			rec := doRequest(e, http.MethodPost, "/api/auth/login", tc.body)
			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			assert.Equal(t, tc.expectedMessage, decodeError(t, rec).Message)
		})
	}

	t.Run("Success", func(t *testing.T) {
		e := newTestServer(&MockStore{Users: []model.User{admin}}, Options{JWT: jwtUtil}, RouteOptions{})
		rec := doRequest(e, http.MethodPost, "/api/auth/login", `{"username":" admin ","password":"correct-horse"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Token string                 `json:"token"`
			User  map[string]interface{} `json:"user"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "admin", resp.User["username"])
		assert.NotContains(t, resp.User, "password")
		assert.NotContains(t, resp.User, "passwordHash")

		claims, err := jwtUtil.ValidateToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, "u1", claims.UserID)
		assert.True(t, claims.Admin)
	})
}
