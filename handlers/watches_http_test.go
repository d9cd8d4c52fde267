package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"wordwatch/services"
)

func setupTestWatchesHTTPHandler() (*mux.Router, *services.MockWatchesService) {
	mockWatches := new(services.MockWatchesService)
	handler := NewWatchesHTTPHandler(mockWatches)

	router := mux.NewRouter()
	handler.SetupEndpoints(router)
	return router, mockWatches
}

func TestHandleListWatches(t *testing.T) {
	router, mockWatches := setupTestWatchesHTTPHandler()

	mockWatches.On("ListWatchedWords", mock.Anything, "guild-1", "user-1").
		Return([]string{"pizza", "taco"}, nil)

	req := httptest.NewRequest("GET", "/api/servers/guild-1/users/user-1/watches", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp WatchesListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, []string{"pizza", "taco"}, resp.Words)
}

func TestHandleAddWatches(t *testing.T) {
	t.Run("normalizes words before registering", func(t *testing.T) {
		router, mockWatches := setupTestWatchesHTTPHandler()

		mockWatches.On("RegisterWords", mock.Anything, "guild-1", "user-1", []string{"pizza", "taco"}).
			Return([]string{"pizza"}, nil)

		body := strings.NewReader(`{"words": "Pizza, TACO!"}`)
		req := httptest.NewRequest("POST", "/api/servers/guild-1/users/user-1/watches", body)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp WatchesAddResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, []string{"pizza"}, resp.Added)
	})

	t.Run("rejects bodies with no usable words", func(t *testing.T) {
		router, mockWatches := setupTestWatchesHTTPHandler()

		body := strings.NewReader(`{"words": "!!! ..."}`)
		req := httptest.NewRequest("POST", "/api/servers/guild-1/users/user-1/watches", body)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockWatches.AssertNotCalled(t, "RegisterWords", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		router, _ := setupTestWatchesHTTPHandler()

		req := httptest.NewRequest("POST", "/api/servers/guild-1/users/user-1/watches",
			strings.NewReader("{not json"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleRemoveWatches(t *testing.T) {
	router, mockWatches := setupTestWatchesHTTPHandler()

	mockWatches.On("UnregisterWords", mock.Anything, "guild-1", "user-1", []string{"pizza"}).
		Return([]string{"pizza"}, nil)

	body := strings.NewReader(`{"words": "pizza"}`)
	req := httptest.NewRequest("DELETE", "/api/servers/guild-1/users/user-1/watches", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp WatchesRemoveResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, []string{"pizza"}, resp.Removed)
}
