package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"wordwatch/services"
	"wordwatch/utils"
)

// WatchesHTTPHandler exposes the watch index over HTTP, mirroring the
// !add / !delete / !get commands
type WatchesHTTPHandler struct {
	watchesService services.WatchesService
}

func NewWatchesHTTPHandler(watchesService services.WatchesService) *WatchesHTTPHandler {
	return &WatchesHTTPHandler{watchesService: watchesService}
}

type WatchesRequest struct {
	Words string `json:"words"`
}

type WatchesListResponse struct {
	Words []string `json:"words"`
}

type WatchesAddResponse struct {
	Added []string `json:"added"`
}

type WatchesRemoveResponse struct {
	Removed []string `json:"removed"`
}

func (h *WatchesHTTPHandler) SetupEndpoints(router *mux.Router) {
	router.HandleFunc("/api/servers/{serverID}/users/{userID}/watches", h.HandleListWatches).
		Methods("GET")
	router.HandleFunc("/api/servers/{serverID}/users/{userID}/watches", h.HandleAddWatches).
		Methods("POST")
	router.HandleFunc("/api/servers/{serverID}/users/{userID}/watches", h.HandleRemoveWatches).
		Methods("DELETE")
}

func (h *WatchesHTTPHandler) HandleListWatches(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	serverID, userID := vars["serverID"], vars["userID"]

	words, err := h.watchesService.ListWatchedWords(r.Context(), serverID, userID)
	if err != nil {
		log.Printf("❌ Failed to list watched words: %v", err)
		http.Error(w, "failed to list watched words", http.StatusInternalServerError)
		return
	}

	h.writeJSONResponse(w, http.StatusOK, WatchesListResponse{Words: words})
}

func (h *WatchesHTTPHandler) HandleAddWatches(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	serverID, userID := vars["serverID"], vars["userID"]

	var req WatchesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	words := utils.NormalizeWords(req.Words)
	if len(words) == 0 {
		http.Error(w, "no valid words provided", http.StatusBadRequest)
		return
	}

	added, err := h.watchesService.RegisterWords(r.Context(), serverID, userID, words)
	if err != nil {
		log.Printf("❌ Failed to register words: %v", err)
		http.Error(w, "failed to register words", http.StatusInternalServerError)
		return
	}

	h.writeJSONResponse(w, http.StatusOK, WatchesAddResponse{Added: added})
}

func (h *WatchesHTTPHandler) HandleRemoveWatches(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	serverID, userID := vars["serverID"], vars["userID"]

	var req WatchesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	words := utils.NormalizeWords(req.Words)
	if len(words) == 0 {
		http.Error(w, "no valid words provided", http.StatusBadRequest)
		return
	}

	removed, err := h.watchesService.UnregisterWords(r.Context(), serverID, userID, words)
	if err != nil {
		log.Printf("❌ Failed to unregister words: %v", err)
		http.Error(w, "failed to unregister words", http.StatusInternalServerError)
		return
	}

	h.writeJSONResponse(w, http.StatusOK, WatchesRemoveResponse{Removed: removed})
}

func (h *WatchesHTTPHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("❌ Failed to encode JSON response: %v", err)
	}
}
