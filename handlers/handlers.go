package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"pricescout/database"
	"pricescout/models"
	"pricescout/repository"
	"pricescout/scraper"

	"github.com/gorilla/mux"
)

type Handlers struct {
	scraper    *scraper.Scraper
	watchRepo  *repository.WatchRepository
	scrapeRepo *repository.ScrapeRepository
}

func NewHandlers(s *scraper.Scraper, watchRepo *repository.WatchRepository, scrapeRepo *repository.ScrapeRepository) *Handlers {
	return &Handlers{
		scraper:    s,
		watchRepo:  watchRepo,
		scrapeRepo: scrapeRepo,
	}
}

// Scrape runs a one-off scrape for the URL in the request body. Extraction
// failures still come back as 200 with success=false; only a bad request is
// rejected before the scraper runs.
func (h *Handlers) Scrape(w http.ResponseWriter, r *http.Request) {
	var req models.ScrapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.URL == "" {
		writeError(w, http.StatusBadRequest, "URL is required")
		return
	}
	if !isValidURL(req.URL) {
		writeError(w, http.StatusBadRequest, "URL is not valid")
		return
	}

	result := h.scraper.Scrape(req.URL)
	writeJSON(w, http.StatusOK, result)
}

// AddWatch registers a URL for scheduled rechecking.
func (h *Handlers) AddWatch(w http.ResponseWriter, r *http.Request) {
	if !h.requireDatabase(w) {
		return
	}

	var req models.ScrapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.URL == "" {
		writeError(w, http.StatusBadRequest, "URL is required")
		return
	}
	if !isValidURL(req.URL) {
		writeError(w, http.StatusBadRequest, "URL is not valid")
		return
	}

	watch, err := h.watchRepo.AddWatch(req.URL, req.MaterialName)
	if err != nil {
		log.Printf("Failed to add watch: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to add watch")
		return
	}

	writeJSON(w, http.StatusCreated, watch)
}

// GetWatches lists all active watches.
func (h *Handlers) GetWatches(w http.ResponseWriter, r *http.Request) {
	if !h.requireDatabase(w) {
		return
	}

	watches, err := h.watchRepo.GetWatches()
	if err != nil {
		log.Printf("Failed to get watches: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to get watches")
		return
	}

	writeJSON(w, http.StatusOK, watches)
}

// DeleteWatch soft-deletes a watch.
func (h *Handlers) DeleteWatch(w http.ResponseWriter, r *http.Request) {
	if !h.requireDatabase(w) {
		return
	}

	id, ok := watchID(w, r)
	if !ok {
		return
	}

	if err := h.watchRepo.DeleteWatch(id); err != nil {
		if err.Error() == "watch not found" {
			writeError(w, http.StatusNotFound, "Watch not found")
			return
		}
		log.Printf("Failed to delete watch: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete watch")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// CheckWatchNow scrapes a watched URL immediately and records the outcome.
func (h *Handlers) CheckWatchNow(w http.ResponseWriter, r *http.Request) {
	if !h.requireDatabase(w) {
		return
	}

	id, ok := watchID(w, r)
	if !ok {
		return
	}

	watch, err := h.watchRepo.GetWatchByID(id)
	if err != nil {
		if err.Error() == "watch not found" {
			writeError(w, http.StatusNotFound, "Watch not found")
			return
		}
		log.Printf("Failed to get watch: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to get watch")
		return
	}

	result := h.scraper.Scrape(watch.URL)

	if err := h.watchRepo.UpdateWatchResult(id, result); err != nil {
		log.Printf("Failed to update watch %d: %v", id, err)
	}
	if err := h.scrapeRepo.AddRecord(id, result); err != nil {
		log.Printf("Failed to record scrape for watch %d: %v", id, err)
	}

	writeJSON(w, http.StatusOK, result)
}

// GetWatchHistory returns recent scrape records for a watch.
func (h *Handlers) GetWatchHistory(w http.ResponseWriter, r *http.Request) {
	if !h.requireDatabase(w) {
		return
	}

	id, ok := watchID(w, r)
	if !ok {
		return
	}

	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}

	records, err := h.scrapeRepo.GetHistory(id, limit)
	if err != nil {
		log.Printf("Failed to get history for watch %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to get history")
		return
	}

	writeJSON(w, http.StatusOK, records)
}

// requireDatabase rejects watch API calls when no database is configured.
func (h *Handlers) requireDatabase(w http.ResponseWriter) bool {
	if !database.Enabled() {
		writeError(w, http.StatusServiceUnavailable, "Persistence is not configured")
		return false
	}
	return true
}

func watchID(w http.ResponseWriter, r *http.Request) (int, bool) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid watch ID")
		return 0, false
	}
	return id, true
}

// isValidURL checks that the string is a well-formed absolute http(s) URL.
func isValidURL(raw string) bool {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
