package main

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"pricescout/config"
	"pricescout/database"
	"pricescout/handlers"
	"pricescout/middleware"
	"pricescout/repository"
	"pricescout/scheduler"
	"pricescout/scraper"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	// Initialize database (optional, enables the watch API and scheduler)
	if err := database.InitDatabase(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.CloseDatabase()

	if err := database.CreateTables(); err != nil {
		log.Fatalf("Failed to create tables: %v", err)
	}

	// Initialize repositories
	watchRepo := repository.NewWatchRepository()
	scrapeRepo := repository.NewScrapeRepository()

	// Initialize scraper: one fresh browser session per scrape
	priceScraper := scraper.NewWithSettleDelay(scraper.NewRodEngine(), cfg.SettleDelay)

	// Initialize handlers
	h := handlers.NewHandlers(priceScraper, watchRepo, scrapeRepo)

	// Start the scheduled rechecker when persistence is available
	if database.Enabled() {
		priceChecker := scheduler.NewPriceChecker(priceScraper, watchRepo, scrapeRepo)
		priceChecker.Start(cfg.CheckSchedule)
		defer priceChecker.Stop()
	}

	// Setup router
	r := mux.NewRouter()

	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.RateLimitMiddleware(cfg.RateLimitRPS))

	// Health endpoints (the root path doubles as a health check)
	r.HandleFunc("/", healthCheck).Methods("GET")
	r.HandleFunc("/health", healthCheck).Methods("GET")

	// Ad-hoc scraping
	r.HandleFunc("/scrape", h.Scrape).Methods("POST")

	// Watch management
	apiV1 := r.PathPrefix("/api/v1").Subrouter()
	apiV1.HandleFunc("/watches", h.AddWatch).Methods("POST")
	apiV1.HandleFunc("/watches", h.GetWatches).Methods("GET")
	apiV1.HandleFunc("/watches/{id}", h.DeleteWatch).Methods("DELETE")
	apiV1.HandleFunc("/watches/{id}/check", h.CheckWatchNow).Methods("POST")
	apiV1.HandleFunc("/watches/{id}/history", h.GetWatchHistory).Methods("GET")

	// CORS configuration
	c := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.AllowedOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	addr := cfg.Host + ":" + cfg.Port
	log.Printf("Server starting on %s", addr)
	log.Printf("   GET  /health - Health check")
	log.Printf("   POST /scrape - Scrape price and SKU from a URL")
	log.Printf("   POST /api/v1/watches - Add URL to watch")
	log.Printf("   GET  /api/v1/watches - List watched URLs")
	log.Printf("   POST /api/v1/watches/{id}/check - Check a watch now")
	log.Printf("   GET  /api/v1/watches/{id}/history - Scrape history")

	srv := &http.Server{
		Addr:         addr,
		Handler:      c.Handler(r),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
	}

	log.Fatal(srv.ListenAndServe())
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":      "healthy",
		"service":     "pricescout",
		"version":     "1.0.0",
		"timestamp":   time.Now(),
		"persistence": database.Enabled(),
	})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
